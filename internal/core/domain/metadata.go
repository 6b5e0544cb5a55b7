package domain

// Metadata is what an extractor learns about a single package file.
type Metadata struct {
	Name        string `json:"name"`
	Package     string `json:"pkg"`
	Version     string `json:"version"`
	VersionCode int    `json:"code"`
	NSFW        int    `json:"nsfw"`
}

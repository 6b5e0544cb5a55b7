package domain

import "strings"

// OwnerPlaceholder is the token a descriptor template uses for the repository owner.
const OwnerPlaceholder = "your-username"

// RepoMeta is the metadata block of the repository descriptor.
type RepoMeta struct {
	Name        string `json:"name"        yaml:"name"`
	ShortName   string `json:"shortName"   yaml:"short_name"`
	Description string `json:"description" yaml:"description"`
	Owner       string `json:"owner"       yaml:"owner"`
	Website     string `json:"website"     yaml:"website"`
	Support     string `json:"support"     yaml:"support"`
}

// RepoDescriptor is the content of repo.json.
type RepoDescriptor struct {
	Meta *RepoMeta `json:"meta,omitempty"`
}

// SubstituteOwner replaces every owner placeholder in link with token.
func SubstituteOwner(link, token string) string {
	return strings.ReplaceAll(link, OwnerPlaceholder, token)
}

// OwnerToken derives the owner segment from a repository URL such as
// https://raw.githubusercontent.com/<owner>/<project>/repo. Everything from the last "/repo" is dropped
// and the final path segment is returned. URLs without a slash yield fallback.
func OwnerToken(repoURL, fallback string) string {
	base := repoURL
	if i := strings.LastIndex(repoURL, "/repo"); i >= 0 {
		base = repoURL[:i]
	}
	if !strings.Contains(base, "/") {
		return fallback
	}
	return base[strings.LastIndex(base, "/")+1:]
}

// RepoOptions controls how repo.json is rendered.
type RepoOptions struct {
	// TemplatePath is a descriptor template used when it exists.
	TemplatePath string
	// RepoURL is the public base URL the owner token is derived from.
	RepoURL string
	// Default is the descriptor metadata used without a template.
	Default RepoMeta
}

package domain

import (
	"crypto/md5" //nolint:gosec // required to match the client's source id derivation
	"encoding/binary"
	"strconv"
)

// Source describes the single catalogue source an extension package provides.
type Source struct {
	Name      string `json:"name"`
	Lang      string `json:"lang"`
	ID        string `json:"id"`
	BaseURL   string `json:"baseUrl"`
	VersionID int    `json:"versionId"`
}

// Extension is one entry of the repository index.
type Extension struct {
	Name    string   `json:"name"`
	Pkg     string   `json:"pkg"`
	APK     string   `json:"apk"`
	Lang    string   `json:"lang"`
	Code    int      `json:"code"`
	Version string   `json:"version"`
	NSFW    int      `json:"nsfw"`
	HasIcon int      `json:"hasIcon,omitempty"`
	Sources []Source `json:"sources,omitempty"`
}

// NewExtension builds the index entry for a processed package.
func NewExtension(meta Metadata, naming Naming, hasIcon bool) Extension {
	lang := Lang(meta.Package)
	ext := Extension{
		Name:    naming.DisplayName(meta.Name),
		Pkg:     meta.Package,
		APK:     naming.APKName(meta.Package, meta.Version),
		Lang:    lang,
		Code:    meta.VersionCode,
		Version: meta.Version,
		NSFW:    meta.NSFW,
		Sources: []Source{{
			Name:      meta.Name,
			Lang:      lang,
			ID:        SourceID(meta.Package),
			BaseURL:   "",
			VersionID: meta.VersionCode,
		}},
	}
	if hasIcon {
		ext.HasIcon = 1
	}
	return ext
}

// SourceID derives the stable numeric source id for a package identifier.
// It is the first eight bytes of md5("<pkg>/all/1") read big-endian with the sign bit cleared.
func SourceID(pkg string) string {
	sum := md5.Sum([]byte(pkg + "/all/1")) //nolint:gosec // not used for security
	id := binary.BigEndian.Uint64(sum[:8]) & 0x7FFFFFFFFFFFFFFF
	return strconv.FormatUint(id, 10)
}

package domain

import "strings"

const (
	// DefaultAPKPrefix is prepended to every published package filename.
	DefaultAPKPrefix = "tachiyomi"
	// DefaultLabelPrefix is the application label prefix used by extension packages.
	DefaultLabelPrefix = "Tachiyomi: "
	// DefaultNSFWMetaKey is the manifest meta-data entry that carries the content-maturity flag.
	DefaultNSFWMetaKey = "tachiyomi.extension.nsfw"
	// DefaultLang is used when a package identifier has no language segment.
	DefaultLang = "all"
)

// Naming holds the conventions used to derive published names from package metadata.
type Naming struct {
	APKPrefix   string `yaml:"apk_prefix"`
	LabelPrefix string `yaml:"label_prefix"`
	NSFWMetaKey string `yaml:"nsfw_meta_key"`
}

// DefaultNaming returns the conventions of the extension ecosystem.
func DefaultNaming() Naming {
	return Naming{
		APKPrefix:   DefaultAPKPrefix,
		LabelPrefix: DefaultLabelPrefix,
		NSFWMetaKey: DefaultNSFWMetaKey,
	}
}

// Lang returns the language segment of a package identifier, the second-to-last dotted component.
func Lang(pkg string) string {
	parts := strings.Split(pkg, ".")
	if len(parts) < 2 {
		return DefaultLang
	}
	return parts[len(parts)-2]
}

// ShortName returns the last dotted component of a package identifier.
func ShortName(pkg string) string {
	parts := strings.Split(pkg, ".")
	return parts[len(parts)-1]
}

// APKName returns the filename a package is published under.
func (n Naming) APKName(pkg, version string) string {
	return n.APKPrefix + "-" + Lang(pkg) + "." + ShortName(pkg) + "-v" + version + ".apk"
}

// DisplayName returns the index name for an application label.
func (n Naming) DisplayName(label string) string {
	return n.LabelPrefix + label
}

// StripLabel removes every occurrence of the label prefix from label.
func (n Naming) StripLabel(label string) string {
	if n.LabelPrefix == "" {
		return label
	}
	return strings.ReplaceAll(label, n.LabelPrefix, "")
}

package aapt

import (
	"regexp"
	"strconv"

	"go.trai.ch/extrepo/internal/core/domain"
)

var (
	packageRe = regexp.MustCompile(`package: name='([^']+)' versionCode='(\d+)' versionName='([^']+)'`)
	labelRe   = regexp.MustCompile(`application-label:'([^']+)'`)
)

// BadgingParser extracts package metadata from `dump badging` output.
type BadgingParser struct {
	naming domain.Naming
	nsfwRe *regexp.Regexp
}

// NewBadgingParser compiles the patterns that depend on naming.
func NewBadgingParser(naming domain.Naming) *BadgingParser {
	p := &BadgingParser{naming: naming}
	if naming.NSFWMetaKey != "" {
		p.nsfwRe = regexp.MustCompile(`meta-data: name='` + regexp.QuoteMeta(naming.NSFWMetaKey) + `' value='(\d+)'`)
	}
	return p
}

// Parse extracts the metadata. Fields without a match keep their zero value.
func (p *BadgingParser) Parse(output string) domain.Metadata {
	var meta domain.Metadata

	if m := packageRe.FindStringSubmatch(output); m != nil {
		meta.Package = m[1]
		meta.VersionCode = atoi(m[2])
		meta.Version = m[3]
	}

	if m := labelRe.FindStringSubmatch(output); m != nil {
		meta.Name = p.naming.StripLabel(m[1])
	}

	if p.nsfwRe != nil {
		if m := p.nsfwRe.FindStringSubmatch(output); m != nil {
			meta.NSFW = atoi(m[1])
		}
	}

	return meta
}

// ParseBadging parses output with a one-off parser for naming.
func ParseBadging(output string, naming domain.Naming) domain.Metadata {
	return NewBadgingParser(naming).Parse(output)
}

func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0
	}
	return n
}

package aapt_test

import (
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/extrepo/internal/adapters/aapt"
	"go.trai.ch/extrepo/internal/core/domain"
)

func TestParseBadging_Sample(t *testing.T) {
	data, err := os.ReadFile("testdata/badging.txt")
	require.NoError(t, err)

	meta := aapt.ParseBadging(string(data), domain.DefaultNaming())

	assert.Equal(t, domain.Metadata{
		Name:        "Inkarr",
		Package:     "eu.kanade.tachiyomi.extension.all.inkarr",
		Version:     "1.4.3",
		VersionCode: 3,
		NSFW:        1,
	}, meta)
}

func TestParseBadging_MissingFieldsDefault(t *testing.T) {
	tests := []struct {
		name   string
		output string
		want   domain.Metadata
	}{
		{
			name:   "empty output",
			output: "",
			want:   domain.Metadata{},
		},
		{
			name:   "label only",
			output: "application-label:'Plain'\n",
			want:   domain.Metadata{Name: "Plain"},
		},
		{
			name:   "package without nsfw",
			output: "package: name='a.en.b' versionCode='12' versionName='1.2'\n",
			want:   domain.Metadata{Package: "a.en.b", Version: "1.2", VersionCode: 12},
		},
		{
			name:   "other meta-data key ignored",
			output: "meta-data: name='other.nsfw' value='1'\n",
			want:   domain.Metadata{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, aapt.ParseBadging(tt.output, domain.DefaultNaming()))
		})
	}
}

func TestParseBadging_CustomNaming(t *testing.T) {
	naming := domain.Naming{LabelPrefix: "Mihon: ", NSFWMetaKey: "mihon.nsfw"}
	output := "application-label:'Mihon: Sample'\nmeta-data: name='mihon.nsfw' value='1'\n"

	meta := aapt.ParseBadging(output, naming)

	assert.Equal(t, "Sample", meta.Name)
	assert.Equal(t, 1, meta.NSFW)
}

func TestBadgingParser_Reuse(t *testing.T) {
	parser := aapt.NewBadgingParser(domain.DefaultNaming())

	first := parser.Parse("package: name='a.en.b' versionCode='1' versionName='1.0'\n" +
		"meta-data: name='tachiyomi.extension.nsfw' value='1'\n")
	second := parser.Parse("package: name='a.en.c' versionCode='2' versionName='2.0'\n")

	assert.Equal(t, domain.Metadata{Package: "a.en.b", Version: "1.0", VersionCode: 1, NSFW: 1}, first)
	assert.Equal(t, domain.Metadata{Package: "a.en.c", Version: "2.0", VersionCode: 2}, second)
}

func TestBadgingParser_EmptyNSFWKey(t *testing.T) {
	parser := aapt.NewBadgingParser(domain.Naming{LabelPrefix: "Tachiyomi: "})

	meta := parser.Parse("meta-data: name='' value='1'\n")

	assert.Equal(t, 0, meta.NSFW)
}

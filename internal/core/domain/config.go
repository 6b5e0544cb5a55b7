package domain

import (
	"strconv"
	"strings"

	"go.trai.ch/zerr"
)

// DefaultConfigFile is the config file looked up in the working directory.
const DefaultConfigFile = "extrepo.yaml"

const (
	defaultAPKDir          = "build/outputs/apk/release"
	defaultOutputDir       = "repo"
	defaultEnvFile         = ".env"
	defaultRepoTemplate    = "repo-template.json"
	defaultVersionTemplate = "1.0.{code}"
	codePlaceholder        = "{code}"
)

// Config is the resolved generator configuration.
type Config struct {
	APKDir    string         `yaml:"apk_dir"`
	OutputDir string         `yaml:"output_dir"`
	RepoURL   string         `yaml:"repo_url"`
	Merge     bool           `yaml:"merge"`
	Tool      string         `yaml:"tool"`
	Jobs      int            `yaml:"jobs"`
	EnvFile   string         `yaml:"env_file"`
	Naming    Naming         `yaml:"naming"`
	Fallback  FallbackRecord `yaml:"fallback"`
	Repo      RepoConfig     `yaml:"repo"`
}

// FallbackRecord describes the metadata assumed for a package when no dump tool is available.
// Empty Name and Pkg are derived from the package filename.
type FallbackRecord struct {
	Name            string `yaml:"name"`
	Pkg             string `yaml:"pkg"`
	VersionTemplate string `yaml:"version_template"`
	Code            int    `yaml:"code"`
	NSFW            int    `yaml:"nsfw"`
	BuildFile       string `yaml:"build_file"`
}

// Version renders the version string for a version code.
func (f FallbackRecord) Version(code int) string {
	return strings.ReplaceAll(f.VersionTemplate, codePlaceholder, strconv.Itoa(code))
}

// RepoConfig configures repo.json generation.
type RepoConfig struct {
	Template string   `yaml:"template"`
	Default  RepoMeta `yaml:"default"`
}

// DefaultConfig returns the configuration used when no config file is present.
func DefaultConfig() Config {
	return Config{
		APKDir:    defaultAPKDir,
		OutputDir: defaultOutputDir,
		Merge:     true,
		Jobs:      1,
		EnvFile:   defaultEnvFile,
		Naming:    DefaultNaming(),
		Fallback: FallbackRecord{
			VersionTemplate: defaultVersionTemplate,
			Code:            1,
		},
		Repo: RepoConfig{
			Template: defaultRepoTemplate,
			Default: RepoMeta{
				Name:      "Extension Repository",
				ShortName: "Extensions",
				Owner:     "extensions",
			},
		},
	}
}

// Validate reports configuration values the generator cannot work with.
func (c *Config) Validate() error {
	if c.OutputDir == "" {
		return zerr.With(ErrInvalidConfig, "field", "output_dir")
	}
	if c.Jobs < 1 {
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "jobs"), "value", c.Jobs)
	}
	if c.Fallback.NSFW != 0 && c.Fallback.NSFW != 1 {
		return zerr.With(zerr.With(ErrInvalidConfig, "field", "fallback.nsfw"), "value", c.Fallback.NSFW)
	}
	return nil
}

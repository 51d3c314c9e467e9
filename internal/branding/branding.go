// Package branding provides compile-time identity values for the CLI.
//
// Forkers who ship a rebranded bundler edit branding.yaml in this package
// and rebuild; Go's //go:embed bakes the values into the binary.
package branding

import (
	_ "embed"
	"strings"
	"sync"

	"go.yaml.in/yaml/v3"
)

//go:embed branding.yaml
var rawBranding []byte

var (
	once     sync.Once
	defaults brand
)

type brand struct {
	CLIName     string `yaml:"cli_name"`
	DisplayName string `yaml:"display_name"`
	Description string `yaml:"description"`
	HomeDir     string `yaml:"home_dir"`
	EnvPrefix   string `yaml:"env_prefix"`
	GoModule    string `yaml:"go_module"`
	GitHubRepo  string `yaml:"github_repo"`
	DefaultApp  string `yaml:"default_app"`
}

func load() {
	once.Do(func() {
		// Hard defaults in case the embedded file is missing/empty.
		defaults = brand{
			CLIName:     "tessbundle",
			DisplayName: "TessBundle",
			Description: "Bundles the Tesseract OCR runtime into desktop application bundles",
			HomeDir:     ".tessbundle",
			EnvPrefix:   "TESSBUNDLE",
			GoModule:    "github.com/tessbundle-labs/tessbundle",
			GitHubRepo:  "tessbundle-labs/tessbundle",
			DefaultApp:  "MediSummary",
		}
		// Overlay with embedded YAML values.
		_ = yaml.Unmarshal(rawBranding, &defaults)
	})
}

// CLIName returns the root command name (e.g., "tessbundle").
func CLIName() string { load(); return defaults.CLIName }

// DisplayName returns the human-readable product name (e.g., "TessBundle").
func DisplayName() string { load(); return defaults.DisplayName }

// Description returns the short product description.
func Description() string { load(); return defaults.Description }

// HomeDir returns the dot-directory name under $HOME (e.g., ".tessbundle").
func HomeDir() string { load(); return defaults.HomeDir }

// EnvPrefix returns the environment variable prefix (e.g., "TESSBUNDLE").
func EnvPrefix() string { load(); return defaults.EnvPrefix }

// GoModule returns the Go module path. Used by rebranding scripts, not at runtime.
func GoModule() string { load(); return defaults.GoModule }

// GitHubRepo returns the "owner/repo" string.
func GitHubRepo() string { load(); return defaults.GitHubRepo }

// DefaultApp returns the application name used in scaffolded manifests.
func DefaultApp() string { load(); return defaults.DefaultApp }

// EnvVar returns a fully qualified env var name,
// e.g., EnvVar("TESSERACT") -> "TESSBUNDLE_TESSERACT".
func EnvVar(suffix string) string {
	load()
	return defaults.EnvPrefix + "_" + strings.ToUpper(suffix)
}

package config

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"

	"github.com/spf13/viper"
	"github.com/tessbundle-labs/tessbundle/internal/branding"
)

const (
	fileName = "config"
	fileType = "yaml"
)

// Known configuration keys.
const (
	// KeyApp is the default application name used by `init`.
	KeyApp = "app"
	// KeyOutputDir is the default destination for `package` archives.
	KeyOutputDir = "output_dir"
)

// KnownKeys lists the keys `config list` reports even when unset.
var KnownKeys = []string{KeyApp, KeyOutputDir}

// Dir returns the path to the config directory (~/.tessbundle/).
func Dir() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return filepath.Join(".", branding.HomeDir())
	}
	return filepath.Join(home, branding.HomeDir())
}

// FilePath returns the full path to the config file (~/.tessbundle/config.yaml).
func FilePath() string {
	return filepath.Join(Dir(), fileName+"."+fileType)
}

// EnsureDir creates the config directory if it does not exist.
func EnsureDir() error {
	dir := Dir()
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("creating config directory %s: %w", dir, err)
	}
	return nil
}

// Load initializes Viper to read from the config file and environment.
func Load() {
	viper.SetConfigFile(FilePath())
	viper.SetConfigType(fileType)
	viper.SetEnvPrefix(branding.EnvPrefix())
	viper.AutomaticEnv()

	viper.SetDefault(KeyApp, branding.DefaultApp())
	viper.SetDefault(KeyOutputDir, "dist")

	// Ignore error if config file doesn't exist yet.
	_ = viper.ReadInConfig()
}

// Get returns a config value by key. Returns empty string if not set.
func Get(key string) string {
	return viper.GetString(key)
}

// Set writes a config key-value pair and saves the config file.
func Set(key, value string) error {
	if err := EnsureDir(); err != nil {
		return err
	}

	viper.Set(key, value)

	configFile := FilePath()
	if _, err := os.Stat(configFile); os.IsNotExist(err) {
		f, err := os.Create(configFile)
		if err != nil {
			return fmt.Errorf("creating config file %s: %w", configFile, err)
		}
		f.Close()
	}

	if err := viper.WriteConfigAs(configFile); err != nil {
		return fmt.Errorf("writing config file: %w", err)
	}
	return nil
}

// Entry is one key/value pair reported by All.
type Entry struct {
	Key   string
	Value string
}

// All returns every known and explicitly set key with its current value,
// sorted by key.
func All() []Entry {
	keys := map[string]bool{}
	for _, k := range KnownKeys {
		keys[k] = true
	}
	for _, k := range viper.AllKeys() {
		keys[k] = true
	}

	sorted := make([]string, 0, len(keys))
	for k := range keys {
		sorted = append(sorted, k)
	}
	sort.Strings(sorted)

	entries := make([]Entry, 0, len(sorted))
	for _, k := range sorted {
		entries = append(entries, Entry{Key: k, Value: viper.GetString(k)})
	}
	return entries
}

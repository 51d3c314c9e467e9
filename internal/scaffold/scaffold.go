package scaffold

import (
	"bytes"
	"embed"
	"fmt"
	"os"
	"strings"
	"text/template"

	"github.com/tessbundle-labs/tessbundle/internal/manifest"
)

//go:embed templates/*.tmpl
var templates embed.FS

// Data holds the variables available to the manifest template.
type Data struct {
	Name       string // manifest name, e.g. "medisummary"
	App        string // application display name, e.g. "MediSummary"
	Version    string // initial bundle version
	MinVersion string // minimum tesseract version gate
}

// NewData derives template data from an application name.
func NewData(app string) *Data {
	return &Data{
		Name:       slug(app),
		App:        app,
		Version:    "0.1.0",
		MinVersion: "5.0",
	}
}

// Generate writes a starter bundle.yaml to outPath. An existing file is only
// replaced when force is set. The rendered manifest is validated against the
// bundle schema before anything touches disk.
func Generate(data *Data, outPath string, force bool) error {
	if _, err := os.Stat(outPath); err == nil && !force {
		return fmt.Errorf("%s already exists (use --force to overwrite)", outPath)
	}

	tmpl, err := template.ParseFS(templates, "templates/bundle.yaml.tmpl")
	if err != nil {
		return fmt.Errorf("parsing manifest template: %w", err)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return fmt.Errorf("rendering manifest: %w", err)
	}

	result, err := manifest.Validate(buf.Bytes())
	if err != nil {
		return fmt.Errorf("validating rendered manifest: %w", err)
	}
	if !result.Valid {
		return fmt.Errorf("rendered manifest is invalid:\n%s", result.IssueLines())
	}

	if err := os.WriteFile(outPath, buf.Bytes(), 0644); err != nil {
		return fmt.Errorf("writing %s: %w", outPath, err)
	}
	return nil
}

// slug lowercases an app name and strips characters that are not valid in a
// manifest name.
func slug(app string) string {
	var b strings.Builder
	for _, r := range strings.ToLower(app) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == '-', r == '_', r == '.':
			b.WriteRune(r)
		case r == ' ':
			b.WriteRune('-')
		}
	}
	if b.Len() == 0 {
		return "bundle"
	}
	return b.String()
}

package scaffold

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/tessbundle-labs/tessbundle/internal/manifest"
)

func TestGenerate(t *testing.T) {
	out := filepath.Join(t.TempDir(), manifest.DefaultFileName)

	if err := Generate(NewData("MediSummary"), out, false); err != nil {
		t.Fatalf("Generate: %v", err)
	}

	m, err := manifest.Load(out)
	if err != nil {
		t.Fatalf("generated manifest does not load: %v", err)
	}

	if m.Name != "medisummary" {
		t.Errorf("Name = %q, want medisummary", m.Name)
	}
	if len(m.Languages) != 2 {
		t.Errorf("Languages len = %d, want 2 (eng, jpn)", len(m.Languages))
	}
	if len(m.Libraries) != 4 {
		t.Errorf("Libraries len = %d, want 4", len(m.Libraries))
	}
	if tgt, ok := m.Target("darwin"); !ok || tgt.Bundle != "build/macos/MediSummary.app" {
		t.Errorf("darwin target = %+v, %v", tgt, ok)
	}
	if _, ok := m.Target("windows"); !ok {
		t.Error("windows target missing")
	}
}

func TestGenerateRefusesOverwrite(t *testing.T) {
	out := filepath.Join(t.TempDir(), manifest.DefaultFileName)
	if err := os.WriteFile(out, []byte("existing"), 0644); err != nil {
		t.Fatal(err)
	}

	if err := Generate(NewData("App"), out, false); err == nil {
		t.Fatal("Generate should refuse to overwrite without force")
	}

	if err := Generate(NewData("App"), out, true); err != nil {
		t.Fatalf("Generate with force: %v", err)
	}
}

func TestSlug(t *testing.T) {
	tests := []struct {
		in, want string
	}{
		{"MediSummary", "medisummary"},
		{"My OCR App", "my-ocr-app"},
		{"", "bundle"},
	}

	for _, tt := range tests {
		if got := slug(tt.in); got != tt.want {
			t.Errorf("slug(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

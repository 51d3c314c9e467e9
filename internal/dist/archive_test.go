package dist

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"io"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/tessbundle-labs/tessbundle/internal/platform"
)

func makeBundle(t *testing.T) string {
	t.Helper()
	bundleDir := filepath.Join(t.TempDir(), "App.app")
	for _, rel := range []string{
		"Contents/Resources/tesseract/tesseract",
		"Contents/Resources/tesseract/tessdata/eng.traineddata",
		"Contents/Resources/tesseract/tessdata/jpn.traineddata",
	} {
		path := filepath.Join(bundleDir, filepath.FromSlash(rel))
		if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
			t.Fatal(err)
		}
		if err := os.WriteFile(path, []byte(rel), 0644); err != nil {
			t.Fatal(err)
		}
	}
	return bundleDir
}

func TestArchiveName(t *testing.T) {
	if got := ArchiveName("medisummary", "0.2.0", platform.Darwin); got != "medisummary_0.2.0_darwin.tar.gz" {
		t.Errorf("darwin name = %q", got)
	}
	if got := ArchiveName("medisummary", "0.2.0", platform.Windows); got != "medisummary_0.2.0_windows.zip" {
		t.Errorf("windows name = %q", got)
	}
}

func TestArchiveTarGz(t *testing.T) {
	bundleDir := makeBundle(t)
	destDir := t.TempDir()

	path, err := Archive(bundleDir, destDir, "medisummary", "0.2.0", platform.Darwin)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}
	if filepath.Base(path) != "medisummary_0.2.0_darwin.tar.gz" {
		t.Errorf("archive = %s", path)
	}

	f, err := os.Open(path)
	if err != nil {
		t.Fatal(err)
	}
	defer f.Close()

	gz, err := gzip.NewReader(f)
	if err != nil {
		t.Fatalf("gzip: %v", err)
	}
	tr := tar.NewReader(gz)

	var names []string
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			break
		}
		if err != nil {
			t.Fatalf("tar: %v", err)
		}
		names = append(names, hdr.Name)
	}

	want := "App.app/Contents/Resources/tesseract/tessdata/jpn.traineddata"
	found := false
	for _, n := range names {
		if n == want {
			found = true
		}
	}
	if !found {
		t.Errorf("archive missing %s, entries: %v", want, names)
	}
}

func TestArchiveZip(t *testing.T) {
	bundleDir := makeBundle(t)
	destDir := t.TempDir()

	path, err := Archive(bundleDir, destDir, "medisummary", "0.2.0", platform.Windows)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}

	zr, err := zip.OpenReader(path)
	if err != nil {
		t.Fatalf("zip: %v", err)
	}
	defer zr.Close()

	found := false
	for _, f := range zr.File {
		if strings.HasSuffix(f.Name, "eng.traineddata") {
			found = true
		}
		if strings.Contains(f.Name, `\`) {
			t.Errorf("zip entry uses backslashes: %s", f.Name)
		}
	}
	if !found {
		t.Error("zip missing eng.traineddata")
	}
}

func TestArchiveMissingBundle(t *testing.T) {
	_, err := Archive(filepath.Join(t.TempDir(), "nope"), t.TempDir(), "x", "0.1.0", platform.Linux)
	if err == nil {
		t.Fatal("Archive should fail for a missing bundle directory")
	}
}

func TestWriteChecksums(t *testing.T) {
	bundleDir := makeBundle(t)
	destDir := t.TempDir()

	path, err := Archive(bundleDir, destDir, "medisummary", "0.2.0", platform.Darwin)
	if err != nil {
		t.Fatalf("Archive: %v", err)
	}

	checksumPath, err := WriteChecksums(path)
	if err != nil {
		t.Fatalf("WriteChecksums: %v", err)
	}

	data, err := os.ReadFile(checksumPath)
	if err != nil {
		t.Fatal(err)
	}
	line := strings.TrimSpace(string(data))
	fields := strings.Fields(line)
	if len(fields) != 2 {
		t.Fatalf("checksums line = %q", line)
	}
	if len(fields[0]) != 64 {
		t.Errorf("checksum %q is not a sha256 hex digest", fields[0])
	}
	if fields[1] != filepath.Base(path) {
		t.Errorf("checksum names %q, want %q", fields[1], filepath.Base(path))
	}
}

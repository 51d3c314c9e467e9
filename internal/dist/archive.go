package dist

import (
	"archive/tar"
	"archive/zip"
	"compress/gzip"
	"crypto/sha256"
	"encoding/hex"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tessbundle-labs/tessbundle/internal/platform"
)

// ArchiveName returns the distribution archive file name for a bundle,
// e.g. "medisummary_0.2.0_darwin.tar.gz" or "medisummary_0.2.0_windows.zip".
func ArchiveName(name, version string, target platform.Target) string {
	ext := ".tar.gz"
	if target == platform.Windows {
		ext = ".zip"
	}
	return fmt.Sprintf("%s_%s_%s%s", name, version, target, ext)
}

// Archive packs bundleDir into destDir using the platform-appropriate
// format and returns the archive path. Entries are stored relative to the
// bundle directory's parent so the bundle unpacks under its own name.
func Archive(bundleDir, destDir, name, version string, target platform.Target) (string, error) {
	info, err := os.Stat(bundleDir)
	if err != nil {
		return "", fmt.Errorf("bundle directory %s: %w", bundleDir, err)
	}
	if !info.IsDir() {
		return "", fmt.Errorf("%s is not a directory", bundleDir)
	}

	if err := os.MkdirAll(destDir, 0755); err != nil {
		return "", fmt.Errorf("creating %s: %w", destDir, err)
	}

	dest := filepath.Join(destDir, ArchiveName(name, version, target))

	if target == platform.Windows {
		err = writeZip(bundleDir, dest)
	} else {
		err = writeTarGz(bundleDir, dest)
	}
	if err != nil {
		os.Remove(dest)
		return "", err
	}
	return dest, nil
}

// WriteChecksums writes a checksums.txt next to the archive containing its
// SHA-256 in the conventional "<hex>  <filename>" form, and returns the
// checksum file path.
func WriteChecksums(archivePath string) (string, error) {
	sum, err := fileSHA256(archivePath)
	if err != nil {
		return "", err
	}

	checksumPath := filepath.Join(filepath.Dir(archivePath), "checksums.txt")
	line := fmt.Sprintf("%s  %s\n", sum, filepath.Base(archivePath))
	if err := os.WriteFile(checksumPath, []byte(line), 0644); err != nil {
		return "", fmt.Errorf("writing %s: %w", checksumPath, err)
	}
	return checksumPath, nil
}

func fileSHA256(path string) (string, error) {
	f, err := os.Open(path)
	if err != nil {
		return "", fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	h := sha256.New()
	if _, err := io.Copy(h, f); err != nil {
		return "", fmt.Errorf("hashing %s: %w", path, err)
	}
	return hex.EncodeToString(h.Sum(nil)), nil
}

func writeTarGz(bundleDir, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	defer out.Close()

	gw := gzip.NewWriter(out)
	tw := tar.NewWriter(gw)

	base := filepath.Base(bundleDir)
	err = filepath.WalkDir(bundleDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		rel, err := filepath.Rel(bundleDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(filepath.Join(base, rel))

		info, err := d.Info()
		if err != nil {
			return err
		}

		if d.IsDir() {
			hdr := &tar.Header{Name: name + "/", Mode: int64(info.Mode().Perm()), Typeflag: tar.TypeDir}
			return tw.WriteHeader(hdr)
		}
		if !d.Type().IsRegular() {
			return nil
		}

		hdr := &tar.Header{
			Name:    name,
			Mode:    int64(info.Mode().Perm()),
			Size:    info.Size(),
			ModTime: info.ModTime(),
		}
		if err := tw.WriteHeader(hdr); err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(tw, f)
		return err
	})
	if err != nil {
		tw.Close()
		gw.Close()
		return fmt.Errorf("archiving %s: %w", bundleDir, err)
	}

	if err := tw.Close(); err != nil {
		return err
	}
	return gw.Close()
}

func writeZip(bundleDir, dest string) error {
	out, err := os.Create(dest)
	if err != nil {
		return fmt.Errorf("creating %s: %w", dest, err)
	}
	defer out.Close()

	zw := zip.NewWriter(out)

	base := filepath.Base(bundleDir)
	err = filepath.WalkDir(bundleDir, func(path string, d fs.DirEntry, walkErr error) error {
		if walkErr != nil {
			return walkErr
		}
		if d.IsDir() || !d.Type().IsRegular() {
			return nil
		}
		rel, err := filepath.Rel(bundleDir, path)
		if err != nil {
			return err
		}
		name := filepath.ToSlash(filepath.Join(base, rel))
		// Zip spec requires forward slashes.
		name = strings.TrimPrefix(name, "/")

		w, err := zw.Create(name)
		if err != nil {
			return err
		}
		f, err := os.Open(path)
		if err != nil {
			return err
		}
		defer f.Close()
		_, err = io.Copy(w, f)
		return err
	})
	if err != nil {
		zw.Close()
		return fmt.Errorf("archiving %s: %w", bundleDir, err)
	}

	return zw.Close()
}

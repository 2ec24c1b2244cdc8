package artifact

import (
	"archive/zip"
	"bytes"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"bank-marketing-service/internal/core/domain"
)

var zipMagic = []byte{0x50, 0x4B, 0x03, 0x04}

// sniffZip checks the file's leading magic bytes. The locator's apparent
// extension is never trusted.
func sniffZip(path string) (bool, error) {
	f, err := os.Open(path)
	if err != nil {
		return false, err
	}
	defer f.Close()

	header := make([]byte, len(zipMagic))
	n, err := io.ReadFull(f, header)
	if err != nil && err != io.ErrUnexpectedEOF && err != io.EOF {
		return false, err
	}
	return bytes.Equal(header[:n], zipMagic), nil
}

// extractToTarget unpacks an archive into a staging sibling of targetDir
// and renames it into place, so no reader ever observes a partial bundle.
func extractToTarget(archivePath, targetDir string, force bool) error {
	staging, err := os.MkdirTemp(filepath.Dir(targetDir), ".extract-")
	if err != nil {
		return fmt.Errorf("create extraction dir: %w", err)
	}
	defer os.RemoveAll(staging)

	entries, err := extractZip(archivePath, staging)
	if err != nil {
		return fmt.Errorf("%w: %v", domain.ErrArtifactUnavailable, err)
	}
	if entries == 0 {
		return fmt.Errorf("%w: archive holds no payload", domain.ErrArtifactUnavailable)
	}

	return placeAtomically(staging, targetDir, force)
}

func extractZip(archivePath, destDir string) (int, error) {
	reader, err := zip.OpenReader(archivePath)
	if err != nil {
		return 0, fmt.Errorf("open archive: %w", err)
	}
	defer reader.Close()

	files := 0
	for _, entry := range reader.File {
		cleaned := filepath.Clean(entry.Name)
		if strings.HasPrefix(cleaned, "..") || filepath.IsAbs(cleaned) {
			return 0, fmt.Errorf("archive entry escapes target: %s", entry.Name)
		}
		dest := filepath.Join(destDir, cleaned)

		if entry.FileInfo().IsDir() {
			if err := os.MkdirAll(dest, 0o755); err != nil {
				return 0, err
			}
			continue
		}

		if err := os.MkdirAll(filepath.Dir(dest), 0o755); err != nil {
			return 0, err
		}
		if err := writeZipEntry(entry, dest); err != nil {
			return 0, err
		}
		files++
	}
	return files, nil
}

func writeZipEntry(entry *zip.File, dest string) (retErr error) {
	src, err := entry.Open()
	if err != nil {
		return fmt.Errorf("open archive entry %s: %w", entry.Name, err)
	}
	defer src.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, entry.Mode())
	if err != nil {
		return fmt.Errorf("create extracted file: %w", err)
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && retErr == nil {
			retErr = fmt.Errorf("close extracted file: %w", cerr)
		}
	}()

	if _, err := io.Copy(out, src); err != nil {
		return fmt.Errorf("write extracted file: %w", err)
	}
	return nil
}

// copyTreeToStaging copies a local source directory into a staging sibling
// of targetDir, ready for the atomic rename.
func copyTreeToStaging(sourceDir, targetDir string) (string, error) {
	staging, err := os.MkdirTemp(filepath.Dir(targetDir), ".copy-")
	if err != nil {
		return "", fmt.Errorf("create staging dir: %w", err)
	}

	err = filepath.Walk(sourceDir, func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		rel, err := filepath.Rel(sourceDir, path)
		if err != nil {
			return err
		}
		dest := filepath.Join(staging, rel)
		if info.IsDir() {
			return os.MkdirAll(dest, 0o755)
		}
		return copyFile(path, dest, info.Mode())
	})
	if err != nil {
		os.RemoveAll(staging)
		return "", fmt.Errorf("copy artifact directory: %w", err)
	}
	return staging, nil
}

func copyFile(src, dest string, mode os.FileMode) (retErr error) {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	out, err := os.OpenFile(dest, os.O_CREATE|os.O_WRONLY|os.O_TRUNC, mode)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := out.Close(); cerr != nil && retErr == nil {
			retErr = cerr
		}
	}()

	_, err = io.Copy(out, in)
	return err
}

// placeAtomically renames the fully-populated staging directory onto the
// target path. Losing the rename race to another process resolving the
// same locator is fine: a complete bundle is already in place.
func placeAtomically(staging, targetDir string, force bool) error {
	if force {
		if err := os.RemoveAll(targetDir); err != nil {
			return fmt.Errorf("clear target for forced resolve: %w", err)
		}
	}

	if err := os.Rename(staging, targetDir); err != nil {
		if info, statErr := os.Stat(targetDir); statErr == nil && info.IsDir() {
			os.RemoveAll(staging)
			return nil
		}
		return fmt.Errorf("place artifact at target: %w", err)
	}
	return nil
}

package scheme

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
)

// WriteAtomic writes the output of encode to a temporary file next to path
// and renames it into place once complete. The temporary file is removed when
// anything fails.
func WriteAtomic(path string, encode func(io.Writer) error) (err error) {
	destDir, destName := filepath.Split(path)
	if destDir == "" {
		destDir = "."
	}

	outFile, err := os.CreateTemp(destDir, destName)
	if err != nil {
		return fmt.Errorf("could not create temporary destination %q: %w", destName, err)
	}
	canRename := false
	defer func() {
		if defErr := outFile.Sync(); defErr != nil && err == nil {
			err = fmt.Errorf("could not flush temporary destination %q: %w", destName, defErr)
		}
		if defErr := outFile.Close(); defErr != nil && err == nil {
			err = fmt.Errorf("could not close temporary destination %q: %w", destName, defErr)
		}

		if canRename && err == nil {
			if defErr := os.Rename(outFile.Name(), path); defErr != nil {
				err = fmt.Errorf("could not rename destination file %q: %w", destName, defErr)
			}
		}
		if err != nil {
			if defErr := os.Remove(outFile.Name()); defErr != nil {
				slog.Error("could not remove temporary file", "name", outFile.Name(), "error", defErr)
			}
		}
	}()

	if err = encode(outFile); err != nil {
		return err
	}
	// CreateTemp uses 0600
	if err = outFile.Chmod(0o644); err != nil {
		return fmt.Errorf("could not set mode of temporary destination %q: %w", destName, err)
	}

	canRename = true
	return nil
}

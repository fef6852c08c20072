// Package fileio resolves command input and output to files or standard streams.
package fileio

import (
	"io"
	"os"
	"path/filepath"

	"github.com/rs/zerolog/log"
)

// ReadInput reads the whole input file, or stdin when path is empty.
func ReadInput(path string) ([]byte, error) {
	if path == "" {
		return io.ReadAll(os.Stdin)
	}

	return os.ReadFile(path)
}

// WriteOutput writes data to the output file, or stdout when path is empty.
// Parent directories of the output file are created as needed.
func WriteOutput(path string, data []byte) error {
	if path == "" {
		_, err := os.Stdout.Write(data)
		return err
	}

	if dir := filepath.Dir(path); dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return err
		}
	}

	f, err := os.Create(path)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		if closeErr := f.Close(); closeErr != nil {
			log.Error().Err(closeErr).Str("path", path).Msg("Failed to close file")
		}
		return err
	}

	// We care about write errors on close
	return f.Close()
}

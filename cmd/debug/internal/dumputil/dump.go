// Package dumputil provides shared output helpers for the storedump debug
// tool. It decides where extracted files go, keeps file names shell-safe and
// guesses document extensions when the store does not record one.
package dumputil

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// OutputDir picks the directory extracted files are written to. When outDir
// is empty everything lands next to the input database.
func OutputDir(inPath, outDir string) string {
	if outDir != "" {
		return outDir
	}
	return filepath.Dir(inPath)
}

// WriteNamed writes data to dir/name refusing to clobber existing files
// unless overwrite is set.
func WriteNamed(dir, name string, data []byte, overwrite bool) error {
	outPath := filepath.Join(dir, name)

	if _, err := os.Stat(outPath); err == nil {
		if !overwrite {
			return fmt.Errorf("output file already exists: %s (use -overwrite)", outPath)
		}
	} else if !errors.Is(err, os.ErrNotExist) {
		return err
	}

	if err := os.WriteFile(outPath, data, 0o644); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "wrote %s\n", outPath)
	return nil
}

// DocumentExt returns the extension for a stored theme document. The format
// column is authoritative, content sniffing is a fallback for rows written by
// older exporters which left it empty.
func DocumentExt(format string, doc []byte) string {
	switch strings.ToLower(strings.TrimSpace(strings.TrimPrefix(format, "."))) {
	case "yaml":
		return ".yaml"
	case "yml":
		return ".yml"
	case "json":
		return ".json"
	}
	if bytes.HasPrefix(bytes.TrimLeft(doc, " \t\r\n"), []byte("{")) {
		return ".json"
	}
	return ".yaml"
}

// SanitizeFileComponent cleans a string for use in a filename.
func SanitizeFileComponent(s string) string {
	s = strings.TrimSpace(s)
	if s == "" {
		return "unnamed"
	}
	return strings.Map(func(r rune) rune {
		if r >= 'a' && r <= 'z' || r >= 'A' && r <= 'Z' || r >= '0' && r <= '9' || strings.ContainsRune("-_.", r) {
			return r
		}
		return '_'
	}, s)
}

package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/dshunter/dshunter/instance"
	"github.com/dshunter/dshunter/pace"
)

// readInstance opens path and parses it as .gr or .ads, chosen by extension
// unless format overrides the guess ("gr", "ads", or "" to auto-detect).
func readInstance(path, format string) (*instance.Instance, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening %s: %w", path, err)
	}
	defer f.Close()

	switch resolveFormat(path, format) {
	case "ads":
		return pace.ParseADS(f)
	case "gr":
		return pace.ParseGR(f)
	default:
		return nil, fmt.Errorf("%s: cannot determine format, pass gr or ads via --format (--from for convert)", path)
	}
}

func resolveFormat(path, format string) string {
	switch strings.ToLower(format) {
	case "gr", "ads":
		return strings.ToLower(format)
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".ads":
		return "ads"
	case ".gr":
		return "gr"
	default:
		return ""
	}
}

// openOutput opens path for writing, or returns stdout if path is "" or "-".
func openOutput(path string) (io.WriteCloser, error) {
	if path == "" || path == "-" {
		return nopCloser{os.Stdout}, nil
	}
	f, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("creating %s: %w", path, err)
	}
	return f, nil
}

type nopCloser struct{ io.Writer }

func (nopCloser) Close() error { return nil }

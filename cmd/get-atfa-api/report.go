package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/fofoni/atfa-get/download"
)

func reportOutcome(w io.Writer, out download.Outcome) {
	path := displayPath(out.Target.Path)

	switch out.Action {
	case download.Skipped:
		fmt.Fprintf(w, "Nonempty file ‘%s’ already exists: skipping download. Use ‘-f’ to download and override.\n", path)
	default:
		fmt.Fprintf(w, "Successfully downloaded ATFA API header file ‘%s’\n", path)
	}
}

func reportError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}

// displayPath shortens p to a path relative to the working directory when p
// lies below it.
func displayPath(p string) string {
	wd, err := os.Getwd()
	if err != nil {
		return p
	}
	rel, err := filepath.Rel(wd, p)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return p
	}
	return rel
}

package download

import (
	"fmt"
	"net/url"
	"os"
	"path"
	"path/filepath"
	"strings"
)

// Built-in defaults.
const (
	DefaultFilename = "atfa_api.h"
	DefaultDir      = "src"
	DefaultURL      = "https://github.com/fofoni/atfa-examples/raw/master/" + DefaultFilename
)

// Defaults holds the values used when the command line leaves something out.
type Defaults struct {
	URL      string
	Dir      string
	Filename string
}

// DefaultDefaults returns the built-in defaults.
func DefaultDefaults() Defaults {
	return Defaults{
		URL:      DefaultURL,
		Dir:      DefaultDir,
		Filename: DefaultFilename,
	}
}

// Request is what the user asked for. An empty Outfile means none was given.
type Request struct {
	URL     string
	Outfile string
	Force   bool
}

// Target is the resolved destination of a download.
type Target struct {
	Dir      string // absolute
	Filename string
	Path     string // Dir joined with Filename
}

// Resolve computes the destination for req. Apart from checking whether
// Outfile names an existing directory it does not touch the filesystem.
func Resolve(req Request, defs Defaults) (Target, error) {
	if req.URL == "" {
		return Target{}, fmt.Errorf("%w: URL must be non-empty", ErrInvalidInput)
	}

	parsed, err := url.Parse(req.URL)
	if err != nil {
		return Target{}, fmt.Errorf("%w: invalid URL %q: %v", ErrInvalidInput, req.URL, err)
	}
	if parsed.Scheme != "http" && parsed.Scheme != "https" {
		return Target{}, fmt.Errorf("%w: URL %q: scheme must be http or https", ErrInvalidInput, req.URL)
	}

	var dir, filename string
	if req.Outfile == "" {
		dir = defs.Dir
		filename = filenameFromPath(parsed.EscapedPath(), defs.Filename)
	} else {
		if looksLikeDir(req.Outfile) {
			return Target{}, fmt.Errorf("%w: OUTFILE %q is a directory", ErrInvalidInput, req.Outfile)
		}
		dir = filepath.Dir(req.Outfile)
		filename = filepath.Base(req.Outfile)
	}

	abs, err := filepath.Abs(dir)
	if err != nil {
		return Target{}, fmt.Errorf("%w: resolve %q: %v", ErrInvalidInput, dir, err)
	}

	return Target{
		Dir:      abs,
		Filename: filename,
		Path:     filepath.Join(abs, filename),
	}, nil
}

// FilenameFromURL returns the last segment of rawURL's path, or fallback when
// the path does not name a file (empty, or ending in a slash). The segment is
// taken from the escaped path, so "%2F" and "%5C" stay literal.
func FilenameFromURL(rawURL, fallback string) string {
	parsed, err := url.Parse(rawURL)
	if err != nil {
		return fallback
	}
	return filenameFromPath(parsed.EscapedPath(), fallback)
}

func filenameFromPath(p, fallback string) string {
	if p == "" || strings.HasSuffix(p, "/") {
		return fallback
	}
	name := path.Base(p)
	switch name {
	case "", ".", "..", "/":
		return fallback
	}
	// never let the name step outside the target directory
	if strings.ContainsAny(name, `/\`) || filepath.Base(name) != name {
		return fallback
	}
	return name
}

// looksLikeDir reports whether p denotes a directory, either by its spelling
// or because a directory already exists there.
func looksLikeDir(p string) bool {
	if strings.HasSuffix(p, "/") || strings.HasSuffix(p, string(filepath.Separator)) {
		return true
	}
	switch filepath.Base(p) {
	case ".", "..":
		// covers ".", "..", "a/." and "a/.."
		return true
	}
	info, err := os.Stat(p)
	return err == nil && info.IsDir()
}

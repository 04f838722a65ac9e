package download

import (
	"net/http"
	"os"
	"time"
)

// Option configures a Downloader.
type Option func(*config)

// ConfirmFunc is asked whether a nonempty file at path should be replaced.
// It is only consulted when the run is not forced.
type ConfirmFunc func(path string) (bool, error)

type config struct {
	defaults   Defaults
	httpClient *http.Client
	timeout    time.Duration
	fileMode   os.FileMode
	confirm    ConfirmFunc
}

func defaultConfig() config {
	return config{
		defaults: DefaultDefaults(),
		fileMode: DefaultFileMode,
	}
}

// WithDefaults replaces the built-in default URL, directory and filename.
func WithDefaults(d Defaults) Option {
	return func(c *config) {
		c.defaults = d
	}
}

// WithHTTPClient sets the client used for the GET.
func WithHTTPClient(client *http.Client) Option {
	return func(c *config) {
		c.httpClient = client
	}
}

// WithTimeout bounds the whole request, body included. Zero means no limit.
func WithTimeout(d time.Duration) Option {
	return func(c *config) {
		c.timeout = d
	}
}

// WithFileMode sets the permissions of newly created files.
func WithFileMode(mode os.FileMode) Option {
	return func(c *config) {
		c.fileMode = mode
	}
}

// WithConfirm installs a hook that may turn a skip into an overwrite.
//
// Example:
//
//	download.New(download.WithConfirm(func(path string) (bool, error) {
//	    return askUser("overwrite " + path + "?")
//	}))
func WithConfirm(fn ConfirmFunc) Option {
	return func(c *config) {
		c.confirm = fn
	}
}

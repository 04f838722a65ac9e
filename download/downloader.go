package download

import (
	"context"
	"fmt"

	"fortio.org/log"
)

// Action says what a run ended up doing.
type Action int

const (
	Downloaded Action = iota
	Skipped
)

func (a Action) String() string {
	switch a {
	case Downloaded:
		return "downloaded"
	case Skipped:
		return "skipped"
	default:
		return fmt.Sprintf("Action(%d)", int(a))
	}
}

// Outcome describes a successful run.
type Outcome struct {
	Action Action
	Target Target
	Bytes  int
}

// Downloader runs resolve, check, fetch and write in that order.
type Downloader struct {
	cfg     config
	fetcher *Fetcher
	writer  *Writer
}

func New(opts ...Option) *Downloader {
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Downloader{
		cfg: cfg,
		fetcher: NewFetcher(FetcherConfig{
			Client:  cfg.httpClient,
			Timeout: cfg.timeout,
		}),
		writer: NewWriter(cfg.fileMode),
	}
}

// Defaults returns the defaults this Downloader fills missing arguments with.
func (d *Downloader) Defaults() Defaults {
	return d.cfg.defaults
}

// Run performs one download. A nonempty file at the target is left alone
// unless req.Force is set (or the confirm hook agrees); in that case no
// request is made and the outcome is Skipped.
func (d *Downloader) Run(ctx context.Context, req Request) (Outcome, error) {
	target, err := Resolve(req, d.cfg.defaults)
	if err != nil {
		return Outcome{}, err
	}
	log.Debugf("Resolved target %q (dir %q, file %q)", target.Path, target.Dir, target.Filename)

	decision, err := Check(target, req.Force)
	if err != nil {
		return Outcome{}, err
	}
	if decision == Skip && d.cfg.confirm != nil {
		ok, err := d.cfg.confirm(target.Path)
		if err != nil {
			return Outcome{}, fmt.Errorf("confirm overwrite of %q: %w", target.Path, err)
		}
		if ok {
			decision = Proceed
		}
	}
	log.Debugf("Existence check for %q: %v (force=%v)", target.Path, decision, req.Force)
	if decision == Skip {
		return Outcome{Action: Skipped, Target: target}, nil
	}

	log.Debugf("Fetching %s", req.URL)
	res, err := d.fetcher.Fetch(ctx, req.URL)
	if err != nil {
		return Outcome{}, fmt.Errorf("could not download %q from %q: %w", target.Filename, req.URL, err)
	}
	log.Debugf("Got %d bytes (status %d)", len(res.Body), res.StatusCode)

	if err := d.writer.Write(target.Path, res.Body); err != nil {
		return Outcome{}, fmt.Errorf("could not save %q: %w", target.Path, err)
	}

	return Outcome{
		Action: Downloaded,
		Target: target,
		Bytes:  len(res.Body),
	}, nil
}

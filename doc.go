// Package atfaget downloads the ATFA API header (or any single file) over
// HTTP into a local path.
//
// # Overview
//
// The work is done by the [download] package; cmd/get-atfa-api wraps it in
// a command line:
//
//	get-atfa-api [URL] [OUTFILE] [-f|--force]
//
// With no arguments the header is fetched from the atfa-examples repository
// into src/atfa_api.h. A nonempty file already there is kept unless -f is
// given.
//
// # Library Usage
//
//	d := download.New(download.WithTimeout(30 * time.Second))
//	out, err := d.Run(ctx, download.Request{
//	    URL:     download.DefaultURL,
//	    Outfile: "include/atfa_api.h",
//	})
//
// See the [download] package for the resolution rules and error kinds.
package atfaget

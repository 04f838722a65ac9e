// Package download fetches a single file over HTTP into a local path.
//
// # Overview
//
// A run is strictly linear: the [Request] is resolved into a [Target],
// the existence check decides whether to go on, one GET is made and the
// body is written over the target.
//
// # Basic Usage
//
//	d := download.New()
//	out, err := d.Run(ctx, download.Request{URL: download.DefaultURL})
//	if err != nil {
//	    log.Fatal(err)
//	}
//	fmt.Println(out.Action, out.Target.Path)
//
// # Existing Files
//
// A nonempty file already at the target is kept and the run reports
// [Skipped] without touching the network. Set [Request.Force] to replace it.
// Empty files are treated as missing. A directory at the target is always
// an error, forced or not.
//
// # Errors
//
// Every error wraps one of [ErrInvalidInput], [ErrTargetIsDirectory],
// [ErrDownloadFailed] or [ErrWriteFailed]. The one exception is an error
// from a [ConfirmFunc], which is returned as is with the target path added.
package download

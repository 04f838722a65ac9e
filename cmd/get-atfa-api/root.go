package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"
	"time"

	"fortio.org/log"
	"github.com/fofoni/atfa-get/download"
	"github.com/spf13/cobra"
)

func newRootCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "get-atfa-api [URL] [OUTFILE]",
		Short: "Download ATFA API header",
		Long: `get-atfa-api - Download the ATFA API header file.

URL defaults to ` + download.DefaultURL + `.
OUTFILE defaults to ` + download.DefaultDir + `/ plus the file name taken from URL
(` + download.DefaultFilename + ` when URL ends with a slash). OUTFILE must name a
file, not a directory.

A nonempty file already at OUTFILE is left alone; use -f to download and
override it. An empty file is replaced without asking.`,
		Args:          cobra.MaximumNArgs(2),
		SilenceErrors: true,
		SilenceUsage:  true,
		RunE:          runGet,
	}

	cmd.Flags().BoolP("force", "f", false, "download even if file already exists")
	cmd.Flags().BoolP("interactive", "i", false, "ask before skipping an existing nonempty file")
	cmd.Flags().BoolP("verbose", "v", false, "log each step to stderr")
	cmd.Flags().Duration("timeout", 0, "request timeout (0 means none)")

	return cmd
}

// Execute runs the command line and returns the process exit code.
func Execute() int {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	return execute(ctx, newRootCmd())
}

func execute(ctx context.Context, cmd *cobra.Command) int {
	if err := cmd.ExecuteContext(ctx); err != nil {
		reportError(cmd.ErrOrStderr(), err)
		return 1
	}
	return 0
}

func buildOptions(cmd *cobra.Command) []download.Option {
	interactive, _ := cmd.Flags().GetBool("interactive")
	timeout, _ := cmd.Flags().GetDuration("timeout")

	var opts []download.Option
	if timeout > 0 {
		opts = append(opts, download.WithTimeout(timeout))
	}
	if interactive {
		p := &prompter{in: cmd.InOrStdin(), out: cmd.ErrOrStderr()}
		opts = append(opts, download.WithConfirm(p.Confirm))
	}

	return opts
}

func runGet(cmd *cobra.Command, args []string) error {
	force, _ := cmd.Flags().GetBool("force")
	verbose, _ := cmd.Flags().GetBool("verbose")

	if verbose {
		log.SetLogLevel(log.Debug)
	}

	d := download.New(buildOptions(cmd)...)

	req := download.Request{
		URL:   d.Defaults().URL,
		Force: force,
	}
	if len(args) > 0 {
		req.URL = args[0]
	}
	if len(args) > 1 {
		req.Outfile = args[1]
	}

	start := time.Now()
	out, err := d.Run(cmd.Context(), req)
	if err != nil {
		return err
	}
	log.Debugf("Finished in %v: %v %d bytes", time.Since(start), out.Action, out.Bytes)

	reportOutcome(cmd.OutOrStdout(), out)
	return nil
}

// Command rkmatch reports how many fixed-size chunks of a query document
// occur verbatim in one or more target documents.
//
//	rkmatch [-t algo] [-k size] [-q prime] query_doc doc [doc...]
package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/cobra"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cmd := newRootCommand()
	cmd.SetOut(os.Stdout)
	cmd.SetErr(os.Stderr)

	if err := cmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, "rkmatch:", err)
		stop()
		os.Exit(1)
	}
}

func newRootCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "rkmatch [flags] query_doc doc [doc...]",
		Short: "Match every k-byte chunk of a query document against other documents",
		Long: `rkmatch cuts the normalized query document into chunks of k bytes and
reports, for each target document, how many chunks occur in it:

  <ratio> matched: <matched> out of <chunks>

Documents may be local paths or s3://, minio:// and file:// URLs and may be
compressed (.zst, .gz, .lz4).`,
		Args:          cobra.MinimumNArgs(2),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd.Context(), cmd, args)
		},
	}
	addFlags(cmd)
	return cmd
}

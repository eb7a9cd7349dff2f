package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"

	"github.com/spf13/afero"

	"github.com/iudanet/scraperadmin/internal/client/cli"
	"github.com/iudanet/scraperadmin/internal/client/iocli"
)

var (
	// Version information set via ldflags during build
	Version   = "dev"
	BuildDate = "unknown"
	GitCommit = "unknown"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	root := cli.NewRootCmd(cli.Deps{
		IO:      iocli.NewStdio(),
		Fs:      afero.NewOsFs(),
		Version: fmt.Sprintf("%s\nBuild Date: %s\nGit Commit: %s", Version, BuildDate, GitCommit),
	})

	if err := root.ExecuteContext(ctx); err != nil {
		if !errors.Is(err, cli.ErrReported) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		stop()
		os.Exit(1)
	}
}

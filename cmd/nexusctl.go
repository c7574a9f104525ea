package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/coding-wepack/nexusctl/pkg/action"
	"github.com/coding-wepack/nexusctl/pkg/log"
	"github.com/coding-wepack/nexusctl/pkg/settings"
)

func main() {
	defer log.Sync()

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	cfg := new(action.Configuration)
	cmd, err := newRootCmd(cfg, os.Stdout, os.Args[1:])
	if err != nil {
		log.Warn(err.Error())
		os.Exit(1)
	}

	if err := cmd.ExecuteContext(ctx); err != nil {
		debug("%+v", err)
		os.Exit(1)
	}
}

func debug(format string, v ...interface{}) {
	if settings.Verbose {
		log.Debug(fmt.Sprintf(format, v...))
	}
}

func warning(format string, v ...interface{}) {
	format = fmt.Sprintf("WARNING: %s\n", format)
	_, _ = fmt.Fprintf(os.Stderr, format, v...)
}

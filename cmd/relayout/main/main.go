package main

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/arthur-debert/relayout/cmd/relayout"
	"github.com/arthur-debert/relayout/pkg/display"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	rootCmd := relayout.NewRootCmd()
	if err := rootCmd.ExecuteContext(ctx); err != nil {
		_ = display.NewRenderer(os.Stderr, display.FormatAuto).RenderError(err)
		stop()
		os.Exit(1)
	}
}

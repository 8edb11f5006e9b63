package main

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/PolarWolf314/gctx/cmd"
	"github.com/PolarWolf314/gctx/internal/ui"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := cmd.GctxCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, ui.Error.Sprint("Error:")+" "+err.Error())
		if hint := cmd.Hint(err); hint != "" {
			fmt.Fprintln(os.Stderr, hint)
		}
		stop()
		os.Exit(1)
	}
}

// Command taskstack is an interactive task tracker with an urgent-task stack.
package main

import (
	"context"
	"os"
	"os/signal"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	err := Execute(ctx)
	stop()
	if err != nil {
		fatal(err)
		os.Exit(1)
	}
}

package main

import (
	"context"
	"os"
	"os/signal"

	"github.com/MrEthical07/gamewatch/cmd/gamewatch/commands"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := commands.Execute(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

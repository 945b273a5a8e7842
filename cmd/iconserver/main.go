package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/botprofile/personaicons/internal/cmd/iconserver"
	"github.com/botprofile/personaicons/internal/platform/cmd"
)

// main starts the icon HTTP API and the optional MCP adapter.
func main() {
	cfg, err := iconserver.ParseConfig(flag.CommandLine, os.Args[1:], nil)
	if err != nil {
		log.Fatalf("parse flags: %v", err)
	}
	log.SetPrefix(cmd.LogPrefix(cmd.ServiceIconServer))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := iconserver.Run(ctx, cfg); err != nil {
		log.Fatalf("failed to serve icons: %v", err)
	}
}

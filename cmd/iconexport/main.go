package main

import (
	"context"
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/botprofile/personaicons/internal/platform/cmd"
	"github.com/botprofile/personaicons/internal/platform/config"
	"github.com/botprofile/personaicons/internal/tools/iconexport"
)

// main exports the embedded icon library to disk.
func main() {
	cfg, err := iconexport.ParseConfig(flag.CommandLine, os.Args[1:])
	if err != nil {
		config.Exitf("Error: %v", err)
	}
	log.SetPrefix(cmd.LogPrefix(cmd.ServiceIconExport))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err := iconexport.Run(ctx, cfg, os.Stdout); err != nil {
		config.Exitf("Error: %v", err)
	}
}

// Package main implements the gbcore executable: a CLI front end that
// loads a ROM, wires the core together, and drives it to completion or a
// fatal decode error.
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"gbcore/internal/app"
	"gbcore/internal/version"
)

func main() {
	var (
		configFile = flag.String("config", "", "Path to configuration file")
		nogui      = flag.Bool("nogui", false, "Run without a window (headless mode)")
		trace      = flag.Bool("trace", false, "Log every retired instruction")
		showVer    = flag.Bool("version", false, "Show version information")
	)
	flag.Usage = printUsage
	flag.Parse()

	if *showVer {
		fmt.Println(version.GetDetailedVersion())
		os.Exit(0)
	}

	romPath := flag.Arg(0)
	if romPath == "" {
		printUsage()
		os.Exit(2)
	}

	configPath := *configFile
	if configPath == "" {
		configPath = app.GetDefaultConfigPath()
	}

	cfg := app.NewConfig()
	if err := cfg.LoadFromFile(configPath); err != nil {
		log.Fatalf("gbcore: load config: %v", err)
	}
	if *nogui {
		cfg.Emulation.Headless = true
	}
	if *trace {
		cfg.Debug.CPUTracing = true
	}

	application, err := app.New(cfg, romPath)
	if err != nil {
		log.Fatalf("gbcore: %v", err)
	}

	if err := application.Run(); err != nil {
		log.Printf("gbcore: fatal: %v", err)
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Fprintln(os.Stderr, "gbcore - Go Game Boy emulator core")
	fmt.Fprintln(os.Stderr, "")
	fmt.Fprintln(os.Stderr, "Usage: gbcore [flags] <rom-file>")
	fmt.Fprintln(os.Stderr, "")
	flag.PrintDefaults()
}

package main

import (
	"context"
	"flag"
	"fmt"
	"os"

	"github.com/skillsenselab/yt-transcriber/internal/app"
	"github.com/skillsenselab/yt-transcriber/internal/config"
	"github.com/skillsenselab/yt-transcriber/internal/version"
)

func main() {
	var (
		configFile  = flag.String("config", "", "path to config.yml (searched if empty)")
		envFile     = flag.String("env-file", "", "path to .env file (searched if empty)")
		showVersion = flag.Bool("version", false, "print version and exit")
	)
	flag.Parse()

	if *showVersion {
		fmt.Println(version.GetVersionInfo().String())
		return
	}

	var cfg config.Config
	if err := config.Load(&cfg,
		config.WithConfigFile(*configFile),
		config.WithEnvFile(*envFile),
	); err != nil {
		fmt.Fprintf(os.Stderr, "load config: %v\n", err)
		os.Exit(1)
	}
	cfg.ApplyDefaults()
	if err := cfg.Validate(); err != nil {
		fmt.Fprintf(os.Stderr, "invalid config: %v\n", err)
		os.Exit(1)
	}

	if err := app.New(&cfg).Run(context.Background()); err != nil {
		fmt.Fprintf(os.Stderr, "run: %v\n", err)
		os.Exit(1)
	}
}

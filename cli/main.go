package main

import (
	"fmt"
	"os"

	"github.com/rogerio-castellano/inventory-cli/internal/cli"
	"github.com/rogerio-castellano/inventory-cli/internal/config"
	"github.com/rogerio-castellano/inventory-cli/internal/input"
	"github.com/rogerio-castellano/inventory-cli/internal/logger"
	"github.com/rogerio-castellano/inventory-cli/internal/repo"
	"github.com/spf13/pflag"
)

func main() {
	configFile := pflag.StringP("config", "c", "", "path to a YAML config file")
	skipLogin := pflag.Bool("no-login", false, "skip the operator login gate")
	pflag.Parse()

	cfg, err := config.Load(*configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "could not load configuration:", err)
		os.Exit(1)
	}

	// logs go to stderr so they never interleave with the menu
	log := logger.New(os.Stderr, cfg.Log.Level)

	products := repo.NewFileProductRepository(cfg.Store.File,
		repo.WithCapacity(cfg.Store.Capacity),
		repo.WithMaxNameLength(cfg.Store.MaxNameLength),
		repo.WithLogger(log),
	)
	if err := products.Load(); err != nil {
		log.Error("could not load inventory", "path", cfg.Store.File, "error", err)
		os.Exit(1)
	}

	prompt := input.NewPrompter(os.Stdin, os.Stdout, cfg.Store.MaxNameLength)
	menu := cli.NewMenu(products, prompt, os.Stdout, log)

	if !*skipLogin {
		if _, err := menu.Login(); err != nil {
			return
		}
	}
	if err := menu.Run(); err != nil {
		log.Error("reading input failed", "error", err)
		os.Exit(1)
	}
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"os/signal"
	"syscall"

	"github.com/awnumar/memguard"
	"github.com/joho/godotenv"

	"github.com/lazypass/lazypass/internal/app"
	"github.com/lazypass/lazypass/internal/client"
	"github.com/lazypass/lazypass/internal/clipboard"
	"github.com/lazypass/lazypass/internal/config"
	"github.com/lazypass/lazypass/internal/crypto"
	"github.com/lazypass/lazypass/internal/logger"
	"github.com/lazypass/lazypass/internal/secret"
	"github.com/lazypass/lazypass/internal/service"
	"github.com/lazypass/lazypass/internal/tui"
	"github.com/lazypass/lazypass/internal/typist"
	"github.com/lazypass/lazypass/internal/workers"
	"github.com/lazypass/lazypass/models"
)

// Set with -ldflags "-X main.buildVersion=... -X main.buildPepper=...".
var (
	buildVersion string
	buildDate    string
	buildCommit  string
	buildPepper  string
)

func main() {
	os.Exit(run())
}

func run() int {
	// destroys every locked buffer still alive on the way out
	defer memguard.Purge()

	// The dotenv file may set LAZYPASS_ variables, so the default one is
	// loaded before the configuration is read.
	loadDotEnv(envOr(config.EnvPrefix+"APP_ENV_FILE", config.Defaults().App.EnvFile))

	cfg, err := config.GetStructuredConfig(os.Args[1:])
	if errors.Is(err, flag.ErrHelp) {
		return 0
	}
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		return 2
	}

	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	if cfg.App.ShowVersion {
		fmt.Println("lazypass", buildInfo)
		return 0
	}

	// A file given with -env-file can still provide the pepper.
	loadDotEnv(cfg.App.EnvFile)

	log := logger.NewClientLogger("lazypass", cfg.Log.Path, cfg.Log.Level)

	keeper := secret.NewKeeper()
	defer keeper.Close()

	state, err := secret.NewInitializer(log,
		secret.EnvSource(cfg.App.PepperEnv),
		secret.EmbeddedSource(&buildPepper),
	).Run(keeper)
	if err != nil {
		log.Error().Err(err).Stringer("state", state).Msg("secret initialization failed")
		fmt.Fprintln(os.Stderr, "lazypass: secret initialization failed")
		return 1
	}

	deriver, err := crypto.NewPasswordDeriver(crypto.ParamsFromConfig(cfg.KDF))
	if err != nil {
		log.Error().Err(err).Msg("invalid kdf configuration")
		fmt.Fprintln(os.Stderr, "lazypass:", err)
		return 1
	}

	pool := workers.NewPool(cfg.Workers.MaxConcurrent)
	guard := clipboard.NewGuard(clipboard.System(), cfg.Clipboard.ClearDelay, clipboard.WithLogger(log))

	services, err := service.NewServices(service.Deps{
		Vaults:    keeper,
		Deriver:   deriver,
		Pool:      pool,
		Guard:     guard,
		Typist:    typist.New(),
		BuildInfo: buildInfo,
	}, log)
	if err != nil {
		log.Error().Err(err).Msg("create services")
		return 1
	}

	deps := client.Deps{
		Services:  services,
		Pool:      pool,
		Keeper:    keeper,
		TypeDelay: typist.DefaultDelay,
		Out:       os.Stdout,
		Status:    os.Stderr,
	}
	if cfg.App.Mode == config.ModeTUI {
		deps.UI, err = tui.New(services, cfg.Clipboard.ClearDelay, typist.DefaultDelay, log)
		if err != nil {
			log.Error().Err(err).Msg("error creating ui")
			return 1
		}
	} else {
		deps.Prompt = client.NewTermPrompt(os.Stdin, os.Stderr)
	}

	lazypass, err := client.NewApp(cfg.App.Mode, deps, log)
	if err != nil {
		log.Error().Err(err).Msg("init client app error")
		return 1
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if err = lazypass.Run(ctx); err != nil {
		log.Error().Err(err).Msg("client run error")
		fmt.Fprintln(os.Stderr, "lazypass:", userMessage(err))
		return 1
	}
	return 0
}

func userMessage(err error) string {
	if errors.Is(err, client.ErrEmptyPhrase) {
		return "empty phrase"
	}
	return app.UserMessage(err)
}

func loadDotEnv(path string) {
	if path == "" {
		return
	}
	if err := godotenv.Load(path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "lazypass: load %s: %v\n", path, err)
	}
}

func envOr(key, fallback string) string {
	if v, ok := os.LookupEnv(key); ok && v != "" {
		return v
	}
	return fallback
}

// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"errors"
	"flag"
	"os"
	"os/signal"
	"syscall"

	"github.com/MKhiriev/accounts-service/internal/adapter"
	"github.com/MKhiriev/accounts-service/internal/client"
	"github.com/MKhiriev/accounts-service/internal/config"
	"github.com/MKhiriev/accounts-service/internal/logger"
	"github.com/MKhiriev/accounts-service/models"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	flag.Usage = func() {
		client.Usage(flag.CommandLine.Output())
		flag.PrintDefaults()
	}

	log := logger.NewConsoleLogger("accounts-client")
	cfg, err := config.GetClientConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}
	if err = logger.SetLevel(cfg.LogLevel); err != nil {
		log.Fatal().Err(err).Msg("error setting log level")
	}

	info := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	log.Debug().
		Str("version", info.BuildVersion()).
		Str("date", info.BuildDate()).
		Str("commit", info.BuildCommit()).
		Msg("build info")

	accounts, err := adapter.NewHTTPAccountsAdapter(cfg.Adapter, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating accounts adapter")
	}

	app, err := client.NewApp(accounts, os.Stdout, log)
	if err != nil {
		log.Fatal().Err(err).Msg("init client app error")
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err = app.Run(ctx, flag.Args()); err != nil {
		if errors.Is(err, client.ErrNoCommand) || errors.Is(err, client.ErrUnknownCommand) {
			flag.Usage()
		}
		stop()
		log.Fatal().Err(err).Msg("command failed")
	}
}

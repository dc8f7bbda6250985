// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package main

import (
	"context"
	"fmt"

	"github.com/MKhiriev/go-auction/internal/config"
	myHTTP "github.com/MKhiriev/go-auction/internal/handler/http"
	"github.com/MKhiriev/go-auction/internal/logger"
	"github.com/MKhiriev/go-auction/internal/server"
	"github.com/MKhiriev/go-auction/internal/service"
	"github.com/MKhiriev/go-auction/internal/store"
	"github.com/MKhiriev/go-auction/models"
	"github.com/shopspring/decimal"
)

var (
	buildVersion string
	buildDate    string
	buildCommit  string
)

func main() {
	buildInfo := models.NewAppBuildInfo(buildVersion, buildDate, buildCommit)
	printBuildInfo(buildInfo)

	// amounts travel as JSON numbers
	decimal.MarshalJSONWithoutQuotes = true

	log := logger.NewLogger("go-auction-server")
	cfg, err := config.GetStructuredConfig()
	if err != nil {
		log.Fatal().Err(err).Msg("error getting configs")
	}

	ctx := context.Background()

	db, err := store.NewConnect(ctx, cfg.Storage.DB, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error connecting to database")
	}
	defer db.Close()

	if err = db.Migrate(); err != nil {
		log.Fatal().Err(err).Msg("error applying migrations")
	}

	var winnerCache store.WinnerCache
	if cfg.Storage.Cache.Enabled() {
		redisClient, err := store.NewConnectRedis(ctx, cfg.Storage.Cache, log)
		if err != nil {
			log.Fatal().Err(err).Msg("error connecting to redis")
		}
		defer redisClient.Close()

		winnerCache = store.NewRedisWinnerCache(redisClient, cfg.Storage.Cache.WinnerTTL)
	}

	storages := store.NewStorages(db, winnerCache, log)

	services, err := service.NewServices(storages, *cfg, buildInfo, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating services")
	}

	handler := myHTTP.NewHandler(services, log)

	srv, err := server.NewServer(handler.Init(), cfg.Server, log)
	if err != nil {
		log.Fatal().Err(err).Msg("error creating server")
	}

	srv.RunServer()
}

func printBuildInfo(info models.AppBuildInfo) {
	fmt.Printf("Build version: %s\n", info.BuildVersion())
	fmt.Printf("Build date: %s\n", info.BuildDate())
	fmt.Printf("Build commit: %s\n", info.BuildCommit())
}

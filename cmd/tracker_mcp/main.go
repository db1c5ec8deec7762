// Package main runs the tracker MCP server over stdio, for local MCP clients.
// The main service also mounts the same tools at /mcp over HTTP.
package main

import (
	"context"
	"flag"
	"net/http"
	"os"
	"os/signal"
	"syscall"

	"github.com/2beens/gymtracker/internal/config"
	"github.com/2beens/gymtracker/internal/db"
	"github.com/2beens/gymtracker/internal/tracker/analytics"
	"github.com/2beens/gymtracker/internal/tracker/catalog"
	trackermcp "github.com/2beens/gymtracker/internal/tracker/mcp"
	"github.com/2beens/gymtracker/internal/tracker/store"

	"github.com/modelcontextprotocol/go-sdk/mcp"
	log "github.com/sirupsen/logrus"
)

func main() {
	env := flag.String("env", "development", "environment [prod | production | dev | development]")
	configPath := flag.String("config", "./config.toml", "path to TOML config file")
	flag.Parse()

	// stdout carries the MCP protocol
	log.SetOutput(os.Stderr)

	cfg, err := config.Load(*env, *configPath)
	if err != nil {
		log.Fatalf("load config: %s", err)
	}
	secrets, err := config.LoadSecrets()
	if err != nil {
		log.Fatalf("load secrets: %s", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer cancel()

	trackerStore := store.New()
	source, closeSource, err := catalogSource(ctx, cfg, secrets)
	if err != nil {
		log.Fatalf("catalog source: %s", err)
	}
	defer closeSource()

	if source != nil {
		if err := catalog.Seed(ctx, source, trackerStore, nil); err != nil {
			log.Warnf("catalog seeded partially: %s", err)
		}
	}

	server := trackermcp.NewServer(trackerStore, analytics.NewService(trackerStore, nil))
	if err := server.Run(ctx, &mcp.StdioTransport{}); err != nil {
		log.Fatal(err)
	}
}

func catalogSource(ctx context.Context, cfg *config.Config, secrets *config.Secrets) (catalog.Source, func(), error) {
	switch cfg.Catalog.Source {
	case config.CatalogSourceRest:
		return catalog.NewRestSource(cfg.Catalog.BaseURL, http.DefaultClient, cfg.Catalog.CacheSize, cfg.Catalog.CacheTTLSec), func() {}, nil
	case config.CatalogSourcePostgres:
		pool, err := db.NewDBPool(ctx, db.NewDBPoolParams{
			DBHost:     cfg.PostgresHost,
			DBPort:     cfg.PostgresPort,
			DBName:     cfg.PostgresDBName,
			DBUser:     cfg.PostgresUser,
			DBPassword: secrets.PostgresPassword,
			MaxConns:   2,
		})
		if err != nil {
			return nil, nil, err
		}
		return catalog.NewPsqlSource(pool), pool.Close, nil
	default:
		return nil, func() {}, nil
	}
}

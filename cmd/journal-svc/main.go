package main

import (
	"fmt"
	"os"

	"github.com/urfave/cli/v2"
	"go.uber.org/zap"

	"gojournal/internal/config"
	"gojournal/internal/dbmysql"
	"gojournal/internal/logger"
)

func main() {
	cfg := config.LoadConfig()
	log := logger.Must(cfg.Logging)
	defer func() { _ = log.Sync() }()

	cliApp := &cli.App{
		Name:  "journal-svc",
		Usage: "daily journal API",
		Commands: []*cli.Command{
			{
				Name:  "serve",
				Usage: "start the HTTP API and gRPC health server",
				Action: func(ctx *cli.Context) error {
					return serve(ctx.Context, cfg)
				},
			},
			{
				Name:  "migrate",
				Usage: "create or update the MySQL schema",
				Action: func(ctx *cli.Context) error {
					return migrate(cfg, log)
				},
			},
		},
	}

	if err := cliApp.Run(os.Args); err != nil {
		log.Fatal("journal-svc failed", zap.Error(err))
	}
}

func migrate(cfg *config.Config, log *zap.Logger) error {
	db, err := dbmysql.NewMySQL(cfg, log)
	if err != nil {
		return err
	}
	defer dbmysql.Close(db)

	if err := dbmysql.AutoMigrate(db); err != nil {
		return fmt.Errorf("migrate: %w", err)
	}
	log.Info("schema migrated")
	return nil
}

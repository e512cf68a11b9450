package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"syscall"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/urfave/cli/v2"
	"golang.org/x/time/rate"

	"github.com/sportsphere-app/sportsphere/app/dashboard"
	"github.com/sportsphere-app/sportsphere/app/datagen"
	"github.com/sportsphere-app/sportsphere/app/export"
	"github.com/sportsphere-app/sportsphere/config"
)

func main() {
	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	app := &cli.App{
		Name:  "sportsphere",
		Usage: "synthetic sports dataset generator and dashboard",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:  "config",
				Value: "config.yaml",
				Usage: "path to the configuration file",
			},
		},
		Commands: []*cli.Command{
			newGenerateCommand(logger),
			newServeCommand(logger),
			newTablesCommand(),
		},
	}

	if err := app.Run(os.Args); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}

func loadConfig(c *cli.Context) (*config.Config, error) {
	cfg, err := config.LoadConfig(c.String("config"))
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if c.IsSet("seed") {
		cfg.Dataset.Seed = c.Int64("seed")
	}
	return cfg, nil
}

func buildDataset(cfg *config.Config, logger *slog.Logger) (*datagen.Dataset, error) {
	start, end, err := cfg.Window()
	if err != nil {
		return nil, err
	}
	began := time.Now()
	data, err := datagen.BuildWindow(cfg.Dataset.Seed, start, end)
	if err != nil {
		return nil, err
	}
	logger.Info("dataset built",
		"seed", cfg.Dataset.Seed,
		"tables", len(datagen.TableNames),
		"duration", time.Since(began),
	)
	return data, nil
}

func newGenerateCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "generate",
		Usage: "build the dataset and export it to flat files",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed", Usage: "generation seed (overrides config)"},
			&cli.StringFlag{Name: "out", Usage: "output directory (overrides config)"},
			&cli.StringFlag{Name: "format", Usage: "csv or xlsx (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if c.IsSet("out") {
				cfg.Export.Dir = c.String("out")
			}
			if c.IsSet("format") {
				cfg.Export.Format = c.String("format")
			}

			data, err := buildDataset(cfg, logger)
			if err != nil {
				return err
			}

			switch cfg.Export.Format {
			case "xlsx":
				path := filepath.Join(cfg.Export.Dir, "sportsphere.xlsx")
				if err := os.MkdirAll(cfg.Export.Dir, 0o755); err != nil {
					return fmt.Errorf("create export dir: %w", err)
				}
				if err := export.SaveXLSX(path, data); err != nil {
					return err
				}
				logger.Info("exported workbook", "path", path)
			case "csv":
				if err := export.SaveCSV(cfg.Export.Dir, data); err != nil {
					return err
				}
				logger.Info("exported tables", "dir", cfg.Export.Dir, "tables", len(datagen.TableNames))
			default:
				return fmt.Errorf("unknown export format %q", cfg.Export.Format)
			}
			return nil
		},
	}
}

func newServeCommand(logger *slog.Logger) *cli.Command {
	return &cli.Command{
		Name:  "serve",
		Usage: "serve the dashboard API",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed", Usage: "generation seed (overrides config)"},
			&cli.StringFlag{Name: "addr", Usage: "listen address (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			if c.IsSet("addr") {
				cfg.Server.Address = c.String("addr")
			}

			data, err := buildDataset(cfg, logger)
			if err != nil {
				return err
			}

			registry := prometheus.NewRegistry()
			registry.MustRegister(
				collectors.NewGoCollector(),
				collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
			)
			limiter := dashboard.NewIPRateLimiter(
				rate.Limit(cfg.Server.RateLimitRPS),
				cfg.Server.RateLimitBurst,
			)
			router := dashboard.NewRouter(data, logger, registry, limiter)

			server := &http.Server{
				Addr:              cfg.Server.Address,
				Handler:           router,
				ReadHeaderTimeout: 10 * time.Second,
			}

			errCh := make(chan error, 1)
			go func() {
				logger.Info("dashboard listening", "addr", cfg.Server.Address)
				errCh <- server.ListenAndServe()
			}()

			interrupt := make(chan os.Signal, 1)
			signal.Notify(interrupt, os.Interrupt, syscall.SIGTERM)

			select {
			case err := <-errCh:
				if err != nil && !errors.Is(err, http.ErrServerClosed) {
					return err
				}
			case <-interrupt:
				logger.Info("shutting down")
				ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
				defer cancel()
				if err := server.Shutdown(ctx); err != nil {
					return fmt.Errorf("shutdown: %w", err)
				}
			}
			logger.Info("dashboard stopped")
			return nil
		},
	}
}

func newTablesCommand() *cli.Command {
	return &cli.Command{
		Name:  "tables",
		Usage: "print table names and row counts",
		Flags: []cli.Flag{
			&cli.Int64Flag{Name: "seed", Usage: "generation seed (overrides config)"},
		},
		Action: func(c *cli.Context) error {
			cfg, err := loadConfig(c)
			if err != nil {
				return err
			}
			start, end, err := cfg.Window()
			if err != nil {
				return err
			}
			data, err := datagen.BuildWindow(cfg.Dataset.Seed, start, end)
			if err != nil {
				return err
			}
			tables := data.Tables()
			for _, name := range datagen.TableNames {
				fmt.Printf("%-20s %6d rows\n", name, tables[name].Len())
			}
			return nil
		},
	}
}

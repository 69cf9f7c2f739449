package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/alexanderramin/compactgantt/internal/chart"
	"github.com/alexanderramin/compactgantt/internal/cli"
	"github.com/alexanderramin/compactgantt/internal/cli/formatter"
	"github.com/alexanderramin/compactgantt/internal/config"
	"github.com/alexanderramin/compactgantt/internal/db"
	"github.com/alexanderramin/compactgantt/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	paths, err := config.LoadAppPaths()
	if err != nil {
		return err
	}

	cfg, err := config.Load(paths.ConfigPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	if !isatty.IsTerminal(os.Stdout.Fd()) && !isatty.IsCygwinTerminal(os.Stdout.Fd()) {
		formatter.DisableColor()
	}

	database, err := db.OpenDB(paths.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// One sink backs both loggers so --verbose can switch them on after
	// flag parsing.
	logs := &cli.LogSink{}
	if paths.LogCalls {
		logs.Enable(os.Stderr)
	}
	observer := service.NewLogUseCaseObserver(logs)
	engineLogger := slog.New(slog.NewTextHandler(logs, &slog.HandlerOptions{Level: slog.LevelDebug}))
	uow := db.NewSQLiteUnitOfWork(database)

	newCharts := func(cfg config.EngineConfig) service.ChartService {
		engine := chart.NewEngine(cfg, chart.WithLogger(engineLogger))
		return service.NewChartService(database, uow, engine, observer)
	}

	app := &cli.App{
		Charts:       newCharts(cfg),
		Config:       cfg,
		ConfigSource: paths.ConfigPath,
		NewCharts:    newCharts,
		Logs:         logs,
	}
	return cli.NewRootCmd(app).Execute()
}

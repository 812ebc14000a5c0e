package main

import (
	"fmt"
	"log"
	"os"

	"github.com/alexanderramin/astroplan/internal/cli"
	"github.com/alexanderramin/astroplan/internal/config"
	"github.com/alexanderramin/astroplan/internal/db"
	"github.com/alexanderramin/astroplan/internal/horoscope"
	"github.com/alexanderramin/astroplan/internal/idgen"
	"github.com/alexanderramin/astroplan/internal/llm"
	"github.com/alexanderramin/astroplan/internal/repository"
	"github.com/alexanderramin/astroplan/internal/server"
	"github.com/alexanderramin/astroplan/internal/service"
	"github.com/mattn/go-isatty"
)

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfgPath := os.Getenv("ASTROPLAN_CONFIG")
	if cfgPath == "" {
		cfgPath = config.DefaultConfigPath()
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	database, err := db.OpenDB(cfg.DBPath)
	if err != nil {
		return fmt.Errorf("opening database: %w", err)
	}
	defer database.Close()

	// Wire repositories
	userRepo := repository.NewSQLiteUserRepo(database)
	taskRepo := repository.NewSQLiteTaskRepo(database)
	stateRepo := repository.NewSQLiteAppStateRepo(database)

	ids := idgen.NewUUIDGenerator()

	// Wire the LLM client when enabled; a nil client keeps horoscope
	// generation on the deterministic fallback texts.
	llmCfg := llm.LoadConfig()
	var llmClient llm.Client
	if llmCfg.Enabled {
		var observer llm.Observer = llm.NoopObserver{}
		if llmCfg.LogCalls {
			observer = llm.NewLogObserver(os.Stderr)
		}
		llmClient = llm.NewOllamaClient(llmCfg, observer)
	}
	horoscopes := horoscope.NewService(llmClient, llmCfg)

	app := &cli.App{
		Users:      service.NewUserService(userRepo, stateRepo, ids),
		Tasks:      service.NewTaskService(taskRepo, userRepo, ids),
		Recommend:  service.NewRecommendService(taskRepo),
		Horoscopes: horoscopes,
		Server:     server.NewServer(horoscopes, log.New(os.Stderr, "", log.LstdFlags)),
		ListenAddr: cfg.Server.ListenAddr,
	}

	// Detect an interactive terminal for the TUI entrypoint.
	app.IsInteractive = func() bool {
		return isatty.IsTerminal(os.Stdin.Fd()) || isatty.IsCygwinTerminal(os.Stdin.Fd())
	}

	rootCmd := cli.NewRootCmd(app)
	return rootCmd.Execute()
}

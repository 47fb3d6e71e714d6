package main

import (
	"fmt"
	"log/slog"
	"os"

	"github.com/spf13/pflag"

	"github.com/Chicas-Apps-LLC/FitTrack/internal/config"
	"github.com/Chicas-Apps-LLC/FitTrack/internal/generator"
	"github.com/Chicas-Apps-LLC/FitTrack/internal/storage"
)

func main() {
	// 1. Define and parse command-line flags
	flags := pflag.NewFlagSet("fittrack", pflag.ExitOnError)
	configPath := flags.String("config", "", "Path to a YAML config file")
	flags.String("data-dir", config.DefaultDataDir(), "Writable directory holding the store")
	flags.String("database-file", "FitTrack.db", "Store file name inside the data directory")
	flags.String("template-path", "", "Bundled template store copied into place on first run")
	flags.String("log-level", "info", "Log level: debug, info, warn or error")
	initTemplate := flags.String("init-template", "", "Build the bundled template store at the given path and exit")
	generate := flags.Bool("generate", false, "Generate and persist routines for the first user")
	if err := flags.Parse(os.Args[1:]); err != nil {
		slog.Error("Failed to parse flags", "error", err)
		os.Exit(1)
	}

	// 2. Load configuration
	cfg, err := config.Load(*configPath, flags)
	if err != nil {
		slog.Error("Failed to load configuration", "error", err)
		os.Exit(1)
	}
	slog.SetLogLoggerLevel(cfg.SlogLevel())

	// Template building needs no open store.
	if *initTemplate != "" {
		if err := storage.CreateTemplate(*initTemplate); err != nil {
			slog.Error("Failed to create template store", "error", err)
			os.Exit(1)
		}
		fmt.Printf("Template store created at %s\n", *initTemplate)
		return
	}

	// 3. Open the store
	gw := storage.NewGateway(cfg.DataDir, cfg.DatabaseFile, cfg.TemplatePath)
	store := storage.NewStore(gw)
	if err := store.Open(); err != nil {
		slog.Error("Failed to open database", "error", err, "path", cfg.StorePath())
		os.Exit(1)
	}
	defer store.Close()

	if *generate {
		user, err := store.FirstUser()
		if err != nil {
			slog.Error("No user to generate routines for", "error", err)
			os.Exit(1)
		}
		saved := generator.New(store).ChooseAndCreateRoutines(user)
		fmt.Printf("Generated and saved %d routines for %s.\n", len(saved), user.Name)
		return
	}

	// 4. Print the routine report
	routines, err := store.AllRoutines()
	if err != nil {
		slog.Error("Failed to list routines", "error", err)
		os.Exit(1)
	}

	fmt.Printf("Found %d routines.\n", len(routines))
	for _, r := range routines {
		days, err := store.DaysForRoutine(r.ID)
		if err != nil {
			slog.Warn("Failed to read schedule", "routine_id", r.ID, "error", err)
		}
		favorite := ""
		if r.IsFavorite {
			favorite = " *"
		}
		fmt.Printf("- [%d] %s%s (days: %v)\n", r.ID, r.Name, favorite, days)
	}

	orphans, err := store.CountOrphanedRoutineExercises()
	if err == nil && orphans > 0 {
		fmt.Printf("%d orphaned routine-exercise rows present.\n", orphans)
	}
}

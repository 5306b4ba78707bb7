// Package main is the Murshid CLI entry point.
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"
	"time"

	"go.uber.org/zap"

	"github.com/noorlabs/murshid/internal/assistant"
	"github.com/noorlabs/murshid/internal/config"
	"github.com/noorlabs/murshid/internal/connectivity"
	"github.com/noorlabs/murshid/internal/enrich"
	"github.com/noorlabs/murshid/internal/knowledge"
	"github.com/noorlabs/murshid/internal/models"
	"github.com/noorlabs/murshid/internal/quiz"
	"github.com/noorlabs/murshid/internal/server"
	"github.com/noorlabs/murshid/internal/storage"
	"github.com/noorlabs/murshid/internal/tasmea"
	"github.com/noorlabs/murshid/pkg/utils"
)

var version = "dev"

const defaultConfigPath = "/usr/local/etc/murshid/config.yaml"

// loadConfig loads config from path. When path is the default, it first looks
// for config.yaml in the current directory (for development); if that exists
// it is used instead.
func loadConfig(path string) (*config.Config, string, error) {
	if path == defaultConfigPath {
		if cwd, cwdErr := os.Getwd(); cwdErr == nil {
			fallback := filepath.Join(cwd, "config.yaml")
			if _, statErr := os.Stat(fallback); statErr == nil {
				cfg, loadErr := config.Load(fallback)
				if loadErr != nil {
					return nil, "", loadErr
				}
				return cfg, fallback, nil
			}
		}
	}
	cfg, err := config.Load(path)
	if err != nil {
		// The default path missing is fine: fall back to defaults so the
		// CLI works without any config file.
		if path == defaultConfigPath && os.IsNotExist(err) {
			cfg = &config.Config{}
			config.ApplyDefaults(cfg)
			return cfg, "", nil
		}
		return nil, "", err
	}
	return cfg, path, nil
}

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "server":
		runServer()
	case "ask":
		runAsk()
	case "check":
		runCheck()
	case "suggest":
		runSuggest()
	case "quiz":
		runQuiz()
	case "sessions":
		runSessions()
	case "version", "--version", "-v":
		fmt.Printf("murshid version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// Components bundles the wired application services.
type Components struct {
	Store    *knowledge.Store
	Storage  *storage.SQLiteStorage
	Resolver *assistant.Resolver
	Checker  *tasmea.Checker
	Quiz     *quiz.Service
}

func (c *Components) Close() {
	if c.Storage != nil {
		_ = c.Storage.Close()
	}
}

func initializeComponents(cfg *config.Config, logger *zap.Logger) (*Components, error) {
	store := knowledge.NewStore()

	db, err := storage.NewSQLiteStorage(cfg.Storage.DatabasePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open session storage: %w", err)
	}

	var enricher enrich.Enricher = enrich.Disabled{}
	var probe connectivity.Probe = connectivity.Static(false)
	if cfg.Enricher.Enabled && cfg.Enricher.APIKey != "" {
		g, err := enrich.NewGeminiEnricher(context.Background(), enrich.GeminiOptions{
			APIKey:      cfg.Enricher.APIKey,
			Model:       cfg.Enricher.Model,
			Temperature: cfg.Enricher.Temperature,
			Timeout:     time.Duration(cfg.Enricher.TimeoutSeconds) * time.Second,
		}, logger)
		if err != nil {
			_ = db.Close()
			return nil, err
		}
		enricher = g
		probe = connectivity.NewDialProbe()
	}

	return &Components{
		Store:    store,
		Storage:  db,
		Resolver: assistant.NewResolver(store, enricher, probe, logger),
		Checker:  tasmea.NewChecker(db, logger),
		Quiz:     quiz.NewService(enricher, probe, logger),
	}, nil
}

func setup(args []string) (*config.Config, *zap.Logger, *Components) {
	fs := flag.NewFlagSet(args[0], flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	debug := fs.Bool("debug", false, "enable debug logging")
	_ = fs.Parse(args[1:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug || *debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	return cfg, logger, components
}

func runServer() {
	cfg, logger, components := setup(os.Args[1:])
	defer logger.Sync()
	defer components.Close()

	srv := server.NewServer(components.Resolver, components.Checker, components.Store,
		components.Quiz, cfg, logger)

	go func() {
		if err := srv.Start(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("Server failed", zap.Error(err))
		}
	}()

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)
	<-sigChan

	logger.Info("Shutting down...")
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	_ = srv.Stop(ctx)
}

func runAsk() {
	_, logger, components := setup(os.Args[1:])
	defer logger.Sync()
	defer components.Close()

	args := questionArgs()
	if len(args) == 0 {
		fmt.Println("Usage: murshid ask <question>")
		os.Exit(1)
	}
	question := strings.Join(args, " ")

	resp := components.Resolver.Ask(context.Background(), question)
	fmt.Println(resp.Answer)
	if len(resp.SuggestedTopics) > 0 {
		fmt.Printf("\nمواضيع مقترحة: %s\n", strings.Join(resp.SuggestedTopics, "، "))
	}
	fmt.Printf("\n[source: %s]\n", resp.Source)
}

func runCheck() {
	fs := flag.NewFlagSet("check", flag.ExitOnError)
	correct := fs.String("correct", "", "the correct text")
	user := fs.String("user", "", "the recited text")
	_ = fs.Parse(os.Args[2:])

	if *correct == "" {
		fmt.Println("Usage: murshid check --correct <text> --user <text>")
		os.Exit(1)
	}

	result := tasmea.Check(*user, *correct)
	fmt.Printf("الدقة: %d%%\n", result.Accuracy)
	if len(result.Errors) == 0 {
		fmt.Println("لا توجد أخطاء")
		return
	}
	for _, e := range result.Errors {
		switch e.Type {
		case models.ErrorMissing:
			fmt.Printf("  كلمة ناقصة في الموضع %d: %s\n", e.Position, e.CorrectWord)
		case models.ErrorExtra:
			fmt.Printf("  كلمة زائدة في الموضع %d: %s\n", e.Position, e.UserWord)
		default:
			fmt.Printf("  خطأ إملائي في الموضع %d: %s بدلاً من %s\n", e.Position, e.UserWord, e.CorrectWord)
		}
	}
}

func runSuggest() {
	_, logger, components := setup(os.Args[1:])
	defer logger.Sync()
	defer components.Close()

	args := questionArgs()
	if len(args) == 0 {
		fmt.Println("Usage: murshid suggest <partial surah name>")
		os.Exit(1)
	}
	suggestions := components.Store.SurahSuggestions(strings.Join(args, " "), 5)
	if len(suggestions) == 0 {
		fmt.Println("No suggestions")
		return
	}
	for _, name := range suggestions {
		fmt.Println(name)
	}
}

func runQuiz() {
	fs := flag.NewFlagSet("quiz", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	smart := fs.Bool("smart", false, "generate fresh questions via the Gemini API")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	questions := components.Quiz.Static()
	if *smart {
		if generated := components.Quiz.Smart(context.Background()); len(generated) > 0 {
			questions = generated
		}
	}
	for i, q := range questions {
		fmt.Printf("%d. %s\n", i+1, q.Question)
		for j, opt := range q.Options {
			marker := " "
			if j == q.AnswerIndex {
				marker = "*"
			}
			fmt.Printf("  %s %s\n", marker, opt)
		}
		fmt.Printf("  → %s\n\n", q.Explanation)
	}
}

func runSessions() {
	fs := flag.NewFlagSet("sessions", flag.ExitOnError)
	configPath := fs.String("config", defaultConfigPath, "config file path")
	surahID := fs.Int("surah", 0, "filter by surah number")
	stats := fs.Bool("stats", false, "print aggregate statistics instead of the list")
	_ = fs.Parse(os.Args[2:])

	cfg, _, err := loadConfig(*configPath)
	if err != nil {
		fmt.Printf("Failed to load config: %v\n", err)
		os.Exit(1)
	}
	logger, err := utils.NewLogger(cfg.Debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	defer logger.Sync()

	components, err := initializeComponents(cfg, logger)
	if err != nil {
		logger.Fatal("Failed to initialize components", zap.Error(err))
	}
	defer components.Close()

	ctx := context.Background()
	if *stats {
		aggregate, err := components.Checker.Stats(ctx, *surahID)
		if err != nil {
			logger.Fatal("Failed to load stats", zap.Error(err))
		}
		printJSON(aggregate)
		return
	}

	sessions, err := components.Checker.ListSessions(ctx, *surahID)
	if err != nil {
		logger.Fatal("Failed to list sessions", zap.Error(err))
	}
	printJSON(sessions)
}

// questionArgs returns the positional arguments after the subcommand,
// skipping flag pairs consumed by setup.
func questionArgs() []string {
	fs := flag.NewFlagSet("args", flag.ContinueOnError)
	fs.String("config", defaultConfigPath, "")
	fs.Bool("debug", false, "")
	_ = fs.Parse(os.Args[2:])
	return fs.Args()
}

func printJSON(v any) {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		fmt.Printf("Failed to encode output: %v\n", err)
		os.Exit(1)
	}
	fmt.Println(string(data))
}

func printUsage() {
	fmt.Println(`murshid - Islamic knowledge assistant and recitation checker

Usage:
  murshid server [--config path] [--debug]     start the HTTP API server
  murshid ask <question>                       ask the assistant
  murshid check --correct <text> --user <text> score a recitation
  murshid suggest <partial name>               suggest surah names
  murshid quiz [--smart]                       print quiz questions
  murshid sessions [--surah N] [--stats]       list recitation sessions
  murshid version                              print version
  murshid help                                 show this help`)
}

// Copyright 2025 The Uncommon Authors. All rights reserved.
// Use of this source code is governed by an MIT-style
// license that can be found in the LICENSE file.

/*
Package main implements the uncommon word miner CLI and analysis server.

Uncommon reads a plain-text document and surfaces the words worth studying:
rare within the document, long enough to be interesting, and not common
English function words. Each surviving word is paired with a definition from
the bundled dictionary (or the user's personal overrides) and an example
sentence lifted straight from the document.

# Usage

Analyze a document and print the annotated word list:

	uncommon -f book.txt

Review candidates interactively, saving picks into the personal dictionary:

	uncommon -f book.txt -review

Look up a single word against the merged dictionary:

	uncommon -lookup crepuscular

Run as a MessagePack IPC server for editor/GUI integration:

	uncommon -serve

# Configuration

Runtime configuration is managed through a TOML file that supports ranking
policy, storage backend, and server parameters:

	[ranker]
	min_length = 8
	max_results = 75
	extra_stopwords = []

	[store]
	backend = "file"

	[server]
	max_text_len = 4194304
	default_limit = 75

The config file is automatically created with defaults if it doesn't exist.
The personal dictionary lives next to it, either as a JSON file or as a
single-slot sqlite database depending on the configured backend.

# IPC Protocol

Server mode communicates via MessagePack over stdin/stdout. Analysis
requests carry the raw text; responses return the ordered records:

	{"id": "req1", "op": "analyze", "t": "...", "l": 75}
	{"id": "req1", "r": [{"w": "...", "d": "...", "e": "..."}], "c": 1, "t": 3}

Personal dictionary mutations ("upsert", "remove") persist before the
response is written, so a client can immediately re-run analysis.
*/
package main

import (
	"flag"
	"fmt"
	"os"
	"os/signal"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"

	"github.com/ebmartin/uncommon/internal/cli"
	"github.com/ebmartin/uncommon/pkg/analyze"
	"github.com/ebmartin/uncommon/pkg/config"
	"github.com/ebmartin/uncommon/pkg/dictionary"
	"github.com/ebmartin/uncommon/pkg/server"
	"github.com/ebmartin/uncommon/pkg/store"
)

const (
	Version = "0.3.0"
	AppName = "uncommon"
	gh      = "https://github.com/ebmartin/uncommon"
)

// sigHandler is a simple handler for OS signals to exit normally.
func sigHandler() {
	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	go func() {
		<-c
		fmt.Fprintf(os.Stderr, "\nExiting...\n")
		os.Exit(0)
	}()
}

// main calls other packages to run one of the modes.
// main() does not implement logic for them and only manages the flow.
func main() {
	sigHandler()

	showVersion := flag.Bool("version", false, "Show current version")
	debugMode := flag.Bool("d", false, "Toggle debug mode")
	filePath := flag.String("f", "", "Plain-text (.txt) document to analyze")
	reviewMode := flag.Bool("review", false, "Review candidates interactively and save picks")
	serveMode := flag.Bool("serve", false, "Run the MessagePack IPC server")
	lookupWord := flag.String("lookup", "", "Look up a single word and exit")
	limit := flag.Int("limit", 0, "Maximum number of result words (0 uses config)")
	minLength := flag.Int("minlen", 0, "Minimum candidate word length (0 uses config)")
	configPath := flag.String("config", "", "Path to config.toml")
	storePath := flag.String("store", "", "Personal dictionary location override")
	backend := flag.String("backend", "", "Personal dictionary backend: file or sqlite")

	flag.Parse()

	if *showVersion {
		printVersion()
		os.Exit(0)
	}

	if *debugMode {
		log.SetLevel(log.DebugLevel)
		log.SetReportTimestamp(true)
	} else {
		log.SetLevel(log.WarnLevel)
	}

	cfg, activePath, err := config.LoadConfigWithPriority(*configPath)
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}
	log.Debugf("Active config: %s", config.GetActiveConfigPath(activePath))

	if *backend != "" {
		cfg.Store.Backend = *backend
	}
	if *storePath != "" {
		cfg.Store.Path = *storePath
	}

	opts := cfg.RankerOptions()
	if *limit > 0 {
		opts.Limit = *limit
	}
	if *minLength > 0 {
		opts.MinLength = *minLength
	}

	userStore, closeStore, err := openStore(cfg)
	if err != nil {
		log.Fatalf("Failed to open personal dictionary: %v", err)
	}
	defer closeStore()

	dict := dictionary.NewMerger(dictionary.LoadBase(), userStore)

	switch {
	case *lookupWord != "":
		cli.ShowDefinition(dict, *lookupWord, cfg.Server.MaxNearby)

	case *serveMode:
		srv := server.NewServer(dict, opts, cfg.Server)
		if err := srv.Start(); err != nil {
			log.Fatalf("Server error: %v", err)
		}

	case *reviewMode:
		text, err := readDocument(*filePath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		reviewer := cli.NewReviewer(dict, opts, cfg.Server.MaxNearby)
		if err := reviewer.Start(text); err != nil {
			log.Fatalf("Review error: %v", err)
		}

	default:
		text, err := readDocument(*filePath)
		if err != nil {
			log.Fatalf("%v", err)
		}
		printRecords(analyze.NewAnalyzer(dict, opts).Analyze(text))
	}
}

// openStore builds the configured store backend. The returned func releases
// backend resources; for the file backend it is a no-op.
func openStore(cfg *config.Config) (store.Store, func(), error) {
	path := cfg.StorePath()
	log.Debugf("Personal dictionary slot: %s (backend=%s)", path, cfg.Store.Backend)

	switch cfg.Store.Backend {
	case "", "file":
		return store.NewFileStore(path), func() {}, nil
	case "sqlite":
		s, err := store.OpenSQLiteStore(path)
		if err != nil {
			return nil, nil, err
		}
		return s, func() { s.Close() }, nil
	default:
		return nil, nil, fmt.Errorf("unknown store backend %q", cfg.Store.Backend)
	}
}

// readDocument loads the uploaded document. Only .txt files reach the
// analysis core; anything else is rejected here with a user-facing notice.
func readDocument(path string) (string, error) {
	if path == "" {
		return "", fmt.Errorf("no document given, use -f file.txt")
	}
	if !strings.EqualFold(filepath.Ext(path), ".txt") {
		return "", fmt.Errorf("only .txt files are supported, got %q", filepath.Base(path))
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("could not read %s: %w", path, err)
	}
	return string(data), nil
}

// printRecords writes the annotated word list to stdout in ranker order.
func printRecords(records []analyze.UncommonWord) {
	if len(records) == 0 {
		log.Warn("No uncommon words found")
		return
	}
	for i, rec := range records {
		clWord := fmt.Sprintf("\033[38;5;75m%s\033[0m", rec.Word)
		fmt.Printf("%3d. %s\n", i+1, clWord)
		fmt.Printf("     %s\n", rec.Definition)
		fmt.Printf("     %s\n", rec.ExampleFromText)
	}
}

// printVersion renders the styled version banner.
func printVersion() {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportCaller:    false,
		ReportTimestamp: false,
		Prefix:          "",
	})

	styles := log.DefaultStyles()
	styles.Values["version"] = lipgloss.NewStyle().Bold(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	styles.Values["gh"] = lipgloss.NewStyle().Italic(true).
		Foreground(lipgloss.AdaptiveColor{Light: "#575279", Dark: "#e0def4"})
	logger.SetStyles(styles)

	logger.Print("")
	logger.Print("[ Uncommon ] Mines the words worth learning from your reading!")
	logger.Print("", "version", Version)
	logger.Print("")
	logger.Print("use -h or --help to see available options")
	logger.Print("Github Repo", "gh", gh)
}

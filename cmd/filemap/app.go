package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"regexp"

	"github.com/packsmith/filemap/internal/crawl"
	"github.com/packsmith/filemap/internal/index"
	"github.com/packsmith/filemap/internal/snapshot"
)

type App struct {
	crawlHandler *crawl.Handler
	snapPath     string
}

func NewApp(crawlHandler *crawl.Handler, snapPath string) *App {
	return &App{
		crawlHandler: crawlHandler,
		snapPath:     snapPath,
	}
}

func (app *App) Run(ctx context.Context, command string, args []string) error {
	switch command {
	case "crawl":
		return app.Crawl(ctx)
	case "ls":
		return app.List()
	case "exists":
		return app.Exists(args)
	case "stat":
		return app.Stat(args)
	case "deps":
		return app.Dependencies(args)
	case "match":
		return app.Match(args)
	case "context":
		return app.Context(args)
	case "glob":
		return app.Glob(args)
	default:
		return fmt.Errorf("(app) %w: %s", ErrUnknownCommand, command)
	}
}

// loadIndex reconstructs the file map index from the persisted snapshot.
func (app *App) loadIndex() (*index.FileMap, error) {
	snap, err := snapshot.Load(app.snapPath)
	if err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	fm, err := index.FromSnapshot(snap)
	if err != nil {
		return nil, fmt.Errorf("(app) %w", err)
	}

	return fm, nil
}

func (app *App) Crawl(ctx context.Context) error {
	root := *rootDir
	if root == "" {
		workDir, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("(app-crawl) failed to establish working directory: %w", err)
		}
		root = workDir
	}

	opts := crawl.Options{
		ComputeSHA1:         true,
		ExtractDependencies: true,
	}

	if *ignore != "" {
		re, err := regexp.Compile(*ignore)
		if err != nil {
			return fmt.Errorf("(app-crawl) failed to compile ignore expression: %w", err)
		}
		opts.Ignore = re
	}

	slog.Info("Crawling root directory...", "root", root)

	snap, err := app.crawlHandler.Crawl(ctx, root, opts)
	if err != nil {
		return fmt.Errorf("(app-crawl) %w", err)
	}

	if err := snapshot.Save(app.snapPath, snap); err != nil {
		return fmt.Errorf("(app-crawl) %w", err)
	}

	slog.Info("Snapshot written.",
		"files", len(snap.Files),
		"size", totalSize(snap.Files),
		"snapshot", app.snapPath,
	)

	return nil
}

func (app *App) List() error {
	fm, err := app.loadIndex()
	if err != nil {
		return err
	}

	printHeader(fmt.Sprintf("%d files under %s", len(fm.AllFiles()), fm.RootDir()))
	for abs := range fm.AbsoluteFiles() {
		printPath(abs)
	}

	return nil
}

func (app *App) Exists(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("(app-exists) %w: want <path>", ErrBadArguments)
	}

	fm, err := app.loadIndex()
	if err != nil {
		return err
	}

	fmt.Println(fm.Exists(args[0]))

	return nil
}

func (app *App) Stat(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("(app-stat) %w: want <path>", ErrBadArguments)
	}

	fm, err := app.loadIndex()
	if err != nil {
		return err
	}

	printStat(fm, args[0])

	return nil
}

func (app *App) Dependencies(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("(app-deps) %w: want <path>", ErrBadArguments)
	}

	fm, err := app.loadIndex()
	if err != nil {
		return err
	}

	deps, ok := fm.Dependencies(args[0])
	if !ok {
		return fmt.Errorf("(app-deps) %w: %s", ErrUnknownPath, args[0])
	}

	for _, specifier := range deps {
		fmt.Println(specifier)
	}

	return nil
}

func (app *App) Match(args []string) error {
	if len(args) != 1 {
		return fmt.Errorf("(app-match) %w: want <regexp>", ErrBadArguments)
	}

	re, err := regexp.Compile(args[0])
	if err != nil {
		return fmt.Errorf("(app-match) failed to compile expression: %w", err)
	}

	fm, err := app.loadIndex()
	if err != nil {
		return err
	}

	for _, abs := range fm.MatchFiles(re) {
		printPath(abs)
	}

	return nil
}

func (app *App) Context(args []string) error {
	flags, recursive := contextFlags()
	if err := flags.Parse(args); err != nil {
		return fmt.Errorf("(app-context) %w", err)
	}
	if flags.NArg() != 2 {
		return fmt.Errorf("(app-context) %w: want [-r] <dir> <regexp>", ErrBadArguments)
	}

	filter, err := regexp.Compile(flags.Arg(1))
	if err != nil {
		return fmt.Errorf("(app-context) failed to compile filter: %w", err)
	}

	fm, err := app.loadIndex()
	if err != nil {
		return err
	}

	for _, abs := range fm.MatchFilesInContext(flags.Arg(0), *recursive, filter) {
		printPath(abs)
	}

	return nil
}

func (app *App) Glob(args []string) error {
	if len(args) < 1 {
		return fmt.Errorf("(app-glob) %w: want <pattern> [...]", ErrBadArguments)
	}

	fm, err := app.loadIndex()
	if err != nil {
		return err
	}

	matched, err := fm.MatchFilesGlob(args, fm.RootDir())
	if err != nil {
		return fmt.Errorf("(app-glob) %w", err)
	}

	for abs := range matched {
		printPath(abs)
	}

	return nil
}

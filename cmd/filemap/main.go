package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/lmittmann/tint"
	"github.com/packsmith/filemap/internal/configuration"
	"github.com/packsmith/filemap/internal/crawl"
	"github.com/packsmith/filemap/internal/schema"
)

//nolint:gochecknoglobals
var (
	ExitCode = 0
	Version  string

	envFile  = flag.String("env", "", "read configuration from this env-style file")
	snapPath = flag.String("snapshot", "filemap.snap", "path of the snapshot file")
	rootDir  = flag.String("root", "", "root directory (crawl only; defaults to the working directory)")
	ignore   = flag.String("ignore", "", "regular expression of paths to ignore (crawl only)")
	verbose  = flag.Bool("verbose", false, "enable debug logging")
)

func setupLogging(debug bool) {
	level := slog.LevelInfo
	if debug {
		level = slog.LevelDebug
	}

	slog.SetDefault(slog.New(
		tint.NewHandler(os.Stderr, &tint.Options{
			Level:      level,
			TimeFormat: time.Kitchen,
		}),
	))
}

func setupSignalHandlers(cancel context.CancelFunc) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGTERM, syscall.SIGINT)

	go func() {
		<-sigChan
		cancel()
	}()
}

// explicitFlags returns the names of all flags actually passed on the
// command line, as opposed to those still holding their defaults.
func explicitFlags() map[string]bool {
	explicit := make(map[string]bool)
	flag.Visit(func(f *flag.Flag) {
		explicit[f.Name] = true
	})

	return explicit
}

// applyConfiguration overlays settings from an env-style file onto the flag
// defaults. Explicitly passed flags always win; a file value is only applied
// to a flag the user did not set on the command line.
func applyConfiguration(configHandler *configuration.Handler, filename string, explicit map[string]bool) {
	envMap, err := configHandler.ReadGeneric(filename)
	if err != nil {
		slog.Warn("Failed reading configuration file, using defaults.", "err", err, "file", filename)

		return
	}

	if value := configHandler.MapKeyToString(envMap, configuration.KeySnapshotPath); value != "" && !explicit["snapshot"] {
		*snapPath = value
	}
	if value := configHandler.MapKeyToString(envMap, configuration.KeyCrawlRoot); value != "" && !explicit["root"] {
		*rootDir = value
	}
	if value := configHandler.MapKeyToString(envMap, configuration.KeyIgnore); value != "" && !explicit["ignore"] {
		*ignore = value
	}
	if !explicit["verbose"] && configHandler.MapKeyToBool(envMap, configuration.KeyVerbose) {
		*verbose = true
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, "usage: filemap [flags] <command> [args]\n\n")
	fmt.Fprintf(os.Stderr, "commands:\n")
	fmt.Fprintf(os.Stderr, "  crawl                     build a snapshot of the root directory\n")
	fmt.Fprintf(os.Stderr, "  ls                        list all known absolute paths\n")
	fmt.Fprintf(os.Stderr, "  exists <path>             report whether a path is indexed\n")
	fmt.Fprintf(os.Stderr, "  stat <path>               print the record of a path\n")
	fmt.Fprintf(os.Stderr, "  deps <path>               print the dependency specifiers of a path\n")
	fmt.Fprintf(os.Stderr, "  match <regexp>            list paths matching a regular expression\n")
	fmt.Fprintf(os.Stderr, "  context <dir> <regexp>    list direct children of dir matching a filter (-r for recursive)\n")
	fmt.Fprintf(os.Stderr, "  glob <pattern> [...]      list paths matching glob patterns\n\n")
	flag.PrintDefaults()
}

func main() {
	defer func() {
		os.Exit(ExitCode)
	}()

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	flag.Usage = usage
	flag.Parse()

	configHandler := configuration.NewHandler(&configuration.GodotenvProvider{})
	if *envFile != "" {
		applyConfiguration(configHandler, *envFile, explicitFlags())
	}

	setupLogging(*verbose)
	setupSignalHandlers(cancel)

	if flag.NArg() < 1 {
		usage()
		ExitCode = 2

		return
	}

	osProvider := &schema.OS{}
	unixProvider := &schema.Unix{}

	app := NewApp(
		crawl.NewHandler(osProvider, unixProvider),
		*snapPath,
	)

	if err := app.Run(ctx, flag.Arg(0), flag.Args()[1:]); err != nil {
		slog.Error("Command failed.", "err", err, "command", flag.Arg(0))
		ExitCode = 1
	}
}

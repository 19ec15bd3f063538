package main

import (
	"flag"
	"fmt"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/dustin/go-humanize"
	"github.com/packsmith/filemap/internal/index"
	"github.com/packsmith/filemap/internal/schema"
)

//nolint:gochecknoglobals
var (
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("12"))
	labelStyle  = lipgloss.NewStyle().Faint(true)
)

func printHeader(text string) {
	fmt.Println(headerStyle.Render(text))
}

func printPath(path string) {
	fmt.Println(path)
}

func printField(label, value string) {
	fmt.Printf("%s %s\n", labelStyle.Render(label+":"), value)
}

func printStat(fm *index.FileMap, path string) {
	stats, ok := fm.LinkStats(path)
	if !ok {
		printField("exists", "false")

		return
	}

	printHeader(path)
	printField("exists", "true")

	fileType := "file"
	if stats.FileType == schema.FileTypeSymlink {
		fileType = "symlink"
	}
	printField("type", fileType)
	printField("modified", time.UnixMilli(stats.ModifiedTime).Format(time.RFC3339))

	if size, ok := fm.Size(path); ok {
		printField("size", humanize.IBytes(size))
	}
	if sha, ok := fm.SHA1(path); ok && sha != "" {
		printField("sha1", sha)
	}
	if name, ok := fm.ModuleName(path); ok && name != "" {
		printField("module", name)
	}
	if deps, ok := fm.Dependencies(path); ok {
		printField("dependencies", fmt.Sprintf("%d", len(deps)))
	}
}

func totalSize(files map[string]schema.FileMetadata) string {
	var total uint64
	for _, meta := range files {
		total += meta.Size
	}

	return humanize.IBytes(total)
}

func contextFlags() (*flag.FlagSet, *bool) {
	flags := flag.NewFlagSet("context", flag.ContinueOnError)
	recursive := flags.Bool("r", false, "include files below further directory levels")

	return flags, recursive
}

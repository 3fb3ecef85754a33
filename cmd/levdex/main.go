// Command levdex loads a dictionary, installs one or more edit-distance
// bounds, and answers approximate-match queries read from stdin. It is a
// thin CLI wrapper around the trie and automaton packages; the process
// entry point carries no search logic of its own.
package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/projectdiscovery/goflags"
	"github.com/projectdiscovery/gologger"
	"github.com/projectdiscovery/gologger/levels"

	"github.com/gofuzzy/levdex/internal/config"
	"github.com/gofuzzy/levdex/internal/dictionary"
	"github.com/gofuzzy/levdex/trie"
)

type cliOptions struct {
	Dictionary     string
	Bounds         goflags.StringSlice
	Config         string
	GenerateConfig string
	Verbose        bool
}

func parseFlags() *cliOptions {
	opts := &cliOptions{}
	flagSet := goflags.NewFlagSet()
	flagSet.SetDescription("Approximate-match dictionary search over a compiled Levenshtein automaton and trie.")

	flagSet.CreateGroup("input", "Input",
		flagSet.StringVarP(&opts.Dictionary, "dictionary", "d", "", "newline-delimited dictionary file to load"),
		flagSet.StringSliceVarP(&opts.Bounds, "bounds", "b", nil, "edit-distance bounds to install, comma separated", goflags.FileCommaSeparatedStringSliceOptions),
		flagSet.StringVar(&opts.Config, "config", "", "optional YAML config overriding the flags above"),
		flagSet.StringVar(&opts.GenerateConfig, "generate-config", "", "write a sample YAML config to the given path and exit"),
	)

	flagSet.CreateGroup("output", "Output",
		flagSet.BoolVarP(&opts.Verbose, "verbose", "v", false, "display verbose timing and load progress"),
	)

	if err := flagSet.Parse(); err != nil {
		gologger.Fatal().Msgf("could not read flags: %s\n", err)
	}
	return opts
}

func main() {
	opts := parseFlags()
	if opts.Verbose {
		gologger.DefaultLogger.SetMaxLevel(levels.LevelVerbose)
	}

	if opts.GenerateConfig != "" {
		if err := config.GenerateSample(opts.GenerateConfig); err != nil {
			gologger.Fatal().Msgf("could not generate config: %s\n", err)
		}
		gologger.Info().Msgf("wrote sample config to %s", opts.GenerateConfig)
		return
	}

	cfg := config.Default()
	if opts.Config != "" {
		loaded, err := config.Load(opts.Config)
		if err != nil {
			gologger.Fatal().Msgf("could not load config: %s\n", err)
		}
		cfg = loaded
	} else {
		if opts.Dictionary != "" {
			cfg.DictionaryPath = opts.Dictionary
		}
		if bounds, err := parseBounds(opts.Bounds); err == nil && len(bounds) > 0 {
			cfg.InstallBounds = bounds
		}
	}

	if cfg.DictionaryPath == "" {
		gologger.Fatal().Msgf("no dictionary specified: pass -dictionary or a -config file\n")
	}

	t := trie.New()
	gologger.Info().Msgf("loading dictionary from %s...", cfg.DictionaryPath)
	start := time.Now()
	count, err := dictionary.LoadFile(t, cfg.DictionaryPath)
	if err != nil {
		gologger.Fatal().Msgf("could not load dictionary: %s\n", err)
	}
	gologger.Info().Msgf("loaded %d words in %s", count, time.Since(start))

	for _, d := range cfg.InstallBounds {
		if err := t.Install(d); err != nil {
			gologger.Fatal().Msgf("could not install bound %d: %s\n", d, err)
		}
		gologger.Verbose().Msgf("installed edit-distance bound %d", d)
	}

	runQueryLoop(os.Stdin, os.Stdout, t, cfg)
}

// runQueryLoop reads "query<TAB>d" lines until EOF, printing matches one
// per line; no separator is written between the results of successive
// queries.
func runQueryLoop(in io.Reader, out io.Writer, t *trie.Trie, cfg *config.Config) {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		query, bound := splitQueryLine(line, cfg.DefaultBound)

		start := time.Now()
		results := t.Search(bound, query)
		elapsed := time.Since(start)

		if cfg.ResultLimit > 0 && len(results) > cfg.ResultLimit {
			results = results[:cfg.ResultLimit]
		}
		for _, r := range results {
			fmt.Fprintln(out, r)
		}
		gologger.Verbose().Msgf("query %q (d=%d) returned %d results in %s", query, bound, len(results), elapsed)
	}
}

// splitQueryLine parses "query<TAB>d"; a missing or unparseable bound
// falls back to defaultBound.
func splitQueryLine(line string, defaultBound int) (query string, bound int) {
	parts := strings.SplitN(line, "\t", 2)
	if len(parts) != 2 {
		return line, defaultBound
	}
	d, err := strconv.Atoi(strings.TrimSpace(parts[1]))
	if err != nil {
		return parts[0], defaultBound
	}
	return parts[0], d
}

func parseBounds(raw goflags.StringSlice) ([]int, error) {
	var bounds []int
	for _, s := range raw {
		s = strings.TrimSpace(s)
		if s == "" {
			continue
		}
		d, err := strconv.Atoi(s)
		if err != nil {
			return nil, err
		}
		bounds = append(bounds, d)
	}
	return bounds, nil
}

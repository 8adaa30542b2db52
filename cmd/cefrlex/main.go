// Command cefrlex looks up CEFR difficulty levels of words.
//
// Usage:
//
//	cefrlex [flags] tokenize|resolve|check|annotate|complete|stats [text ...]
//
// Arguments after the subcommand are joined by blanks and processed as one
// input. Without arguments every line of stdin is processed in turn. Each
// result is written to stdout as one JSON line.
//
// Dictionaries are loaded at startup from the store named in the
// configuration (CEFRLEX_CONFIG or ./cefrlex.yaml, overridden by CEFRLEX_*
// environment variables).
//
// Exit codes: 0 = success, 1 = error, 2 = usage error.
package main

import (
	"bufio"
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"

	"github.com/npillmayer/cefrlex"
	"github.com/npillmayer/cefrlex/internal/app"
	"github.com/npillmayer/cefrlex/internal/config"
)

func main() {
	configPath := flag.String("config", "", "path to YAML config")
	langFlag := flag.String("lang", "en", "language code")
	minFlag := flag.String("min", "B2", "minimum CEFR level for check and annotate")
	limit := flag.Int("limit", 10, "maximum number of completions")
	all := flag.Bool("all", false, "resolve: list every scored match instead of the best entry")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() == 0 {
		usage()
		os.Exit(2)
	}
	cmd := flag.Arg(0)
	args := flag.Args()[1:]

	lang, err := cefrlex.ParseLanguage(*langFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrlex: %v\n", err)
		os.Exit(2)
	}
	minTier, err := cefrlex.ParseTier(*minFlag)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrlex: %v\n", err)
		os.Exit(2)
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "cefrlex: %v\n", err)
		os.Exit(1)
	}
	logger := app.NewLogger(cfg.Log)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if !contains(cfg.Langs, lang) {
		cfg.Langs = append(cfg.Langs, lang)
	}
	reg, err := app.LoadRegistry(ctx, cfg, logger)
	if err != nil {
		logger.Error("load dictionaries", slog.String("error", err.Error()))
		os.Exit(1)
	}

	r := &runner{
		reg:   reg,
		lang:  lang,
		min:   minTier,
		limit: *limit,
		all:   *all,
		out:   json.NewEncoder(os.Stdout),
	}
	if err := r.run(cmd, args, os.Stdin); err != nil {
		logger.Error(cmd+" failed", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(),
		"usage: cefrlex [flags] tokenize|resolve|check|annotate|complete|stats [text ...]\n")
	flag.PrintDefaults()
}

func contains(langs []cefrlex.Language, lang cefrlex.Language) bool {
	for _, l := range langs {
		if l == lang {
			return true
		}
	}
	return false
}

type runner struct {
	reg   *cefrlex.Registry
	lang  cefrlex.Language
	min   cefrlex.Tier
	limit int
	all   bool
	out   *json.Encoder
}

type resolveResult struct {
	Token string         `json:"token"`
	Found bool           `json:"found"`
	Entry *cefrlex.Entry `json:"entry,omitempty"`
}

type matchResult struct {
	Entry *cefrlex.Entry `json:"entry"`
	Kind  string         `json:"kind"`
	Score int            `json:"score"`
}

type checkResult struct {
	Token     string `json:"token"`
	MinTier   string `json:"min_tier"`
	AtOrAbove bool   `json:"at_or_above"`
}

func (r *runner) run(cmd string, args []string, stdin io.Reader) error {
	var handle func(string) any
	switch cmd {
	case "tokenize":
		handle = func(text string) any { return r.reg.Tokenize(r.lang, text) }
	case "resolve":
		handle = r.resolve
	case "check":
		handle = func(token string) any {
			return checkResult{
				Token:     token,
				MinTier:   r.min.String(),
				AtOrAbove: r.reg.HasTierAtOrAbove(r.lang, token, r.min.Rank()),
			}
		}
	case "annotate":
		handle = func(text string) any { return r.reg.Annotate(r.lang, text, r.min.Rank()) }
	case "complete":
		handle = func(prefix string) any { return r.reg.Complete(r.lang, prefix, r.limit) }
	case "stats":
		return r.stats()
	default:
		return fmt.Errorf("unknown command %q", cmd)
	}

	if len(args) > 0 {
		return r.out.Encode(handle(strings.Join(args, " ")))
	}
	sc := bufio.NewScanner(stdin)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" {
			continue
		}
		if err := r.out.Encode(handle(line)); err != nil {
			return err
		}
	}
	return sc.Err()
}

func (r *runner) resolve(token string) any {
	if r.all {
		matches := r.reg.Matches(r.lang, token)
		out := make([]matchResult, len(matches))
		for i, m := range matches {
			out[i] = matchResult{Entry: m.Entry, Kind: m.Kind.String(), Score: m.Score}
		}
		return out
	}
	e, ok := r.reg.Resolve(r.lang, token)
	res := resolveResult{Token: token, Found: ok}
	if ok {
		res.Entry = &e
	}
	return res
}

func (r *runner) stats() error {
	type langStats struct {
		Language cefrlex.Language `json:"language"`
		Entries  int              `json:"entries"`
		Light    int              `json:"light"`
	}
	info := langStats{Language: r.lang}
	if idx := r.reg.Index(r.lang); idx != nil {
		info.Entries = idx.Len()
	}
	if light := r.reg.LightIndex(r.lang); light != nil {
		info.Light = light.Len()
	}
	return r.out.Encode(info)
}

// zhuyinctl is the command-line front end for the zhuyind composition
// engine.
package main

import (
	"flag"
	"fmt"
	"os"
	"strconv"

	"zhuyind/internal/composer"
	"zhuyind/internal/config"
	"zhuyind/internal/history"
	"zhuyind/internal/layout"
)

var (
	configPath = flag.String("config", "", "path to config file")
	layoutName = flag.String("layout", "", "keyboard arrangement (overrides config)")
	correction = flag.Bool("correction", false, "enable combination correction (overrides config)")
	romanized  = flag.Bool("romanized", false, "treat the sequence as one whole romanized syllable")
	asPinyin   = flag.Bool("pinyin", false, "render as Hanyu Pinyin")
	textbook   = flag.Bool("textbook", false, "render in textbook style")
)

func main() {
	flag.Parse()

	if flag.NArg() < 1 {
		usage()
		os.Exit(1)
	}

	switch cmd := flag.Arg(0); cmd {
	case "compose":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: zhuyinctl compose <keys>")
			os.Exit(1)
		}
		cmdCompose(flag.Arg(1))
	case "layouts":
		cmdLayouts()
	case "validate":
		if flag.NArg() < 2 {
			fmt.Fprintln(os.Stderr, "Usage: zhuyinctl validate <keys>")
			os.Exit(1)
		}
		cmdValidate(flag.Arg(1))
	case "history":
		limit := 20
		if flag.NArg() >= 2 {
			n, err := strconv.Atoi(flag.Arg(1))
			if err != nil {
				fmt.Fprintf(os.Stderr, "Bad limit %q\n", flag.Arg(1))
				os.Exit(1)
			}
			limit = n
		}
		cmdHistory(limit)
	case "help":
		usage()
	default:
		fmt.Fprintf(os.Stderr, "Unknown command: %s\n", cmd)
		usage()
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintln(os.Stderr, `zhuyinctl - control utility for the zhuyind composition engine

Usage: zhuyinctl [options] <command> [args]

Commands:
  compose <keys>   Run a key sequence through the composer and print the
                   Bopomofo, Pinyin, and textbook renderings
  layouts          List the supported keyboard arrangements
  validate <keys>  Report which keys the current arrangement accepts
  history [n]      Print the n most recent committed syllables and the
                   most frequent readings
  help             Show this help message

Options:
  -config <path>      Path to config file (default: ~/.zhuyind/config.toml)
  -layout <name>      Keyboard arrangement, e.g. dachen, hsu, hanyupinyin
  -correction         Enable the phonetic combination corrector
  -romanized          Resolve the whole sequence as one romanized syllable
  -pinyin             Prefer the Pinyin rendering in output
  -textbook           Prefer textbook styling in output`)
}

func loadConfig() *config.Config {
	cfg, err := config.Load(*configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error loading config: %v\n", err)
		os.Exit(1)
	}
	return cfg
}

// selectedLayout resolves the arrangement from the flag or the config.
func selectedLayout(cfg *config.Config) layout.Layout {
	name := cfg.Input.Layout
	if *layoutName != "" {
		name = *layoutName
	}
	l, err := layout.Parse(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	return l
}

func cmdCompose(keys string) {
	cfg := loadConfig()
	l := selectedLayout(cfg)
	corr := cfg.Input.Correction || *correction

	c := composer.New("", l, corr)
	c.ReceiveSequence(keys, *romanized && l.IsPinyin())

	fmt.Printf("layout:    %s\n", l)
	fmt.Printf("bopomofo:  %s\n", c.Composition(false, false))
	fmt.Printf("textbook:  %s\n", c.Composition(false, true))
	fmt.Printf("pinyin:    %s\n", c.Composition(true, false))
	fmt.Printf("diacritic: %s\n", c.Composition(true, true))
	if l.IsPinyin() {
		fmt.Printf("inline:    %s\n", c.InlineDisplay(false))
	}
	if *asPinyin || *textbook {
		fmt.Printf("display:   %s\n", c.Composition(*asPinyin, *textbook))
	}
}

func cmdLayouts() {
	for _, l := range layout.All() {
		kind := "static"
		switch {
		case l.IsPinyin():
			kind = "romanization"
		case l.IsDynamic():
			kind = "dynamic"
		}
		fmt.Printf("%-16s %s\n", l, kind)
	}
}

func cmdValidate(keys string) {
	cfg := loadConfig()
	l := selectedLayout(cfg)
	c := composer.New("", l, false)

	for _, key := range keys {
		verdict := "ok"
		if !c.InputValidityCheck(key) {
			verdict = "rejected"
		}
		fmt.Printf("%q: %s\n", key, verdict)
	}
}

func cmdHistory(limit int) {
	cfg := loadConfig()
	if !cfg.History.Enabled {
		fmt.Fprintln(os.Stderr, "History is disabled in the config")
		os.Exit(1)
	}
	path := cfg.History.Path
	if path == "" {
		path = config.DefaultHistoryPath()
	}

	store, err := history.Open(path)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error opening history: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	entries, err := store.Recent(limit)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}

	fmt.Println("=== Recent syllables ===")
	for _, e := range entries {
		fmt.Printf("%s  %-8s %-10s (%s)\n",
			e.TypedAt.Format("2006-01-02 15:04:05"), e.Reading, e.Pinyin, e.Layout)
	}

	top, err := store.Top(10)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error reading history: %v\n", err)
		os.Exit(1)
	}
	fmt.Println()
	fmt.Println("=== Most frequent readings ===")
	for _, rc := range top {
		fmt.Printf("%6d  %s\n", rc.Count, rc.Reading)
	}
}

// Command patsolve is the CLI front end: flag parsing, layout/dealer
// selection, single-board or batch-range solving, and solution-trace
// printing. Grounded on patmain.c's usage/option set and the teacher's
// cmd/chessplay-uci/main.go flag-and-log idiom.
package main

import (
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"sync"

	"github.com/tholroyd/patsolve/internal/batch"
	"github.com/tholroyd/patsolve/internal/dealer"
	"github.com/tholroyd/patsolve/internal/engine"
	"github.com/tholroyd/patsolve/internal/layout"
	"github.com/tholroyd/patsolve/internal/solcache"
	"github.com/tholroyd/patsolve/internal/solitaire"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin, os.Stdout, os.Stderr))
}

func run(args []string, stdin io.Reader, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("patsolve", flag.ContinueOnError)
	fs.SetOutput(stderr)

	seahaven := fs.Bool("s", false, "Seahaven Towers (same suit, 10 work piles, 4 free cells)")
	freecell := fs.Bool("f", false, "Freecell (alternating color, 8 work piles, 4 free cells); default")
	kingOnly := fs.Bool("k", false, "only a king may start an empty pile")
	anyCard := fs.Bool("a", false, "any card may start an empty pile")
	numWorkPiles := fs.Int("w", 0, "number of work piles (overrides variant default)")
	numFreeCells := fs.Int("t", 0, "number of free cells (overrides variant default)")
	continueAfterWin := fs.Bool("E", false, "continue searching after the first solution")
	toStack := fs.Bool("S", false, "to-stack mode: favor speed over solution quality")
	quiet := fs.Bool("q", false, "quiet: suppress the move trace")
	verbose := fs.Bool("v", false, "verbose: print extra search statistics")
	preset := fs.Int("P", -1, "parameter preset 0..7 (see spec's preset table)")
	megabytes := fs.Int("M", 0, "memory budget in megabytes (0 selects the default)")
	gameNumber := fs.Int64("g", 0, "deal this Microsoft board number instead of reading a layout from stdin")

	var xOverride [10]int
	var xSet [10]bool
	for i := 0; i < 10; i++ {
		i := i
		fs.Func(fmt.Sprintf("X%d", i), fmt.Sprintf("override parameter x[%d]", i), func(s string) error {
			v, err := strconv.Atoi(s)
			if err != nil {
				return err
			}
			xOverride[i] = v
			xSet[i] = true
			return nil
		})
	}
	var cutoff int
	var cutoffSet bool
	fs.Func("c", "override parameter x[10] (queue-dispatch cutoff)", func(s string) error {
		v, err := strconv.Atoi(s)
		if err != nil {
			return err
		}
		cutoff = v
		cutoffSet = true
		return nil
	})
	var yOverride [3]float64
	var ySet bool
	fs.Func("Y", "override y0,y1,y2 as a comma-separated triple", func(s string) error {
		var a, b, c float64
		if _, err := fmt.Sscanf(s, "%g,%g,%g", &a, &b, &c); err != nil {
			return err
		}
		yOverride = [3]float64{a, b, c}
		ySet = true
		return nil
	})

	if err := fs.Parse(args); err != nil {
		return 2
	}

	cfg := solitaire.Config{SameSuit: false, KingOnly: false, NumWorkPiles: 8, NumFreeCells: 4}
	variant := "freecell"
	presetIdx := solitaire.FreecellSpeed
	if *seahaven {
		cfg = solitaire.Config{SameSuit: true, KingOnly: true, NumWorkPiles: 10, NumFreeCells: 4}
		variant = "seahaven"
		presetIdx = solitaire.SeahavenKing
	}
	if *freecell {
		cfg.SameSuit = false
		variant = "freecell"
	}
	if *kingOnly {
		cfg.KingOnly = true
	}
	if *anyCard {
		cfg.KingOnly = false
	}
	if *numWorkPiles > 0 {
		cfg.NumWorkPiles = *numWorkPiles
	}
	if *numFreeCells > 0 {
		cfg.NumFreeCells = *numFreeCells
	}
	if *preset >= 0 && *preset <= 7 {
		presetIdx = solitaire.Preset(*preset)
	}

	params := solitaire.LoadPreset(presetIdx)
	for i := 0; i < 10; i++ {
		if xSet[i] {
			params.X[i] = xOverride[i]
		}
	}
	if cutoffSet {
		params.Cutoff = cutoff
	}
	if ySet {
		params.Y = yOverride
	}

	budget := 0
	if *megabytes > 0 {
		budget = *megabytes * 1_000_000
	}

	start := os.Getenv("PATSOLVE_START")
	end := os.Getenv("PATSOLVE_END")
	if start != "" && end != "" {
		cache, err := solcache.Open()
		if err != nil {
			fmt.Fprintln(stderr, "patsolve: solved-deal cache unavailable, continuing without it:", err)
			cache = nil
		} else {
			defer cache.Close()
		}
		return runBatch(start, end, variant, cfg, params, budget, *toStack, cache, stdout)
	}

	var l layout.Layout
	if *gameNumber != 0 {
		var d dealer.Deal
		if variant == "seahaven" {
			d = dealer.Seahaven(*gameNumber)
		} else {
			d = dealer.Freecell(*gameNumber)
		}
		l = layout.Layout{Piles: d.Piles, FreeCells: d.FreeCells}
	} else {
		data, err := io.ReadAll(stdin)
		if err != nil {
			fmt.Fprintln(stderr, "patsolve:", err)
			return 3
		}
		l, err = layout.Parse(string(data))
		if err != nil {
			fmt.Fprintln(stderr, "patsolve:", err)
			return 3
		}
	}

	b := solitaire.NewBoard(cfg)
	b.Piles = l.Piles
	if len(l.FreeCells) > 0 {
		copy(b.FreeCells, l.FreeCells)
	}
	b.Foundations = l.Foundations

	s := engine.New(b, params, engine.Options{
		MemoryBudget:     budget,
		ToStack:          *toStack,
		MaxNumChecked:    -1,
		ContinueAfterWin: *continueAfterWin,
		Logger:           log.New(stderr, "", 0),
	})

	status := s.Run()

	if !*quiet {
		for _, m := range s.MovesToWin() {
			fmt.Fprintln(stdout, engine.FormatMove(m))
		}
	}
	if *verbose {
		fmt.Fprintf(stderr, "positions checked: %d\n", s.NumChecked())
	}

	switch status {
	case engine.Win:
		return 0
	case engine.Fail:
		return 254
	default:
		return 1
	}
}

func runBatch(startStr, endStr, variant string, cfg solitaire.Config, params solitaire.Params, budget int, toStack bool, cache *solcache.Cache, stdout io.Writer) int {
	start, err := strconv.ParseInt(startStr, 10, 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "patsolve: bad PATSOLVE_START:", err)
		return 2
	}
	end, err := strconv.ParseInt(endStr, 10, 64)
	if err != nil {
		fmt.Fprintln(os.Stderr, "patsolve: bad PATSOLVE_END:", err)
		return 2
	}

	opts := batch.Options{
		Variant:       variant,
		Config:        cfg,
		Params:        params,
		NumWorkers:    4,
		MemoryBudget:  budget,
		MaxNumChecked: -1,
		ToStack:       toStack,
		Cache:         cache,
	}

	anyFail := false
	var mu sync.Mutex
	batch.Run(batch.Range{Start: start, End: end}, opts, func(res batch.Result) {
		mu.Lock()
		defer mu.Unlock()
		fmt.Fprintln(stdout, batch.StatusLine(res))
		if res.Status == engine.Fail {
			anyFail = true
		}
	})

	if anyFail {
		return 254
	}
	return 0
}

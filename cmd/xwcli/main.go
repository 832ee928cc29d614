package main

import (
	"bufio"
	"context"
	"errors"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"runtime/pprof"
	"time"

	"crosswarped.com/xwfill"
	"crosswarped.com/xwfill/internal/wordlist"
)

func main() {
	structureFile := flag.String("structure", "", "The file describing the puzzle structure ('_' marks fillable cells)")
	wordsFile := flag.String("words", "", "The file to load words from")
	excludedFile := flag.String("excluded", "", "The file to load excluded words from")
	output := flag.String("output", "", "Optional PNG file to render the solution to")
	minWordLength := flag.Int("min_length", 2, "The minimum word length")

	timeout := flag.Duration("timeout", 1*time.Minute, "The timeout for the solver")

	profile := flag.Bool("profile", false, "Profile the solver")
	profileFile := flag.String("profile-file", "cpu.pprof", "The file to write the CPU profile to")
	memoryProfileFile := flag.String("memory-profile-file", "mem.pprof", "The file to write the memory profile to")

	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))

	if *structureFile == "" || *wordsFile == "" {
		fmt.Fprintln(os.Stderr, "Usage: xwcli -structure FILE -words FILE [-excluded FILE] [-output FILE.png]")
		os.Exit(1)
	}

	ctx := context.Background()

	rows, err := loadLines(*structureFile)
	if err != nil {
		logger.Error("loading structure", "file", *structureFile, "err", err)
		os.Exit(1)
	}

	crossword, err := xwfill.ParseStructure(rows)
	if err != nil {
		logger.Error("parsing structure", "file", *structureFile, "err", err)
		os.Exit(1)
	}

	words, err := wordlist.Load(ctx, *wordsFile, *minWordLength, 0)
	if err != nil {
		logger.Error("loading words", "file", *wordsFile, "err", err)
		os.Exit(1)
	}

	var excluded []string
	if *excludedFile != "" {
		if excluded, err = wordlist.Load(ctx, *excludedFile, 0, 0); err != nil {
			logger.Error("loading excluded words", "file", *excludedFile, "err", err)
			os.Exit(1)
		}
	}
	words = wordlist.Filter(words, excluded)

	logger.Info("loaded puzzle",
		"height", crossword.Height,
		"width", crossword.Width,
		"slots", len(crossword.Slots),
		"words", len(words))

	byLength := wordlist.ByLength(words)
	for _, slot := range crossword.Slots {
		if len(byLength[slot.Length]) == 0 {
			logger.Warn("no candidate words for slot", "slot", slot.String())
		}
	}

	var mf *os.File
	if *profile {
		f, err := os.Create(*profileFile)
		if err != nil {
			logger.Error("creating profile file", "err", err)
			os.Exit(1)
		}
		defer f.Close()

		mf, err = os.Create(*memoryProfileFile)
		if err != nil {
			logger.Error("creating memory profile file", "err", err)
			os.Exit(1)
		}
		defer mf.Close()

		if err := pprof.StartCPUProfile(f); err != nil {
			logger.Error("starting CPU profile", "err", err)
			os.Exit(1)
		}
		defer pprof.StopCPUProfile()
	}

	ctx, cancel := context.WithTimeout(ctx, *timeout)
	defer cancel()

	start := time.Now()
	solver := xwfill.NewSolver(crossword, words)
	assignment, err := solver.Solve(ctx)
	switch {
	case errors.Is(err, xwfill.ErrNoSolution):
		fmt.Println("No solution.")
		os.Exit(2)
	case err != nil:
		logger.Error("solving", "err", err, "elapsed", time.Since(start))
		os.Exit(1)
	}

	logger.Info("solved", "elapsed", time.Since(start))
	fmt.Println(xwfill.Render(crossword, assignment))

	if *output != "" {
		if err := xwfill.SavePNG(crossword, assignment, *output); err != nil {
			logger.Error("saving image", "file", *output, "err", err)
			os.Exit(1)
		}
		logger.Info("saved image", "file", *output)
	}

	if mf != nil {
		pprof.WriteHeapProfile(mf)
	}
}

func loadLines(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var lines []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		lines = append(lines, scanner.Text())
	}
	return lines, scanner.Err()
}

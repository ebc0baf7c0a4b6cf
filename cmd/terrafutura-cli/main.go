package main

import (
	"flag"
	"fmt"
	"os"
	"sort"

	"github.com/peterkuimelis/terrafutura/internal/config"
	"github.com/peterkuimelis/terrafutura/internal/game"
	"github.com/peterkuimelis/terrafutura/internal/log"
	"github.com/peterkuimelis/terrafutura/internal/view"
)

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}

	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}

	cmd := os.Args[1]
	switch cmd {
	case "score":
		runScore(cfg, os.Args[2:])
	case "validate":
		runValidate(cfg, os.Args[2:])
	case "journal":
		runJournal(os.Args[2:])
	default:
		printUsage()
		os.Exit(1)
	}
}

func printUsage() {
	fmt.Println("Usage:")
	fmt.Println("  terrafutura score [--catalog FILE] [--board NAME] [--method N] [--json]")
	fmt.Println("  terrafutura validate [--catalog FILE]")
	fmt.Println("  terrafutura journal FILE")
	fmt.Println()
	fmt.Println("Commands:")
	fmt.Println("  score     Score a catalog board with one or all scoring methods")
	fmt.Println("  validate  Check a card catalog and list its contents")
	fmt.Println("  journal   Print the events of a compressed session journal")
}

func runScore(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("score", flag.ExitOnError)
	catalogFile := fs.String("catalog", cfg.Catalog, "path to card catalog YAML")
	board := fs.String("board", cfg.Board, "board to score (from the catalog)")
	method := fs.Int("method", 0, "scoring method number; 0 scores with every method")
	asJSON := fs.Bool("json", false, "print scoring states as JSON")
	fs.Parse(args)

	catalog, err := game.LoadCatalog(*catalogFile)
	if err != nil {
		config.Exitf("load catalog: %v", err)
	}
	grid, err := catalog.NewGrid(*board)
	if err != nil {
		config.Exitf("%v", err)
	}

	methods := []int{*method}
	if *method == 0 {
		methods = methods[:0]
		for i := 1; i <= catalog.ScoringCount(); i++ {
			methods = append(methods, i)
		}
	}

	logger := log.NewTextLogger(os.Stdout)
	var states []game.ScoringState
	for _, i := range methods {
		s, err := catalog.NewScoringMethod(i, grid)
		if err != nil {
			config.Exitf("%v", err)
		}
		if !*asJSON {
			s.Logger = logger
		}
		s.SelectThisMethodAndCalculate()
		states = append(states, s.State())

		if !*asJSON {
			b, _ := s.Breakdown()
			fmt.Printf("    totals: %s\n", formatTotals(b.Totals))
		}
	}

	if *asJSON {
		data, err := view.Marshal(states)
		if err != nil {
			config.Exitf("%v", err)
		}
		fmt.Println(string(data))
	}
}

func formatTotals(totals map[game.Resource]int) string {
	rs := make([]game.Resource, 0, len(totals))
	for r, n := range totals {
		if n > 0 {
			rs = append(rs, r)
		}
	}
	sort.Slice(rs, func(i, j int) bool { return rs[i] < rs[j] })
	out := ""
	for i, r := range rs {
		if i > 0 {
			out += " "
		}
		out += fmt.Sprintf("%s=%d", r, totals[r])
	}
	return out
}

func runValidate(cfg config.Config, args []string) {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	catalogFile := fs.String("catalog", cfg.Catalog, "path to card catalog YAML")
	fs.Parse(args)

	catalog, err := game.LoadCatalog(*catalogFile)
	if err != nil {
		config.Exitf("%s: %v", *catalogFile, err)
	}

	names := catalog.CardNames()
	fmt.Printf("%s: %d cards, %d scoring methods\n", *catalogFile, len(names), catalog.ScoringCount())
	for _, name := range names {
		card, _ := catalog.NewCard(name)
		st := card.State()
		fmt.Printf("  %-20s pollution spaces %d", name, st.PollutionSpaces)
		if st.Assistance {
			fmt.Print(", assistance")
		}
		fmt.Println()
	}
}

func runJournal(args []string) {
	if len(args) != 1 {
		printUsage()
		os.Exit(1)
	}
	f, err := os.Open(args[0])
	if err != nil {
		config.Exitf("%v", err)
	}
	defer f.Close()

	events, err := log.ReadJournal(f)
	if err != nil {
		config.Exitf("%v", err)
	}
	fmt.Print(log.FormatAll(events))
}

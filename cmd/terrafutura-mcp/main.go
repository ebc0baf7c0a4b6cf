package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/mark3labs/mcp-go/server"

	"github.com/peterkuimelis/terrafutura/internal/config"
	"github.com/peterkuimelis/terrafutura/internal/game"
	"github.com/peterkuimelis/terrafutura/internal/log"
	tfmcp "github.com/peterkuimelis/terrafutura/internal/mcp"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		config.Exitf("%v", err)
	}

	catalogFile := flag.String("catalog", cfg.Catalog, "path to card catalog YAML")
	pile := flag.String("pile", cfg.Pile, "pile to draw from (from the catalog)")
	board := flag.String("board", cfg.Board, "starting board (from the catalog); empty for a bare grid")
	players := flag.Int("players", cfg.Players, "number of players at the table")
	journalFile := flag.String("journal", cfg.Journal, "write a zstd-compressed event journal to this file")
	flag.Parse()

	catalog, err := game.LoadCatalog(*catalogFile)
	if err != nil {
		config.Exitf("load catalog: %v", err)
	}

	sc := tfmcp.SessionConfig{Pile: *pile, Board: *board, Players: *players}
	var journal *log.JournalLogger
	if *journalFile != "" {
		f, err := os.Create(*journalFile)
		if err != nil {
			config.Exitf("%v", err)
		}
		defer f.Close()
		if journal, err = log.NewJournalLogger(f); err != nil {
			config.Exitf("%v", err)
		}
		sc.Journal = journal
	}

	sess, err := tfmcp.NewSession(catalog, sc)
	if err != nil {
		config.Exitf("%v", err)
	}

	s := server.NewMCPServer("terrafutura", "1.0.0")
	tfmcp.RegisterTools(s, sess)

	err = server.ServeStdio(s)
	if journal != nil {
		if cerr := journal.Close(); cerr != nil {
			fmt.Fprintf(os.Stderr, "Error: journal: %v\n", cerr)
		}
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

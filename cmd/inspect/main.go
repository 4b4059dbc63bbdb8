package main

import (
	"encoding/json"
	"flag"
	"fmt"
	"os"
	"strings"

	"github.com/danielpatrickdp/parley/internal/audit"
	"github.com/danielpatrickdp/parley/internal/catalog"
)

// #region main

func main() {
	dbPath := flag.String("db", "", "path to parley.db")
	last := flag.Int("last", 20, "show N most recent turns")
	conversation := flag.String("conversation", "", "show all turns of one conversation")
	kind := flag.String("kind", "", "list catalog entities of a kind instead of turns")
	jsonOut := flag.Bool("json", false, "output as JSON instead of table")
	flag.Parse()

	if *dbPath == "" {
		fmt.Fprintln(os.Stderr, "usage: inspect --db path/to/parley.db [--last N] [--conversation id] [--kind name] [--json]")
		os.Exit(2)
	}

	store, err := catalog.Open(*dbPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "open db: %v\n", err)
		os.Exit(1)
	}
	defer store.Close()

	if *kind != "" {
		err = runEntityMode(store, *kind, *jsonOut)
	} else {
		err = runTurnMode(store, *last, *conversation, *jsonOut)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

// #endregion main

// #region turn-mode

func runTurnMode(store *catalog.Store, last int, conversation string, jsonOut bool) error {
	l := audit.NewLog(store.DB())

	var recs []audit.TurnRecord
	var err error
	if conversation != "" {
		recs, err = l.Conversation(conversation)
	} else {
		recs, err = l.Recent(last)
	}
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(recs)
	}

	fmt.Printf("%-10s %-10s %-14s %-28s %-9s %-6s %s\n",
		"Turn", "Convo", "Intent", "Route", "Final", "Clar.", "User text")
	for _, r := range recs {
		fmt.Printf("%-10s %-10s %-14s %-28s %-9s %-6d %s\n",
			short(r.TurnID), short(r.ConversationID), r.Intent, r.Route,
			r.FinalState, r.ClarificationCount, truncate(r.UserText, 40))
	}
	return nil
}

// #endregion turn-mode

// #region entity-mode

func runEntityMode(store *catalog.Store, kind string, jsonOut bool) error {
	entities, err := store.ListKind(kind)
	if err != nil {
		return err
	}

	if jsonOut {
		return printJSON(entities)
	}

	fmt.Printf("%-12s %-40s %s\n", "ID", "Name", "Payload")
	for _, e := range entities {
		fmt.Printf("%-12s %-40s %s\n", e.ID, e.Name, truncate(e.PayloadJSON, 60))
	}
	fmt.Printf("\n%d %s entities\n", len(entities), kind)
	return nil
}

// #endregion entity-mode

// #region helpers

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

func short(id string) string {
	if len(id) > 8 {
		return id[:8]
	}
	return id
}

func truncate(s string, n int) string {
	s = strings.ReplaceAll(s, "\n", " ")
	if len(s) > n {
		return s[:n-3] + "..."
	}
	return s
}

// #endregion helpers

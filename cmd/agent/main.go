package main

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"
	"strings"
	"time"

	"github.com/danielpatrickdp/parley/internal/audit"
	"github.com/danielpatrickdp/parley/internal/catalog"
	"github.com/danielpatrickdp/parley/internal/decision"
	"github.com/danielpatrickdp/parley/internal/dialogue"
	"github.com/danielpatrickdp/parley/internal/funds"
	"github.com/danielpatrickdp/parley/internal/llmclient"
	"github.com/danielpatrickdp/parley/internal/movies"
	"github.com/danielpatrickdp/parley/internal/resolve"
)

// movieQuerySchema tells the extraction side what query object to
// produce.
const movieQuerySchema = `{
  "title": "string, partial movie title",
  "actor_name": "string, actor full or partial name",
  "director_name": "string, director full or partial name",
  "genre": "string, single genre",
  "year_from": "int, inclusive lower bound",
  "year_to": "int, inclusive upper bound",
  "min_rating": "float, minimum rating 0-10"
}`

// #region main
func main() {
	dbPath := envOr("PARLEY_DB", "parley.db")
	grpcAddr := envOr("AGENT_ADDR", "localhost:50051")

	store, err := catalog.Open(dbPath)
	if err != nil {
		log.Fatalf("failed to open catalog: %v", err)
	}
	defer store.Close()

	if err := funds.SeedDemoData(store); err != nil {
		log.Fatalf("failed to seed demo data: %v", err)
	}
	registry, err := funds.NewRegistry(store, resolve.DefaultConfig())
	if err != nil {
		log.Fatalf("failed to build fund registry: %v", err)
	}

	client, err := llmclient.NewClient(grpcAddr)
	if err != nil {
		log.Fatalf("failed to connect to inference service at %s: %v", grpcAddr, err)
	}
	defer client.Close()

	svc := movies.NewService()
	auditLog := audit.NewLog(store.DB())

	extract := func(ctx context.Context, conversation string) (decision.Envelope[decision.Extraction[movies.Query]], error) {
		return llmclient.ExtractQuery[movies.Query](ctx, client, conversation, movieQuerySchema)
	}
	engine := dialogue.NewEngine(extract, client.Respond, svc.Search, movies.Describe, dialogue.DefaultConfig())
	ts := dialogue.NewTurnState[movies.Movie, movies.Query]()

	fmt.Println("Parley agent ready.")
	fmt.Printf("  DB: %s | Inference: %s\n", dbPath, grpcAddr)
	fmt.Println("Type a message ('/fund <name>' resolves a fund, '/recent' shows the turn log, 'quit' exits):")

	scanner := bufio.NewScanner(os.Stdin)
	for {
		fmt.Print("> ")
		if !scanner.Scan() {
			break
		}
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}
		if input == "quit" || input == "exit" {
			break
		}
		if name, ok := strings.CutPrefix(input, "/fund "); ok {
			resolveFund(registry, strings.TrimSpace(name))
			continue
		}
		if input == "/recent" {
			showRecent(auditLog)
			continue
		}

		ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
		res, err := engine.RunTurn(ctx, ts, input)
		cancel()
		if err != nil {
			log.Printf("turn error: %v", err)
			continue
		}

		for _, msg := range res.Outbound {
			fmt.Printf("\n%s\n\n", msg.Content)
		}

		if err := recordTurn(auditLog, ts, res, input); err != nil {
			log.Printf("audit error: %v", err)
		}
	}
}
// #endregion main

// #region audit

func recordTurn(auditLog *audit.Log, ts *dialogue.TurnState[movies.Movie, movies.Query], res dialogue.TurnResult[movies.Movie], userText string) error {
	route := make([]string, len(res.Path))
	for i, s := range res.Path {
		route[i] = string(s)
	}

	rec := audit.TurnRecord{
		TurnID:             res.TurnID,
		ConversationID:     ts.ConversationID,
		UserText:           userText,
		Intent:             string(res.Intent),
		Route:              strings.Join(route, ">"),
		FinalState:         string(res.Final),
		ClarificationCount: ts.ClarificationCount,
	}
	if ts.LastExtraction != nil {
		rec.Confidence = ts.LastExtraction.Confidence
		rec.Reason = ts.LastExtraction.Reasoning
	}
	if ts.Query != nil {
		b, err := json.Marshal(ts.Query)
		if err != nil {
			return fmt.Errorf("marshal query: %w", err)
		}
		rec.QueryJSON = string(b)
	}
	if len(res.Mutations) > 0 {
		b, err := json.Marshal(res.Mutations)
		if err != nil {
			return fmt.Errorf("marshal mutations: %w", err)
		}
		rec.MutationsJSON = string(b)
	}
	return auditLog.Record(rec)
}

func showRecent(auditLog *audit.Log) {
	recs, err := auditLog.Recent(10)
	if err != nil {
		log.Printf("read turn log: %v", err)
		return
	}
	for _, r := range recs {
		fmt.Printf("[%s] convo=%s intent=%s route=%s final=%s clarifications=%d\n",
			r.TurnID[:8], r.ConversationID[:8], r.Intent, r.Route, r.FinalState, r.ClarificationCount)
	}
}

// #endregion audit

// #region fund-resolve

func resolveFund(registry *funds.Registry, name string) {
	env, err := registry.ResolveFund(name)
	if err != nil {
		log.Printf("resolve error: %v", err)
		return
	}

	out := env.Payload
	fmt.Printf("status=%s confidence=%.2f: %s\n", out.Status, env.Confidence, env.Reasoning)
	if out.Selection == nil {
		return
	}

	fund, err := funds.FundFromEntity(out.Selection.Selected)
	if err != nil {
		log.Printf("decode fund: %v", err)
		return
	}
	fmt.Printf("  -> %s (%s, active=%v)", fund.Name, fund.Currency, fund.IsActive)
	if out.Selection.RequiresConfirmation {
		fmt.Print(" [needs confirmation]")
	}
	fmt.Println()
	for _, alt := range out.Selection.Alternatives {
		fmt.Printf("     alt: %s (%.4f)\n", alt.Item.Name, alt.Score)
	}
}

// #endregion fund-resolve

// #region helpers
func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
// #endregion helpers

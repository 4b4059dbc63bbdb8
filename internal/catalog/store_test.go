package catalog

import (
	"path/filepath"
	"testing"
)

func tempStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("Open: %v", err)
	}
	t.Cleanup(func() { s.Close() })
	return s
}

func TestPutAndGet(t *testing.T) {
	s := tempStore(t)

	e, err := s.Put(Entity{Kind: "fund", Name: "Global Equity Growth Fund", PayloadJSON: `{"currency":"USD"}`})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	if e.ID == "" {
		t.Fatal("expected generated ID")
	}
	if e.CreatedAt.IsZero() {
		t.Fatal("expected created timestamp")
	}

	got, err := s.Get(e.ID)
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "Global Equity Growth Fund" || got.Kind != "fund" {
		t.Errorf("unexpected entity: %+v", got)
	}
	if got.PayloadJSON != `{"currency":"USD"}` {
		t.Errorf("payload lost: %q", got.PayloadJSON)
	}
}

func TestPutUpsert(t *testing.T) {
	s := tempStore(t)

	e, err := s.Put(Entity{ID: "fund_x", Kind: "fund", Name: "Old Name"})
	if err != nil {
		t.Fatalf("Put: %v", err)
	}
	e.Name = "New Name"
	if _, err := s.Put(e); err != nil {
		t.Fatalf("Put update: %v", err)
	}

	got, err := s.Get("fund_x")
	if err != nil {
		t.Fatalf("Get: %v", err)
	}
	if got.Name != "New Name" {
		t.Errorf("expected updated name, got %q", got.Name)
	}
}

func TestGetMissing(t *testing.T) {
	s := tempStore(t)
	if _, err := s.Get("nope"); err == nil {
		t.Error("expected error for missing entity")
	}
}

func TestListKind(t *testing.T) {
	s := tempStore(t)

	for _, e := range []Entity{
		{ID: "f1", Kind: "fund", Name: "Beta Fund"},
		{ID: "f2", Kind: "fund", Name: "Alpha Fund"},
		{ID: "i1", Kind: "investor", Name: "Some Investor"},
	} {
		if _, err := s.Put(e); err != nil {
			t.Fatalf("Put %s: %v", e.ID, err)
		}
	}

	out, err := s.ListKind("fund")
	if err != nil {
		t.Fatalf("ListKind: %v", err)
	}
	if len(out) != 2 {
		t.Fatalf("expected 2 funds, got %d", len(out))
	}
	if out[0].Name != "Alpha Fund" || out[1].Name != "Beta Fund" {
		t.Errorf("expected name-ascending order, got %v, %v", out[0].Name, out[1].Name)
	}
}

func TestSearchable(t *testing.T) {
	s := tempStore(t)

	for _, e := range []Entity{
		{ID: "f1", Kind: "fund", Name: "Global Equity Growth Fund"},
		{ID: "f2", Kind: "fund", Name: "European Fixed Income Fund"},
	} {
		if _, err := s.Put(e); err != nil {
			t.Fatalf("Put %s: %v", e.ID, err)
		}
	}

	corpus, err := s.Searchable("fund")
	if err != nil {
		t.Fatalf("Searchable: %v", err)
	}
	if corpus.Len() != 2 {
		t.Fatalf("expected 2 entries, got %d", corpus.Len())
	}

	best, ok := corpus.Best("global equity growth")
	if !ok {
		t.Fatal("expected a match")
	}
	if best.Item.ID != "f1" {
		t.Errorf("expected f1, got %s", best.Item.ID)
	}
}

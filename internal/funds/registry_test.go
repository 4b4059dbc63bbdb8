package funds

import (
	"path/filepath"
	"testing"

	"github.com/danielpatrickdp/parley/internal/catalog"
	"github.com/danielpatrickdp/parley/internal/decision"
	"github.com/danielpatrickdp/parley/internal/resolve"
)

func seededStore(t *testing.T) *catalog.Store {
	t.Helper()
	store, err := catalog.Open(filepath.Join(t.TempDir(), "test.db"))
	if err != nil {
		t.Fatalf("open catalog: %v", err)
	}
	t.Cleanup(func() { store.Close() })
	if err := SeedDemoData(store); err != nil {
		t.Fatalf("seed: %v", err)
	}
	return store
}

// #region codec-tests

func TestFundEntityRoundTrip(t *testing.T) {
	f := Fund{ID: "fund_test", Name: "Test Fund", Currency: "CHF", IsActive: true}
	ent, err := FundEntity(f)
	if err != nil {
		t.Fatalf("FundEntity: %v", err)
	}
	if ent.Kind != KindFund || ent.Name != "Test Fund" {
		t.Errorf("unexpected entity: %+v", ent)
	}

	back, err := FundFromEntity(ent)
	if err != nil {
		t.Fatalf("FundFromEntity: %v", err)
	}
	if back != f {
		t.Errorf("round trip changed fund: %+v != %+v", back, f)
	}
}

func TestInvestorEntityRoundTrip(t *testing.T) {
	inv := Investor{ID: "inv_test", Name: "Test Investor", Country: "DE"}
	ent, err := InvestorEntity(inv)
	if err != nil {
		t.Fatalf("InvestorEntity: %v", err)
	}
	back, err := InvestorFromEntity(ent)
	if err != nil {
		t.Fatalf("InvestorFromEntity: %v", err)
	}
	if back != inv {
		t.Errorf("round trip changed investor: %+v != %+v", back, inv)
	}
}

// #endregion codec-tests

// #region registry-tests

func TestResolveFund_Exact(t *testing.T) {
	registry, err := NewRegistry(seededStore(t), resolve.DefaultConfig())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	env, err := registry.ResolveFund("european fixed income")
	if err != nil {
		t.Fatalf("ResolveFund: %v", err)
	}
	out := env.Payload
	if out.Status != decision.ResolutionResolved {
		t.Fatalf("expected resolved, got %s", out.Status)
	}
	fund, err := FundFromEntity(out.Selection.Selected)
	if err != nil {
		t.Fatalf("decode fund: %v", err)
	}
	if fund.ID != "fund_003" {
		t.Errorf("expected fund_003, got %s", fund.ID)
	}
}

func TestResolveFund_Ambiguous(t *testing.T) {
	registry, err := NewRegistry(seededStore(t), resolve.DefaultConfig())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	// "global equity" is a perfect partial match for both growth and
	// income variants, so neither wins the super margin.
	env, err := registry.ResolveFund("global equity")
	if err != nil {
		t.Fatalf("ResolveFund: %v", err)
	}
	out := env.Payload
	if out.Status != decision.ResolutionAmbiguous {
		t.Fatalf("expected ambiguous, got %s", out.Status)
	}
	if !out.Selection.IsAmbiguous {
		t.Error("expected ambiguous selection")
	}
}

func TestResolveFund_NotFound(t *testing.T) {
	registry, err := NewRegistry(seededStore(t), resolve.DefaultConfig())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	env, err := registry.ResolveFund("xylophone holdings")
	if err != nil {
		t.Fatalf("ResolveFund: %v", err)
	}
	if env.Payload.Status != decision.ResolutionNotFound {
		t.Fatalf("expected not_found, got %s", env.Payload.Status)
	}
	if env.Payload.Selection != nil {
		t.Error("not-found must carry no selection")
	}
}

func TestResolveInvestor(t *testing.T) {
	registry, err := NewRegistry(seededStore(t), resolve.DefaultConfig())
	if err != nil {
		t.Fatalf("NewRegistry: %v", err)
	}

	env, err := registry.ResolveInvestor("meridian pension")
	if err != nil {
		t.Fatalf("ResolveInvestor: %v", err)
	}
	if env.Payload.Status != decision.ResolutionResolved {
		t.Fatalf("expected resolved, got %s", env.Payload.Status)
	}
	inv, err := InvestorFromEntity(env.Payload.Selection.Selected)
	if err != nil {
		t.Fatalf("decode investor: %v", err)
	}
	if inv.ID != "inv_001" {
		t.Errorf("expected inv_001, got %s", inv.ID)
	}
}

// #endregion registry-tests

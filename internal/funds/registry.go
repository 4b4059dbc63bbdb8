package funds

// #region imports
import (
	"encoding/json"
	"fmt"

	"github.com/danielpatrickdp/parley/internal/catalog"
	"github.com/danielpatrickdp/parley/internal/decision"
	"github.com/danielpatrickdp/parley/internal/resolve"
)

// #endregion

// #region kinds

const (
	KindFund     = "fund"
	KindInvestor = "investor"
)

// #endregion kinds

// #region entity-codec

// FundEntity packs a fund into a catalog row.
func FundEntity(f Fund) (catalog.Entity, error) {
	payload, err := json.Marshal(f)
	if err != nil {
		return catalog.Entity{}, fmt.Errorf("marshal fund %s: %w", f.ID, err)
	}
	return catalog.Entity{ID: f.ID, Kind: KindFund, Name: f.Name, PayloadJSON: string(payload)}, nil
}

// FundFromEntity unpacks a catalog row back into a fund.
func FundFromEntity(e catalog.Entity) (Fund, error) {
	var f Fund
	if err := json.Unmarshal([]byte(e.PayloadJSON), &f); err != nil {
		return Fund{}, fmt.Errorf("unmarshal fund %s: %w", e.ID, err)
	}
	return f, nil
}

// InvestorEntity packs an investor into a catalog row.
func InvestorEntity(inv Investor) (catalog.Entity, error) {
	payload, err := json.Marshal(inv)
	if err != nil {
		return catalog.Entity{}, fmt.Errorf("marshal investor %s: %w", inv.ID, err)
	}
	return catalog.Entity{ID: inv.ID, Kind: KindInvestor, Name: inv.Name, PayloadJSON: string(payload)}, nil
}

// InvestorFromEntity unpacks a catalog row back into an investor.
func InvestorFromEntity(e catalog.Entity) (Investor, error) {
	var inv Investor
	if err := json.Unmarshal([]byte(e.PayloadJSON), &inv); err != nil {
		return Investor{}, fmt.Errorf("unmarshal investor %s: %w", e.ID, err)
	}
	return inv, nil
}

// #endregion entity-codec

// #region registry

// Registry resolves conversational fund and investor references against
// the catalog store.
type Registry struct {
	store     *catalog.Store
	funds     *resolve.Resolver[catalog.Entity]
	investors *resolve.Resolver[catalog.Entity]
}

// NewRegistry loads both corpora from the store. Call Reload after
// catalog writes.
func NewRegistry(store *catalog.Store, config resolve.Config) (*Registry, error) {
	r := &Registry{store: store}
	if err := r.reload(config); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *Registry) reload(config resolve.Config) error {
	fundCorpus, err := r.store.Searchable(KindFund)
	if err != nil {
		return fmt.Errorf("load fund corpus: %w", err)
	}
	invCorpus, err := r.store.Searchable(KindInvestor)
	if err != nil {
		return fmt.Errorf("load investor corpus: %w", err)
	}
	r.funds = resolve.NewResolver(fundCorpus, config)
	r.investors = resolve.NewResolver(invCorpus, config)
	return nil
}

// Reload refreshes both corpora from the store.
func (r *Registry) Reload(config resolve.Config) error {
	return r.reload(config)
}

// ResolveFund resolves a conversational fund reference.
func (r *Registry) ResolveFund(name string) (decision.Envelope[resolve.Outcome[catalog.Entity]], error) {
	return r.funds.Resolve(name)
}

// ResolveInvestor resolves a conversational investor reference.
func (r *Registry) ResolveInvestor(name string) (decision.Envelope[resolve.Outcome[catalog.Entity]], error) {
	return r.investors.Resolve(name)
}

// #endregion registry

// #region seed

// SeedDemoData loads a small demo book of funds and investors into the
// store. Existing rows with the same IDs are replaced.
func SeedDemoData(store *catalog.Store) error {
	demoFunds := []Fund{
		{ID: "fund_001", Name: "Global Equity Growth Fund", Currency: "USD", IsActive: true},
		{ID: "fund_002", Name: "Global Equity Income Fund", Currency: "USD", IsActive: true},
		{ID: "fund_003", Name: "European Fixed Income Fund", Currency: "EUR", IsActive: true},
		{ID: "fund_004", Name: "Emerging Markets Debt Fund", Currency: "USD", IsActive: true},
		{ID: "fund_005", Name: "Asia Pacific Opportunities Fund", Currency: "JPY", IsActive: false},
	}
	demoInvestors := []Investor{
		{ID: "inv_001", Name: "Meridian Pension Trust", Country: "US"},
		{ID: "inv_002", Name: "Northgate Capital Partners", Country: "GB"},
		{ID: "inv_003", Name: "Helvetia Insurance Group", Country: "CH"},
	}

	for _, f := range demoFunds {
		ent, err := FundEntity(f)
		if err != nil {
			return err
		}
		if _, err := store.Put(ent); err != nil {
			return err
		}
	}
	for _, inv := range demoInvestors {
		ent, err := InvestorEntity(inv)
		if err != nil {
			return err
		}
		if _, err := store.Put(ent); err != nil {
			return err
		}
	}
	return nil
}

// #endregion seed

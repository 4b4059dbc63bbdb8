package funds

// #region fund
// Fund is an investment fund known to the catalog.
type Fund struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Currency string `json:"currency,omitempty"`
	IsActive bool   `json:"is_active"`
}
// #endregion fund

// #region investor
// Investor is a fund investor known to the catalog.
type Investor struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Country string `json:"country,omitempty"`
}
// #endregion investor

// #region query
// Query holds criteria for finding a fund by conversational reference.
type Query struct {
	FundName     string `json:"fund_name,omitempty"`
	InvestorName string `json:"investor_name,omitempty"`
	Currency     string `json:"currency,omitempty"`
}

// IsEmpty reports whether no criterion is set.
func (q Query) IsEmpty() bool {
	return q.FundName == "" && q.InvestorName == "" && q.Currency == ""
}
// #endregion query

package models

// SourceCountry is one entry of the country directory payload.
type SourceCountry struct {
	Name       string           `json:"name"`
	Capital    string           `json:"capital"`
	Region     string           `json:"region"`
	Population int64            `json:"population"`
	Flag       string           `json:"flag"`
	Currencies []SourceCurrency `json:"currencies"`
}

// SourceCurrency is a currency attached to a directory entry. Only the
// code participates in the merge; the rest is carried for completeness.
type SourceCurrency struct {
	Code   string `json:"code"`
	Name   string `json:"name"`
	Symbol string `json:"symbol"`
}

// RatesResponse is the exchange-rate payload: currency code to rate
// against the fixed USD base.
type RatesResponse struct {
	Result string             `json:"result"`
	Rates  map[string]float64 `json:"rates"`
}

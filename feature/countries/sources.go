package countries

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"country-currency-api/core/apperr"
	"country-currency-api/feature/countries/models"
)

// SourceClient fetches the two upstream data sets. The refresh pipeline is
// fail-fast on either call: no database mutation happens until both succeed.
type SourceClient interface {
	// FetchCountries returns the country directory.
	FetchCountries(ctx context.Context) ([]models.SourceCountry, error)
	// FetchRates returns the currency-code to USD-rate mapping.
	FetchRates(ctx context.Context) (map[string]float64, error)
}

// Sources is the HTTP implementation of SourceClient. Each endpoint gets an
// independent client so the timeouts stay independent too.
type Sources struct {
	countriesURL    string
	ratesURL        string
	countriesClient *http.Client
	ratesClient     *http.Client
}

// NewSources creates the HTTP source client from configuration.
func NewSources(cfg Config) *Sources {
	countriesTimeout := cfg.CountriesTimeoutSeconds
	if countriesTimeout <= 0 {
		countriesTimeout = 15
	}
	ratesTimeout := cfg.RatesTimeoutSeconds
	if ratesTimeout <= 0 {
		ratesTimeout = 30
	}

	return &Sources{
		countriesURL:    cfg.CountriesURL,
		ratesURL:        cfg.RatesURL,
		countriesClient: &http.Client{Timeout: time.Duration(countriesTimeout) * time.Second},
		ratesClient:     &http.Client{Timeout: time.Duration(ratesTimeout) * time.Second},
	}
}

// FetchCountries downloads and parses the country directory.
func (s *Sources) FetchCountries(ctx context.Context) ([]models.SourceCountry, error) {
	body, err := s.get(ctx, s.countriesClient, s.countriesURL)
	if err != nil {
		return nil, err
	}

	var out []models.SourceCountry
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &apperr.SourceUnavailable{
			Endpoint: s.countriesURL,
			Cause:    fmt.Errorf("failed to parse countries payload: %w", err),
		}
	}
	return out, nil
}

// FetchRates downloads and parses the exchange-rate table.
func (s *Sources) FetchRates(ctx context.Context) (map[string]float64, error) {
	body, err := s.get(ctx, s.ratesClient, s.ratesURL)
	if err != nil {
		return nil, err
	}

	var out models.RatesResponse
	if err := json.Unmarshal(body, &out); err != nil {
		return nil, &apperr.SourceUnavailable{
			Endpoint: s.ratesURL,
			Cause:    fmt.Errorf("failed to parse rates payload: %w", err),
		}
	}
	return out.Rates, nil
}

// get performs one GET and returns the body. Transport failures, timeouts
// and non-2xx statuses all surface as SourceUnavailable carrying the
// offending endpoint.
func (s *Sources) get(ctx context.Context, client *http.Client, url string) ([]byte, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, &apperr.SourceUnavailable{Endpoint: url, Cause: err}
	}

	resp, err := client.Do(req)
	if err != nil {
		return nil, &apperr.SourceUnavailable{Endpoint: url, Cause: err}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return nil, &apperr.SourceUnavailable{
			Endpoint: url,
			Cause:    fmt.Errorf("unexpected status %d", resp.StatusCode),
		}
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, &apperr.SourceUnavailable{Endpoint: url, Cause: err}
	}
	return body, nil
}

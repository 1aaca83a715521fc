package countries_test

import (
	"testing"
	"time"

	"country-currency-api/feature/countries"
	"country-currency-api/feature/countries/models"

	"github.com/stretchr/testify/assert"
)

// fixedRand pins the GDP multiplier for deterministic assertions.
type fixedRand struct {
	v float64
}

func (r fixedRand) Multiplier() float64 { return r.v }

func sourceCountry(name string, population int64, codes ...string) models.SourceCountry {
	src := models.SourceCountry{
		Name:       name,
		Capital:    "Capital City",
		Region:     "Africa",
		Population: population,
		Flag:       "https://flags.example/" + name + ".png",
	}
	for _, code := range codes {
		src.Currencies = append(src.Currencies, models.SourceCurrency{Code: code})
	}
	return src
}

func TestMerge_PinnedMultiplier(t *testing.T) {
	now := time.Now().UTC()
	src := sourceCountry("Wakanda", 1_000_000, "WAK")
	rates := map[string]float64{"WAK": 2}

	rec := countries.Merge(src, rates, fixedRand{1500}, now)

	assert.Equal(t, "Wakanda", rec.Name)
	if assert.NotNil(t, rec.CurrencyCode) {
		assert.Equal(t, "WAK", *rec.CurrencyCode)
	}
	if assert.NotNil(t, rec.ExchangeRate) {
		assert.Equal(t, 2.0, *rec.ExchangeRate)
	}
	// population x 1500 / 2
	assert.Equal(t, 750_000_000.0, rec.EstimatedGDP)
	assert.Equal(t, now, rec.LastRefreshedAt)
}

func TestMerge_GDPWithinBounds(t *testing.T) {
	src := sourceCountry("Wakanda", 1_000_000, "WAK")
	rates := map[string]float64{"WAK": 2}

	// Real random source: the estimate must land within the documented
	// multiplier bounds.
	rec := countries.Merge(src, rates, countries.NewRand(), time.Now())

	assert.GreaterOrEqual(t, rec.EstimatedGDP, 500_000_000.0)
	assert.Less(t, rec.EstimatedGDP, 1_000_000_000.0)
}

func TestMerge_MissingRate(t *testing.T) {
	src := sourceCountry("Narnia", 5000, "NAR")

	rec := countries.Merge(src, map[string]float64{"USD": 1}, fixedRand{1500}, time.Now())

	if assert.NotNil(t, rec.CurrencyCode) {
		assert.Equal(t, "NAR", *rec.CurrencyCode)
	}
	assert.Nil(t, rec.ExchangeRate)
	assert.Zero(t, rec.EstimatedGDP)
}

func TestMerge_ZeroRateTreatedAsUnresolved(t *testing.T) {
	src := sourceCountry("Atlantis", 5000, "ATL")

	rec := countries.Merge(src, map[string]float64{"ATL": 0}, fixedRand{1500}, time.Now())

	assert.Nil(t, rec.ExchangeRate)
	assert.Zero(t, rec.EstimatedGDP)
}

func TestMerge_NoCurrencies(t *testing.T) {
	src := sourceCountry("Mars", 0)

	rec := countries.Merge(src, map[string]float64{"USD": 1}, fixedRand{1500}, time.Now())

	assert.Nil(t, rec.CurrencyCode)
	assert.Nil(t, rec.ExchangeRate)
	assert.Zero(t, rec.EstimatedGDP)
}

func TestMerge_FirstCurrencyWins(t *testing.T) {
	src := sourceCountry("Twoland", 100, "AAA", "BBB")
	rates := map[string]float64{"AAA": 4, "BBB": 8}

	rec := countries.Merge(src, rates, fixedRand{1000}, time.Now())

	if assert.NotNil(t, rec.CurrencyCode) {
		assert.Equal(t, "AAA", *rec.CurrencyCode)
	}
	assert.Equal(t, 100*1000.0/4, rec.EstimatedGDP)
}

func TestMerge_EmptyOptionalFields(t *testing.T) {
	src := models.SourceCountry{Name: "Bare", Population: 10}

	rec := countries.Merge(src, nil, fixedRand{1000}, time.Now())

	assert.Nil(t, rec.Capital)
	assert.Nil(t, rec.Region)
	assert.Nil(t, rec.FlagURL)
}

func TestNewRand_Bounds(t *testing.T) {
	rng := countries.NewRand()
	for i := 0; i < 1000; i++ {
		m := rng.Multiplier()
		assert.GreaterOrEqual(t, m, countries.GDPMultiplierMin)
		assert.Less(t, m, countries.GDPMultiplierMax)
	}
}

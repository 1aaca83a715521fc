package countries

import (
	"math/rand/v2"
	"time"

	"country-currency-api/feature/countries/models"
)

// Bounds of the uniform GDP multiplier. The estimate is documented as
// intentionally approximate; it is not a real GDP figure.
const (
	GDPMultiplierMin = 1000.0
	GDPMultiplierMax = 2000.0
)

// Rand supplies the GDP multiplier. Injectable so tests can pin the value.
type Rand interface {
	// Multiplier returns a value in [GDPMultiplierMin, GDPMultiplierMax).
	Multiplier() float64
}

type uniformRand struct{}

func (uniformRand) Multiplier() float64 {
	return GDPMultiplierMin + rand.Float64()*(GDPMultiplierMax-GDPMultiplierMin)
}

// NewRand returns the production random source.
func NewRand() Rand {
	return uniformRand{}
}

// Merge joins one directory entry with the rate table and derives the
// estimated GDP.
//
// The currency code is the first entry of the country's currency list (nil
// when the list is empty). The exchange rate is looked up by that code.
// Only when both resolve is estimated_gdp derived as
// population x multiplier / rate; otherwise it stays 0 while code and rate
// themselves remain null.
func Merge(src models.SourceCountry, rates map[string]float64, rng Rand, now time.Time) models.Country {
	rec := models.Country{
		Name:            src.Name,
		Capital:         nilIfEmpty(src.Capital),
		Region:          nilIfEmpty(src.Region),
		Population:      src.Population,
		FlagURL:         nilIfEmpty(src.Flag),
		LastRefreshedAt: now,
	}

	if len(src.Currencies) == 0 {
		return rec
	}

	code := src.Currencies[0].Code
	rec.CurrencyCode = &code

	rate, ok := rates[code]
	if !ok || rate == 0 {
		return rec
	}
	rec.ExchangeRate = &rate
	rec.EstimatedGDP = float64(src.Population) * rng.Multiplier() / rate

	return rec
}

func nilIfEmpty(s string) *string {
	if s == "" {
		return nil
	}
	return &s
}

package countries_test

import (
	"context"
	"errors"
	"testing"

	"country-currency-api/core/apperr"
	"country-currency-api/core/artifact"
	"country-currency-api/core/database"
	"country-currency-api/feature/countries"
	"country-currency-api/feature/countries/models"

	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// fakeSources satisfies countries.SourceClient with canned data.
type fakeSources struct {
	countries    []models.SourceCountry
	rates        map[string]float64
	countriesErr error
	ratesErr     error
}

func (f *fakeSources) FetchCountries(ctx context.Context) ([]models.SourceCountry, error) {
	if f.countriesErr != nil {
		return nil, f.countriesErr
	}
	return f.countries, nil
}

func (f *fakeSources) FetchRates(ctx context.Context) (map[string]float64, error) {
	if f.ratesErr != nil {
		return nil, f.ratesErr
	}
	return f.rates, nil
}

// stubRenderer counts render calls and optionally fails.
type stubRenderer struct {
	err   error
	calls int
}

func (r *stubRenderer) Render(ctx context.Context) error {
	r.calls++
	return r.err
}

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	assert.NoError(t, err)
	assert.NoError(t, db.AutoMigrate(&models.Country{}, &models.AppStatus{}))
	return db
}

func newTestService(t *testing.T, src countries.SourceClient, r countries.Renderer) (*countries.Service, *gorm.DB, artifact.Store) {
	t.Helper()
	db := newTestDB(t)
	store := artifact.NewLocalStore(t.TempDir())
	svc := countries.NewService(db, src, r, store, fixedRand{1500}, zap.NewNop())
	return svc, db, store
}

func TestRefresh_UpsertsAndStamps(t *testing.T) {
	src := &fakeSources{
		countries: []models.SourceCountry{
			sourceCountry("France", 67_000_000, "EUR"),
			sourceCountry("Nigeria", 206_000_000, "NGN"),
			sourceCountry("Moonbase", 12), // no currency
		},
		rates: map[string]float64{"EUR": 0.9, "NGN": 1600},
	}
	renderer := &stubRenderer{}
	svc, db, _ := newTestService(t, src, renderer)

	outcome, err := svc.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 3, outcome.Processed)
	assert.Empty(t, outcome.Failures)
	assert.Equal(t, 1, renderer.calls)

	var count int64
	db.Model(&models.Country{}).Count(&count)
	assert.Equal(t, int64(3), count)

	status, err := svc.Status(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, int64(3), status.TotalCountries)
	assert.NotNil(t, status.LastRefreshedAt)

	// Moonbase has no currency, so no derived GDP.
	moon, err := svc.GetByName(context.Background(), "moonbase")
	assert.NoError(t, err)
	assert.Nil(t, moon.CurrencyCode)
	assert.Zero(t, moon.EstimatedGDP)
}

func TestRefresh_IdempotentByName(t *testing.T) {
	src := &fakeSources{
		countries: []models.SourceCountry{sourceCountry("France", 67_000_000, "EUR")},
		rates:     map[string]float64{"EUR": 0.9},
	}
	svc, db, _ := newTestService(t, src, &stubRenderer{})

	_, err := svc.Refresh(context.Background())
	assert.NoError(t, err)

	// Second pass with updated upstream data must update, not duplicate.
	src.countries[0].Population = 68_000_000
	src.rates = map[string]float64{"EUR": 0.95}

	outcome, err := svc.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, outcome.Processed)

	var count int64
	db.Model(&models.Country{}).Count(&count)
	assert.Equal(t, int64(1), count)

	rec, err := svc.GetByName(context.Background(), "FRANCE")
	assert.NoError(t, err)
	assert.Equal(t, int64(68_000_000), rec.Population)
	if assert.NotNil(t, rec.ExchangeRate) {
		assert.Equal(t, 0.95, *rec.ExchangeRate)
	}
}

func TestRefresh_RateDisappearsClearsDerivation(t *testing.T) {
	src := &fakeSources{
		countries: []models.SourceCountry{sourceCountry("France", 67_000_000, "EUR")},
		rates:     map[string]float64{"EUR": 0.9},
	}
	svc, _, _ := newTestService(t, src, &stubRenderer{})

	_, err := svc.Refresh(context.Background())
	assert.NoError(t, err)

	src.rates = map[string]float64{}
	_, err = svc.Refresh(context.Background())
	assert.NoError(t, err)

	rec, err := svc.GetByName(context.Background(), "France")
	assert.NoError(t, err)
	assert.Nil(t, rec.ExchangeRate)
	assert.Zero(t, rec.EstimatedGDP)
}

func TestRefresh_FailFastOnSources(t *testing.T) {
	srcErr := &apperr.SourceUnavailable{Endpoint: "https://restcountries.com/v2/all", Cause: errors.New("timeout")}

	for name, src := range map[string]*fakeSources{
		"countries fetch fails": {countriesErr: srcErr},
		"rates fetch fails": {
			countries: []models.SourceCountry{sourceCountry("France", 1, "EUR")},
			ratesErr:  srcErr,
		},
	} {
		t.Run(name, func(t *testing.T) {
			renderer := &stubRenderer{}
			svc, db, _ := newTestService(t, src, renderer)

			_, err := svc.Refresh(context.Background())
			var sue *apperr.SourceUnavailable
			assert.True(t, errors.As(err, &sue))

			// Fail-fast: nothing written, nothing rendered.
			var count int64
			db.Model(&models.Country{}).Count(&count)
			assert.Zero(t, count)
			assert.Zero(t, renderer.calls)

			status, err := svc.Status(context.Background())
			assert.NoError(t, err)
			assert.Nil(t, status.LastRefreshedAt)
		})
	}
}

func TestRefresh_RendererFailureIsNonFatal(t *testing.T) {
	src := &fakeSources{
		countries: []models.SourceCountry{sourceCountry("France", 67_000_000, "EUR")},
		rates:     map[string]float64{"EUR": 0.9},
	}
	svc, _, _ := newTestService(t, src, &stubRenderer{err: errors.New("rasterizer exploded")})

	outcome, err := svc.Refresh(context.Background())
	assert.NoError(t, err)
	assert.Equal(t, 1, outcome.Processed)
}

func TestGetByName_CaseInsensitive(t *testing.T) {
	svc, db, _ := newTestService(t, &fakeSources{}, &stubRenderer{})
	db.Create(&models.Country{Name: "France", Population: 67_000_000})

	for _, name := range []string{"France", "france", "FRANCE", "fRaNcE"} {
		rec, err := svc.GetByName(context.Background(), name)
		assert.NoError(t, err, name)
		assert.Equal(t, "France", rec.Name)
	}

	_, err := svc.GetByName(context.Background(), "Germany")
	var nf *apperr.NotFound
	assert.True(t, errors.As(err, &nf))
}

func TestDeleteByName(t *testing.T) {
	svc, db, _ := newTestService(t, &fakeSources{}, &stubRenderer{})
	db.Create(&models.Country{Name: "France", Population: 67_000_000})
	db.Create(&models.Country{Name: "Nigeria", Population: 206_000_000})

	var nf *apperr.NotFound
	err := svc.DeleteByName(context.Background(), "Germany")
	assert.True(t, errors.As(err, &nf))

	assert.NoError(t, svc.DeleteByName(context.Background(), "FRANCE"))

	var count int64
	db.Model(&models.Country{}).Count(&count)
	assert.Equal(t, int64(1), count)

	_, err = svc.GetByName(context.Background(), "France")
	assert.True(t, errors.As(err, &nf))
}

func seedForList(t *testing.T, db *gorm.DB) {
	t.Helper()
	eur := "EUR"
	ngn := "NGN"
	rows := []models.Country{
		{Name: "Austria", Region: strPtr("Europe"), CurrencyCode: &eur, EstimatedGDP: 300, Population: 9},
		{Name: "Zimbabwe", Region: strPtr("Africa"), EstimatedGDP: 100, Population: 15},
		{Name: "Nigeria", Region: strPtr("Africa"), CurrencyCode: &ngn, EstimatedGDP: 900, Population: 206},
		{Name: "Mars", Population: 1},
	}
	for i := range rows {
		assert.NoError(t, db.Create(&rows[i]).Error)
	}
}

func strPtr(s string) *string { return &s }

func TestList_SortAndFilter(t *testing.T) {
	svc, db, _ := newTestService(t, &fakeSources{}, &stubRenderer{})
	seedForList(t, db)
	ctx := context.Background()

	t.Run("Default sort is name ascending", func(t *testing.T) {
		got, err := svc.List(ctx, models.ListQuery{})
		assert.NoError(t, err)
		names := make([]string, len(got))
		for i, c := range got {
			names[i] = c.Name
		}
		assert.Equal(t, []string{"Austria", "Mars", "Nigeria", "Zimbabwe"}, names)
	})

	t.Run("GDP descending is non-increasing", func(t *testing.T) {
		got, err := svc.List(ctx, models.ListQuery{Sort: models.SortGDPDesc})
		assert.NoError(t, err)
		for i := 1; i < len(got); i++ {
			assert.GreaterOrEqual(t, got[i-1].EstimatedGDP, got[i].EstimatedGDP)
		}
		assert.Equal(t, "Nigeria", got[0].Name)
	})

	t.Run("Unknown sort falls back to default", func(t *testing.T) {
		got, err := svc.List(ctx, models.ListQuery{Sort: "sideways"})
		assert.NoError(t, err)
		assert.Equal(t, "Austria", got[0].Name)
	})

	t.Run("Region filter is case-insensitive", func(t *testing.T) {
		got, err := svc.List(ctx, models.ListQuery{Region: "aFrIcA"})
		assert.NoError(t, err)
		assert.Len(t, got, 2)
	})

	t.Run("Currency filter is case-insensitive", func(t *testing.T) {
		got, err := svc.List(ctx, models.ListQuery{Currency: "ngn"})
		assert.NoError(t, err)
		assert.Len(t, got, 1)
		assert.Equal(t, "Nigeria", got[0].Name)
	})

	t.Run("Population sort", func(t *testing.T) {
		got, err := svc.List(ctx, models.ListQuery{Sort: models.SortPopulationDesc})
		assert.NoError(t, err)
		assert.Equal(t, "Nigeria", got[0].Name)
	})
}

func TestSummaryImage(t *testing.T) {
	svc, _, store := newTestService(t, &fakeSources{}, &stubRenderer{})
	ctx := context.Background()

	_, err := svc.SummaryImage(ctx)
	var nf *apperr.NotFound
	assert.True(t, errors.As(err, &nf))

	assert.NoError(t, store.Put(ctx, countries.SummaryArtifactName, "image/png", []byte("png")))

	data, err := svc.SummaryImage(ctx)
	assert.NoError(t, err)
	assert.Equal(t, []byte("png"), data)
}

package countries

import (
	"context"
	"errors"
	"time"

	"country-currency-api/core/apperr"
	"country-currency-api/core/artifact"
	"country-currency-api/feature/countries/models"

	"go.uber.org/zap"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// Renderer regenerates the summary artifact. Satisfied by SummaryRenderer;
// injectable so service tests can stub it out.
type Renderer interface {
	Render(ctx context.Context) error
}

// Service implements the refresh pipeline and the query operations over
// stored country records.
type Service struct {
	db       *gorm.DB
	sources  SourceClient
	renderer Renderer
	store    artifact.Store
	rng      Rand
	logger   *zap.Logger
}

// NewService creates a countries service.
func NewService(db *gorm.DB, sources SourceClient, renderer Renderer, store artifact.Store, rng Rand, logger *zap.Logger) *Service {
	return &Service{
		db:       db,
		sources:  sources,
		renderer: renderer,
		store:    store,
		rng:      rng,
		logger:   logger,
	}
}

// Refresh runs one refresh pass: fetch both sources, merge and upsert every
// country, stamp the app status, and rebuild the summary image best-effort.
//
// Source acquisition is fail-fast: if either fetch fails nothing is written.
// Per-record store failures are collected into the outcome and do not abort
// the rest of the batch. Concurrent refreshes are not serialized; two passes
// may interleave upserts for the same name. That race is accepted behavior.
func (s *Service) Refresh(ctx context.Context) (*models.RefreshOutcome, error) {
	fetched, err := s.sources.FetchCountries(ctx)
	if err != nil {
		return nil, err
	}
	rates, err := s.sources.FetchRates(ctx)
	if err != nil {
		return nil, err
	}

	s.logger.Info("Fetched source data",
		zap.Int("countries", len(fetched)),
		zap.Int("rates", len(rates)),
	)

	now := time.Now().UTC()
	outcome := &models.RefreshOutcome{}

	for _, src := range fetched {
		rec := Merge(src, rates, s.rng, now)
		if err := s.upsert(ctx, rec); err != nil {
			s.logger.Warn("Failed to process country",
				zap.String("country", src.Name),
				zap.Error(err),
			)
			outcome.Failures = append(outcome.Failures, models.RecordFailure{
				Name: src.Name,
				Err:  err.Error(),
			})
			continue
		}
		outcome.Processed++
	}

	if err := s.touchStatus(ctx, now); err != nil {
		return nil, &apperr.StoreError{Op: "update app status", Cause: err}
	}

	if err := s.renderer.Render(ctx); err != nil {
		// Summary rendering is best-effort; the artifact just stays stale.
		s.logger.Warn("Summary rendering failed", zap.Error(err))
	}

	s.logger.Info("Refresh complete",
		zap.Int("processed", outcome.Processed),
		zap.Int("failed", len(outcome.Failures)),
	)
	return outcome, nil
}

// upsert writes one record, matching existing rows by case-insensitive name.
// Updates keep the stored name spelling and overwrite everything else.
func (s *Service) upsert(ctx context.Context, rec models.Country) error {
	var existing models.Country
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", rec.Name).
		First(&existing).Error

	if errors.Is(err, gorm.ErrRecordNotFound) {
		return s.db.WithContext(ctx).Create(&rec).Error
	}
	if err != nil {
		return err
	}

	// Map-based update so nil pointers clear columns instead of being skipped.
	return s.db.WithContext(ctx).
		Model(&models.Country{}).
		Where("id = ?", existing.ID).
		Updates(map[string]any{
			"capital":           rec.Capital,
			"region":            rec.Region,
			"population":        rec.Population,
			"currency_code":     rec.CurrencyCode,
			"exchange_rate":     rec.ExchangeRate,
			"estimated_gdp":     rec.EstimatedGDP,
			"flag_url":          rec.FlagURL,
			"last_refreshed_at": rec.LastRefreshedAt,
		}).Error
}

// touchStatus upserts the singleton status row with the pass timestamp.
func (s *Service) touchStatus(ctx context.Context, now time.Time) error {
	status := models.AppStatus{ID: models.AppStatusID, LastRefreshedAt: &now}
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "id"}},
			DoUpdates: clause.AssignmentColumns([]string{"last_refreshed_at"}),
		}).
		Create(&status).Error
}

// List returns all records matching the optional filters, ordered by the
// requested sort key (name ascending by default).
func (s *Service) List(ctx context.Context, q models.ListQuery) ([]models.Country, error) {
	tx := s.db.WithContext(ctx).Model(&models.Country{})
	if q.Region != "" {
		tx = tx.Where("LOWER(region) = LOWER(?)", q.Region)
	}
	if q.Currency != "" {
		tx = tx.Where("LOWER(currency_code) = LOWER(?)", q.Currency)
	}

	countries := []models.Country{}
	if err := tx.Order(q.OrderClause()).Find(&countries).Error; err != nil {
		return nil, &apperr.StoreError{Op: "list countries", Cause: err}
	}
	return countries, nil
}

// GetByName looks up one record by case-insensitive name.
func (s *Service) GetByName(ctx context.Context, name string) (*models.Country, error) {
	var rec models.Country
	err := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		First(&rec).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.NotFound{Resource: "Country"}
	}
	if err != nil {
		return nil, &apperr.StoreError{Op: "get country", Cause: err}
	}
	return &rec, nil
}

// DeleteByName removes one record by case-insensitive name.
func (s *Service) DeleteByName(ctx context.Context, name string) error {
	res := s.db.WithContext(ctx).
		Where("LOWER(name) = LOWER(?)", name).
		Delete(&models.Country{})
	if res.Error != nil {
		return &apperr.StoreError{Op: "delete country", Cause: res.Error}
	}
	if res.RowsAffected == 0 {
		return &apperr.NotFound{Resource: "Country"}
	}
	return nil
}

// Status returns the total record count and the dataset refresh timestamp.
func (s *Service) Status(ctx context.Context) (*models.Status, error) {
	var total int64
	if err := s.db.WithContext(ctx).Model(&models.Country{}).Count(&total).Error; err != nil {
		return nil, &apperr.StoreError{Op: "count countries", Cause: err}
	}

	var status models.AppStatus
	err := s.db.WithContext(ctx).First(&status, models.AppStatusID).Error
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, &apperr.StoreError{Op: "load app status", Cause: err}
	}

	return &models.Status{
		TotalCountries:  total,
		LastRefreshedAt: status.LastRefreshedAt,
	}, nil
}

// SummaryImage returns the cached summary artifact bytes.
func (s *Service) SummaryImage(ctx context.Context) ([]byte, error) {
	data, err := s.store.Get(ctx, SummaryArtifactName)
	if errors.Is(err, artifact.ErrNotExist) {
		return nil, &apperr.NotFound{Resource: "Summary image"}
	}
	if err != nil {
		return nil, &apperr.StoreError{Op: "load summary image", Cause: err}
	}
	return data, nil
}

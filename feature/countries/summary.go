package countries

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"image"
	"image/png"
	"strings"
	"time"

	"country-currency-api/core/artifact"
	"country-currency-api/feature/countries/models"

	"github.com/xo/resvg"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

// SummaryArtifactName is the artifact-store key of the rendered summary.
const SummaryArtifactName = "summary.png"

const (
	summaryWidth  = 800
	summaryHeight = 600
)

// Rasterizer converts an SVG document into a raster image.
type Rasterizer interface {
	// Render renders SVG data to an image with the specified width.
	Render(data []byte, width int) (image.Image, error)
}

type resvgRasterizer struct{}

func (resvgRasterizer) Render(data []byte, width int) (image.Image, error) {
	opts := []resvg.Option{resvg.WithScaleMode(resvg.ScaleBestFit)}
	if width > 0 {
		opts = append(opts, resvg.WithWidth(width))
	}
	return resvg.Render(data, opts...)
}

// NewRasterizer returns the production SVG rasterizer.
func NewRasterizer() Rasterizer {
	return resvgRasterizer{}
}

// SummaryRenderer produces the summary image: top-5 countries by estimated
// GDP plus aggregate stats, laid out as SVG, rasterized to a fixed 800x600
// PNG and written to the artifact store.
type SummaryRenderer struct {
	db     *gorm.DB
	store  artifact.Store
	raster Rasterizer
	logger *zap.Logger
}

// NewSummaryRenderer creates a summary renderer.
func NewSummaryRenderer(db *gorm.DB, store artifact.Store, raster Rasterizer, logger *zap.Logger) *SummaryRenderer {
	return &SummaryRenderer{db: db, store: store, raster: raster, logger: logger}
}

// Render rebuilds the summary artifact from the current table contents,
// overwriting the previous one.
func (r *SummaryRenderer) Render(ctx context.Context) error {
	// Zero-estimate rows may fill the remaining slots; they render as N/A.
	var top []models.Country
	if err := r.db.WithContext(ctx).
		Order("estimated_gdp DESC").
		Limit(5).
		Find(&top).Error; err != nil {
		return fmt.Errorf("failed to load top countries: %w", err)
	}

	var total int64
	if err := r.db.WithContext(ctx).Model(&models.Country{}).Count(&total).Error; err != nil {
		return fmt.Errorf("failed to count countries: %w", err)
	}

	var status models.AppStatus
	if err := r.db.WithContext(ctx).First(&status, models.AppStatusID).Error; err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return fmt.Errorf("failed to load app status: %w", err)
	}

	svg := buildSummarySVG(total, status.LastRefreshedAt, top)

	img, err := r.raster.Render(svg, summaryWidth)
	if err != nil {
		return fmt.Errorf("failed to rasterize summary: %w", err)
	}

	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		return fmt.Errorf("failed to encode summary PNG: %w", err)
	}

	if err := r.store.Put(ctx, SummaryArtifactName, "image/png", buf.Bytes()); err != nil {
		return fmt.Errorf("failed to store summary: %w", err)
	}

	r.logger.Info("Summary image generated",
		zap.Int64("total_countries", total),
		zap.Int("top_entries", len(top)),
	)
	return nil
}

var svgEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

// buildSummarySVG lays out the fixed 800x600 summary document.
func buildSummarySVG(total int64, lastRefresh *time.Time, top []models.Country) []byte {
	refreshed := "Never"
	if lastRefresh != nil {
		refreshed = lastRefresh.UTC().Format("2006-01-02 15:04:05 UTC")
	}

	var b strings.Builder
	fmt.Fprintf(&b, `<svg xmlns="http://www.w3.org/2000/svg" width="%d" height="%d" viewBox="0 0 %d %d">`,
		summaryWidth, summaryHeight, summaryWidth, summaryHeight)
	b.WriteString(`<defs><linearGradient id="bg" x1="0" y1="0" x2="0" y2="1">` +
		`<stop offset="0%" stop-color="#667eea"/>` +
		`<stop offset="100%" stop-color="#764ba2"/>` +
		`</linearGradient></defs>`)
	fmt.Fprintf(&b, `<rect width="%d" height="%d" fill="url(#bg)"/>`, summaryWidth, summaryHeight)

	centered := func(y, size int, weight, text string) {
		fmt.Fprintf(&b, `<text x="%d" y="%d" fill="#ffffff" font-family="Arial, sans-serif" font-size="%d"%s text-anchor="middle">%s</text>`,
			summaryWidth/2, y, size, weight, text)
	}
	centered(60, 40, ` font-weight="bold"`, "Country Data Summary")
	centered(120, 24, "", fmt.Sprintf("Total Countries: %d", total))
	centered(160, 18, "", "Last Updated: "+refreshed)
	centered(220, 28, ` font-weight="bold"`, "Top 5 Countries by GDP")

	y := 270
	for i, c := range top {
		gdp := "N/A"
		if c.EstimatedGDP > 0 {
			gdp = fmt.Sprintf("$%.2fB", c.EstimatedGDP/1e9)
		}
		fmt.Fprintf(&b, `<text x="100" y="%d" fill="#ffffff" font-family="Arial, sans-serif" font-size="20">%d. %s: %s</text>`,
			y, i+1, svgEscaper.Replace(c.Name), gdp)
		y += 40
	}

	b.WriteString(`</svg>`)
	return []byte(b.String())
}

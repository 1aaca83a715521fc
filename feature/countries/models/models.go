package models

import "time"

// Country is a stored country record. Name is the natural key, compared
// case-insensitively; the schema itself does not enforce uniqueness.
type Country struct {
	ID         uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string  `gorm:"column:name;size:191;not null;index" json:"name"`
	Capital    *string `gorm:"column:capital;size:191" json:"capital"`
	Region     *string `gorm:"column:region;size:64" json:"region"`
	Population int64   `gorm:"column:population;not null" json:"population"`
	// CurrencyCode is the first currency reported by the directory source,
	// null when the country lists none.
	CurrencyCode *string  `gorm:"column:currency_code;size:3" json:"currency_code"`
	ExchangeRate *float64 `gorm:"column:exchange_rate" json:"exchange_rate"`
	// EstimatedGDP is stored as 0 when the currency or its exchange rate
	// could not be resolved at refresh time.
	EstimatedGDP    float64   `gorm:"column:estimated_gdp" json:"estimated_gdp"`
	FlagURL         *string   `gorm:"column:flag_url;size:512" json:"flag_url"`
	LastRefreshedAt time.Time `gorm:"column:last_refreshed_at" json:"last_refreshed_at"`
}

// TableName overrides the table name.
func (Country) TableName() string {
	return "countries"
}

// AppStatus is the singleton row holding dataset-wide metadata. Exactly one
// row (id=1) exists; it is upserted on every successful refresh pass.
type AppStatus struct {
	ID              int        `gorm:"column:id;primaryKey" json:"-"`
	LastRefreshedAt *time.Time `gorm:"column:last_refreshed_at" json:"last_refreshed_at"`
}

// TableName overrides the table name.
func (AppStatus) TableName() string {
	return "app_status"
}

// AppStatusID is the fixed primary key of the singleton row.
const AppStatusID = 1

// Status is the aggregate reported by GET /status.
type Status struct {
	TotalCountries  int64      `json:"total_countries"`
	LastRefreshedAt *time.Time `json:"last_refreshed_at"`
}

// Package countries implements the country data pipeline and its HTTP surface.
//
// A refresh pass pulls the country directory and the USD exchange-rate table
// from two external providers, joins them by currency code, derives an
// estimated GDP per country and upserts each record by case-insensitive
// name. Source acquisition is fail-fast; per-record failures are collected
// without aborting the batch. After the upserts the singleton app_status row
// is stamped and the summary image is re-rendered best-effort.
//
// The query side offers list (region/currency filters, sort keys), lookup
// and delete by case-insensitive name, the dataset status, and the cached
// summary image.
package countries

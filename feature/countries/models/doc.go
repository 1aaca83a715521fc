// Package models holds the persisted rows (Country, AppStatus), the
// external source payload shapes, and the list-query types for the
// countries feature.
package models

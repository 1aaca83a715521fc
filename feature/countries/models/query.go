package models

// Sort keys accepted by the list endpoint.
const (
	SortNameAsc        = "name_asc"
	SortNameDesc       = "name_desc"
	SortGDPAsc         = "gdp_asc"
	SortGDPDesc        = "gdp_desc"
	SortPopulationAsc  = "population_asc"
	SortPopulationDesc = "population_desc"
)

// ListQuery carries the optional list filters. Empty fields mean "no filter".
type ListQuery struct {
	Region   string
	Currency string
	Sort     string
}

// OrderClause translates the sort key into an ORDER BY expression.
// Unknown values fall back to the default name_asc rather than erroring.
func (q ListQuery) OrderClause() string {
	switch q.Sort {
	case SortGDPDesc:
		return "estimated_gdp DESC"
	case SortGDPAsc:
		return "estimated_gdp ASC"
	case SortNameDesc:
		return "name DESC"
	case SortPopulationAsc:
		return "population ASC"
	case SortPopulationDesc:
		return "population DESC"
	default:
		return "name ASC"
	}
}

// RecordFailure identifies one country that could not be merged or stored
// during a refresh pass.
type RecordFailure struct {
	Name string `json:"name"`
	Err  string `json:"error"`
}

// RefreshOutcome is the aggregated result of one refresh pass. Failures
// never abort the batch; they are collected here instead.
type RefreshOutcome struct {
	Processed int             `json:"total_processed"`
	Failures  []RecordFailure `json:"failures,omitempty"`
}

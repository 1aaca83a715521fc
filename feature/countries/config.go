package countries

// Config holds configuration for the external data sources.
type Config struct {
	// CountriesURL is the country directory endpoint.
	CountriesURL string `mapstructure:"countries_url" default:"https://restcountries.com/v2/all?fields=name,capital,region,population,flag,currencies"`
	// RatesURL is the exchange-rate endpoint (rates against USD).
	RatesURL string `mapstructure:"rates_url" default:"https://open.er-api.com/v6/latest/USD"`
	// CountriesTimeoutSeconds bounds the directory fetch.
	CountriesTimeoutSeconds int `mapstructure:"countries_timeout_seconds" default:"15"`
	// RatesTimeoutSeconds bounds the exchange-rate fetch.
	RatesTimeoutSeconds int `mapstructure:"rates_timeout_seconds" default:"30"`
}

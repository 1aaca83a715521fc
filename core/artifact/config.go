package artifact

// Config holds configuration for the summary-artifact store.
type Config struct {
	// Driver selects the backend (local, s3).
	Driver string `mapstructure:"driver" default:"local"`
	// Path is the cache directory used by the local driver.
	Path string `mapstructure:"path" default:"cache"`
	// Endpoint is the URL of the S3-compatible storage service.
	Endpoint string `mapstructure:"endpoint" default:"localhost:9000"`
	// AccessKey is the access key ID for authentication.
	AccessKey string `mapstructure:"access_key" default:"minioadmin"`
	// SecretKey is the secret access key for authentication.
	SecretKey string `mapstructure:"secret_key" default:"minioadmin"`
	// UseSSL indicates whether to use SSL/TLS for connections.
	UseSSL bool `mapstructure:"use_ssl" default:"false"`
	// Bucket is the name of the bucket to store artifacts in.
	Bucket string `mapstructure:"bucket" default:"artifacts"`
	// Region is the location of the bucket (e.g., us-east-1).
	Region string `mapstructure:"region" default:""`
	// TimeoutSeconds is the connection timeout in seconds.
	TimeoutSeconds int `mapstructure:"timeout_seconds" default:"30"`
}

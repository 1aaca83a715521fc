// Package artifact stores derived artifacts, currently the rendered
// summary image.
//
// The Store interface hides the backend: the default "local" driver writes
// files under a cache directory (overwritten in place on every refresh),
// while the "s3" driver keeps artifacts in an S3-compatible bucket through
// the MinIO client. Both backends treat the artifact as having no identity
// beyond "most recent"; Put always replaces.
//
// The mocks subpackage provides a testify mock of Store for tests.
package artifact

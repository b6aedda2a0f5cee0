package cli

import (
	"context"
	"os"
	"strconv"
	"time"

	"github.com/airseal/airseal/pkg/artifact"
	"github.com/airseal/airseal/pkg/build"
)

// config holds the environment-driven settings for the build command.
// A .env file, when present, is loaded by the main package before the CLI
// runs, so plain os.Getenv sees both sources.
type config struct {
	buildTimeout time.Duration
	outputDir    string

	s3Endpoint  string
	s3AccessKey string
	s3SecretKey string
	s3Bucket    string
	s3Secure    bool
}

// loadConfig reads AIRSEAL_* environment variables, applying defaults.
func loadConfig() config {
	return config{
		buildTimeout: envDuration("AIRSEAL_BUILD_TIMEOUT", build.DefaultTimeout),
		outputDir:    envString("AIRSEAL_OUTPUT_DIR", ""),
		s3Endpoint:   envString("AIRSEAL_S3_ENDPOINT", ""),
		s3AccessKey:  envString("AIRSEAL_S3_ACCESS_KEY", ""),
		s3SecretKey:  envString("AIRSEAL_S3_SECRET_KEY", ""),
		s3Bucket:     envString("AIRSEAL_S3_BUCKET", "airseal-artifacts"),
		s3Secure:     envBool("AIRSEAL_S3_SECURE", false),
	}
}

// store selects the artifact store: S3 when an endpoint is configured,
// otherwise a local directory.
func (c config) store(ctx context.Context) (artifact.Store, error) {
	if c.s3Endpoint != "" {
		return artifact.NewS3Store(ctx, c.s3Endpoint, c.s3AccessKey, c.s3SecretKey, c.s3Bucket, c.s3Secure)
	}
	dir := c.outputDir
	if dir == "" {
		dir = "."
	}
	return artifact.NewLocalStore(dir)
}

func envString(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func envDuration(key string, fallback time.Duration) time.Duration {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	d, err := time.ParseDuration(v)
	if err != nil {
		return fallback
	}
	return d
}

func envBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

// Package region picks the AWS region to write into the generated provider
// block.
package region

import (
	"context"
	"os"

	awsconfig "github.com/aws/aws-sdk-go-v2/config"
)

// Fallback is used when no provider can supply a region.
const Fallback = "us-east-1"

// Provider yields a region or reports that it cannot. Providers are
// best-effort collaborators; failure only triggers the next one in line.
type Provider interface {
	Region(ctx context.Context) (string, bool)
}

// Resolve walks the providers in order and returns the first region found,
// else Fallback.
func Resolve(ctx context.Context, providers ...Provider) string {
	for _, p := range providers {
		if r, ok := p.Region(ctx); ok {
			return r
		}
	}
	return Fallback
}

// Env reads AWS_DEFAULT_REGION, then AWS_REGION.
type Env struct{}

func (Env) Region(context.Context) (string, bool) {
	for _, name := range []string{"AWS_DEFAULT_REGION", "AWS_REGION"} {
		if v := os.Getenv(name); v != "" {
			return v, true
		}
	}
	return "", false
}

// Static wraps a fixed value, typically from tflocal.toml. An empty value
// means unset.
type Static string

func (s Static) Region(context.Context) (string, bool) {
	return string(s), s != ""
}

// SharedConfig consults the AWS SDK's default credential/config chain
// (shared config files, SSO cache, and so on). Errors are swallowed:
// a machine without AWS configuration is the normal case here.
type SharedConfig struct{}

func (SharedConfig) Region(ctx context.Context) (string, bool) {
	cfg, err := awsconfig.LoadDefaultConfig(ctx)
	if err != nil || cfg.Region == "" {
		return "", false
	}
	return cfg.Region, true
}

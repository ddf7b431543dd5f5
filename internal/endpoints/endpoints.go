// Package endpoints resolves the LocalStack endpoint URL for every AWS
// service the provider supports, applying per-service overrides.
package endpoints

import (
	"fmt"
	"os"
	"regexp"
	"sort"
	"strings"

	"github.com/tflocal/tflocal/internal/config"
)

const (
	defaultHostname = "localhost"

	// S3 and MWAA need subdomain-capable hostnames; the wildcard DNS zone
	// below resolves to 127.0.0.1.
	defaultS3Hostname   = "s3.localhost.localstack.cloud"
	defaultMWAAHostname = "mwaa.localhost.localstack.cloud"
)

// Endpoint pairs a provider endpoint name with its resolved URL.
type Endpoint struct {
	Service string
	URL     string
}

// Resolve produces the endpoint list for one invocation, sorted by service
// name. Overrides come from <SERVICE>_ENDPOINT variables first, then the
// [endpoints] table of tflocal.toml.
func Resolve(cfg config.Settings) []Endpoint {
	resolved := make([]Endpoint, 0, len(catalog))
	for name, port := range catalog {
		service := strings.ReplaceAll(name, "-", "")
		if replacement, ok := renames[service]; ok {
			service = replacement
		}
		if service == "" {
			continue
		}
		if _, ok := exclusions[service]; ok {
			continue
		}
		resolved = append(resolved, Endpoint{
			Service: service,
			URL:     resolveURL(cfg, name, service, port),
		})
	}
	sort.Slice(resolved, func(i, j int) bool {
		return resolved[i].Service < resolved[j].Service
	})
	return resolved
}

// URLFor resolves a single service by its final endpoint name. The second
// return is false when the service is not part of the rendered set.
func URLFor(cfg config.Settings, service string) (string, bool) {
	for _, ep := range Resolve(cfg) {
		if ep.Service == service {
			return ep.URL, true
		}
	}
	return "", false
}

func resolveURL(cfg config.Settings, catalogName, service string, catalogPort int) string {
	if override := os.Getenv(overrideVar(catalogName)); override != "" {
		return ensureScheme(override)
	}
	if override := cfg.Endpoints[service]; override != "" {
		return ensureScheme(override)
	}

	host := cfg.Hostname
	if host == "" {
		host = defaultHostname
	}
	switch service {
	case "s3":
		host = defaultS3Hostname
		if cfg.S3Hostname != "" {
			host = cfg.S3Hostname
		}
	case "mwaa":
		host = defaultMWAAHostname
	}

	port := catalogPort
	if cfg.EdgePort != 0 {
		port = cfg.EdgePort
	}
	return fmt.Sprintf("http://%s:%d", host, port)
}

// overrideVar derives the override variable name from the catalog service
// name: uppercased, hyphens replaced with underscores, suffixed with
// _ENDPOINT. cognito-idp is overridden by COGNITO_IDP_ENDPOINT.
func overrideVar(service string) string {
	name := strings.ToUpper(strings.ReplaceAll(service, "-", "_"))
	return name + "_ENDPOINT"
}

// ensureScheme leaves the value untouched when it already carries a scheme.
// No further validation happens here; a malformed override is the wrapped
// CLI's problem to report.
func ensureScheme(url string) string {
	if strings.Contains(url, "://") {
		return url
	}
	return "http://" + url
}

// localEndpoint matches bare host[:port] URLs whose host is localhost, an
// IPv4 address, or a name under localhost.localstack.cloud.
var localEndpoint = regexp.MustCompile(
	`^https?://(\d{1,3}(\.\d{1,3}){3}|([a-zA-Z0-9-]+\.)*localhost(\.localstack\.cloud)?)(:\d+)?$`)

// UsePathStyle reports whether the S3 endpoint requires path-style bucket
// addressing, which is the case for local hosts that cannot serve a
// subdomain per bucket.
func UsePathStyle(s3URL string) bool {
	return localEndpoint.MatchString(s3URL)
}

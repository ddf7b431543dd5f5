package endpoints

import (
	"os"
	"sort"
	"strings"
	"testing"

	"github.com/tflocal/tflocal/internal/config"
)

// clearOverrides unsets ambient override variables the assertions rely on.
func clearOverrides(t *testing.T, services ...string) {
	t.Helper()
	for _, s := range services {
		name := overrideVar(s)
		t.Setenv(name, "")
		os.Unsetenv(name)
	}
}

func TestResolveCoversCatalog(t *testing.T) {
	eps := Resolve(config.Default())

	want := 0
	for name := range catalog {
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
		want++
	}
	if len(eps) != want {
		t.Fatalf("Resolve returned %d endpoints, want %d", len(eps), want)
	}

	seen := map[string]bool{}
	for _, ep := range eps {
		if seen[ep.Service] {
			t.Fatalf("duplicate endpoint for %s", ep.Service)
		}
		seen[ep.Service] = true
	}
	if !sort.SliceIsSorted(eps, func(i, j int) bool { return eps[i].Service < eps[j].Service }) {
		t.Fatal("endpoints are not sorted by service name")
	}
}

func TestResolveRenamesAndDrops(t *testing.T) {
	eps := Resolve(config.Default())

	byName := map[string]string{}
	for _, ep := range eps {
		byName[ep.Service] = ep.URL
	}

	if _, ok := byName["cloudwatchlogs"]; !ok {
		t.Fatal("logs should be renamed to cloudwatchlogs")
	}
	for _, gone := range []string{"logs", "dynamodbstreams", "support", "iotdata", "qldb", "mediastore"} {
		if _, ok := byName[gone]; ok {
			t.Fatalf("%s should not appear in the output", gone)
		}
	}
	for _, stripped := range []string{"cognitoidentity", "cognitoidp", "resourcegroups", "timestreamwrite"} {
		if _, ok := byName[stripped]; !ok {
			t.Fatalf("%s (hyphens stripped) missing from the output", stripped)
		}
	}
}

func TestOverrideFromEnvironment(t *testing.T) {
	t.Setenv("SQS_ENDPOINT", "myhost:1234")
	t.Setenv("KINESIS_ENDPOINT", "https://x:1")

	cfg := config.Default()
	if url, _ := URLFor(cfg, "sqs"); url != "http://myhost:1234" {
		t.Fatalf("sqs = %q, want http://myhost:1234", url)
	}
	if url, _ := URLFor(cfg, "kinesis"); url != "https://x:1" {
		t.Fatalf("kinesis = %q, scheme must be preserved", url)
	}
}

func TestOverrideForHyphenatedService(t *testing.T) {
	t.Setenv("COGNITO_IDP_ENDPOINT", "idp.internal:9000")

	if url, _ := URLFor(config.Default(), "cognitoidp"); url != "http://idp.internal:9000" {
		t.Fatalf("cognitoidp = %q, want the COGNITO_IDP_ENDPOINT override", url)
	}
}

func TestOverrideFromConfigFile(t *testing.T) {
	clearOverrides(t, "dynamodb")
	cfg := config.Default()
	cfg.Endpoints = map[string]string{"dynamodb": "ddb.internal:8000"}

	if url, _ := URLFor(cfg, "dynamodb"); url != "http://ddb.internal:8000" {
		t.Fatalf("dynamodb = %q", url)
	}
}

func TestEnvironmentBeatsConfigFile(t *testing.T) {
	t.Setenv("DYNAMODB_ENDPOINT", "http://env.wins:1")
	cfg := config.Default()
	cfg.Endpoints = map[string]string{"dynamodb": "http://file.loses:2"}

	if url, _ := URLFor(cfg, "dynamodb"); url != "http://env.wins:1" {
		t.Fatalf("dynamodb = %q", url)
	}
}

func TestDefaultHostsAndPorts(t *testing.T) {
	clearOverrides(t, "s3", "mwaa", "sqs")
	cfg := config.Default()

	if url, _ := URLFor(cfg, "s3"); url != "http://s3.localhost.localstack.cloud:4566" {
		t.Fatalf("s3 = %q", url)
	}
	if url, _ := URLFor(cfg, "mwaa"); url != "http://mwaa.localhost.localstack.cloud:4566" {
		t.Fatalf("mwaa = %q", url)
	}
	if url, _ := URLFor(cfg, "sqs"); url != "http://localhost:4566" {
		t.Fatalf("sqs = %q", url)
	}

	cfg.Hostname = "ls.internal"
	cfg.EdgePort = 4567
	if url, _ := URLFor(cfg, "sqs"); url != "http://ls.internal:4567" {
		t.Fatalf("sqs with overrides = %q", url)
	}
	if url, _ := URLFor(cfg, "s3"); url != "http://s3.localhost.localstack.cloud:4567" {
		t.Fatalf("s3 keeps its sub-hostname: %q", url)
	}
}

func TestS3HostnameOverride(t *testing.T) {
	clearOverrides(t, "s3")
	cfg := config.Default()
	cfg.S3Hostname = "custom.example.com"

	url, _ := URLFor(cfg, "s3")
	if url != "http://custom.example.com:4566" {
		t.Fatalf("s3 = %q", url)
	}
	if UsePathStyle(url) {
		t.Fatal("custom hostname must not trigger path-style addressing")
	}
}

func TestUsePathStyle(t *testing.T) {
	cases := []struct {
		url  string
		want bool
	}{
		{"http://s3.localhost.localstack.cloud:4566", true},
		{"http://localhost:4566", true},
		{"http://localhost", true},
		{"https://127.0.0.1:4566", true},
		{"http://custom.example.com:4566", false},
		{"http://s3.localhost.localstack.cloud:4566/extra", false},
		{"http://bucket.s3.amazonaws.com", false},
	}
	for _, tc := range cases {
		if got := UsePathStyle(tc.url); got != tc.want {
			t.Errorf("UsePathStyle(%q) = %v, want %v", tc.url, got, tc.want)
		}
	}
}

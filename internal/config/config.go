package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	toml "github.com/pelletier/go-toml/v2"
)

// FileName is the optional per-directory settings file.
const FileName = "tflocal.toml"

// Settings capture everything that shapes one tflocal invocation.
// Precedence is environment variable, then tflocal.toml, then default.
type Settings struct {
	Hostname      string            `toml:"hostname"`
	EdgePort      int               `toml:"edge_port"`
	TerraformCmd  string            `toml:"tf_cmd"`
	ProvidersFile string            `toml:"providers_file"`
	UseExec       bool              `toml:"use_exec"`
	Region        string            `toml:"region"`
	S3Hostname    string            `toml:"s3_hostname"`
	Endpoints     map[string]string `toml:"endpoints"`
}

var (
	// ErrInvalidEdgePort indicates edge_port is outside the TCP port range.
	ErrInvalidEdgePort = errors.New("edge_port must be between 1 and 65535")
	// ErrMissingCommand indicates tf_cmd resolved to an empty string.
	ErrMissingCommand = errors.New("tf_cmd must not be empty")
)

// Default returns the baseline settings with no file or environment applied.
func Default() Settings {
	return Settings{
		TerraformCmd:  "terraform",
		ProvidersFile: "localstack_providers_override.tf",
	}
}

// Load reads dir/tflocal.toml when present, layers the environment on top,
// and validates the result. A missing file is not an error.
func Load(dir string) (Settings, error) {
	cfg := Default()

	path := filepath.Join(dir, FileName)
	data, err := os.ReadFile(path)
	switch {
	case errors.Is(err, fs.ErrNotExist):
		// defaults only
	case err != nil:
		return Settings{}, err
	default:
		if err := toml.Unmarshal(data, &cfg); err != nil {
			return Settings{}, fmt.Errorf("parse %s: %w", path, err)
		}
	}

	if err := cfg.applyEnv(); err != nil {
		return Settings{}, err
	}
	if err := cfg.Validate(); err != nil {
		return Settings{}, err
	}
	return cfg, nil
}

func (s *Settings) applyEnv() error {
	if v := os.Getenv("LOCALSTACK_HOSTNAME"); v != "" {
		s.Hostname = v
	}
	if v := os.Getenv("EDGE_PORT"); v != "" {
		port, err := strconv.Atoi(v)
		if err != nil {
			return fmt.Errorf("EDGE_PORT: %w", err)
		}
		s.EdgePort = port
	}
	if v := os.Getenv("TF_CMD"); v != "" {
		s.TerraformCmd = v
	}
	if v := os.Getenv("LS_PROVIDERS_FILE"); v != "" {
		s.ProvidersFile = v
	}
	if v := os.Getenv("S3_HOSTNAME"); v != "" {
		s.S3Hostname = v
	}
	if v, ok := os.LookupEnv("USE_EXEC"); ok {
		s.UseExec = Truthy(v)
	}
	return nil
}

// Validate ensures the settings can drive an invocation. EdgePort zero means
// "use each service's catalog port" and is valid.
func (s Settings) Validate() error {
	if s.EdgePort < 0 || s.EdgePort > 65535 {
		return ErrInvalidEdgePort
	}
	if strings.TrimSpace(s.TerraformCmd) == "" {
		return ErrMissingCommand
	}
	return nil
}

// Truthy interprets a flag-style environment value. Empty, "0", and "false"
// (any case) are false; everything else is true.
func Truthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "", "0", "false":
		return false
	}
	return true
}

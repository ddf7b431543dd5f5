// Package render writes and removes the generated provider override file.
package render

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/tflocal/tflocal/internal/endpoints"
)

// ErrProviderFileExists indicates a stale override file is in the way. It is
// never overwritten; the caller must remove it by hand.
var ErrProviderFileExists = errors.New("provider override file already exists")

const (
	configsMarker   = "<configs>"
	endpointsMarker = "<endpoints>"
)

const template = `provider "aws" {
  access_key                  = "test"
  secret_key                  = "test"
  skip_credentials_validation = true
  skip_metadata_api_check     = true
  skip_requesting_account_id  = true
` + configsMarker + `
  endpoints {
` + endpointsMarker + `
  }
}
`

// Input carries everything the template needs.
type Input struct {
	Endpoints   []endpoints.Endpoint
	Region      string
	S3PathStyle bool
}

// Render substitutes the endpoint lines and top-level provider settings into
// the fixed template. Endpoint order is preserved from the input.
func Render(in Input) string {
	var configs []string
	if in.S3PathStyle {
		configs = append(configs, "  s3_use_path_style = true")
	}
	if in.Region != "" {
		configs = append(configs, fmt.Sprintf("  region = %q", in.Region))
	}

	width := 0
	for _, ep := range in.Endpoints {
		if len(ep.Service) > width {
			width = len(ep.Service)
		}
	}
	lines := make([]string, len(in.Endpoints))
	for i, ep := range in.Endpoints {
		lines[i] = fmt.Sprintf("    %-*s = %q", width, ep.Service, ep.URL)
	}

	out := strings.Replace(template, configsMarker, strings.Join(configs, "\n"), 1)
	return strings.Replace(out, endpointsMarker, strings.Join(lines, "\n"), 1)
}

// TargetPath decides where the override file goes: the directory named by
// the first -chdir= argument, else the current directory. The argument is
// inspected only, never stripped; terraform sees it too. An absolute file
// name wins outright.
func TargetPath(args []string, fileName string) string {
	if filepath.IsAbs(fileName) {
		return fileName
	}
	dir := "."
	for _, arg := range args {
		if d, ok := strings.CutPrefix(arg, "-chdir="); ok {
			dir = d
			break
		}
	}
	return filepath.Join(dir, fileName)
}

// WriteFile creates path with the rendered content, refusing to clobber an
// existing file.
func WriteFile(path, content string) error {
	f, err := os.OpenFile(path, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		if errors.Is(err, fs.ErrExist) {
			return fmt.Errorf("%w at %s: remove it and re-run", ErrProviderFileExists, path)
		}
		return err
	}
	if _, err := f.WriteString(content); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}

// Remove deletes the override file. A file that is already gone counts as
// removed.
func Remove(path string) error {
	err := os.Remove(path)
	if err != nil && !errors.Is(err, fs.ErrNotExist) {
		return fmt.Errorf("remove %s: %w", path, err)
	}
	return nil
}

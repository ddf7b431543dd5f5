package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/tflocal/tflocal/internal/config"
	"github.com/tflocal/tflocal/internal/endpoints"
	"github.com/tflocal/tflocal/internal/region"
	"github.com/tflocal/tflocal/internal/render"
	"github.com/tflocal/tflocal/internal/runner"
	"github.com/tflocal/tflocal/internal/version"
)

var (
	colorError = color.New(color.FgRed, color.Bold).SprintFunc()
	colorWarn  = color.New(color.FgYellow).SprintFunc()
)

// childExit carries the wrapped CLI's exit code up to Execute without being
// treated as a wrapper failure.
type childExit int

func (e childExit) Error() string {
	return fmt.Sprintf("terraform exited with status %d", int(e))
}

// Execute runs one wrapped invocation and returns the wrapper's exit code.
func Execute() int {
	err := newRootCommand().Execute()
	if err == nil {
		return 0
	}
	var code childExit
	if errors.As(err, &code) {
		return int(code)
	}
	fmt.Fprintf(os.Stderr, "%s %v\n", colorError("tflocal:"), err)
	return 1
}

func newRootCommand() *cobra.Command {
	return &cobra.Command{
		Use:                "tflocal [terraform arguments]",
		Short:              "Run terraform against LocalStack",
		Args:               cobra.ArbitraryArgs,
		DisableFlagParsing: true,
		SilenceUsage:       true,
		SilenceErrors:      true,
		RunE:               runWrapped,
	}
}

func runWrapped(cmd *cobra.Command, args []string) error {
	cfg, err := config.Load(".")
	if err != nil {
		return err
	}

	eps := endpoints.Resolve(cfg)
	reg := region.Resolve(cmd.Context(),
		region.Env{}, region.Static(cfg.Region), region.SharedConfig{})

	pathStyle := false
	if s3URL, ok := endpoints.URLFor(cfg, "s3"); ok {
		pathStyle = endpoints.UsePathStyle(s3URL)
	}

	path := render.TargetPath(args, cfg.ProvidersFile)
	content := render.Render(render.Input{
		Endpoints:   eps,
		Region:      reg,
		S3PathStyle: pathStyle,
	})
	if err := render.WriteFile(path, content); err != nil {
		return err
	}
	// A successful Replace never returns, so the override file stays behind
	// in that mode; everywhere else this deferred removal runs.
	defer removeOverride(cmd, path)
	debugf(cmd, "tflocal %s: wrote %s (%d endpoints, region %s)",
		version.String(), path, len(eps), reg)

	if cfg.UseExec {
		if runner.ReplaceSupported() {
			return runner.Replace(cfg.TerraformCmd, args)
		}
		fmt.Fprintf(cmd.ErrOrStderr(), "%s USE_EXEC is unavailable on this platform; running supervised\n",
			colorWarn("tflocal:"))
	}

	code, runErr := runner.Supervise(cfg.TerraformCmd, args)
	if runErr != nil {
		return runErr
	}
	if code != 0 {
		return childExit(code)
	}
	return nil
}

// removeOverride cleans up the generated file. Failures are reported but
// never replace the invocation's own outcome.
func removeOverride(cmd *cobra.Command, path string) {
	if err := render.Remove(path); err != nil {
		fmt.Fprintf(cmd.ErrOrStderr(), "%s %v\n", colorWarn("tflocal:"), err)
	}
}

func debugf(cmd *cobra.Command, format string, args ...any) {
	if !config.Truthy(os.Getenv("TFLOCAL_DEBUG")) {
		return
	}
	fmt.Fprintf(cmd.ErrOrStderr(), format+"\n", args...)
}

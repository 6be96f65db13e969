package cli

import (
	"context"
	"fmt"
	"os"
	"os/signal"

	"github.com/odingame/forge/internal/branding"
	"github.com/odingame/forge/internal/build"
	"github.com/odingame/forge/internal/config"
	"github.com/odingame/forge/internal/ctxlog"
	"github.com/odingame/forge/internal/platform"
	"github.com/odingame/forge/internal/runner"
	"github.com/spf13/cobra"
)

var (
	buildVersion string
	buildCommit  string
	buildDate    string
)

var (
	rootDir    string
	configFile string
)

// skipProject marks commands that run without loading forge.yaml.
const skipProject = "skip-project"

// newRunner builds the runner used for external commands. Tests replace it.
var newRunner = func(cmd *cobra.Command) runner.Runner {
	return &runner.ExecRunner{Stdout: cmd.OutOrStdout(), Stderr: cmd.ErrOrStderr()}
}

// hostTarget reports the target tag of this machine. Tests replace it.
var hostTarget = platform.HostTarget

// session is the per-invocation state resolved before a command runs.
type session struct {
	root    string
	project *config.Project
	policy  platform.Policy
	runner  runner.Runner
}

var sess session

var rootCmd = &cobra.Command{
	Use:   branding.CLIName() + " [hot] [run] [package] [distribute]",
	Short: branding.Description(),
	Long: branding.DisplayName() + ` builds the game driver and its hot-reloadable game library.

Without a subcommand it runs a build. Tokens select the mode:
  hot         rebuild only the game library (forced while the game is running)
  run         launch the driver after a full build
  package     packaging build (not implemented: skips the asset link)
  distribute  accepted, no effect`,
	Args:              tokenArgs,
	ValidArgs:         build.ValidTokens,
	SilenceUsage:      true,
	SilenceErrors:     true,
	PersistentPreRunE: prepare,
	RunE:              runBuild,
}

func init() {
	pf := rootCmd.PersistentFlags()
	pf.StringVar(&rootDir, "root", "", "Project root (default: nearest directory with "+branding.ConfigFile()+", else the git top level)")
	pf.StringVar(&configFile, "config", "", "Config file (default: <root>/"+branding.ConfigFile()+")")
	pf.String("target", "", "Target tag, e.g. linux-x86_64 or windows-x86_64 (default: host)")
	pf.String("release-path", "", "Release directory")
	pf.String("release-version", "", "Release version (semver)")
	pf.String("log-level", "", "Log level (debug|info|warn|error)")
	pf.String("log-format", "", "Log format (text|json)")

	addBuildFlags(rootCmd)
}

// prepare resolves the project root, loads the config, selects the platform
// policy and installs the logger.
func prepare(cmd *cobra.Command, _ []string) error {
	ctx := cmd.Context()
	r := newRunner(cmd)
	sess = session{runner: r}

	root := rootDir
	if root == "" {
		root = os.Getenv(branding.EnvVar("ROOT"))
	}
	if root == "" {
		wd, err := os.Getwd()
		if err != nil {
			return fmt.Errorf("resolving working directory: %w", err)
		}
		root = config.FindRoot(ctx, r, wd)
	}
	sess.root = root

	if !needsProject(cmd) {
		return nil
	}

	project, err := config.Load(root, configFile, cmd.Root().PersistentFlags())
	if err != nil {
		return err
	}
	policy, err := platform.ForTarget(project.Settings.Target)
	if err != nil {
		return err
	}
	sess.project = project
	sess.policy = policy

	logger := ctxlog.New(project.Settings.LogLevel, project.Settings.LogFormat, cmd.ErrOrStderr())
	logger.Debug("project loaded", "root", project.Root, "config", project.File, "target", project.Settings.Target)
	cmd.SetContext(ctxlog.WithLogger(ctx, logger))
	return nil
}

func needsProject(cmd *cobra.Command) bool {
	if cmd.Annotations[skipProject] == "true" {
		return false
	}
	switch cmd.Name() {
	case "help", cobra.ShellCompRequestCmd, cobra.ShellCompNoDescRequestCmd:
		return false
	}
	return !cmd.HasParent() || cmd.Parent().Name() != "completion"
}

// newConfigurator returns a build configurator for the loaded project that
// writes progress to the command's output.
func newConfigurator(cmd *cobra.Command) *build.Configurator {
	c := build.New(sess.project, sess.policy, sess.runner, cmd.OutOrStdout())
	c.Host = hostTarget()
	return c
}

// Execute runs the root command with build info injected via ldflags.
func Execute(version, commit, date string) error {
	buildVersion = version
	buildCommit = commit
	buildDate = date

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := rootCmd.ExecuteContext(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		return err
	}
	return nil
}

package build

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"time"

	"github.com/odingame/forge/internal/config"
	"github.com/odingame/forge/internal/ctxlog"
	"github.com/odingame/forge/internal/platform"
	"github.com/odingame/forge/internal/procscan"
	"github.com/odingame/forge/internal/runner"
	"github.com/odingame/forge/internal/toolchain"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

var printer = message.NewPrinter(language.English)

// Configurator plans builds for one project and target platform.
type Configurator struct {
	Project  *config.Project
	Policy   platform.Policy
	Runner   runner.Runner
	Compiler *toolchain.Compiler
	Out      io.Writer
	Now      func() time.Time
	// Host is the target tag of the machine running the build. Process
	// checks, links, copies and launches run here, so only host targets
	// can be built.
	Host string
}

// New returns a Configurator using the compiler named in the project settings.
func New(project *config.Project, policy platform.Policy, r runner.Runner, out io.Writer) *Configurator {
	return &Configurator{
		Project:  project,
		Policy:   policy,
		Runner:   r,
		Compiler: toolchain.NewCompiler(project.Settings.Compiler),
		Out:      out,
		Now:      time.Now,
		Host:     platform.HostTarget(),
	}
}

// Plan is a resolved build: the effective options and the steps that
// realize them.
type Plan struct {
	Options     Options
	ReleasePath string
	Executable  string
	Library     string
	Steps       Steps
}

// Plan resolves opts into a build plan. Planning queries the process list,
// and on platforms that ship companion libraries, the compiler root; it
// does not touch the release directory.
func (c *Configurator) Plan(ctx context.Context, opts Options) (*Plan, error) {
	s := c.Project.Settings
	log := ctxlog.FromContext(ctx)

	if err := c.CheckHost(opts.Target); err != nil {
		return nil, err
	}
	version, err := NormalizeVersion(opts.Version)
	if err != nil {
		return nil, err
	}
	opts.Version = version

	running, err := procscan.IsRunning(ctx, c.Runner, c.Policy.ProcessList(), s.GameName)
	if err != nil {
		return nil, err
	}
	if running && !opts.HotReload {
		fmt.Fprintln(c.Out, "Game is running, hot reloading instead")
		opts.HotReload = true
	}

	release := c.Project.Path(opts.ReleasePath)
	plan := &Plan{
		Options:     opts,
		ReleasePath: release,
		Executable:  c.Policy.ExecutableName(filepath.Join(release, s.GameName)),
		Library:     c.Policy.SharedLibraryName(filepath.Join(release, s.GameLibrary)),
	}

	plan.Steps = append(plan.Steps, Step{
		Name:   "create release directory",
		Detail: release,
		Run: func(context.Context) error {
			if err := os.MkdirAll(release, 0755); err != nil {
				return fmt.Errorf("creating release directory %s: %w", release, err)
			}
			return nil
		},
	})

	if !opts.HotReload {
		if pattern := c.Policy.DebugSymbolPattern(); pattern != "" {
			plan.Steps = append(plan.Steps, c.removeDebugSymbols(release, pattern))
		}

		companions := c.Policy.CompanionLibraries()
		if len(companions) > 0 {
			root, err := c.Compiler.Root(ctx, c.Runner)
			if err != nil {
				return nil, fmt.Errorf("locating compiler root: %w", err)
			}
			for _, rel := range companions {
				src := filepath.Join(root, filepath.FromSlash(rel))
				plan.Steps = append(plan.Steps, bestEffortCopy("copy "+filepath.Base(src), src, filepath.Join(release, filepath.Base(src))))
			}
		}

		for _, lib := range s.NativeLibs {
			src := c.stagedLibrary(lib.Name)
			plan.Steps = append(plan.Steps, bestEffortCopy("stage "+lib.Name, src, filepath.Join(release, filepath.Base(src))))
		}

		if !opts.Package {
			plan.Steps = append(plan.Steps, c.linkAssets(release))
		} else {
			plan.Steps = append(plan.Steps, Step{
				Name: "package release",
				Run: func(context.Context) error {
					fmt.Fprintln(c.Out, "Packaging is not implemented; the asset link was skipped.")
					return nil
				},
			})
		}
	} else {
		log.Debug("hot reload: skipping driver, debug symbols, companions and asset link")
	}

	libFlags, err := toolchain.JoinFlags(s.Flags.Base, s.Flags.Game)
	if err != nil {
		return nil, err
	}
	libFlags = append(libFlags, c.Policy.GameLibraryFlags(release, s.GameLibrary, c.Now())...)
	plan.Steps = append(plan.Steps, c.commandStep("compile game library", c.Compiler.BuildLibrary(s.GamePackage, libFlags, plan.Library)))

	if !opts.HotReload {
		exeFlags, err := toolchain.JoinFlags(s.Flags.Base, s.Flags.Driver)
		if err != nil {
			return nil, err
		}
		exeFlags = append(exeFlags, toolchain.Define("GAME_VERSION", opts.Version))
		plan.Steps = append(plan.Steps, c.commandStep("compile driver", c.Compiler.BuildExecutable(s.DriverPackage, exeFlags, plan.Executable)))

		if opts.Run {
			plan.Steps = append(plan.Steps, c.commandStep("launch "+filepath.Base(plan.Executable), c.Policy.LaunchCommand(plan.Executable)))
		}
	}

	if opts.Distribute {
		log.Debug("distribute token has no effect")
	}

	return plan, nil
}

// CheckHost reports whether target can be built on this machine.
func (c *Configurator) CheckHost(target string) error {
	return platform.MatchHost(target, c.Host)
}

// Build plans and executes a build.
func (c *Configurator) Build(ctx context.Context, opts Options) (*Plan, error) {
	plan, err := c.Plan(ctx, opts)
	if err != nil {
		return nil, err
	}
	return plan, plan.Steps.Execute(ctx, c.Out)
}

// commandStep runs cmd from the project root; a non-zero exit fails the step.
func (c *Configurator) commandStep(name string, cmd runner.Command) Step {
	cmd.Dir = c.Project.Root
	return Step{
		Name:   name,
		Detail: cmd.String(),
		Run: func(ctx context.Context) error {
			_, err := runner.Check(ctx, c.Runner, cmd)
			return err
		},
	}
}

func (c *Configurator) removeDebugSymbols(release, pattern string) Step {
	glob := filepath.Join(release, pattern)
	return Step{
		Name:   "remove stale debug symbols",
		Detail: glob,
		Run: func(ctx context.Context) error {
			matches, err := filepath.Glob(glob)
			if err != nil {
				return err
			}
			removed := 0
			for _, m := range matches {
				if err := os.Remove(m); err != nil {
					// Still held open by a running driver.
					ctxlog.FromContext(ctx).Debug("keeping debug symbols", "path", m, "err", err)
					continue
				}
				removed++
			}
			if removed > 0 {
				printer.Fprintf(c.Out, "Removed %d debug symbol file(s)\n", removed)
			}
			return nil
		},
	}
}

func (c *Configurator) linkAssets(release string) Step {
	target := c.Project.Path(c.Project.Settings.AssetsDir)
	link := filepath.Join(release, "assets")
	return Step{
		Name:   "link assets",
		Detail: link + " -> " + target,
		Run: func(ctx context.Context) error {
			created, err := c.Policy.LinkDir(ctx, c.Runner, target, link)
			if err != nil {
				return err
			}
			if !created {
				ctxlog.FromContext(ctx).Debug("asset link already present", "path", link)
			}
			return nil
		},
	}
}

// bestEffortCopy copies src to dst and ignores failure: the usual cause is
// a running driver holding dst open, and the copy it holds is current.
func bestEffortCopy(name, src, dst string) Step {
	return Step{
		Name:   name,
		Detail: src + " -> " + dst,
		Run: func(ctx context.Context) error {
			if err := platform.CopyFile(src, dst); err != nil {
				ctxlog.FromContext(ctx).Debug("best-effort copy failed", "src", src, "dst", dst, "err", err)
			}
			return nil
		},
	}
}

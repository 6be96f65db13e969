package build

import (
	"context"
	"fmt"
	"io"

	"github.com/odingame/forge/internal/ctxlog"
)

// Step is one action of a plan.
type Step struct {
	Name string
	// Detail is the command line or paths involved, shown by Describe.
	Detail string
	Run    func(ctx context.Context) error
}

// Steps is an ordered list of steps.
type Steps []Step

// Execute runs the steps in order and stops at the first failure.
func (s Steps) Execute(ctx context.Context, out io.Writer) error {
	log := ctxlog.FromContext(ctx)
	for i, step := range s {
		if err := ctx.Err(); err != nil {
			return err
		}
		fmt.Fprintf(out, "[%d/%d] %s\n", i+1, len(s), step.Name)
		log.Debug("running step", "step", step.Name, "detail", step.Detail)
		if err := step.Run(ctx); err != nil {
			return fmt.Errorf("%s: %w", step.Name, err)
		}
	}
	return nil
}

// Describe prints the steps without running them.
func (s Steps) Describe(w io.Writer) {
	for i, step := range s {
		fmt.Fprintf(w, "%2d. %s\n", i+1, step.Name)
		if step.Detail != "" {
			fmt.Fprintf(w, "      %s\n", step.Detail)
		}
	}
}

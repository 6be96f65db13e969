package runner

import (
	"context"
	"sync"
)

// Fake is a Runner that records every command and answers from a script.
// Responses are keyed by command name; commands without a scripted response
// succeed with empty output.
type Fake struct {
	mu        sync.Mutex
	Commands  []Command
	Responses map[string]Output
	// Errs makes Run fail to "launch" the named command.
	Errs map[string]error
	// OnRun, when set, is called for each command after it is recorded.
	OnRun func(Command)
}

// NewFake returns an empty Fake.
func NewFake() *Fake {
	return &Fake{
		Responses: make(map[string]Output),
		Errs:      make(map[string]error),
	}
}

// Respond scripts the output returned for every command named name.
func (f *Fake) Respond(name string, out Output) *Fake {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.Responses[name] = out
	return f
}

// Run records cmd and returns the scripted result.
func (f *Fake) Run(_ context.Context, cmd Command) (*Output, error) {
	f.mu.Lock()
	f.Commands = append(f.Commands, cmd)
	resp, ok := f.Responses[cmd.Name]
	err := f.Errs[cmd.Name]
	hook := f.OnRun
	f.mu.Unlock()

	if hook != nil {
		hook(cmd)
	}
	if err != nil {
		return nil, err
	}
	if !ok {
		return &Output{}, nil
	}
	out := resp
	return &out, nil
}

// Lines returns the recorded command lines in execution order.
func (f *Fake) Lines() []string {
	f.mu.Lock()
	defer f.mu.Unlock()
	lines := make([]string, len(f.Commands))
	for i, c := range f.Commands {
		lines[i] = c.String()
	}
	return lines
}

// Count returns how many recorded commands were named name.
func (f *Fake) Count(name string) int {
	f.mu.Lock()
	defer f.mu.Unlock()
	n := 0
	for _, c := range f.Commands {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Package guitest provides a recording gui.ImGui for headless tests.
package guitest

import (
	"slices"
	"sync"

	"github.com/plus3/imdi/gui"
)

//go:generate go run ../../cmd/recordergen -out recorder_gen.go

// Call is one recorded invocation.
type Call struct {
	Name string
	Args []any
}

// Recorder implements gui.ImGui by recording every call. Query methods return
// the values queued with Return, or the zero value of their result type.
type Recorder struct {
	mu      sync.Mutex
	calls   []Call
	returns map[string][]any
	hooks   map[string]func(args []any)
}

var _ gui.ImGui = (*Recorder)(nil)

// NewRecorder returns an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{returns: make(map[string][]any)}
}

// Return queues results for method name. Each call consumes one value; the
// last value keeps being returned once the queue is down to it. Values must
// have the method's exact result type: int32(3), not 3.
func (r *Recorder) Return(name string, values ...any) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.returns == nil {
		r.returns = make(map[string][]any)
	}
	r.returns[name] = append(r.returns[name], values...)
	return r
}

// Do runs fn with the arguments of every later call to name, before the
// result is returned. Tests use it to act as the user, writing through the
// pointer arguments of input widgets.
func (r *Recorder) Do(name string, fn func(args []any)) *Recorder {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.hooks == nil {
		r.hooks = make(map[string]func(args []any))
	}
	r.hooks[name] = fn
	return r
}

// Calls returns a copy of every recorded call in order.
func (r *Recorder) Calls() []Call {
	r.mu.Lock()
	defer r.mu.Unlock()
	return slices.Clone(r.calls)
}

// Names returns the recorded method names in order.
func (r *Recorder) Names() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	names := make([]string, len(r.calls))
	for i, c := range r.calls {
		names[i] = c.Name
	}
	return names
}

// Count returns how many times name was called.
func (r *Recorder) Count(name string) int {
	r.mu.Lock()
	defer r.mu.Unlock()
	n := 0
	for _, c := range r.calls {
		if c.Name == name {
			n++
		}
	}
	return n
}

// Last returns the most recent call to name.
func (r *Recorder) Last(name string) (Call, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for i := len(r.calls) - 1; i >= 0; i-- {
		if r.calls[i].Name == name {
			return r.calls[i], true
		}
	}
	return Call{}, false
}

// Reset drops recorded calls, queued results and hooks.
func (r *Recorder) Reset() {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = nil
	r.returns = make(map[string][]any)
	r.hooks = nil
}

func (r *Recorder) record(name string, args ...any) {
	r.mu.Lock()
	r.calls = append(r.calls, Call{Name: name, Args: args})
	hook := r.hooks[name]
	r.mu.Unlock()

	if hook != nil {
		hook(args)
	}
}

func result[T any](r *Recorder, name string) T {
	r.mu.Lock()
	defer r.mu.Unlock()

	var zero T
	queue := r.returns[name]
	if len(queue) == 0 {
		return zero
	}
	v := queue[0]
	if len(queue) > 1 {
		r.returns[name] = queue[1:]
	}
	if t, ok := v.(T); ok {
		return t
	}
	return zero
}

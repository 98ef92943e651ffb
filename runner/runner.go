// Package runner carries the engine-side execution contract a task runs
// against: templated-property rendering, the internal blob store, a logger,
// counter metrics and a working directory for temporary files. One Context
// serves exactly one task invocation; nothing is shared across invocations.
package runner

import (
	"fmt"
	"io"
	"os"

	"github.com/rs/zerolog"

	"github.com/flowmech/flow-plugin-dropbox/runner/storage"
)

// Context is the per-invocation execution environment handed to a task.
type Context struct {
	vars    map[string]any
	logger  zerolog.Logger
	store   storage.Store
	metrics *Metrics
	workDir string
}

// Option configures a Context.
type Option func(*Context)

// WithVars sets the variables available to property templates.
func WithVars(vars map[string]any) Option {
	return func(c *Context) { c.vars = vars }
}

// WithLogger sets the invocation logger.
func WithLogger(logger zerolog.Logger) Option {
	return func(c *Context) { c.logger = logger }
}

// WithStorage sets the engine's internal blob store.
func WithStorage(store storage.Store) Option {
	return func(c *Context) { c.store = store }
}

// WithWorkingDir sets the directory for temporary files.
func WithWorkingDir(dir string) Option {
	return func(c *Context) { c.workDir = dir }
}

// NewContext returns a Context with a discarding logger, the OS temp
// directory and no storage unless options say otherwise.
func NewContext(opts ...Option) *Context {
	c := &Context{
		logger:  zerolog.New(io.Discard),
		metrics: NewMetrics(),
		workDir: os.TempDir(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

// Logger returns the invocation logger.
func (c *Context) Logger() *zerolog.Logger {
	return &c.logger
}

// Storage returns the engine's internal blob store, or an error when the
// invocation was started without one.
func (c *Context) Storage() (storage.Store, error) {
	if c.store == nil {
		return nil, fmt.Errorf("internal storage is not configured for this invocation")
	}
	return c.store, nil
}

// Counter adds delta to the named counter metric.
func (c *Context) Counter(name string, delta int64) {
	c.metrics.Count(name, delta)
}

// Metrics returns the counters recorded during this invocation.
func (c *Context) Metrics() *Metrics {
	return c.metrics
}

// TempFile creates a fresh temporary file inside the working directory.
// The caller owns removal.
func (c *Context) TempFile() (*os.File, error) {
	f, err := os.CreateTemp(c.workDir, "flowmech-*")
	if err != nil {
		return nil, fmt.Errorf("create temp file failed: %w", err)
	}
	return f, nil
}

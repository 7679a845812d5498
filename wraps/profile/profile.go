// Package profile builds wrapper pipelines from yaml configuration, so a
// deployment can strip memoization or tracing without touching call sites.
package profile

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"

	"go.uber.org/zap"
	"gopkg.in/yaml.v3"

	"github.com/on-the-ground/wrap_ive_go/wraps"
	"github.com/on-the-ground/wrap_ive_go/wraps/count"
	"github.com/on-the-ground/wrap_ive_go/wraps/memo"
	"github.com/on-the-ground/wrap_ive_go/wraps/timing"
	"github.com/on-the-ground/wrap_ive_go/wraps/trace"
)

// Config selects which layers a Pipeline applies. Disabled layers become
// the no-op wrapper, keeping call sites unchanged.
type Config struct {
	Memo      bool   `yaml:"memo"`
	Count     bool   `yaml:"count"`
	Trace     bool   `yaml:"trace"`
	TraceUnit string `yaml:"traceUnit"`
	Timing    bool   `yaml:"timing"`
}

// Default enables only call counting, with a four-space trace unit ready
// for when tracing is switched on.
func Default() Config {
	return Config{Count: true, TraceUnit: "    "}
}

// LoadFromPath reads yaml configuration over the defaults. A missing file
// falls back to Default; any other read failure and malformed yaml are
// errors.
func LoadFromPath(path string) (Config, error) {
	cfg := Default()

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return cfg, nil
		}
		return Default(), fmt.Errorf("read %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Default(), fmt.Errorf("parse %s: %w", path, err)
	}
	if cfg.TraceUnit == "" {
		cfg.TraceUnit = Default().TraceUnit
	}
	return cfg, nil
}

type pipelineOptions struct {
	logger *zap.Logger
	writer io.Writer
}

type Option func(*pipelineOptions)

// WithLogger routes every layer's diagnostics to the given logger.
func WithLogger(logger *zap.Logger) Option {
	return func(o *pipelineOptions) { o.logger = logger }
}

// WithTraceWriter redirects trace lines away from os.Stdout.
func WithTraceWriter(w io.Writer) Option {
	return func(o *pipelineOptions) { o.writer = w }
}

// Pipeline composes the configured layers: memo innermost, then count,
// then timing, trace outermost. The shared Counter is exposed for Calls
// inspection across every function the pipeline wraps.
type Pipeline struct {
	Counter  *count.Counter
	wrappers []wraps.Wrapper
}

// Pipeline builds the layer stack for this configuration.
func (c Config) Pipeline(opts ...Option) *Pipeline {
	o := pipelineOptions{logger: zap.NewNop(), writer: os.Stdout}
	for _, opt := range opts {
		opt(&o)
	}

	p := &Pipeline{Counter: count.New(count.WithLogger(o.logger))}

	memoLayer := wraps.Wrapper(wraps.Disable)
	if c.Memo {
		memoLayer = func(f wraps.Func) wraps.Func {
			wrapped, _ := memo.Wrap(f, memo.WithLogger(o.logger))
			return wrapped
		}
	}

	countLayer := wraps.Wrapper(wraps.Disable)
	if c.Count {
		countLayer = p.Counter.Wrap
	}

	timingLayer := wraps.Wrapper(wraps.Disable)
	if c.Timing {
		timingLayer = func(f wraps.Func) wraps.Func {
			wrapped, _ := timing.Wrap(f)
			return wrapped
		}
	}

	traceLayer := trace.Disabled(c.TraceUnit)
	if c.Trace {
		traceLayer = trace.With(c.TraceUnit, trace.WithWriter(o.writer), trace.WithLogger(o.logger))
	}

	p.wrappers = []wraps.Wrapper{memoLayer, countLayer, timingLayer, traceLayer}
	return p
}

// Apply stacks the configured layers onto f, innermost first.
func (p *Pipeline) Apply(f wraps.Func) wraps.Func {
	return wraps.Compose(f, p.wrappers...)
}

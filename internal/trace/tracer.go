package trace

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
)

// Tracer receives trace events. Implementations must be goroutine-safe.
type Tracer interface {
	Emit(ev *Event)
	Flush() error
	Close() error
	Level() Level
	Enabled() bool
}

// Config holds tracer configuration.
type Config struct {
	Level      Level
	Format     Format
	Output     io.Writer // takes precedence over OutputPath
	OutputPath string    // "-" or "" for stderr
}

// New creates a Tracer based on Config. File outputs are buffered until
// Flush or Close.
func New(cfg Config) (Tracer, error) {
	if cfg.Level == LevelOff {
		return Nop, nil
	}
	format := cfg.Format
	if format == FormatAuto {
		format = FormatText
		if strings.HasSuffix(cfg.OutputPath, ".ndjson") {
			format = FormatNDJSON
		}
	}
	switch {
	case cfg.Output != nil:
		return NewStream(cfg.Output, cfg.Level, format), nil
	case cfg.OutputPath == "" || cfg.OutputPath == "-":
		return NewStream(os.Stderr, cfg.Level, format), nil
	}
	f, err := os.Create(cfg.OutputPath)
	if err != nil {
		return nil, fmt.Errorf("failed to open trace output: %w", err)
	}
	buf := bufio.NewWriter(f)
	return &stream{w: buf, buf: buf, closer: f, level: cfg.Level, format: format}, nil
}

// NewStream returns a tracer writing every event to w as it arrives. It
// never closes w.
func NewStream(w io.Writer, level Level, format Format) Tracer {
	return &stream{w: w, level: level, format: format}
}

type stream struct {
	mu     sync.Mutex
	w      io.Writer
	buf    *bufio.Writer
	closer io.Closer
	level  Level
	format Format
}

func (s *stream) Emit(ev *Event) {
	if ev == nil || !s.level.ShouldEmit(ev.Scope) {
		return
	}
	data := encode(ev, s.format)
	s.mu.Lock()
	defer s.mu.Unlock()
	_, _ = s.w.Write(data) //nolint:errcheck // tracing never fails the caller
}

func (s *stream) Flush() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.buf != nil {
		return s.buf.Flush()
	}
	return nil
}

func (s *stream) Close() error {
	err := s.Flush()
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closer != nil {
		err = errors.Join(err, s.closer.Close())
		s.closer = nil
	}
	return err
}

func (s *stream) Level() Level  { return s.level }
func (s *stream) Enabled() bool { return s.level > LevelOff }

type nopTracer struct{}

func (nopTracer) Emit(*Event)   {}
func (nopTracer) Flush() error  { return nil }
func (nopTracer) Close() error  { return nil }
func (nopTracer) Level() Level  { return LevelOff }
func (nopTracer) Enabled() bool { return false }

// Nop discards everything.
var Nop Tracer = nopTracer{}

type ctxKey struct{}

// FromContext returns the tracer stored in ctx, or Nop.
func FromContext(ctx context.Context) Tracer {
	if ctx == nil {
		return Nop
	}
	if t, ok := ctx.Value(ctxKey{}).(Tracer); ok && t != nil {
		return t
	}
	return Nop
}

// WithTracer attaches t to ctx.
func WithTracer(ctx context.Context, t Tracer) context.Context {
	return context.WithValue(ctx, ctxKey{}, t)
}

package logger

import (
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"
)

// ErrRegistrationClosed is returned by writes on a closed Registration.
var ErrRegistrationClosed = errors.New("logger: registration closed")

// Registration keeps a set of sinks registered on a Logger until Close.
// Close removes exactly the registrations it added, so nested and
// overlapping Registrations of the same sink do not disturb each other.
//
//	r := logger.Register(logger.Entry{Dest: f})
//	defer r.Close()
type Registration struct {
	l       *Logger
	entries []Entry
	ids     []uint64
	closed  bool
}

// Register adds entries to l, in order, until the returned Registration is
// closed.
func (l *Logger) Register(entries ...Entry) *Registration {
	r := &Registration{
		l:       l,
		entries: append([]Entry(nil), entries...),
		ids:     make([]uint64, 0, len(entries)),
	}
	for _, e := range entries {
		r.ids = append(r.ids, l.add(e))
	}
	return r
}

// Register adds entries to the process-wide Logger until the returned
// Registration is closed.
func Register(entries ...Entry) *Registration {
	return instance().Register(entries...)
}

// WithSinks runs fn with entries registered on l. The entries are removed
// when fn returns, including when it panics.
func (l *Logger) WithSinks(fn func(r *Registration) error, entries ...Entry) error {
	r := l.Register(entries...)
	defer r.Close()
	return fn(r)
}

// WithSinks runs fn with entries registered on the process-wide Logger.
func WithSinks(fn func(r *Registration) error, entries ...Entry) error {
	return instance().WithSinks(fn, entries...)
}

// Close removes the entries of r from its Logger. Calling Close more than
// once has no further effect.
func (r *Registration) Close() error {
	if r.closed {
		return nil
	}
	r.closed = true
	for _, id := range r.ids {
		r.l.removeID(id)
	}
	return nil
}

// Entries returns the entries owned by r.
func (r *Registration) Entries() []Entry {
	return append([]Entry(nil), r.entries...)
}

// Write writes p to the sinks of r only, bypassing every other registered
// sink. ANSI sequences are stripped for sinks that are not colored.
func (r *Registration) Write(p []byte) (int, error) {
	if r.closed {
		return 0, ErrRegistrationClosed
	}
	var (
		plain    []byte
		stripped bool
		errs     *multierror.Error
	)
	for i, e := range r.entries {
		if e.Dest == nil {
			continue
		}
		data := p
		if !e.Colored {
			if !stripped {
				plain, stripped = []byte(StripANSI(string(p))), true
			}
			data = plain
		}
		if err := writeFull(e.Dest, data); err != nil {
			r.l.metrics.WriteErrors.Inc()
			errs = multierror.Append(errs, fmt.Errorf("sink %d (%T): %w", i, e.Dest, err))
		}
	}
	if err := errs.ErrorOrNil(); err != nil {
		return 0, err
	}
	return len(p), nil
}

// Print writes tokens to the sinks of r only, with the same color handling
// as Logger.WriteAll.
func (r *Registration) Print(tokens ...any) error {
	if r.closed {
		return ErrRegistrationClosed
	}
	return r.l.WriteSelected(r.entries, tokens...)
}

// Log writes one formatted line at level to the sinks of r only, gated by
// the level default scope. Use LogScope to pick another scope.
func (r *Registration) Log(level Level, values ...any) error {
	return r.LogScope(level, level.DefaultScope(), values...)
}

// LogScope is Log gated by scope instead of the level default.
func (r *Registration) LogScope(level Level, scope Scope, values ...any) error {
	if r.closed {
		return ErrRegistrationClosed
	}
	if !scope.Active(r.l.debug) {
		return nil
	}
	r.l.metrics.Lines.WithLabelValues(level.String()).Inc()
	return r.l.WriteSelected(r.entries, r.l.line(level, values)...)
}

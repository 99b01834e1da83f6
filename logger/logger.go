package logger

import (
	"fmt"
	"io"
	"strings"

	"github.com/hashicorp/go-multierror"
	"github.com/spf13/afero"
)

// ColorMode controls whether the standard output sink receives colors.
type ColorMode int

const (
	// ColorAlways registers stdout as a colored sink.
	ColorAlways ColorMode = iota
	// ColorNever registers stdout as a plain sink.
	ColorNever
	// ColorAuto colors stdout only when it is a terminal and NO_COLOR is unset.
	ColorAuto
)

// Config defines options for New and Init. The zero value registers a
// colored stdout sink with the default color scheme.
type Config struct {
	// DisableStdout leaves the standard output stream unregistered.
	// Default: false (stdout registered)
	DisableStdout bool
	// StdoutColor selects coloring for the stdout sink.
	// Default: ColorAlways
	StdoutColor ColorMode
	// Sinks are registered after stdout, in order.
	// Default: nil
	Sinks []Entry
	// FilePath appends plain output to this file (created if missing); empty disables it.
	// The file is owned by the Logger and closed by Close.
	// Default: "" (file logging disabled)
	FilePath string
	// Fs is the filesystem FilePath is opened on.
	// Default: the OS filesystem
	Fs afero.Fs
	// Settings is the color scheme.
	// Default: DefaultSettings()
	Settings *OutputSettings
	// Build is the build mode calls are gated against.
	// Default: BuildDefault (the process build mode, see ProcessBuild)
	Build Build
	// ErrorHandler receives sink write failures from the level functions.
	// Default: nil (failures are reported on stderr)
	ErrorHandler func(error)
}

// Logger is an ordered registry of sinks. Lines are written to sinks in
// registration order.
//
// A Logger does no locking. Callers that log from several goroutines must
// serialize every call (level functions, Add, Remove, Register and Close)
// themselves.
type Logger struct {
	entries  []Entry
	ids      []uint64
	nextID   uint64
	settings OutputSettings
	debug    bool
	onError  func(error)
	file     afero.File
	metrics  metrics
}

// New returns a Logger built from config. It never fails: a log file that
// cannot be opened is reported on stderr and left out.
func New(config Config) *Logger {
	l := &Logger{
		settings: DefaultSettings(),
		debug:    config.Build.resolve() == DebugBuild,
		onError:  config.ErrorHandler,
		metrics:  newMetrics(),
	}
	if config.Settings != nil {
		l.settings = *config.Settings
	}

	if !config.DisableStdout {
		l.Add(Entry{Dest: outStdout, Colored: colorize(config.StdoutColor, outStdout)})
	}
	for _, e := range config.Sinks {
		l.Add(e)
	}

	if config.FilePath != "" {
		fs := config.Fs
		if fs == nil {
			fs = afero.NewOsFs()
		}
		f, err := OpenFile(fs, config.FilePath)
		if err != nil {
			fmt.Fprintf(outStderr, "failed to open log file %s: %v\n", config.FilePath, err)
		} else {
			l.file = f
			l.Add(Entry{Dest: f})
		}
	}
	return l
}

// Close unregisters and closes the file opened for Config.FilePath, if any.
// Other sinks are left alone.
func (l *Logger) Close() error {
	if l.file == nil {
		return nil
	}
	f := l.file
	l.file = nil
	l.Remove(Entry{Dest: f})
	return f.Close()
}

// Settings returns the color scheme of l.
func (l *Logger) Settings() OutputSettings {
	return l.settings
}

// IsDebug reports whether l gates calls as a debug build.
func (l *Logger) IsDebug() bool {
	return l.debug
}

// Add appends e. The same destination may be added more than once; it then
// receives every line once per registration.
func (l *Logger) Add(e Entry) {
	l.add(e)
}

func (l *Logger) add(e Entry) uint64 {
	l.nextID++
	l.entries = append(l.entries, e)
	l.ids = append(l.ids, l.nextID)
	return l.nextID
}

// Remove deletes the first entry whose destination equals e.Dest. Removing
// an unregistered sink does nothing.
func (l *Logger) Remove(e Entry) {
	for i := range l.entries {
		if l.entries[i].Equal(e) {
			l.removeAt(i)
			return
		}
	}
}

// removeID deletes the registration created by add with the given id.
func (l *Logger) removeID(id uint64) bool {
	for i, v := range l.ids {
		if v == id {
			l.removeAt(i)
			return true
		}
	}
	return false
}

func (l *Logger) removeAt(i int) {
	copy(l.entries[i:], l.entries[i+1:])
	l.entries[len(l.entries)-1] = Entry{}
	l.entries = l.entries[:len(l.entries)-1]
	l.ids = append(l.ids[:i], l.ids[i+1:]...)
}

// Entries returns a copy of the registered entries in write order.
func (l *Logger) Entries() []Entry {
	out := make([]Entry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the number of registered entries.
func (l *Logger) Len() int {
	return len(l.entries)
}

// WriteAll writes tokens to every registered sink. Colors are skipped for
// sinks that are not colored; every other value reaches every sink. A sink
// that fails does not stop the others; all failures are returned together.
func (l *Logger) WriteAll(tokens ...any) error {
	return l.write(l.entries, tokens)
}

// WriteSelected is WriteAll restricted to entries, whether or not they are
// registered.
func (l *Logger) WriteSelected(entries []Entry, tokens ...any) error {
	return l.write(entries, tokens)
}

func (l *Logger) write(entries []Entry, tokens []any) error {
	var (
		colored, plain       []byte
		haveColored, haveRaw bool
		errs                 *multierror.Error
	)
	for i, e := range entries {
		if e.Dest == nil {
			continue
		}
		var line []byte
		if e.Colored {
			if !haveColored {
				colored, haveColored = render(nil, true, tokens), true
			}
			line = colored
		} else {
			if !haveRaw {
				plain, haveRaw = render(nil, false, tokens), true
			}
			line = plain
		}
		if err := writeFull(e.Dest, line); err != nil {
			l.metrics.WriteErrors.Inc()
			errs = multierror.Append(errs, fmt.Errorf("sink %d (%T): %w", i, e.Dest, err))
		}
	}
	return errs.ErrorOrNil()
}

func writeFull(w io.Writer, p []byte) error {
	if len(p) == 0 {
		return nil
	}
	n, err := w.Write(p)
	if err != nil {
		return err
	}
	if n < len(p) {
		return io.ErrShortWrite
	}
	return nil
}

// line returns the tokens of one formatted line:
// prefix color, prefix, level color, values, reset, terminator.
func (l *Logger) line(level Level, values []any) []any {
	s := l.settings
	tokens := make([]any, 0, 2*len(values)+6)
	tokens = append(tokens, s.PrefixColor, s.Prefix, s.Color(level))
	for i, v := range values {
		if i > 0 {
			tokens = append(tokens, " ")
		}
		tokens = append(tokens, v)
	}
	if len(values) > 0 {
		tokens = append(tokens, pad(" "))
	}
	return append(tokens, s.Reset, "\n")
}

// Log writes one line at level to every sink if scope is active for the
// build mode of l. Inactive calls touch no sink.
func (l *Logger) Log(level Level, scope Scope, values ...any) error {
	if !scope.Active(l.debug) {
		return nil
	}
	l.metrics.Lines.WithLabelValues(level.String()).Inc()
	return l.WriteAll(l.line(level, values)...)
}

func (l *Logger) newLine(scope Scope, count int) error {
	if count <= 0 || !scope.Active(l.debug) {
		return nil
	}
	return l.WriteAll(strings.Repeat("\n", count))
}

func (l *Logger) emit(level Level, scope Scope, values []any) {
	l.report(l.Log(level, scope, values...))
}

func (l *Logger) report(err error) {
	if err == nil {
		return
	}
	if l.onError != nil {
		l.onError(err)
		return
	}
	fmt.Fprintf(outStderr, "logger: %v\n", err)
}

// Info writes values in the info color. Debug builds only.
func (l *Logger) Info(values ...any) { l.emit(InfoLevel, InfoLevel.DefaultScope(), values) }

// Warn writes values in the warn color. Debug builds only.
func (l *Logger) Warn(values ...any) { l.emit(WarnLevel, WarnLevel.DefaultScope(), values) }

// Success writes values in the success color.
func (l *Logger) Success(values ...any) { l.emit(SuccessLevel, SuccessLevel.DefaultScope(), values) }

// Notify writes values in the notify color.
func (l *Logger) Notify(values ...any) { l.emit(NotifyLevel, NotifyLevel.DefaultScope(), values) }

// Error writes values in the error color.
func (l *Logger) Error(values ...any) { l.emit(ErrorLevel, ErrorLevel.DefaultScope(), values) }

// NewLine writes count empty lines, without colors.
func (l *Logger) NewLine(count int) { l.report(l.newLine(All, count)) }

// In returns a Dispatch that gates every call with scope instead of the
// level default.
func (l *Logger) In(scope Scope) Dispatch {
	return Dispatch{l: l, scope: scope}
}

// Dispatch issues level calls with a fixed scope.
type Dispatch struct {
	l     *Logger
	scope Scope
}

// Info writes values in the info color.
func (d Dispatch) Info(values ...any) { d.l.emit(InfoLevel, d.scope, values) }

// Warn writes values in the warn color.
func (d Dispatch) Warn(values ...any) { d.l.emit(WarnLevel, d.scope, values) }

// Success writes values in the success color.
func (d Dispatch) Success(values ...any) { d.l.emit(SuccessLevel, d.scope, values) }

// Notify writes values in the notify color.
func (d Dispatch) Notify(values ...any) { d.l.emit(NotifyLevel, d.scope, values) }

// Error writes values in the error color.
func (d Dispatch) Error(values ...any) { d.l.emit(ErrorLevel, d.scope, values) }

// NewLine writes count empty lines.
func (d Dispatch) NewLine(count int) { d.l.report(d.l.newLine(d.scope, count)) }

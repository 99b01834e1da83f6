package logger

import (
	"errors"
	"fmt"
	"io"
)

// ErrNotInitialized is the panic value of level functions called before Init.
var ErrNotInitialized = errors.New("logger: not initialized, call Init first")

// std is the process-wide Logger.
var std *Logger

// Init replaces the process-wide Logger with a new one built from config,
// discarding every sink registered on the previous one and closing the file
// it opened for Config.FilePath.
func Init(config Config) *Logger {
	if std != nil {
		if err := std.Close(); err != nil {
			fmt.Fprintf(outStderr, "failed to close log file: %v\n", err)
		}
	}
	std = New(config)
	return std
}

// InitOnce builds the process-wide Logger only if none exists yet. It
// reports whether this call created it.
func InitOnce(config Config) (*Logger, bool) {
	if std != nil {
		return std, false
	}
	return Init(config), true
}

// Default returns the process-wide Logger.
func Default() (*Logger, error) {
	if std == nil {
		return nil, ErrNotInitialized
	}
	return std, nil
}

// Reset closes and drops the process-wide Logger, returning the package to
// its uninitialized state.
func Reset() error {
	if std == nil {
		return nil
	}
	err := std.Close()
	std = nil
	return err
}

// Close closes the log file of the process-wide Logger if it opened one.
// Call this function when your application shuts down.
func Close() error {
	if std == nil {
		return nil
	}
	return std.Close()
}

func instance() *Logger {
	if std == nil {
		panic(ErrNotInitialized)
	}
	return std
}

// AddStream registers w on the process-wide Logger.
func AddStream(w io.Writer, colored bool) {
	instance().Add(Entry{Dest: w, Colored: colored})
}

// RemoveStream unregisters the first registration of w. It takes no colored
// flag because removal matches on the destination alone.
func RemoveStream(w io.Writer) {
	instance().Remove(Entry{Dest: w})
}

// Info writes values in the info color. Debug builds only.
// Panics with ErrNotInitialized before Init.
func Info(values ...any) { instance().Info(values...) }

// Warn writes values in the warn color. Debug builds only.
func Warn(values ...any) { instance().Warn(values...) }

// Success writes values in the success color.
func Success(values ...any) { instance().Success(values...) }

// Notify writes values in the notify color.
func Notify(values ...any) { instance().Notify(values...) }

// Error writes values in the error color.
func Error(values ...any) { instance().Error(values...) }

// NewLine writes count empty lines.
func NewLine(count int) { instance().NewLine(count) }

// In returns a Dispatch on the process-wide Logger that gates every call with
// scope:
//
//	logger.In(logger.All).Info("shown in release builds too")
func In(scope Scope) Dispatch { return instance().In(scope) }

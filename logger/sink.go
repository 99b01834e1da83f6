package logger

import (
	"fmt"
	"io"
	"os"
	"reflect"
	"strconv"
)

// Entry is one sink registration: a destination plus whether it receives
// color codes. The Logger does not own Dest; the caller keeps it alive (and
// closes it) for as long as it is registered.
type Entry struct {
	Dest    io.Writer
	Colored bool
}

// Stdout returns a colored entry for the standard output stream.
func Stdout() Entry {
	return Entry{Dest: outStdout, Colored: true}
}

// Equal reports whether e and o point at the same destination. The Colored
// flag does not take part in the comparison.
func (e Entry) Equal(o Entry) bool {
	return sameDest(e.Dest, o.Dest)
}

func sameDest(a, b io.Writer) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ta, tb := reflect.TypeOf(a), reflect.TypeOf(b)
	if ta != tb {
		return false
	}
	// Values holding slices or maps, directly or behind an interface field,
	// have no identity of their own.
	if !reflect.ValueOf(a).Comparable() || !reflect.ValueOf(b).Comparable() {
		return false
	}
	return a == b
}

// Printer is implemented by values that know how to append themselves to a
// line. Anything else is formatted with fmt.
type Printer interface {
	AppendTo(b []byte) []byte
}

func appendValue(b []byte, v any) []byte {
	switch v := v.(type) {
	case Printer:
		if isNilPointer(v) {
			return append(b, "<nil>"...)
		}
		return v.AppendTo(b)
	case string:
		return append(b, v...)
	case []byte:
		return append(b, v...)
	case error:
		if isNilPointer(v) {
			return append(b, "<nil>"...)
		}
		return append(b, v.Error()...)
	case fmt.Stringer:
		if isNilPointer(v) {
			return append(b, "<nil>"...)
		}
		return append(b, v.String()...)
	case bool:
		return strconv.AppendBool(b, v)
	case int:
		return strconv.AppendInt(b, int64(v), 10)
	case int64:
		return strconv.AppendInt(b, v, 10)
	case int32:
		return strconv.AppendInt(b, int64(v), 10)
	case uint:
		return strconv.AppendUint(b, uint64(v), 10)
	case uint64:
		return strconv.AppendUint(b, v, 10)
	case float64:
		return strconv.AppendFloat(b, v, 'g', -1, 64)
	case float32:
		return strconv.AppendFloat(b, float64(v), 'g', -1, 32)
	}
	return fmt.Append(b, v)
}

// isNilPointer reports whether v holds a nil pointer, whose methods would
// dereference it.
func isNilPointer(v any) bool {
	rv := reflect.ValueOf(v)
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}

// formatting marks tokens that only colored sinks receive.
type formatting interface {
	appendFormatting(b []byte) []byte
}

func (c Color) appendFormatting(b []byte) []byte { return append(b, c...) }

// pad separates the last value of a colored line from its reset code.
type pad string

func (p pad) appendFormatting(b []byte) []byte { return append(b, p...) }

// render builds the bytes one sink receives for tokens.
func render(b []byte, colored bool, tokens []any) []byte {
	for _, t := range tokens {
		if f, ok := t.(formatting); ok {
			if colored {
				b = f.appendFormatting(b)
			}
			continue
		}
		b = appendValue(b, t)
	}
	return b
}

// Dependency injection points for testing outputs.
var (
	outStdout io.Writer = os.Stdout
	outStderr io.Writer = os.Stderr
)

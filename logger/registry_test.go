package logger

import (
	"bytes"
	"errors"
	"io"
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/hashicorp/go-multierror"
	"github.com/prometheus/client_golang/prometheus/testutil"
)

var errDiskFull = errors.New("disk full")

type failWriter struct{}

func (*failWriter) Write([]byte) (int, error) { return 0, errDiskFull }

type shortWriter struct{}

func (*shortWriter) Write(p []byte) (int, error) { return len(p) / 2, nil }

// orderWriter records the name of every sink that was written to.
type orderWriter struct {
	name string
	log  *[]string
}

func (w *orderWriter) Write(p []byte) (int, error) {
	*w.log = append(*w.log, w.name)
	return len(p), nil
}

func newTestLogger(t *testing.T, build Build, sinks ...Entry) *Logger {
	t.Helper()
	return New(Config{DisableStdout: true, Build: build, Sinks: sinks})
}

func TestEntryEqual_IgnoresColored(t *testing.T) {
	var a, b bytes.Buffer
	if !(Entry{Dest: &a, Colored: true}).Equal(Entry{Dest: &a}) {
		t.Error("entries with the same destination should be equal")
	}
	if (Entry{Dest: &a}).Equal(Entry{Dest: &b}) {
		t.Error("entries with different destinations should differ")
	}
	if (Entry{Dest: &a}).Equal(Entry{}) {
		t.Error("nil destination should only equal nil")
	}
}

func TestEntryEqual_UncomparableDestination(t *testing.T) {
	w := sliceWriter{}
	if (Entry{Dest: w}).Equal(Entry{Dest: w}) {
		t.Error("uncomparable destinations have no identity")
	}
}

type sliceWriter []byte

func (sliceWriter) Write(p []byte) (int, error) { return len(p), nil }

type wrapWriter struct{ w io.Writer }

func (ww wrapWriter) Write(p []byte) (int, error) { return ww.w.Write(p) }

func TestEntryEqual_UncomparableField(t *testing.T) {
	e := Entry{Dest: wrapWriter{w: sliceWriter{}}}
	if e.Equal(e) {
		t.Error("a destination holding an uncomparable value has no identity")
	}

	l := newTestLogger(t, DebugBuild, e)
	l.Remove(e)
	if l.Len() != 1 {
		t.Fatalf("uncomparable destination must not match on Remove, got %d entries", l.Len())
	}

	var buf bytes.Buffer
	if !(Entry{Dest: wrapWriter{w: &buf}}).Equal(Entry{Dest: wrapWriter{w: &buf}}) {
		t.Error("wrappers of the same pointer should be equal")
	}
}

func TestWriteAll_RegistrationOrder(t *testing.T) {
	var got []string
	a := &orderWriter{name: "a", log: &got}
	b := &orderWriter{name: "b", log: &got}
	c := &orderWriter{name: "c", log: &got}

	l := newTestLogger(t, DebugBuild)
	l.Add(Entry{Dest: a})
	l.Add(Entry{Dest: b})
	l.Add(Entry{Dest: c})
	l.Remove(Entry{Dest: b})
	l.Add(Entry{Dest: b})

	if err := l.WriteAll("x"); err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff([]string{"a", "c", "b"}, got); diff != "" {
		t.Fatalf("write order mismatch (-want +got):\n%s", diff)
	}
}

func TestRemove_FirstMatchOnly(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, DebugBuild, Entry{Dest: &buf, Colored: true}, Entry{Dest: &buf})

	l.Remove(Entry{Dest: &buf})

	entries := l.Entries()
	if len(entries) != 1 {
		t.Fatalf("expected 1 entry left, got %d", len(entries))
	}
	if entries[0].Colored {
		t.Fatal("the first (colored) registration should have been removed")
	}
}

func TestRemove_UnregisteredIsNoop(t *testing.T) {
	var a, b bytes.Buffer
	l := newTestLogger(t, DebugBuild, Entry{Dest: &a})
	l.Remove(Entry{Dest: &b})
	if l.Len() != 1 {
		t.Fatalf("expected registry to be unchanged, got %d entries", l.Len())
	}
}

func TestWriteAll_ColorTokensSkippedForPlainSinks(t *testing.T) {
	var colored, plain bytes.Buffer
	l := newTestLogger(t, DebugBuild, Entry{Dest: &colored, Colored: true}, Entry{Dest: &plain})

	if err := l.WriteAll(Red, "text", ResetCode, 7); err != nil {
		t.Fatal(err)
	}
	if got, want := colored.String(), "\u001b[31mtext\u001b[0m7"; got != want {
		t.Errorf("colored sink = %q, want %q", got, want)
	}
	if got, want := plain.String(), "text7"; got != want {
		t.Errorf("plain sink = %q, want %q", got, want)
	}
}

func TestWriteAll_DuplicateRegistrationWritesTwice(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, DebugBuild, Entry{Dest: &buf}, Entry{Dest: &buf})
	if err := l.WriteAll("x"); err != nil {
		t.Fatal(err)
	}
	if buf.String() != "xx" {
		t.Fatalf("expected two writes, got %q", buf.String())
	}
}

func TestWriteAll_FailingSinkDoesNotStopOthers(t *testing.T) {
	var before, after bytes.Buffer
	l := newTestLogger(t, DebugBuild,
		Entry{Dest: &before},
		Entry{Dest: &failWriter{}},
		Entry{Dest: &shortWriter{}},
		Entry{Dest: &after},
	)

	err := l.WriteAll("line\n")
	if err == nil {
		t.Fatal("expected an error from the failing sinks")
	}
	var merr *multierror.Error
	if !errors.As(err, &merr) || len(merr.Errors) != 2 {
		t.Fatalf("expected 2 aggregated errors, got %v", err)
	}
	if !errors.Is(err, errDiskFull) || !errors.Is(err, io.ErrShortWrite) {
		t.Fatalf("expected both causes to be wrapped, got %v", err)
	}
	if before.String() != "line\n" || after.String() != "line\n" {
		t.Fatalf("healthy sinks should receive the line, got %q and %q", before.String(), after.String())
	}
	if got := testutil.ToFloat64(l.metrics.WriteErrors); got != 2 {
		t.Fatalf("write error counter = %v, want 2", got)
	}
}

func TestWriteSelected_IgnoresRegistry(t *testing.T) {
	var registered, selected bytes.Buffer
	l := newTestLogger(t, DebugBuild, Entry{Dest: &registered})

	if err := l.WriteSelected([]Entry{{Dest: &selected}}, Blue, "only me"); err != nil {
		t.Fatal(err)
	}
	if registered.Len() != 0 {
		t.Errorf("registered sink should not be written, got %q", registered.String())
	}
	if selected.String() != "only me" {
		t.Errorf("selected sink = %q, want %q", selected.String(), "only me")
	}
}

func TestEntries_ReturnsCopy(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, DebugBuild, Entry{Dest: &buf})
	entries := l.Entries()
	entries[0] = Entry{}
	if l.Entries()[0].Dest == nil {
		t.Fatal("Entries should not expose the registry storage")
	}
}

func TestAppendValue(t *testing.T) {
	tests := []struct {
		name string
		v    any
		want string
	}{
		{"string", "s", "s"},
		{"bytes", []byte("b"), "b"},
		{"int", 42, "42"},
		{"negative", int64(-7), "-7"},
		{"uint", uint(3), "3"},
		{"float", 1.5, "1.5"},
		{"bool", true, "true"},
		{"error", errors.New("bad"), "bad"},
		{"stringer", InfoLevel, "info"},
		{"printer", point{1, 2}, "(1,2)"},
		{"struct", struct{ A int }{1}, "{1}"},
		{"nil", nil, "<nil>"},
		{"nil error", (*pathError)(nil), "<nil>"},
		{"nil stringer", (*url.URL)(nil), "<nil>"},
		{"nil printer", (*pointer)(nil), "<nil>"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := string(appendValue(nil, tt.v)); got != tt.want {
				t.Fatalf("appendValue(%v) = %q, want %q", tt.v, got, tt.want)
			}
		})
	}
}

type pathError struct{ path string }

func (e *pathError) Error() string { return "bad path " + e.path }

type pointer struct{ p point }

func (p *pointer) AppendTo(b []byte) []byte { return p.p.AppendTo(b) }

func TestError_TypedNilValue(t *testing.T) {
	var buf bytes.Buffer
	l := newTestLogger(t, DebugBuild, Entry{Dest: &buf})
	var u *url.URL
	l.Error("url", u)
	if got, want := buf.String(), "==> url <nil>\n"; got != want {
		t.Fatalf("got %q, want %q", got, want)
	}
}

type point struct{ x, y int }

func (p point) AppendTo(b []byte) []byte {
	b = append(b, '(')
	b = appendValue(b, p.x)
	b = append(b, ',')
	b = appendValue(b, p.y)
	return append(b, ')')
}

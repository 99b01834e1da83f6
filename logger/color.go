package logger

import (
	"strings"
)

// Color is an ANSI SGR escape sequence. Colors are formatting tokens: sinks
// registered without colored output never receive them.
type Color string

// Predefined colors.
const (
	Red       Color = "\u001b[31m"
	Green     Color = "\u001b[32m"
	Yellow    Color = "\u001b[33m"
	Blue      Color = "\u001b[34m"
	Purple    Color = "\u001b[35m"
	Cyan      Color = "\u001b[36m"
	Grey      Color = "\u001b[37m"
	White     Color = "\u001b[97m"
	ResetCode Color = "\u001b[0m"
)

// DefaultPrefix is the text written at the start of every line.
const DefaultPrefix = "==> "

var colorNames = map[string]Color{
	"red":    Red,
	"green":  Green,
	"yellow": Yellow,
	"blue":   Blue,
	"purple": Purple,
	"cyan":   Cyan,
	"grey":   Grey,
	"gray":   Grey,
	"white":  White,
	"reset":  ResetCode,
}

// ColorByName resolves a color name ("red", "grey", ...) or a raw SGR
// parameter list such as "1;31" or "38;5;208".
func ColorByName(name string) (Color, bool) {
	name = strings.ToLower(strings.TrimSpace(name))
	if c, ok := colorNames[name]; ok {
		return c, true
	}
	if isSGRParams(name) {
		return Color("\u001b[" + name + "m"), true
	}
	return "", false
}

func isSGRParams(s string) bool {
	if s == "" {
		return false
	}
	for _, part := range strings.Split(s, ";") {
		if part == "" || len(part) > 3 {
			return false
		}
		for i := 0; i < len(part); i++ {
			if part[i] < '0' || part[i] > '9' {
				return false
			}
		}
	}
	return true
}

// OutputSettings is the color scheme of a Logger. It is supplied wholesale
// when the Logger is built and never changes afterwards.
type OutputSettings struct {
	Info    Color
	Warn    Color
	Success Color
	Notify  Color
	Error   Color

	// PrefixColor colors Prefix.
	PrefixColor Color
	// Prefix starts every line.
	// Default: "==> "
	Prefix string
	// Reset ends the colored part of a line.
	Reset Color
}

// DefaultSettings returns the default color scheme.
func DefaultSettings() OutputSettings {
	return OutputSettings{
		Info:        Blue,
		Warn:        Yellow,
		Success:     Green,
		Notify:      Purple,
		Error:       Red,
		PrefixColor: Grey,
		Prefix:      DefaultPrefix,
		Reset:       ResetCode,
	}
}

// Color returns the color configured for level.
func (s OutputSettings) Color(level Level) Color {
	switch level {
	case InfoLevel:
		return s.Info
	case WarnLevel:
		return s.Warn
	case SuccessLevel:
		return s.Success
	case NotifyLevel:
		return s.Notify
	case ErrorLevel:
		return s.Error
	}
	return ""
}

// StripANSI removes ANSI escape sequences of the form ESC [ ... m from s.
func StripANSI(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}
	var result strings.Builder
	result.Grow(len(s))
	inEscape := false
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			inEscape = true
			continue
		}
		if inEscape {
			if s[i] == 'm' {
				inEscape = false
			}
			continue
		}
		result.WriteByte(s[i])
	}
	return result.String()
}

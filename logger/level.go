package logger

import (
	"os"
	"strings"
	"sync"
)

// Level selects the color of a line.
type Level int

const (
	// InfoLevel is for diagnostic chatter. Debug builds only by default.
	InfoLevel Level = iota
	// WarnLevel is for suspicious conditions. Debug builds only by default.
	WarnLevel
	// SuccessLevel reports a completed step.
	SuccessLevel
	// NotifyLevel draws attention to an event.
	NotifyLevel
	// ErrorLevel reports a failure.
	ErrorLevel
)

// AllLevels returns all supported levels.
func AllLevels() []Level {
	return []Level{InfoLevel, WarnLevel, SuccessLevel, NotifyLevel, ErrorLevel}
}

func (l Level) String() string {
	switch l {
	case InfoLevel:
		return "info"
	case WarnLevel:
		return "warn"
	case SuccessLevel:
		return "success"
	case NotifyLevel:
		return "notify"
	case ErrorLevel:
		return "error"
	}
	return "unknown"
}

// DefaultScope returns the scope used when a call site does not pick one.
func (l Level) DefaultScope() Scope {
	switch l {
	case InfoLevel, WarnLevel:
		return DebugOnly
	}
	return All
}

// Scope names the builds in which a call emits.
type Scope int

const (
	// DebugOnly emits in debug builds.
	DebugOnly Scope = iota
	// ReleaseOnly emits in release builds.
	ReleaseOnly
	// All emits in every build.
	All
)

func (s Scope) String() string {
	switch s {
	case DebugOnly:
		return "debug-only"
	case ReleaseOnly:
		return "release-only"
	case All:
		return "all"
	}
	return "unknown"
}

// Active reports whether a call with scope s writes anything in a debug
// (debug == true) or release build.
func (s Scope) Active(debug bool) bool {
	switch s {
	case All:
		return true
	case DebugOnly:
		return debug
	case ReleaseOnly:
		return !debug
	}
	return false
}

// Build is the build mode a Logger gates its calls against.
type Build int

const (
	// BuildDefault resolves to the process build mode.
	BuildDefault Build = iota
	// DebugBuild enables DebugOnly calls.
	DebugBuild
	// ReleaseBuild enables ReleaseOnly calls.
	ReleaseBuild
)

func (b Build) String() string {
	switch b {
	case DebugBuild:
		return "debug"
	case ReleaseBuild:
		return "release"
	}
	return "default"
}

// ParseBuild parses "debug" or "release". Anything else yields BuildDefault
// and false.
func ParseBuild(s string) (Build, bool) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return DebugBuild, true
	case "release":
		return ReleaseBuild, true
	}
	return BuildDefault, false
}

// buildMode is set at link time:
//
//	go build -ldflags "-X github.com/mordilloSan/go-sinklog/logger.buildMode=release"
var buildMode string

// processBuild is read once; it never changes for the life of the process.
var processBuild = sync.OnceValue(func() Build {
	if b, ok := ParseBuild(buildMode); ok {
		return b
	}
	if b, ok := ParseBuild(os.Getenv("LOGGER_BUILD")); ok {
		return b
	}
	return DebugBuild
})

// ProcessBuild returns the build mode of the running binary.
func ProcessBuild() Build {
	return processBuild()
}

func (b Build) resolve() Build {
	if b == BuildDefault {
		return ProcessBuild()
	}
	return b
}

// Package logger provides a process-wide, leveled, colored logger that
// writes every line to an ordered set of sinks.
//
// # Sinks
//
// A sink is any io.Writer registered with a flag saying whether it receives
// ANSI colors. Console streams are usually colored; files and buffers are
// usually plain. Each line reaches each sink in one Write call, in
// registration order:
//
//	<prefix-color><prefix><level-color><value1> <value2> ... <valueN> <reset>\n
//
// Plain sinks receive the same line without the color codes and without the
// space before the reset code:
//
//	==> value1 value2\n
//
// The Logger keeps references to sinks but does not own them (except the
// file it opens for Config.FilePath).
//
// # Levels and build modes
//
// Info and Warn emit only in debug builds; Success, Notify and Error emit in
// every build. A call site can pick another scope:
//
//	logger.In(logger.All).Info("visible in release builds")
//	logger.In(logger.ReleaseOnly).Notify("release only")
//
// The build mode is read once per process: first from the link-time
// variable buildMode, then from LOGGER_BUILD ("debug" or "release"); it
// defaults to debug.
//
//	go build -ldflags "-X github.com/mordilloSan/go-sinklog/logger.buildMode=release"
//
// A call whose scope is inactive returns before touching any sink.
//
// # Usage
//
// Initialize once at startup:
//
//	logger.Init(logger.Config{})                     // colored stdout
//	logger.Init(logger.Config{DisableStdout: true})  // no sinks
//	logger.Init(logger.Config{FilePath: "app.log"})  // stdout + plain file
//	defer logger.Close()
//
// Level functions panic with ErrNotInitialized before the first Init.
//
// Attach sinks for the duration of a scope:
//
//	r := logger.Register(logger.Entry{Dest: &buf})
//	defer r.Close()
//
// Close removes exactly the registrations it made, on every exit path.
//
// # Failures
//
// A sink that fails to write does not stop the others. Level functions hand
// the aggregated error to Config.ErrorHandler, or print it on stderr;
// Logger.Log returns it.
//
// # Concurrency
//
// There is no internal locking. Programs that log from several goroutines
// must serialize all calls into the package themselves.
package logger

package logger

import (
	"os"

	"github.com/spf13/afero"
)

// OpenFile opens path on fs for appending, creating it if needed. The
// returned file can be registered as a sink; the caller closes it.
func OpenFile(fs afero.Fs, path string) (afero.File, error) {
	return fs.OpenFile(path, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0644)
}

// Package simplelogger is linediff's debug log: an append-only file named by an environment variable.
package simplelogger

import (
	"bytes"
	"fmt"
	"os"
	"sync"
	"time"
)

// EnvLogFile names the environment variable holding the log file path.
const EnvLogFile = "LINEDIFF_LOG_FILE"

const timeLayout = "2006-01-02T15:04:05.000Z07:00"

var (
	mu  sync.Mutex
	now = time.Now
)

// Enabled reports whether EnvLogFile is set. Callers can skip building expensive messages when it is false.
func Enabled() bool {
	return os.Getenv(EnvLogFile) != ""
}

// Log is a minimal printf-style logger. It appends one timestamped line (per line of formatted output) to the file named by LINEDIFF_LOG_FILE.
//
// If LINEDIFF_LOG_FILE is unset/empty or the path can't be opened as a file, Log is a no-op.
func Log(format string, args ...any) {
	path := os.Getenv(EnvLogFile)
	if path == "" {
		return
	}

	// Serialize open/write/close to reduce interleaving within a single process.
	mu.Lock()
	defer mu.Unlock()

	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return
	}
	defer f.Close()

	msg := fmt.Sprintf(format, args...)
	msg = trimOneNewline(msg)
	stamp := now().Format(timeLayout)

	var b bytes.Buffer
	for _, line := range bytes.Split([]byte(msg), []byte{'\n'}) {
		b.WriteString(stamp)
		b.WriteByte(' ')
		b.Write(line)
		b.WriteByte('\n')
	}
	_, _ = f.Write(b.Bytes())
}

func trimOneNewline(s string) string {
	if n := len(s); n > 0 && s[n-1] == '\n' {
		return s[:n-1]
	}
	return s
}

package logtail

import (
	"errors"
	"fmt"
	"os"
	"strings"
)

// Read returns at most maxLines from the end of the file at path. A
// non-positive maxLines returns every line. A missing file yields no
// lines and no error, since the log may not exist yet.
func Read(path string, maxLines int) ([]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return nil, nil
		}
		return nil, fmt.Errorf("read log: %w", err)
	}

	text := strings.TrimSuffix(string(data), "\n")
	if text == "" {
		return nil, nil
	}

	lines := strings.Split(text, "\n")
	if maxLines > 0 && len(lines) > maxLines {
		lines = lines[len(lines)-maxLines:]
	}
	return lines, nil
}

// LevelOf reports the log level token found in a line written by the
// application's tint handler ("ERR", "WRN", "INF", "DBG"), or an
// empty string when none is present.
func LevelOf(line string) string {
	for _, token := range []string{"ERR", "WRN", "INF", "DBG"} {
		if strings.Contains(line, " "+token+" ") {
			return token
		}
	}
	return ""
}

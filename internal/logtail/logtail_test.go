package logtail

import (
	"fmt"
	"os"
	"path/filepath"
	"reflect"
	"strings"
	"testing"
)

func TestRead(t *testing.T) {
	tmpDir := t.TempDir()
	logPath := filepath.Join(tmpDir, "test.log")

	var content strings.Builder
	var all []string
	for i := 1; i <= 10; i++ {
		line := fmt.Sprintf("line %d", i)
		content.WriteString(line + "\n")
		all = append(all, line)
	}
	if err := os.WriteFile(logPath, []byte(content.String()), 0o644); err != nil {
		t.Fatalf("write log: %v", err)
	}

	tests := []struct {
		name     string
		maxLines int
		expected []string
	}{
		{"read all (0)", 0, all},
		{"read all (negative)", -1, all},
		{"read partial (5)", 5, all[5:]},
		{"read exactly all (10)", 10, all},
		{"read more than exists (20)", 20, all},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := Read(logPath, tt.maxLines)
			if err != nil {
				t.Fatalf("Read() error = %v", err)
			}
			if !reflect.DeepEqual(got, tt.expected) {
				t.Errorf("Read() = %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestRead_MissingFile(t *testing.T) {
	lines, err := Read(filepath.Join(t.TempDir(), "absent.log"), 100)
	if err != nil {
		t.Fatalf("Read() error = %v, want nil for missing file", err)
	}
	if lines != nil {
		t.Fatalf("Read() = %v, want nil", lines)
	}
}

func TestLevelOf(t *testing.T) {
	tests := []struct {
		line string
		want string
	}{
		{"15:04:05 INF initial load complete count=20", "INF"},
		{"15:04:05 WRN page load failed offset=40", "WRN"},
		{"15:04:05 ERR detail fetch failed id=25", "ERR"},
		{"15:04:05 DBG snapshot", "DBG"},
		{"no level here", ""},
		{"", ""},
	}
	for _, tt := range tests {
		if got := LevelOf(tt.line); got != tt.want {
			t.Errorf("LevelOf(%q) = %q, want %q", tt.line, got, tt.want)
		}
	}
}

package utils

import (
	"fmt"
	"path/filepath"
	"time"
)

// SessionName returns a run directory name:
//
//	<prefix>_YYYYMMDD_HHMMSS
func SessionName(prefix string, now time.Time) string {
	return fmt.Sprintf("%s_%s", prefix, now.Format("20060102_150405"))
}

// OutputDir resolves where a run writes its files: dir itself, or a
// timestamped child of dir when prefix is set.
func OutputDir(dir, prefix string, now time.Time) string {
	if dir == "" {
		dir = "."
	}
	if prefix == "" {
		return dir
	}
	return filepath.Join(dir, SessionName(prefix, now))
}

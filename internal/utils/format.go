package utils

import (
	"fmt"
	"time"
)

func IntPtr(i int) *int {
	return &i
}

func Float64Ptr(f float64) *float64 {
	return &f
}

// FormatSize renders a byte count the way upload widgets do, e.g.
// "2.4 MB" or "512.0 KB".
func FormatSize(bytes int64) string {
	switch {
	case bytes >= 1<<20:
		return fmt.Sprintf("%.1f MB", float64(bytes)/(1<<20))
	case bytes >= 1<<10:
		return fmt.Sprintf("%.1f KB", float64(bytes)/(1<<10))
	default:
		return fmt.Sprintf("%d B", bytes)
	}
}

// FormatDate renders a time as "Jan 15, 2025", the display format for
// document and payment dates.
func FormatDate(t time.Time) string {
	return t.Format("Jan 2, 2006")
}

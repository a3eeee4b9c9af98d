package formatter

import (
	"regexp"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

var ansiPattern = regexp.MustCompile(`\x1b\[[0-9;]*[a-zA-Z]`)

// stripANSI removes ANSI escape codes so assertions are terminal-independent.
func stripANSI(s string) string {
	return ansiPattern.ReplaceAllString(s, "")
}

func TestFormatDuration(t *testing.T) {
	tests := []struct {
		name string
		in   time.Duration
		want string
	}{
		{"zero", 0, "0 seconds"},
		{"sub-second", 400 * time.Millisecond, "0 seconds"},
		{"one second", time.Second, "1 second"},
		{"seconds", 42 * time.Second, "42 seconds"},
		{"one minute", 90 * time.Second, "1 minute"},
		{"minutes", 45 * time.Minute, "45 minutes"},
		{"one hour", time.Hour, "1 hour"},
		{"hours", 3 * time.Hour, "3 hours"},
		{"one day", 24 * time.Hour, "1 day"},
		{"days", 72 * time.Hour, "3 days"},
		{"negative", -3 * time.Hour, "3 hours"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, FormatDuration(tt.in))
		})
	}
}

func TestFormatSeconds(t *testing.T) {
	assert.Equal(t, "1 hour", FormatSeconds(5400))
	assert.Equal(t, "2 hours", FormatSeconds(7200.4))
	assert.Equal(t, "0 seconds", FormatSeconds(0))
}

func TestFormatHours(t *testing.T) {
	assert.Equal(t, "0 hours", FormatHours(0))
	assert.Equal(t, "1 hour", FormatHours(1))
	assert.Equal(t, "4 hours", FormatHours(4))
	assert.Equal(t, "1,204 hours", FormatHours(1204))
}

func TestShare(t *testing.T) {
	assert.Equal(t, 0.0, Share(10, 0))
	assert.Equal(t, 0.25, Share(25, 100))
}

func TestRenderBox_IncludesTitle(t *testing.T) {
	out := stripANSI(RenderBox("Account", "hello"))
	assert.Contains(t, out, "ACCOUNT")
	assert.Contains(t, out, "hello")
	assert.Contains(t, out, "╭")
}

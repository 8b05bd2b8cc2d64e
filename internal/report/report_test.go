package report

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"waterbar/internal/anim"
	"waterbar/internal/loop"
)

func TestSummary(t *testing.T) {
	st := anim.NewState()
	st.Progress = 42
	out := Summary(loop.Stats{Frames: 1200, Skipped: 3, Failed: 1, Overruns: 7}, st)

	tests := []struct {
		label, value string
	}{
		{"frames", "1200"},
		{"skipped", "3"},
		{"failed", "1"},
		{"overruns", "7"},
		{"phase", "running"},
		{"progress", "42%"},
	}

	lines := strings.Split(out, "\n")
	for _, tt := range tests {
		found := false
		for _, line := range lines {
			if strings.Contains(line, tt.label) && strings.Contains(line, tt.value) {
				found = true
				break
			}
		}
		assert.True(t, found, "row %s=%s missing from\n%s", tt.label, tt.value, out)
	}
	assert.Contains(t, out, "value")
}

func TestPrint(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, Print(&buf, loop.Stats{}, anim.NewState()))
	assert.True(t, strings.HasSuffix(buf.String(), "\n"))
	assert.Contains(t, buf.String(), "frames")
}

package logger

import (
	"bytes"
	"os"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLevelFilter(t *testing.T) {
	buf := &bytes.Buffer{}
	SetOutput(buf)
	SetLevel(WARN)
	defer func() {
		SetLevel(INFO)
		SetOutput(os.Stdout)
	}()

	Infof("hidden %d", 1)
	Debug("hidden too")
	assert.Empty(t, buf.String())

	Warnf("resize rejected: %d", 0)
	require.Contains(t, buf.String(), "[WARN] ")
	require.Contains(t, buf.String(), "resize rejected: 0")
}

func TestParseLevel(t *testing.T) {
	l, ok := ParseLevel("debug")
	require.True(t, ok)
	assert.Equal(t, DEBUG, l)

	l, ok = ParseLevel("verbose")
	assert.False(t, ok)
	assert.Equal(t, INFO, l)
	assert.Equal(t, "ERROR", ERROR.String())
}

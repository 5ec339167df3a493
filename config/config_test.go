package config

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	src := `# dict settings
capacity 64
hash-function weighted
full-scan yes
`
	p, err := Parse(strings.NewReader(src))
	require.NoError(t, err)
	assert.Equal(t, 64, p.Capacity)
	assert.Equal(t, "weighted", p.HashFunction)
	assert.True(t, p.FullScan)
	assert.Equal(t, "info", p.LogLevel)
}

func TestParseDefaults(t *testing.T) {
	p, err := Parse(strings.NewReader(""))
	require.NoError(t, err)
	assert.Equal(t, defaults(), p)
}

func TestParseBadInt(t *testing.T) {
	_, err := Parse(strings.NewReader("capacity lots\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "config capacity")
}

func TestSetup(t *testing.T) {
	old := Properties
	defer func() {
		Properties = old
	}()
	require.NoError(t, Setup(strings.NewReader("Capacity 8\nfull-scan no\n")))
	assert.Equal(t, 8, Properties.Capacity)
	assert.False(t, Properties.FullScan)
}

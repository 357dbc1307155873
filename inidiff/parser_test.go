package inidiff

import (
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeINI(t *testing.T, dir, name, content string) string {
	t.Helper()
	p := filepath.Join(dir, name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0644))
	return p
}

func TestParseReaderBasic(t *testing.T) {
	cfg, err := ParseReader(strings.NewReader(`[Engine]
Engine Type = DEFAULT_FRANKENSO
Launch Control Enabled = true

[Sensors]
MAP Sensor = MPX4250
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"Engine", "Sensors"}, cfg.Sections())
	assert.Equal(t, []string{"Engine Type", "Launch Control Enabled"}, cfg.Keys("Engine"))

	s, ok := cfg.Lookup("Engine", "Engine Type")
	require.True(t, ok)
	assert.Equal(t, Setting{Value: "DEFAULT_FRANKENSO", Line: 2}, s)

	s, ok = cfg.Lookup("Sensors", "MAP Sensor")
	require.True(t, ok)
	assert.Equal(t, 6, s.Line)
	assert.Equal(t, 3, cfg.KeyCount())
}

func TestParseReaderSplitsAtFirstEquals(t *testing.T) {
	cfg, err := ParseReader(strings.NewReader("[A]\n  expr =  a=b=c  \n"))
	require.NoError(t, err)

	s, ok := cfg.Lookup("A", "expr")
	require.True(t, ok)
	assert.Equal(t, "a=b=c", s.Value)
}

func TestParseReaderIgnoresNoise(t *testing.T) {
	cfg, err := ParseReader(strings.NewReader(`orphan = before any section
[A]
no equals sign here
; comment = still a key
key=value
`))
	require.NoError(t, err)

	assert.Equal(t, []string{"A"}, cfg.Sections())
	assert.Equal(t, []string{"; comment", "key"}, cfg.Keys("A"))
}

func TestParseReaderRepeatedKeyKeepsLastValueAndLine(t *testing.T) {
	cfg, err := ParseReader(strings.NewReader("[A]\nx=1\ny=2\nx=3\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"x", "y"}, cfg.Keys("A"))
	s, _ := cfg.Lookup("A", "x")
	assert.Equal(t, Setting{Value: "3", Line: 4}, s)
}

// Re-declaring a section discards the keys read for it so far while the
// section keeps its first position.
func TestParseReaderRedeclaredSectionResetsKeys(t *testing.T) {
	cfg, err := ParseReader(strings.NewReader("[A]\nx=1\n[B]\ny=2\n[A]\nz=3\n"))
	require.NoError(t, err)

	assert.Equal(t, []string{"A", "B"}, cfg.Sections())
	assert.Equal(t, []string{"z"}, cfg.Keys("A"))
	_, ok := cfg.Lookup("A", "x")
	assert.False(t, ok)
}

func TestParseReaderEmptySectionName(t *testing.T) {
	cfg, err := ParseReader(strings.NewReader("[]\nk=v\n"))
	require.NoError(t, err)
	assert.True(t, cfg.HasSection(""))
}

func TestParseReaderLineNumbersCountBlankLinesAndCRLF(t *testing.T) {
	cfg, err := ParseReader(strings.NewReader("\r\n[A]\r\n\r\nk = v\r\n"))
	require.NoError(t, err)
	s, _ := cfg.Lookup("A", "k")
	assert.Equal(t, 4, s.Line)
}

func TestParseReaderStripsLeadingBOM(t *testing.T) {
	cfg, err := ParseReader(strings.NewReader("\ufeff[A]\nk=v\n"))
	require.NoError(t, err)
	assert.Equal(t, []string{"A"}, cfg.Sections())
}

func TestParseReaderRejectsInvalidUTF8(t *testing.T) {
	_, err := ParseReader(strings.NewReader("[A]\nk=\xff\n"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}

func TestParseMissingFile(t *testing.T) {
	_, err := Parse(filepath.Join(t.TempDir(), "missing.ini"))
	assert.ErrorIs(t, err, fs.ErrNotExist)
}

func TestParseFile(t *testing.T) {
	p := writeINI(t, t.TempDir(), "a.ini", "[A]\nfoo=bar\n")
	cfg, err := Parse(p)
	require.NoError(t, err)
	assert.Equal(t, 1, cfg.Len())
	assert.Nil(t, cfg.Keys("missing"))
}

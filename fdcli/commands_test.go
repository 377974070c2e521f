package main

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	tests := []struct {
		line   string
		code   int
		arg    string
		format string
	}{
		{"quit", QUIT, "", ""},
		{"diff  नमस्ते ", DIFF, "नमस्ते", ""},
		{"words:starts-with list.txt ka", WORDS, "list.txt ka", "starts-with"},
		{"Glyphs:diffs", GLYPHS, "", "diffs"},
		{"anchors acutecomb", ANCHORS, "acutecomb", ""},
		{"clusters:nukta deva.json Consonants, Reph", CLUSTERS, "deva.json Consonants, Reph", "nukta"},
		{"numbers:lakh 6 deva", NUMBERS, "6 deva", "lakh"},
		{"frobnicate now", HELP, "", ""},
	}
	for _, tt := range tests {
		op := parseCommand(tt.line)
		assert.Equal(t, tt.code, op.code, tt.line)
		assert.Equal(t, tt.arg, op.arg, tt.line)
		assert.Equal(t, tt.format, op.format, tt.line)
	}
}

func TestEveryCommandHasFunction(t *testing.T) {
	for name, code := range opMap {
		_, ok := commandFn[code]
		assert.True(t, ok, name)
	}
}

func TestQuit(t *testing.T) {
	intp := &Intp{}
	quit, err := intp.execute(&Op{code: QUIT})
	assert.NoError(t, err)
	assert.True(t, quit)
	_, err = intp.execute(&Op{code: DIFF})
	assert.ErrorIs(t, err, errNoText)
}

func TestNumbersArguments(t *testing.T) {
	intp := &Intp{}
	_, err := intp.execute(parseCommand("numbers many"))
	assert.Error(t, err)
	_, err = intp.execute(parseCommand("numbers 3 hebr"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no digits")
	path := filepath.Join(t.TempDir(), "latin.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"BaseNames": [], "UsesLakh": ["false"]}`), 0o644))
	_, err = intp.execute(parseCommand("numbers 3 " + path))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "no digits")
}

func TestScriptDigits(t *testing.T) {
	intp := &Intp{}
	path := filepath.Join(t.TempDir(), "deva.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"BaseNames": [],
		"Numbers": ["०", "१", "२", "३", "४", "५", "६", "७", "८", "९"]}`), 0o644))
	digits, lakh, err := intp.scriptDigits(path)
	require.NoError(t, err)
	assert.Equal(t, '०', digits[0])
	assert.True(t, lakh)
	digits, lakh, err = intp.scriptDigits("lao")
	require.NoError(t, err)
	assert.Equal(t, rune(0x0ED0), digits[0])
	assert.False(t, lakh)
}

func TestClustersArguments(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	intp := &Intp{}
	_, err := intp.execute(parseCommand("clusters"))
	assert.Error(t, err)
	path := filepath.Join(t.TempDir(), "clusters.json")
	require.NoError(t, os.WriteFile(path, []byte(`{"BaseNames": ["Consonants"], "Consonants": ["k"]}`), 0o644))
	_, err = intp.execute(parseCommand("clusters " + path))
	assert.NoError(t, err, "without base group the groups are listed")
	_, err = intp.execute(parseCommand("clusters " + path + " Vowels"))
	assert.Error(t, err)
}

package compare

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/npillmayer/fontdiff"
	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/image/font/gofont/gomono"
	"golang.org/x/image/font/gofont/goregular"
)

func loadFont(t *testing.T, name string, data []byte) *fontdiff.Font {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, data, 0o644))
	f, err := fontdiff.Load(path, fontdiff.WithoutIntrospection())
	require.NoError(t, err)
	return f
}

func drain[T any](ch <-chan T) []T {
	var items []T
	for item := range ch {
		items = append(items, item)
	}
	return items
}

func TestGlyphsSameFont(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.compare")
	defer teardown()
	//
	a := loadFont(t, "a.ttf", goregular.TTF)
	b := loadFont(t, "b.ttf", goregular.TTF)
	items := drain(Glyphs(context.Background(), a, b, Options{}))
	require.Len(t, items, len(a.GlyphNames()))
	for _, it := range items {
		assert.False(t, it.HasDiff(false), "glyph %s", it.Name)
		assert.Equal(t, it.WidthA, it.WidthB)
	}
	diffs := drain(Glyphs(context.Background(), a, b, Options{DiffsOnly: true}))
	assert.Empty(t, diffs)
}

func TestGlyphsDifferentFonts(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.compare")
	defer teardown()
	//
	regular := loadFont(t, "regular.ttf", goregular.TTF)
	mono := loadFont(t, "mono.ttf", gomono.TTF)
	all := drain(Glyphs(context.Background(), regular, mono, Options{UnicodesOnly: true}))
	require.NotEmpty(t, all)
	assert.Less(t, len(all), len(regular.GlyphNames()), ".notdef is not mapped")
	for _, it := range all {
		assert.NotZero(t, it.Unicode, "glyph %s", it.Name)
	}
	diffs := drain(Glyphs(context.Background(), regular, mono, Options{DiffsOnly: true}))
	require.NotEmpty(t, diffs)
	for _, it := range diffs {
		assert.True(t, it.HasDiff(false))
	}
}

func TestGlyphsSingleFont(t *testing.T) {
	a := loadFont(t, "a.ttf", goregular.TTF)
	items := drain(Glyphs(context.Background(), a, nil, Options{DiffsOnly: true, UnicodesOnly: true}))
	require.NotEmpty(t, items, "diff filter needs a second font")
	for _, it := range items {
		assert.False(t, it.HasDiff(false))
		if it.Unicode == 'A' {
			assert.Equal(t, "0041", it.UnicodeLabel())
			assert.Greater(t, it.WidthA, 0.0)
		}
	}
}

func TestGlyphsCancelled(t *testing.T) {
	a := loadFont(t, "a.ttf", goregular.TTF)
	ctx, cancel := context.WithCancel(context.Background())
	ch := Glyphs(ctx, a, a, Options{})
	<-ch
	cancel()
	n := len(drain(ch))
	assert.Less(t, n, len(a.GlyphNames())-1, "run stops after cancellation")
}

func TestWords(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.compare")
	defer teardown()
	//
	regular := loadFont(t, "regular.ttf", goregular.TTF)
	mono := loadFont(t, "mono.ttf", gomono.TTF)
	words := []string{"one", "two", "three", "four"}
	items := drain(Words(context.Background(), regular, regular, words, Options{}))
	require.Len(t, items, 4)
	for i, it := range items {
		assert.Equal(t, i, it.Index)
		assert.Equal(t, words[i], it.Word)
		assert.False(t, it.HasDiff(false))
		require.NotNil(t, it.B)
	}
	items = drain(Words(context.Background(), regular, mono, words, Options{DiffsOnly: true, MaxWords: 2}))
	require.Len(t, items, 2)
	assert.Equal(t, "two", items[1].Word)
	assert.True(t, items[0].Diff.WidthDiffers)
	items = drain(Words(context.Background(), regular, nil, words[:1], Options{DiffsOnly: true}))
	require.Len(t, items, 1)
	assert.Nil(t, items[0].B)
	assert.Len(t, items[0].A.Glyphs, 3)
}

func TestSplitWords(t *testing.T) {
	words := SplitWords("Hello, world! नमस्ते 42 ...")
	assert.Equal(t, []string{"Hello", "world", "नमस्ते"}, words)
	assert.Equal(t, []string{"e\u0301", "a"}, Graphemes("e\u0301a"))
	assert.Nil(t, Graphemes(""))
}

func TestQueries(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.compare")
	defer teardown()
	//
	text := "banana bandana cabana ban nab abba bananarama"
	for _, tc := range []struct {
		q    Query
		want []string
	}{
		{Query{Text: "ana", Mode: MatchContains}, []string{"banana", "bandana", "cabana", "bananarama"}},
		{Query{Text: "ban", Mode: MatchStartsWith}, []string{"banana", "bandana", "bananarama"}},
		{Query{Text: "ana", Mode: MatchEndsWith}, []string{"banana", "bandana", "cabana"}},
		{Query{Text: "abn", Mode: MatchOnlyUnicodes}, []string{"banana", "ban", "nab", "abba"}},
		{Query{Text: "dc", Mode: MatchAnyUnicode}, []string{"bandana", "cabana"}},
		{Query{Text: "dc", Mode: MatchAnyLetter}, []string{"bandana", "cabana"}},
		{Query{Text: "^a.*a$", Mode: MatchRegex}, []string{"abba"}},
	} {
		got, err := SelectWords(text, tc.q, 0)
		require.NoError(t, err, tc.q.Mode.String())
		assert.Equal(t, tc.want, got, tc.q.Mode.String())
	}
	got, err := SelectWords(text+" banana", Query{}, 2)
	require.NoError(t, err)
	assert.Equal(t, []string{"banana", "bandana"}, got)
	_, err = SelectWords(text, Query{Text: "(", Mode: MatchRegex}, 0)
	assert.Error(t, err)
}

func TestWordLengthLimit(t *testing.T) {
	got, err := SelectWords("supercalifragilistic short", Query{Text: "s"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"short"}, got)
	got, err = SelectWords("supercalifragilistic short", Query{Text: "super"}, 0)
	require.NoError(t, err)
	assert.Equal(t, []string{"supercalifragilistic"}, got)
}

func TestMatchModeNames(t *testing.T) {
	for m := MatchContains; m <= MatchRegex; m++ {
		parsed, ok := ParseMatchMode(m.String())
		assert.True(t, ok)
		assert.Equal(t, m, parsed)
	}
	_, ok := ParseMatchMode("fuzzy")
	assert.False(t, ok)
}

const devanagariClusters = `{
  "BaseNames": ["Consonants", "Vowels"],
  "Consonants": ["क", "ख"],
  "Vowels": ["अ"],
  "SubConsonantNames": ["Reph", "Ya"],
  "Reph": ["र्"],
  "Ya": ["्य"],
  "Nukta": ["\u093c"],
  "Vowel Signs": ["ा", "ि"],
  "Other Signs": ["ं"],
  "Numbers": ["०", "१", "२", "३", "४", "५", "६", "७", "८", "९"],
  "UsesLakh": ["true"]
}`

func TestClusters(t *testing.T) {
	cs := ClusterSet{Bases: []string{"क", "", "ख"}, VowelSigns: []string{"", "ा"}}
	assert.Equal(t, []string{"क", "का", "ख", "खा"}, Clusters(cs))
	cs = ClusterSet{Bases: []string{"क", "क"}, Nukta: "\u093c", SubConsonant: "्य"}
	assert.Equal(t, []string{"\u0915\u093c\u094d\u092f"}, Clusters(cs), "duplicates are dropped")
	cs.RephFirst, cs.SubConsonant = true, "र्"
	assert.Equal(t, []string{"\u0930\u094d\u0915\u093c"}, Clusters(cs))
	assert.Empty(t, Clusters(ClusterSet{}))
}

func TestClusterData(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff.compare")
	defer teardown()
	//
	cd, err := ParseClusterData([]byte(devanagariClusters))
	require.NoError(t, err)
	assert.Equal(t, []string{"Consonants", "Vowels"}, cd.BaseNames())
	assert.True(t, cd.UsesLakh())
	assert.Equal(t, []rune("०१२३४५६७८९"), cd.Digits())
	cs, err := cd.Set("Consonants", "Reph", true)
	require.NoError(t, err)
	clusters := Clusters(cs)
	assert.Len(t, clusters, 2*3*2)
	assert.Equal(t, "\u0930\u094d\u0915\u093c", clusters[0])
	assert.Contains(t, clusters, "\u0930\u094d\u0916\u093c\u093f\u0902")
	cs, err = cd.Set("Vowels", "None", false)
	require.NoError(t, err)
	assert.Equal(t, []string{"अ", "अं", "अा", "अां", "अि", "अिं"}, Clusters(cs))
	_, err = cd.Set("Symbols", "", false)
	assert.Error(t, err)
	_, err = cd.Set("Consonants", "Rakar", false)
	assert.Error(t, err)
	_, err = ParseClusterData([]byte(`{"Consonants": ["क"]}`))
	assert.Error(t, err)
}

func TestNumbers(t *testing.T) {
	one, err := Numbers(1, nil, NoGrouping)
	require.NoError(t, err)
	assert.Equal(t, []string{"0", "1", "2", "3", "4", "5", "6", "7", "8", "9"}, one)
	two, _ := Numbers(2, nil, NoGrouping)
	assert.Len(t, two, 90)
	assert.Equal(t, "10", two[0])
	six, err := Numbers(6, nil, GroupLakh)
	require.NoError(t, err)
	require.Len(t, six, MaxNumbers)
	assert.Equal(t, "1,00,000", six[0])
	assert.Equal(t, "9,99,999", six[MaxNumbers-1])
	seven, _ := Numbers(7, nil, GroupThousands)
	assert.Equal(t, "1,000,000", seven[0])
	deva, err := Numbers(4, []rune("०१२३४५६७८९"), GroupThousands)
	require.NoError(t, err)
	assert.Equal(t, "१,०००", deva[0])
	_, err = Numbers(0, nil, NoGrouping)
	assert.Error(t, err)
	_, err = Numbers(3, []rune("0123"), NoGrouping)
	assert.Error(t, err)
}

func TestNumbersAreDistinct(t *testing.T) {
	for count := 1; count <= MaxNumberDigits; count++ {
		numbers, err := Numbers(count, nil, NoGrouping)
		require.NoError(t, err)
		seen := make(map[string]bool)
		for _, n := range numbers {
			assert.False(t, seen[n], "%s built twice", n)
			assert.Len(t, n, count)
			seen[n] = true
		}
	}
}

func TestWordsOfClustersAndNumbers(t *testing.T) {
	regular := loadFont(t, "regular.ttf", goregular.TTF)
	mono := loadFont(t, "mono.ttf", gomono.TTF)
	clusters := Clusters(ClusterSet{Bases: []string{"a", "e"}, VowelSigns: []string{"", "\u0301"}})
	items := drain(Words(context.Background(), regular, mono, clusters, Options{}))
	require.Len(t, items, 4)
	assert.Equal(t, "a\u0301", items[1].Word)
	numbers, err := Numbers(2, nil, NoGrouping)
	require.NoError(t, err)
	items = drain(Words(context.Background(), regular, mono, numbers, Options{DiffsOnly: true}))
	assert.NotEmpty(t, items, "digits of a proportional and a monospaced font differ")
}

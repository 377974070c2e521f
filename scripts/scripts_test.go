package scripts

import (
	"testing"
	"unicode"

	"github.com/npillmayer/schuko/tracing/gotestingadapter"
	"github.com/stretchr/testify/assert"
	"golang.org/x/text/language"
)

func runesFrom(lo rune, n int) []rune {
	rs := make([]rune, n)
	for i := range rs {
		rs[i] = lo + rune(i)
	}
	return rs
}

func TestRangeTableIsSorted(t *testing.T) {
	for i := 1; i < len(scriptRanges); i++ {
		prev, r := scriptRanges[i-1], scriptRanges[i]
		assert.LessOrEqual(t, r.lo, r.hi, "range %d inverted", i)
		assert.Less(t, prev.hi, r.lo, "ranges %d and %d overlap", i-1, i)
		_, ok := scriptNames[r.tag]
		assert.True(t, ok, "tag %q has no name", r.tag)
	}
}

func TestScriptTagForRune(t *testing.T) {
	cases := map[rune]string{
		0x0915:  "deva",
		0xA8E0:  "deva",
		0x0780:  "thaa",
		0x07BF:  "thaa",
		0x0E81:  "lao ",
		0xAAE0:  "mtei",
		0x111E1: "sinh",
		0x11FFF: "taml",
	}
	for r, tag := range cases {
		got, ok := ScriptTagForRune(r)
		assert.True(t, ok, "U+%04X", r)
		assert.Equal(t, tag, got, "U+%04X", r)
	}
	for _, r := range []rune{'A', 0x077F, 0x07C0, 0x2014, 0x1F600} {
		_, ok := ScriptTagForRune(r)
		assert.False(t, ok, "U+%04X", r)
	}
}

func TestPromotionThreshold(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	nine := runesFrom(0x0B85, 9) // Tamil
	assert.Empty(t, FromUnicodes(nine))
	ten := runesFrom(0x0B85, 10)
	assert.Equal(t, []string{"Tamil"}, FromUnicodes(ten))
}

func TestThresholdCountsAllRangesOfAScript(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	coverage := append(runesFrom(0x0905, 5), runesFrom(0xA8E0, 5)...)
	assert.Equal(t, []string{"Devanagari"}, FromUnicodes(coverage))
	assert.Equal(t, 10, CountTags(coverage)["deva"])
}

func TestFromUnicodesIgnoresLatin(t *testing.T) {
	coverage := append(runesFrom('A', 26), runesFrom(0x0E01, 12)...)
	assert.Equal(t, []string{"Thai"}, FromUnicodes(coverage))
}

func TestScriptName(t *testing.T) {
	name, ok := ScriptName("dev2")
	assert.True(t, ok)
	assert.Equal(t, "Devanagari", name)
	name, _ = ScriptName("lao ")
	assert.Equal(t, "Lao", name)
	_, ok = ScriptName("xxxx")
	assert.False(t, ok)
}

func TestFromLanguageKeys(t *testing.T) {
	teardown := gotestingadapter.QuickConfig(t, "fontdiff")
	defer teardown()
	//
	keys := []string{"DFLT_DFLT", "dev2_MAR ", "deva_HIN ", "deva_dflt", "taml_TAM", "bogus", "zzzz_QQQ"}
	scripts, langs := FromLanguageKeys(keys)
	assert.Equal(t, []string{"Devanagari", "Tamil"}, scripts)
	assert.Equal(t, []string{"Hindi", "Marathi", "Tamil"}, langs)
}

func TestLanguageNamesFromRegistry(t *testing.T) {
	cases := map[string]string{
		"IWR ": "Hebrew",
		"SRB":  "Serbian",
		"HO  ": "Ho",
		"PGR ": "Polytonic Greek",
		"ZHH ": "Chinese, Traditional, Hong Kong SAR",
		"APPH": "Phonetic transcription, Americanist conventions",
	}
	for tag, want := range cases {
		name, ok := LanguageName(tag)
		assert.True(t, ok, "tag %q unknown", tag)
		assert.Equal(t, want, name)
	}
	_, ok := LanguageName("dflt")
	assert.False(t, ok)
	scripts, langs := FromLanguageKeys([]string{"hebr_IWR ", "cyrl_SRB ", "grek_PGR "})
	assert.Equal(t, []string{"Cyrillic", "Greek", "Hebrew"}, scripts)
	assert.Equal(t, []string{"Hebrew", "Polytonic Greek", "Serbian"}, langs)
}

func TestUnion(t *testing.T) {
	assert.Equal(t, []string{"a", "b", "c"}, Union([]string{"a", "b"}, nil, []string{"b", "c", "a"}))
	assert.NotNil(t, Union())
}

func TestClassify(t *testing.T) {
	coverage := runesFrom(0x0D05, 20) // Malayalam
	s := Classify(coverage, []string{"deva_MAR ", "mlm2_MAL "})
	assert.Equal(t, []string{"Malayalam", "Devanagari"}, s.Scripts)
	assert.Equal(t, []string{"Malayalam", "Marathi"}, s.Languages)
	s = Classify(nil, nil)
	assert.NotNil(t, s.Scripts)
	assert.Empty(t, s.Scripts)
}

func TestDefaultLanguage(t *testing.T) {
	assert.Equal(t, language.Hindi, DefaultLanguage("deva"))
	assert.Equal(t, "mai", DefaultLanguage("tirh").String())
	assert.Equal(t, language.Und, DefaultLanguage("latn"))
	for _, r := range scriptRanges {
		assert.NotEqual(t, language.Und, DefaultLanguage(r.tag), "no default language for %q", r.tag)
	}
}

func TestDigits(t *testing.T) {
	deva, ok := Digits("dev2")
	assert.True(t, ok)
	assert.Equal(t, []rune("०१२३४५६७८९"), deva)
	latin, _ := Digits("latn")
	assert.Equal(t, "0123456789", string(latin))
	_, ok = Digits("hebr")
	assert.False(t, ok, "Hebrew has no digits of its own")
	for tag := range zeroDigits {
		digits, ok := Digits(tag)
		assert.True(t, ok)
		for _, d := range digits {
			assert.True(t, unicode.Is(unicode.Nd, d), "%U of %q is not a decimal digit", d, tag)
		}
	}
}

func TestUsesLakh(t *testing.T) {
	assert.True(t, UsesLakh("deva"))
	assert.True(t, UsesLakh("tml2"))
	assert.False(t, UsesLakh("thai"))
	assert.False(t, UsesLakh("latn"))
}

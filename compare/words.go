package compare

import (
	"fmt"
	"regexp"
	"strings"
	"unicode"

	"github.com/go-text/typesetting/segmenter"
)

// MatchMode selects how a query selects words from a word list.
type MatchMode int

const (
	MatchContains     MatchMode = iota // word contains the query text
	MatchAnyLetter                     // word contains one of the query's letters (graphemes)
	MatchAnyUnicode                    // word contains one of the query's code points
	MatchOnlyUnicodes                  // word consists of the query's code points only
	MatchStartsWith                    // word starts with the query text
	MatchEndsWith                      // word ends with the query text
	MatchRegex                         // query text is a regular expression
)

var matchModeNames = []string{"contains", "any-letter", "any-unicode", "only-unicodes",
	"starts-with", "ends-with", "regex"}

func (m MatchMode) String() string {
	if m < 0 || int(m) >= len(matchModeNames) {
		return fmt.Sprintf("MatchMode(%d)", int(m))
	}
	return matchModeNames[m]
}

// ParseMatchMode maps a mode name as returned by MatchMode.String to the mode.
func ParseMatchMode(s string) (MatchMode, bool) {
	for i, name := range matchModeNames {
		if name == s {
			return MatchMode(i), true
		}
	}
	return MatchContains, false
}

// DefaultWordLength is the minimum length limit of selected words, in
// graphemes. Longer queries raise the limit to four times their length.
const DefaultWordLength = 10

// Query selects words from a word list.
type Query struct {
	Text string
	Mode MatchMode
}

// Matcher returns a predicate for words matching the query. An empty query
// text matches every word.
func (q Query) Matcher() (func(word string) bool, error) {
	if q.Text == "" {
		return func(string) bool { return true }, nil
	}
	switch q.Mode {
	case MatchContains:
		return func(w string) bool { return strings.Contains(w, q.Text) }, nil
	case MatchAnyLetter:
		letters := Graphemes(q.Text)
		return func(w string) bool {
			for _, l := range letters {
				if strings.Contains(w, l) {
					return true
				}
			}
			return false
		}, nil
	case MatchAnyUnicode:
		return func(w string) bool { return strings.ContainsAny(w, q.Text) }, nil
	case MatchOnlyUnicodes:
		return func(w string) bool {
			return strings.IndexFunc(w, func(r rune) bool { return !strings.ContainsRune(q.Text, r) }) < 0
		}, nil
	case MatchStartsWith:
		return func(w string) bool { return len(w) > len(q.Text) && strings.HasPrefix(w, q.Text) }, nil
	case MatchEndsWith:
		return func(w string) bool { return len(w) > len(q.Text) && strings.HasSuffix(w, q.Text) }, nil
	case MatchRegex:
		re, err := regexp.Compile(q.Text)
		if err != nil {
			return nil, fmt.Errorf("word query: %w", err)
		}
		return re.MatchString, nil
	}
	return nil, fmt.Errorf("word query: unknown match mode %v", q.Mode)
}

// maxLength is the length limit for selected words, in graphemes.
func (q Query) maxLength() int {
	n := len(Graphemes(q.Text))
	if n == 0 {
		n = 3
	}
	return max(DefaultWordLength, 4*n)
}

// SelectWords splits text into words and returns the words matching the query,
// in order of first appearance and without duplicates. Words exceeding the
// query's length limit are dropped. At most limit words are returned; limit
// <= 0 selects DefaultMaxWords.
func SelectWords(text string, q Query, limit int) ([]string, error) {
	match, err := q.Matcher()
	if err != nil {
		return nil, err
	}
	if limit <= 0 {
		limit = DefaultMaxWords
	}
	maxLen := q.maxLength()
	seen := make(map[string]bool)
	var selected []string
	for _, w := range SplitWords(text) {
		if seen[w] || !match(w) {
			continue
		}
		seen[w] = true
		if len(Graphemes(w)) > maxLen {
			tracer().Debugf("dropping word %q, longer than %d letters", w, maxLen)
			continue
		}
		selected = append(selected, w)
		if len(selected) >= limit {
			break
		}
	}
	tracer().Infof("selected %d words matching %s %q", len(selected), q.Mode, q.Text)
	return selected, nil
}

// SplitWords returns the words of a text, following Unicode word boundaries.
// Segments without any letter, like blanks or punctuation, are dropped.
func SplitWords(text string) []string {
	var seg segmenter.Segmenter
	seg.Init([]rune(text))
	var words []string
	iter := seg.WordIterator()
	for iter.Next() {
		w := iter.Word()
		if hasLetter(w.Text) {
			words = append(words, string(w.Text))
		}
	}
	return words
}

// Graphemes splits a text into user-perceived characters.
func Graphemes(text string) []string {
	if text == "" {
		return nil
	}
	var seg segmenter.Segmenter
	seg.Init([]rune(text))
	var graphemes []string
	iter := seg.GraphemeIterator()
	for iter.Next() {
		graphemes = append(graphemes, string(iter.Grapheme().Text))
	}
	return graphemes
}

func hasLetter(runes []rune) bool {
	for _, r := range runes {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

package compare

import (
	"fmt"
	"strconv"
	"strings"
)

// Grouping selects how digits of long numbers are grouped.
type Grouping int

const (
	NoGrouping     Grouping = iota // 1234567
	GroupThousands                 // 1,234,567
	GroupLakh                      // 12,34,567
)

// MaxNumberDigits is the longest number Numbers builds.
const MaxNumberDigits = 9

// MaxNumbers limits the count of numbers built for a digit count.
const MaxNumbers = 200

// Numbers builds numbers of a given count of digits, to be compared with
// Words. If there are more than MaxNumbers of them, they are sampled at even
// steps from the smallest to the largest. One-digit numbers include zero.
//
// digits are the ten digits of a script, 0 to 9; nil selects ASCII digits.
// Group separators are always ASCII commas.
func Numbers(digitCount int, digits []rune, grouping Grouping) ([]string, error) {
	if digitCount < 1 || digitCount > MaxNumberDigits {
		return nil, fmt.Errorf("numbers: digit count must be 1 to %d, is %d", MaxNumberDigits, digitCount)
	}
	if digits != nil && len(digits) != 10 {
		return nil, fmt.Errorf("numbers: need 10 digits, have %d", len(digits))
	}
	lo, hi := int64(0), int64(9)
	for i := 1; i < digitCount; i++ {
		lo, hi = hi+1, hi*10+9
	}
	n := hi - lo + 1
	if n > MaxNumbers {
		n = MaxNumbers
	}
	numbers := make([]string, 0, n)
	for k := int64(0); k < n; k++ {
		v := lo + k
		if n == MaxNumbers {
			v = lo + k*(hi-lo)/(MaxNumbers-1)
		}
		numbers = append(numbers, writeNumber(v, digits, grouping))
	}
	tracer().Debugf("built %d numbers of %d digits", len(numbers), digitCount)
	return numbers, nil
}

func writeNumber(v int64, digits []rune, grouping Grouping) string {
	s := groupDigits(strconv.FormatInt(v, 10), grouping)
	if digits == nil {
		return s
	}
	return strings.Map(func(r rune) rune {
		if r >= '0' && r <= '9' {
			return digits[r-'0']
		}
		return r
	}, s)
}

// groupDigits inserts commas after the last three digits, then after every
// three (thousands) or two (lakh) digits.
func groupDigits(s string, grouping Grouping) string {
	if grouping == NoGrouping || len(s) <= 3 {
		return s
	}
	size := 3
	if grouping == GroupLakh {
		size = 2
	}
	head, groups := s[:len(s)-3], []string{s[len(s)-3:]}
	for len(head) > size {
		groups = append([]string{head[len(head)-size:]}, groups...)
		head = head[:len(head)-size]
	}
	return strings.Join(append([]string{head}, groups...), ",")
}

package ankr

import "fmt"

// TableDecodeError is returned for malformed or truncated 'ankr' tables.
// Clients should treat it like a font without anchors and fall back to
// other anchor sources.
type TableDecodeError struct {
	Section string // part of the table being decoded, e.g. "lookup", "glyph data"
	Issue   string // human-readable description of the issue
	Offset  int    // byte offset within the table (-1 if unknown)
}

// Error implements the error interface.
func (e *TableDecodeError) Error() string {
	if e.Offset >= 0 {
		return fmt.Sprintf("[ankr] %s at offset %d: %s", e.Section, e.Offset, e.Issue)
	}
	return fmt.Sprintf("[ankr] %s: %s", e.Section, e.Issue)
}

// UnsupportedFormatError is returned if the lookup table uses a format
// other than 4. The table itself is not broken, we just cannot read it;
// clients should treat it as "no data available".
type UnsupportedFormatError struct {
	Format uint16
}

// Error implements the error interface.
func (e *UnsupportedFormatError) Error() string {
	return fmt.Sprintf("[ankr] lookup: unsupported lookup table format %d", e.Format)
}

func errDecode(section string, offset int, format string, args ...any) error {
	return &TableDecodeError{
		Section: section,
		Issue:   fmt.Sprintf(format, args...),
		Offset:  offset,
	}
}

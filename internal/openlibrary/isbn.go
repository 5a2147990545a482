package openlibrary

import "strings"

// minISBNFieldLength is a plausibility filter on the joined ISBN field, not
// checksum validation.
const minISBNFieldLength = 6

// SelectISBN returns the first ISBN of the first record with a plausible
// ISBN field.
func SelectISBN(records []Record) (string, bool) {
	for _, record := range records {
		if isbns := splitISBNs(record.ISBNs); len(isbns) > 0 {
			return isbns[0], true
		}
	}
	return "", false
}

// Candidates returns every ISBN SelectISBN would consider, in order.
func Candidates(records []Record) []string {
	var candidates []string
	for _, record := range records {
		candidates = append(candidates, splitISBNs(record.ISBNs)...)
	}
	return candidates
}

// HasISBN reports whether the record carries a plausible ISBN field.
func (r Record) HasISBN() bool {
	return plausible(r.ISBNs)
}

func plausible(field string) bool {
	return field != "" && field != NoISBN && len(field) >= minISBNFieldLength
}

func splitISBNs(field string) []string {
	if !plausible(field) {
		return nil
	}

	var isbns []string
	for _, part := range strings.Split(field, ",") {
		if isbn := strings.TrimSpace(part); isbn != "" {
			isbns = append(isbns, isbn)
		}
	}
	return isbns
}

package domain

import (
	"fmt"
	"strings"
	"time"
	"unicode"
	"unicode/utf8"
)

// NoDate is shown for an unset due date.
const NoDate = "no definida"

// NoPriority is shown for an unset priority.
const NoPriority = "sin prioridad"

var shortMonths = [...]string{"ene", "feb", "mar", "abr", "may", "jun", "jul", "ago", "sept", "oct", "nov", "dic"}

// HumanizeStatus turns a stored status into display form: underscores become spaces and
// each word is capitalized ("en_progreso" -> "En Progreso").
func HumanizeStatus(s string) string {
	words := strings.Fields(strings.ReplaceAll(s, "_", " "))
	for i, w := range words {
		r, size := utf8.DecodeRuneInString(w)
		words[i] = string(unicode.ToUpper(r)) + strings.ToLower(w[size:])
	}
	return strings.Join(words, " ")
}

// FormatDate renders a date as "15 mar 2023", or NoDate when d is nil.
func FormatDate(d *time.Time) string {
	if d == nil {
		return NoDate
	}
	u := d.UTC()
	return fmt.Sprintf("%d %s %d", u.Day(), shortMonths[u.Month()-1], u.Year())
}

// DisplayPriority returns p, or NoPriority when unset.
func DisplayPriority(p Priority) string {
	if p == "" {
		return NoPriority
	}
	return string(p)
}

// SameDate reports whether a and b denote the same calendar day (or are both unset).
func SameDate(a, b *time.Time) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	ay, am, ad := a.UTC().Date()
	by, bm, bd := b.UTC().Date()
	return ay == by && am == bm && ad == bd
}

// ParseDate parses a form/JSON date ("2006-01-02", or RFC 3339 whose date part is kept).
// An empty string yields nil.
func ParseDate(s string) (*time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil, nil
	}
	if len(s) > 10 {
		if _, err := time.Parse(time.RFC3339, s); err != nil {
			return nil, err
		}
		s = s[:10]
	}
	d, err := time.Parse("2006-01-02", s)
	if err != nil {
		return nil, err
	}
	return &d, nil
}

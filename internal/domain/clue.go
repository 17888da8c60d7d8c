package domain

import "sort"

// ClueEntry is one submitted clue in the reveal order of a round
type ClueEntry struct {
	PlayerID  string `json:"playerId"`
	Text      string `json:"clue"`
	Letters   int    `json:"letters"`
	JoinOrder int    `json:"joinOrder"`
}

// OrderClues sorts clue entries by letter count ascending, breaking ties by
// join order ascending. The sort is stable, so equal entries keep their
// relative order.
func OrderClues(entries []ClueEntry) {
	sort.SliceStable(entries, func(i, j int) bool {
		if entries[i].Letters != entries[j].Letters {
			return entries[i].Letters < entries[j].Letters
		}
		return entries[i].JoinOrder < entries[j].JoinOrder
	})
}

// isClueLetter reports whether r counts toward a clue's letter count.
// ASCII letters plus the German umlauts and eszett qualify.
func isClueLetter(r rune) bool {
	switch {
	case r >= 'a' && r <= 'z':
		return true
	case r >= 'A' && r <= 'Z':
		return true
	}
	switch r {
	case 'ä', 'ö', 'ü', 'Ä', 'Ö', 'Ü', 'ß':
		return true
	}
	return false
}

// isClueSpace reports whether r is allowed in a clue without counting as a letter
func isClueSpace(r rune) bool {
	return r == ' ' || r == '\t' || r == '\n' || r == '\r'
}

// ValidClueText reports whether text contains only letters and spaces
// from the allowed alphabet. Empty text is not valid.
func ValidClueText(text string) bool {
	if text == "" {
		return false
	}
	for _, r := range text {
		if !isClueLetter(r) && !isClueSpace(r) {
			return false
		}
	}
	return true
}

// CountLetters returns the number of alphabetic characters in text,
// excluding spaces. This count drives the clue reveal order.
func CountLetters(text string) int {
	n := 0
	for _, r := range text {
		if isClueLetter(r) {
			n++
		}
	}
	return n
}

package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCountLetters(t *testing.T) {
	tests := []struct {
		text string
		want int
	}{
		{"fruit", 5},
		{"ice cream", 8},
		{"  spaced  out  ", 9},
		{"Straße", 6},
		{"Überall", 7},
		{"", 0},
		{"   ", 0},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, CountLetters(tt.text), "text %q", tt.text)
	}
}

func TestValidClueText(t *testing.T) {
	valid := []string{"fruit", "ice cream", "Käsekuchen", "GROSS", "ÄÖÜß"}
	for _, text := range valid {
		assert.True(t, ValidClueText(text), "expected %q to be valid", text)
	}

	invalid := []string{"", "fruit!", "number 1", "semi;colon", "émigré", "cliché-ish"}
	for _, text := range invalid {
		assert.False(t, ValidClueText(text), "expected %q to be invalid", text)
	}
}

func TestOrderCluesSortsByLettersThenJoinOrder(t *testing.T) {
	entries := []ClueEntry{
		{PlayerID: "a", Text: "longest", Letters: 7, JoinOrder: 0},
		{PlayerID: "b", Text: "tiny", Letters: 4, JoinOrder: 3},
		{PlayerID: "c", Text: "fast", Letters: 4, JoinOrder: 1},
		{PlayerID: "d", Text: "mid", Letters: 3, JoinOrder: 2},
	}

	OrderClues(entries)

	got := make([]string, 0, len(entries))
	for _, e := range entries {
		got = append(got, e.PlayerID)
	}
	assert.Equal(t, []string{"d", "c", "b", "a"}, got)
}

func TestOrderCluesIsStable(t *testing.T) {
	// Equal letter counts and equal join orders keep their relative order.
	entries := []ClueEntry{
		{PlayerID: "x", Letters: 5, JoinOrder: 1},
		{PlayerID: "y", Letters: 5, JoinOrder: 1},
		{PlayerID: "z", Letters: 5, JoinOrder: 1},
	}

	OrderClues(entries)

	assert.Equal(t, "x", entries[0].PlayerID)
	assert.Equal(t, "y", entries[1].PlayerID)
	assert.Equal(t, "z", entries[2].PlayerID)
}

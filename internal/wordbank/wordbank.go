package wordbank

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"io"
	"math/rand"
	"sort"
	"strings"

	_ "embed"

	"lessismore/internal/domain"
)

//go:embed words.csv
var embeddedWords []byte

// Bank holds category to word-list mappings. Picks are uniformly random per
// call; repeats across rounds are permitted.
type Bank struct {
	words      map[string][]string
	categories []string
}

// New creates an empty bank
func New() *Bank {
	return &Bank{words: make(map[string][]string)}
}

// Load parses a CSV stream with a Category,Word header into a bank
func Load(r io.Reader) (*Bank, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = 2

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("reading word list header: %w", err)
	}
	if len(header) != 2 || !strings.EqualFold(header[0], "category") || !strings.EqualFold(header[1], "word") {
		return nil, fmt.Errorf("unexpected word list header: %v", header)
	}

	bank := New()
	for {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("reading word list: %w", err)
		}

		category := strings.TrimSpace(record[0])
		word := strings.TrimSpace(record[1])
		if category == "" || word == "" {
			continue
		}

		if _, ok := bank.words[category]; !ok {
			bank.categories = append(bank.categories, category)
		}
		bank.words[category] = append(bank.words[category], word)
	}

	sort.Strings(bank.categories)

	return bank, nil
}

// Default returns a bank loaded from the embedded word list. A parse error
// yields an empty bank rather than a crash; rounds then fail to start with
// ErrEmptyBank.
func Default() *Bank {
	bank, err := Load(bytes.NewReader(embeddedWords))
	if err != nil {
		return New()
	}
	return bank
}

// Categories returns all loaded category names, sorted
func (b *Bank) Categories() []string {
	return b.categories
}

// RandomCategory picks a category uniformly at random
func (b *Bank) RandomCategory() (string, error) {
	if len(b.categories) == 0 {
		return "", domain.ErrEmptyBank
	}
	return b.categories[rand.Intn(len(b.categories))], nil
}

// RandomWord picks a word uniformly at random within the given category
func (b *Bank) RandomWord(category string) (string, error) {
	words := b.words[category]
	if len(words) == 0 {
		return "", domain.ErrEmptyBank
	}
	return words[rand.Intn(len(words))], nil
}

// PickRound selects a random category and a random word within it
func (b *Bank) PickRound() (category, word string, err error) {
	category, err = b.RandomCategory()
	if err != nil {
		return "", "", err
	}
	word, err = b.RandomWord(category)
	if err != nil {
		return "", "", err
	}
	return category, word, nil
}

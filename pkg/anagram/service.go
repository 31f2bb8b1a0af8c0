// Package anagram implements the anagram index service and its query
// engine. Words are keyed by their canonical form (lowercased, sorted
// characters); all words sharing a key form an anagram set. The service
// is the sole writer of both the backing store and the running counters.
package anagram

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/hansifer/anagram-server/internal/models"
	"github.com/hansifer/anagram-server/pkg/store"
	"github.com/hansifer/anagram-server/pkg/words"
)

// ErrInvalidWord is returned when an input fails word validation.
var ErrInvalidWord = errors.New("invalid word")

// GetOptions shapes the result of a Get.
type GetOptions struct {
	// IncludeInput retains the exact input string in the result. By
	// default only the input's anagrams are returned.
	IncludeInput bool
	// ExcludeProperNouns drops proper-noun entries, except the input
	// entry itself when IncludeInput retained it.
	ExcludeProperNouns bool
	// Limit truncates the result to the first N entries in stored order.
	// Non-positive values mean no limit.
	Limit int
}

// DeleteOptions shapes a Delete.
type DeleteOptions struct {
	// IncludeAnagrams deletes the word's entire anagram group instead of
	// just the exact entry, provided the word is a member of that group.
	IncludeAnagrams bool
}

// Service is the anagram index: a keyed-set store plus running word and
// anagram counters, maintained incrementally on every mutation.
type Service struct {
	store        store.Store
	wordCount    int
	anagramCount int
}

// New creates a Service on the given store. The store must not be
// written to by anyone else: counter maintenance depends on the service
// observing every mutation.
func New(s store.Store) *Service {
	return &Service{store: s}
}

// NewInMemory creates a Service backed by the reference in-memory store.
func NewInMemory() *Service {
	return New(store.NewMemStore())
}

// Add indexes a word under its canonical key. Duplicate adds of the
// exact same string are no-ops, not errors. The returned deltas say
// whether a word was added and whether it gained an anagram.
func (s *Service) Add(word string) (models.AddResult, error) {
	if !words.IsValidWord(word) {
		return models.AddResult{}, fmt.Errorf("add %q: %w", word, ErrInvalidWord)
	}
	word = strings.TrimSpace(word)

	res := s.store.Add(words.Normalize(word), word)
	if res.Affected == 0 {
		return models.AddResult{}, nil
	}

	delta := models.AddResult{Word: 1}
	if res.Size > 1 {
		delta.Anagram = 1
	}
	s.wordCount += delta.Word
	s.anagramCount += delta.Anagram
	return delta, nil
}

// Get returns the anagrams of word, in stored order. An unknown word,
// one whose exact string or proper-noun counterpart is not itself
// indexed, yields an empty result even when its key matches an
// existing group.
func (s *Service) Get(word string, opts GetOptions) ([]string, error) {
	if !words.IsValidWord(word) {
		return nil, fmt.Errorf("get %q: %w", word, ErrInvalidWord)
	}

	set := s.store.Get(words.Normalize(word))
	if !isMember(set, word) {
		return nil, nil
	}

	var result []string
	for _, entry := range set {
		isInput := entry == word
		if isInput && !opts.IncludeInput {
			continue
		}
		// IncludeInput wins over ExcludeProperNouns for the input entry.
		if opts.ExcludeProperNouns && words.IsProperNoun(entry) && !isInput {
			continue
		}
		result = append(result, entry)
	}
	if opts.Limit > 0 && len(result) > opts.Limit {
		result = result[:opts.Limit]
	}
	return result, nil
}

// Delete removes a word, or with IncludeAnagrams its whole group. The
// group delete only fires when the word is actually a member of the
// group, so anagrams of an unknown word are never deleted. Returns the
// number of words removed; 0 means not found.
func (s *Service) Delete(word string, opts DeleteOptions) (int, error) {
	if !words.IsValidWord(word) {
		return 0, fmt.Errorf("delete %q: %w", word, ErrInvalidWord)
	}

	sel := store.Selector{Mode: store.DeleteExact, Value: word}
	if opts.IncludeAnagrams {
		sel = store.Selector{
			Mode:  store.DeleteSetIfMember,
			Value: word,
			Match: words.SameWord,
		}
	}

	res := s.store.Delete(words.Normalize(word), sel)
	if res.Affected == 0 {
		return 0, nil
	}

	s.wordCount -= res.Affected
	// Removing the last member of a set is not an anagram removal.
	if res.Size == 0 {
		s.anagramCount -= res.Affected - 1
	} else {
		s.anagramCount -= res.Affected
	}
	return res.Affected, nil
}

// Clear empties the index and zeroes both counters.
func (s *Service) Clear() {
	s.store.Clear()
	s.wordCount = 0
	s.anagramCount = 0
}

// WordCount returns the total number of indexed words. O(1).
func (s *Service) WordCount() int { return s.wordCount }

// AnagramCount returns the total number of anagrams: for every set of
// size n >= 2, n-1 of its members count as anagrams. O(1).
func (s *Service) AnagramCount() int { return s.anagramCount }

// Load ingests whitespace-delimited tokens from r, adding each in turn.
// Invalid tokens are counted as rejected and never abort the ingest.
func (s *Service) Load(r io.Reader) (models.LoadResult, error) {
	var total models.LoadResult

	scanner := bufio.NewScanner(r)
	scanner.Split(bufio.ScanWords)
	for scanner.Scan() {
		delta, err := s.Add(scanner.Text())
		if err != nil {
			total.Rejected++
			continue
		}
		total.Words += delta.Word
		total.Anagrams += delta.Anagram
	}
	if err := scanner.Err(); err != nil {
		return total, fmt.Errorf("error reading word source: %w", err)
	}
	return total, nil
}

// isMember reports whether word, or its proper-noun counterpart, is in
// the set.
func isMember(set []string, word string) bool {
	for _, entry := range set {
		if entry == word || words.SameWord(word, entry) {
			return true
		}
	}
	return false
}

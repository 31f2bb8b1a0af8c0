package anagram

import (
	"errors"
	"reflect"
	"sort"
	"strings"
	"testing"

	"github.com/hansifer/anagram-server/internal/models"
)

func mustAdd(t *testing.T, s *Service, ws ...string) {
	t.Helper()
	for _, w := range ws {
		if _, err := s.Add(w); err != nil {
			t.Fatalf("Add(%q) failed: %v", w, err)
		}
	}
}

func sortedCopy(ws []string) []string {
	c := append([]string{}, ws...)
	sort.Strings(c)
	return c
}

func TestAdd(t *testing.T) {
	s := NewInMemory()

	tests := []struct {
		word string
		want models.AddResult
	}{
		{"read", models.AddResult{Word: 1, Anagram: 0}},
		{"dear", models.AddResult{Word: 1, Anagram: 1}},
		{"dare", models.AddResult{Word: 1, Anagram: 1}},
		{"read", models.AddResult{}}, // exact duplicate is a no-op
	}

	for _, tt := range tests {
		got, err := s.Add(tt.word)
		if err != nil {
			t.Fatalf("Add(%q) failed: %v", tt.word, err)
		}
		if got != tt.want {
			t.Errorf("Add(%q) = %+v, want %+v", tt.word, got, tt.want)
		}
	}

	if s.WordCount() != 3 {
		t.Errorf("WordCount() = %d, want 3", s.WordCount())
	}
	if s.AnagramCount() != 2 {
		t.Errorf("AnagramCount() = %d, want 2", s.AnagramCount())
	}
}

func TestAddInvalidWord(t *testing.T) {
	s := NewInMemory()
	for _, w := range []string{"", "-bad", "bad-", "b--ad", "num3ric", "two words"} {
		if _, err := s.Add(w); !errors.Is(err, ErrInvalidWord) {
			t.Errorf("Add(%q) error = %v, want ErrInvalidWord", w, err)
		}
	}
	if s.WordCount() != 0 {
		t.Errorf("invalid adds must not touch counters, WordCount() = %d", s.WordCount())
	}
}

func TestAddCaseVariants(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "Acer")

	// Case makes "acer" a distinct entry sharing the same key.
	got, err := s.Add("acer")
	if err != nil {
		t.Fatalf("Add(acer) failed: %v", err)
	}
	if got != (models.AddResult{Word: 1, Anagram: 1}) {
		t.Errorf("Add(acer) = %+v, want {1 1}", got)
	}
}

func TestGet(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "read", "dear", "dare")

	got, err := s.Get("read", GetOptions{})
	if err != nil {
		t.Fatalf("Get(read) failed: %v", err)
	}
	want := []string{"dare", "dear"}
	if !reflect.DeepEqual(sortedCopy(got), want) {
		t.Errorf("Get(read) = %v, want set %v", got, want)
	}
}

func TestGetUnknownWord(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "read", "dear")

	// "dare" shares the key but is not itself indexed; it must not
	// surface the group.
	got, err := s.Get("dare", GetOptions{})
	if err != nil {
		t.Fatalf("Get(dare) failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Get(dare) = %v, want empty", got)
	}
}

func TestGetProperNounCounterpart(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "Canadas", "sadanca")

	// A lowercase query resolves its proper-noun entry, and the
	// counterpart stays visible in the result.
	got, err := s.Get("canadas", GetOptions{})
	if err != nil {
		t.Fatalf("Get(canadas) failed: %v", err)
	}
	want := []string{"Canadas", "sadanca"}
	if !reflect.DeepEqual(sortedCopy(got), want) {
		t.Errorf("Get(canadas) = %v, want set %v", got, want)
	}
}

func TestGetOptions(t *testing.T) {
	tests := []struct {
		name string
		seed []string
		word string
		opts GetOptions
		want []string
	}{
		{
			name: "Default Excludes Input",
			seed: []string{"read", "dear", "dare"},
			word: "dear",
			opts: GetOptions{},
			want: []string{"dare", "read"},
		},
		{
			name: "Include Input",
			seed: []string{"read", "dear"},
			word: "dear",
			opts: GetOptions{IncludeInput: true},
			want: []string{"dear", "read"},
		},
		{
			name: "Exclude Proper Nouns",
			seed: []string{"acer", "race", "Acer"},
			word: "race",
			opts: GetOptions{ExcludeProperNouns: true},
			want: []string{"acer"},
		},
		{
			name: "Include Input Overrides Proper Noun Exclusion",
			seed: []string{"Acer", "race"},
			word: "Acer",
			opts: GetOptions{IncludeInput: true, ExcludeProperNouns: true},
			want: []string{"Acer", "race"},
		},
		{
			name: "Limit",
			seed: []string{"aster", "rates", "stare", "tears", "tares"},
			word: "aster",
			opts: GetOptions{Limit: 2},
			want: []string{"rates", "stare"},
		},
		{
			name: "Non Positive Limit Ignored",
			seed: []string{"read", "dear", "dare"},
			word: "read",
			opts: GetOptions{Limit: -1},
			want: []string{"dare", "dear"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInMemory()
			mustAdd(t, s, tt.seed...)
			got, err := s.Get(tt.word, tt.opts)
			if err != nil {
				t.Fatalf("Get(%q) failed: %v", tt.word, err)
			}
			if !reflect.DeepEqual(sortedCopy(got), sortedCopy(tt.want)) {
				t.Errorf("Get(%q, %+v) = %v, want set %v", tt.word, tt.opts, got, tt.want)
			}
		})
	}
}

func TestGetLimitPreservesStoredOrder(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "aster", "rates", "stare", "tears")

	got, err := s.Get("aster", GetOptions{Limit: 2})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	// Limit applies after filtering, in insertion order.
	want := []string{"rates", "stare"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Get with limit = %v, want %v", got, want)
	}
}

func TestDelete(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "read", "dear", "dare")

	n, err := s.Delete("dear", DeleteOptions{})
	if err != nil {
		t.Fatalf("Delete(dear) failed: %v", err)
	}
	if n != 1 {
		t.Errorf("Delete(dear) = %d, want 1", n)
	}

	got, err := s.Get("read", GetOptions{})
	if err != nil {
		t.Fatalf("Get(read) failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"dare"}) {
		t.Errorf("Get(read) after delete = %v, want [dare]", got)
	}

	if n, _ := s.Delete("dare", DeleteOptions{}); n != 1 {
		t.Errorf("Delete(dare) = %d, want 1", n)
	}
	if n, _ := s.Delete("dare", DeleteOptions{}); n != 0 {
		t.Errorf("second Delete(dare) = %d, want 0 (not found)", n)
	}
}

func TestDeleteNoProperNounFolding(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "acer", "Acer")

	// An exact delete of "acer" must leave "Acer" alone.
	if n, _ := s.Delete("acer", DeleteOptions{}); n != 1 {
		t.Fatal("Delete(acer) should remove exactly the lowercase entry")
	}
	got, err := s.Get("Acer", GetOptions{IncludeInput: true})
	if err != nil {
		t.Fatalf("Get(Acer) failed: %v", err)
	}
	if !reflect.DeepEqual(got, []string{"Acer"}) {
		t.Errorf("Get(Acer) = %v, want [Acer]", got)
	}
}

func TestDeleteIncludeAnagrams(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "read", "dear", "dare")

	n, err := s.Delete("dear", DeleteOptions{IncludeAnagrams: true})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 3 {
		t.Errorf("group delete removed %d, want 3", n)
	}
	if s.WordCount() != 0 || s.AnagramCount() != 0 {
		t.Errorf("counters = %d/%d, want 0/0", s.WordCount(), s.AnagramCount())
	}
}

func TestDeleteIncludeAnagramsRequiresMembership(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "read", "dear")

	// "dare" shares the key but is not indexed; its anagrams must
	// survive.
	n, err := s.Delete("dare", DeleteOptions{IncludeAnagrams: true})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 0 {
		t.Errorf("group delete of unknown word removed %d, want 0", n)
	}
	if s.WordCount() != 2 {
		t.Errorf("WordCount() = %d, want 2", s.WordCount())
	}
}

func TestDeleteIncludeAnagramsProperNounMember(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "Canadas", "sadanca")

	// Membership is checked structurally: the lowercase form of a
	// proper-noun entry counts as a member.
	n, err := s.Delete("canadas", DeleteOptions{IncludeAnagrams: true})
	if err != nil {
		t.Fatalf("Delete failed: %v", err)
	}
	if n != 2 {
		t.Errorf("group delete removed %d, want 2", n)
	}
}

func TestCounterAlgebra(t *testing.T) {
	s := NewInMemory()

	// n pairwise-anagram words contribute n-1 anagrams.
	mustAdd(t, s, "aster", "rates", "stare", "tears", "tares")
	if s.WordCount() != 5 || s.AnagramCount() != 4 {
		t.Fatalf("counters = %d/%d, want 5/4", s.WordCount(), s.AnagramCount())
	}

	// Deleting one member of a group decrements both counters.
	s.Delete("rates", DeleteOptions{})
	if s.WordCount() != 4 || s.AnagramCount() != 3 {
		t.Errorf("counters = %d/%d, want 4/3", s.WordCount(), s.AnagramCount())
	}

	// Deleting down to a singleton: the last removal out of a pair takes
	// one word and one anagram.
	s.Delete("stare", DeleteOptions{})
	s.Delete("tears", DeleteOptions{})
	if s.WordCount() != 2 || s.AnagramCount() != 1 {
		t.Errorf("counters = %d/%d, want 2/1", s.WordCount(), s.AnagramCount())
	}

	// Removing one of the last pair is an anagram removal; removing the
	// final singleton is not.
	s.Delete("tares", DeleteOptions{})
	if s.WordCount() != 1 || s.AnagramCount() != 0 {
		t.Errorf("counters = %d/%d, want 1/0", s.WordCount(), s.AnagramCount())
	}
	s.Delete("aster", DeleteOptions{})
	if s.WordCount() != 0 || s.AnagramCount() != 0 {
		t.Errorf("counters = %d/%d, want 0/0", s.WordCount(), s.AnagramCount())
	}
}

func TestClear(t *testing.T) {
	s := NewInMemory()
	mustAdd(t, s, "read", "dear", "dare", "care")

	s.Clear()

	if s.WordCount() != 0 || s.AnagramCount() != 0 {
		t.Errorf("counters after Clear = %d/%d, want 0/0", s.WordCount(), s.AnagramCount())
	}
	got, err := s.Get("read", GetOptions{})
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if len(got) != 0 {
		t.Errorf("Get after Clear = %v, want empty", got)
	}
	if groups := s.MaxCardinalityAnagrams(); len(groups) != 0 {
		t.Errorf("MaxCardinalityAnagrams after Clear = %v, want empty", groups)
	}
	if stats := s.Stats(); stats.Words != 0 || stats.Anagrams != 0 {
		t.Errorf("Stats after Clear = %+v, want zeros", stats)
	}
}

func TestLoad(t *testing.T) {
	tests := []struct {
		name    string
		source  string
		want    models.LoadResult
		wantErr bool
	}{
		{
			name:   "Simple Word List",
			source: "read dear\ndare\ncare\n",
			want:   models.LoadResult{Words: 4, Anagrams: 2},
		},
		{
			name:   "Invalid Tokens Swallowed",
			source: "read x9 dear -bad dare",
			want:   models.LoadResult{Words: 3, Anagrams: 2, Rejected: 2},
		},
		{
			name:   "Duplicates Counted Once",
			source: "read read dear",
			want:   models.LoadResult{Words: 2, Anagrams: 1},
		},
		{
			name:   "Empty Source",
			source: "",
			want:   models.LoadResult{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			s := NewInMemory()
			got, err := s.Load(strings.NewReader(tt.source))
			if (err != nil) != tt.wantErr {
				t.Fatalf("Load() error = %v, wantErr %v", err, tt.wantErr)
			}
			if got != tt.want {
				t.Errorf("Load() = %+v, want %+v", got, tt.want)
			}
			if s.WordCount() != tt.want.Words {
				t.Errorf("WordCount() = %d, want %d", s.WordCount(), tt.want.Words)
			}
		})
	}
}

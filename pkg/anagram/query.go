package anagram

import (
	"sort"

	"github.com/hansifer/anagram-server/internal/models"
	"github.com/hansifer/anagram-server/pkg/words"
)

// Query methods scan the whole store; none of them mutate state. Sets
// come back in the store's enumeration order unless noted.

// AnagramsByCardinality returns every anagram group whose size falls in
// [min, max]. min clamps up to 2 (singleton sets have no anagrams); a
// non-positive max means unbounded, and a positive max below min clamps
// up to min.
func (s *Service) AnagramsByCardinality(min, max int) [][]string {
	min, max = clampBounds(min, max)

	var groups [][]string
	s.store.Each(func(_ string, set []string) {
		if len(set) >= min && (max == 0 || len(set) <= max) {
			groups = append(groups, set)
		}
	})
	return groups
}

// AnagramsByLength returns every anagram group whose word length falls
// in [min, max], with the same bounds semantics as
// AnagramsByCardinality. Singleton sets never qualify.
func (s *Service) AnagramsByLength(min, max int) [][]string {
	min, max = clampBounds(min, max)

	var groups [][]string
	s.store.Each(func(key string, set []string) {
		if len(set) < 2 {
			return
		}
		if len(key) >= min && (max == 0 || len(key) <= max) {
			groups = append(groups, set)
		}
	})
	return groups
}

// MaxCardinalityAnagrams returns the anagram groups tied at the largest
// set size. Single pass: a strictly larger size resets the accumulator.
// Seeding the maximum at 1 keeps singleton sets out.
func (s *Service) MaxCardinalityAnagrams() [][]string {
	best := 1
	var groups [][]string
	s.store.Each(func(_ string, set []string) {
		switch {
		case len(set) > best:
			best = len(set)
			groups = [][]string{set}
		case len(set) == best:
			groups = append(groups, set)
		}
	})
	return groups
}

// MaxLengthAnagrams returns the anagram groups tied at the longest word
// length, using the same single-pass strategy. Singleton sets never
// qualify.
func (s *Service) MaxLengthAnagrams() [][]string {
	best := 0
	var groups [][]string
	s.store.Each(func(key string, set []string) {
		if len(set) < 2 {
			return
		}
		switch {
		case len(key) > best:
			best = len(key)
			groups = [][]string{set}
		case len(key) == best:
			groups = append(groups, set)
		}
	})
	return groups
}

// AreAnagrams reports whether all supplied words are mutual anagrams
// known to the dictionary. Fewer than two words is false. The first word
// anchors the check; every other word must match an entry of the
// anchor's anagram set. The anchor is excluded from its own set, so a
// repeated anchor word later in the list can never match.
func (s *Service) AreAnagrams(list []string) bool {
	if len(list) < 2 {
		return false
	}

	anchors, err := s.Get(list[0], GetOptions{})
	if err != nil || len(anchors) == 0 {
		return false
	}

	for _, w := range list[1:] {
		matched := false
		for _, entry := range anchors {
			if w == entry || words.SameWord(w, entry) {
				matched = true
				break
			}
		}
		if !matched {
			return false
		}
	}
	return true
}

// Stats scans the dictionary once, collecting every word length and the
// size of every group with at least two members, and summarizes both
// distributions. Word and anagram totals come from the maintained
// counters, not the scan.
func (s *Service) Stats() models.DictionaryStats {
	var lengths, sizes []int
	s.store.Each(func(key string, set []string) {
		for range set {
			lengths = append(lengths, len(key))
		}
		if len(set) >= 2 {
			sizes = append(sizes, len(set))
		}
	})

	return models.DictionaryStats{
		Words:       s.wordCount,
		Anagrams:    s.anagramCount,
		WordLengths: summarize(lengths),
		GroupSizes:  summarize(sizes),
	}
}

// clampBounds normalizes query bounds: min at least 2, max either
// unbounded (0) or at least min.
func clampBounds(min, max int) (int, int) {
	if min < 2 {
		min = 2
	}
	if max <= 0 {
		return min, 0
	}
	if max < min {
		max = min
	}
	return min, max
}

// summarize computes min/max/median/average of values. Min and max are
// linear scans; the median sorts a copy numerically.
func summarize(values []int) models.Distribution {
	if len(values) == 0 {
		return models.Distribution{}
	}

	min, max, sum := values[0], values[0], 0
	for _, v := range values {
		if v < min {
			min = v
		}
		if v > max {
			max = v
		}
		sum += v
	}

	sorted := append([]int{}, values...)
	sort.Ints(sorted)
	var median float64
	mid := len(sorted) / 2
	if len(sorted)%2 == 1 {
		median = float64(sorted[mid])
	} else {
		median = float64(sorted[mid-1]+sorted[mid]) / 2
	}

	return models.Distribution{
		Min:     min,
		Max:     max,
		Median:  median,
		Average: float64(sum) / float64(len(values)),
	}
}

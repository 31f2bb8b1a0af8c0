package models

// AddResult reports the counter deltas of a single add: one word and
// possibly one anagram, or nothing for a duplicate.
type AddResult struct {
	Word    int `json:"word"`
	Anagram int `json:"anagram"`
}

// LoadResult aggregates a bulk ingest: cumulative add deltas plus the
// number of tokens rejected as invalid.
type LoadResult struct {
	Words    int `json:"words"`
	Anagrams int `json:"anagrams"`
	Rejected int `json:"rejected"`
}

// Distribution summarizes a sequence of integers observed during a
// dictionary scan.
type Distribution struct {
	Min     int     `json:"min"`
	Max     int     `json:"max"`
	Median  float64 `json:"median"`
	Average float64 `json:"average"`
}

// DictionaryStats is the aggregate statistics record: running counters
// plus distributions of word lengths and anagram-group sizes.
type DictionaryStats struct {
	Words       int          `json:"words"`
	Anagrams    int          `json:"anagrams"`
	WordLengths Distribution `json:"wordLengths"`
	GroupSizes  Distribution `json:"groupSizes"`
}

// AffinityResult reports one configured anagram-affinity check.
type AffinityResult struct {
	Words       []string `json:"words"`
	AreAnagrams bool     `json:"areAnagrams"`
}

// Report is the full output of an application run.
type Report struct {
	Load          LoadResult       `json:"load"`
	Stats         *DictionaryStats `json:"stats,omitempty"`
	Largest       [][]string       `json:"largestGroups,omitempty"`
	Longest       [][]string       `json:"longestGroups,omitempty"`
	ByCardinality [][]string       `json:"anagramsByCardinality,omitempty"`
	ByLength      [][]string       `json:"anagramsByLength,omitempty"`
	Checks        []AffinityResult `json:"checks,omitempty"`
	TimeElapsed   int              `json:"timeElapsedMs"`
}

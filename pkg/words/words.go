// Package words holds the pure word-classification and normalization
// functions the anagram service is built on. The alphabet is fixed to
// ASCII letters plus internal hyphens; case is significant.
package words

import (
	"sort"
	"strings"
)

// IsValidWord reports whether s is a well-formed word: one or more ASCII
// letters, optionally followed by repeated groups of a single hyphen plus
// one or more letters. No leading or trailing hyphen, no double hyphen.
func IsValidWord(s string) bool {
	if s == "" {
		return false
	}
	letters := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case isLetter(c):
			letters++
		case c == '-':
			// A hyphen must sit between letter groups.
			if letters == 0 || i == len(s)-1 {
				return false
			}
			letters = 0
		default:
			return false
		}
	}
	return letters > 0
}

// IsProperNoun reports whether s is a proper noun: first character
// uppercase, everything else lowercase, except that a character
// immediately following a hyphen may be either case.
func IsProperNoun(s string) bool {
	if s == "" || !isUpper(s[0]) {
		return false
	}
	for i := 1; i < len(s); i++ {
		c := s[i]
		if c == '-' || s[i-1] == '-' {
			continue
		}
		if !isLower(c) {
			return false
		}
	}
	return true
}

// Normalize derives the canonical anagram key of a word: lowercase the
// word and sort its characters by code point. Hyphens sort as ordinary
// characters. Two words share a key iff they have the same
// case-insensitive character multiset.
func Normalize(s string) string {
	b := []byte(strings.ToLower(s))
	sort.Slice(b, func(i, j int) bool { return b[i] < b[j] })
	return string(b)
}

// SameWord reports whether candidate structurally matches target,
// allowing a lowercase candidate to match its proper-noun counterpart
// ("canadas" matches "Canadas"). Hyphenated words match component-wise.
func SameWord(candidate, target string) bool {
	if len(candidate) != len(target) {
		return false
	}
	if candidate == target {
		return true
	}
	if strings.Contains(target, "-") {
		cp := strings.Split(candidate, "-")
		tp := strings.Split(target, "-")
		if len(cp) != len(tp) {
			return false
		}
		for i := range cp {
			if !SameWord(cp[i], tp[i]) {
				return false
			}
		}
		return true
	}
	return capitalize(candidate) == target
}

// capitalize uppercases only the first character.
func capitalize(s string) string {
	if s == "" || !isLower(s[0]) {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func isLetter(c byte) bool { return isLower(c) || isUpper(c) }
func isLower(c byte) bool  { return c >= 'a' && c <= 'z' }
func isUpper(c byte) bool  { return c >= 'A' && c <= 'Z' }

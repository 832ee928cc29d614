// Package wordlist loads and filters candidate vocabularies for the solver.
package wordlist

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"strings"
)

// Load reads a word list from a file, one word per line. Words are
// lowercased and trimmed; blank lines and '#' comments are skipped; words
// outside [minLength, maxLength] are dropped. maxLength <= 0 means no
// upper bound. Words must be ASCII lowercase letters after normalization.
func Load(ctx context.Context, path string, minLength, maxLength int) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	var words []string
	scanner := bufio.NewScanner(f)
	for scanner.Scan() {
		if ctx.Err() != nil {
			return nil, ctx.Err()
		}
		word := strings.ToLower(strings.TrimSpace(scanner.Text()))
		if word == "" || strings.HasPrefix(word, "#") {
			continue
		}
		if len(word) < minLength || (maxLength > 0 && len(word) > maxLength) {
			continue
		}
		for _, r := range word {
			if r < 'a' || r > 'z' {
				return nil, fmt.Errorf("word %s contains non-lowercase letter %q", word, r)
			}
		}
		words = append(words, word)
	}
	return words, scanner.Err()
}

// Filter removes excluded words and duplicates, preserving first-seen order.
func Filter(words, excluded []string) []string {
	drop := make(map[string]bool, len(excluded))
	for _, w := range excluded {
		drop[w] = true
	}

	var kept []string
	seen := make(map[string]bool, len(words))
	for _, w := range words {
		if drop[w] || seen[w] {
			continue
		}
		seen[w] = true
		kept = append(kept, w)
	}
	return kept
}

// ByLength buckets words by length. Handy for sizing domains ahead of node
// consistency and for word-list diagnostics.
func ByLength(words []string) map[int][]string {
	buckets := make(map[int][]string)
	for _, w := range words {
		buckets[len(w)] = append(buckets[len(w)], w)
	}
	return buckets
}

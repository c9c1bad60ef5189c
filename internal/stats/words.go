package stats

import (
	"sort"
	"strings"
	"unicode"
	"unicode/utf8"
)

var DefaultStopwords = []string{
	"a", "an", "and", "are", "as", "at", "be", "but", "by", "for", "from",
	"have", "he", "her", "his", "i", "if", "in", "is", "it", "its", "me",
	"my", "no", "not", "of", "on", "or", "our", "she", "so", "that", "the",
	"their", "them", "there", "they", "this", "to", "was", "we", "were",
	"what", "with", "you", "your",
}

type WordCount struct {
	Word  string
	Count int
}

// WordFrequencies counts lowercased words in corpus, skipping stopwords,
// single characters and tokens without letters. It returns at most n
// entries (all when n <= 0), count descending then alphabetical.
func WordFrequencies(corpus string, stopwords []string, n int) []WordCount {
	stop := make(map[string]bool, len(stopwords))
	for _, w := range stopwords {
		stop[strings.ToLower(w)] = true
	}

	counts := make(map[string]int)
	for _, tok := range strings.Fields(corpus) {
		w := strings.ToLower(strings.TrimFunc(tok, func(r rune) bool {
			return !unicode.IsLetter(r) && !unicode.IsNumber(r)
		}))
		if utf8.RuneCountInString(w) < 2 || stop[w] || !hasLetter(w) {
			continue
		}
		counts[w]++
	}

	out := make([]WordCount, 0, len(counts))
	for w, c := range counts {
		out = append(out, WordCount{Word: w, Count: c})
	}
	sort.Slice(out, func(a, b int) bool {
		if out[a].Count != out[b].Count {
			return out[a].Count > out[b].Count
		}
		return out[a].Word < out[b].Word
	})
	if n > 0 && len(out) > n {
		out = out[:n]
	}
	return out
}

func hasLetter(s string) bool {
	for _, r := range s {
		if unicode.IsLetter(r) {
			return true
		}
	}
	return false
}

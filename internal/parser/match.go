package parser

import (
	"sort"
	"strings"

	"github.com/agnivade/levenshtein"
)

// Match is a scored candidate for a fuzzy lookup.
type Match struct {
	Value string
	Score float64
}

// Rank scores every candidate against input: exact hits first, then
// prefixes, then edit-distance matches within a length-scaled limit.
// Candidates that are too far away are dropped.
func Rank(input string, candidates []string) []Match {
	token := Normalise(input)
	if token == "" {
		return nil
	}
	results := make([]Match, 0, len(candidates))
	for _, raw := range candidates {
		cand := Normalise(raw)
		if cand == "" {
			continue
		}
		score := 0.0
		switch {
		case token == cand:
			score = 1.0
		case strings.HasPrefix(cand, token) && len(token) >= 2:
			score = 0.9
		default:
			if len(token) < 3 {
				continue
			}
			dist := levenshtein.ComputeDistance(token, cand)
			if dist > levenshteinLimit(len(cand)) {
				continue
			}
			score = 0.72 - (0.08 * float64(dist))
		}
		results = append(results, Match{Value: raw, Score: score})
	}
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score == results[j].Score {
			return results[i].Value < results[j].Value
		}
		return results[i].Score > results[j].Score
	})
	return results
}

// Closest returns the best candidate for input, if any is close enough.
func Closest(input string, candidates []string) (string, bool) {
	ranked := Rank(input, candidates)
	if len(ranked) == 0 {
		return "", false
	}
	return ranked[0].Value, true
}

func levenshteinLimit(length int) int {
	switch {
	case length <= 4:
		return 1
	case length <= 8:
		return 2
	default:
		return 3
	}
}

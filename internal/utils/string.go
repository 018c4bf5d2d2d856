package utils

import (
	"context"

	"github.com/texttheater/golang-levenshtein/levenshtein"
)

// FindClosestString returns the candidate with the smallest edit distance to s, ok is false if no candidate
// is at most maxDifferences edits away or if ctx is done.
func FindClosestString(ctx context.Context, candidates []string, s string, maxDifferences int) (closest string, distance int, ok bool) {
	target := []rune(s)
	distance = -1

	for _, candidate := range candidates {
		if ctx.Err() != nil {
			return "", 0, false
		}

		d := levenshtein.DistanceForStrings([]rune(candidate), target, levenshtein.DefaultOptions)
		if d <= maxDifferences && (distance < 0 || d < distance) {
			closest = candidate
			distance = d
		}
	}

	if distance < 0 {
		return "", 0, false
	}
	return closest, distance, true
}

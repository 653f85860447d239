package services

import "math/rand"

// EntryRating scores a journal entry in [0,10].
//
// TODO: call the mood-analysis service once it ships; for now the text is
// ignored and the rating is a uniform random placeholder. Replacements
// must keep this signature so callers stay unchanged.
func EntryRating(entry string) int {
	_ = entry
	return rand.Intn(11)
}

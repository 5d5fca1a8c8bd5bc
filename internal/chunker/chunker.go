// Package chunker splits text into fixed-length pieces for the translation
// service.
//
// Lengths are counted in characters (runes), never bytes, so a chunk never
// splits a multi-byte character. A chunk of DefaultSize characters can still
// exceed the service's byte limit once it holds multi-byte text.
package chunker

import "iter"

// DefaultSize is the number of characters per chunk sent to the service.
const DefaultSize = 450

// Chunks yields consecutive, non-overlapping slices of text holding at most
// size characters each. The sequence can be ranged over any number of times.
// Empty text yields nothing. A size below 1 falls back to DefaultSize.
func Chunks(text string, size int) iter.Seq[string] {
	if size <= 0 {
		size = DefaultSize
	}
	return func(yield func(string) bool) {
		start, count := 0, 0
		for i := range text {
			if count == size {
				if !yield(text[start:i]) {
					return
				}
				start, count = i, 0
			}
			count++
		}
		if start < len(text) {
			yield(text[start:])
		}
	}
}

// Split collects Chunks into a slice.
func Split(text string, size int) []string {
	var out []string
	for chunk := range Chunks(text, size) {
		out = append(out, chunk)
	}
	return out
}

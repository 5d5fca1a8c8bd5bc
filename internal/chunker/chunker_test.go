package chunker

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestSplit(t *testing.T) {
	tests := []struct {
		name           string
		text           string
		size           int
		expectedChunks int
	}{
		{name: "empty text", text: "", size: DefaultSize, expectedChunks: 0},
		{name: "short text", text: "hello", size: DefaultSize, expectedChunks: 1},
		{name: "exactly one chunk", text: strings.Repeat("a", 450), size: DefaultSize, expectedChunks: 1},
		{name: "one over", text: strings.Repeat("a", 451), size: DefaultSize, expectedChunks: 2},
		{name: "two full chunks", text: strings.Repeat("a", 900), size: DefaultSize, expectedChunks: 2},
		{name: "partial tail", text: strings.Repeat("a", 1000), size: DefaultSize, expectedChunks: 3},
		{name: "small size", text: "abcdefg", size: 3, expectedChunks: 3},
		{name: "zero size uses default", text: strings.Repeat("a", 451), size: 0, expectedChunks: 2},
		{name: "multi-byte counted by character", text: strings.Repeat("é", 450), size: DefaultSize, expectedChunks: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			chunks := Split(tt.text, tt.size)

			if len(chunks) != tt.expectedChunks {
				t.Fatalf("Split() returned %d chunks, want %d", len(chunks), tt.expectedChunks)
			}
			if joined := strings.Join(chunks, ""); joined != tt.text {
				t.Errorf("Split() chunks do not reconstruct the input")
			}
		})
	}
}

func TestSplit_ChunkCountMatchesCeiling(t *testing.T) {
	for _, n := range []int{0, 1, 449, 450, 451, 899, 900, 901, 1350, 4000} {
		text := strings.Repeat("x", n)
		want := (n + DefaultSize - 1) / DefaultSize

		if got := len(Split(text, DefaultSize)); got != want {
			t.Errorf("len(Split(%d chars)) = %d, want %d", n, got, want)
		}
	}
}

func TestSplit_PreservesOrder(t *testing.T) {
	text := strings.Repeat("a", 450) + strings.Repeat("b", 450) + "c"
	chunks := Split(text, DefaultSize)

	want := []string{strings.Repeat("a", 450), strings.Repeat("b", 450), "c"}
	if len(chunks) != len(want) {
		t.Fatalf("got %d chunks, want %d", len(chunks), len(want))
	}
	for i := range want {
		if chunks[i] != want[i] {
			t.Errorf("chunk %d = %q..., want %q...", i, chunks[i][:1], want[i][:1])
		}
	}
}

func TestSplit_NeverSplitsRunes(t *testing.T) {
	text := strings.Repeat("日本語", 301)
	for i, chunk := range Split(text, DefaultSize) {
		if !utf8.ValidString(chunk) {
			t.Errorf("chunk %d is not valid UTF-8", i)
		}
		if n := utf8.RuneCountInString(chunk); n > DefaultSize {
			t.Errorf("chunk %d holds %d characters, want at most %d", i, n, DefaultSize)
		}
	}
}

func TestChunks_Restartable(t *testing.T) {
	seq := Chunks(strings.Repeat("z", 1000), DefaultSize)

	first, second := 0, 0
	for range seq {
		first++
	}
	for range seq {
		second++
	}
	if first != 3 || second != 3 {
		t.Errorf("ranging twice yielded %d and %d chunks, want 3 and 3", first, second)
	}
}

func TestChunks_StopsEarly(t *testing.T) {
	seen := 0
	for range Chunks(strings.Repeat("z", 2000), DefaultSize) {
		seen++
		if seen == 2 {
			break
		}
	}
	if seen != 2 {
		t.Errorf("break after 2 chunks saw %d", seen)
	}
}

// A full chunk of two-byte characters is larger than the service's 500 byte
// limit. Chunking by character does not guard against this.
func TestSplit_MultiByteChunkExceedsServiceLimit(t *testing.T) {
	chunks := Split(strings.Repeat("ñ", 900), DefaultSize)
	if len(chunks) != 2 {
		t.Fatalf("got %d chunks, want 2", len(chunks))
	}
	if n := len(chunks[0]); n <= 500 {
		t.Errorf("first chunk is %d bytes, expected it to exceed 500", n)
	}
}

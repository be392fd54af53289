package curriculum

import "strings"

// boundaryDelimiters are checked in this exact order; the first delimiter
// present anywhere in the window wins with its last occurrence. The set
// covers Latin and Arabic sentence terminators.
var boundaryDelimiters = []string{".\n", "؟\n", "!\n", ". ", "؟ ", "! "}

type Chunker struct {
	chunkSize int
	overlap   int
}

// NewChunker creates a chunker producing windows of at most chunkSize
// characters that overlap by overlap characters. An overlap of chunkSize
// or more is clamped to chunkSize-1 so the cursor always advances.
func NewChunker(chunkSize, overlap int) *Chunker {
	if chunkSize <= 0 {
		chunkSize = 1000
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= chunkSize {
		overlap = chunkSize - 1
	}
	return &Chunker{
		chunkSize: chunkSize,
		overlap:   overlap,
	}
}

// Split cuts text into overlapping chunks, preferring to end each chunk
// just after a sentence boundary found inside the window. When no boundary
// exists the window is cut hard at chunkSize. Chunk texts are trimmed;
// chunks that trim down to the empty string are kept.
//
// Counting is done in runes so Arabic text is never cut mid-codepoint.
func (c *Chunker) Split(text string) []string {
	runes := []rune(text)

	var chunks []string
	start := 0

	for start < len(runes) {
		end := start + c.chunkSize
		if end > len(runes) {
			end = len(runes)
		}
		window := runes[start:end]

		// the final chunk is never shrunk to a boundary
		if end < len(runes) {
			for _, delim := range boundaryDelimiters {
				if i := lastIndexRunes(window, []rune(delim)); i >= 0 {
					window = window[:i+len([]rune(delim))]
					break
				}
			}
		}

		chunks = append(chunks, strings.TrimSpace(string(window)))

		start += c.chunkSize - c.overlap
	}

	return chunks
}

func lastIndexRunes(haystack, needle []rune) int {
	for i := len(haystack) - len(needle); i >= 0; i-- {
		match := true
		for j := range needle {
			if haystack[i+j] != needle[j] {
				match = false
				break
			}
		}
		if match {
			return i
		}
	}
	return -1
}

package chunker

// Chunk is a bounded window of source text prepared for embedding.
type Chunk struct {
	Content string
	Offset  int // rune offset of the chunk within the source text
}

// Splitter splits text into fixed-size overlapping windows.
// Sizes are measured in runes so multi-byte text never gets cut mid-character.
type Splitter struct {
	size    int
	overlap int
}

// NewSplitter creates a splitter with the given window size and overlap.
func NewSplitter(size, overlap int) *Splitter {
	if size <= 0 {
		size = 500 // Default
	}
	if overlap < 0 {
		overlap = 0
	}
	if overlap >= size {
		overlap = size - 1
	}
	return &Splitter{
		size:    size,
		overlap: overlap,
	}
}

// Split cuts text into consecutive windows of at most size runes, with
// overlap runes shared between consecutive windows. The output is
// deterministic and never contains an empty chunk; input shorter than
// one window yields a single chunk.
func (s *Splitter) Split(text string) []Chunk {
	runes := []rune(text)
	if len(runes) == 0 {
		return nil
	}

	step := s.size - s.overlap
	var chunks []Chunk
	for start := 0; start < len(runes); start += step {
		end := start + s.size
		if end > len(runes) {
			end = len(runes)
		}
		chunks = append(chunks, Chunk{
			Content: string(runes[start:end]),
			Offset:  start,
		})
		if end == len(runes) {
			break
		}
	}
	return chunks
}

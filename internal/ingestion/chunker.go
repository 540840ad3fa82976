package ingestion

// Chunker splits document text into fixed-size windows with overlap so
// neighbouring chunks share context. Sizes and offsets are in runes,
// never bytes: policy documents carry accented names and Arabic text,
// and a byte window would cut multi-byte characters in half before
// they reach the embedding model.
type Chunker struct {
	ChunkSize    int
	ChunkOverlap int
}

// Chunk is one window of a document. Start and End are rune offsets
// into the original text.
type Chunk struct {
	Index   int
	Start   int
	End     int
	Content string
}

func NewChunker(chunkSize, overlap int) *Chunker {
	return &Chunker{
		ChunkSize:    chunkSize,
		ChunkOverlap: overlap,
	}
}

func (c *Chunker) ChunkText(text string) []Chunk {
	// Validate chunk size and overlap
	if c.ChunkSize <= 0 || c.ChunkOverlap < 0 || c.ChunkOverlap >= c.ChunkSize {
		return []Chunk{}
	}

	runes := []rune(text)
	n := len(runes)
	step := c.ChunkSize - c.ChunkOverlap

	results := []Chunk{}
	for i, chunkIndex := 0, 0; i < n; i, chunkIndex = i+step, chunkIndex+1 {
		end := i + c.ChunkSize
		if end > n {
			end = n
		}

		results = append(results, Chunk{
			Index:   chunkIndex,
			Content: string(runes[i:end]),
			Start:   i,
			End:     end,
		})
	}

	return results
}

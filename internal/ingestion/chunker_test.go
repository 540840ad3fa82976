package ingestion

import (
	"strings"
	"testing"
	"unicode/utf8"
)

func TestChunkText(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		overlap   int
		text      string
		want      int
	}{
		{
			name:      "Empty text",
			chunkSize: 10,
			overlap:   2,
			text:      "",
			want:      0,
		},
		{
			name:      "Text shorter than chunk size",
			chunkSize: 100,
			overlap:   10,
			text:      "short text",
			want:      1,
		},
		{
			name:      "Invalid overlap",
			chunkSize: 10,
			overlap:   10,
			text:      "some text that should not chunk",
			want:      0,
		},
		{
			name:      "Zero chunk size",
			chunkSize: 0,
			overlap:   0,
			text:      "anything",
			want:      0,
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			chunker := NewChunker(test.chunkSize, test.overlap)
			chunks := chunker.ChunkText(test.text)
			if len(chunks) != test.want {
				t.Errorf("chunks: %d, want: %d", len(chunks), test.want)
			}
		})
	}
}

func TestChunkText_OverlapIsPreserved(t *testing.T) {
	chunker := NewChunker(10, 4)
	text := strings.Repeat("abcdefghij", 3)

	chunks := chunker.ChunkText(text)

	if len(chunks) < 2 {
		t.Fatalf("expected at least 2 chunks, got %d", len(chunks))
	}

	for i := 1; i < len(chunks); i++ {
		prev := chunks[i-1]
		curr := chunks[i]

		if curr.Start != prev.Start+chunker.ChunkSize-chunker.ChunkOverlap {
			t.Errorf("chunk %d start: %d, want: %d", i, curr.Start, prev.Start+chunker.ChunkSize-chunker.ChunkOverlap)
		}

		if curr.Index != prev.Index+1 {
			t.Errorf("chunk indexes must be sequential")
		}
	}
}

func TestChunkText_CoversWholeText(t *testing.T) {
	chunker := NewChunker(7, 2)
	text := "the quick brown fox jumps over the lazy dog"

	chunks := chunker.ChunkText(text)

	last := chunks[len(chunks)-1]
	if last.End != len(text) {
		t.Errorf("last chunk end: %d, want: %d", last.End, len(text))
	}
}

func TestChunkText_MultiByteCharactersStayIntact(t *testing.T) {
	tests := []struct {
		name      string
		chunkSize int
		overlap   int
		text      string
	}{
		{
			name:      "accented latin",
			chunkSize: 3,
			overlap:   0,
			text:      "ééééé",
		},
		{
			name:      "arabic policy text",
			chunkSize: 5,
			overlap:   2,
			text:      "سياسة الإجازة السنوية ثلاثون يوما",
		},
		{
			name:      "mixed ascii and multi-byte",
			chunkSize: 4,
			overlap:   1,
			text:      "café señor übermäßig",
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			chunker := NewChunker(test.chunkSize, test.overlap)
			chunks := chunker.ChunkText(test.text)

			if len(chunks) == 0 {
				t.Fatal("expected at least one chunk")
			}

			for _, chunk := range chunks {
				if !utf8.ValidString(chunk.Content) {
					t.Errorf("chunk %d contains invalid UTF-8: %q", chunk.Index, chunk.Content)
				}
				if got := utf8.RuneCountInString(chunk.Content); got > test.chunkSize {
					t.Errorf("chunk %d has %d runes, want at most %d", chunk.Index, got, test.chunkSize)
				}
			}

			last := chunks[len(chunks)-1]
			if last.End != utf8.RuneCountInString(test.text) {
				t.Errorf("last chunk end: %d, want: %d", last.End, utf8.RuneCountInString(test.text))
			}
		})
	}
}

package ingestion

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
)

type Document struct {
	ID       string
	Title    string
	Content  string
	FilePath string
}

type Parser struct {
}

func NewParser() *Parser {
	return &Parser{}
}

// ParseFile reads a .txt or .md document. Markdown documents take
// their title from the first level-one heading when present, so the
// search results cite "Annual Leave Policy" rather than a file name.
func (p *Parser) ParseFile(path string) (*Document, error) {
	path = strings.TrimSpace(path)

	ext := filepath.Ext(path)
	if ext != ".txt" && ext != ".md" {
		return nil, fmt.Errorf("unsupported file type %s (expected .txt or .md)", ext)
	}

	bytes, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read file %s: %w", path, err)
	}

	content := string(bytes)
	if strings.TrimSpace(content) == "" {
		return nil, fmt.Errorf("file %s is empty", path)
	}

	return &Document{
		ID:       uuid.New().String(),
		Title:    documentTitle(path, ext, content),
		Content:  content,
		FilePath: path,
	}, nil
}

func documentTitle(path string, ext string, content string) string {
	if ext == ".md" {
		for _, line := range strings.Split(content, "\n") {
			line = strings.TrimSpace(line)
			if heading, ok := strings.CutPrefix(line, "# "); ok {
				if heading = strings.TrimSpace(heading); heading != "" {
					return heading
				}
			}
		}
	}

	return strings.TrimSuffix(filepath.Base(path), ext)
}

package database

import "fmt"

type Document struct {
	Id         string
	Title      string
	SourcePath string
}

func (d *Document) Print() string {
	return fmt.Sprintf("Document_id: %s - Title: %s", d.Id, d.Title)
}

type Chunk struct {
	Id            string
	DocumentID    string
	DocumentTitle string
	Content       string
	ChunkIndex    int
	Distance      float64
	Rank          float64
}

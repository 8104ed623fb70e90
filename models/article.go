package models

import "strconv"

// Article is a published reading, its Content is markdown.
type Article struct {
	ID          int    `json:"id" yaml:"id"`
	Title       string `json:"title" yaml:"title"`
	Category    string `json:"category" yaml:"category"`
	Date        string `json:"date" yaml:"date"`
	Description string `json:"description" yaml:"description"`
	Content     string `json:"content,omitempty" yaml:"content"`
	Author      string `json:"author,omitempty" yaml:"author"`
	ImageURL    string `json:"image" yaml:"image"`
}

// CatalogID is empty when the id is missing, so the store rejects the item.
func (a Article) CatalogID() string {
	if a.ID <= 0 {
		return ""
	}
	return strconv.Itoa(a.ID)
}

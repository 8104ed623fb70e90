package models

import "strconv"

// Remedy is an entry of the ayurvedic remedies collection.
type Remedy struct {
	ID          int      `json:"remedy_id" yaml:"remedy_id"`
	Name        string   `json:"name" yaml:"name"`
	Subtitle    string   `json:"subtitle" yaml:"subtitle"`
	Category    string   `json:"category,omitempty" yaml:"category"`
	Description string   `json:"description" yaml:"description"`
	Uses        []string `json:"remedy_uses" yaml:"remedy_uses"`
	Ingredients []string `json:"ingredients" yaml:"ingredients"`
	Steps       []string `json:"steps" yaml:"steps"`
	Cautions    []string `json:"cautions,omitempty" yaml:"cautions"`
	ImageURL    string   `json:"image_url" yaml:"image_url"`
}

// CatalogID is empty when the id is missing, so the store rejects the item.
func (r Remedy) CatalogID() string {
	if r.ID <= 0 {
		return ""
	}
	return strconv.Itoa(r.ID)
}

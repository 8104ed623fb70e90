package models

import "html/template"

// CatalogCard is the generic display record every catalog type projects into.
// Cards drive both the grid and the detail overlay.
type CatalogCard struct {
	ID          string            `json:"id"`
	Kind        string            `json:"kind"`
	Title       string            `json:"title"`
	Subtitle    string            `json:"subtitle,omitempty"`
	Category    string            `json:"category,omitempty"`
	Description string            `json:"description"`
	Preview     string            `json:"preview"`
	ImageRef    string            `json:"imageRef"`
	Sections    []CardSection     `json:"sections,omitempty"`
	Attributes  map[string]string `json:"attributes,omitempty"`
	Body        template.HTML     `json:"-"`
}

// CardSection is a titled, ordered list of tag entries (uses, ingredients, steps).
type CardSection struct {
	Title    string   `json:"title"`
	Entries  []string `json:"entries"`
	Numbered bool     `json:"numbered"`
}

// Attr returns a named attribute or "".
func (c CatalogCard) Attr(name string) string {
	if c.Attributes == nil {
		return ""
	}
	return c.Attributes[name]
}

// CatalogImage is an image file found in the catalog images folder.
type CatalogImage struct {
	Kind        string `json:"kind"`
	ItemID      string `json:"itemId"`
	DriveFileID string `json:"driveFileId"`
	FileName    string `json:"fileName"`
	ImageURL    string `json:"imageUrl"`
}

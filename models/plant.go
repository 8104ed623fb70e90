package models

import "strconv"

// Plant is an entry of the herbal plants library.
type Plant struct {
	ID               int      `json:"plant_id" yaml:"plant_id"`
	BotanicalName    string   `json:"botanical_name" yaml:"botanical_name"`
	LocalName        string   `json:"local_name" yaml:"local_name"`
	Description      string   `json:"plant_description" yaml:"plant_description"`
	MedicinalUses    []string `json:"medicinal_uses" yaml:"medicinal_uses"`
	CultivationSteps []string `json:"cultivation_steps" yaml:"cultivation_steps"`
	ImageURL         string   `json:"image_url" yaml:"image_url"`
}

// CatalogID is empty when the id is missing, so the store rejects the item.
func (p Plant) CatalogID() string {
	if p.ID <= 0 {
		return ""
	}
	return strconv.Itoa(p.ID)
}

package models

// Doctor is a practitioner listed in the doctors directory.
type Doctor struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name" yaml:"name"`
	Title      string   `json:"title" yaml:"title"`
	Speciality string   `json:"speciality" yaml:"speciality"`
	Location   string   `json:"location" yaml:"location"`
	Rating     float64  `json:"rating" yaml:"rating"`
	Experience string   `json:"experience,omitempty" yaml:"experience"`
	Languages  []string `json:"languages,omitempty" yaml:"languages"`
	Bio        string   `json:"bio,omitempty" yaml:"bio"`
	ImageURL   string   `json:"img" yaml:"img"`
}

func (d Doctor) CatalogID() string {
	return d.ID
}

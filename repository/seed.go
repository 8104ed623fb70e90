package repository

import (
	"bytes"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"ayurconnect/models"
)

//go:embed seed/catalog.yaml
var embeddedSeed []byte

// Seed is the static data set served when no database or backend is configured.
type Seed struct {
	Plants   []models.Plant   `yaml:"plants"`
	Remedies []models.Remedy  `yaml:"remedies"`
	Articles []models.Article `yaml:"articles"`
	Doctors  []models.Doctor  `yaml:"doctors"`
	Bookings []models.Booking `yaml:"bookings"`
}

// LoadSeed parses the seed file at path, or the embedded seed when path is empty.
func LoadSeed(path string) (*Seed, error) {
	data := embeddedSeed
	if path != "" {
		raw, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read seed file: %w", err)
		}
		data = raw
	}
	return ParseSeed(data)
}

// ParseSeed decodes seed YAML. Unknown keys are rejected so typos surface early.
func ParseSeed(data []byte) (*Seed, error) {
	var seed Seed
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&seed); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse seed: %w", err)
	}
	return &seed, nil
}

package utils

import (
	"fmt"
	"regexp"
	"strings"
)

var imageNamePattern = regexp.MustCompile(`^(plants|remedies|articles|doctors)-([a-z0-9][a-z0-9-]*)\.(png|jpg|jpeg)$`)

// ParseImageName parses a catalog image filename following the pattern:
// KIND-ITEMID.EXT
// Example: plants-3.png, doctors-d-1.jpg
func ParseImageName(filename string) (kind string, itemID string, err error) {
	name := strings.ToLower(strings.TrimSpace(filename))
	matches := imageNamePattern.FindStringSubmatch(name)
	if len(matches) != 4 {
		return "", "", fmt.Errorf("invalid image filename %q: expected KIND-ITEMID.(png|jpg|jpeg)", filename)
	}
	return matches[1], matches[2], nil
}

package presentation

import (
	"fmt"
	"io/fs"

	"weather-forecast/internal/models"
)

// IconSet maps a weather category to an icon path relative to the web root.
type IconSet map[string]string

// DefaultIcons covers exactly the four categories the page has artwork for.
var DefaultIcons = IconSet{
	"Clear":  "images/clear.svg",
	"Clouds": "images/cloud.svg",
	"Rain":   "images/rain.svg",
	"Snow":   "images/snow.svg",
}

// Icon returns an UnmappedCategory error for anything outside the set.
func (s IconSet) Icon(category string) (string, error) {
	icon, ok := s[category]
	if !ok {
		return "", models.NewUnmappedCategory(category)
	}

	return icon, nil
}

// Verify checks that every icon in the set exists in fsys.
func (s IconSet) Verify(fsys fs.FS) error {
	for category, icon := range s {
		if _, err := fs.Stat(fsys, icon); err != nil {
			return fmt.Errorf("icon for %s: %w", category, err)
		}
	}

	return nil
}

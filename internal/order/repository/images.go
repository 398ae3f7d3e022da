package repository

import "encoding/json"

// fish_listings.images is stored as a JSON array of URLs.
func decodeImages(raw string) []string {
	if raw == "" {
		return nil
	}
	var images []string
	if err := json.Unmarshal([]byte(raw), &images); err != nil {
		return nil
	}
	return images
}

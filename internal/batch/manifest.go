package batch

import (
	"encoding/json"
	"os"
)

// ManifestEntry represents one frame in the output manifest.
type ManifestEntry struct {
	Frame int     `json:"frame"`
	Time  float64 `json:"time"`
	Image string  `json:"image"`
}

// WriteManifest writes manifest.json to the output directory.
func WriteManifest(path string, frames int, fps float64) error {
	entries := make([]ManifestEntry, frames)
	for i := range entries {
		entries[i] = ManifestEntry{
			Frame: i,
			Time:  float64(i) / fps,
			Image: FrameName(i),
		}
	}

	data, err := json.MarshalIndent(entries, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

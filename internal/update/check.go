package update

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

const checkInterval = 24 * time.Hour

const lastCheckFile = "last-update-check.json"

// LastCheck stores information about the most recent update check.
type LastCheck struct {
	CheckedAt     time.Time `json:"checked_at"`
	LatestVersion string    `json:"latest_version"`
	ReleaseURL    string    `json:"release_url"`
	Available     bool      `json:"available"`
}

// ShouldCheck reports whether enough time has passed since the last check.
func ShouldCheck(dataDir string) bool {
	last, err := loadLastCheck(dataDir)
	if err != nil {
		// If we can't load the info, we should check.
		return true
	}
	return time.Since(last.CheckedAt) > checkInterval
}

// SaveLastCheck records the outcome of a check in the data directory.
func SaveLastCheck(dataDir string, info *Info) error {
	last := LastCheck{
		CheckedAt:     time.Now(),
		LatestVersion: info.LatestVersion,
		ReleaseURL:    info.ReleaseURL,
		Available:     info.Available,
	}

	data, err := json.MarshalIndent(last, "", "  ")
	if err != nil {
		return err
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dataDir, lastCheckFile), data, 0o644)
}

func loadLastCheck(dataDir string) (*LastCheck, error) {
	data, err := os.ReadFile(filepath.Join(dataDir, lastCheckFile))
	if err != nil {
		return nil, err
	}

	var last LastCheck
	if err := json.Unmarshal(data, &last); err != nil {
		return nil, err
	}
	return &last, nil
}

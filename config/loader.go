package config

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"
)

// regionOverrideFile is the on-disk shape of a region override file.
type regionOverrideFile struct {
	Regions []RegionProfile `json:"regions"`
}

// LoadRegionOverrides merges region profiles from a JSON file into the
// registry. Entries with a known name replace the built-in profile; new
// names are added. An empty path is a no-op.
func LoadRegionOverrides(path string) error {
	if path == "" {
		return nil
	}

	absPath, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("failed to get absolute path: %v", err)
	}

	data, err := os.ReadFile(absPath)
	if err != nil {
		return fmt.Errorf("failed to read region overrides: %v", err)
	}

	var file regionOverrideFile
	if err := json.Unmarshal(data, &file); err != nil {
		return fmt.Errorf("failed to parse region overrides: %v", err)
	}

	regionLock.Lock()
	defer regionLock.Unlock()

	for _, profile := range file.Regions {
		if profile.Name == "" {
			return fmt.Errorf("region override without a name")
		}
		if len(profile.Suburbs) == 0 {
			profile.Suburbs = defaultSuburbs
		}
		if profile.PostcodeRange <= 0 {
			profile.PostcodeRange = 1
		}
		regionProfiles[strings.ToLower(profile.Name)] = profile
	}

	return nil
}

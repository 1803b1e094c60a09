package config

import (
	"encoding/json"
	"os"

	"github.com/dmitrijs2005/gophsettings/internal/flagx"
)

// parseJSON overlays the JSON file named by -c / -config onto cfg. Keys
// missing from the file keep their current values. Without the flag it is
// a no-op.
func parseJSON(cfg *Config, args []string) error {
	path := flagx.ConfigFilePath(args)
	if path == "" {
		return nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	return json.Unmarshal(data, cfg)
}

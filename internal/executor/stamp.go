package executor

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"
)

// stampFile sits at the checkout root and records the last successful
// build of that checkout.
const stampFile = ".buildfarm.json"

type stamp struct {
	Commit    string    `json:"commit"`
	BuildTime time.Time `json:"build_time"`
}

func readStamp(dir string) (*stamp, error) {
	data, err := os.ReadFile(filepath.Join(dir, stampFile))
	if err != nil {
		return nil, err
	}
	var s stamp
	if err := json.Unmarshal(data, &s); err != nil {
		return nil, err
	}
	return &s, nil
}

func writeStamp(dir string, s *stamp) error {
	data, err := json.MarshalIndent(s, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(filepath.Join(dir, stampFile), data, 0o644)
}

package timeline

import (
	"os"

	"gopkg.in/yaml.v3"
)

// Script is the on-disk form of a timed lyric set, produced by the sync
// editors and transcription pipeline upstream of the engine.
type Script struct {
	Version string  `yaml:"version"`
	Entries []Entry `yaml:"entries"`
}

// WriteScript writes a script to a YAML file.
func WriteScript(script *Script, path string) error {
	data, err := yaml.Marshal(script)
	if err != nil {
		return err
	}

	return os.WriteFile(path, data, 0644)
}

// ReadScript reads a script from a YAML file.
func ReadScript(path string) (*Script, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}

	var script Script
	if err := yaml.Unmarshal(data, &script); err != nil {
		return nil, err
	}

	return &script, nil
}

package dataset

import (
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"
)

type file struct {
	Reports []Row `yaml:"reports"`
}

// Read parses a YAML document of the form
//
//	reports:
//	  - {location: Charminar, lat: 17.3616, lon: 78.4747, status: Needs Repair}
func Read(r io.Reader) (*Dataset, error) {
	var f file
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && err != io.EOF {
		return nil, fmt.Errorf("failed to decode dataset: %w", err)
	}
	return New(f.Reports), nil
}

// Load reads the dataset file at path, or returns the sample when path is empty.
func Load(path string) (*Dataset, error) {
	if path == "" {
		return Sample(), nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dataset %s: %w", path, err)
	}
	defer f.Close()
	d, err := Read(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return d, nil
}

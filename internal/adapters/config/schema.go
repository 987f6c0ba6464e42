package config

// Recipefile represents the structure of the forge.yaml recipe file.
type Recipefile struct {
	Version    string   `yaml:"version"`
	Settings   []string `yaml:"settings"`
	Generators []string `yaml:"generators"`
	Requires   []string `yaml:"requires"`
	Layout     string   `yaml:"layout"`
}

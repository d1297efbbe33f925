package config

// SettingsVersion is the only settings schema version understood. An omitted
// version is read as this one.
const SettingsVersion = "1"

// Settingsfile represents the structure of the wxpack.yaml settings file.
type Settingsfile struct {
	Version  string              `yaml:"version"`
	Platform string              `yaml:"platform"`
	Entry    map[string][]string `yaml:"entry"`
	Output   OutputDTO           `yaml:"output"`
	Workers  int                 `yaml:"workers"`
	Warmup   *bool               `yaml:"warmup"`
	Steps    map[string][]string `yaml:"steps"`
}

// OutputDTO represents the output section of the settings file.
type OutputDTO struct {
	Filename   string `yaml:"filename"`
	PublicPath string `yaml:"publicPath"`
}

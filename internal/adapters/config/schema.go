package config

// Overlayfile represents the structure of the overlay.yaml configuration file.
type Overlayfile struct {
	Site     SiteDTO `yaml:"site"`
	Template string  `yaml:"template"`
	Cache    string  `yaml:"cache"`
	SEF      bool    `yaml:"sef"`
	Request  string  `yaml:"request"`
}

// SiteDTO describes where the site lives on disk and on the web.
type SiteDTO struct {
	Root  string `yaml:"root"`
	URL   string `yaml:"url"`
	Base  string `yaml:"base"`
	Admin bool   `yaml:"admin"`
}

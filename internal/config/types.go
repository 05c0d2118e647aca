package config

// Document is the on-disk gradient dataset.
type Document struct {
	Version   string  `yaml:"version" validate:"required,oneof=1"`
	Gradients []Entry `yaml:"gradients" validate:"dive"`
}

// Entry describes a single gradient swatch.
type Entry struct {
	Name  string   `yaml:"name" validate:"required,max=100"`
	Start string   `yaml:"start" validate:"required,rgbhex"`
	End   string   `yaml:"end" validate:"required,rgbhex"`
	Tags  []string `yaml:"tags,omitempty" validate:"omitempty,dive,tag"`
}

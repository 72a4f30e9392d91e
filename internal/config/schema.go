package config

// Config holds ascr configuration.
// Stored at: {home}/config.yaml
type Config struct {
	Project  ProjectCfg  `mapstructure:"project" yaml:"project"`
	Classify ClassifyCfg `mapstructure:"classify" yaml:"classify"`
	OCR      OCRCfg      `mapstructure:"ocr" yaml:"ocr"`
}

// ProjectCfg describes the document set being processed.
type ProjectCfg struct {
	Name        string `mapstructure:"name" yaml:"name"`
	Description string `mapstructure:"description" yaml:"description"`
}

// ClassifyCfg configures the content classifier.
type ClassifyCfg struct {
	SearchWindow   int    `mapstructure:"search_window" yaml:"search_window"`       // leading characters of a line inspected for patterns
	HeaderWindow   int    `mapstructure:"header_window" yaml:"header_window"`       // leading characters inspected for running headers
	MappingConfig  string `mapstructure:"mapping_config" yaml:"mapping_config"`     // mapping config path override
	KeepBlankPages bool   `mapstructure:"keep_blank_pages" yaml:"keep_blank_pages"` // false trims blank pages from unit edges before splitting
}

// OCRCfg configures the OCR collaborator used for scanned pages.
type OCRCfg struct {
	Type       string  `mapstructure:"type" yaml:"type"`             // "openai"
	Model      string  `mapstructure:"model" yaml:"model"`           // Model name
	APIKey     string  `mapstructure:"api_key" yaml:"api_key"`       // API key (supports ${ENV_VAR} syntax)
	RateLimit  float64 `mapstructure:"rate_limit" yaml:"rate_limit"` // Requests per second
	MaxRetries int     `mapstructure:"max_retries" yaml:"max_retries"`
	Enabled    bool    `mapstructure:"enabled" yaml:"enabled"`
}

// DefaultConfig returns configuration with sensible defaults.
func DefaultConfig() *Config {
	return &Config{
		Project: ProjectCfg{
			Name:        "standard",
			Description: "건설기준 문서 자동 분류",
		},
		Classify: ClassifyCfg{
			SearchWindow:   10,
			HeaderWindow:   15,
			KeepBlankPages: true,
		},
		OCR: OCRCfg{
			Type:       "openai",
			Model:      "gpt-4o-mini",
			APIKey:     "${OPENAI_API_KEY}",
			RateLimit:  8.0,
			MaxRetries: 3,
			Enabled:    false,
		},
	}
}

// ResolveOCRKey returns the OCR API key with ${ENV_VAR} references expanded.
func (c *Config) ResolveOCRKey() string {
	return ResolveEnvVars(c.OCR.APIKey)
}

package model

import "time"

// Config holds the complete runtime configuration
type Config struct {
	Dataset     DatasetConfig     `yaml:"dataset" mapstructure:"dataset"`
	Output      OutputConfig      `yaml:"output" mapstructure:"output"`
	Charts      ChartsConfig      `yaml:"charts" mapstructure:"charts"`
	Cache       CacheConfig       `yaml:"cache" mapstructure:"cache"`
	Concurrency ConcurrencyConfig `yaml:"concurrency" mapstructure:"concurrency"`
	LLM         LLMConfig         `yaml:"llm" mapstructure:"llm"`
}

// DatasetConfig controls how the source CSV is located and parsed
type DatasetConfig struct {
	Path       string `yaml:"path" mapstructure:"path"`               // Default CSV path when no argument is given
	DateLayout string `yaml:"date_layout" mapstructure:"date_layout"` // Go layout for the date column
}

// OutputConfig controls report artifacts
type OutputConfig struct {
	Dir           string `yaml:"dir" mapstructure:"dir"` // Directory for JSON/Markdown/chart/Excel artifacts
	JSON          bool   `yaml:"json" mapstructure:"json"`
	Markdown      bool   `yaml:"markdown" mapstructure:"markdown"`
	Excel         bool   `yaml:"excel" mapstructure:"excel"`
	Verbose       bool   `yaml:"verbose" mapstructure:"verbose"`
	IncludeFooter bool   `yaml:"include_footer" mapstructure:"include_footer"`
}

// ChartsConfig controls PNG chart rendering
type ChartsConfig struct {
	Enabled      bool    `yaml:"enabled" mapstructure:"enabled"`
	WidthInches  float64 `yaml:"width_inches" mapstructure:"width_inches"`
	HeightInches float64 `yaml:"height_inches" mapstructure:"height_inches"`
}

// CacheConfig controls the parsed-dataset cache
type CacheConfig struct {
	Enabled   bool          `yaml:"enabled" mapstructure:"enabled"`
	Dir       string        `yaml:"dir" mapstructure:"dir"`
	MemoryTTL time.Duration `yaml:"memory_ttl" mapstructure:"memory_ttl"`
	DiskTTL   time.Duration `yaml:"disk_ttl" mapstructure:"disk_ttl"`
}

// ConcurrencyConfig controls batch processing
type ConcurrencyConfig struct {
	Workers int `yaml:"workers" mapstructure:"workers"`
}

// LLMConfig controls the optional narrative summary
type LLMConfig struct {
	Provider  string `yaml:"provider" mapstructure:"provider"` // "openai" or "" (disabled)
	Model     string `yaml:"model" mapstructure:"model"`
	APIKey    string `yaml:"-" mapstructure:"-"` // Never persisted; env only
	BaseURL   string `yaml:"base_url" mapstructure:"base_url"`
	Timeout   int    `yaml:"timeout" mapstructure:"timeout"` // seconds
	MaxTokens int    `yaml:"max_tokens" mapstructure:"max_tokens"`
}

// DefaultConfig returns sensible defaults
func DefaultConfig() *Config {
	return &Config{
		Dataset: DatasetConfig{
			Path:       "fatal-police-shootings-data.csv",
			DateLayout: "2006-01-02",
		},
		Output: OutputConfig{
			Dir:           "./usdeaths-reports",
			JSON:          true,
			Markdown:      true,
			Excel:         false,
			IncludeFooter: true,
		},
		Charts: ChartsConfig{
			Enabled:      true,
			WidthInches:  8,
			HeightInches: 5,
		},
		Cache: CacheConfig{
			Enabled:   true,
			Dir:       "", // Resolved to ~/.usdeaths/cache at runtime
			MemoryTTL: 30 * time.Minute,
			DiskTTL:   24 * time.Hour,
		},
		Concurrency: ConcurrencyConfig{
			Workers: 4,
		},
		LLM: LLMConfig{
			Provider:  "", // Disabled by default
			Model:     "",
			Timeout:   30,
			MaxTokens: 1000,
		},
	}
}

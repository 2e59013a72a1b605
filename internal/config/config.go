// Package config provides configuration management for the fti pipeline.
package config

import (
	"errors"
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/kelseyhightower/envconfig"
	"gopkg.in/yaml.v3"

	"github.com/mattsblocklist/fti/internal/fetch"
	"github.com/mattsblocklist/fti/internal/scrapers"
)

// EnvPrefix prefixes every environment override, e.g. FTI_HTTP_TIMEOUT or
// FTI_SOURCES_MONEY_SUPPLY_URL.
const EnvPrefix = "FTI"

// Config represents the application configuration.
type Config struct {
	HTTP    HTTPConfig    `yaml:"http"`
	Cache   CacheConfig   `yaml:"cache"`
	Sources SourcesConfig `yaml:"sources"`
	Report  ReportConfig  `yaml:"report"`
	Logging LoggingConfig `yaml:"logging"`

	// Weights overrides the composite weighting, keyed by family.
	Weights map[string]float64 `yaml:"weights" ignored:"true" validate:"omitempty,dive,keys,required,endkeys,gte=0,lte=1"`

	// Aliases and Blocs extend the built-in name tables.
	Aliases map[string]string   `yaml:"aliases" ignored:"true" validate:"omitempty,dive,keys,required,endkeys,required"`
	Blocs   map[string][]string `yaml:"blocs" ignored:"true" validate:"omitempty,dive,keys,required,endkeys,min=1,dive,len=2"`
}

// HTTPConfig holds settings for fetching remote sources.
type HTTPConfig struct {
	Timeout   time.Duration `yaml:"timeout" validate:"gt=0"`
	UserAgent string        `yaml:"user_agent" split_words:"true" validate:"required"`
	RPS       float64       `yaml:"rps" validate:"gt=0"`
	Burst     int           `yaml:"burst" validate:"gte=1"`
}

// CacheConfig holds the response cache settings.
type CacheConfig struct {
	Enabled bool          `yaml:"enabled"`
	Path    string        `yaml:"path" validate:"required_if=Enabled true"`
	TTL     time.Duration `yaml:"ttl" validate:"gte=0"`
}

// SourcesConfig holds the remote source locations.
type SourcesConfig struct {
	CBDC              string      `yaml:"cbdc" validate:"required,url"`
	MoneySupply       TableConfig `yaml:"money_supply" split_words:"true"`
	SocialSecurity    TableConfig `yaml:"social_security" split_words:"true"`
	PersonalIncomeTax TableConfig `yaml:"personal_income_tax" split_words:"true"`
	Inflation         TableConfig `yaml:"inflation"`
}

// TableConfig locates one HTML table source.
type TableConfig struct {
	URL  string   `yaml:"url" validate:"required,url"`
	Skip []string `yaml:"skip"`
}

// ReportConfig controls the emitted report.
type ReportConfig struct {
	Delimiter string   `yaml:"delimiter"`
	Fields    []string `yaml:"fields"`
	XLSX      string   `yaml:"xlsx"`
}

// LoggingConfig holds logging settings.
type LoggingConfig struct {
	Level  string `yaml:"level" validate:"oneof=debug info warn error"`
	Format string `yaml:"format" validate:"oneof=json text"`
}

// Default returns the default configuration.
func Default() *Config {
	src := scrapers.DefaultSources()
	return &Config{
		HTTP: HTTPConfig{
			Timeout:   30 * time.Second,
			UserAgent: fetch.DefaultUserAgent,
			RPS:       1,
			Burst:     1,
		},
		Cache: CacheConfig{
			Enabled: true,
			Path:    "fti-cache.sqlite",
			TTL:     24 * time.Hour,
		},
		Sources: SourcesConfig{
			CBDC:              src.CBDC,
			MoneySupply:       tableConfig(src.MoneySupply),
			SocialSecurity:    tableConfig(src.SocialSecurity),
			PersonalIncomeTax: tableConfig(src.PersonalIncomeTax),
			Inflation:         tableConfig(src.Inflation),
		},
		Report: ReportConfig{
			Delimiter: ";",
		},
		Logging: LoggingConfig{
			Level:  "info",
			Format: "text",
		},
	}
}

// Load builds the configuration from defaults, an optional YAML file and
// FTI_* environment overrides, in that order. Environment variables in the
// file are expanded before parsing.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil {
			return nil, fmt.Errorf("failed to read config file: %w", err)
		}

		expanded := os.ExpandEnv(string(data))
		if err := yaml.Unmarshal([]byte(expanded), cfg); err != nil {
			return nil, fmt.Errorf("failed to parse config: %w", err)
		}
	}

	if err := envconfig.Process(EnvPrefix, cfg); err != nil {
		return nil, fmt.Errorf("failed to load config from env: %w", err)
	}

	if err := cfg.Validate(); err != nil {
		return nil, fmt.Errorf("config validation failed: %w", err)
	}

	return cfg, nil
}

// Validate checks field constraints.
func (c *Config) Validate() error {
	v := validator.New()
	if err := v.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return err
		}
		msgs := make([]string, 0, len(verrs))
		for _, fe := range verrs {
			msgs = append(msgs, fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag()))
		}
		return errors.New(strings.Join(msgs, "; "))
	}
	return nil
}

// ScraperSources converts the source settings for the scraper registry.
func (c *Config) ScraperSources() scrapers.Sources {
	return scrapers.Sources{
		CBDC:              c.Sources.CBDC,
		MoneySupply:       c.Sources.MoneySupply.tableSource(),
		SocialSecurity:    c.Sources.SocialSecurity.tableSource(),
		PersonalIncomeTax: c.Sources.PersonalIncomeTax.tableSource(),
		Inflation:         c.Sources.Inflation.tableSource(),
	}
}

func tableConfig(s scrapers.TableSource) TableConfig {
	return TableConfig{URL: s.URL, Skip: append([]string(nil), s.Skip...)}
}

func (t TableConfig) tableSource() scrapers.TableSource {
	return scrapers.TableSource{URL: t.URL, Skip: append([]string(nil), t.Skip...)}
}

// Package config provides centralized configuration for the ZoneWatch
// service: server settings, the facility layout, the personnel roster, the
// violation rule catalog, and the natural-language augmentation settings.
package config

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/viper"
)

type Config struct {
	Server    ServerConfig    `mapstructure:"server"`
	Data      DataConfig      `mapstructure:"data"`
	Facility  FacilityConfig  `mapstructure:"facility"`
	Personnel []Person        `mapstructure:"personnel"`
	Rules     map[string]Rule `mapstructure:"rules"`
	Augment   AugmentConfig   `mapstructure:"augment"`
	Pipeline  PipelineConfig  `mapstructure:"pipeline"`
	Logging   LoggingConfig   `mapstructure:"logging"`
}

type ServerConfig struct {
	Port         int           `mapstructure:"port"`
	ReadTimeout  time.Duration `mapstructure:"read_timeout"`
	WriteTimeout time.Duration `mapstructure:"write_timeout"`
	IdleTimeout  time.Duration `mapstructure:"idle_timeout"`
}

type DataConfig struct {
	Dir string `mapstructure:"dir"`
}

// Rule is one entry of the violation rule catalog.
type Rule struct {
	Description      string  `mapstructure:"description"`
	ThresholdMinutes int     `mapstructure:"threshold_minutes"`
	Penalty          float64 `mapstructure:"penalty"`
}

// Person is a static personnel profile: the source of truth for identity and
// zone authorization. Never mutated by the pipeline.
type Person struct {
	ID              string   `mapstructure:"id" json:"id"`
	Name            string   `mapstructure:"name" json:"name"`
	AuthorizedZones []string `mapstructure:"authorized_zones" json:"authorized_zones"`
}

// Area is a rectangular named region of the facility grid, both corners
// inclusive.
type Area struct {
	Name      string `mapstructure:"name"`
	TopRow    int    `mapstructure:"top_row"`
	LeftCol   int    `mapstructure:"left_col"`
	BottomRow int    `mapstructure:"bottom_row"`
	RightCol  int    `mapstructure:"right_col"`
}

// Camera is a fixed camera position on the grid.
type Camera struct {
	ID  int `mapstructure:"id"`
	Row int `mapstructure:"row"`
	Col int `mapstructure:"col"`
}

type FacilityConfig struct {
	Rows            int      `mapstructure:"rows"`
	Cols            int      `mapstructure:"cols"`
	EntranceZone    string   `mapstructure:"entrance_zone"`
	RestrictedAreas []Area   `mapstructure:"restricted_areas"`
	SafeAreas       []Area   `mapstructure:"safe_areas"`
	Cameras         []Camera `mapstructure:"cameras"`
}

// AugmentConfig configures the external natural-language capability. An
// empty APIKey selects the no-op capability: the deterministic core still
// runs, incidents carry fallback narratives.
type AugmentConfig struct {
	APIKey                  string        `mapstructure:"api_key"`
	BaseURL                 string        `mapstructure:"base_url"`
	Model                   string        `mapstructure:"model"`
	Timeout                 time.Duration `mapstructure:"timeout"`
	Retries                 int           `mapstructure:"retries"`
	RetryBackoff            time.Duration `mapstructure:"retry_backoff"`
	CostInputPerMillionTok  float64       `mapstructure:"cost_input_per_million_tokens"`
	CostOutputPerMillionTok float64       `mapstructure:"cost_output_per_million_tokens"`
}

type PipelineConfig struct {
	Workers int `mapstructure:"workers"`
}

type LoggingConfig struct {
	Level  string `mapstructure:"level"`
	Format string `mapstructure:"format"`
}

func Load(configPath string) (*Config, error) {
	v := viper.New()

	// Set defaults
	v.SetDefault("server.port", 8090)
	v.SetDefault("server.read_timeout", "15s")
	v.SetDefault("server.write_timeout", "60s")
	v.SetDefault("server.idle_timeout", "60s")
	v.SetDefault("data.dir", "data")
	v.SetDefault("facility.rows", 25)
	v.SetDefault("facility.cols", 30)
	v.SetDefault("facility.entrance_zone", "Entrance")
	v.SetDefault("augment.api_key", "")
	v.SetDefault("augment.base_url", "https://api.openai.com/v1")
	v.SetDefault("augment.model", "gpt-4o-mini")
	v.SetDefault("augment.timeout", "30s")
	v.SetDefault("augment.retries", 1)
	v.SetDefault("augment.retry_backoff", "1s")
	v.SetDefault("augment.cost_input_per_million_tokens", 0.60)
	v.SetDefault("augment.cost_output_per_million_tokens", 2.40)
	v.SetDefault("pipeline.workers", 4)
	v.SetDefault("logging.level", "info")
	v.SetDefault("logging.format", "json")

	// Read config file
	if configPath != "" {
		v.SetConfigFile(configPath)
	} else {
		v.SetConfigName("config")
		v.SetConfigType("yaml")
		v.AddConfigPath(".")
		v.AddConfigPath("/etc/zonewatch")
	}

	// Environment variables override (ZONEWATCH_AUGMENT_API_KEY, etc.)
	v.SetEnvPrefix("ZONEWATCH")
	v.AutomaticEnv()
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))

	if err := v.ReadInConfig(); err != nil {
		if _, ok := err.(viper.ConfigFileNotFoundError); !ok {
			return nil, fmt.Errorf("failed to read config: %w", err)
		}
		// Config file not found; use defaults
	}

	var cfg Config
	if err := v.Unmarshal(&cfg); err != nil {
		return nil, fmt.Errorf("failed to unmarshal config: %w", err)
	}

	applyDefaults(&cfg)
	return &cfg, nil
}

// Default returns the built-in configuration without consulting any file or
// environment.
func Default() *Config {
	cfg := &Config{
		Server: ServerConfig{
			Port:         8090,
			ReadTimeout:  15 * time.Second,
			WriteTimeout: 60 * time.Second,
			IdleTimeout:  60 * time.Second,
		},
		Data: DataConfig{Dir: "data"},
		Facility: FacilityConfig{
			Rows:         25,
			Cols:         30,
			EntranceZone: "Entrance",
		},
		Augment: AugmentConfig{
			BaseURL:                 "https://api.openai.com/v1",
			Model:                   "gpt-4o-mini",
			Timeout:                 30 * time.Second,
			Retries:                 1,
			RetryBackoff:            time.Second,
			CostInputPerMillionTok:  0.60,
			CostOutputPerMillionTok: 2.40,
		},
		Pipeline: PipelineConfig{Workers: 4},
		Logging:  LoggingConfig{Level: "info", Format: "json"},
	}
	applyDefaults(cfg)
	return cfg
}

// applyDefaults fills the structured sections viper cannot default cleanly:
// the rule catalog, the roster, and the facility areas.
func applyDefaults(cfg *Config) {
	if len(cfg.Rules) == 0 {
		cfg.Rules = DefaultRules()
	}
	if len(cfg.Personnel) == 0 {
		cfg.Personnel = DefaultPersonnel()
	}
	if len(cfg.Facility.RestrictedAreas) == 0 {
		cfg.Facility.RestrictedAreas = defaultRestrictedAreas()
	}
	if len(cfg.Facility.SafeAreas) == 0 {
		cfg.Facility.SafeAreas = defaultSafeAreas()
	}
	if len(cfg.Facility.Cameras) == 0 {
		cfg.Facility.Cameras = defaultCameras()
	}
}

// DefaultRules is the built-in violation rule catalog.
func DefaultRules() map[string]Rule {
	return map[string]Rule{
		"loitering": {
			Description:      "Person stays in restricted area too long",
			ThresholdMinutes: 5,
			Penalty:          25,
		},
		"unauthorized_access": {
			Description: "Person enters a zone they are not authorized for",
			Penalty:     50,
		},
		"after_hours_access": {
			Description: "Access outside of normal operating hours (8am-6pm)",
			Penalty:     15,
		},
	}
}

// DefaultPersonnel is the built-in roster used when no personnel section is
// configured.
func DefaultPersonnel() []Person {
	return []Person{
		{ID: "P1", Name: "Alice", AuthorizedZones: []string{"Vault", "Equipment Room"}},
		{ID: "P2", Name: "Bob", AuthorizedZones: []string{"Server Room"}},
		{ID: "P3", Name: "Charlie", AuthorizedZones: []string{}},
		{ID: "P4", Name: "Dave", AuthorizedZones: []string{"Vault", "Server Room"}},
	}
}

func defaultRestrictedAreas() []Area {
	return []Area{
		{Name: "Entrance", TopRow: 10, LeftCol: 0, BottomRow: 14, RightCol: 2},
		{Name: "Vault", TopRow: 2, LeftCol: 2, BottomRow: 6, RightCol: 6},
		{Name: "Server Room", TopRow: 2, LeftCol: 20, BottomRow: 6, RightCol: 25},
		{Name: "Equipment Room", TopRow: 15, LeftCol: 5, BottomRow: 20, RightCol: 10},
	}
}

func defaultSafeAreas() []Area {
	return []Area{
		{TopRow: 0, LeftCol: 0, BottomRow: 2, RightCol: 29},
		{TopRow: 22, LeftCol: 0, BottomRow: 24, RightCol: 29},
	}
}

func defaultCameras() []Camera {
	return []Camera{
		{ID: 1, Row: 1, Col: 1},
		{ID: 2, Row: 1, Col: 28},
		{ID: 3, Row: 12, Col: 15},
		{ID: 4, Row: 23, Col: 15},
	}
}

package config

import (
	"os"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"
)

// Config is the global application configuration
var Config AppConfig

// Defaults applied after unmarshalling, before validation.
const (
	defaultPort             = 8080
	defaultSimilarityFloor  = 85
	defaultTieBreakMargin   = 5
	defaultAcceptThreshold  = 0.5
	defaultMaxHubStops      = 30
	defaultMaxLegCandidates = 400
	defaultMaxHubPairs      = 3
	defaultCacheSize        = 512
	defaultCacheTTLSeconds  = 300
	defaultBatchWorkers     = 4
)

// LoadAppConfig loads and validates the application configuration from the
// default path list.
func LoadAppConfig() error {
	return LoadAppConfigFrom("")
}

// LoadDefaults installs the built-in defaults without reading a file, for
// runs driven entirely by flags.
func LoadDefaults() {
	var cfg AppConfig
	applyDefaults(&cfg)
	Config = cfg
}

// LoadAppConfigFrom loads the configuration from an explicit path, falling
// back to config.yml in the working directory when path is empty.
func LoadAppConfigFrom(path string) error {
	paths := []string{"config.yml", "./config/config.yml"}
	if path != "" {
		paths = []string{path}
	}
	var data []byte
	var err error
	for _, p := range paths {
		data, err = os.ReadFile(p)
		if err == nil {
			break
		}
	}
	if err != nil {
		return err
	}
	var cfg AppConfig
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return err
	}
	applyDefaults(&cfg)
	v := validator.New()
	if err := v.Struct(cfg.Server); err != nil {
		return err
	}
	if err := v.Struct(cfg.Resolver); err != nil {
		return err
	}
	if err := v.Struct(cfg.Pathfinder); err != nil {
		return err
	}
	// feeds are optional; if present validate each
	for _, f := range cfg.Feeds {
		if err := v.Struct(f); err != nil {
			return err
		}
	}
	Config = cfg
	return nil
}

func applyDefaults(cfg *AppConfig) {
	if cfg.Server.Port == 0 {
		cfg.Server.Port = defaultPort
	}
	if cfg.Resolver.SimilarityFloor == 0 {
		cfg.Resolver.SimilarityFloor = defaultSimilarityFloor
	}
	if cfg.Resolver.TieBreakMargin == 0 {
		cfg.Resolver.TieBreakMargin = defaultTieBreakMargin
	}
	if cfg.Resolver.AcceptThreshold == 0 {
		cfg.Resolver.AcceptThreshold = defaultAcceptThreshold
	}
	if cfg.Pathfinder.MaxHubStops == 0 {
		cfg.Pathfinder.MaxHubStops = defaultMaxHubStops
	}
	if cfg.Pathfinder.MaxLegCandidates == 0 {
		cfg.Pathfinder.MaxLegCandidates = defaultMaxLegCandidates
	}
	if cfg.Pathfinder.MaxHubPairs == 0 {
		cfg.Pathfinder.MaxHubPairs = defaultMaxHubPairs
	}
	if cfg.Cache.Size == 0 {
		cfg.Cache.Size = defaultCacheSize
	}
	if cfg.Cache.TTLSeconds == 0 {
		cfg.Cache.TTLSeconds = defaultCacheTTLSeconds
	}
	if cfg.Batch.Workers == 0 {
		cfg.Batch.Workers = defaultBatchWorkers
	}
}

// SelectFeed chooses a feed by name; fallback to first; if none, use the
// top-level GTFS block.
func SelectFeed(name string) GTFSConfig {
	if name != "" {
		for _, f := range Config.Feeds {
			if f.Name == name {
				return f.GTFS
			}
		}
	}
	if len(Config.Feeds) > 0 {
		return Config.Feeds[0].GTFS
	}
	return Config.GTFS
}

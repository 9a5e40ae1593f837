package config

// ServerConfig contains HTTP server configuration
type ServerConfig struct {
	Port int `yaml:"port" validate:"gt=0"`
}

// GTFSConfig contains one timetable feed source. Exactly one of StaticURL
// and LocalPath should be set; CachePath enables the gob index cache.
type GTFSConfig struct {
	StaticURL string `yaml:"staticURL" validate:"omitempty,url"`
	LocalPath string `yaml:"localPath" validate:"omitempty"`
	CachePath string `yaml:"cachePath" validate:"omitempty"`
	AgencyID  string `yaml:"agency_id" validate:"omitempty"`
}

// GazetteerConfig points at the place reference data
type GazetteerConfig struct {
	CityListPath     string `yaml:"cityListPath" validate:"omitempty"`
	StationTablePath string `yaml:"stationTablePath" validate:"omitempty"`
}

// ResolverConfig contains the resolution thresholds
type ResolverConfig struct {
	SimilarityFloor int     `yaml:"similarityFloor" validate:"gte=0,lte=100"`
	TieBreakMargin  int     `yaml:"tieBreakMargin" validate:"gte=0,lte=100"`
	AcceptThreshold float64 `yaml:"acceptThreshold" validate:"gte=0,lte=1"`
}

// PathfinderConfig bounds the schedule search
type PathfinderConfig struct {
	MaxHubStops      int `yaml:"maxHubStops" validate:"gte=0"`
	MaxLegCandidates int `yaml:"maxLegCandidates" validate:"gte=0"`
	MaxHubPairs      int `yaml:"maxHubPairs" validate:"gte=0"`
}

// CacheConfig sizes the in-memory response cache
type CacheConfig struct {
	Size       int `yaml:"size" validate:"gte=0"`
	TTLSeconds int `yaml:"ttlSeconds" validate:"gte=0"`
}

// BatchConfig tunes batch processing
type BatchConfig struct {
	Workers int `yaml:"workers" validate:"gte=0"`
}

// Feed represents a single named timetable feed
type Feed struct {
	Name string     `yaml:"name" validate:"required"`
	GTFS GTFSConfig `yaml:"gtfs" validate:"required"`
}

// AppConfig is the root configuration structure
type AppConfig struct {
	Server     ServerConfig     `yaml:"server" validate:"required"`
	GTFS       GTFSConfig       `yaml:"gtfs"`
	Gazetteer  GazetteerConfig  `yaml:"gazetteer"`
	Resolver   ResolverConfig   `yaml:"resolver"`
	Pathfinder PathfinderConfig `yaml:"pathfinder"`
	Cache      CacheConfig      `yaml:"cache"`
	Batch      BatchConfig      `yaml:"batch"`
	Feeds      []Feed           `yaml:"feeds"`
}

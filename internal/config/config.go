package config

import "github.com/npillmayer/cefrlex"

// Config is the root configuration of the cefrlex command.
type Config struct {
	Languages []string      `yaml:"languages" env:"CEFRLEX_LANGUAGES" env-separator:"," env-default:"en,es,fr,de,it,pt,zh,ja"`
	Source    SourceConfig  `yaml:"source"`
	Resolve   ResolveConfig `yaml:"resolve"`
	Log       LogConfig     `yaml:"log"`

	// Langs holds Languages parsed by Validate.
	Langs []cefrlex.Language `yaml:"-" env:"-"`
}

// Source kinds.
const (
	SourceFile     = "file"
	SourceRedis    = "redis"
	SourcePostgres = "postgres"
)

// SourceConfig selects where dictionary payloads come from.
type SourceConfig struct {
	Kind     string         `yaml:"kind" env:"CEFRLEX_SOURCE" env-default:"file"`
	Dir      string         `yaml:"dir"  env:"CEFRLEX_DICT_DIR" env-default:"./dictionaries"`
	Redis    RedisConfig    `yaml:"redis"`
	Postgres PostgresConfig `yaml:"postgres"`
}

// RedisConfig holds Redis connection settings.
type RedisConfig struct {
	Addr     string `yaml:"addr"     env:"CEFRLEX_REDIS_ADDR"     env-default:"localhost:6379"`
	Password string `yaml:"password" env:"CEFRLEX_REDIS_PASSWORD"`
	DB       int    `yaml:"db"       env:"CEFRLEX_REDIS_DB"       env-default:"0"`
	Prefix   string `yaml:"prefix"   env:"CEFRLEX_REDIS_PREFIX"   env-default:"cefrlex"`
}

// PostgresConfig holds PostgreSQL connection settings.
type PostgresConfig struct {
	DSN   string `yaml:"dsn"   env:"CEFRLEX_DATABASE_DSN"`
	Table string `yaml:"table" env:"CEFRLEX_DATABASE_TABLE" env-default:"cefr_entries"`
}

// ResolveConfig tunes entry resolution.
type ResolveConfig struct {
	CacheSize int `yaml:"cache_size" env:"CEFRLEX_RESOLVE_CACHE" env-default:"0"`
}

// LogConfig holds logging settings.
type LogConfig struct {
	Level  string `yaml:"level"  env:"CEFRLEX_LOG_LEVEL"  env-default:"info"`
	Format string `yaml:"format" env:"CEFRLEX_LOG_FORMAT" env-default:"text"`
}

package config

import "github.com/caarlos0/env/v11"

type Config struct {
	LogLevel  string `env:"LOG_LEVEL" envDefault:"info"`
	LogFile   string `env:"LOG_FILE" envDefault:"logs/campaign-analyst.log"`
	HeaderRow int    `env:"HEADER_ROW" envDefault:"1"` // 1-based header row in the input file
	TopN      int    `env:"TOP_N" envDefault:"3"`      // ranking size per metric
}

func Load() (Config, error) {
	var cfg Config
	if err := env.Parse(&cfg); err != nil {
		return Config{}, err
	}
	if cfg.HeaderRow < 1 {
		cfg.HeaderRow = 1
	}
	if cfg.TopN < 1 {
		cfg.TopN = 3
	}
	return cfg, nil
}

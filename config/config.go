package config

import (
	"errors"
	"fmt"

	"blokus/engine"
	"blokus/game"
	"blokus/player"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel    string   `yaml:"log-level" env:"BLOKUS_LOG_LEVEL" env-default:"info"`
	LogFile     string   `yaml:"log-file" env:"BLOKUS_LOG_FILE" env-default:"blokus.log"`
	Players     int      `yaml:"players" env:"BLOKUS_PLAYERS" env-default:"4"`
	Controllers []string `yaml:"controllers" env:"BLOKUS_CONTROLLERS" env-separator:","`
	RecordDir   string   `yaml:"record-dir" env:"BLOKUS_RECORD_DIR"`
	Scoring     Scoring  `yaml:"scoring"`
}

// Scoring holds the end of game bonuses. The monomino bonus replaces, not adds to, the
// all-placed bonus.
type Scoring struct {
	AllPlacedBonus    int `yaml:"all-placed-bonus" env:"BLOKUS_ALL_PLACED_BONUS" env-default:"15"`
	MonominoLastBonus int `yaml:"monomino-last-bonus" env:"BLOKUS_MONOMINO_LAST_BONUS" env-default:"20"`
}

// Load reads the YAML file at path when one is given, then the environment.
func Load(path string) (*Config, error) {
	config := &Config{}

	var err error
	if path != "" {
		err = cleanenv.ReadConfig(path, config)
	} else {
		err = cleanenv.ReadEnv(config)
	}
	if err != nil {
		return nil, fmt.Errorf("unable to load config: %w", err)
	}

	return config, nil
}

// MustLoad - load the configuration or panic.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(err)
	}
	return config
}

// Kinds resolves the controller of every seat. Missing entries default to a human first
// seat and computers for the rest.
func (that *Config) Kinds() ([]player.Kind, error) {
	if that.Players < 1 {
		return nil, fmt.Errorf("%w: player count %d", engine.ErrInvalidConfig, that.Players)
	}
	if len(that.Controllers) > that.Players {
		return nil, fmt.Errorf("%w: %d controllers for %d players", engine.ErrInvalidConfig, len(that.Controllers), that.Players)
	}
	kinds := make([]player.Kind, that.Players)
	for i := range kinds {
		if i < len(that.Controllers) {
			kind, err := player.ParseKind(that.Controllers[i])
			if err != nil {
				return nil, errors.Join(engine.ErrInvalidConfig, err)
			}
			kinds[i] = kind
			continue
		}
		if i == 0 {
			kinds[i] = player.HumanKind
		} else {
			kinds[i] = player.ComputerKind
		}
	}
	return kinds, nil
}

// Rules returns the scoring rules with the configured bonuses.
func (that *Scoring) Rules() game.Rules {
	return &game.StandardRules{
		AllPlacedBonus:    that.AllPlacedBonus,
		MonominoLastBonus: that.MonominoLastBonus,
	}
}

// Engine converts the configuration into a validated engine configuration.
func (that *Config) Engine() (engine.Config, error) {
	kinds, err := that.Kinds()
	if err != nil {
		return engine.Config{}, err
	}
	cfg := engine.Config{
		PlayerCount: that.Players,
		Controllers: kinds,
		Rules:       that.Scoring.Rules(),
		Metrics:     that.RecordDir != "",
	}
	if err := cfg.Validate(); err != nil {
		return engine.Config{}, err
	}
	return cfg, nil
}

package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"

	"github.com/ilyakaznacheev/cleanenv"
)

type Config struct {
	LogLevel  string `yaml:"log-level" env:"TICTACTOE_LOG_LEVEL" env-default:"info"`
	LogFormat string `yaml:"log-format" env:"TICTACTOE_LOG_FORMAT" env-default:"json"`
	LogFile   string `yaml:"log-file" env:"TICTACTOE_LOG_FILE" env-default:"tictactoe.log"`
	UI        UI     `yaml:"ui"`
}

// UI keys default to false: cleanenv applies env-default to zero values, so a
// default of true could never be switched off from the file.
type UI struct {
	Inline       bool `yaml:"inline" env:"TICTACTOE_INLINE"`
	DisableMouse bool `yaml:"disable-mouse" env:"TICTACTOE_DISABLE_MOUSE"`
}

// MustLoad - load all configurations in config.yml file. A missing file is
// not an error: the environment and defaults are used instead.
func MustLoad(path string) *Config {
	config, err := Load(path)
	if err != nil {
		panic(fmt.Errorf("unable to load config file: %w", err))
	}

	return config
}

func Load(path string) (*Config, error) {
	config := &Config{}

	if _, err := os.Stat(path); errors.Is(err, fs.ErrNotExist) {
		if err = cleanenv.ReadEnv(config); err != nil {
			return nil, fmt.Errorf("could not read environment: %w", err)
		}

		return config, nil
	}

	if err := cleanenv.ReadConfig(path, config); err != nil {
		return nil, fmt.Errorf("could not read %s: %w", path, err)
	}

	return config, nil
}

// MouseEnabled reports whether clicks can be mapped onto the board. Mouse
// coordinates are only stable when the program owns the whole screen.
func (that *UI) MouseEnabled() bool {
	return !that.DisableMouse && !that.Inline
}

package config

import (
	"fmt"

	"github.com/caarlos0/env/v11"
)

// Env holds settings that may come from the environment. CLI flags default
// to these values.
type Env struct {
	DBPath     string `env:"PAINTDROP_DB"         envDefault:"~/.paintdrop/scores.db"`
	ConfigPath string `env:"PAINTDROP_CONFIG"`
	Difficulty string `env:"PAINTDROP_DIFFICULTY"`
	LogPath    string `env:"PAINTDROP_LOG"`
	SSHAddr    string `env:"PAINTDROP_SSH_ADDR"   envDefault:":23234"`
	FPS        int    `env:"PAINTDROP_FPS"        envDefault:"60"`
}

// LoadEnv reads Env from the process environment.
func LoadEnv() (Env, error) {
	var e Env
	if err := env.Parse(&e); err != nil {
		return e, fmt.Errorf("parse env: %w", err)
	}
	return e, nil
}

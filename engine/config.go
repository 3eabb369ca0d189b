package engine

import (
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Config controls a session. It is read from CARDS_* environment variables;
// the tag defaults apply to any variable that is unset.
type Config struct {
	Color   bool   `env:"CARDS_COLOR,default=true"`
	Shuffle bool   `env:"CARDS_SHUFFLE,default=true"`
	Prompt  string `env:"CARDS_PROMPT,default=cards>"`
	Verbose bool   `env:"CARDS_VERBOSE,default=false"`
}

// LoadConfig decodes the session config from the environment.
// Malformed values are an error rather than a zero value.
func LoadConfig() (Config, error) {
	var cfg Config
	if err := envdecode.StrictDecode(&cfg); err != nil {
		return Config{}, fmt.Errorf("loading config: %w", err)
	}
	return cfg, nil
}

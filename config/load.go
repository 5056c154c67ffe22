package config

import (
	"log"
	"os"
	"strconv"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/pkg/errors"
)

// Load overlays the TOML file at path onto the defaults
// An [[archetype]] table in the file replaces the whole default roster
func Load(path string) (*Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrapf(err, "read config %s", path)
	}
	if err := cfg.Decode(string(data)); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}
	return cfg, nil
}

// Decode overlays TOML text onto c, rejecting unknown keys
func (c *Config) Decode(text string) error {
	// Decoding into a populated slice overlays its elements, so the roster starts empty
	roster := c.Archetypes
	c.Archetypes = nil
	md, err := toml.Decode(text, c)
	if c.Archetypes == nil {
		c.Archetypes = roster
	}
	if err != nil {
		return errors.Wrap(err, "decode")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		return errors.Errorf("unknown keys: %s", strings.Join(keys, ", "))
	}
	return nil
}

// ApplyEnv overlays SLIME_* environment variables; unparsable values are logged and skipped
func (c *Config) ApplyEnv() {
	envFloat("SLIME_MAP_WIDTH", &c.World.Width)
	envFloat("SLIME_MAP_HEIGHT", &c.World.Height)
	envFloat("SLIME_CELL_SIZE", &c.Grid.CellSize)
	envInt("SLIME_TICK_RATE", &c.Tick.Rate)
	envInt("SLIME_BOSS_THRESHOLD", &c.Progression.BossKillThreshold)
	envFloat("SLIME_PLAYER_HP", &c.Player.HP)

	if v := os.Getenv("SLIME_AUDIO_ENABLED"); v != "" {
		if b, err := strconv.ParseBool(v); err == nil {
			c.Audio.Enabled = b
		} else {
			log.Printf("[config] SLIME_AUDIO_ENABLED=%q ignored: %v", v, err)
		}
	}

	// Volume is 0-100 in the environment
	if v := os.Getenv("SLIME_VOLUME"); v != "" {
		if n, err := strconv.Atoi(v); err == nil {
			c.Audio.Volume = min(max(float64(n)/100.0, 0), 1)
		} else {
			log.Printf("[config] SLIME_VOLUME=%q ignored: %v", v, err)
		}
	}
}

func envFloat(key string, dst *float64) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		log.Printf("[config] %s=%q ignored: %v", key, v, err)
		return
	}
	*dst = f
}

func envInt(key string, dst *int) {
	v := os.Getenv(key)
	if v == "" {
		return
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("[config] %s=%q ignored: %v", key, v, err)
		return
	}
	*dst = n
}

// Package config loads tone, timing and logging settings for morseus.
package config

import (
	"errors"
	"fmt"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/gigurra/morseus/cmd/common"
	"github.com/gigurra/morseus/cmd/morse/audio"
	"github.com/gigurra/morseus/cmd/morse/tone"
	"gopkg.in/yaml.v3"
)

// Tone holds the settings for one tone kind. Duration is in seconds.
type Tone struct {
	Frequency float64 `yaml:"frequency"`
	Duration  float64 `yaml:"duration"`
	Amplitude float64 `yaml:"amplitude"`
}

// Config is the on-disk configuration file.
type Config struct {
	Dot        Tone    `yaml:"dot"`
	Dash       Tone    `yaml:"dash"`
	Silence    Tone    `yaml:"silence"`
	Pause      float64 `yaml:"pause"`
	SampleRate int     `yaml:"sample_rate"`
	LogLevel   string  `yaml:"log_level"`
}

// Default returns the built-in tones, a 0.5s pause and 44.1 kHz.
func Default() Config {
	return Config{
		Dot:        fromSpec(tone.DefaultDot),
		Dash:       fromSpec(tone.DefaultDash),
		Silence:    fromSpec(tone.DefaultSilence),
		Pause:      audio.DefaultPause.Seconds(),
		SampleRate: tone.DefaultSampleRate,
		LogLevel:   "warn",
	}
}

// Path returns the default config file location.
func Path() string {
	return filepath.Join(common.ConfigDir(), "config.yaml")
}

// Load reads the config at path on top of the defaults, then applies
// environment overrides. A missing file yields the defaults.
func Load(path string) (Config, error) {
	cfg := Default()

	if path != "" {
		data, err := os.ReadFile(path)
		if err != nil && !errors.Is(err, os.ErrNotExist) {
			return cfg, fmt.Errorf("failed to read config file: %w", err)
		}
		if err == nil {
			if err := yaml.Unmarshal(data, &cfg); err != nil {
				return cfg, fmt.Errorf("failed to parse config file: %w", err)
			}
		}
	}

	if err := applyEnvOverrides(&cfg); err != nil {
		return cfg, err
	}
	if err := Validate(cfg); err != nil {
		return cfg, err
	}
	return cfg, nil
}

// Save writes cfg to path, creating parent directories.
func Save(path string, cfg Config) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	data, err := Marshal(cfg)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Marshal renders cfg as YAML.
func Marshal(cfg Config) ([]byte, error) {
	return yaml.Marshal(cfg)
}

// Validate rejects settings the renderer cannot use.
func Validate(cfg Config) error {
	var errs []error
	if cfg.SampleRate <= 0 {
		errs = append(errs, fmt.Errorf("sample_rate must be positive, got %d", cfg.SampleRate))
	}
	if cfg.Pause < 0 {
		errs = append(errs, fmt.Errorf("pause must not be negative, got %v", cfg.Pause))
	}
	for _, named := range []struct {
		name string
		tone Tone
	}{{"dot", cfg.Dot}, {"dash", cfg.Dash}, {"silence", cfg.Silence}} {
		if named.tone.Duration < 0 {
			errs = append(errs, fmt.Errorf("%s.duration must not be negative, got %v", named.name, named.tone.Duration))
		}
		if named.tone.Amplitude < 0 || named.tone.Amplitude > 1 {
			errs = append(errs, fmt.Errorf("%s.amplitude must be within [0, 1], got %v", named.name, named.tone.Amplitude))
		}
		if named.tone.Frequency < 0 {
			errs = append(errs, fmt.Errorf("%s.frequency must not be negative, got %v", named.name, named.tone.Frequency))
		}
	}
	return errors.Join(errs...)
}

// Generator builds a tone generator from the config.
func (c Config) Generator() *tone.Generator {
	g := tone.NewGenerator()
	g.SetTone(tone.Dot, c.Dot.spec())
	g.SetTone(tone.Dash, c.Dash.spec())
	g.SetTone(tone.Silence, c.Silence.spec())
	g.SetSampleRate(c.SampleRate)
	return g
}

// Renderer builds an audio renderer from the config.
func (c Config) Renderer() *audio.Renderer {
	r := audio.NewRenderer(c.Generator())
	r.SetPause(c.PauseDuration())
	return r
}

// PauseDuration returns the pause as a time.Duration.
func (c Config) PauseDuration() time.Duration {
	return seconds(c.Pause)
}

func (t Tone) spec() tone.Spec {
	return tone.Spec{Frequency: t.Frequency, Duration: seconds(t.Duration), Amplitude: t.Amplitude}
}

func fromSpec(s tone.Spec) Tone {
	return Tone{Frequency: s.Frequency, Duration: s.Duration.Seconds(), Amplitude: s.Amplitude}
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}

func applyEnvOverrides(cfg *Config) error {
	return errors.Join(
		overrideInt(&cfg.SampleRate, "MORSEUS_SAMPLE_RATE"),
		overrideFloat(&cfg.Pause, "MORSEUS_PAUSE"),
		overrideString(&cfg.LogLevel, "MORSEUS_LOG_LEVEL"),
	)
}

func overrideString(target *string, key string) error {
	if val, ok := os.LookupEnv(key); ok && strings.TrimSpace(val) != "" {
		*target = strings.TrimSpace(val)
	}
	return nil
}

func overrideInt(target *int, key string) error {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return nil
	}
	n, err := strconv.Atoi(strings.TrimSpace(val))
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = n
	return nil
}

func overrideFloat(target *float64, key string) error {
	val, ok := os.LookupEnv(key)
	if !ok || strings.TrimSpace(val) == "" {
		return nil
	}
	f, err := strconv.ParseFloat(strings.TrimSpace(val), 64)
	if err != nil {
		return fmt.Errorf("invalid %s: %w", key, err)
	}
	*target = f
	return nil
}

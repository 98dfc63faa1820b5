package config

import (
	"errors"
	"fmt"
	"image/color"
	"os"
	"time"

	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/heart-burst/internal/burst"
	"github.com/iburimskiy/heart-burst/internal/card"
)

const (
	WindowWidth  = 1024
	WindowHeight = 768
	WindowTitle  = "For You"

	// Overlay geometry
	EnvelopeWidth  = 288
	EnvelopeHeight = 192
	ButtonWidth    = 260
	ButtonHeight   = 72
	GiantHeartSize = 320
	PopSize        = 32
	PopRise        = 100
)

type Config struct {
	Window   WindowSpec  `yaml:"window"`
	Burst    BurstSpec   `yaml:"burst"`
	Card     CardSpec    `yaml:"card"`
	Floaters FloaterSpec `yaml:"floaters"`
	Music    MusicSpec   `yaml:"music"`
}

type WindowSpec struct {
	Width  int    `yaml:"width"`
	Height int    `yaml:"height"`
	Title  string `yaml:"title"`
}

type BurstSpec struct {
	Count   int         `yaml:"count"`
	Speed   RangeSpec   `yaml:"speed"`
	Size    RangeSpec   `yaml:"size"`
	Decay   RangeSpec   `yaml:"decay"`
	Gravity float64     `yaml:"gravity"`
	Damping float64     `yaml:"damping"`
	Palette []YAMLColor `yaml:"palette"`
}

type RangeSpec struct {
	Min float64 `yaml:"min"`
	Max float64 `yaml:"max"`
}

type CardSpec struct {
	GiantHeartAt time.Duration `yaml:"giant_heart_at"`
	OpenedAt     time.Duration `yaml:"opened_at"`
	PopLifetime  time.Duration `yaml:"pop_lifetime"`
	Photos       []PhotoSpec   `yaml:"photos"`
	Reasons      []string      `yaml:"reasons"`
}

// PhotoSpec is a gallery entry. Relative paths resolve against the working
// directory.
type PhotoSpec struct {
	Path    string  `yaml:"path"`
	Caption string  `yaml:"caption"`
	Tilt    float64 `yaml:"tilt"`
}

type FloaterSpec struct {
	Count    int         `yaml:"count"`
	Duration RangeSpec   `yaml:"duration"`
	MaxDelay float64     `yaml:"max_delay"`
	Size     RangeSpec   `yaml:"size"`
	Colors   []YAMLColor `yaml:"colors"`
}

type MusicSpec struct {
	Path   string  `yaml:"path"`
	Volume float64 `yaml:"volume"`
}

// Default returns the built-in configuration.
func Default() Config {
	b := burst.DefaultConfig()
	t := card.DefaultTimings()
	f := card.DefaultFloaterConfig()
	return Config{
		Window: WindowSpec{Width: WindowWidth, Height: WindowHeight, Title: WindowTitle},
		Burst: BurstSpec{
			Count:   b.Count,
			Speed:   RangeSpec{Min: b.MinSpeed, Max: b.MaxSpeed},
			Size:    RangeSpec{Min: b.MinSize, Max: b.MaxSize},
			Decay:   RangeSpec{Min: b.MinDecay, Max: b.MaxDecay},
			Gravity: b.Gravity,
			Damping: b.Damping,
			Palette: wrapColors(b.Palette),
		},
		Card: CardSpec{
			GiantHeartAt: t.GiantHeartAt,
			OpenedAt:     t.OpenedAt,
			PopLifetime:  t.PopLifetime,
			Photos:       wrapPhotos(card.DefaultPhotos()),
			Reasons:      card.DefaultReasons(),
		},
		Floaters: FloaterSpec{
			Count:    f.Count,
			Duration: RangeSpec{Min: f.MinDuration, Max: f.MaxDuration},
			MaxDelay: f.MaxDelay,
			Size:     RangeSpec{Min: f.MinSize, Max: f.MaxSize},
			Colors:   wrapColors(f.Colors),
		},
	}
}

// Load reads the YAML file at path over the defaults. An empty path
// returns the defaults.
func Load(path string) (Config, error) {
	cfg := Default()
	if path == "" {
		return cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return Config{}, fmt.Errorf("config: load %s: %w", path, err)
	}
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return Config{}, fmt.Errorf("config: unmarshal %s: %w", path, err)
	}
	if err := cfg.Validate(); err != nil {
		return Config{}, fmt.Errorf("config: %s: %w", path, err)
	}
	return cfg, nil
}

var (
	ErrWindow = errors.New("window size must be positive")
	ErrTiming = errors.New("card timings must be positive and giant_heart_at must not exceed opened_at")
)

func (c Config) Validate() error {
	if c.Window.Width <= 0 || c.Window.Height <= 0 {
		return ErrWindow
	}
	if err := c.BurstConfig().Validate(); err != nil {
		return err
	}
	t := c.Card
	if t.GiantHeartAt <= 0 || t.OpenedAt <= 0 || t.PopLifetime <= 0 || t.GiantHeartAt > t.OpenedAt {
		return ErrTiming
	}
	return nil
}

func (c Config) BurstConfig() burst.Config {
	b := c.Burst
	return burst.Config{
		Count:    b.Count,
		MinSpeed: b.Speed.Min,
		MaxSpeed: b.Speed.Max,
		MinSize:  b.Size.Min,
		MaxSize:  b.Size.Max,
		MinDecay: b.Decay.Min,
		MaxDecay: b.Decay.Max,
		Gravity:  b.Gravity,
		Damping:  b.Damping,
		Palette:  unwrapColors(b.Palette),
	}
}

func (c Config) Timings() card.Timings {
	return card.Timings{
		GiantHeartAt: c.Card.GiantHeartAt,
		OpenedAt:     c.Card.OpenedAt,
		PopLifetime:  c.Card.PopLifetime,
	}
}

func (c Config) Photos() []card.Photo {
	out := make([]card.Photo, len(c.Card.Photos))
	for i, p := range c.Card.Photos {
		out[i] = card.Photo{Path: p.Path, Caption: p.Caption, Tilt: p.Tilt}
	}
	return out
}

func (c Config) FloaterConfig() card.FloaterConfig {
	f := c.Floaters
	return card.FloaterConfig{
		Count:       f.Count,
		MinDuration: f.Duration.Min,
		MaxDuration: f.Duration.Max,
		MaxDelay:    f.MaxDelay,
		MinSize:     f.Size.Min,
		MaxSize:     f.Size.Max,
		Colors:      unwrapColors(f.Colors),
	}
}

func wrapPhotos(ps []card.Photo) []PhotoSpec {
	out := make([]PhotoSpec, len(ps))
	for i, p := range ps {
		out[i] = PhotoSpec{Path: p.Path, Caption: p.Caption, Tilt: p.Tilt}
	}
	return out
}

func wrapColors(cs []color.NRGBA) []YAMLColor {
	out := make([]YAMLColor, len(cs))
	for i, c := range cs {
		out[i] = YAMLColor{c}
	}
	return out
}

func unwrapColors(cs []YAMLColor) []color.NRGBA {
	out := make([]color.NRGBA, len(cs))
	for i, c := range cs {
		out[i] = c.NRGBA
	}
	return out
}

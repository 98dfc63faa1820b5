package config

import (
	"image/color"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"

	"github.com/iburimskiy/heart-burst/internal/burst"
)

func writeFile(t *testing.T, name, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(body), 0o644))
	return path
}

func TestDefaultMatchesPackages(t *testing.T) {
	cfg := Default()
	require.NoError(t, cfg.Validate())
	assert.Equal(t, burst.DefaultConfig(), cfg.BurstConfig())
	assert.Equal(t, 30, cfg.FloaterConfig().Count)
	assert.Equal(t, time.Second, cfg.Timings().GiantHeartAt)
}

func TestLoadEmptyPath(t *testing.T) {
	cfg, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

func TestLoadOverlaysDefaults(t *testing.T) {
	path := writeFile(t, "card.yaml", `
window:
  title: Happy Valentine's Day
burst:
  count: 500
  decay: {min: 0.01, max: 0.02}
  palette: ["#00ff00", "#0000ff80"]
card:
  opened_at: 6s
music:
  path: song.mp3
  volume: -1
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	assert.Equal(t, "Happy Valentine's Day", cfg.Window.Title)
	assert.Equal(t, WindowWidth, cfg.Window.Width)
	assert.Equal(t, 6*time.Second, cfg.Card.OpenedAt)
	assert.Equal(t, time.Second, cfg.Card.GiantHeartAt)
	assert.Equal(t, "song.mp3", cfg.Music.Path)
	assert.Equal(t, -1.0, cfg.Music.Volume)

	b := cfg.BurstConfig()
	assert.Equal(t, 500, b.Count)
	assert.Equal(t, 0.01, b.MinDecay)
	assert.Equal(t, 0.98, b.Damping)
	assert.Equal(t, []color.NRGBA{
		{G: 0xff, A: 0xff},
		{B: 0xff, A: 0x80},
	}, b.Palette)
}

func TestLoadErrors(t *testing.T) {
	cases := []struct {
		name string
		body string
		want error
	}{
		{"bad count", "burst:\n  count: 0\n", burst.ErrCount},
		{"empty palette", "burst:\n  palette: []\n", burst.ErrPalette},
		{"inverted timings", "card:\n  giant_heart_at: 5s\n  opened_at: 2s\n", ErrTiming},
		{"bad window", "window:\n  width: -1\n", ErrWindow},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, err := Load(writeFile(t, "card.yaml", c.body))
			assert.ErrorIs(t, err, c.want)
		})
	}

	_, err := Load(writeFile(t, "card.yaml", "burst:\n  palette: [\"#12\"]\n"))
	assert.ErrorContains(t, err, "invalid color format")

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestYAMLColorRoundTrip(t *testing.T) {
	in := []YAMLColor{{color.NRGBA{R: 0xe1, G: 0x1d, B: 0x48, A: 0xff}}, {color.NRGBA{R: 1, G: 2, B: 3, A: 4}}}
	out, err := yaml.Marshal(in)
	require.NoError(t, err)
	assert.Contains(t, string(out), "#e11d48")
	assert.Contains(t, string(out), "#01020304")

	var back []YAMLColor
	require.NoError(t, yaml.Unmarshal(out, &back))
	assert.Equal(t, in, back)
}

func TestLoadGallery(t *testing.T) {
	path := writeFile(t, "card.yaml", `
card:
  photos:
    - {path: photos/beach.jpg, caption: Beach, tilt: 4}
    - caption: Placeholder
  reasons: [Your laugh]
`)
	cfg, err := Load(path)
	require.NoError(t, err)

	photos := cfg.Photos()
	require.Len(t, photos, 2)
	assert.Equal(t, "photos/beach.jpg", photos[0].Path)
	assert.Equal(t, "Beach", photos[0].Caption)
	assert.Equal(t, 4.0, photos[0].Tilt)
	assert.Empty(t, photos[1].Path)
	assert.Zero(t, photos[1].Tilt)
	assert.Equal(t, []string{"Your laugh"}, cfg.Card.Reasons)
	assert.Equal(t, time.Second, cfg.Card.GiantHeartAt)
}

func TestLoadEmptyGallery(t *testing.T) {
	cfg, err := Load(writeFile(t, "card.yaml", "card:\n  photos: []\n  reasons: []\n"))
	require.NoError(t, err)
	assert.Empty(t, cfg.Photos())
	assert.Empty(t, cfg.Card.Reasons)
}

func TestWatcherReportsWrites(t *testing.T) {
	path := writeFile(t, "card.yaml", "burst:\n  count: 10\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	other := filepath.Join(filepath.Dir(path), "other.yaml")
	require.NoError(t, os.WriteFile(other, []byte("x: 1\n"), 0o644))
	require.NoError(t, os.WriteFile(path, []byte("burst:\n  count: 20\n"), 0o644))

	select {
	case name := <-w.Events:
		assert.Equal(t, "card.yaml", filepath.Base(name))
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for config write")
	}
}

func TestWatcherReportsSettledContent(t *testing.T) {
	path := writeFile(t, "card.yaml", "burst:\n  count: 10\n")
	w, err := NewWatcher(path)
	require.NoError(t, err)
	defer w.Close()

	// truncate-then-write, the way some editors save
	require.NoError(t, os.WriteFile(path, []byte("\n"), 0o644))
	time.Sleep(debounce / 4)
	require.NoError(t, os.WriteFile(path, []byte("burst:\n  count: 20\n"), 0o644))

	select {
	case name := <-w.Events:
		cfg, err := Load(name)
		require.NoError(t, err)
		assert.Equal(t, 20, cfg.Burst.Count)
	case err := <-w.Errors:
		t.Fatalf("watcher error: %v", err)
	case <-time.After(5 * time.Second):
		t.Fatal("no event for config write")
	}

	select {
	case name := <-w.Events:
		t.Fatalf("unexpected second event for %s", name)
	case <-time.After(3 * debounce):
	}
}

func TestWatcherCloseTwice(t *testing.T) {
	w, err := NewWatcher(writeFile(t, "card.yaml", ""))
	require.NoError(t, err)
	require.NoError(t, w.Close())
	assert.NoError(t, w.Close())
}

func TestExampleConfigMatchesDefaults(t *testing.T) {
	cfg, err := Load(filepath.Join("..", "..", "card.example.yaml"))
	require.NoError(t, err)
	assert.Equal(t, Default(), cfg)
}

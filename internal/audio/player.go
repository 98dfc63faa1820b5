// Package audio plays the card's optional background music and reports its
// loudness for the heartbeat overlay.
package audio

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/faiface/beep"
	"github.com/faiface/beep/effects"
	"github.com/faiface/beep/flac"
	"github.com/faiface/beep/mp3"
	"github.com/faiface/beep/speaker"
	"github.com/faiface/beep/wav"
	"github.com/ncruces/zenity"
)

const (
	ringSize      = 8192
	levelWindow   = 2048
	smoothing     = 0.6
	speakerBuffer = time.Second / 20
)

var ErrUnsupportedFormat = errors.New("audio: unsupported file type")

// Player loops a single track. Its methods are called from the game loop;
// the speaker goroutine only touches the tap and ctrl under speaker.Lock.
type Player struct {
	Volume float64 // in beep's logarithmic base-2 units, 0 is unchanged

	file     *os.File
	streamer beep.StreamSeekCloser
	format   beep.Format
	ctrl     *beep.Ctrl
	tap      *levelTap
	level    float64
	initDone bool
}

func NewPlayer() *Player {
	return &Player{}
}

func decode(path string, f *os.File) (beep.StreamSeekCloser, beep.Format, error) {
	switch strings.ToLower(filepath.Ext(path)) {
	case ".wav":
		return wav.Decode(f)
	case ".mp3":
		return mp3.Decode(f)
	case ".flac":
		return flac.Decode(f)
	}
	return nil, beep.Format{}, fmt.Errorf("%w: %s", ErrUnsupportedFormat, filepath.Ext(path))
}

// Load replaces the current track with the file at path and starts it.
func (p *Player) Load(path string) error {
	f, err := os.Open(path)
	if err != nil {
		return fmt.Errorf("audio: open %s: %w", path, err)
	}
	streamer, format, err := decode(path, f)
	if err != nil {
		_ = f.Close()
		return err
	}

	tap := newLevelTap(beep.Loop(-1, streamer), ringSize)
	ctrl := &beep.Ctrl{Streamer: &effects.Volume{Streamer: tap, Base: 2, Volume: p.Volume}}

	bufferSize := format.SampleRate.N(speakerBuffer)
	switch {
	case !p.initDone:
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("audio: init speaker: %w", err)
		}
		p.initDone = true
	case p.format.SampleRate != format.SampleRate:
		speaker.Clear()
		if err := speaker.Init(format.SampleRate, bufferSize); err != nil {
			_ = streamer.Close()
			_ = f.Close()
			return fmt.Errorf("audio: reinit speaker: %w", err)
		}
	default:
		speaker.Clear()
	}
	p.release()

	p.file = f
	p.streamer = streamer
	p.format = format
	p.ctrl = ctrl
	p.tap = tap
	p.level = 0
	speaker.Play(ctrl)

	log.Printf("audio: playing %s (%d Hz)", filepath.Base(path), format.SampleRate)
	return nil
}

// PickFile asks for a track with a native dialog. A cancelled dialog
// returns "" and no error.
func PickFile() (string, error) {
	name, err := zenity.SelectFile(
		zenity.Title("Choose background music"),
		zenity.FileFilters{{
			Name:     "Audio",
			Patterns: []string{"*.wav", "*.mp3", "*.flac"},
		}},
	)
	if errors.Is(err, zenity.ErrCanceled) {
		return "", nil
	}
	return name, err
}

// Playing reports whether a track is loaded and not paused.
func (p *Player) Playing() bool {
	if p.ctrl == nil {
		return false
	}
	speaker.Lock()
	defer speaker.Unlock()
	return !p.ctrl.Paused
}

func (p *Player) TogglePause() {
	if p.ctrl == nil {
		return
	}
	speaker.Lock()
	p.ctrl.Paused = !p.ctrl.Paused
	speaker.Unlock()
}

// Level returns the smoothed loudness of the last few thousand samples.
// Call it once per frame.
func (p *Player) Level() float64 {
	if p.tap == nil {
		return 0
	}
	p.level = smoothing*p.level + (1-smoothing)*p.tap.level(levelWindow)
	return p.level
}

func (p *Player) Close() {
	if p.ctrl == nil {
		return
	}
	speaker.Clear()
	p.release()
}

func (p *Player) release() {
	if p.streamer != nil {
		_ = p.streamer.Close()
		p.streamer = nil
	}
	if p.file != nil {
		_ = p.file.Close()
		p.file = nil
	}
	p.ctrl = nil
	p.tap = nil
}

// Package game hosts the greeting card in an ebiten window.
package game

import (
	"errors"
	"log"
	"math/rand/v2"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/iburimskiy/heart-burst/internal/audio"
	"github.com/iburimskiy/heart-burst/internal/burst"
	"github.com/iburimskiy/heart-burst/internal/card"
	"github.com/iburimskiy/heart-burst/internal/config"
	"github.com/iburimskiy/heart-burst/internal/frame"
)

type Options struct {
	// ConfigPath is watched and reloaded when set.
	ConfigPath string
	// Rand drives the burst and the floaters; nil picks a random seed.
	Rand burst.Rand
}

type Game struct {
	cfg     config.Config
	cfgPath string
	watcher *config.Watcher

	loop     *frame.Loop
	burst    *burst.Renderer
	card     *card.Card
	floaters []card.Floater
	music    *audio.Player

	heart *ebiten.Image
	face  *text.GoXFace

	// gallery, fixed at startup
	photos      []card.Photo
	photoImages []*ebiten.Image
	prints      []*ebiten.Image
	reasons     []string

	// layout size, and the size last handed to the burst
	width, height  int
	burstW, burstH int
	elapsed        float64
	level          float64
	lastErr        error
}

func New(cfg config.Config, opts Options) *Game {
	rng := opts.Rand
	if rng == nil {
		rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	heart := newHeartImage()
	loop := frame.NewLoop()

	g := &Game{
		cfg:      cfg,
		cfgPath:  opts.ConfigPath,
		loop:     loop,
		burst:    burst.New(cfg.BurstConfig(), loop, canvasAllocator{heart: heart}, burst.WithRand(rng)),
		card:     card.New(cfg.Timings(), len(cfg.Card.Photos)),
		floaters: card.NewFloaters(cfg.FloaterConfig(), rng),
		music:    audio.NewPlayer(),
		heart:    heart,
		face:     text.NewGoXFace(basicfont.Face7x13),
		width:    cfg.Window.Width,
		height:   cfg.Window.Height,
		photos:   cfg.Photos(),
		reasons:  cfg.Card.Reasons,
	}
	g.photoImages = loadPhotos(g.photos)
	g.music.Volume = cfg.Music.Volume

	if g.cfgPath != "" {
		w, err := config.NewWatcher(g.cfgPath)
		if err != nil {
			log.Printf("game: not watching %s: %v", g.cfgPath, err)
		} else {
			g.watcher = w
		}
	}
	if cfg.Music.Path != "" {
		g.setErr(g.music.Load(cfg.Music.Path))
	}
	return g
}

// Close stops the burst, the music and the config watcher.
func (g *Game) Close() {
	g.burst.Cancel()
	g.music.Close()
	if g.watcher != nil {
		_ = g.watcher.Close()
	}
}

func (g *Game) Update() error {
	g.reloadConfig()

	// Esc closes an open photo before it quits
	if (inpututil.IsKeyJustPressed(ebiten.KeyEscape) && !g.card.HidePhoto()) || inpututil.IsKeyJustPressed(ebiten.KeyQ) {
		return ebiten.Termination
	}
	if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
		g.open()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyM) {
		g.pickMusic()
	}
	if inpututil.IsKeyJustPressed(ebiten.KeyP) {
		g.music.TogglePause()
	}
	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		mx, my := ebiten.CursorPosition()
		g.click(float64(mx), float64(my))
	}

	if g.width != g.burstW || g.height != g.burstH {
		g.burst.Resize(g.width, g.height)
		g.burstW, g.burstH = g.width, g.height
	}

	tps := ebiten.TPS()
	g.card.Update(time.Second / time.Duration(tps))
	endBurst(g.card, g.burst)
	g.loop.Tick()

	g.elapsed += 1 / float64(tps)
	g.level = g.music.Level()
	return nil
}

func (g *Game) click(x, y float64) {
	w, h := float64(g.width), float64(g.height)
	switch g.card.Stage() {
	case card.Closed:
		if envelopeRect(w, h).contains(x, y) {
			g.open()
		}
	case card.Opened:
		if i, ok := g.card.ShownPhoto(); ok {
			if !g.lightboxRect(i).contains(x, y) {
				g.card.HidePhoto()
			}
			return
		}
		_, lift := openedFade(g.card.SinceOpen() - g.card.Timings().OpenedAt)
		l := layoutOpened(w, h, len(g.photos), lift)
		if i := l.printAt(x, y); i >= 0 {
			g.card.ShowPhoto(i)
		} else if l.button.contains(x, y) {
			g.card.SendLove(x, y)
		}
	}
}

func (g *Game) lightboxRect(i int) rect {
	var iw, ih float64
	if img := g.photoImages[i]; img != nil {
		iw, ih = float64(img.Bounds().Dx()), float64(img.Bounds().Dy())
	}
	return lightboxRect(float64(g.width), float64(g.height), iw, ih)
}

// endBurst cancels the burst once the card has left the opening stage;
// the burst only lives while the envelope is opening.
func endBurst(c *card.Card, r *burst.Renderer) {
	if c.Stage() != card.Opening && r.Active() {
		r.Cancel()
	}
}

func (g *Game) open() {
	if !g.card.Open() {
		return
	}
	if !g.burst.Start(g.width, g.height) {
		log.Printf("game: opened without a burst")
	}
	g.burstW, g.burstH = g.width, g.height
}

func (g *Game) pickMusic() {
	path, err := audio.PickFile()
	if err != nil || path == "" {
		g.setErr(err)
		return
	}
	g.setErr(g.music.Load(path))
}

func (g *Game) reloadConfig() {
	if g.watcher == nil {
		return
	}
	for {
		select {
		case _, ok := <-g.watcher.Events:
			if !ok {
				g.watcher = nil
				return
			}
			cfg, err := config.Load(g.cfgPath)
			if err != nil {
				log.Printf("game: keeping previous config: %v", err)
				continue
			}
			g.cfg = cfg
			g.burst.SetConfig(cfg.BurstConfig())
			g.music.Volume = cfg.Music.Volume
			log.Printf("game: reloaded %s", g.cfgPath)
		case err, ok := <-g.watcher.Errors:
			if !ok {
				g.watcher = nil
				return
			}
			log.Printf("game: config watcher: %v", err)
		default:
			return
		}
	}
}

func (g *Game) setErr(err error) {
	if err != nil {
		log.Printf("game: %v", err)
	}
	g.lastErr = err
}

func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	if outsideWidth > 0 && outsideHeight > 0 {
		g.width, g.height = outsideWidth, outsideHeight
	}
	return g.width, g.height
}

// Run opens the window and blocks until it is closed.
func Run(g *Game) error {
	defer g.Close()
	ebiten.SetWindowSize(g.cfg.Window.Width, g.cfg.Window.Height)
	ebiten.SetWindowTitle(g.cfg.Window.Title)
	ebiten.SetWindowResizingMode(ebiten.WindowResizingModeEnabled)
	if err := ebiten.RunGame(g); err != nil && !errors.Is(err, ebiten.Termination) {
		return err
	}
	return nil
}

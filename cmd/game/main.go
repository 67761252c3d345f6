package main

import (
	"flag"
	"fmt"
	"image/color"
	"log"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"go.uber.org/zap"

	"github.com/star1sakura/MajoSaipan-KontonSei/game"
	"github.com/star1sakura/MajoSaipan-KontonSei/prefabs"
)

const (
	playWidth  = 384
	playHeight = 448
	scale      = 2
)

var (
	colPlayer      = color.RGBA{R: 240, G: 240, B: 255, A: 255}
	colPlayerFocus = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	colOption      = color.RGBA{R: 120, G: 160, B: 255, A: 255}
	colPlayerShot  = color.RGBA{R: 120, G: 200, B: 255, A: 160}
	colEnemyShot   = color.RGBA{R: 255, G: 120, B: 160, A: 255}
	colEnemy       = color.RGBA{R: 200, G: 60, B: 200, A: 255}
	colBoss        = color.RGBA{R: 255, G: 200, B: 60, A: 255}
	colItemPower   = color.RGBA{R: 255, G: 60, B: 60, A: 255}
	colItemPoint   = color.RGBA{R: 60, G: 120, B: 255, A: 255}
	colItemOther   = color.RGBA{R: 120, G: 255, B: 120, A: 255}
)

type app struct {
	game    *game.Game
	watcher *prefabs.Watcher
	log     *zap.Logger
	debug   bool
}

func (a *app) Update() error {
	if a.watcher != nil {
		// Apply pending prefab edits on the simulation goroutine, before
		// the tick that will use them.
		select {
		case name, ok := <-a.watcher.Events:
			if ok {
				if err := a.game.ReloadPrefabs(); err != nil {
					a.log.Warn("prefab reload failed", zap.String("file", name), zap.Error(err))
				} else {
					a.log.Info("prefabs reloaded", zap.String("file", name))
				}
			}
		default:
		}
	}
	a.game.Advance(1.0/float64(ebiten.TPS()), readInput())
	return nil
}

func readInput() game.Input {
	return game.Input{
		Left:  ebiten.IsKeyPressed(ebiten.KeyArrowLeft),
		Right: ebiten.IsKeyPressed(ebiten.KeyArrowRight),
		Up:    ebiten.IsKeyPressed(ebiten.KeyArrowUp),
		Down:  ebiten.IsKeyPressed(ebiten.KeyArrowDown),
		Focus: ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight),
		Shoot: ebiten.IsKeyPressed(ebiten.KeyZ),
		Bomb:  ebiten.IsKeyPressed(ebiten.KeyX),
	}
}

func (a *app) Draw(screen *ebiten.Image) {
	screen.Fill(color.RGBA{R: 12, G: 10, B: 24, A: 255})

	snap := a.game.Snapshot()

	for _, it := range snap.Items {
		clr := colItemOther
		switch it.Kind {
		case "power", "big_power":
			clr = colItemPower
		case "point":
			clr = colItemPoint
		}
		vector.FillCircle(screen, float32(it.Pos.X), float32(it.Pos.Y), 5, clr, false)
	}

	for _, e := range snap.Enemies {
		clr := colEnemy
		if e.IsBoss {
			clr = colBoss
		}
		vector.FillCircle(screen, float32(e.Pos.X), float32(e.Pos.Y), float32(e.Radius), clr, false)
		if a.debug && e.MaxHP > 0 {
			frac := float32(e.HP) / float32(e.MaxHP)
			vector.FillRect(screen, float32(e.Pos.X)-16, float32(e.Pos.Y)-float32(e.Radius)-6, 32*frac, 3, colBoss, false)
		}
	}

	for _, b := range snap.Bullets {
		if b.Player {
			vector.FillCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), colPlayerShot, false)
		} else {
			vector.FillCircle(screen, float32(b.Pos.X), float32(b.Pos.Y), float32(b.Radius), colEnemyShot, false)
		}
	}

	for _, o := range snap.Options {
		vector.FillCircle(screen, float32(o.X), float32(o.Y), 4, colOption, false)
	}

	if p := snap.Player; p != nil {
		clr := colPlayer
		if p.Invincible && snap.Frame%8 < 4 {
			clr.A = 80
		}
		vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), 6, clr, false)
		if p.Focused {
			// Hitbox marker, drawn only while focused.
			vector.FillCircle(screen, float32(p.Pos.X), float32(p.Pos.Y), float32(p.Radius), colPlayerFocus, false)
		}
	}

	if snap.Boss.Visible {
		frac := float32(0)
		if snap.Boss.MaxHP > 0 {
			frac = float32(snap.Boss.HP) / float32(snap.Boss.MaxHP)
		}
		vector.FillRect(screen, 8, 4, (playWidth-16)*frac, 4, colBoss, false)
	}

	msg := fmt.Sprintf("Score: %d\nLives: %d  Bombs: %d\nPower: %.2f  Graze: %d",
		snap.Hud.Score, snap.Hud.Lives, snap.Hud.Bombs, snap.Hud.Power, snap.Hud.Graze)
	if snap.Boss.Visible {
		msg += fmt.Sprintf("\n%s  %s  %.0fs", snap.Boss.Name, snap.Boss.SpellName, snap.Boss.Countdown)
	}
	if snap.GameOver {
		msg += "\n\n  GAME OVER"
	} else if snap.StageFinished {
		msg += "\n\n  STAGE CLEAR"
	}
	if a.debug {
		msg += fmt.Sprintf("\nframe %d  bullets %d  FPS %.1f", snap.Frame, len(snap.Bullets), ebiten.ActualFPS())
	}
	ebitenutil.DebugPrint(screen, msg)
}

func (a *app) Layout(outsideWidth, outsideHeight int) (int, int) {
	return playWidth, playHeight
}

func main() {
	character := flag.String("character", "", "character preset from characters.yaml (defaults to the first entry)")
	debug := flag.Bool("debug", false, "show hitboxes, health bars, and frame stats")
	watch := flag.Bool("watch", false, "reload prefabs/ YAML edits without restarting")
	verbose := flag.Bool("v", false, "enable development logging")
	flag.Parse()

	logger := zap.NewNop()
	if *verbose {
		l, err := zap.NewDevelopment()
		if err != nil {
			log.Fatal(err)
		}
		logger = l
	}

	g, err := game.New(game.Config{
		Width:     playWidth,
		Height:    playHeight,
		Character: *character,
		Log:       logger,
	})
	if err != nil {
		log.Fatal(err)
	}

	var watcher *prefabs.Watcher
	if *watch {
		watcher, err = prefabs.NewWatcher("prefabs")
		if err != nil {
			log.Fatal(err)
		}
		defer watcher.Close()
	}

	ebiten.SetWindowSize(playWidth*scale, playHeight*scale)
	ebiten.SetWindowTitle("MajoSaipan KontonSei")

	if err := ebiten.RunGame(&app{game: g, watcher: watcher, log: logger, debug: *debug}); err != nil {
		log.Fatal(err)
	}
}

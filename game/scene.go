package game

import "github.com/milk9111/jumpman/obj"

const (
	BannerGameOver = "GAME OVER"
	BannerVictory  = "VICTORY!!!"
)

// Scene is a read-only description of one frame. Sprites are in draw order.
// TitleColor is a colornames key.
type Scene struct {
	State      State
	Background string
	Title      string
	TitleColor string
	Sprites    []obj.Sprite
}

// Scene describes what the current state shows.
func (s *Session) Scene() Scene {
	scene := Scene{State: s.state, Background: s.world.Background}

	switch s.state {
	case StateMenu:
		scene.Background = s.world.MenuBG
		scene.Title = s.world.Title
		scene.TitleColor = "white"
		for _, b := range s.Buttons() {
			sp := b.Sprite()
			if b.Name == obj.ButtonSound {
				sp.Label = soundLabel(b.Label, s.soundEnabled)
			}
			scene.Sprites = append(scene.Sprites, sp)
		}

	case StatePlaying:
		scene.Sprites = make([]obj.Sprite, 0, len(s.world.Platforms)+len(s.enemies)+2)
		for _, p := range s.world.Platforms {
			scene.Sprites = append(scene.Sprites, p.Sprite())
		}
		for _, e := range s.enemies {
			scene.Sprites = append(scene.Sprites, e.Sprite())
		}
		if s.hero != nil {
			scene.Sprites = append(scene.Sprites, s.hero.Sprite())
		}
		if s.flag != nil {
			scene.Sprites = append(scene.Sprites, s.flag.Sprite())
		}

	case StateGameOver, StateWin:
		scene.Title, scene.TitleColor = BannerGameOver, "red"
		if s.state == StateWin {
			scene.Title, scene.TitleColor = BannerVictory, "green"
		}
		for _, b := range s.Buttons() {
			scene.Sprites = append(scene.Sprites, b.Sprite())
		}
	}

	return scene
}

func soundLabel(base string, on bool) string {
	if base == "" {
		base = "Sound"
	}
	if on {
		return base + ": On"
	}
	return base + ": Off"
}

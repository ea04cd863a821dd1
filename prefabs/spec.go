package prefabs

import (
	"errors"
	"fmt"

	"gopkg.in/yaml.v3"
)

var ErrInvalidSpec = errors.New("prefabs: invalid spec")

const (
	WorldFile = "world.yaml"
	HeroFile  = "hero.yaml"
	EnemyFile = "enemy.yaml"
	FlagFile  = "flag.yaml"
	UIFile    = "ui.yaml"
)

// Files lists every prefab file LoadAll reads.
var Files = []string{WorldFile, HeroFile, EnemyFile, FlagFile, UIFile}

func LoadSpec[T any](l Loader, filename string) (T, error) {
	var zero T
	data, err := l.Load(filename)
	if err != nil {
		return zero, fmt.Errorf("prefabs: load %s: %w", filename, err)
	}

	var spec T
	if err := yaml.Unmarshal(data, &spec); err != nil {
		return zero, fmt.Errorf("prefabs: unmarshal %s: %w", filename, err)
	}

	return spec, nil
}

type PointSpec struct {
	X float64 `yaml:"x"`
	Y float64 `yaml:"y"`
}

type SizeSpec struct {
	Width  float64 `yaml:"width"`
	Height float64 `yaml:"height"`
}

type PhysicsSpec struct {
	Gravity   float64 `yaml:"gravity"`
	JumpForce float64 `yaml:"jump_force"`
	MoveSpeed float64 `yaml:"move_speed"`
}

type GroundSpec struct {
	Image string  `yaml:"image"`
	Y     float64 `yaml:"y"`
}

// RunSpec is a horizontal run of floating tiles starting at X,Y (top-left).
type RunSpec struct {
	X      float64 `yaml:"x"`
	Y      float64 `yaml:"y"`
	Length int     `yaml:"length"`
	Image  string  `yaml:"image"`
}

// HillSpec stacks Tiles floating tiles on top of the ground at X.
type HillSpec struct {
	X     float64 `yaml:"x"`
	Tiles int     `yaml:"tiles"`
	Image string  `yaml:"image"`
}

type WorldSpec struct {
	Name           string     `yaml:"name"`
	Title          string     `yaml:"title"`
	Width          float64    `yaml:"width"`
	Height         float64    `yaml:"height"`
	TileSize       float64    `yaml:"tile_size"`
	Background     string     `yaml:"background"`
	MenuBackground string     `yaml:"menu_background"`
	Ground         GroundSpec `yaml:"ground"`
	Floating       []RunSpec  `yaml:"floating"`
	Hill           HillSpec   `yaml:"hill"`
}

type HeroSpec struct {
	Name           string      `yaml:"name"`
	Spawn          PointSpec   `yaml:"spawn"`
	Sprite         SizeSpec    `yaml:"sprite"`
	Hitbox         SizeSpec    `yaml:"hitbox"`
	Physics        PhysicsSpec `yaml:"physics"`
	AnimFrameTicks int         `yaml:"anim_frame_ticks"`
	IdleFrames     []string    `yaml:"idle_frames"`
	RunFrames      []string    `yaml:"run_frames"`
	JumpFrame      string      `yaml:"jump_frame"`
}

// PatrolSpec places one enemy. X/Y is the sprite top-left; Left/Right are the
// patrol limits compared against the sprite edges.
type PatrolSpec struct {
	X     float64 `yaml:"x"`
	Y     float64 `yaml:"y"`
	Left  float64 `yaml:"left"`
	Right float64 `yaml:"right"`
}

type EnemySpec struct {
	Name           string       `yaml:"name"`
	Speed          float64      `yaml:"speed"`
	Sprite         SizeSpec     `yaml:"sprite"`
	HitboxSize     float64      `yaml:"hitbox_size"`
	AnimFrameTicks int          `yaml:"anim_frame_ticks"`
	IdleFrame      string       `yaml:"idle_frame"`
	MoveFrames     []string     `yaml:"move_frames"`
	Patrols        []PatrolSpec `yaml:"patrols"`
}

type FlagSpec struct {
	Name       string    `yaml:"name"`
	Position   PointSpec `yaml:"position"`
	Sprite     SizeSpec  `yaml:"sprite"`
	FrameTicks int       `yaml:"frame_ticks"`
	Frames     []string  `yaml:"frames"`
}

type ButtonSpec struct {
	Image  string    `yaml:"image"`
	Label  string    `yaml:"label"`
	Center PointSpec `yaml:"center"`
}

type UISpec struct {
	Name       string     `yaml:"name"`
	ButtonSize SizeSpec   `yaml:"button_size"`
	Start      ButtonSpec `yaml:"start"`
	Sound      ButtonSpec `yaml:"sound"`
	Exit       ButtonSpec `yaml:"exit"`
	Back       ButtonSpec `yaml:"back"`
}

// Specs bundles every prefab the game is built from.
type Specs struct {
	World WorldSpec
	Hero  HeroSpec
	Enemy EnemySpec
	Flag  FlagSpec
	UI    UISpec
}

// LoadAll reads and validates every prefab, preferring files under dir.
func LoadAll(dir string) (*Specs, error) {
	return LoadSpecs(Loader{Dir: dir})
}

func LoadSpecs(l Loader) (*Specs, error) {
	var (
		s   Specs
		err error
	)
	if s.World, err = LoadSpec[WorldSpec](l, WorldFile); err != nil {
		return nil, err
	}
	if s.Hero, err = LoadSpec[HeroSpec](l, HeroFile); err != nil {
		return nil, err
	}
	if s.Enemy, err = LoadSpec[EnemySpec](l, EnemyFile); err != nil {
		return nil, err
	}
	if s.Flag, err = LoadSpec[FlagSpec](l, FlagFile); err != nil {
		return nil, err
	}
	if s.UI, err = LoadSpec[UISpec](l, UIFile); err != nil {
		return nil, err
	}
	if err := s.Validate(); err != nil {
		return nil, err
	}
	return &s, nil
}

// MustLoadDefaults loads the embedded prefabs only. It panics if they are
// broken, which means the binary itself was built wrong.
func MustLoadDefaults() *Specs {
	s, err := LoadSpecs(Loader{EmbeddedOnly: true})
	if err != nil {
		panic(err)
	}
	return s
}

func (s *Specs) Validate() error {
	if s == nil {
		return fmt.Errorf("%w: nil specs", ErrInvalidSpec)
	}
	w := s.World
	if w.Width <= 0 || w.Height <= 0 {
		return fmt.Errorf("%w: world size %vx%v", ErrInvalidSpec, w.Width, w.Height)
	}
	if w.TileSize <= 0 {
		return fmt.Errorf("%w: tile size %v", ErrInvalidSpec, w.TileSize)
	}
	for i, run := range w.Floating {
		if run.Length < 0 {
			return fmt.Errorf("%w: floating run %d has negative length", ErrInvalidSpec, i)
		}
	}
	if w.Hill.Tiles < 0 {
		return fmt.Errorf("%w: hill has negative tile count", ErrInvalidSpec)
	}

	h := s.Hero
	if h.Sprite.Width <= 0 || h.Sprite.Height <= 0 {
		return fmt.Errorf("%w: hero sprite %vx%v", ErrInvalidSpec, h.Sprite.Width, h.Sprite.Height)
	}
	if h.Hitbox.Width <= 0 || h.Hitbox.Height <= 0 {
		return fmt.Errorf("%w: hero hitbox %vx%v", ErrInvalidSpec, h.Hitbox.Width, h.Hitbox.Height)
	}
	if h.Physics.JumpForce >= 0 {
		return fmt.Errorf("%w: jump force must be negative, got %v", ErrInvalidSpec, h.Physics.JumpForce)
	}
	if h.Physics.Gravity <= 0 {
		return fmt.Errorf("%w: gravity must be positive, got %v", ErrInvalidSpec, h.Physics.Gravity)
	}
	if len(h.IdleFrames) == 0 || len(h.RunFrames) == 0 || h.JumpFrame == "" {
		return fmt.Errorf("%w: hero animation frames missing", ErrInvalidSpec)
	}

	e := s.Enemy
	if e.Sprite.Width <= 0 || e.Sprite.Height <= 0 || e.HitboxSize <= 0 {
		return fmt.Errorf("%w: enemy sprite/hitbox size", ErrInvalidSpec)
	}
	if len(e.MoveFrames) == 0 {
		return fmt.Errorf("%w: enemy move frames missing", ErrInvalidSpec)
	}
	for i, p := range e.Patrols {
		if p.Left > p.Right {
			return fmt.Errorf("%w: patrol %d left limit %v > right limit %v", ErrInvalidSpec, i, p.Left, p.Right)
		}
	}

	f := s.Flag
	if f.Sprite.Width <= 0 || f.Sprite.Height <= 0 {
		return fmt.Errorf("%w: flag sprite %vx%v", ErrInvalidSpec, f.Sprite.Width, f.Sprite.Height)
	}
	if len(f.Frames) == 0 {
		return fmt.Errorf("%w: flag frames missing", ErrInvalidSpec)
	}

	if s.UI.ButtonSize.Width <= 0 || s.UI.ButtonSize.Height <= 0 {
		return fmt.Errorf("%w: button size %vx%v", ErrInvalidSpec, s.UI.ButtonSize.Width, s.UI.ButtonSize.Height)
	}
	return nil
}

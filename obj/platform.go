package obj

import "github.com/milk9111/jumpman/common"

// Platform is a static tile. Ground platforms catch any qualifying fall;
// floating platforms only catch a downward sweep through their top edge.
type Platform struct {
	common.Rect
	IsGround bool
	Image    string
}

func NewPlatform(image string, x, y, size float64, isGround bool) *Platform {
	return &Platform{
		Rect:     common.NewRect(x, y, size, size),
		IsGround: isGround,
		Image:    image,
	}
}

// Top is the y of the landing surface.
func (p *Platform) Top() float64 {
	return p.Y
}

func (p *Platform) Sprite() Sprite {
	return Sprite{Image: p.Image, Rect: p.Rect}
}

// NewFloatingRun lays out length floating tiles left to right from x,y.
func NewFloatingRun(image string, x, y, size float64, length int) []*Platform {
	out := make([]*Platform, 0, length)
	for i := 0; i < length; i++ {
		out = append(out, NewPlatform(image, x+float64(i)*size, y, size, false))
	}
	return out
}

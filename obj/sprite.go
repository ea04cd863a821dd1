package obj

import "github.com/milk9111/jumpman/common"

// Sprite is what a frontend needs to draw one thing: an image name and the
// box it covers. Label is optional text drawn on top (buttons).
type Sprite struct {
	Image string
	Rect  common.Rect
	Label string
}

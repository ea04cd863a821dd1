package common

// Screen and world defaults. The prefab specs may override the world size but
// the window layout is always BaseWidth x BaseHeight.
const (
	BaseWidth  = 1024
	BaseHeight = 768
	TileSize   = 64
	GroundY    = BaseHeight - TileSize

	// TPS is the fixed simulation rate every frontend drives the session at.
	TPS = 60
)

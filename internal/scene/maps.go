package scene

// demoMap is the built-in 14x7 room layout. 'X' cells become walls,
// every cell gets a floor tile one unit below.
var demoMap = []string{
	"XXXXXXXXXXXXXX",
	"X  X         X",
	"X  X   XX    X",
	"X      XX    X",
	"X  XX        X",
	"X            X",
	"XXXXXXXXXXXXXX",
}

// DemoMap returns the built-in map rows.
func DemoMap() []string {
	return demoMap
}

// DemoWallMarker is the wall character of the built-in map.
const DemoWallMarker = 'X'

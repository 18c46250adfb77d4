package fractalgarden

import (
	"io"
	"os"

	"tinygo.org/x/drivers"
)

var (
	Debug            = false // set to true for verbose debug output
	GIF              = false // set to true to also save rotating GIFs of the 3D patterns
	Output io.Writer = os.Stdout
	// Compile time check that the canvas can be handed to tinyfont
	_ drivers.Displayer = (*Canvas)(nil)
)

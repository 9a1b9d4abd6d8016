// rubik - command-line Rubik's Cube engine.
package main

import (
	"github.com/SeamusWaldron/rubik_engine/internal/cli"
)

func main() {
	cli.Execute()
}

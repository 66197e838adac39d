// Command wfcgen generates, renders, validates, and serves tile grids
// built by the wfc solver, tying together the tilesets, dungeon domain
// profile, display renderer, and stream server packages.
package main

import "github.com/lawnchairsociety/wfc/cmd/wfcgen/cmd"

func main() {
	cmd.Execute()
}

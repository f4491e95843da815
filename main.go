// Command annealtsp searches short round trips through a set of planar
// cities. See the cmd package for the command line.
package main

import "github.com/katalvlaran/annealtsp/cmd"

func main() {
	cmd.Execute()
}

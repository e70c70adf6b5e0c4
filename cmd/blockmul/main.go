// SPDX-License-Identifier: MIT

// Command blockmul multiplies two square matrices by k×k blocks.
//
//	echo '{"a":[[1,2],[3,4]],"b":[[5,6],[7,8]],"k":1}' | blockmul multiply
//	{"solved":[[19,22],[43,50]]}
//
// Run "blockmul info" to see the CPU the tile-parallel schedule will run on.
package main

import "os"

func main() {
	root, a := newRootCmd()
	if err := root.Execute(); err != nil {
		a.log.Error().Err(err).Msg("blockmul failed")
		os.Exit(1)
	}
}

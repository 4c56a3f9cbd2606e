// Command transitpath finds the shortest route between two stations of a
// network with several algorithms and reports which one came out shortest.
//
//	transitpath "Baker Street" "Green Park" --network london.yaml
//	transitpath generate --shape grid --rows 4 --cols 4 --out grid.yaml
//	transitpath validate --network london.yaml
//	transitpath diff old.yaml new.yaml
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

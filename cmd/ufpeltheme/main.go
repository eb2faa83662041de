// ufpeltheme - UFPel theme tooling
//
// ufpeltheme assembles the UFPel theme stylesheet, post-processes compiled
// CSS, serves the theme's setting files and upgrades stored settings.
package main

import (
	"os"

	"github.com/jmylchreest/ufpeltheme/internal/cli"
)

func main() {
	if err := cli.NewRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

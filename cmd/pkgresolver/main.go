// Command pkgresolver resolves a manifest of units and version
// constraints to a minimum-cost, exact-constraint-consistent set of
// unit versions.
package main

import "pkgresolver/internal/cli"

func main() {
	cli.Execute()
}

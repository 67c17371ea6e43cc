//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "the GUI requires building with the 'ebiten' tag")
	os.Exit(1)
}

// Command abide-render renders form definitions as Foundation/Abide markup,
// prints the custom pattern script and checks values interactively.
package main

import (
	"fmt"
	"os"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

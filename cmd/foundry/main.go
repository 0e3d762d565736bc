/*
 * Copyright (c) 2024-present openEHR-Go authors
 */

// foundry is the inspection tool for the foundation type system: it lists
// the primitive bindings, loads schema binding directories and checks which
// type identity a serialized document claims.
package main

import (
	"os"

	"github.com/openehr-go/foundation/pkg/goutils/logger"
)

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

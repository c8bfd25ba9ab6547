// Copyright (C) 2022-2025, InYourArea Ltd. All rights reserved.
// See the file LICENSE for licensing terms.

package main

import (
	"github.com/inyourarea/jigsaw/cmd"
)

func main() {
	cmd.Execute()
}

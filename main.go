// SPDX-FileCopyrightText: 2026 Nova Contributors
//
// SPDX-License-Identifier: MIT

package main

import (
	"os"

	"github.com/torarvid/nova/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

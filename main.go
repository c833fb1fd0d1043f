// SPDX-License-Identifier: MPL-2.0

package main

import cmd "tzgen-cli/cmd/tzgen"

func main() {
	cmd.Execute()
}

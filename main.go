// SPDX-License-Identifier: MPL-2.0

package main

import cmd "chrb-cli/cmd/chrb"

func main() {
	cmd.Execute()
}

// SPDX-License-Identifier: MPL-2.0

package main

import (
	cmd "github.com/netme/manage/cmd/manage"
)

func main() {
	cmd.Execute()
}

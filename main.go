package main

import "github.com/LegacyCodeHQ/esgraph/cmd"

func main() {
	cmd.Execute()
}

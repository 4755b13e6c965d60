package main

import "github.com/LegacyCodeHQ/solgraph/cmd"

func main() {
	cmd.Execute()
}

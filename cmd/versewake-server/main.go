package main

import "versewake/cmd/versewake-server/cmd"

func main() {
	cmd.Execute()
}

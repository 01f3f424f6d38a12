package main

import "github.com/kozaktomas/color-season/cmd"

func main() {
	cmd.Execute()
}

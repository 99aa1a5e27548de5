package main

import "github.com/tupyy/fpintro/cmd"

func main() {
	cmd.Execute()
}

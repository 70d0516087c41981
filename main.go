package main

import "p5-manager/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/ryan-gang/pigeon/cmd"

func main() {
	cmd.Execute()
}

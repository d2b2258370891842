package main

import "github.com/alexiusacademia/girderloads/cmd"

func main() {
	cmd.Execute()
}

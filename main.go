package main

import "fluxo/cmd"

func main() {
	cmd.Execute()
}

package main

import "plafond/cmd"

func main() {
	cmd.Execute()
}

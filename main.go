package main

import "wastewise/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/Tiliavir/labour/cmd"

func main() {
	cmd.Execute()
}

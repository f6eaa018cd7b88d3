package main

import "github.com/xvierd/sglink/cmd"

func main() {
	cmd.Execute()
}

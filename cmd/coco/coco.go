package main

import "github.com/renatogalera/coco/cmd"

func main() {
	cmd.Execute()
}

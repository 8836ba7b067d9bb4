package main

import "github.com/phicus/changelog-go/cmd"

func main() {
	cmd.Run()
}

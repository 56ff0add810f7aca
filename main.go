package main

import "github.com/tymora/tymora/cmd"

func main() {
	cmd.Execute()
}

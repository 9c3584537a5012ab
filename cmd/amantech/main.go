package main

import "github.com/nfrund/amantech/cmd/amantech/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/endorses/telnum/cmd"

func main() {
	cmd.Execute()
}

package main

import "pronotes/cmd/pronotes/cmd"

func main() {
	cmd.Execute()
}

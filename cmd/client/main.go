package main

import "housing/cmd/client/cmd"

func main() {
	cmd.Execute()
}

package main

import "avatar-extract/cmd"

func main() {
	cmd.Execute()
}

package main

import "shelf/cmd/shelf-cli/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/golangdaddy/crossing/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/flightdesk/cmd"

func main() {
	cmd.Execute()
}

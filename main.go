package main

import "github.com/mouse-blink/alertmigrate/cmd"

func main() {
	cmd.Execute()
}

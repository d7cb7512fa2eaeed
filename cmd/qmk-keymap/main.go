package main

import "qmk-keymap/internal/cli"

func main() {
	cli.Execute()
}

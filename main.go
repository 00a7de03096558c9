package main

import "github.com/inovacc/dadandiaoming/cmd"

func main() {
	cmd.Execute()
}

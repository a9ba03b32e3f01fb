package main

import "github.com/mitsu-ksgr/git-blame-parser/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/Nimsara-Jayarathna/GreenStream-Prototype/cmd"

var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func main() {
	cmd.SetVersionInfo(version, commit, date)
	cmd.Execute()
}

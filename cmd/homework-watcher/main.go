package main

import "github.com/davarch/homework-watcher/cmd/homework-watcher/cli"

func main() {
	cli.Execute()
}

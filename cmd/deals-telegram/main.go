package main

import "github.com/jjexpress/deals-telegram/internal/cli"

func main() {
	cli.Execute()
}

package main

import "github.com/emiliopalmerini/srsadmin/internal/cli"

func main() {
	cli.Execute()
}

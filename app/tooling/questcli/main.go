package main

import "github.com/ardanlabs/questhub/app/tooling/questcli/cmd"

func main() {
	cmd.Execute()
}

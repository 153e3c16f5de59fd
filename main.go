package main

import "github.com/rschubkegel/rschubkegel.com/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/alexiusacademia/rccalc/cmd"

func main() {
	cmd.Execute()
}

package main

import "stock-regul/cmd"

func main() {
	cmd.Execute()
}

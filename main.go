package main

import "chart-market-tools/cmd"

func main() {
	cmd.Execute()
}

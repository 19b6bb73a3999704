package main

import "github.com/OpenTraceLab/pcasn/cmd/pcasn/cmd"

func main() {
	cmd.Execute()
}

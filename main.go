package main

import "github.com/sjzsdu/tdoc/cmd"

func main() {
	cmd.Execute()
}

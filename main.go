package main

import "github.com/easydlp/easydlp/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/jsphweid/notepipe/cmd"

func main() {
	cmd.Execute()
}

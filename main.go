package main

import "github.com/machine-client/tsjanitor/cmd"

func main() {
	cmd.Execute()
}

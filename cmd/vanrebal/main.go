package main

import "vanrebal/cmd"

func main() {
	cmd.Execute()
}

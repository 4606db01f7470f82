package main

import "github.com/Mohsinsiddi/nftreg/cmd"

func main() {
	cmd.Execute()
}

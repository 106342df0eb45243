package main

import "mnp-alarm/cmd"

func main() {
	cmd.Execute()
}

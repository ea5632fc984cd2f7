package main

import "maintenance-system/app/cmd"

func main() {
	cmd.Execute()
}

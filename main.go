package main

import "github.com/kennytm/oztags/cmd"

func main() {
	cmd.Execute()
}

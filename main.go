package main

import "github.com/hoshinoya/dogepet/cmd"

func main() {
	cmd.Execute()
}

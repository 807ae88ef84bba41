package main

import "github.com/MyCarrier-DevOps/go-nextver/cmd"

func main() {
	cmd.Execute()
}

package main

import "github.com/StinkyLord/cbuild-idkit/cmd"

func main() {
	cmd.Execute()
}

package main

import (
	"github.com/notargets/iga/cmd"
)

func main() {
	cmd.Execute()
}

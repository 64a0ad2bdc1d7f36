package main

import (
	"os"

	"github.com/Ebedthan/xgt-sub000/xgt/cmd"
)

func main() {
	cmd.Execute(os.Args[1:])
}

package main

import (
	"github.com/danmuck/packcast/cmd/packdump/cmd"
)

func main() {
	cmd.Execute()
}

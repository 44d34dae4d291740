package main

import (
	"github.com/auctionlab/depthchart/pkg/cmd"
)

func main() {
	cmd.Execute()
}

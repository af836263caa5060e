package main

import (
	"github.com/robotalks/rover.go/pkg/cli/sh"
	"github.com/robotalks/rover.go/pkg/l1/env"

	_ "github.com/robotalks/rover.go/pkg/cli/cmds/frames"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}

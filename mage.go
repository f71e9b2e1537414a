//go:build mage

package main

import (
	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const serverBin = "./bin/matchday"

func goModDownload() error {
	return sh.Run("go", "mod", "download")
}

// Build builds the matchday binary
func Build() error {
	mg.Deps(goModDownload)
	return sh.Run("go", "build", "-o", serverBin, "cmd/main.go")
}

// Run builds and starts matchday
func Run() error {
	mg.Deps(Build)
	return sh.Run(serverBin)
}

func Lint() error {
	return sh.Run("golangci-lint", "run", "./...")
}

func Test() error {
	return sh.Run("go", "test", "./...")
}

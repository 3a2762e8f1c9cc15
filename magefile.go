//go:build mage

package main

import (
	"fmt"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const binaryName = "cloudtranslate"

// Default target to run when none is specified
var Default = Build

// Build builds the cloudtranslate binary
func Build() error {
	fmt.Println("Building", binaryName)
	return sh.RunV("go", "build", "-o", binaryName, "./cmd/cloudtranslate")
}

// Install installs cloudtranslate with go install
func Install() error {
	mg.Deps(Test)
	fmt.Println("Installing", binaryName)
	return sh.RunV("go", "install", "./cmd/cloudtranslate")
}

// Test runs all tests
func Test() error {
	fmt.Println("Running tests")
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the whole module
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Clean removes build artifacts
func Clean() error {
	fmt.Println("Cleaning")
	return sh.Rm(binaryName)
}

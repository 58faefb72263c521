//go:build mage

// Package main provides build targets for the masterdata service using Mage.
//
// Usage:
//
//	mage build      Compile the masterdata binary to bin/
//	mage test       Run all tests
//	mage testPG     Run the repository tests against DATABASE_URL
//	mage lint       Run golangci-lint
//	mage migrate    Apply the schema to DATABASE_URL
//	mage run        Build and serve with the current environment
//	mage clean      Remove build artifacts
package main

import (
	"errors"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

const (
	binaryName = "masterdata"
	binaryDir  = "bin"
	cmdDir     = "./cmd/masterdata"
)

func binaryPath() string {
	return filepath.Join(binaryDir, binaryName)
}

// Build compiles the masterdata binary to bin/.
func Build() error {
	if err := os.MkdirAll(binaryDir, 0o755); err != nil {
		return err
	}
	version, err := sh.Output("git", "describe", "--tags", "--always", "--dirty")
	if err != nil || strings.TrimSpace(version) == "" {
		version = "dev"
	}
	ldflags := "-X main.version=" + strings.TrimSpace(version)
	return sh.RunV("go", "build", "-v", "-ldflags", ldflags, "-o", binaryPath(), cmdDir)
}

// Test runs all tests.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// TestPG runs the Postgres repository tests; DATABASE_URL must point at a
// disposable database.
func TestPG() error {
	if !strings.HasPrefix(os.Getenv("DATABASE_URL"), "postgres") {
		return errors.New("DATABASE_URL must be a postgres url")
	}
	return sh.RunV("go", "test", "-count=1", "./internal/repository/")
}

// Lint runs golangci-lint.
func Lint() error {
	return sh.RunV("golangci-lint", "run", "./...")
}

// Migrate applies the schema using the built binary.
func Migrate() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath(), "migrate")
}

// Run builds and starts the service.
func Run() error {
	mg.Deps(Build)
	return sh.RunV(binaryPath(), "serve")
}

// Clean removes build artifacts.
func Clean() error {
	return os.RemoveAll(binaryDir)
}

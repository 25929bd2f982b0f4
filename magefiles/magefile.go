//go:build mage

// Package main contains Mage build targets for OpenTraceFP developer
// tooling. Run with `mage <target>` from the project root.
package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/magefile/mage/mg"
	"github.com/magefile/mage/sh"
)

// Test runs the full test suite.
func Test() error {
	return sh.RunV("go", "test", "./...")
}

// Vet runs go vet over the module.
func Vet() error {
	return sh.RunV("go", "vet", "./...")
}

// Fmt checks that all Go files are gofmt-clean.
func Fmt() error {
	out, err := sh.Output("gofmt", "-l", ".")
	if err != nil {
		return err
	}
	if out != "" {
		return fmt.Errorf("gofmt needed:\n%s", out)
	}
	return nil
}

// Check runs Fmt, Vet and Test in order.
func Check() {
	mg.SerialDeps(Fmt, Vet, Test)
}

// Examples runs every demo program, writing footprints under out/.
func Examples() error {
	entries, err := os.ReadDir("examples")
	if err != nil {
		return fmt.Errorf("reading examples: %w", err)
	}
	for _, e := range entries {
		if !e.IsDir() {
			continue
		}
		fmt.Printf("--- %s ---\n", e.Name())
		if err := sh.RunV("go", "run", "./"+filepath.Join("examples", e.Name()),
			filepath.Join("out", e.Name())); err != nil {
			return err
		}
	}
	return nil
}

// Clean removes generated footprint output.
func Clean() error {
	return sh.Rm("out")
}

// Stats prints production and test line counts.
func Stats() error {
	prod, test := 0, 0
	err := filepath.Walk(".", func(path string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}
		if info.IsDir() {
			name := info.Name()
			if name == "out" || strings.HasPrefix(name, "_") || strings.HasPrefix(name, ".") && name != "." {
				return filepath.SkipDir
			}
			return nil
		}
		if filepath.Ext(path) != ".go" {
			return nil
		}
		data, err := os.ReadFile(path)
		if err != nil {
			return err
		}
		lines := 0
		for _, line := range strings.Split(string(data), "\n") {
			if strings.TrimSpace(line) != "" {
				lines++
			}
		}
		if strings.HasSuffix(path, "_test.go") {
			test += lines
		} else {
			prod += lines
		}
		return nil
	})
	if err != nil {
		return err
	}
	fmt.Printf("Lines of code (Go, production): %d\n", prod)
	fmt.Printf("Lines of code (Go, tests):      %d\n", test)
	return nil
}

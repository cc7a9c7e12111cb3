package main

import (
	"fmt"
	"io"
	"os"

	"github.com/fatih/color"
	"github.com/mgenware/ku-aar"
)

func main() {
	if err := run(os.Args[1:], os.Getenv, os.Stderr); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(args []string, getenv func(string) string, output io.Writer) error {
	cliArgs, err := ku.ParseCLIArgs(args, getenv, output)
	if err != nil {
		return err
	}
	tunnel := ku.CreateDefaultTunnel()
	if err := ku.StartLoop(cliArgs, &ku.StartLoopOptions{Tunnel: tunnel}); err != nil {
		return fmt.Errorf("building AAR: %w", err)
	}
	return nil
}

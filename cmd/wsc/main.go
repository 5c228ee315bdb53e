// Package main is the entry point for the wsc CLI.
package main

import (
	"context"
	"os"

	"github.com/joedowns/wsc/cmd/wsc/internal"
)

func main() {
	os.Exit(internal.Run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

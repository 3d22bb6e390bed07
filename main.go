package main

import (
	"os"

	"dvlg/internal/cli"
	"dvlg/internal/logs"
)

func main() {
	code := cli.Run(os.Args[1:], os.Stdout, os.Stderr)
	logs.Close()
	os.Exit(code)
}

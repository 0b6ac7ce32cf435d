package main

import "os"

func main() {
	cli := NewCLI()

	if err := cli.Execute(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		os.Exit(1)
	}
}

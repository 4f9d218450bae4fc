package main

import (
	"fmt"
	"os"

	"tasnim.dev/s3kit/cmd"
)

func main() {
	if err := cmd.NewRootCmd().Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

package main

import (
	"os"

	"hostel-be-svc/internal/cli"
)

func main() {
	os.Exit(cli.Execute())
}

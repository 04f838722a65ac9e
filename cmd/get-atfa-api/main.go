package main

import (
	"os"

	"fortio.org/log"
)

func main() {
	log.SetDefaultsForClientTools()
	os.Exit(Execute())
}

package main

import (
	"log"
	"os"

	"corebanking/cmd"
)

func main() {
	log.SetOutput(os.Stdout)
	log.SetFlags(log.Ldate | log.Ltime)

	cmd.Execute()
}

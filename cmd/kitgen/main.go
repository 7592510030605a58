package main

import (
	"fmt"
	"log"
	"os"

	"github.com/viant/kitgen/cmd"
)

var Version = "dev"

func main() {
	err := cmd.New(Version, os.Args[1:], os.Stdout)
	if err != nil {
		fmt.Printf("ERROR: %v\n", err)
		log.Fatal(err)
	}
}

package main

import (
	"log"
	"os"

	"github.com/minaorangina/cards/engine"
)

func main() {
	config, err := engine.LoadConfig()
	if err != nil {
		log.Fatal(err.Error())
	}

	e := engine.New(os.Stdin, os.Stdout, config)
	if err := e.Run(); err != nil {
		log.Fatal(err)
	}
}

package main

import (
	"context"
	"log"
	"os"
)

var server = srv{ctx: context.Background()}

func main() {
	server.loadApp()
	if err := server.app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}

// Package main implements the entry point for the blog API server.
// It wires configuration, logging, the database, the service layer and the
// HTTP router together and runs the server until it is signalled to stop.
package main

import (
	"context"
	"log"
)

func main() {
	app, err := newApplication()
	if err != nil {
		log.Fatalf("Failed to initialize application: %v", err)
	}

	if err := app.startHTTPServer(context.Background(), app.setupRouter()); err != nil {
		log.Fatalf("Server error: %v", err)
	}
}

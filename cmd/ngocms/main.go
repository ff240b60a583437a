// Package main is the entry point for the ngocms content server. The
// serve command loads configuration, opens the content store, sets up
// routing, and starts the HTTP server with graceful shutdown support.
package main

func main() {
	Execute()
}

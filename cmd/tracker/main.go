// Package main is the entry point for the endpoint usage tracker.
//
//	@title			Endpoint Usage Tracker
//	@version		1.0
//	@description	In-process API usage analytics and unused-route detection.
//
//	@license.name	MIT
//	@license.url	https://opensource.org/licenses/MIT
//
//	@host			localhost:8080
//	@BasePath		/
package main

func main() {
	Execute()
}

package main

import fittrack "github.com/fittrack/fittrack-cli/cmd/fittrack"

func main() {
	fittrack.Execute()
}

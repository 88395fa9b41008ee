// main.go
package main

import "movie-catalog/cmd"

func main() {
	cmd.Execute()
}

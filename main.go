package main

import "github.com/catapou/contador/cmd/contador"

func main() {
	contador.Execute()
}

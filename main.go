package main

import "github.com/uyouii/heuncert/cmd/heuncert"

func main() {
	heuncert.Execute()
}

package main

import (
	"log"

	"ShapeCanvas/internal/ui"
)

func main() {
	log.Println("Starting shape canvas")
	ui.RunApp()
}

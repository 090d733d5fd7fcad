package main

import (
	"os"

	"github.com/metinatakli/cinema-booking/internal/app"
)

func main() {
	err := app.Run()
	if err != nil {
		os.Exit(1)
	}
}

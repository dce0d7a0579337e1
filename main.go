package main

import (
	"github.com/iburimskiy/flower-explorer/internal/explorer"
)

const title = "Flower Explorer"

func newApp(width, height int, step float64) *explorer.App {
	return explorer.New(width, height, explorer.WithTimeStep(step))
}

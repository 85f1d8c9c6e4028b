//go:build tinygo

package main

import (
	"quickgfx/app"
	"quickgfx/hal"
)

func main() {
	app.Run(hal.New())
}

package main

import "venturelink_backend/internal/app"

func main() {
	app.Run()
}

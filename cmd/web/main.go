package main

import "rentify_backend/internal/app"

func main() {
	app.Run()
}

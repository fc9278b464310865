package main

import "tailorlink_backend/internal/app"

func main() {
	app.Run()
}

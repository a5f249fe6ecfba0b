package main

import "zogiraa_backend/internal/app"

func main() {
	app.Run()
}

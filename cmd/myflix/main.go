package main

import (
	"log"

	"github.com/patric-chuzhbe/myflix/internal/app"
	"github.com/patric-chuzhbe/myflix/internal/logger"
)

func main() {
	application, err := app.New()
	if err != nil {
		log.Fatalln("application init error:", err)
	}
	defer application.Close()

	if err := application.Run(); err != nil {
		logger.Log.Fatalln("application error:", err)
	}
}

package main

import (
	"context"
	"log"
	"os"

	"github.com/Ahadan1/SIPAS-Public-sub000/config"
	"github.com/Ahadan1/SIPAS-Public-sub000/routes"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils/fcm"
	"github.com/Ahadan1/SIPAS-Public-sub000/utils/storage"

	"github.com/gofiber/fiber/v2"
)

func main() {
	config.ConnectDB()

	if os.Getenv("AWS_S3_BUCKET") != "" {
		storage.InitS3Client()
	}

	// Notifikasi push opsional; tanpa FCM_PROJECT_ID server tetap jalan
	if projectID := os.Getenv("FCM_PROJECT_ID"); projectID != "" {
		ctx := context.Background()
		if err := fcm.Init(ctx, projectID); err != nil {
			log.Printf("FCM disabled: %v", err)
		} else {
			go fcm.StartNotifierConsumer(ctx)
		}
	}

	app := fiber.New()

	routes.Register(app)

	addr := os.Getenv("APP_ADDR")
	if addr == "" {
		addr = ":8080"
	}

	log.Println("🚀 API running on", addr)
	if err := app.Listen(addr); err != nil {
		log.Fatal(err)
	}
}

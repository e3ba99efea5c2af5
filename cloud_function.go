package newsapi

import (
	"log"
	"os"

	"github.com/GoogleCloudPlatform/functions-framework-go/functions"

	"github.com/globalpulse/news-api/internal/transport/server"
)

func init() {
	functionTarget := os.Getenv("FUNCTION_TARGET")
	if functionTarget == "" {
		log.Println("FUNCTION_TARGET not set, skipping function registration")
		return
	}

	log.Printf("✅ Registering function: %s", functionTarget)
	functions.HTTP(functionTarget, server.HandleRequest)
}

// Manual probe against the live Brevo API. Run with BREVO_API_KEY set:
//
//	go run ./sample/test-brevo-integration you@example.com
package main

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/joho/godotenv"

	"github.com/tracerfleet/tracer-api/internal/infra/integration/brevo"
)

func main() {
	godotenv.Load()

	apiKey := os.Getenv("BREVO_API_KEY")
	if apiKey == "" {
		fmt.Println("BREVO_API_KEY not set")
		os.Exit(1)
	}

	email := "probe@tracerfleet.com"
	if len(os.Args) > 1 {
		email = os.Args[1]
	}

	client := brevo.NewClient(apiKey, brevo.DefaultBaseURL)
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	result, err := client.UpsertContact(ctx, brevo.GeneralContactInput(email, "Integration Probe"))
	if err != nil {
		fmt.Printf("upsert failed: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("contact %s: %s\n", email, result)
}

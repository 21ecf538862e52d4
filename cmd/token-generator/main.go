// Dev tool: prints a consumer bearer token for the configured secret,
// for exercising the protected audit endpoints locally.
package main

import (
	"context"
	"flag"
	"fmt"
	"log"

	"github.com/harlowgray/lexica-api/internal/config"
	"github.com/harlowgray/lexica-api/internal/service/auth"
)

func main() {
	consumer := flag.String("consumer", "dev", "consumer name to embed in the token")
	flag.Parse()

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("failed to load configuration: %v", err)
	}

	svc, err := auth.NewTokenService(cfg.Auth)
	if err != nil {
		log.Fatalf("failed to initialize token service: %v", err)
	}

	token, err := svc.GenerateToken(context.Background(), *consumer)
	if err != nil {
		log.Fatalf("failed to generate token: %v", err)
	}

	fmt.Printf("Consumer: %s\nToken: %s\n", *consumer, token)
}

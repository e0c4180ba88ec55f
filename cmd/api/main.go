package main

import (
	"context"
	"log"

	"github.com/Apurer/go-gin-bookstore/internal/app/api"
)

func main() {
	if err := api.Run(context.Background()); err != nil {
		log.Fatalf("bookstore api exited: %v", err)
	}
}

// Command server runs the content generation backend: REST API, read-through
// cache, event stream and the AI generation gateway.
package main

import (
	"context"
	"log"
	"os/signal"
	"syscall"

	"github.com/mkravets/contentangle-backend/internal/app"
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := app.Run(ctx); err != nil {
		log.Fatalf("application error: %v", err)
	}
}

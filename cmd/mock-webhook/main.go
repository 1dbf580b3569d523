// Command mock-webhook serves the development stand-in for the n8n
// generation webhook. Point GENERATION_WEBHOOK_URL at it to run the backend
// without a live n8n instance.
//
// Exit codes: 0 = success, 1 = error.
package main

import (
	"flag"
	"log"
	"log/slog"
	"net/http"
	"os"
	"time"

	"github.com/mkravets/contentangle-backend/internal/adapter/provider/n8nmock"
)

func main() {
	addr := flag.String("addr", ":5678", "listen address")
	latency := flag.Bool("latency", true, "simulate realistic generation latency")
	flag.Parse()

	logger := slog.New(slog.NewTextHandler(os.Stderr, nil))
	handler := n8nmock.NewHandler(logger, *latency)

	mux := http.NewServeMux()
	mux.Handle("POST /webhook/generate", handler)

	server := &http.Server{
		Addr:         *addr,
		Handler:      mux,
		ReadTimeout:  10 * time.Second,
		WriteTimeout: 30 * time.Second,
	}

	logger.Info("mock webhook listening", slog.String("addr", *addr))
	if err := server.ListenAndServe(); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

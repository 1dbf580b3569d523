package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"
	"github.com/mkravets/contentangle-backend/pkg/ctxutil"
)

func TestRequestID_ReusesIncomingHeader(t *testing.T) {
	incoming := uuid.New().String()

	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if got := ctxutil.RequestIDFromCtx(r.Context()); got != incoming {
			t.Errorf("expected request id %s in context, got %q", incoming, got)
		}
		w.WriteHeader(http.StatusOK)
	})

	req := httptest.NewRequest(http.MethodGet, "/", nil)
	req.Header.Set(RequestIDHeader, incoming)
	rec := httptest.NewRecorder()

	RequestID()(handler).ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}
	if got := rec.Header().Get(RequestIDHeader); got != incoming {
		t.Errorf("expected %s header %s, got %s", RequestIDHeader, incoming, got)
	}
}

func TestRequestID_GeneratesWhenAbsent(t *testing.T) {
	handler := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		got := ctxutil.RequestIDFromCtx(r.Context())
		if got == "" {
			t.Error("expected a request id in context")
			return
		}
		if _, err := uuid.Parse(got); err != nil {
			t.Errorf("expected a UUID, got %s: %v", got, err)
		}
		w.WriteHeader(http.StatusOK)
	})

	rec := httptest.NewRecorder()
	RequestID()(handler).ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/", nil))

	if rec.Code != http.StatusOK {
		t.Errorf("expected status %d, got %d", http.StatusOK, rec.Code)
	}

	header := rec.Header().Get(RequestIDHeader)
	if header == "" {
		t.Fatalf("expected %s header to be set", RequestIDHeader)
	}
	if _, err := uuid.Parse(header); err != nil {
		t.Errorf("expected a UUID in the header, got %s: %v", header, err)
	}
}

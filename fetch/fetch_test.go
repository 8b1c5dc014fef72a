package fetch

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"
)

func TestTextFallsBackToSecondURL(t *testing.T) {
	bad := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer bad.Close()
	good := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("code,amount\n0056,1.07\n"))
	}))
	defer good.Close()

	c := New(WithRetries(1))
	text, err := c.Text(context.Background(), bad.URL, good.URL)
	if err != nil {
		t.Fatal(err)
	}
	if text != "code,amount\n0056,1.07\n" {
		t.Errorf("text = %q", text)
	}
}

func TestTextRetries(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if calls.Add(1) == 1 {
			http.Error(w, "flaky", http.StatusInternalServerError)
			return
		}
		w.Write([]byte("ok"))
	}))
	defer srv.Close()

	text, err := New().Text(context.Background(), srv.URL)
	if err != nil {
		t.Fatal(err)
	}
	if text != "ok" || calls.Load() != 2 {
		t.Errorf("text = %q after %d calls", text, calls.Load())
	}
}

func TestTextCaches(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
		w.Write([]byte("cached"))
	}))
	defer srv.Close()

	c := New(WithTTL(time.Minute))
	for i := 0; i < 3; i++ {
		if _, err := c.Text(context.Background(), srv.URL); err != nil {
			t.Fatal(err)
		}
	}
	if calls.Load() != 1 {
		t.Errorf("server hit %d times, want 1", calls.Load())
	}
}

func TestTextAllSourcesFail(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "no", http.StatusNotFound)
	}))
	defer srv.Close()

	if _, err := New(WithRetries(1)).Text(context.Background(), srv.URL); err == nil {
		t.Error("expected error when every source fails")
	}
}

func TestJSONText(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"export":{"csv":"code,name\n0056,x\n"}}`))
	}))
	defer srv.Close()

	text, err := New().JSONText(context.Background(), srv.URL, "$.export.csv")
	if err != nil {
		t.Fatal(err)
	}
	if text != "code,name\n0056,x\n" {
		t.Errorf("text = %q", text)
	}
}

func TestJSONTextBadPath(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"export":{}}`))
	}))
	defer srv.Close()

	if _, err := New().JSONText(context.Background(), srv.URL, "$.export.csv"); err == nil {
		t.Error("expected error for missing path")
	}
}

package zoomapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func TestStreamFile_TokenInQueryNotHeader(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Query().Get("access_token") == "" {
			t.Error("expected access_token query parameter")
		}
		if r.Header.Get("Authorization") != "" {
			t.Errorf("expected no Authorization header, got %q", r.Header.Get("Authorization"))
		}
		_, _ = w.Write([]byte("recording bytes"))
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Now())
	body, err := c.StreamFile(context.Background(), srv.URL+"/rec/abc.mp4")
	if err != nil {
		t.Fatalf("StreamFile error: %v", err)
	}
	defer func() { _ = body.Close() }()

	data, err := io.ReadAll(body)
	if err != nil {
		t.Fatalf("read body: %v", err)
	}
	if string(data) != "recording bytes" {
		t.Fatalf("unexpected body: %q", data)
	}
}

func TestStreamFile_NonOKIsError(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Now())
	if _, err := c.StreamFile(context.Background(), srv.URL+"/rec/abc.mp4"); err == nil {
		t.Fatal("expected error for non-200 status")
	}
}

func TestPost_SendsAuthAndJSON(t *testing.T) {
	t.Parallel()
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.Method != http.MethodPost {
			t.Errorf("expected POST, got %s", r.Method)
		}
		if !strings.HasPrefix(r.Header.Get("Authorization"), "Bearer ") {
			t.Errorf("expected bearer token, got %q", r.Header.Get("Authorization"))
		}
		if ct := r.Header.Get("Content-Type"); ct != "application/json" {
			t.Errorf("expected application/json, got %q", ct)
		}
		data, _ := io.ReadAll(r.Body)
		if !strings.Contains(string(data), `"host_id":"h1"`) {
			t.Errorf("unexpected body: %s", data)
		}
		w.WriteHeader(http.StatusOK)
	}))
	defer srv.Close()

	c := newTestClient(t, srv.URL, time.Now())
	resp, err := c.Post(context.Background(), srv.URL+"/things", map[string]string{"host_id": "h1"})
	if err != nil {
		t.Fatalf("Post error: %v", err)
	}
	if !resp.IsSuccess() {
		t.Fatalf("unexpected status: %d", resp.StatusCode())
	}
}

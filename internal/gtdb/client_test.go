package gtdb

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func TestClientGetClassification(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/ok":
			fmt.Fprint(w, `{"matches": ["g__Bacillus"]}`)
		case "/missing":
			w.WriteHeader(http.StatusBadRequest)
		case "/teapot":
			w.WriteHeader(http.StatusTeapot)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(false)

	body, err := client.Get(srv.URL+"/ok", "not found")
	if err != nil {
		t.Fatalf("Get ok: %v", err)
	}
	if !strings.Contains(string(body), "g__Bacillus") {
		t.Fatalf("unexpected body: %s", body)
	}

	if _, err := client.Get(srv.URL+"/missing", "taxon g__Nope not found"); err == nil || err.Error() != "taxon g__Nope not found" {
		t.Fatalf("status 400 should surface the caller message, got %v", err)
	}

	if _, err := client.Get(srv.URL+"/teapot", "not found"); err == nil || err.Error() != "unexpected status code 418" {
		t.Fatalf("non-2xx status should be reported verbatim, got %v", err)
	}
}

func TestClientGetTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := srv.URL
	srv.Close()

	client := NewClient(false)
	_, err := client.Get(url, "not found")
	if err == nil || !strings.HasPrefix(err.Error(), "request failed") {
		t.Fatalf("transport failure should map to a generic message, got %v", err)
	}
}

func TestClientGetJSON(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/taxa":
			fmt.Fprint(w, `[{"taxon": "g__Bacillus", "isGenome": false}]`)
		case "/broken":
			fmt.Fprint(w, `{"rows": "not an array"}`)
		}
	}))
	defer srv.Close()

	client := NewClient(false)

	var taxa []Taxon
	if err := client.GetJSON(srv.URL+"/taxa", "not found", &taxa); err != nil {
		t.Fatalf("GetJSON: %v", err)
	}
	if len(taxa) != 1 || taxa[0].Taxon != "g__Bacillus" {
		t.Fatalf("unexpected taxa: %+v", taxa)
	}

	var result SearchResult
	err := client.GetJSON(srv.URL+"/broken", "not found", &result)
	if err == nil || !strings.Contains(err.Error(), "decode") {
		t.Fatalf("decode failure should name the structure, got %v", err)
	}
}

func TestClientInsecureTLS(t *testing.T) {
	srv := httptest.NewTLSServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "{}")
	}))
	defer srv.Close()

	if _, err := NewClient(false).Get(srv.URL, "not found"); err == nil {
		t.Fatal("self-signed certificate should fail with verification enabled")
	}
	if _, err := NewClient(true).Get(srv.URL, "not found"); err != nil {
		t.Fatalf("insecure client should accept a self-signed certificate, got %v", err)
	}
}

func TestClientStatusAndVersion(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/status/db":
			fmt.Fprint(w, `{"timeMs": 12.5, "online": true}`)
		case "/meta/version":
			fmt.Fprint(w, `{"major": 2, "minor": 1, "patch": 0}`)
		default:
			w.WriteHeader(http.StatusNotFound)
		}
	}))
	defer srv.Close()

	client := NewClient(false)
	client.base = srv.URL

	status, err := client.Status()
	if err != nil {
		t.Fatalf("Status: %v", err)
	}
	if !status.Online || status.TimeMs != 12.5 {
		t.Fatalf("unexpected status: %+v", status)
	}

	version, err := client.Version()
	if err != nil {
		t.Fatalf("Version: %v", err)
	}
	if version.String() != "2.1.0" {
		t.Fatalf("unexpected version: %s", version)
	}
}

package hickory

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

func testDisplayServer(t *testing.T) (*DisplayServer, *httptest.Server) {
	t.Helper()

	p := NewPlot(PlotOptions{Title: "display test"})
	if err := p.Plot([]float64{1, 2, 3}, []float64{1, 4, 9}, nil); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	s := NewDisplayServer(p, p.displayMetadata())
	ts := httptest.NewServer(s.mux)
	t.Cleanup(ts.Close)
	return s, ts
}

func TestDisplayServerIndex(t *testing.T) {
	_, ts := testDisplayServer(t)

	resp, err := http.Get(ts.URL + "/")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer resp.Body.Close()

	if ct := resp.Header.Get("Content-Type"); ct != "text/html" {
		t.Fatalf("expected text/html, got %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !strings.Contains(string(body), "/figure.png") {
		t.Fatal("index page does not reference the figure")
	}
}

func TestDisplayServerFigure(t *testing.T) {
	_, ts := testDisplayServer(t)

	resp, err := http.Get(ts.URL + "/figure.png")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.StatusCode)
	}
	if ct := resp.Header.Get("Content-Type"); ct != "image/png" {
		t.Fatalf("expected image/png, got %q", ct)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	if !bytes.HasPrefix(body, []byte("\x89PNG")) {
		t.Fatal("response is not a PNG")
	}
}

func TestDisplayServerMetadata(t *testing.T) {
	_, ts := testDisplayServer(t)

	resp, err := http.Get(ts.URL + "/metadata")
	if err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}
	defer resp.Body.Close()

	var meta DisplayMetadata
	if err := json.NewDecoder(resp.Body).Decode(&meta); err != nil {
		t.Fatalf("expected nil error, got %v", err)
	}

	if meta.Title != "display test" {
		t.Fatalf("unexpected title %q", meta.Title)
	}
	if meta.Width != DefaultFigWidth || meta.Height != DefaultFigHeight || meta.DPI != DefaultDPI {
		t.Fatalf("unexpected geometry: %+v", meta)
	}
}

func TestDisplayServerRefresh(t *testing.T) {
	s, _ := testDisplayServer(t)

	ch := make(chan struct{}, 1)
	s.registerReload(ch)
	defer s.deregisterReload(ch)

	s.Refresh()

	select {
	case <-ch:
	default:
		t.Fatal("refresh did not signal registered channel")
	}

	// a second refresh with a full channel must not block
	s.Refresh()
	s.Refresh()
}

func TestDisplayServerDeregister(t *testing.T) {
	s, _ := testDisplayServer(t)

	ch := make(chan struct{}, 1)
	s.registerReload(ch)
	s.deregisterReload(ch)

	s.Refresh()
	select {
	case <-ch:
		t.Fatal("deregistered channel still signaled")
	default:
	}
}

package hickory

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net"
	"net/http"
	"os/exec"
	"runtime"
	"sync"

	"github.com/sirupsen/logrus"
	"nhooyr.io/websocket"
	"nhooyr.io/websocket/wsjson"
)

// figure is anything the display server can render, i.e. a Plot or a Table.
type figure interface {
	WriteTo(w io.Writer, format Format) (int64, error)
}

// DisplayMetadata is served on /metadata for tooling that wants to know
// what it is looking at.
type DisplayMetadata struct {
	Title  string
	Width  float64 // inches
	Height float64
	DPI    float64
}

// displayEvent is pushed to connected pages over the websocket.
type displayEvent struct {
	Event string `json:"event"`
}

const displayPage = `<!DOCTYPE html>
<html>
<head><title>hickory</title></head>
<body style="margin:0">
<img src="/figure.png" style="display:block;margin:auto">
<script>
function connect() {
	var ws = new WebSocket("ws://" + location.host + "/ws");
	ws.onmessage = function() { location.reload(); };
	ws.onclose = function() { setTimeout(connect, 1000); };
}
connect();
</script>
</body>
</html>
`

// DisplayServer serves a rendered figure to a browser. The page reloads
// itself whenever Refresh is called, so a long-lived server can show a
// figure that is re-rendered over time.
type DisplayServer struct {
	fig      figure
	metadata DisplayMetadata
	mux      *http.ServeMux
	logger   logrus.FieldLogger

	mutex       sync.Mutex
	reloadChans []chan struct{}
}

func NewDisplayServer(fig figure, metadata DisplayMetadata) *DisplayServer {
	s := &DisplayServer{
		fig:      fig,
		metadata: metadata,
		mux:      http.NewServeMux(),
		logger:   logrus.WithField("tag", "DisplayServer"),
	}

	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/figure.png", s.handleFigure)
	s.mux.HandleFunc("/metadata", s.handleMetadata)
	s.mux.HandleFunc("/ws", s.handleWebSocket)

	return s
}

func (s *DisplayServer) handleIndex(w http.ResponseWriter, req *http.Request) {
	w.Header().Add("Content-Type", "text/html")
	io.WriteString(w, displayPage)
}

func (s *DisplayServer) handleFigure(w http.ResponseWriter, req *http.Request) {
	var buf bytes.Buffer
	if _, err := s.fig.WriteTo(&buf, FormatPNG); err != nil {
		s.logger.WithError(err).Error("failed to render figure")
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}

	w.Header().Add("Content-Type", "image/png")
	w.Write(buf.Bytes())
}

func (s *DisplayServer) handleMetadata(w http.ResponseWriter, req *http.Request) {
	w.Header().Add("Content-Type", "application/json")
	err := json.NewEncoder(w).Encode(s.metadata)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(err.Error()))
	}
}

func (s *DisplayServer) handleWebSocket(w http.ResponseWriter, req *http.Request) {
	c, err := websocket.Accept(w, req, &websocket.AcceptOptions{
		OriginPatterns: []string{"*"},
	})
	if err != nil {
		s.logger.WithError(err).Warn("failed to accept new websocket connection")
		return
	}

	ctx := req.Context()
	ctx = c.CloseRead(ctx) // write-only socket, we just push reload events

	ch := make(chan struct{}, 1)
	s.registerReload(ch)
	defer s.deregisterReload(ch)

	for {
		select {
		case <-ch:
			if err := wsjson.Write(ctx, c, displayEvent{Event: "reload"}); err != nil {
				s.logger.Warn("websocket write failed and closed")
				return
			}
		case <-ctx.Done():
			s.logger.Debug("client closed connection or context canceled")
			c.Close(websocket.StatusNormalClosure, "")
			return
		}
	}
}

func (s *DisplayServer) registerReload(ch chan struct{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.reloadChans = append(s.reloadChans, ch)
}

func (s *DisplayServer) deregisterReload(ch chan struct{}) {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	s.reloadChans = Filter(s.reloadChans, func(c chan struct{}) bool {
		return c != ch
	})
}

// Refresh tells all connected pages to reload the figure.
func (s *DisplayServer) Refresh() {
	s.mutex.Lock()
	defer s.mutex.Unlock()
	for _, ch := range s.reloadChans {
		select {
		case ch <- struct{}{}:
		default:
		}
	}
}

// Run serves until ctx is canceled. addr may use port 0 to pick a free
// port; the resolved URL is logged and the browser is opened when
// openBrowser is true.
func (s *DisplayServer) Run(ctx context.Context, addr string, openInBrowser bool) error {
	if addr == "" {
		addr = "127.0.0.1:0"
	}

	listener, err := net.Listen("tcp", addr)
	if err != nil {
		return fmt.Errorf("failed to listen on %q: %w", addr, err)
	}

	url := fmt.Sprintf("http://%s", listener.Addr())
	s.logger.Infof("showing figure at %s", url)

	server := &http.Server{Handler: s.mux}
	go func() {
		<-ctx.Done()
		server.Shutdown(context.Background())
	}()

	if openInBrowser {
		openBrowser(s.logger, url)
	}

	err = server.Serve(listener)
	if err == http.ErrServerClosed {
		return nil
	}
	return err
}

func openBrowser(logger logrus.FieldLogger, url string) {
	var cmd string
	var args []string

	switch runtime.GOOS {
	case "windows":
		cmd = "cmd"
		args = []string{"/c", "start"}
	case "darwin":
		cmd = "open"
	default: // "linux", "freebsd", "openbsd", "netbsd"
		cmd = "xdg-open"
	}
	args = append(args, url)
	err := exec.Command(cmd, args...).Start()
	if err != nil {
		logger.Warn("failed to start web browser automatically")
	}
}

// Show renders the figure and serves it to a browser, blocking until ctx is
// canceled.
func (p *Plot) Show(ctx context.Context, cfg *Config) error {
	return showFigure(ctx, p, p.displayMetadata(), cfg)
}

// ShowBackground serves the figure without blocking the caller. The server
// runs until the process exits; errors after startup are only logged.
func (p *Plot) ShowBackground(cfg *Config) {
	showFigureBackground(p, p.displayMetadata(), cfg)
}

func (p *Plot) displayMetadata() DisplayMetadata {
	fs := p.figureSize()
	return DisplayMetadata{Title: p.opts.Title, Width: fs.Width, Height: fs.Height, DPI: fs.DPI}
}

// Show renders the table and serves it to a browser, blocking until ctx is
// canceled.
func (t *Table) Show(ctx context.Context, cfg *Config) error {
	return showFigure(ctx, t, t.displayMetadata(), cfg)
}

// ShowBackground serves the table without blocking the caller.
func (t *Table) ShowBackground(cfg *Config) {
	showFigureBackground(t, t.displayMetadata(), cfg)
}

func (t *Table) displayMetadata() DisplayMetadata {
	fs := t.figureSize()
	return DisplayMetadata{Width: fs.Width, Height: fs.Height, DPI: fs.DPI}
}

func showFigure(ctx context.Context, fig figure, meta DisplayMetadata, cfg *Config) error {
	cfg = cfg.withDefaults()
	server := NewDisplayServer(fig, meta)
	return server.Run(ctx, cfg.Addr, cfg.openBrowser())
}

func showFigureBackground(fig figure, meta DisplayMetadata, cfg *Config) {
	go func() {
		if err := showFigure(context.Background(), fig, meta, cfg); err != nil {
			logrus.WithField("tag", "DisplayServer").WithError(err).Error("display server failed")
		}
	}()
}

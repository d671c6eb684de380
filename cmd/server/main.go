package main

import (
	"embed"
	"flag"
	"fmt"
	"io/fs"
	"net/http"
	"os"
	"sync"

	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	"github.com/gorilla/websocket"

	"github.com/sanj0/chessica/chess"
	"github.com/sanj0/chessica/eval"
)

const DefaultPort = 8080

//go:embed assets
var assets embed.FS
var static fs.FS

func init() {
	static, _ = fs.Sub(assets, "assets")
}

func stdoutLogger(next http.Handler) http.Handler {
	return handlers.LoggingHandler(os.Stdout, next)
}

// request is a single client command: load a FEN, play a move by its
// coordinate notation, or both (FEN first).
type request struct {
	FEN  string `json:"fen,omitempty"`
	Move string `json:"move,omitempty"`
}

type response struct {
	FEN      string   `json:"fen"`
	Display  string   `json:"display"`
	Material int      `json:"material"`
	Moves    []string `json:"moves"`
	Error    string   `json:"error,omitempty"`
}

// Client owns one websocket connection and the board behind it. The
// mutex serializes the reader goroutine against future broadcast use.
type Client struct {
	conn  *websocket.Conn
	mu    sync.Mutex
	board *chess.Board
}

func (c *Client) state(errMsg string) response {
	moves := chess.GeneratePseudoLegal(c.board, c.board.Turn())
	notations := make([]string, len(moves))
	for i, m := range moves {
		notations[i] = m.String()
	}
	return response{
		FEN:      c.board.FEN(),
		Display:  c.board.String(),
		Material: eval.Material(c.board),
		Moves:    notations,
		Error:    errMsg,
	}
}

func (c *Client) handle(req request) response {
	c.mu.Lock()
	defer c.mu.Unlock()

	if req.FEN != "" {
		board, err := chess.ParseFEN(req.FEN)
		if err != nil {
			return c.state(err.Error())
		}
		c.board = board
	}
	if req.Move != "" {
		played := false
		for _, m := range chess.GeneratePseudoLegal(c.board, c.board.Turn()) {
			if m.String() == req.Move {
				c.board.Play(m)
				played = true
				break
			}
		}
		if !played {
			return c.state(fmt.Sprintf("no pseudo-legal move %q", req.Move))
		}
	}
	return c.state("")
}

type Application struct {
	router   *mux.Router
	upgrader websocket.Upgrader
}

func NewApplication() *Application {
	result := Application{
		router: mux.NewRouter(),
		upgrader: websocket.Upgrader{
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
	result.router.Use(stdoutLogger)
	result.router.Handle("/", http.FileServer(http.FS(static)))
	result.router.HandleFunc("/ws", result.wsHandler)
	return &result
}

func (app *Application) wsHandler(w http.ResponseWriter, r *http.Request) {
	conn, err := app.upgrader.Upgrade(w, r, nil)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	fmt.Printf("New websocket connection from %s\n", conn.RemoteAddr())
	client := &Client{conn: conn, board: chess.StartingPosition()}
	client.conn.WriteJSON(client.state(""))

	go func() {
		defer client.conn.Close()
		for {
			var req request
			if err := client.conn.ReadJSON(&req); err != nil {
				fmt.Printf("Connection %s closed: %v\n", conn.RemoteAddr(), err)
				return
			}
			if err := client.conn.WriteJSON(client.handle(req)); err != nil {
				fmt.Printf("Error writing to %s: %v\n", conn.RemoteAddr(), err)
				return
			}
		}
	}()
}

func (app *Application) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	app.router.ServeHTTP(w, r)
}

func main() {
	var port uint
	flag.UintVar(&port, "port", DefaultPort, "Port to listen on")
	flag.Parse()
	if port == 0 || port > 65535 {
		fmt.Println("Invalid port number")
		os.Exit(1)
	}
	fmt.Printf("Starting server on :%d\n", port)
	http.ListenAndServe(fmt.Sprintf(":%d", port), NewApplication())
}

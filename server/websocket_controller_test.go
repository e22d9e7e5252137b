package server

import (
	"encoding/json"
	"net"
	"testing"
	"time"

	"chessMinimax/board"

	"github.com/fasthttp/websocket"
)

type wsMove struct {
	From  board.Position `json:"from"`
	To    board.Position `json:"to"`
	Score int            `json:"score"`
}

type wsState struct {
	FEN    string `json:"fen"`
	ToMove string `json:"toMove"`
}

// listen serves the app on a loopback port and returns its websocket base url.
func listen(t *testing.T) (string, func(fen string) string) {
	t.Helper()
	app, games := testServer()

	ln, err := net.Listen("tcp", "127.0.0.1:0")
	if err != nil {
		t.Fatal(err)
	}
	go app.Listener(ln)
	t.Cleanup(func() { app.Shutdown() })

	create := func(fen string) string {
		sess, err := games.Create(fen)
		if err != nil {
			t.Fatal(err)
		}
		return sess.ID
	}
	return "ws://" + ln.Addr().String() + "/ws/game/", create
}

func dial(t *testing.T, url string) *websocket.Conn {
	t.Helper()
	conn, _, err := websocket.DefaultDialer.Dial(url, nil)
	if err != nil {
		t.Fatalf("dial %s: %v", url, err)
	}
	t.Cleanup(func() { conn.Close() })
	return conn
}

func read(t *testing.T, conn *websocket.Conn, want MessageType) json.RawMessage {
	t.Helper()
	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	var msg Message
	if err := conn.ReadJSON(&msg); err != nil {
		t.Fatalf("waiting for %s: %v", want, err)
	}
	if msg.Type != want {
		t.Fatalf("got %s %s, want %s", msg.Type, msg.Payload, want)
	}
	return msg.Payload
}

func write(t *testing.T, conn *websocket.Conn, typ MessageType, payload string) {
	t.Helper()
	msg := Message{Type: typ}
	if payload != "" {
		msg.Payload = json.RawMessage(payload)
	}
	if err := conn.WriteJSON(msg); err != nil {
		t.Fatal(err)
	}
}

func TestWebsocketGame(t *testing.T) {
	base, create := listen(t)
	id := create("4k3/8/8/3q4/8/8/3R4/4K3 w - - 0 1")
	conn := dial(t, base+id)

	var st wsState
	if err := json.Unmarshal(read(t, conn, MessageTypeGameState), &st); err != nil {
		t.Fatal(err)
	}
	if st.ToMove != "white" {
		t.Errorf("initial toMove = %q, want white", st.ToMove)
	}

	write(t, conn, MessageTypeBotMove, "")
	var m wsMove
	if err := json.Unmarshal(read(t, conn, MessageTypeMove), &m); err != nil {
		t.Fatal(err)
	}
	if m.From.String()+m.To.String() != "d2d5" || m.Score != 5 {
		t.Errorf("bot move %v%v score %d, want d2d5 score 5", m.From, m.To, m.Score)
	}
	if err := json.Unmarshal(read(t, conn, MessageTypeGameState), &st); err != nil {
		t.Fatal(err)
	}
	if st.ToMove != "black" || st.FEN != "4k3/8/8/3R4/8/8/8/4K3 b - - 0 1" {
		t.Errorf("state after bot move: %+v", st)
	}

	write(t, conn, MessageTypeMove, `{"from": "z9", "to": "e7"}`)
	read(t, conn, MessageTypeError)

	write(t, conn, MessageTypeMove, `{"from": "e8", "to": "e7"}`)
	if err := json.Unmarshal(read(t, conn, MessageTypeGameState), &st); err != nil {
		t.Fatal(err)
	}
	if st.ToMove != "white" {
		t.Errorf("toMove after e8e7 = %q, want white", st.ToMove)
	}

	write(t, conn, "bogus", "")
	var text string
	if err := json.Unmarshal(read(t, conn, MessageTypeError), &text); err != nil {
		t.Fatal(err)
	}
	if text != "unknown message type: bogus" {
		t.Errorf("error = %q", text)
	}
}

func TestWebsocketUnknownGame(t *testing.T) {
	base, _ := listen(t)
	conn := dial(t, base+"no-such-game")

	var text string
	if err := json.Unmarshal(read(t, conn, MessageTypeError), &text); err != nil {
		t.Fatal(err)
	}
	if text != "game not found" {
		t.Errorf("error = %q, want game not found", text)
	}

	conn.SetReadDeadline(time.Now().Add(5 * time.Second))
	if _, _, err := conn.ReadMessage(); err == nil {
		t.Error("connection still open after unknown game")
	}
}

package server

import (
	"encoding/json"
	"fmt"
	"log"

	"chessMinimax/board"
	"chessMinimax/game"

	"github.com/gofiber/websocket/v2"
)

type MessageType string

const (
	MessageTypeMove      MessageType = "move"
	MessageTypeBotMove   MessageType = "botMove"
	MessageTypeGameState MessageType = "gameState"
	MessageTypeError     MessageType = "error"
)

// Message is the envelope of every websocket frame.
type Message struct {
	Type    MessageType     `json:"type"`
	Payload json.RawMessage `json:"payload,omitempty"`
}

// handleConnection serves one client of a game until it hangs up.
func (s *Server) handleConnection(c *websocket.Conn) {
	gameID := c.Params("gameId")
	sess, err := s.games.Get(gameID)
	if err != nil {
		log.Printf("ws %s: %v", gameID, err)
		s.sendError(c, err)
		c.Close()
		return
	}
	s.send(c, MessageTypeGameState, sess.State())

	for {
		messageType, raw, err := c.ReadMessage()
		if err != nil {
			log.Printf("ws %s: read error: %v", gameID, err)
			break
		}
		if messageType != websocket.TextMessage {
			continue
		}

		var msg Message
		if err := json.Unmarshal(raw, &msg); err != nil {
			log.Printf("ws %s: parse error: %v", gameID, err)
			s.sendError(c, err)
			continue
		}
		if err := s.handleMessage(c, sess, msg); err != nil {
			log.Printf("ws %s: %v", gameID, err)
			s.sendError(c, err)
		}
	}
}

func (s *Server) handleMessage(c *websocket.Conn, sess *game.Session, msg Message) error {
	switch msg.Type {
	case MessageTypeMove:
		var req playRequest
		if err := json.Unmarshal(msg.Payload, &req); err != nil {
			return err
		}
		from, err := board.ParseSquare(req.From)
		if err != nil {
			return err
		}
		to, err := board.ParseSquare(req.To)
		if err != nil {
			return err
		}
		if _, err := sess.Play(from, to); err != nil {
			return err
		}

	case MessageTypeBotMove:
		m, err := sess.MakeBotMove()
		if err != nil {
			return err
		}
		s.send(c, MessageTypeMove, m)

	case MessageTypeGameState:

	default:
		return fmt.Errorf("unknown message type: %s", msg.Type)
	}

	s.send(c, MessageTypeGameState, sess.State())
	return nil
}

func (s *Server) send(c *websocket.Conn, t MessageType, v any) {
	payload, err := json.Marshal(v)
	if err != nil {
		log.Printf("ws: marshal %s: %v", t, err)
		return
	}
	if err := c.WriteJSON(Message{Type: t, Payload: payload}); err != nil {
		log.Printf("ws: write %s: %v", t, err)
	}
}

func (s *Server) sendError(c *websocket.Conn, err error) {
	s.send(c, MessageTypeError, err.Error())
}

package game

import (
	"fmt"
	"log"
	"sync"

	"chessMinimax/board"
	"chessMinimax/bots"

	"github.com/google/uuid"
)

// BotFactory builds a fresh set of bots for one session. Bots keep search
// state and must not be shared between sessions.
type BotFactory func(gen board.Generator) map[string]bots.ChessBot

// Manager owns the running sessions.
type Manager struct {
	games      map[string]*Session
	newGen     func() board.Generator
	newBots    BotFactory
	defaultBot string
	mu         sync.RWMutex
}

func NewManager(newGen func() board.Generator, newBots BotFactory, defaultBot string) *Manager {
	return &Manager{
		games:      make(map[string]*Session),
		newGen:     newGen,
		newBots:    newBots,
		defaultBot: defaultBot,
	}
}

// Create starts a session from fen, or the initial position when fen is empty.
func (gm *Manager) Create(fen string) (*Session, error) {
	id := uuid.New().String()
	gen := gm.newGen()
	s, err := NewSession(id, fen, gen, gm.newBots(gen), gm.defaultBot)
	if err != nil {
		return nil, fmt.Errorf("failed to create game: %w", err)
	}

	gm.mu.Lock()
	gm.games[id] = s
	gm.mu.Unlock()
	log.Printf("game %s created", id)
	return s, nil
}

func (gm *Manager) Get(id string) (*Session, error) {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	s, ok := gm.games[id]
	if !ok {
		return nil, ErrGameNotFound
	}
	return s, nil
}

func (gm *Manager) Remove(id string) {
	gm.mu.Lock()
	delete(gm.games, id)
	gm.mu.Unlock()
}

func (gm *Manager) Len() int {
	gm.mu.RLock()
	defer gm.mu.RUnlock()
	return len(gm.games)
}

package mcp

import (
	"fmt"
	"sync"

	"github.com/google/uuid"

	"github.com/peterkuimelis/terrafutura/internal/game"
	"github.com/peterkuimelis/terrafutura/internal/log"
	"github.com/peterkuimelis/terrafutura/internal/view"
)

// SessionConfig selects what a new session is built from.
type SessionConfig struct {
	Pile    string          // catalog pile shared by all players
	Board   string          // catalog board each player starts with; empty for a bare grid
	Players int             // number of players, at least 1
	Journal log.EventLogger // optional extra sink for engine events
}

// Session is one table: a shared pile and a grid per player. All methods are
// safe for concurrent use; the engine itself is not.
type Session struct {
	ID string

	mu       sync.Mutex
	catalog  *game.Catalog
	pile     *game.Pile
	grids    map[int]*game.Grid
	events   *log.MemoryLogger
	logger   log.EventLogger
	executor *game.CardTransactionExecutor
	observer *game.GameObserver
}

// NewSession builds a session from catalog.
func NewSession(catalog *game.Catalog, cfg SessionConfig) (*Session, error) {
	if cfg.Players < 1 {
		return nil, fmt.Errorf("session needs at least one player, got %d", cfg.Players)
	}
	pile, err := catalog.NewPile(cfg.Pile)
	if err != nil {
		return nil, fmt.Errorf("load pile: %w", err)
	}

	events := log.NewMemoryLogger()
	var logger log.EventLogger = events
	if cfg.Journal != nil {
		logger = log.NewMultiLogger(events, cfg.Journal)
	}

	s := &Session{
		ID:       uuid.NewString(),
		catalog:  catalog,
		pile:     pile,
		grids:    make(map[int]*game.Grid, cfg.Players),
		events:   events,
		logger:   logger,
		executor: game.NewCardTransactionExecutor(logger),
		observer: game.NewGameObserver(),
	}
	s.observer.Logger = logger

	for p := 0; p < cfg.Players; p++ {
		g := game.NewGrid()
		if cfg.Board != "" {
			if g, err = catalog.NewGrid(cfg.Board); err != nil {
				return nil, fmt.Errorf("load board: %w", err)
			}
		}
		s.grids[p] = g
	}
	return s, nil
}

// Subscribe registers o to receive player's view after every change.
func (s *Session) Subscribe(player int, o game.Observer) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer.AddObserver(player, o)
}

// Unsubscribe stops updates for player.
func (s *Session) Unsubscribe(player int) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.observer.RemoveObserver(player)
}

// View returns player's snapshot.
func (s *Session) View(player int) (view.SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	g, err := s.grid(player)
	if err != nil {
		return view.SessionView{}, err
	}
	return view.BuildSessionView(s.ID, g, s.pile, nil, s.events.Events()), nil
}

// MoveCard moves the card in pile slot index onto player's grid at (x, y).
// A false result with a nil error is a legal request the rules refused.
func (s *Session) MoveCard(player, index, x, y int) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.grid(player)
	if err != nil {
		return false, err
	}
	pos, err := game.NewGridPosition(x, y)
	if err != nil {
		return false, err
	}
	m, err := game.NewMoveCard(index)
	if err != nil {
		return false, err
	}
	m.Player = player
	m.Logger = s.logger

	ok := m.Move(s.pile, pos, g)
	if ok {
		s.notify()
	}
	return ok, nil
}

// Activation is a decoded activate_card request.
type Activation struct {
	X               int           `json:"x"`
	Y               int           `json:"y"`
	Inputs          []ResourceArg `json:"inputs"`
	Outputs         []ResourceArg `json:"outputs"`
	Pollution       []PositionArg `json:"pollution"`
	AssistingPlayer *int          `json:"assisting_player"`
	AssistingX      int           `json:"assisting_x"`
	AssistingY      int           `json:"assisting_y"`
}

// ResourceArg is one resource unit on a grid cell.
type ResourceArg struct {
	Resource game.Resource `json:"resource"`
	X        int           `json:"x"`
	Y        int           `json:"y"`
}

// PositionArg is a grid cell.
type PositionArg struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// ActivateCard activates the upper effect of the card at (a.X, a.Y) on player's grid.
func (s *Session) ActivateCard(player int, a Activation) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.grid(player)
	if err != nil {
		return false, err
	}
	pos, err := game.NewGridPosition(a.X, a.Y)
	if err != nil {
		return false, err
	}
	card, ok := g.Card(pos)
	if !ok {
		return false, fmt.Errorf("no card at %s", pos)
	}
	inputs, err := resourcesAt(a.Inputs)
	if err != nil {
		return false, fmt.Errorf("inputs: %w", err)
	}
	outputs, err := resourcesAt(a.Outputs)
	if err != nil {
		return false, fmt.Errorf("outputs: %w", err)
	}
	pollution := make([]game.GridPosition, 0, len(a.Pollution))
	for _, p := range a.Pollution {
		pp, err := game.NewGridPosition(p.X, p.Y)
		if err != nil {
			return false, fmt.Errorf("pollution: %w", err)
		}
		pollution = append(pollution, pp)
	}

	assistingPlayer := log.NoPlayer
	var assistingCard *game.Card
	if a.AssistingPlayer != nil {
		assistingPlayer = *a.AssistingPlayer
		ag, err := s.grid(assistingPlayer)
		if err != nil {
			return false, fmt.Errorf("assisting player: %w", err)
		}
		apos, err := game.NewGridPosition(a.AssistingX, a.AssistingY)
		if err != nil {
			return false, fmt.Errorf("assisting card: %w", err)
		}
		assistingCard, _ = ag.Card(apos)
	}

	p := game.NewProcessActionAssistance(s.executor)
	p.Player = player
	done := p.ActivateCard(card, g, assistingPlayer, assistingCard, inputs, outputs, pollution)
	if done {
		s.notify()
	}
	return done, nil
}

// CalculateScore scores player's grid with catalog scoring method n (1-indexed).
func (s *Session) CalculateScore(player, n int) (game.ScoringState, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	g, err := s.grid(player)
	if err != nil {
		return game.ScoringState{}, err
	}
	m, err := s.catalog.NewScoringMethod(n, g)
	if err != nil {
		return game.ScoringState{}, err
	}
	m.Logger = s.logger
	m.SelectThisMethodAndCalculate()
	return m.State(), nil
}

func (s *Session) grid(player int) (*game.Grid, error) {
	g, ok := s.grids[player]
	if !ok {
		return nil, fmt.Errorf("unknown player %d", player)
	}
	return g, nil
}

// notify pushes every player's view to the observers. Callers hold s.mu.
func (s *Session) notify() {
	views := make(map[int]view.SessionView, len(s.grids))
	for p, g := range s.grids {
		views[p] = view.BuildSessionView(s.ID, g, s.pile, nil, nil)
	}
	states, err := encodeStates(views)
	if err != nil {
		s.logger.Log(log.NewNotifyFailedEvent(err.Error()))
		return
	}
	s.observer.NotifyAll(states)
}

// encodeStates is replaced in tests.
var encodeStates = view.PlayerStates

func resourcesAt(args []ResourceArg) ([]game.ResourceAt, error) {
	out := make([]game.ResourceAt, 0, len(args))
	for _, r := range args {
		if !r.Resource.Valid() {
			return nil, fmt.Errorf("unknown resource %d", int(r.Resource))
		}
		pos, err := game.NewGridPosition(r.X, r.Y)
		if err != nil {
			return nil, err
		}
		out = append(out, game.ResourceAt{Resource: r.Resource, Pos: pos})
	}
	return out, nil
}

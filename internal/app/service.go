package app

import (
    "context"
    "errors"
    "fmt"
    "sync"
    "time"

    "github.com/google/uuid"
    "github.com/jaminalder/perfect-tic-tac-toe/internal/domain"
    "github.com/jaminalder/perfect-tic-tac-toe/internal/minimax"
    "github.com/sirupsen/logrus"
)

// Errors exposed by the service layer.
var (
    ErrNotFound    = errors.New("game not found")
    ErrNotYourTurn = errors.New("not your turn")
    ErrNotAPlayer  = errors.New("not a player")
)

// GameState is the in-memory state tracked per game.
type GameState struct {
    ID       string
    Game     domain.Game
    Human    string
    LastMove int
    Created  time.Time
    Updated  time.Time
}

type subscriber struct {
    ch        chan []byte
    closeOnce sync.Once
}

func (s *subscriber) close() { s.closeOnce.Do(func() { close(s.ch) }) }

// Service manages games against the computer and their subscribers.
type Service struct {
    mu     sync.Mutex
    games  map[string]*GameState
    subs   map[string]map[*subscriber]struct{}
    render func(GameState) []byte
    log    logrus.FieldLogger
}

// NewService creates a service with a default renderer (encodes nothing useful).
func NewService() *Service { return NewServiceWithRenderer(func(gs GameState) []byte { return nil }) }

// NewServiceWithRenderer allows injecting a renderer for broadcast payloads.
func NewServiceWithRenderer(renderer func(GameState) []byte) *Service {
    if renderer == nil {
        renderer = func(gs GameState) []byte { return nil }
    }
    return &Service{
        games:  make(map[string]*GameState),
        subs:   make(map[string]map[*subscriber]struct{}),
        render: renderer,
        log:    logrus.StandardLogger(),
    }
}

// SetRenderer replaces the broadcast renderer function.
func (s *Service) SetRenderer(renderer func(GameState) []byte) {
    s.mu.Lock()
    defer s.mu.Unlock()
    if renderer == nil {
        s.render = func(gs GameState) []byte { return nil }
        return
    }
    s.render = renderer
}

// SetLogger replaces the logger used for game events.
func (s *Service) SetLogger(l logrus.FieldLogger) {
    s.mu.Lock()
    defer s.mu.Unlock()
    s.log = l
}

// CreateGame creates and registers a new game where the human plays the given symbol.
func (s *Service) CreateGame(human domain.Cell) (*GameState, error) {
    syms, err := domain.NewSymbols(human)
    if err != nil {
        return nil, fmt.Errorf("create game: %w", err)
    }
    s.mu.Lock()
    defer s.mu.Unlock()
    id := uuid.NewString()
    now := time.Now()
    gs := &GameState{ID: id, Game: domain.NewGame(syms), LastMove: -1, Created: now, Updated: now}
    s.games[id] = gs
    s.log.WithFields(logrus.Fields{"game": id, "human": human, "computer": syms.Computer}).Debug("game created")
    cp := *gs
    return &cp, nil
}

// Get returns a copy of the game state if present.
func (s *Service) Get(id string) (*GameState, bool) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return nil, false
    }
    cp := *gs
    return &cp, true
}

// Join seats the player as the human if the seat is free; returns Empty for spectators.
func (s *Service) Join(id, playerID string) (domain.Cell, *GameState, error) {
    s.mu.Lock()
    defer s.mu.Unlock()
    gs, ok := s.games[id]
    if !ok {
        return domain.Empty, nil, ErrNotFound
    }
    side := domain.Empty
    if gs.Human == "" || gs.Human == playerID {
        gs.Human = playerID
        side = gs.Game.Symbols.Opponent
    }
    gs.Updated = time.Now()
    cp := *gs
    return side, &cp, nil
}

// Play validates seat and turn, applies the human move at cell i, lets the
// computer reply if the game is still running, and broadcasts.
func (s *Service) Play(id, playerID string, i int) (*GameState, error) {
    var toDrop []*subscriber

    s.mu.Lock()
    gs, ok := s.games[id]
    if !ok {
        s.mu.Unlock()
        return nil, ErrNotFound
    }
    // Validate player is seated
    if gs.Human == "" || gs.Human != playerID {
        s.mu.Unlock()
        return nil, ErrNotAPlayer
    }
    // Validate turn
    if gs.Game.ComputerToMove() {
        s.mu.Unlock()
        return nil, ErrNotYourTurn
    }
    // Apply move
    if err := gs.Game.Play(i); err != nil {
        s.mu.Unlock()
        return nil, err
    }
    gs.LastMove = i
    log := s.log.WithField("game", id)
    log.WithField("cell", i).Debug("human move")

    if gs.Game.ComputerToMove() {
        if err := s.replyLocked(gs); err != nil {
            s.mu.Unlock()
            return nil, err
        }
        log.WithFields(logrus.Fields{"cell": gs.LastMove, "moves": gs.Game.Moves}).Debug("computer move")
    }
    if gs.Game.Over {
        log.WithField("outcome", gs.Game.Outcome).Info("game over")
    }
    gs.Updated = time.Now()

    // Snapshot state and subscribers
    cp := *gs
    subs := s.copySubsLocked(id)
    payload := s.render(cp)
    s.mu.Unlock()

    // Fan-out; drop slow subscribers by closing and marking for deletion
    for sub := range subs {
        select {
        case sub.ch <- payload:
        default:
            sub.close()
            toDrop = append(toDrop, sub)
        }
    }
    if len(toDrop) > 0 {
        s.mu.Lock()
        for _, sub := range toDrop {
            if set, ok := s.subs[id]; ok {
                delete(set, sub)
            }
        }
        s.mu.Unlock()
        s.log.WithFields(logrus.Fields{"game": id, "dropped": len(toDrop)}).Debug("dropped slow subscribers")
    }
    return &cp, nil
}

func (s *Service) replyLocked(gs *GameState) error {
    idx, err := minimax.BestMove(&gs.Game.Board, gs.Game.Symbols)
    if err != nil {
        return fmt.Errorf("computer move: %w", err)
    }
    if err := gs.Game.Play(idx); err != nil {
        return fmt.Errorf("computer move %d: %w", idx, err)
    }
    gs.LastMove = idx
    return nil
}

// Hint scores every empty cell of the current position for the human: Win
// means the human forces a win by playing there.
func (s *Service) Hint(id string) ([]minimax.MoveScore, error) {
    s.mu.Lock()
    gs, ok := s.games[id]
    if !ok {
        s.mu.Unlock()
        return nil, ErrNotFound
    }
    b, syms := gs.Game.Board, gs.Game.Symbols
    s.mu.Unlock()
    human := domain.Symbols{Computer: syms.Opponent, Opponent: syms.Computer}
    return minimax.Analyze(&b, human)
}

// Subscribe registers a subscriber for a game. Returns a channel and an unsubscribe func.
func (s *Service) Subscribe(ctx context.Context, id string) (<-chan []byte, func()) {
    s.mu.Lock()
    defer s.mu.Unlock()
    set := s.subs[id]
    if set == nil {
        set = make(map[*subscriber]struct{})
        s.subs[id] = set
    }
    sub := &subscriber{ch: make(chan []byte, 1)}
    set[sub] = struct{}{}

    unsubOnce := &sync.Once{}
    unsub := func() {
        unsubOnce.Do(func() {
            s.mu.Lock()
            if set, ok := s.subs[id]; ok {
                delete(set, sub)
                if len(set) == 0 {
                    delete(s.subs, id)
                }
            }
            s.mu.Unlock()
            sub.close()
        })
    }
    go func() {
        <-ctx.Done()
        unsub()
    }()
    return sub.ch, unsub
}

func (s *Service) copySubsLocked(id string) map[*subscriber]struct{} {
    out := make(map[*subscriber]struct{})
    if set, ok := s.subs[id]; ok {
        for k := range set {
            out[k] = struct{}{}
        }
    }
    return out
}

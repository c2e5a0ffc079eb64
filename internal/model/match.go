package model

import (
	"fmt"
	"sort"
	"sync"
)

// Match tracks pieces by label ("Ra1") and the log of every move made.
// All methods are safe for concurrent use; Move is atomic.
type Match struct {
	mu     sync.Mutex
	pieces map[string]*Piece
	log    []MoveRecord
}

// NewMatch builds a match from caller-supplied pieces, keyed by their labels.
func NewMatch(pieces ...*Piece) (*Match, error) {
	m := &Match{
		pieces: make(map[string]*Piece, len(pieces)),
		log:    make([]MoveRecord, 0),
	}
	for _, p := range pieces {
		if p == nil {
			continue
		}
		label := p.Label()
		if _, exists := m.pieces[label]; exists {
			return nil, fmt.Errorf("%w: %s", ErrLabelTaken, label)
		}
		m.pieces[label] = p
	}
	return m, nil
}

// NewStandardMatch returns a match set up with the standard layout.
func NewStandardMatch() *Match {
	m := &Match{}
	m.Reset()
	return m
}

// Reset restores the standard layout and clears the log.
func (m *Match) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.pieces = standardLayout()
	m.log = make([]MoveRecord, 0)
}

// Move moves the piece under label to target. On any error the mapping and
// log are left untouched.
func (m *Match) Move(label, target string) (MoveRecord, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	piece, exists := m.pieces[label]
	if !exists {
		return MoveRecord{}, fmt.Errorf("%w: %s", ErrNoSuchPiece, label)
	}
	if target == piece.Position || !piece.IsLegalMove(target) {
		return MoveRecord{}, fmt.Errorf("%w: %s to %s", ErrIllegalMove, label, target)
	}
	// Checked before piece.Move so a taken key leaves the piece untouched.
	newLabel := piece.Type.Prefix() + target
	if other, taken := m.pieces[newLabel]; taken && other != piece {
		return MoveRecord{}, fmt.Errorf("%w: %s", ErrLabelTaken, newLabel)
	}

	rec, ok := piece.Move(target)
	if !ok {
		return MoveRecord{}, fmt.Errorf("%w: %s to %s", ErrIllegalMove, label, target)
	}
	m.log = append(m.log, rec)
	delete(m.pieces, label)
	m.pieces[rec.To] = piece
	return rec, nil
}

// IsLegalMove checks a move without making it.
func (m *Match) IsLegalMove(label, target string) (bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	piece, exists := m.pieces[label]
	if !exists {
		return false, fmt.Errorf("%w: %s", ErrNoSuchPiece, label)
	}
	return piece.IsLegalMove(target), nil
}

// LegalTargets lists the squares the labelled piece can move to.
func (m *Match) LegalTargets(label string) ([]string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	piece, exists := m.pieces[label]
	if !exists {
		return nil, fmt.Errorf("%w: %s", ErrNoSuchPiece, label)
	}
	return piece.LegalTargets(), nil
}

func (m *Match) LogLen() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.log)
}

// Log returns a copy of the move log, oldest first.
func (m *Match) Log() []MoveRecord {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make([]MoveRecord, len(m.log))
	copy(out, m.log)
	return out
}

// Pieces returns a snapshot of the board keyed by label.
func (m *Match) Pieces() map[string]PieceState {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[string]PieceState, len(m.pieces))
	for label, p := range m.pieces {
		out[label] = p.state()
	}
	return out
}

// Snapshot returns pieces, log and FEN read under one lock.
func (m *Match) Snapshot() (map[string]PieceState, []MoveRecord, string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	pieces := make(map[string]PieceState, len(m.pieces))
	for label, p := range m.pieces {
		pieces[label] = p.state()
	}
	movesLog := make([]MoveRecord, len(m.log))
	copy(movesLog, m.log)
	return pieces, movesLog, m.fen()
}

func (m *Match) Piece(label string) (PieceState, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	p, exists := m.pieces[label]
	if !exists {
		return PieceState{}, false
	}
	return p.state(), true
}

// Labels returns the current keys in sorted order.
func (m *Match) Labels() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	labels := make([]string, 0, len(m.pieces))
	for label := range m.pieces {
		labels = append(labels, label)
	}
	sort.Strings(labels)
	return labels
}

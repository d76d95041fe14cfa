package chain

import "sync"

// Sequencer hands out block heights. Each state-mutating transaction mines
// one block, so heights are strictly increasing in transaction arrival
// order. Read-only queries observe the current height without advancing it.
type Sequencer struct {
	mu     sync.Mutex
	height uint64
}

func NewSequencer(genesis uint64) *Sequencer {
	return &Sequencer{height: genesis}
}

// Next advances the chain by one block and returns the new height.
func (s *Sequencer) Next() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.height++
	return s.height
}

// Current returns the height of the latest block.
func (s *Sequencer) Current() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.height
}

// AdvanceTo fast-forwards to a replayed height. Heights never move
// backwards; a lower target is ignored.
func (s *Sequencer) AdvanceTo(height uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if height > s.height {
		s.height = height
	}
}

package automatic

import (
	"lukechampine.com/frand"

	"github.com/domino14/blockbot/piece"
)

// PieceSource supplies the type of each new piece.
type PieceSource interface {
	Next() piece.Type
}

// RandomSource draws piece types uniformly from a seeded ChaCha stream, so
// that a game can be replayed from its seed.
type RandomSource struct {
	seed [32]byte
	rng  *frand.RNG
}

func NewRandomSource(seed [32]byte) *RandomSource {
	return &RandomSource{
		seed: seed,
		rng:  frand.NewCustom(seed[:], 1024, 12),
	}
}

func (s *RandomSource) Next() piece.Type {
	return piece.Type(s.rng.Intn(piece.NumTypes))
}

func (s *RandomSource) Seed() [32]byte {
	return s.seed
}

// SequenceSource cycles through a fixed list of types.
type SequenceSource struct {
	seq []piece.Type
	idx int
}

func NewSequenceSource(seq ...piece.Type) *SequenceSource {
	if len(seq) == 0 {
		panic("empty piece sequence")
	}
	return &SequenceSource{seq: seq}
}

func (s *SequenceSource) Next() piece.Type {
	t := s.seq[s.idx]
	s.idx = (s.idx + 1) % len(s.seq)
	return t
}

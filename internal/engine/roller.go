package engine

import (
	"fmt"
	"math/rand"

	"github.com/KirkDiggler/rpg-toolkit/dice"
)

// NewSeededRoller returns a dice.Roller backed by a seeded math/rand source.
// The same seed replays the same run, which is what the simulator and the
// tests rely on. Production play uses dice.DefaultRoller instead.
func NewSeededRoller(seed int64) dice.Roller {
	return &seededRoller{r: rand.New(rand.NewSource(seed))}
}

type seededRoller struct {
	r *rand.Rand
}

func (s *seededRoller) Roll(size int) (int, error) {
	if size < 1 {
		return 0, fmt.Errorf("roll size must be positive, got %d", size)
	}
	return s.r.Intn(size) + 1, nil
}

func (s *seededRoller) RollN(times, size int) ([]int, error) {
	if times < 1 {
		return nil, fmt.Errorf("roll count must be positive, got %d", times)
	}
	out := make([]int, times)
	for i := range out {
		n, err := s.Roll(size)
		if err != nil {
			return nil, err
		}
		out[i] = n
	}
	return out, nil
}

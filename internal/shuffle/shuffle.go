// Package shuffle reassigns the level IDs of the rhythm game slots of the
// level select table.
package shuffle

import (
	"errors"
	"fmt"
	"math/rand/v2"

	"github.com/retroenv/levelshuffle/internal/levels"
	"github.com/retroenv/levelshuffle/internal/table"
)

// ErrPoolExhausted is returned when the table contains more game slots than
// level IDs are available.
var ErrPoolExhausted = errors.New("level ID pool exhausted")

// Drawer returns a random number in [0, n).
type Drawer interface {
	IntN(n int) int
}

// NewRand returns a random source. A nil seed uses a random seed.
func NewRand(seed *int64) *rand.Rand {
	if seed == nil {
		return rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	s := uint64(*seed)
	return rand.New(rand.NewPCG(s, s^0x9E3779B97F4A7C15))
}

// Stats contains details about a shuffle run.
type Stats struct {
	Shuffled int     // number of reassigned game slots
	Unused   []int16 // level IDs left in the pool
}

// Engine shuffles the level IDs of game slots.
type Engine struct {
	rng Drawer
}

// New returns a new shuffle engine using the given random source.
func New(rng Drawer) *Engine {
	return &Engine{
		rng: rng,
	}
}

// Shuffle returns a copy of the records where every game slot got a new
// level ID drawn without replacement from the pool of all game level IDs.
// All other records are returned unchanged.
func (e *Engine) Shuffle(records []table.Record) ([]table.Record, Stats, error) {
	pool := newPool(levels.GameCount)
	result := make([]table.Record, 0, len(records))
	var stats Stats

	for i, record := range records {
		if !levels.IsGame(record.ID) {
			result = append(result, record)
			continue
		}

		id, err := pool.draw(e.rng)
		if err != nil {
			return nil, Stats{}, fmt.Errorf("record %d with level %s: %w", i, levels.LevelName(record.ID), err)
		}
		result = append(result, record.WithID(id))
		stats.Shuffled++
	}

	stats.Unused = pool.remaining()
	return result, stats, nil
}

// pool contains the level IDs that have not been drawn yet.
type pool struct {
	ids []int16
}

func newPool(size int) *pool {
	ids := make([]int16, size)
	for i := range ids {
		ids[i] = int16(i)
	}
	return &pool{ids: ids}
}

// draw removes a random ID from the pool, keeping the order of the remaining IDs.
func (p *pool) draw(rng Drawer) (int16, error) {
	if len(p.ids) == 0 {
		return 0, ErrPoolExhausted
	}
	idx := rng.IntN(len(p.ids))
	id := p.ids[idx]
	p.ids = append(p.ids[:idx], p.ids[idx+1:]...)
	return id, nil
}

func (p *pool) remaining() []int16 {
	if len(p.ids) == 0 {
		return nil
	}
	return append([]int16(nil), p.ids...)
}

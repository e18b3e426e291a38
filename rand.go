package uvmap

// LCG constants (ANSI C rand). Changing any of them changes every map.
const (
	lcgMultiplier = 1103515245
	lcgIncrement  = 12345
	lcgOutputMask = 0x7fffffff
)

// LCG is the linear congruential generator that drives the cell shuffle.
//
// It is fast and fully reproducible: the same seed and the same sequence of
// calls always yield the same values. It is not suitable for anything
// security related.
//
// LCG is NOT safe for concurrent use. Every shuffle owns its own generator.
type LCG struct {
	state uint32
}

// NewLCG returns a generator whose state is seed.
func NewLCG(seed uint32) *LCG {
	return &LCG{state: seed}
}

// Next advances the state (state = state*1103515245 + 12345, wrapping at
// 2^32) and returns its low 31 bits.
func (r *LCG) Next() uint32 {
	r.state = r.state*lcgMultiplier + lcgIncrement
	return r.state & lcgOutputMask
}

// State returns the current generator state.
func (r *LCG) State() uint32 {
	return r.state
}

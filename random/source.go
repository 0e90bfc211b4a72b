package random

// Mersenne Twister (MT19937) parameters.
const (
	stateSize = 624
	shiftSize = 397

	matrixA   = 0x9908b0df
	upperMask = 0x80000000
	lowerMask = 0x7fffffff

	initMultiplier   = 1812433253
	arraySeedBase    = 19650218
	arrayMultiplierA = 1664525
	arrayMultiplierB = 1566083941
)

// Source is a seedable bit generator producing uniform 32-bit values. Two
// sources seeded with the same value emit identical streams.
//
// A Source is not safe for concurrent use. Callers that share one across
// goroutines must serialize access; otherwise each goroutine should carry
// its own instance.
type Source struct {
	state [stateSize]uint32
	index int
	seed  int64
	draws uint64
}

// NewSource returns a Source initialized from seed.
func NewSource(seed int64) *Source {
	s := &Source{}
	s.Seed(seed)
	return s
}

// Seed discards all generator state and re-initializes the stream from seed.
// The full 64-bit seed participates in initialization, so distinct seeds
// produce distinct streams. Reseeding also resets the draw counter.
func (s *Source) Seed(seed int64) {
	s.mixKey([]uint32{uint32(seed), uint32(uint64(seed) >> 32)})
	s.index = stateSize
	s.seed = seed
	s.draws = 0
}

// seedState loads the state vector from a single 32-bit value.
func (s *Source) seedState(seed uint32) {
	s.state[0] = seed
	for i := 1; i < stateSize; i++ {
		prev := s.state[i-1]
		s.state[i] = initMultiplier*(prev^(prev>>30)) + uint32(i)
	}
}

// mixKey folds a seed array into an already loaded state vector.
func (s *Source) mixKey(key []uint32) {
	s.seedState(arraySeedBase)

	i, j := 1, 0
	k := stateSize
	if len(key) > k {
		k = len(key)
	}
	for ; k > 0; k-- {
		prev := s.state[i-1]
		s.state[i] = (s.state[i] ^ ((prev ^ (prev >> 30)) * arrayMultiplierA)) + key[j] + uint32(j)
		i++
		j++
		if i >= stateSize {
			s.state[0] = s.state[stateSize-1]
			i = 1
		}
		if j >= len(key) {
			j = 0
		}
	}
	for k = stateSize - 1; k > 0; k-- {
		prev := s.state[i-1]
		s.state[i] = (s.state[i] ^ ((prev ^ (prev >> 30)) * arrayMultiplierB)) - uint32(i)
		i++
		if i >= stateSize {
			s.state[0] = s.state[stateSize-1]
			i = 1
		}
	}
	// Guarantee a nonzero state vector.
	s.state[0] = upperMask
}

// Uint32 returns the next 32-bit value in the stream. Every result is drawn
// uniformly from the full 2^32 range.
func (s *Source) Uint32() uint32 {
	if s.index >= stateSize {
		s.twist()
	}

	y := s.state[s.index]
	s.index++

	y ^= y >> 11
	y ^= (y << 7) & 0x9d2c5680
	y ^= (y << 15) & 0xefc60000
	y ^= y >> 18

	s.draws++
	return y
}

// twist regenerates the state vector in place.
func (s *Source) twist() {
	for i := 0; i < stateSize; i++ {
		y := (s.state[i] & upperMask) | (s.state[(i+1)%stateSize] & lowerMask)
		next := s.state[(i+shiftSize)%stateSize] ^ (y >> 1)
		if y&1 != 0 {
			next ^= matrixA
		}
		s.state[i] = next
	}
	s.index = 0
}

// CurrentSeed reports the seed most recently applied via NewSource or Seed.
// Recording it alongside generated output is enough to replay the run.
func (s *Source) CurrentSeed() int64 {
	return s.seed
}

// Draws reports how many 32-bit values have been consumed since the last
// seeding. Together with CurrentSeed it pins down the exact position of the
// stream.
func (s *Source) Draws() uint64 {
	return s.draws
}

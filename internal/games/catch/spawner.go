package catch

import (
	"math/rand"
	"time"
)

// SpawnTimer is a recurring trigger driven by simulation time.
// It behaves like an interval timer: Start always discards the pending
// countdown and begins a fresh one, and a single Advance can complete
// several periods.
type SpawnTimer struct {
	period    time.Duration
	remaining time.Duration
	running   bool
}

// Start (re)schedules the timer with the given period, counting from now.
// A non-positive period stops the timer.
func (t *SpawnTimer) Start(period time.Duration) {
	if period <= 0 {
		t.Stop()
		return
	}
	t.period = period
	t.remaining = period
	t.running = true
}

// Stop cancels the timer. A stopped timer never fires.
func (t *SpawnTimer) Stop() {
	t.running = false
	t.remaining = 0
}

// Running reports whether the timer is scheduled.
func (t *SpawnTimer) Running() bool {
	return t.running
}

// Period returns the current period.
func (t *SpawnTimer) Period() time.Duration {
	return t.period
}

// Remaining returns the time until the next fire.
func (t *SpawnTimer) Remaining() time.Duration {
	return t.remaining
}

// Advance moves the timer forward by d and returns how many times it fired.
func (t *SpawnTimer) Advance(d time.Duration) int {
	if !t.running || d <= 0 {
		return 0
	}
	t.remaining -= d
	fired := 0
	for t.remaining <= 0 {
		fired++
		t.remaining += t.period
	}
	return fired
}

// Spawner creates fruit with randomized position, type and speed.
type Spawner struct {
	rng     *rand.Rand
	catalog []FruitType
	fieldW  float64
	size    float64
}

// NewSpawner creates a spawner for a playfield of the given width.
func NewSpawner(seed int64, catalog []FruitType, fieldW, size float64) *Spawner {
	return &Spawner{
		rng:     rand.New(rand.NewSource(seed)),
		catalog: catalog,
		fieldW:  fieldW,
		size:    size,
	}
}

// Reseed resets the random sequence.
func (s *Spawner) Reseed(seed int64) {
	s.rng = rand.New(rand.NewSource(seed))
}

// Spawn creates one fruit just above the visible area.
// x is uniform in [0, fieldW-size], the type uniform over the catalog and
// the speed uniform in [1, 1+maxSpeed).
func (s *Spawner) Spawn(maxSpeed float64) Fruit {
	ft := &s.catalog[s.rng.Intn(len(s.catalog))]
	return Fruit{
		X:     s.rng.Float64() * (s.fieldW - s.size),
		Y:     -s.size,
		W:     s.size,
		H:     s.size,
		Speed: 1 + s.rng.Float64()*maxSpeed,
		Type:  ft,
	}
}

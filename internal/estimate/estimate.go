// Package estimate produces calorie estimates from meal photos.
package estimate

import (
	"math/rand/v2"
	"sync"
	"time"

	"github.com/rsoares/foodlog/internal/journal"
)

// DefaultDelay is the simulated inference latency the caller imposes
// before applying a result.
const DefaultDelay = 1500 * time.Millisecond

// Estimator turns an encoded photo payload into a structured calorie
// estimate. Implementations never fail; a degraded estimate beats no
// estimate for a log that is advisory to begin with.
type Estimator interface {
	Estimate(photo string) journal.EstimationResult
}

// Stub is a placeholder estimator. It never inspects the photo: totals
// are drawn at random within documented ranges. Swap it for a real
// vision backend without touching the rest of the app.
//
// Estimate runs inside timer callbacks, each on its own goroutine, and
// a superseded selection may still be estimating when the next one
// starts; mu keeps the shared source safe under that overlap.
type Stub struct {
	mu sync.Mutex
	r  *rand.Rand
}

// NewStub returns a stub with its own random source.
func NewStub() *Stub {
	return &Stub{r: rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))}
}

// NewStubWithRand returns a stub driven by the given source.
func NewStubWithRand(r *rand.Rand) *Stub {
	return &Stub{r: r}
}

// Estimate returns a total in [100, 600), confidence in [0.75, 0.95),
// and a two-item food breakdown. Constituents split the total roughly
// 60/40 and need not sum to it exactly.
func (s *Stub) Estimate(_ string) journal.EstimationResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	base := 200 + s.r.IntN(300)
	variation := s.r.IntN(200) - 100

	total := base + variation
	if total < 100 {
		total = 100
	}

	return journal.EstimationResult{
		TotalCalories: total,
		Confidence:    0.75 + s.r.Float64()*0.2,
		DetectedFoods: []journal.DetectedFood{
			{Name: "Main dish", Calories: total * 6 / 10, Confidence: 0.8},
			{Name: "Sides", Calories: total * 4 / 10, Confidence: 0.7},
		},
	}
}

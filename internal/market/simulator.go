// Package market is the simulated trading floor: a random-walk price series
// with a drifting trend, and a paper account to buy and sell against it.
// Nothing here touches the persisted snapshot.
package market

import (
	"context"
	"math/rand"
	"sync"
	"time"
)

const (
	seriesLen           = 20
	startingPrice       = 100.0
	startingBalance     = 10000.0
	bootstrapVolatility = 0.05
	stepVolatility      = 0.03
	trendRange          = 0.05
	priceFloor          = 1.0
)

// Point is one sample of the simulated price series.
type Point struct {
	Time  int64   `json:"time"`
	Price float64 `json:"price"`
}

// Quote is a snapshot of the simulator for the API.
type Quote struct {
	Price   float64 `json:"price"`
	Balance float64 `json:"balance"`
	Shares  int     `json:"shares"`
	Equity  float64 `json:"equity"`
	Profit  float64 `json:"profit"`
	Series  []Point `json:"series"`
}

type Simulator struct {
	mu      sync.Mutex
	rng     *rand.Rand
	series  []Point
	price   float64
	balance float64
	shares  int
	trend   float64

	interval time.Duration
	cancel   context.CancelFunc
	done     chan struct{}
}

// New seeds the series with a 20-point bootstrap walk.
func New(seed int64, interval time.Duration) *Simulator {
	s := &Simulator{
		rng:      rand.New(rand.NewSource(seed)),
		balance:  startingBalance,
		interval: interval,
	}
	price := startingPrice
	for i := 0; i < seriesLen; i++ {
		s.series = append(s.series, Point{Time: int64(i), Price: price})
		price = price * (1 + (s.rng.Float64()-0.5)*bootstrapVolatility)
	}
	s.price = price
	return s
}

// Start launches the background tick loop. Calling Start on a running
// simulator is a no-op.
func (s *Simulator) Start(ctx context.Context) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		return
	}
	ctx, s.cancel = context.WithCancel(ctx)
	s.done = make(chan struct{})
	go s.run(ctx)
}

// Stop cancels the tick loop and waits for it to drain. Safe to call twice.
func (s *Simulator) Stop() {
	s.mu.Lock()
	cancel, done := s.cancel, s.done
	s.cancel, s.done = nil, nil
	s.mu.Unlock()
	if cancel == nil {
		return
	}
	cancel()
	<-done
}

func (s *Simulator) run(ctx context.Context) {
	defer close(s.done)
	ticker := time.NewTicker(s.interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			s.Step()
		}
	}
}

// Step advances the walk by one tick: the price drifts by the current trend
// plus noise, and occasionally the trend itself re-rolls.
func (s *Simulator) Step() {
	s.mu.Lock()
	defer s.mu.Unlock()

	change := (s.rng.Float64() - 0.5 + s.trend) * stepVolatility
	next := s.price * (1 + change)
	if next < priceFloor {
		next = priceFloor
	}
	if s.rng.Float64() > 0.9 {
		s.trend = (s.rng.Float64() - 0.5) * trendRange
	}

	s.series = append(s.series[1:], Point{Time: time.Now().UnixMilli(), Price: next})
	s.price = next
}

// Buy purchases one share at the current price. Returns false when the
// balance cannot cover it.
func (s *Simulator) Buy() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.balance < s.price {
		return false
	}
	s.balance -= s.price
	s.shares++
	return true
}

// Sell liquidates one share at the current price. Returns false with no
// position.
func (s *Simulator) Sell() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.shares == 0 {
		return false
	}
	s.balance += s.price
	s.shares--
	return true
}

func (s *Simulator) Quote() Quote {
	s.mu.Lock()
	defer s.mu.Unlock()
	equity := s.balance + float64(s.shares)*s.price
	series := make([]Point, len(s.series))
	copy(series, s.series)
	return Quote{
		Price:   s.price,
		Balance: s.balance,
		Shares:  s.shares,
		Equity:  equity,
		Profit:  equity - startingBalance,
		Series:  series,
	}
}

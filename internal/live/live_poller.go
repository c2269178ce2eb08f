// Package live keeps a current-month payroll view synchronized with the
// Ledger Service by polling at a fixed cadence and republishing the freshest
// consistent snapshot. Polling is pseudo-streaming: a cancellable repeating
// task feeding a single-slot latest-value cell, replacing (never merging) on
// each accepted fetch.
package live

import (
	"context"
	"errors"
	"sync"
	"time"

	"go-payledger/internal/events"
	"go-payledger/internal/salary"

	"go.uber.org/zap"
)

const (
	StateIdle    = "IDLE"
	StatePolling = "POLLING"
)

// FetchFunc pulls the latest live snapshot from the ledger.
type FetchFunc func(ctx context.Context) (salary.LiveTotals, error)

var ErrAlreadyRunning = errors.New("poller already running")

// Poller owns one view session. Starting it begins the cadence; stopping it
// halts the ticker entirely so an inactive view causes no background traffic.
// In-flight responses are never cancelled, only ignored when stale: a result
// is accepted iff its upstream timestamp is newer than the current latest:
// last writer wins by snapshot time, not by response-arrival order.
type Poller struct {
	fetch     FetchFunc
	interval  time.Duration
	publisher EventPublisher
	logger    *zap.Logger

	mu        sync.Mutex
	state     string
	running   bool
	cancel    context.CancelFunc
	latest    *salary.LiveTotals
	subs      map[int]chan salary.LiveTotals
	nextSubID int

	// Only the first failure of a session surfaces; later ones retry silently.
	errSurfaced bool
	firstErr    chan error
}

func NewPoller(fetch FetchFunc, interval time.Duration, publisher EventPublisher, logger *zap.Logger) *Poller {
	if publisher == nil {
		publisher = NewNoopEventPublisher()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Poller{
		fetch:     fetch,
		interval:  interval,
		publisher: publisher,
		logger:    logger,
		state:     StateIdle,
		subs:      make(map[int]chan salary.LiveTotals),
		firstErr:  make(chan error, 1),
	}
}

// Start begins a new view session: an immediate fetch, then one per interval.
func (p *Poller) Start(ctx context.Context) error {
	p.mu.Lock()
	if p.running {
		p.mu.Unlock()
		return ErrAlreadyRunning
	}
	ctx, cancel := context.WithCancel(ctx)
	p.running = true
	p.cancel = cancel
	p.errSurfaced = false
	p.firstErr = make(chan error, 1)
	p.mu.Unlock()

	go p.loop(ctx)
	return nil
}

// Stop ends the session. No new ticks fire; an in-flight response may still
// land but the next Start begins a fresh error-surfacing window.
func (p *Poller) Stop() {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.cancel()
	p.running = false
	p.state = StateIdle
}

func (p *Poller) loop(ctx context.Context) {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	// A slow response may overlap the next scheduled tick; overlap resolves
	// through the timestamp rule, not by serializing requests.
	go p.poll(ctx)

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			go p.poll(ctx)
		}
	}
}

func (p *Poller) poll(ctx context.Context) {
	p.setState(StatePolling)
	defer p.setState(StateIdle)

	snap, err := p.fetch(ctx)
	if err != nil {
		if ctx.Err() != nil {
			return
		}
		p.onFailure(err)
		return
	}
	p.onSuccess(ctx, snap)
}

func (p *Poller) onSuccess(ctx context.Context, snap salary.LiveTotals) {
	p.mu.Lock()
	if p.latest != nil && !snap.Timestamp.After(p.latest.Timestamp) {
		p.mu.Unlock()
		p.logger.Debug("discarding stale snapshot",
			zap.Time("snapshot_at", snap.Timestamp))
		return
	}
	p.latest = &snap

	for _, ch := range p.subs {
		// Single-slot per subscriber: replace the pending value instead of
		// queueing so a slow consumer only ever sees the newest snapshot.
		select {
		case ch <- snap:
		default:
			select {
			case <-ch:
			default:
			}
			ch <- snap
		}
	}
	p.mu.Unlock()

	if err := p.publisher.PublishSnapshotRefreshed(ctx, events.PayrollSnapshotRefreshedEvent{
		EventType:       "payroll.snapshot.refreshed",
		Month:           snap.Month,
		TotalGross:      snap.TotalGross.InexactFloat64(),
		TotalAllowances: snap.TotalAllowances.InexactFloat64(),
		TotalDeductions: snap.TotalDeductions.InexactFloat64(),
		TotalNet:        snap.TotalNet.InexactFloat64(),
		SnapshotAt:      snap.Timestamp,
		OccurredAt:      time.Now().UTC(),
	}); err != nil {
		p.logger.Warn("snapshot event publish failed", zap.Error(err))
	}
}

func (p *Poller) onFailure(err error) {
	p.mu.Lock()
	first := !p.errSurfaced
	p.errSurfaced = true
	p.mu.Unlock()

	if first {
		p.logger.Warn("live payroll poll failed", zap.Error(err))
		select {
		case p.firstErr <- err:
		default:
		}
		return
	}
	p.logger.Debug("live payroll poll failed, retrying silently", zap.Error(err))
}

// Latest returns the freshest accepted snapshot, if any.
func (p *Poller) Latest() (salary.LiveTotals, bool) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.latest == nil {
		return salary.LiveTotals{}, false
	}
	return *p.latest, true
}

// Subscribe registers a latest-value channel. The returned cancel func must be
// called when the subscriber's view goes away.
func (p *Poller) Subscribe() (<-chan salary.LiveTotals, func()) {
	p.mu.Lock()
	defer p.mu.Unlock()

	id := p.nextSubID
	p.nextSubID++
	ch := make(chan salary.LiveTotals, 1)
	if p.latest != nil {
		ch <- *p.latest
	}
	p.subs[id] = ch

	return ch, func() {
		p.mu.Lock()
		defer p.mu.Unlock()
		delete(p.subs, id)
	}
}

// Err exposes the first failure of the current session, if one happened.
func (p *Poller) Err() <-chan error {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.firstErr
}

func (p *Poller) State() string {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.state
}

func (p *Poller) setState(state string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if !p.running {
		return
	}
	p.state = state
}

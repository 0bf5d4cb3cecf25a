package monitor

import (
	"sync"
	"time"

	bbolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// ChatSizer reports the current message count for health output.
type ChatSizer interface {
	Len() int
}

// Monitor periodically probes the Bolt store and aggregates the assistant
// upstream state reported by the reply pipeline.
type Monitor struct {
	db   *bbolt.DB
	chat ChatSizer

	status   Status
	mu       sync.RWMutex
	interval time.Duration
	stopCh   chan struct{}
	logger   *zap.Logger
}

func New(db *bbolt.DB, chat ChatSizer, interval time.Duration, logger *zap.Logger) *Monitor {
	if interval <= 0 {
		interval = 10 * time.Second
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Monitor{
		db:       db,
		chat:     chat,
		interval: interval,
		stopCh:   make(chan struct{}),
		logger:   logger,
		status:   Status{Assistant: UpstreamUnknown},
	}
}

func (m *Monitor) Start() {
	go m.loop()
}

func (m *Monitor) Stop() {
	close(m.stopCh)
}

func (m *Monitor) IsOnline() bool {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status.Storage
}

func (m *Monitor) GetStatus() Status {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return m.status
}

// ReportUpstream records the outcome of an assistant call.
func (m *Monitor) ReportUpstream(ok bool) {
	state := UpstreamOnline
	if !ok {
		state = UpstreamDegraded
	}

	m.mu.Lock()
	m.status.Assistant = state
	m.mu.Unlock()
}

func (m *Monitor) loop() {
	ticker := time.NewTicker(m.interval)
	defer ticker.Stop()

	m.refresh()
	for {
		select {
		case <-ticker.C:
			m.refresh()
		case <-m.stopCh:
			return
		}
	}
}

func (m *Monitor) refresh() {
	storageOK := m.checkStorage()
	messages := 0
	if m.chat != nil {
		messages = m.chat.Len()
	}

	m.mu.Lock()
	m.status.Storage = storageOK
	m.status.ChatMessages = messages
	m.status.LastCheck = time.Now()
	m.mu.Unlock()
}

func (m *Monitor) checkStorage() bool {
	if m.db == nil {
		return false
	}
	err := m.db.View(func(tx *bbolt.Tx) error { return nil })
	if err != nil {
		m.logger.Warn("storage health check failed", zap.Error(err))
		return false
	}
	return true
}

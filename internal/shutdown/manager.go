package shutdown

import (
	"os"
	"os/signal"
	"sync"
	"syscall"
	"time"

	"pose-annotator/internal/logger"
)

const stepTimeout = 5 * time.Second

type step struct {
	name string
	fn   func()
}

// Manager runs registered shutdown steps once, in reverse registration
// order, whether triggered by the window closing or by a signal.
type Manager struct {
	steps  []step
	logger logger.Logger
	mu     sync.Mutex
	done   chan struct{}
}

func NewManager(log logger.Logger) *Manager {
	return &Manager{
		logger: log,
		done:   make(chan struct{}),
	}
}

func (m *Manager) Register(name string, fn func()) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.steps = append(m.steps, step{name: name, fn: fn})
}

// Listen calls onSignal when SIGINT or SIGTERM arrives. onSignal is expected
// to end up calling Shutdown, usually by quitting the GUI.
func (m *Manager) Listen(onSignal func()) {
	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, os.Interrupt, syscall.SIGTERM)

	go func() {
		select {
		case sig := <-sigChan:
			m.logger.Info("ShutdownManager", "shutdown signal received", map[string]interface{}{
				"signal": sig.String(),
			})
			onSignal()
		case <-m.done:
		}
		signal.Stop(sigChan)
	}()
}

func (m *Manager) Shutdown() {
	m.mu.Lock()
	defer m.mu.Unlock()

	select {
	case <-m.done:
		return
	default:
		close(m.done)
	}

	m.logger.Info("ShutdownManager", "shutdown sequence initiated", map[string]interface{}{
		"steps": len(m.steps),
	})

	for i := len(m.steps) - 1; i >= 0; i-- {
		s := m.steps[i]

		finished := make(chan struct{})
		go func() {
			defer close(finished)
			s.fn()
		}()

		select {
		case <-finished:
			m.logger.Debug("ShutdownManager", "step completed", map[string]interface{}{
				"step": s.name,
			})
		case <-time.After(stepTimeout):
			m.logger.Warning("ShutdownManager", "step timeout", map[string]interface{}{
				"step": s.name,
			})
		}
	}

	m.logger.Info("ShutdownManager", "shutdown sequence completed", nil)
}

func (m *Manager) Done() <-chan struct{} {
	return m.done
}

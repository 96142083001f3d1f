package slot

import "sync"

// Memory is a process-local adapter used by tests and ephemeral sessions.
type Memory struct {
	mu        sync.RWMutex
	slots     map[Name][]byte
	failWrite error
}

// NewMemory returns an empty in-memory adapter.
func NewMemory() *Memory {
	return &Memory{slots: make(map[Name][]byte)}
}

// Driver returns the adapter driver identifier.
func (m *Memory) Driver() Driver { return DriverMemory }

// Load returns a copy of the stored payload, or (nil, nil) when absent.
func (m *Memory) Load(name Name) ([]byte, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	raw, ok := m.slots[name]
	if !ok {
		return nil, nil
	}
	cp := make([]byte, len(raw))
	copy(cp, raw)
	return cp, nil
}

// Save stores a copy of payload under name.
func (m *Memory) Save(name Name, payload []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.failWrite != nil {
		return m.failWrite
	}
	cp := make([]byte, len(payload))
	copy(cp, payload)
	m.slots[name] = cp
	return nil
}

// Remove deletes the slot; absence is not an error.
func (m *Memory) Remove(name Name) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.slots, name)
	return nil
}

// Close is a no-op for the memory driver.
func (m *Memory) Close() error { return nil }

// FailWrites makes every subsequent Save return err, simulating a full or
// broken backing store. Pass nil to restore normal behavior.
func (m *Memory) FailWrites(err error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.failWrite = err
}

// SeedRaw installs a raw payload directly, bypassing Save. Tests use it to
// plant corrupt durable data.
func (m *Memory) SeedRaw(name Name, payload []byte) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.slots[name] = payload
}

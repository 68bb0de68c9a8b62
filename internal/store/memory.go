package store

// Memory is an in-memory Store used in tests and as the degraded
// fallback when the database cannot be opened.
type Memory struct {
	data map[string][]byte

	// FailPuts makes every Put return an error, for exercising
	// write-failure paths in tests.
	FailPuts error
}

// NewMemory returns an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, bool, error) {
	v, ok := m.data[key]
	return v, ok, nil
}

func (m *Memory) Put(key string, value []byte) error {
	if m.FailPuts != nil {
		return m.FailPuts
	}
	cp := make([]byte, len(value))
	copy(cp, value)
	m.data[key] = cp
	return nil
}

func (m *Memory) Delete(key string) error {
	delete(m.data, key)
	return nil
}

func (m *Memory) Close() error { return nil }

package store

// Memory is an in-memory Backend for tests. Keys in FailKeys reject writes
// and keys in Corrupt return unparseable content, to exercise the store's
// degraded paths.
type Memory struct {
	Data     map[string][]byte
	FailKeys map[string]error
	Corrupt  map[string]bool
}

func NewMemory() *Memory {
	return &Memory{Data: make(map[string][]byte)}
}

func (m *Memory) Get(key string) ([]byte, error) {
	if m.Corrupt[key] {
		return []byte("{not json"), nil
	}
	raw, ok := m.Data[key]
	if !ok {
		return nil, nil
	}
	return raw, nil
}

func (m *Memory) Put(key string, value []byte) error {
	if err := m.FailKeys[key]; err != nil {
		return err
	}
	m.Data[key] = value
	return nil
}

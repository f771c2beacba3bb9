// Package memorykv implements the in-memory variant of the session key/value
// store, used in tests and for --no-persist runs.
package memorykv

type MemoryKV struct {
	cache map[string]string
}

func New() (*MemoryKV, error) {
	return &MemoryKV{
		cache: map[string]string{},
	}, nil
}

func (s *MemoryKV) Get(key string) (value string, found bool) {
	value, found = s.cache[key]
	return
}

func (s *MemoryKV) Put(key, value string) {
	s.cache[key] = value
}

func (s *MemoryKV) Delete(key string) {
	delete(s.cache, key)
}

func (s *MemoryKV) Flush() error {
	return nil
}

func (s *MemoryKV) Close() error {
	return nil
}

package images

import (
	"context"
	"errors"
	"sync"
)

type memStore struct {
	mu      sync.Mutex
	objects map[string]memObject
	putErr  error
	failOn  int
	puts    int
	deleted []string
}

type memObject struct {
	contentType string
	data        []byte
}

func newMemStore() *memStore {
	return &memStore{objects: map[string]memObject{}}
}

func (m *memStore) Put(ctx context.Context, key, contentType string, data []byte) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.puts++
	if m.putErr != nil && (m.failOn == 0 || m.failOn == m.puts) {
		return m.putErr
	}
	m.objects[key] = memObject{contentType: contentType, data: append([]byte(nil), data...)}
	return nil
}

func (m *memStore) Get(ctx context.Context, key string) (string, []byte, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	o, ok := m.objects[key]
	if !ok {
		return "", nil, errors.New("no such key")
	}
	return o.contentType, o.data, nil
}

func (m *memStore) Delete(ctx context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.objects, key)
	m.deleted = append(m.deleted, key)
	return nil
}

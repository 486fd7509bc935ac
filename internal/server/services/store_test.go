package services

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/dmitrijs2005/showcase/internal/logging"
	"github.com/dmitrijs2005/showcase/internal/server/images"
	"github.com/dmitrijs2005/showcase/internal/server/repositories/repomanager"
)

const (
	pngA = "data:image/png;base64,iVBORw0KGgoAAAA="
	pngB = "data:image/png;base64,iVBORw0KGgoAAAE="
	pngC = "data:image/png;base64,iVBORw0KGgoAAAI="
)

type blobStore struct {
	mu      sync.Mutex
	objects map[string][]byte
	types   map[string]string
	deleted []string
}

func newBlobStore() *blobStore {
	return &blobStore{objects: map[string][]byte{}, types: map[string]string{}}
}

func (b *blobStore) Put(_ context.Context, key, contentType string, data []byte) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.objects[key] = append([]byte(nil), data...)
	b.types[key] = contentType
	return nil
}

func (b *blobStore) Get(_ context.Context, key string) (string, []byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	d, ok := b.objects[key]
	if !ok {
		return "", nil, errors.New("no such key")
	}
	return b.types[key], d, nil
}

func (b *blobStore) Delete(_ context.Context, key string) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	delete(b.objects, key)
	b.deleted = append(b.deleted, key)
	return nil
}

func (b *blobStore) len() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.objects)
}

func newProjectService(t *testing.T, store images.ObjectStore) (*ProjectService, *repomanager.MemoryRepositoryManager) {
	t.Helper()
	m := repomanager.NewMemoryRepositoryManager()
	var codec *images.Codec
	if store != nil {
		codec = images.NewCodec(store)
	}
	return NewProjectService(nil, m, codec, logging.Discard()), m
}

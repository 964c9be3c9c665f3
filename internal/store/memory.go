package store

import (
	"context"
	"sort"
	"sync"
)

// Memory is an in-memory Store used for fixtures and tests.
type Memory struct {
	mu          sync.RWMutex
	collections map[string]map[string]Document
}

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{collections: make(map[string]map[string]Document)}
}

// Put stores a document under the given collection and id, overwriting any
// previous value.
func (m *Memory) Put(collection, id string, doc Document) {
	stored := make(Document, len(doc)+1)
	for key, value := range doc {
		stored[key] = value
	}
	stored["_id"] = id

	m.mu.Lock()
	defer m.mu.Unlock()
	if m.collections[collection] == nil {
		m.collections[collection] = make(map[string]Document)
	}
	m.collections[collection][id] = stored
}

func (m *Memory) FindOne(_ context.Context, collection, id string) (Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	doc, ok := m.collections[collection][id]
	if !ok {
		return nil, nil
	}
	return doc, nil
}

func (m *Memory) FindMany(_ context.Context, collection string, ids []string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		if doc, ok := m.collections[collection][id]; ok {
			docs = append(docs, doc)
		}
	}
	return docs, nil
}

func (m *Memory) FindAll(_ context.Context, collection string) ([]Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	ids := make([]string, 0, len(m.collections[collection]))
	for id := range m.collections[collection] {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	docs := make([]Document, 0, len(ids))
	for _, id := range ids {
		docs = append(docs, m.collections[collection][id])
	}
	return docs, nil
}

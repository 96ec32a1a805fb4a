// Package fake provides in-memory stand-ins for the cosmos store so keepers can be
// tested without a real database.
package fake

import (
	"bytes"
	"io"
	"sort"
	"sync"

	sdkTypes "github.com/cosmos/cosmos-sdk/types"
)

// NewMultiStore returns an in-memory multistore that lazily creates a KVStore per store key
func NewMultiStore() sdkTypes.MultiStore {
	return TestMultiStore{kvstore: make(map[string]sdkTypes.KVStore)}
}

// TestMultiStore implements the sdk.MultiStore interface for testing.
// Only the methods keepers actually touch are implemented.
type TestMultiStore struct {
	kvstore map[string]sdkTypes.KVStore
}

// GetStoreType is not implemented
func (t TestMultiStore) GetStoreType() sdkTypes.StoreType {
	panic("implement me")
}

// CacheWrap is not implemented
func (t TestMultiStore) CacheWrap() sdkTypes.CacheWrap {
	panic("implement me")
}

// CacheWrapWithTrace is not implemented
func (t TestMultiStore) CacheWrapWithTrace(_ io.Writer, _ sdkTypes.TraceContext) sdkTypes.CacheWrap {
	panic("implement me")
}

// CacheMultiStore is not implemented
func (t TestMultiStore) CacheMultiStore() sdkTypes.CacheMultiStore {
	panic("implement me")
}

// CacheMultiStoreWithVersion is not implemented
func (t TestMultiStore) CacheMultiStoreWithVersion(_ int64) (sdkTypes.CacheMultiStore, error) {
	panic("implement me")
}

// GetStore is not implemented
func (t TestMultiStore) GetStore(_ sdkTypes.StoreKey) sdkTypes.Store {
	panic("implement me")
}

// GetKVStore returns the key-value store associated with the given store key
func (t TestMultiStore) GetKVStore(key sdkTypes.StoreKey) sdkTypes.KVStore {
	if store, ok := t.kvstore[key.String()]; ok {
		return store
	}
	store := NewTestKVStore()
	t.kvstore[key.String()] = store
	return store
}

// TracingEnabled is not implemented
func (t TestMultiStore) TracingEnabled() bool {
	panic("implement me")
}

// SetTracer is not implemented
func (t TestMultiStore) SetTracer(_ io.Writer) sdkTypes.MultiStore {
	panic("implement me")
}

// SetTracingContext is not implemented
func (t TestMultiStore) SetTracingContext(_ sdkTypes.TraceContext) sdkTypes.MultiStore {
	panic("implement me")
}

// NewTestKVStore returns an in-memory key-value store
func NewTestKVStore() sdkTypes.KVStore {
	return TestKVStore{mutex: &sync.RWMutex{}, store: make(map[string][]byte)}
}

// TestKVStore implements the sdk.KVStore interface backed by a plain map
type TestKVStore struct {
	mutex *sync.RWMutex
	store map[string][]byte
}

// GetStoreType is not implemented
func (t TestKVStore) GetStoreType() sdkTypes.StoreType {
	panic("implement me")
}

// CacheWrap is not implemented
func (t TestKVStore) CacheWrap() sdkTypes.CacheWrap {
	panic("implement me")
}

// CacheWrapWithTrace is not implemented
func (t TestKVStore) CacheWrapWithTrace(_ io.Writer, _ sdkTypes.TraceContext) sdkTypes.CacheWrap {
	panic("implement me")
}

// Get returns the value stored under the given key, nil if there is none
func (t TestKVStore) Get(key []byte) []byte {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	if val, ok := t.store[string(key)]; ok {
		return val
	}
	return nil
}

// Has returns true if a value is stored under the given key
func (t TestKVStore) Has(key []byte) bool {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	_, ok := t.store[string(key)]
	return ok
}

// Set stores the given value under the given key
func (t TestKVStore) Set(key, value []byte) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	t.store[string(key)] = value
}

// Delete removes the value stored under the given key
func (t TestKVStore) Delete(key []byte) {
	t.mutex.Lock()
	defer t.mutex.Unlock()

	delete(t.store, string(key))
}

// Iterator iterates over the domain [start, end) in ascending key order
func (t TestKVStore) Iterator(start, end []byte) sdkTypes.Iterator {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	return newFakeIterator(start, end, t.store)
}

// ReverseIterator iterates over the domain [start, end) in descending key order
func (t TestKVStore) ReverseIterator(start, end []byte) sdkTypes.Iterator {
	t.mutex.RLock()
	defer t.mutex.RUnlock()

	iter := newFakeIterator(start, end, t.store)

	// the iterator comes back sorted in ascending order, so flip it
	for i, j := 0, len(iter.keys)-1; i < j; i, j = i+1, j-1 {
		iter.keys[i], iter.keys[j] = iter.keys[j], iter.keys[i]
		iter.values[i], iter.values[j] = iter.values[j], iter.values[i]
	}

	iter.start = end
	iter.end = start

	return iter
}

type fakeIterator struct {
	keys       [][]byte
	values     [][]byte
	index      int
	start, end []byte
}

func newFakeIterator(start, end []byte, content map[string][]byte) *fakeIterator {
	keys := make([][]byte, 0)

	// select the keys according to the specified domain, a nil end means no upper bound
	for k := range content {
		b := []byte(k)
		if bytes.Compare(b, start) < 0 {
			continue
		}
		if end != nil && bytes.Compare(b, end) >= 0 {
			continue
		}

		// keys and values are copied so iteration is unaffected by concurrent writes
		key := make([]byte, len(b))
		copy(key, b)
		keys = append(keys, key)
	}

	sort.Slice(keys, func(i, j int) bool { return bytes.Compare(keys[i], keys[j]) < 0 })

	values := make([][]byte, len(keys))
	for i := 0; i < len(keys); i++ {
		value := content[string(keys[i])]
		values[i] = make([]byte, len(value))
		copy(values[i], value)
	}

	return &fakeIterator{
		keys:   keys,
		values: values,
		index:  0,
		start:  start,
		end:    end,
	}
}

// Domain returns the start and end limits of the iterator
func (fi *fakeIterator) Domain() (start []byte, end []byte) {
	return fi.start, fi.end
}

// Valid returns whether the current position is valid. Once invalid, an iterator is forever invalid.
func (fi *fakeIterator) Valid() bool {
	return fi.index < len(fi.keys)
}

// Next moves the iterator to the next key in the domain. Panics if the iterator is invalid.
func (fi *fakeIterator) Next() {
	if !fi.Valid() {
		panic("iterator position out of bounds")
	}
	fi.index++
}

// Key returns the key at the current position. Panics if the iterator is invalid.
func (fi *fakeIterator) Key() (key []byte) {
	if !fi.Valid() {
		panic("iterator position out of bounds")
	}
	return fi.keys[fi.index]
}

// Value returns the value at the current position. Panics if the iterator is invalid.
func (fi *fakeIterator) Value() (value []byte) {
	if !fi.Valid() {
		panic("iterator position out of bounds")
	}
	return fi.values[fi.index]
}

// Error always returns nil, map access cannot fail
func (fi *fakeIterator) Error() error {
	return nil
}

// Close releases the iterator, a no-op for the fake
func (fi *fakeIterator) Close() {}

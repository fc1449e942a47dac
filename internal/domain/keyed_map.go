package domain

import (
	"path/filepath"
	"runtime"
	"strings"
)

// keyedMap stores values under a canonical form of their key.
type keyedMap[V any] struct {
	canon   func(string) string
	entries map[string]V
}

func newKeyedMap[V any](canon func(string) string) *keyedMap[V] {
	return &keyedMap[V]{canon: canon, entries: make(map[string]V)}
}

func (k *keyedMap[V]) Get(key string) (V, bool) {
	v, ok := k.entries[k.canon(key)]
	return v, ok
}

func (k *keyedMap[V]) Set(key string, value V) {
	k.entries[k.canon(key)] = value
}

func (k *keyedMap[V]) Delete(key string) {
	delete(k.entries, k.canon(key))
}

func (k *keyedMap[V]) Clear() {
	k.entries = make(map[string]V)
}

// caseInsensitiveKey canonicalizes URLs.
func caseInsensitiveKey(s string) string {
	return strings.ToLower(s)
}

// pathKey canonicalizes absolute paths using the host file system rules.
func pathKey(s string) string {
	s = filepath.Clean(s)
	if caseInsensitiveFS() {
		return strings.ToLower(s)
	}

	return s
}

func caseInsensitiveFS() bool {
	return runtime.GOOS == "windows" || runtime.GOOS == "darwin"
}

package session

import (
	"os"
	"path/filepath"
	"strings"
	"sync"
)

// DefaultTokenFile is the fixed name the credential is persisted under,
// the file-system analogue of the web client's localStorage key.
const DefaultTokenFile = "token"

// FileTokenStore persists the single credential string in a file under the
// given directory. Reads and writes are whole-value, there is nothing else in
// the file.
type FileTokenStore struct {
	path string
}

// NewFileTokenStore builds a store rooted at dir. The directory is created
// lazily on the first write.
func NewFileTokenStore(dir string) *FileTokenStore {
	return &FileTokenStore{path: filepath.Join(dir, DefaultTokenFile)}
}

// Read returns the persisted token, false when none is stored
func (s *FileTokenStore) Read() (string, bool) {
	data, err := os.ReadFile(s.path)
	if err != nil {
		return "", false
	}

	token := strings.TrimSpace(string(data))
	if token == "" {
		return "", false
	}

	return token, true
}

// Write persists the token, replacing any previous value
func (s *FileTokenStore) Write(token string) error {
	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return err
	}
	return os.WriteFile(s.path, []byte(token), 0o600)
}

// Clear removes the persisted token. Clearing an absent token is not an
// error.
func (s *FileTokenStore) Clear() error {
	err := os.Remove(s.path)
	if err != nil && !os.IsNotExist(err) {
		return err
	}
	return nil
}

// MemoryTokenStore keeps the credential in memory, mainly for tests and
// ephemeral processes
type MemoryTokenStore struct {
	mu    sync.RWMutex
	token string
	set   bool
}

// NewMemoryTokenStore returns an empty in-memory store, optionally seeded
// with a token
func NewMemoryTokenStore(seed ...string) *MemoryTokenStore {
	s := &MemoryTokenStore{}
	if len(seed) > 0 && seed[0] != "" {
		s.token = seed[0]
		s.set = true
	}
	return s
}

// Read returns the held token, false when none is held
func (s *MemoryTokenStore) Read() (string, bool) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.token, s.set
}

// Write replaces the held token
func (s *MemoryTokenStore) Write(token string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = token
	s.set = true
	return nil
}

// Clear drops the held token
func (s *MemoryTokenStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.token = ""
	s.set = false
	return nil
}

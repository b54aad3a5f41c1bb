// Package session persists the signed-in session: the bearer token and the
// profile it was issued for, nothing else. The file store is the console's
// stand-in for the browser's local storage; the web app keeps the session in
// a signed cookie instead.
package session

import (
	"encoding/json"
	"io/ioutil"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/pkg/errors"

	"github.com/techcomputer/portal/core"
)

type FileStore struct {
	mu   sync.Mutex
	path string
}

var _ core.SessionStore = (*FileStore)(nil)

func NewFileStore(path string) *FileStore {
	return &FileStore{path: path}
}

// DefaultPath places the session file under the user config dir.
func DefaultPath(appName string) (string, error) {
	dir, err := os.UserConfigDir()
	if err != nil {
		return "", errors.Wrap(err, "resolving user config dir")
	}
	name := strings.ReplaceAll(strings.ToLower(appName), " ", "-")
	return filepath.Join(dir, name, "session.json"), nil
}

// Load returns the stored session; a missing file is an empty
// (unauthenticated) session, not an error.
func (s *FileStore) Load() (core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	data, err := ioutil.ReadFile(s.path)
	if err != nil {
		if os.IsNotExist(err) {
			return core.Session{}, nil
		}
		return core.Session{}, errors.Wrap(err, "reading session file")
	}
	var sess core.Session
	if err = json.Unmarshal(data, &sess); err != nil {
		// a corrupt session is treated as logged out
		return core.Session{}, nil
	}
	return sess, nil
}

func (s *FileStore) Save(sess core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.MkdirAll(filepath.Dir(s.path), 0o700); err != nil {
		return errors.Wrap(err, "creating session dir")
	}
	data, err := json.MarshalIndent(sess, "", "  ")
	if err != nil {
		return errors.Wrap(err, "encoding session")
	}
	return errors.Wrap(ioutil.WriteFile(s.path, data, 0o600), "writing session file")
}

// Clear removes the session file. Clearing an already-cleared session is a
// no-op; the gateway calls this on every 401.
func (s *FileStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := os.Remove(s.path); err != nil && !os.IsNotExist(err) {
		return errors.Wrap(err, "removing session file")
	}
	return nil
}

// MemStore is an in-memory session store for tests and per-request use.
type MemStore struct {
	mu   sync.Mutex
	sess core.Session
	set  bool
}

var _ core.SessionStore = (*MemStore)(nil)

func NewMemStore(sess ...core.Session) *MemStore {
	st := &MemStore{}
	if len(sess) > 0 {
		st.sess = sess[0]
		st.set = true
	}
	return st
}

func (s *MemStore) Load() (core.Session, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.sess, nil
}

func (s *MemStore) Save(sess core.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess, s.set = sess, true
	return nil
}

func (s *MemStore) Clear() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.sess, s.set = core.Session{}, false
	return nil
}

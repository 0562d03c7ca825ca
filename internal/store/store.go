package store

import (
	"encoding/json"
	"fmt"
	"os"
	"strconv"
	"strings"
	"sync"
	"time"

	"github.com/mmcdole/dex/internal/domain"
	bolt "go.etcd.io/bbolt"
)

// Bucket names
var (
	bucketDetails = []byte("details")
	bucketNames   = []byte("names") // lowercase name -> numeric ID
)

// DetailStore implements domain.DetailCache.
//
// Without a spill directory it is memory only. With one, details spill to a
// bolt file created for this session; Close deletes the file, so nothing
// survives the process.
type DetailStore struct {
	db     *bolt.DB
	dbPath string
	mu     sync.RWMutex // Protects memory cache

	// In-memory cache for hot-path reads (promoted on access)
	cache map[string][]byte
	names map[string]string
}

// NewDetailStore opens a detail store. spillDir == "" selects memory-only mode.
func NewDetailStore(spillDir string) (*DetailStore, error) {
	s := &DetailStore{
		cache: make(map[string][]byte),
		names: make(map[string]string),
	}
	if spillDir == "" {
		return s, nil
	}

	if err := os.MkdirAll(spillDir, 0755); err != nil {
		return nil, err
	}

	f, err := os.CreateTemp(spillDir, "dex-session-*.db")
	if err != nil {
		return nil, fmt.Errorf("failed to create session db: %w", err)
	}
	dbPath := f.Name()
	f.Close()

	db, err := bolt.Open(dbPath, 0600, &bolt.Options{Timeout: 1 * time.Second})
	if err != nil {
		os.Remove(dbPath)
		return nil, fmt.Errorf("failed to open bolt db: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketDetails, bucketNames} {
			if _, err := tx.CreateBucketIfNotExists(bucket); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		db.Close()
		os.Remove(dbPath)
		return nil, err
	}

	s.db = db
	s.dbPath = dbPath
	return s, nil
}

// Close closes the session db and removes its file
func (s *DetailStore) Close() error {
	if s.db == nil {
		return nil
	}
	err := s.db.Close()
	if rmErr := os.Remove(s.dbPath); rmErr != nil && !os.IsNotExist(rmErr) && err == nil {
		err = rmErr
	}
	s.db = nil
	return err
}

// GetDetail looks up a detail by numeric ID or name
func (s *DetailStore) GetDetail(idOrName string) (*domain.EntryDetail, bool) {
	key := strings.ToLower(idOrName)
	if _, err := strconv.Atoi(key); err != nil {
		id, ok := s.resolveName(key)
		if !ok {
			return nil, false
		}
		key = id
	}

	data, ok := s.get(key)
	if !ok {
		return nil, false
	}

	var detail domain.EntryDetail
	if err := json.Unmarshal(data, &detail); err != nil {
		return nil, false
	}
	return &detail, true
}

// SaveDetail stores a detail under its ID and records its name
func (s *DetailStore) SaveDetail(detail *domain.EntryDetail) error {
	data, err := json.Marshal(detail)
	if err != nil {
		return err
	}

	id := strconv.Itoa(detail.ID)
	name := strings.ToLower(detail.Name)

	s.mu.Lock()
	s.cache[id] = data
	s.names[name] = id
	s.mu.Unlock()

	if s.db == nil {
		return nil // Memory-only mode
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		if err := tx.Bucket(bucketDetails).Put([]byte(id), data); err != nil {
			return err
		}
		return tx.Bucket(bucketNames).Put([]byte(name), []byte(id))
	})
}

// InvalidateAll wipes every cached detail
func (s *DetailStore) InvalidateAll() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.names = make(map[string]string)
	s.mu.Unlock()

	if s.db == nil {
		return
	}

	s.db.Update(func(tx *bolt.Tx) error {
		for _, bucket := range [][]byte{bucketDetails, bucketNames} {
			if err := tx.DeleteBucket(bucket); err != nil && err != bolt.ErrBucketNotFound {
				return err
			}
			if _, err := tx.CreateBucket(bucket); err != nil {
				return err
			}
		}
		return nil
	})
}

// get reads a detail blob, checking memory before the session db
func (s *DetailStore) get(id string) ([]byte, bool) {
	s.mu.RLock()
	if data, ok := s.cache[id]; ok {
		s.mu.RUnlock()
		return data, true
	}
	s.mu.RUnlock()

	if s.db == nil {
		return nil, false
	}

	var data []byte
	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketDetails).Get([]byte(id)); v != nil {
			data = make([]byte, len(v))
			copy(data, v)
		}
		return nil
	})
	if data == nil {
		return nil, false
	}

	// Promote to memory cache
	s.mu.Lock()
	s.cache[id] = data
	s.mu.Unlock()

	return data, true
}

func (s *DetailStore) resolveName(name string) (string, bool) {
	s.mu.RLock()
	id, ok := s.names[name]
	s.mu.RUnlock()
	if ok || s.db == nil {
		return id, ok
	}

	s.db.View(func(tx *bolt.Tx) error {
		if v := tx.Bucket(bucketNames).Get([]byte(name)); v != nil {
			id = string(v)
		}
		return nil
	})
	return id, id != ""
}

// dropMemory clears the in-memory layer only, forcing reads through bolt
func (s *DetailStore) dropMemory() {
	s.mu.Lock()
	s.cache = make(map[string][]byte)
	s.names = make(map[string]string)
	s.mu.Unlock()
}

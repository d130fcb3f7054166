// Package store persists structured resumes to an encrypted local directory.
// Each resume is one file sealed with NaCl secretbox; the key is derived from
// a passphrase with scrypt and a per-store salt. There is no server and no
// multi-user story: this is a single-user local vault.
package store

import (
	"crypto/rand"
	"encoding/json"
	"errors"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/nacl/secretbox"
	"golang.org/x/crypto/scrypt"

	"github.com/jonathan/resume-builder/internal/types"
)

const (
	saltFile     = ".salt"
	saltLen      = 16
	nonceLen     = 24
	resumeExt    = ".resume"
	filePerm     = 0o600
	dirPerm      = 0o700
	scryptN      = 1 << 15
	scryptR      = 8
	scryptP      = 1
	scryptKeyLen = 32
)

// Store is an encrypted resume vault rooted at a directory
type Store struct {
	dir string
	key [scryptKeyLen]byte
}

// Entry summarizes one saved resume for listings
type Entry struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Version      int    `json:"version"`
	LastModified string `json:"last_modified"`
}

// Open opens (or initializes) the store at dir with the given passphrase.
// The salt is created on first open; reopening with a different passphrase
// succeeds here but every Load will fail with a DecryptError.
func Open(dir, passphrase string) (*Store, error) {
	if passphrase == "" {
		return nil, &StoreError{Message: "passphrase must not be empty"}
	}
	if err := os.MkdirAll(dir, dirPerm); err != nil {
		return nil, &StoreError{Message: "failed to create store directory", Cause: err}
	}

	salt, err := loadOrCreateSalt(filepath.Join(dir, saltFile))
	if err != nil {
		return nil, err
	}

	derived, err := scrypt.Key([]byte(passphrase), salt, scryptN, scryptR, scryptP, scryptKeyLen)
	if err != nil {
		return nil, &StoreError{Message: "failed to derive key", Cause: err}
	}

	s := &Store{dir: dir}
	copy(s.key[:], derived)
	return s, nil
}

func loadOrCreateSalt(path string) ([]byte, error) {
	salt, err := os.ReadFile(path)
	if err == nil {
		if len(salt) != saltLen {
			return nil, &StoreError{Message: "store salt file is corrupt"}
		}
		return salt, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return nil, &StoreError{Message: "failed to read store salt", Cause: err}
	}

	salt = make([]byte, saltLen)
	if _, err := io.ReadFull(rand.Reader, salt); err != nil {
		return nil, &StoreError{Message: "failed to generate salt", Cause: err}
	}
	if err := os.WriteFile(path, salt, filePerm); err != nil {
		return nil, &StoreError{Message: "failed to write store salt", Cause: err}
	}
	return salt, nil
}

// Save encrypts and writes the resume, assigning an ID on first save and
// bumping Version/LastModified every time. The passed-in resume is updated in
// place so the caller sees the new metadata.
func (s *Store) Save(resume *types.StructuredResume) error {
	if resume.ID == "" {
		resume.ID = uuid.NewString()
	}
	resume.Touch(time.Now())

	plaintext, err := json.Marshal(resume)
	if err != nil {
		return &StoreError{Message: "failed to marshal resume", Cause: err}
	}

	var nonce [nonceLen]byte
	if _, err := io.ReadFull(rand.Reader, nonce[:]); err != nil {
		return &StoreError{Message: "failed to generate nonce", Cause: err}
	}
	sealed := secretbox.Seal(nonce[:], plaintext, &nonce, &s.key)

	if err := os.WriteFile(s.path(resume.ID), sealed, filePerm); err != nil {
		return &StoreError{Message: "failed to write resume file", Cause: err}
	}
	return nil
}

// Load reads and decrypts a saved resume by id
func (s *Store) Load(id string) (*types.StructuredResume, error) {
	sealed, err := os.ReadFile(s.path(id))
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return nil, &NotFoundError{ID: id}
		}
		return nil, &StoreError{Message: "failed to read resume file", Cause: err}
	}
	if len(sealed) < nonceLen {
		return nil, &DecryptError{ID: id}
	}

	var nonce [nonceLen]byte
	copy(nonce[:], sealed[:nonceLen])
	plaintext, ok := secretbox.Open(nil, sealed[nonceLen:], &nonce, &s.key)
	if !ok {
		return nil, &DecryptError{ID: id}
	}

	var resume types.StructuredResume
	if err := json.Unmarshal(plaintext, &resume); err != nil {
		return nil, &StoreError{Message: "failed to unmarshal resume", Cause: err}
	}
	resume.EnsureDefaults()
	return &resume, nil
}

// List returns an entry per saved resume, sorted by the filesystem's
// directory order. Files that fail to decrypt are skipped rather than
// failing the whole listing.
func (s *Store) List() ([]Entry, error) {
	dirEntries, err := os.ReadDir(s.dir)
	if err != nil {
		return nil, &StoreError{Message: "failed to read store directory", Cause: err}
	}

	entries := []Entry{}
	for _, de := range dirEntries {
		if de.IsDir() || !strings.HasSuffix(de.Name(), resumeExt) {
			continue
		}
		id := strings.TrimSuffix(de.Name(), resumeExt)
		resume, err := s.Load(id)
		if err != nil {
			continue
		}
		entries = append(entries, Entry{
			ID:           resume.ID,
			Name:         resume.PersonalInfo.Name,
			Version:      resume.Version,
			LastModified: resume.LastModified,
		})
	}
	return entries, nil
}

// Delete removes a saved resume by id
func (s *Store) Delete(id string) error {
	err := os.Remove(s.path(id))
	if errors.Is(err, fs.ErrNotExist) {
		return &NotFoundError{ID: id}
	}
	if err != nil {
		return &StoreError{Message: "failed to delete resume file", Cause: err}
	}
	return nil
}

func (s *Store) path(id string) string {
	// IDs are uuids we generate, but never trust them as path components.
	return filepath.Join(s.dir, filepath.Base(id)+resumeExt)
}

package store

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/hance08/bankbook/internal/codec"
	"github.com/spf13/afero"
)

// FileStore keeps the snapshot in a single codec-encoded file. Saves write a
// sibling temporary file and rename it over the store, so a crash mid-write
// leaves the previous snapshot intact.
type FileStore struct {
	fs    afero.Fs
	path  string
	codec codec.Codec
}

func NewFileStore(fsys afero.Fs, path string, c codec.Codec) *FileStore {
	return &FileStore{fs: fsys, path: path, codec: c}
}

func (s *FileStore) Path() string {
	return s.path
}

// Exists reports whether the store file has been written.
func (s *FileStore) Exists() (bool, error) {
	return afero.Exists(s.fs, s.path)
}

// ReadDecoded returns the decoded store content without parsing it.
func (s *FileStore) ReadDecoded() (string, error) {
	raw, err := afero.ReadFile(s.fs, s.path)
	if err != nil {
		return "", fmt.Errorf("failed to read store %s: %w", s.path, err)
	}

	text, err := s.codec.Decode(strings.TrimSpace(string(raw)))
	if err != nil {
		return "", fmt.Errorf("failed to decode store %s: %w", s.path, err)
	}

	return text, nil
}

func (s *FileStore) Load() (Snapshot, error) {
	text, err := s.ReadDecoded()
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return Snapshot{}, nil
		}
		return nil, err
	}

	snap, err := UnmarshalSnapshot([]byte(text))
	if err != nil {
		return nil, fmt.Errorf("failed to parse store %s: %w", s.path, err)
	}

	return snap, nil
}

func (s *FileStore) Save(snap Snapshot) error {
	data, err := MarshalSnapshot(snap)
	if err != nil {
		return fmt.Errorf("failed to serialize accounts: %w", err)
	}

	if dir := filepath.Dir(s.path); dir != "." {
		if err := s.fs.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("can not create store directory %s: %w", dir, err)
		}
	}

	tmp := s.path + ".tmp"
	if err := s.writeFile(tmp, []byte(s.codec.Encode(string(data)))); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to write store %s: %w", tmp, err)
	}

	if err := s.fs.Rename(tmp, s.path); err != nil {
		_ = s.fs.Remove(tmp)
		return fmt.Errorf("failed to replace store %s: %w", s.path, err)
	}

	return nil
}

func (s *FileStore) writeFile(name string, data []byte) error {
	f, err := s.fs.OpenFile(name, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return err
	}

	if _, err := f.Write(data); err != nil {
		_ = f.Close()
		return err
	}
	if err := f.Sync(); err != nil {
		_ = f.Close()
		return err
	}

	return f.Close()
}

func (s *FileStore) Close() error {
	return nil
}

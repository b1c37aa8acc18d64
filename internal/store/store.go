// Package store persists the writer-memory document as a single JSON file
// with atomic writes and timestamped backups. Every invocation of the tool is
// a fresh process, so crash safety is re-established on every save: the new
// document is written to a temp file and renamed over the old one, and the
// prior content is snapshotted to the backup directory first.
package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"go.uber.org/zap"

	"github.com/vampirenirmal/writermem/internal/memory"
)

const (
	// DirName is the dot-directory under the project root.
	DirName = ".writer-memory"
	// FileName is the canonical document file inside DirName.
	FileName = "memory.json"
	// BackupDirName holds timestamped snapshots inside DirName.
	BackupDirName = "backups"
	// DefaultRetention is how many backups survive pruning.
	DefaultRetention = 20

	// stampLayout is fixed-width so that filename sort order is
	// chronological order. Colons and dots are mapped to dashes to stay
	// filename-safe on every platform.
	stampLayout = "2006-01-02T15:04:05.000000000Z"
)

type Store struct {
	dir       string
	retention int
	log       *zap.Logger
}

// New creates a store rooted at the given project directory. The document
// lives at <root>/.writer-memory/memory.json. A retention of 0 or less means
// DefaultRetention; a nil logger is replaced with a no-op.
func New(root string, retention int, log *zap.Logger) *Store {
	if retention <= 0 {
		retention = DefaultRetention
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Store{
		dir:       filepath.Join(root, DirName),
		retention: retention,
		log:       log,
	}
}

// Path returns the canonical document path.
func (s *Store) Path() string {
	return filepath.Join(s.dir, FileName)
}

// Load reads the document. A missing file is ErrNotFound; unparsable or
// structurally unusable content is ErrCorrupt with detail attached.
func (s *Store) Load() (*memory.Document, error) {
	data, err := os.ReadFile(s.Path())
	if os.IsNotExist(err) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("reading store: %w", err)
	}

	var doc memory.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrCorrupt, err)
	}
	if doc.Version == "" {
		return nil, fmt.Errorf("%w: missing version field", ErrCorrupt)
	}
	if doc.Characters == nil {
		doc.Characters = make(map[string]*memory.Character)
	}
	return &doc, nil
}

// Save persists the document atomically. The prior on-disk content, if any,
// is backed up first; doc.Project.Updated is refreshed; the new content is
// written to a temp file in the store directory and renamed into place, so a
// reader never observes a partial document and a failed write leaves the old
// file intact.
func (s *Store) Save(doc *memory.Document) error {
	if err := os.MkdirAll(s.dir, 0755); err != nil {
		return fmt.Errorf("creating store directory: %w", err)
	}

	if prev, err := os.ReadFile(s.Path()); err == nil {
		s.Backup(prev)
	}

	doc.Project.Updated = memory.Now()
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return fmt.Errorf("encoding store: %w", err)
	}

	tmp, err := os.CreateTemp(s.dir, "memory-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpName := tmp.Name()
	if _, err := tmp.Write(data); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("writing temp file: %w", err)
	}
	if err := tmp.Sync(); err != nil {
		tmp.Close()
		os.Remove(tmpName)
		return fmt.Errorf("syncing temp file: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("closing temp file: %w", err)
	}
	if err := os.Rename(tmpName, s.Path()); err != nil {
		os.Remove(tmpName)
		return fmt.Errorf("committing store: %w", err)
	}
	return nil
}

// Backup snapshots raw document bytes under a timestamped filename and prunes
// old snapshots. Best-effort: failures are logged and swallowed, a backup
// must never block the primary save. Returns the snapshot path, or "" when
// the snapshot could not be written.
func (s *Store) Backup(raw []byte) string {
	dir := filepath.Join(s.dir, BackupDirName)
	if err := os.MkdirAll(dir, 0755); err != nil {
		s.log.Warn("backup skipped", zap.Error(err))
		return ""
	}

	name := fmt.Sprintf("memory-%s.json", backupStamp(time.Now()))
	path := filepath.Join(dir, name)
	if err := os.WriteFile(path, raw, 0644); err != nil {
		s.log.Warn("backup write failed", zap.Error(err))
		return ""
	}

	s.prune(dir)
	return path
}

// backupStamp renders t in a fixed-width UTC layout with ':' and '.' replaced
// by '-'. Fixed width keeps lexicographic sort equal to chronological sort.
func backupStamp(t time.Time) string {
	stamp := t.UTC().Format(stampLayout)
	stamp = strings.ReplaceAll(stamp, ":", "-")
	return strings.ReplaceAll(stamp, ".", "-")
}

// prune deletes the oldest backups until at most s.retention remain.
// Failures are logged, never returned.
func (s *Store) prune(dir string) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		s.log.Warn("backup prune skipped", zap.Error(err))
		return
	}

	var names []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasPrefix(name, "memory-") && strings.HasSuffix(name, ".json") {
			names = append(names, name)
		}
	}
	if len(names) <= s.retention {
		return
	}

	sort.Strings(names)
	for _, name := range names[:len(names)-s.retention] {
		if err := os.Remove(filepath.Join(dir, name)); err != nil {
			s.log.Warn("backup prune failed", zap.String("file", name), zap.Error(err))
		}
	}
}

// Package backup creates and serves point-in-time copies of the record
// store's sqlite file.
package backup

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"regexp"
	"sort"
	"sync"
	"time"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	gormlogger "gorm.io/gorm/logger"

	"corpsbank/internal/domain/submission"
	"corpsbank/internal/infrastructure/repository"
	apperrors "corpsbank/internal/shared/errors"
	"corpsbank/internal/shared/logger"
)

// snapshotNamePattern is the only shape a snapshot name may take. Lookups are
// additionally restricted to names present in the backup directory listing,
// so a caller-supplied name can never resolve outside it.
var snapshotNamePattern = regexp.MustCompile(`^backup_\d{4}-\d{2}-\d{2}_\d{2}-\d{2}-\d{2}\.db$`)

const snapshotTimeLayout = "2006-01-02_15-04-05"

// Manager produces and opens snapshots of the live database file.
type Manager struct {
	dbPath  string
	dir     string
	writeMu sync.Locker
	logger  logger.Interface
}

// NewManager creates a snapshot manager. writeMu must be the same locker the
// live repository uses for mutations; holding it during the copy guarantees
// the snapshot never captures a half-written file.
func NewManager(dbPath, dir string, writeMu sync.Locker, log logger.Interface) *Manager {
	return &Manager{
		dbPath:  dbPath,
		dir:     dir,
		writeMu: writeMu,
		logger:  log,
	}
}

// CreateSnapshot copies the live database file into the backup directory
// under a sortable timestamp name and returns that name. The live file is
// only ever read.
func (m *Manager) CreateSnapshot() (string, error) {
	if err := os.MkdirAll(m.dir, 0o755); err != nil {
		return "", fmt.Errorf("failed to create backup directory: %w", err)
	}

	name := fmt.Sprintf("backup_%s.db", time.Now().Format(snapshotTimeLayout))
	dstPath := filepath.Join(m.dir, name)

	m.writeMu.Lock()
	defer m.writeMu.Unlock()

	src, err := os.Open(m.dbPath)
	if err != nil {
		m.logger.Errorw("failed to open live database for backup", "path", m.dbPath, "error", err)
		return "", fmt.Errorf("failed to open database file: %w", err)
	}
	defer src.Close()

	dst, err := os.OpenFile(dstPath, os.O_WRONLY|os.O_CREATE|os.O_EXCL, 0o644)
	if err != nil {
		m.logger.Errorw("failed to create backup file", "path", dstPath, "error", err)
		return "", fmt.Errorf("failed to create backup file: %w", err)
	}

	if _, err := io.Copy(dst, src); err != nil {
		dst.Close()
		os.Remove(dstPath)
		m.logger.Errorw("failed to copy database file", "path", dstPath, "error", err)
		return "", fmt.Errorf("failed to copy database file: %w", err)
	}

	if err := dst.Sync(); err != nil {
		dst.Close()
		os.Remove(dstPath)
		return "", fmt.Errorf("failed to sync backup file: %w", err)
	}
	if err := dst.Close(); err != nil {
		return "", fmt.Errorf("failed to close backup file: %w", err)
	}

	m.logger.Infow("database backup created", "name", name)
	return name, nil
}

// ListSnapshots returns all snapshot names, newest first. The timestamp in
// the name is zero-padded, so lexicographic order is creation order.
func (m *Manager) ListSnapshots() ([]string, error) {
	entries, err := os.ReadDir(m.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return []string{}, nil
		}
		return nil, fmt.Errorf("failed to read backup directory: %w", err)
	}

	names := make([]string, 0, len(entries))
	for _, entry := range entries {
		if entry.IsDir() || !snapshotNamePattern.MatchString(entry.Name()) {
			continue
		}
		names = append(names, entry.Name())
	}

	sort.Sort(sort.Reverse(sort.StringSlice(names)))
	return names, nil
}

// snapshotHandle couples a read-only store view with the gorm connection it
// rides on, so the caller can release the connection after the read.
type snapshotHandle struct {
	submission.Reader
	db *gorm.DB
}

func (h *snapshotHandle) Close() error {
	sqlDB, err := h.db.DB()
	if err != nil {
		return fmt.Errorf("failed to get underlying sql.DB: %w", err)
	}
	return sqlDB.Close()
}

// OpenSnapshot opens a snapshot read-only and returns a query handle over it.
// The name is treated as an opaque key: it must match the snapshot pattern
// and be present in the directory listing. The caller must Close the handle
// after the read to release the connection.
func (m *Manager) OpenSnapshot(name string) (submission.ReadCloser, error) {
	if !snapshotNamePattern.MatchString(name) {
		return nil, apperrors.NewNotFoundError("backup not found", name)
	}

	names, err := m.ListSnapshots()
	if err != nil {
		return nil, err
	}
	found := false
	for _, known := range names {
		if known == name {
			found = true
			break
		}
	}
	if !found {
		return nil, apperrors.NewNotFoundError("backup not found", name)
	}

	dsn := fmt.Sprintf("file:%s?mode=ro", filepath.Join(m.dir, name))
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: gormlogger.Default.LogMode(gormlogger.Silent),
	})
	if err != nil {
		m.logger.Errorw("failed to open backup database", "name", name, "error", err)
		return nil, fmt.Errorf("failed to open backup: %w", err)
	}

	return &snapshotHandle{
		Reader: repository.NewSubmissionReader(db, m.logger),
		db:     db,
	}, nil
}

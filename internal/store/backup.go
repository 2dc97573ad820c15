package store

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/hyunjae-lee/chatclean/internal/logger"
)

// BackupPath returns where Backup writes and Restore reads.
func (s *Store) BackupPath() string {
	return filepath.Join(filepath.Dir(s.path), backupDirName, backupFileName)
}

// Backup copies the live guidelines file into the backup directory and
// returns the backup path. Backing up when no live file exists is an error.
func (s *Store) Backup() (string, error) {
	dst := s.BackupPath()
	if s.path == dst {
		return dst, nil
	}
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", fmt.Errorf("creating backup directory: %w", err)
	}
	if err := copyFile(s.path, dst); err != nil {
		return "", fmt.Errorf("backing up guidelines: %w", err)
	}
	logger.Info("guidelines backed up", "path", dst)
	return dst, nil
}

// Restore copies the backup over the live file. It reports false with no
// error when there is no backup to restore from.
func (s *Store) Restore() (bool, error) {
	src := s.BackupPath()
	if _, err := os.Stat(src); err != nil {
		if os.IsNotExist(err) {
			logger.Warn("no guideline backup found", "path", src)
			return false, nil
		}
		return false, fmt.Errorf("checking backup: %w", err)
	}
	if err := copyFile(src, s.path); err != nil {
		return false, fmt.Errorf("restoring guidelines: %w", err)
	}
	logger.Info("guidelines restored from backup", "path", s.path)
	return true, nil
}

func copyFile(src, dst string) error {
	in, err := os.Open(src)
	if err != nil {
		return err
	}
	defer in.Close()

	data, err := io.ReadAll(in)
	if err != nil {
		return err
	}
	return writeAtomic(dst, data)
}

// Package archive stores backup documents off the primary storage path:
// local directories for routine exports, S3/MinIO for off-machine copies,
// memory for tests. Archive entries are immutable; a key is written once.
package archive

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"time"
)

// Driver identifies a concrete archive backend implementation.
type Driver string

const (
	// DriverFilesystem archives into a local directory (default).
	DriverFilesystem Driver = "fs"
	// DriverS3 archives into an S3 / MinIO compatible bucket.
	DriverS3 Driver = "s3"
	// DriverMemory archives into process memory (tests).
	DriverMemory Driver = "memory"
)

// PutOptions specifies optional parameters for Put.
type PutOptions struct {
	ContentType string // MIME type, optional
}

// Info describes a stored archive entry.
type Info struct {
	Key          string    `json:"key"`
	Size         int64     `json:"size_bytes"`
	ContentType  string    `json:"content_type,omitempty"`
	LastModified time.Time `json:"last_modified"`
}

// Store is the archive backend abstraction. Put fails when the key already
// exists: backups are never overwritten in place.
type Store interface {
	Put(ctx context.Context, key string, r io.Reader, opts PutOptions) (Info, error)
	Get(ctx context.Context, key string) (Info, io.ReadCloser, error)
	List(ctx context.Context, prefix string) ([]Info, error)
	Delete(ctx context.Context, key string) (bool, error)
	Driver() Driver
}

// ErrExists is returned by Put when the key is already archived.
var ErrExists = errors.New("archive: key already exists")

// ErrNotFound is returned by Get when the key is absent.
var ErrNotFound = errors.New("archive: key not found")

// Open selects an archive Store implementation using environment variables.
//
//	TINTSHOP_ARCHIVE_DRIVER: fs|s3|memory (default fs)
//	TINTSHOP_ARCHIVE_FS_ROOT: directory root when driver=fs (default ./backups)
//	(S3 specific variables documented in s3.go)
func Open(ctx context.Context) (Store, error) {
	driver := os.Getenv("TINTSHOP_ARCHIVE_DRIVER")
	if driver == "" {
		driver = string(DriverFilesystem)
	}
	switch Driver(driver) {
	case DriverFilesystem:
		return NewFilesystem(os.Getenv("TINTSHOP_ARCHIVE_FS_ROOT"))
	case DriverS3:
		return OpenS3FromEnv(ctx)
	case DriverMemory:
		return NewMemory(), nil
	default:
		return nil, fmt.Errorf("unknown archive driver %s", driver)
	}
}

// sanitizeKey forbids traversal and absolute keys; used by path-addressed
// backends.
func sanitizeKey(key string) (string, error) {
	if strings.TrimSpace(key) == "" {
		return "", fmt.Errorf("empty key")
	}
	if strings.Contains(key, "..") {
		return "", fmt.Errorf("invalid key contains '..'")
	}
	if strings.HasPrefix(key, "/") {
		return "", fmt.Errorf("invalid absolute key")
	}
	return key, nil
}

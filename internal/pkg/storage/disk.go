// Package storage persists uploaded files on local disk.
package storage

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"

	"fastfeet/internal/service/file"
)

// Disk writes uploads under a base directory. Stored names are random so two
// uploads with the same original name never collide.
type Disk struct {
	dir     string
	baseURL string
}

func New(dir, baseURL string) (*Disk, error) {
	err := os.MkdirAll(dir, 0o755)
	if err != nil {
		return nil, fmt.Errorf("create storage dir: %w", err)
	}

	return &Disk{
		dir:     dir,
		baseURL: strings.TrimSuffix(baseURL, "/"),
	}, nil
}

func (d *Disk) Save(_ context.Context, name string, src io.Reader) (file.StoredObject, error) {
	storedName := uuid.NewString() + filepath.Ext(name)
	path := filepath.Join(d.dir, storedName)

	dst, err := os.Create(path)
	if err != nil {
		return file.StoredObject{}, fmt.Errorf("create stored file: %w", err)
	}
	defer dst.Close()

	_, err = io.Copy(dst, src)
	if err != nil {
		os.Remove(path)
		return file.StoredObject{}, fmt.Errorf("write stored file: %w", err)
	}

	return file.StoredObject{
		Path: path,
		URL:  d.baseURL + "/" + storedName,
	}, nil
}

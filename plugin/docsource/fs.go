package docsource

import (
	"context"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/pkg/errors"
)

// FSSource reads transcript documents from a local directory. The filename
// is the external document id and the file mtime is the created time.
// Intended for dev mode and tests.
type FSSource struct {
	dir string
}

func NewFSSource(dir string) *FSSource {
	return &FSSource{dir: dir}
}

func (s *FSSource) List(ctx context.Context, limit int) ([]Document, error) {
	entries, err := os.ReadDir(s.dir)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, errors.Wrapf(err, "failed to read transcript directory %s", s.dir)
	}

	documents := []Document{}
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".txt") {
			continue
		}
		info, err := entry.Info()
		if err != nil {
			return nil, errors.Wrapf(err, "failed to stat %s", entry.Name())
		}
		documents = append(documents, Document{
			ExternalID: entry.Name(),
			Name:       strings.TrimSuffix(entry.Name(), ".txt"),
			CreatedAt:  info.ModTime().UTC(),
		})
	}

	// Newest documents first.
	sort.Slice(documents, func(i, j int) bool {
		return documents[i].CreatedAt.After(documents[j].CreatedAt)
	})
	if limit > 0 && len(documents) > limit {
		documents = documents[:limit]
	}
	return documents, nil
}

func (s *FSSource) FetchText(ctx context.Context, externalID string) (string, error) {
	// The external id is a bare filename, never a path.
	if strings.Contains(externalID, "/") || strings.Contains(externalID, "..") {
		return "", errors.Errorf("invalid document id: %s", externalID)
	}
	buf, err := os.ReadFile(filepath.Join(s.dir, externalID))
	if err != nil {
		return "", errors.Wrapf(err, "failed to read document %s", externalID)
	}
	return string(buf), nil
}

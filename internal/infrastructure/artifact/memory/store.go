package memory

import (
	"context"
	"fmt"
	"sort"
	"sync"

	"billing-agent/internal/application/port/output"
	"billing-agent/internal/domain/entity"
)

var _ output.ArtifactStore = (*Store)(nil)

type artifactKey struct {
	session entity.Session
	name    string
}

// Store keeps every saved version of every artifact in memory, keyed by
// session and name.
type Store struct {
	mu        sync.RWMutex
	artifacts map[artifactKey][]entity.Artifact
}

func NewStore() *Store {
	return &Store{
		artifacts: make(map[artifactKey][]entity.Artifact),
	}
}

func (s *Store) List(ctx context.Context, session entity.Session) ([]entity.ArtifactInfo, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	result := make([]entity.ArtifactInfo, 0)
	for key, versions := range s.artifacts {
		if key.session != session {
			continue
		}
		latest := versions[len(versions)-1]
		result = append(result, entity.ArtifactInfo{
			Name:     latest.Name,
			MimeType: latest.MimeType,
			Version:  latest.Version,
		})
	}

	sort.Slice(result, func(i, j int) bool {
		return result[i].Name < result[j].Name
	})
	return result, nil
}

func (s *Store) Load(ctx context.Context, session entity.Session, name string) (*entity.Artifact, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	versions, ok := s.artifacts[artifactKey{session: session, name: name}]
	if !ok || len(versions) == 0 {
		return nil, fmt.Errorf("load %q: %w", name, output.ErrArtifactNotFound)
	}

	latest := versions[len(versions)-1]
	latest.Data = cloneBytes(latest.Data)
	return &latest, nil
}

// Save appends a new version and returns its number, starting at 1.
func (s *Store) Save(ctx context.Context, session entity.Session, name string, artifact entity.Artifact) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if name == "" {
		return 0, fmt.Errorf("save artifact: empty name")
	}

	key := artifactKey{session: session, name: name}

	s.mu.Lock()
	defer s.mu.Unlock()

	version := len(s.artifacts[key]) + 1
	s.artifacts[key] = append(s.artifacts[key], entity.Artifact{
		Name:     name,
		MimeType: artifact.MimeType,
		Data:     cloneBytes(artifact.Data),
		Version:  version,
	})
	return version, nil
}

func cloneBytes(b []byte) []byte {
	if b == nil {
		return nil
	}
	out := make([]byte, len(b))
	copy(out, b)
	return out
}

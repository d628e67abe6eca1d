package output

import (
	"context"
	"errors"

	"billing-agent/internal/domain/entity"
)

var ErrArtifactNotFound = errors.New("artifact not found")

type ArtifactStore interface {
	List(ctx context.Context, session entity.Session) ([]entity.ArtifactInfo, error)
	// Load returns the newest version of the named artifact or
	// ErrArtifactNotFound.
	Load(ctx context.Context, session entity.Session, name string) (*entity.Artifact, error)
	Save(ctx context.Context, session entity.Session, name string, artifact entity.Artifact) (int, error)
}

package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"

	"billing-agent/internal/application/port/output"
	"billing-agent/internal/domain/entity"

	"github.com/gabriel-vasile/mimetype"
)

// uploadFile stores a local file in the session under its base name. The
// content type is sniffed from the bytes, not taken from the extension.
func uploadFile(ctx context.Context, store output.ArtifactStore, session entity.Session, path string) (entity.ArtifactInfo, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return entity.ArtifactInfo{}, fmt.Errorf("read %s: %w", path, err)
	}

	name := filepath.Base(path)
	mimeType := mimetype.Detect(data).String()

	version, err := store.Save(ctx, session, name, entity.Artifact{
		Name:     name,
		MimeType: mimeType,
		Data:     data,
	})
	if err != nil {
		return entity.ArtifactInfo{}, fmt.Errorf("upload %s: %w", path, err)
	}

	return entity.ArtifactInfo{Name: name, MimeType: mimeType, Version: version}, nil
}

func snapshotVersions(ctx context.Context, store output.ArtifactStore, session entity.Session) (map[string]int, error) {
	infos, err := store.List(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}
	versions := make(map[string]int, len(infos))
	for _, info := range infos {
		versions[info.Name] = info.Version
	}
	return versions, nil
}

// exportNewArtifacts writes the newest version of every artifact created or
// re-saved since the snapshot into dir and returns the written paths.
func exportNewArtifacts(ctx context.Context, store output.ArtifactStore, session entity.Session, before map[string]int, dir string) ([]string, error) {
	infos, err := store.List(ctx, session)
	if err != nil {
		return nil, fmt.Errorf("list artifacts: %w", err)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create output dir: %w", err)
	}

	var written []string
	for _, info := range infos {
		if info.Version <= before[info.Name] {
			continue
		}
		artifact, err := store.Load(ctx, session, info.Name)
		if err != nil {
			return written, fmt.Errorf("load %s: %w", info.Name, err)
		}
		path := filepath.Join(dir, filepath.Base(info.Name))
		if err := os.WriteFile(path, artifact.Data, 0644); err != nil {
			return written, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// Copyright 2026 HSurvey Authors
// SPDX-License-Identifier: AGPL-3.0

package session

import (
	"errors"
	"io/fs"
	"os"
)

// FileArtifact is the on-disk session marker left next to the gateway's
// runtime files.
type FileArtifact struct {
	path string
}

func NewFileArtifact(path string) *FileArtifact {
	return &FileArtifact{path: path}
}

func (a *FileArtifact) Clear() error {
	if err := os.Remove(a.path); err != nil && !errors.Is(err, fs.ErrNotExist) {
		return err
	}
	return nil
}

type NoopArtifact struct{}

func (a *NoopArtifact) Clear() error { return nil }

func NewNoopArtifact() *NoopArtifact {
	return new(NoopArtifact)
}

// Package snapshot persists [schema.Snapshot] state to disk and loads it
// back, acting as the external writer/loader the index core delegates all
// persistence to. Writes are atomic (temp file, then rename) and the encoded
// file map is guarded by a content digest, so a torn or corrupted snapshot is
// detected at load instead of silently feeding the index a broken tree.
package snapshot

import (
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"github.com/packsmith/filemap/internal/schema"
	"github.com/zeebo/blake3"
)

const formatVersion = 1

const snapshotPerms = 0o644

// envelope is the on-disk form of a snapshot. Digest is the hex BLAKE3 sum
// of the canonical JSON encoding of Files.
type envelope struct {
	FormatVersion int                            `json:"formatVersion"`
	RootDir       string                         `json:"rootDir"`
	Digest        string                         `json:"digest"`
	Files         map[string]schema.FileMetadata `json:"files"`
}

// digestFiles computes the integrity digest over the file map. JSON encoding
// of a map is key-sorted, so the digest is stable across processes.
func digestFiles(files map[string]schema.FileMetadata) (string, error) {
	encoded, err := json.Marshal(files)
	if err != nil {
		return "", fmt.Errorf("failed to encode file map: %w", err)
	}

	sum := blake3.Sum256(encoded)

	return hex.EncodeToString(sum[:]), nil
}

// Save writes a [schema.Snapshot] to path atomically; readers never observe
// a partially written snapshot.
func Save(path string, snap schema.Snapshot) error {
	digest, err := digestFiles(snap.Files)
	if err != nil {
		return fmt.Errorf("(snapshot-save) %w", err)
	}

	encoded, err := json.Marshal(envelope{
		FormatVersion: formatVersion,
		RootDir:       snap.RootDir,
		Digest:        digest,
		Files:         snap.Files,
	})
	if err != nil {
		return fmt.Errorf("(snapshot-save) failed to encode: %w", err)
	}

	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return fmt.Errorf("(snapshot-save) failed to establish directory: %w", err)
	}

	tmp, err := os.CreateTemp(dir, filepath.Base(path)+".*")
	if err != nil {
		return fmt.Errorf("(snapshot-save) failed to open temp file: %w", err)
	}

	if _, err := tmp.Write(encoded); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmp.Name()) //nolint:errcheck

		return fmt.Errorf("(snapshot-save) failed to write: %w", err)
	}
	if err := tmp.Chmod(snapshotPerms); err != nil {
		tmp.Close()           //nolint:errcheck
		os.Remove(tmp.Name()) //nolint:errcheck

		return fmt.Errorf("(snapshot-save) failed to chmod: %w", err)
	}
	if err := tmp.Close(); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck

		return fmt.Errorf("(snapshot-save) failed to close: %w", err)
	}

	if err := os.Rename(tmp.Name(), path); err != nil {
		os.Remove(tmp.Name()) //nolint:errcheck

		return fmt.Errorf("(snapshot-save) failed to rename: %w", err)
	}

	return nil
}

// Load reads a [schema.Snapshot] back from path. A missing file yields
// [ErrNoSnapshot], so callers can treat first runs without branching on
// system errors; a digest mismatch yields [ErrSnapshotCorrupt].
func Load(path string) (schema.Snapshot, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return schema.Snapshot{}, fmt.Errorf("(snapshot-load) %w: %s", ErrNoSnapshot, path)
		}

		return schema.Snapshot{}, fmt.Errorf("(snapshot-load) failed to read: %w", err)
	}

	var env envelope
	if err := json.Unmarshal(data, &env); err != nil {
		return schema.Snapshot{}, fmt.Errorf("(snapshot-load) failed to decode: %w", err)
	}

	if env.FormatVersion != formatVersion {
		return schema.Snapshot{}, fmt.Errorf("(snapshot-load) %w: %d", ErrSnapshotVersion, env.FormatVersion)
	}

	digest, err := digestFiles(env.Files)
	if err != nil {
		return schema.Snapshot{}, fmt.Errorf("(snapshot-load) %w", err)
	}
	if digest != env.Digest {
		return schema.Snapshot{}, fmt.Errorf("(snapshot-load) %w: %s (stored) != %s (computed)", ErrSnapshotCorrupt, env.Digest, digest)
	}

	return schema.Snapshot{
		RootDir: env.RootDir,
		Files:   env.Files,
	}, nil
}

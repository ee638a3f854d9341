// Package store persists committed profiles as whole snapshots.
package store

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/Aashish23092/schemelink/dto"
)

// ProfileStore loads and saves whole profile snapshots keyed by profile id.
// Load returns dto.ErrProfileNotFound when nothing is stored under id.
type ProfileStore interface {
	Load(ctx context.Context, id string) (dto.Profile, error)
	Save(ctx context.Context, id string, p dto.Profile) error
	Close() error
}

func encodeProfile(p dto.Profile) ([]byte, error) {
	data, err := json.Marshal(p)
	if err != nil {
		return nil, fmt.Errorf("failed to encode profile: %w", err)
	}
	return data, nil
}

func decodeProfile(data []byte) (dto.Profile, error) {
	var p dto.Profile
	if err := json.Unmarshal(data, &p); err != nil {
		return dto.Profile{}, fmt.Errorf("failed to decode profile: %w", err)
	}
	return p, nil
}

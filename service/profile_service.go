package service

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/Aashish23092/schemelink/catalog"
	"github.com/Aashish23092/schemelink/dto"
	"github.com/Aashish23092/schemelink/store"
	"github.com/Aashish23092/schemelink/utils/eligibility"
)

// ProfileService commits drafts, persists profiles and matches them against
// the scheme catalog.
type ProfileService struct {
	store   store.ProfileStore
	catalog *catalog.Catalog
}

func NewProfileService(profileStore store.ProfileStore, schemes *catalog.Catalog) *ProfileService {
	return &ProfileService{
		store:   profileStore,
		catalog: schemes,
	}
}

// Save validates the draft and stores it as the profile's new snapshot.
func (s *ProfileService) Save(ctx context.Context, id string, draft dto.ProfileDraft) (dto.Profile, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return dto.Profile{}, fmt.Errorf("%w: profile id is required", dto.ErrIncompleteProfile)
	}

	profile, err := draft.Commit()
	if err != nil {
		return dto.Profile{}, err
	}
	if err := s.store.Save(ctx, id, profile); err != nil {
		return dto.Profile{}, err
	}
	log.Printf("Profile %s saved", id)
	return profile, nil
}

// Get loads a stored profile.
func (s *ProfileService) Get(ctx context.Context, id string) (dto.Profile, error) {
	return s.store.Load(ctx, id)
}

// Match returns the catalog schemes the draft is eligible for along with the
// derived tags. The draft does not need to be complete.
func (s *ProfileService) Match(draft dto.ProfileDraft) dto.SchemeListResponse {
	tags := eligibility.DeriveTags(dto.Profile{ProfileDraft: draft})
	schemes := eligibility.Filter(tags, s.catalog.All())
	return dto.SchemeListResponse{
		Schemes: schemes,
		Tags:    tags.Sorted(),
		Count:   len(schemes),
	}
}

// EligibleSchemes matches a stored profile.
func (s *ProfileService) EligibleSchemes(ctx context.Context, id string) (dto.SchemeListResponse, error) {
	profile, err := s.store.Load(ctx, id)
	if err != nil {
		return dto.SchemeListResponse{}, err
	}
	return s.Match(profile.Draft()), nil
}

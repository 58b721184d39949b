package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"tebakangka/internal/models"
	"tebakangka/internal/store"
)

// ContentService manages the back-office content: slides, source websites,
// synthetic-entry markers and the whitelist.
type ContentService struct {
	content store.ContentStore
	tebakan store.TebakanStore
}

// NewContentService creates a ContentService.
func NewContentService(content store.ContentStore, tebakan store.TebakanStore) *ContentService {
	return &ContentService{content: content, tebakan: tebakan}
}

// ListSlides returns the carousel slides ordered by position.
func (s *ContentService) ListSlides(ctx context.Context) ([]models.Slide, error) {
	return s.content.ListSlides(ctx)
}

// CreateSlide adds a slide, appending it after the current last position
// unless one is given.
func (s *ContentService) CreateSlide(ctx context.Context, slide *models.Slide) error {
	if slide.ImageURL == "" {
		return fmt.Errorf("%w: slide image is required", ErrInvalidState)
	}
	if slide.ID == uuid.Nil {
		slide.ID = uuid.New()
	}
	if slide.Position == 0 {
		slides, err := s.content.ListSlides(ctx)
		if err != nil {
			return fmt.Errorf("list slides: %w", err)
		}
		last := 0
		for _, existing := range slides {
			if existing.Position > last {
				last = existing.Position
			}
		}
		slide.Position = last + 1
	}
	now := time.Now()
	slide.CreatedAt = now
	slide.UpdatedAt = now
	return s.content.CreateSlide(ctx, slide)
}

// UpdateSlide rewrites a single slide.
func (s *ContentService) UpdateSlide(ctx context.Context, slide *models.Slide) error {
	return s.content.UpdateSlide(ctx, slide)
}

// ReorderSlides applies a bulk position update.
func (s *ContentService) ReorderSlides(ctx context.Context, slides []models.Slide) error {
	return s.content.ReorderSlides(ctx, slides)
}

// DeleteSlide removes a slide. The CDN copies of its images are cleaned up
// out of band.
func (s *ContentService) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	return s.content.DeleteSlide(ctx, id)
}

// ListWebsites returns the source sites participants can claim identity on.
func (s *ContentService) ListWebsites(ctx context.Context) ([]models.Website, error) {
	return s.content.ListWebsites(ctx)
}

// CreateWebsite registers a source site.
func (s *ContentService) CreateWebsite(ctx context.Context, w *models.Website) error {
	if w.Nama == "" {
		return fmt.Errorf("%w: website name is required", ErrInvalidState)
	}
	if w.ID == uuid.Nil {
		w.ID = uuid.New()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = time.Now()
	}
	return s.content.CreateWebsite(ctx, w)
}

// DeleteWebsite removes a source site.
func (s *ContentService) DeleteWebsite(ctx context.Context, id uuid.UUID) error {
	return s.content.DeleteWebsite(ctx, id)
}

// ListFakeUsers returns the synthetic-entry markers.
func (s *ContentService) ListFakeUsers(ctx context.Context) ([]models.FakeUser, error) {
	return s.tebakan.ListFakeUsers(ctx)
}

// AddFakeUser marks a participant identity as house-seeded.
func (s *ContentService) AddFakeUser(ctx context.Context, f *models.FakeUser) error {
	if f.UseridWebsite == "" || f.WebsiteID == uuid.Nil {
		return fmt.Errorf("%w: userid and website are required", ErrInvalidState)
	}
	if f.CreatedAt.IsZero() {
		f.CreatedAt = time.Now()
	}
	return s.tebakan.AddFakeUser(ctx, f)
}

// RemoveFakeUser clears a synthetic-entry marker.
func (s *ContentService) RemoveFakeUser(ctx context.Context, useridWebsite string, websiteID uuid.UUID) error {
	return s.tebakan.RemoveFakeUser(ctx, useridWebsite, websiteID)
}

// ListContacts returns the support-contact channels shown on the public
// site, oldest first.
func (s *ContentService) ListContacts(ctx context.Context) ([]models.Contact, error) {
	return s.content.ListContacts(ctx)
}

// CreateContact adds a support-contact channel.
func (s *ContentService) CreateContact(ctx context.Context, c *models.Contact) error {
	if c.Name == "" || c.Value == "" {
		return fmt.Errorf("%w: contact name and value are required", ErrInvalidState)
	}
	if c.ID == uuid.Nil {
		c.ID = uuid.New()
	}
	if c.CreatedAt.IsZero() {
		c.CreatedAt = time.Now()
	}
	return s.content.CreateContact(ctx, c)
}

// DeleteContact removes a support-contact channel.
func (s *ContentService) DeleteContact(ctx context.Context, id uuid.UUID) error {
	return s.content.DeleteContact(ctx, id)
}

// ListSocialMedia returns the social profile links, oldest first.
func (s *ContentService) ListSocialMedia(ctx context.Context) ([]models.SocialMedia, error) {
	return s.content.ListSocialMedia(ctx)
}

// CreateSocialMedia adds a social profile link.
func (s *ContentService) CreateSocialMedia(ctx context.Context, sm *models.SocialMedia) error {
	if sm.Name == "" || sm.Link == "" {
		return fmt.Errorf("%w: social media name and link are required", ErrInvalidState)
	}
	if sm.ID == uuid.Nil {
		sm.ID = uuid.New()
	}
	if sm.CreatedAt.IsZero() {
		sm.CreatedAt = time.Now()
	}
	return s.content.CreateSocialMedia(ctx, sm)
}

// DeleteSocialMedia removes a social profile link.
func (s *ContentService) DeleteSocialMedia(ctx context.Context, id uuid.UUID) error {
	return s.content.DeleteSocialMedia(ctx, id)
}

// ListWhitelist returns the whitelist, newest entries first.
func (s *ContentService) ListWhitelist(ctx context.Context) ([]models.WhitelistEntry, error) {
	return s.content.ListWhitelist(ctx)
}

// AddWhitelistEntry adds a whitelist entry.
func (s *ContentService) AddWhitelistEntry(ctx context.Context, e *models.WhitelistEntry) error {
	if e.Value == "" {
		return fmt.Errorf("%w: whitelist value is required", ErrInvalidState)
	}
	if e.ID == uuid.Nil {
		e.ID = uuid.New()
	}
	if e.CreatedAt.IsZero() {
		e.CreatedAt = time.Now()
	}
	return s.content.AddWhitelistEntry(ctx, e)
}

// RemoveWhitelistEntry deletes a whitelist entry.
func (s *ContentService) RemoveWhitelistEntry(ctx context.Context, id uuid.UUID) error {
	return s.content.RemoveWhitelistEntry(ctx, id)
}

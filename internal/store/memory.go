package store

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"tebakangka/internal/models"
)

type fakeKey struct {
	UseridWebsite string
	WebsiteID     uuid.UUID
}

type tebakanKey struct {
	LombaID       uuid.UUID
	WebsiteID     uuid.UUID
	UseridWebsite string
}

// Memory implements Store with mutex-guarded maps. It backs the test suite
// and local development when no Postgres DSN is configured.
type Memory struct {
	mu         sync.RWMutex
	markets    map[uuid.UUID]models.Market
	lomba      map[uuid.UUID]models.Lomba
	tebakan    map[uuid.UUID]models.Tebakan
	tebakanIdx map[tebakanKey]struct{}
	fakes      map[fakeKey]models.FakeUser
	users      map[uuid.UUID]models.User
	admins     map[uuid.UUID]models.Admin
	privileges map[int]models.Privilege
	online     map[string]models.UserOnline
	slides     map[uuid.UUID]models.Slide
	websites   map[uuid.UUID]models.Website
	contacts   map[uuid.UUID]models.Contact
	social     map[uuid.UUID]models.SocialMedia
	whitelist  map[uuid.UUID]models.WhitelistEntry
}

var _ Store = (*Memory)(nil)

// NewMemory creates an empty in-memory store.
func NewMemory() *Memory {
	return &Memory{
		markets:    make(map[uuid.UUID]models.Market),
		lomba:      make(map[uuid.UUID]models.Lomba),
		tebakan:    make(map[uuid.UUID]models.Tebakan),
		tebakanIdx: make(map[tebakanKey]struct{}),
		fakes:      make(map[fakeKey]models.FakeUser),
		users:      make(map[uuid.UUID]models.User),
		admins:     make(map[uuid.UUID]models.Admin),
		privileges: make(map[int]models.Privilege),
		online:     make(map[string]models.UserOnline),
		slides:     make(map[uuid.UUID]models.Slide),
		websites:   make(map[uuid.UUID]models.Website),
		contacts:   make(map[uuid.UUID]models.Contact),
		social:     make(map[uuid.UUID]models.SocialMedia),
		whitelist:  make(map[uuid.UUID]models.WhitelistEntry),
	}
}

func (m *Memory) ListMarkets(ctx context.Context) ([]models.Market, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	markets := make([]models.Market, 0, len(m.markets))
	for _, market := range m.markets {
		markets = append(markets, market)
	}
	sort.Slice(markets, func(i, j int) bool {
		return markets[i].CreatedAt.Before(markets[j].CreatedAt)
	})
	return markets, nil
}

func (m *Memory) GetMarket(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	market, ok := m.markets[id]
	if !ok {
		return nil, fmt.Errorf("get market: %w", ErrNotFound)
	}
	return &market, nil
}

func (m *Memory) GetMarketByName(ctx context.Context, name string) (*models.Market, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, market := range m.markets {
		if market.Name == name {
			return &market, nil
		}
	}
	return nil, fmt.Errorf("get market by name: %w", ErrNotFound)
}

func (m *Memory) CreateMarket(ctx context.Context, market *models.Market) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.markets[market.ID]; ok {
		return fmt.Errorf("create market: %w", ErrDuplicate)
	}
	m.markets[market.ID] = *market
	return nil
}

func (m *Memory) UpdateMarket(ctx context.Context, market *models.Market) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.markets[market.ID]; !ok {
		return fmt.Errorf("update market: %w", ErrNotFound)
	}
	market.UpdatedAt = time.Now()
	m.markets[market.ID] = *market
	return nil
}

func (m *Memory) DeleteMarket(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.markets[id]; !ok {
		return fmt.Errorf("delete market: %w", ErrNotFound)
	}
	delete(m.markets, id)
	return nil
}

func (m *Memory) GetLomba(ctx context.Context, id uuid.UUID) (*models.Lomba, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	l, ok := m.lomba[id]
	if !ok {
		return nil, fmt.Errorf("get lomba: %w", ErrNotFound)
	}
	if market, ok := m.markets[l.MarketID]; ok {
		l.Market = &market
	}
	return &l, nil
}

func (m *Memory) ListLomba(ctx context.Context, marketID uuid.UUID, tanggal string) ([]models.Lomba, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var lomba []models.Lomba
	for _, l := range m.lomba {
		if l.MarketID != marketID || l.Tanggal != tanggal {
			continue
		}
		if market, ok := m.markets[l.MarketID]; ok {
			l.Market = &market
		}
		lomba = append(lomba, l)
	}
	sort.Slice(lomba, func(i, j int) bool {
		return strings.Compare(lomba[i].GuessType, lomba[j].GuessType) < 0
	})
	return lomba, nil
}

func (m *Memory) CreateLomba(ctx context.Context, l *models.Lomba) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lomba[l.ID]; ok {
		return fmt.Errorf("create lomba: %w", ErrDuplicate)
	}
	stored := *l
	stored.Market = nil
	m.lomba[l.ID] = stored
	return nil
}

func (m *Memory) UpdateLomba(ctx context.Context, l *models.Lomba) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.lomba[l.ID]; !ok {
		return fmt.Errorf("update lomba: %w", ErrNotFound)
	}
	l.UpdatedAt = time.Now()
	stored := *l
	stored.Market = nil
	m.lomba[l.ID] = stored
	return nil
}

func (m *Memory) ListTebakan(ctx context.Context, lombaID uuid.UUID) ([]models.Tebakan, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var entries []models.Tebakan
	for _, t := range m.tebakan {
		if t.LombaID != lombaID {
			continue
		}
		if website, ok := m.websites[t.WebsiteID]; ok {
			t.Website = &website
		}
		entries = append(entries, t)
	}
	return entries, nil
}

func (m *Memory) CreateTebakan(ctx context.Context, t *models.Tebakan) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := tebakanKey{LombaID: t.LombaID, WebsiteID: t.WebsiteID, UseridWebsite: t.UseridWebsite}
	if _, ok := m.tebakanIdx[key]; ok {
		return fmt.Errorf("create tebakan: %w", ErrDuplicate)
	}
	stored := *t
	stored.Website = nil
	m.tebakan[t.ID] = stored
	m.tebakanIdx[key] = struct{}{}
	return nil
}

func (m *Memory) ListFakeUsers(ctx context.Context) ([]models.FakeUser, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	fakes := make([]models.FakeUser, 0, len(m.fakes))
	for _, f := range m.fakes {
		fakes = append(fakes, f)
	}
	return fakes, nil
}

func (m *Memory) AddFakeUser(ctx context.Context, f *models.FakeUser) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := fakeKey{UseridWebsite: f.UseridWebsite, WebsiteID: f.WebsiteID}
	if _, ok := m.fakes[key]; ok {
		return fmt.Errorf("add fake user: %w", ErrDuplicate)
	}
	m.fakes[key] = *f
	return nil
}

func (m *Memory) RemoveFakeUser(ctx context.Context, useridWebsite string, websiteID uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	key := fakeKey{UseridWebsite: useridWebsite, WebsiteID: websiteID}
	if _, ok := m.fakes[key]; !ok {
		return fmt.Errorf("remove fake user: %w", ErrNotFound)
	}
	delete(m.fakes, key)
	return nil
}

func (m *Memory) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("get user: %w", ErrNotFound)
	}
	return &u, nil
}

func (m *Memory) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		if u.Username == identifier || u.Email == identifier {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user by identifier: %w", ErrNotFound)
}

func (m *Memory) GetUserByField(ctx context.Context, field, value string) (*models.User, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, u := range m.users {
		var match bool
		switch field {
		case "username":
			match = u.Username == value
		case "email":
			match = u.Email == value
		case "phone":
			match = u.Phone == value
		default:
			return nil, fmt.Errorf("get user by field: unknown field %q", field)
		}
		if match {
			return &u, nil
		}
	}
	return nil, fmt.Errorf("get user by %s: %w", field, ErrNotFound)
}

func (m *Memory) CreateUser(ctx context.Context, u *models.User) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, existing := range m.users {
		if existing.Username == u.Username || existing.Email == u.Email {
			return fmt.Errorf("create user: %w", ErrDuplicate)
		}
	}
	m.users[u.ID] = *u
	return nil
}

func (m *Memory) UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	u, ok := m.users[id]
	if !ok {
		return nil, fmt.Errorf("update user status: %w", ErrNotFound)
	}
	u.Status = status
	u.UpdatedAt = time.Now()
	m.users[id] = u
	return &u, nil
}

func (m *Memory) UpsertUserOnline(ctx context.Context, username string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.online[username] = models.UserOnline{Username: username, UpdatedAt: time.Now()}
	return nil
}

func (m *Memory) GetAdminByIdentifier(ctx context.Context, identifier string) (*models.Admin, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	for _, a := range m.admins {
		if a.Username == identifier || a.Email == identifier {
			return &a, nil
		}
	}
	return nil, fmt.Errorf("get admin: %w", ErrNotFound)
}

// PutAdmin seeds a staff account. Admin accounts are provisioned out of
// band in production, so only the lookup is part of the Store interface.
func (m *Memory) PutAdmin(a models.Admin) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.admins[a.ID] = a
}

func (m *Memory) GetPrivilege(ctx context.Context, level int) (*models.Privilege, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	priv, ok := m.privileges[level]
	if !ok {
		return nil, fmt.Errorf("get privilege: %w", ErrNotFound)
	}
	return &priv, nil
}

// PutPrivilege seeds a privilege level, matching PutAdmin.
func (m *Memory) PutPrivilege(p models.Privilege) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.privileges[p.Level] = p
}

func (m *Memory) ListSlides(ctx context.Context) ([]models.Slide, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	slides := make([]models.Slide, 0, len(m.slides))
	for _, s := range m.slides {
		slides = append(slides, s)
	}
	sort.Slice(slides, func(i, j int) bool { return slides[i].Position < slides[j].Position })
	return slides, nil
}

func (m *Memory) CreateSlide(ctx context.Context, s *models.Slide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slides[s.ID]; ok {
		return fmt.Errorf("create slide: %w", ErrDuplicate)
	}
	m.slides[s.ID] = *s
	return nil
}

func (m *Memory) UpdateSlide(ctx context.Context, s *models.Slide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slides[s.ID]; !ok {
		return fmt.Errorf("update slide: %w", ErrNotFound)
	}
	s.UpdatedAt = time.Now()
	m.slides[s.ID] = *s
	return nil
}

func (m *Memory) ReorderSlides(ctx context.Context, slides []models.Slide) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, s := range slides {
		existing, ok := m.slides[s.ID]
		if !ok {
			s.UpdatedAt = time.Now()
			m.slides[s.ID] = s
			continue
		}
		existing.Position = s.Position
		existing.UpdatedAt = time.Now()
		m.slides[s.ID] = existing
	}
	return nil
}

func (m *Memory) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.slides[id]; !ok {
		return fmt.Errorf("delete slide: %w", ErrNotFound)
	}
	delete(m.slides, id)
	return nil
}

func (m *Memory) ListWebsites(ctx context.Context) ([]models.Website, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	websites := make([]models.Website, 0, len(m.websites))
	for _, w := range m.websites {
		websites = append(websites, w)
	}
	sort.Slice(websites, func(i, j int) bool { return websites[i].Nama < websites[j].Nama })
	return websites, nil
}

func (m *Memory) CreateWebsite(ctx context.Context, w *models.Website) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.websites[w.ID]; ok {
		return fmt.Errorf("create website: %w", ErrDuplicate)
	}
	m.websites[w.ID] = *w
	return nil
}

func (m *Memory) DeleteWebsite(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.websites[id]; !ok {
		return fmt.Errorf("delete website: %w", ErrNotFound)
	}
	delete(m.websites, id)
	return nil
}

func (m *Memory) ListContacts(ctx context.Context) ([]models.Contact, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	contacts := make([]models.Contact, 0, len(m.contacts))
	for _, c := range m.contacts {
		contacts = append(contacts, c)
	}
	sort.Slice(contacts, func(i, j int) bool {
		return contacts[i].CreatedAt.Before(contacts[j].CreatedAt)
	})
	return contacts, nil
}

func (m *Memory) CreateContact(ctx context.Context, c *models.Contact) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contacts[c.ID]; ok {
		return fmt.Errorf("create contact: %w", ErrDuplicate)
	}
	m.contacts[c.ID] = *c
	return nil
}

func (m *Memory) DeleteContact(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.contacts[id]; !ok {
		return fmt.Errorf("delete contact: %w", ErrNotFound)
	}
	delete(m.contacts, id)
	return nil
}

func (m *Memory) ListSocialMedia(ctx context.Context) ([]models.SocialMedia, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	social := make([]models.SocialMedia, 0, len(m.social))
	for _, s := range m.social {
		social = append(social, s)
	}
	sort.Slice(social, func(i, j int) bool {
		return social[i].CreatedAt.Before(social[j].CreatedAt)
	})
	return social, nil
}

func (m *Memory) CreateSocialMedia(ctx context.Context, s *models.SocialMedia) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.social[s.ID]; ok {
		return fmt.Errorf("create social media: %w", ErrDuplicate)
	}
	m.social[s.ID] = *s
	return nil
}

func (m *Memory) DeleteSocialMedia(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.social[id]; !ok {
		return fmt.Errorf("delete social media: %w", ErrNotFound)
	}
	delete(m.social, id)
	return nil
}

func (m *Memory) ListWhitelist(ctx context.Context) ([]models.WhitelistEntry, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	entries := make([]models.WhitelistEntry, 0, len(m.whitelist))
	for _, e := range m.whitelist {
		entries = append(entries, e)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].CreatedAt.After(entries[j].CreatedAt) })
	return entries, nil
}

func (m *Memory) AddWhitelistEntry(ctx context.Context, e *models.WhitelistEntry) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.whitelist[e.ID]; ok {
		return fmt.Errorf("add whitelist entry: %w", ErrDuplicate)
	}
	m.whitelist[e.ID] = *e
	return nil
}

func (m *Memory) RemoveWhitelistEntry(ctx context.Context, id uuid.UUID) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if _, ok := m.whitelist[id]; !ok {
		return fmt.Errorf("remove whitelist entry: %w", ErrNotFound)
	}
	delete(m.whitelist, id)
	return nil
}

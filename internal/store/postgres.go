package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"

	"tebakangka/internal/models"
)

// Postgres implements Store on top of bun.
type Postgres struct {
	db bun.IDB
}

var _ Store = (*Postgres)(nil)

// Connect opens a bun database handle for the given Postgres DSN.
func Connect(dsn string) *bun.DB {
	sqldb := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))
	return bun.NewDB(sqldb, pgdialect.New())
}

// NewPostgres creates the Postgres-backed store.
func NewPostgres(db bun.IDB) *Postgres {
	return &Postgres{db: db}
}

// mapErr converts driver errors into the store's sentinel errors.
func mapErr(op string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	var pgErr pgdriver.Error
	if errors.As(err, &pgErr) && pgErr.IntegrityViolation() {
		return fmt.Errorf("%s: %w", op, ErrDuplicate)
	}
	return fmt.Errorf("%s: %w", op, err)
}

func (p *Postgres) ListMarkets(ctx context.Context) ([]models.Market, error) {
	var markets []models.Market
	err := p.db.NewSelect().
		Model(&markets).
		Order("created_at ASC").
		Scan(ctx)
	if err != nil {
		return nil, mapErr("list markets", err)
	}
	return markets, nil
}

func (p *Postgres) GetMarket(ctx context.Context, id uuid.UUID) (*models.Market, error) {
	m := new(models.Market)
	err := p.db.NewSelect().Model(m).Where("m.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, mapErr("get market", err)
	}
	return m, nil
}

func (p *Postgres) GetMarketByName(ctx context.Context, name string) (*models.Market, error) {
	m := new(models.Market)
	err := p.db.NewSelect().Model(m).Where("m.name = ?", name).Scan(ctx)
	if err != nil {
		return nil, mapErr("get market by name", err)
	}
	return m, nil
}

func (p *Postgres) CreateMarket(ctx context.Context, m *models.Market) error {
	if _, err := p.db.NewInsert().Model(m).Exec(ctx); err != nil {
		return mapErr("create market", err)
	}
	return nil
}

func (p *Postgres) UpdateMarket(ctx context.Context, m *models.Market) error {
	m.UpdatedAt = time.Now()
	res, err := p.db.NewUpdate().Model(m).WherePK().Exec(ctx)
	if err != nil {
		return mapErr("update market", err)
	}
	return requireRows("update market", res)
}

func (p *Postgres) DeleteMarket(ctx context.Context, id uuid.UUID) error {
	res, err := p.db.NewDelete().Model((*models.Market)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return mapErr("delete market", err)
	}
	return requireRows("delete market", res)
}

func (p *Postgres) GetLomba(ctx context.Context, id uuid.UUID) (*models.Lomba, error) {
	l := new(models.Lomba)
	err := p.db.NewSelect().Model(l).Relation("Market").Where("l.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, mapErr("get lomba", err)
	}
	return l, nil
}

func (p *Postgres) ListLomba(ctx context.Context, marketID uuid.UUID, tanggal string) ([]models.Lomba, error) {
	var lomba []models.Lomba
	err := p.db.NewSelect().
		Model(&lomba).
		Relation("Market").
		Where("l.market_id = ?", marketID).
		Where("l.tanggal = ?", tanggal).
		Order("guess_type ASC").
		Scan(ctx)
	if err != nil {
		return nil, mapErr("list lomba", err)
	}
	return lomba, nil
}

func (p *Postgres) CreateLomba(ctx context.Context, l *models.Lomba) error {
	if _, err := p.db.NewInsert().Model(l).Exec(ctx); err != nil {
		return mapErr("create lomba", err)
	}
	return nil
}

func (p *Postgres) UpdateLomba(ctx context.Context, l *models.Lomba) error {
	l.UpdatedAt = time.Now()
	res, err := p.db.NewUpdate().Model(l).WherePK().Exec(ctx)
	if err != nil {
		return mapErr("update lomba", err)
	}
	return requireRows("update lomba", res)
}

func (p *Postgres) ListTebakan(ctx context.Context, lombaID uuid.UUID) ([]models.Tebakan, error) {
	var tebakan []models.Tebakan
	err := p.db.NewSelect().
		Model(&tebakan).
		Relation("Website").
		Where("t.lomba_id = ?", lombaID).
		Scan(ctx)
	if err != nil {
		return nil, mapErr("list tebakan", err)
	}
	return tebakan, nil
}

func (p *Postgres) CreateTebakan(ctx context.Context, t *models.Tebakan) error {
	if _, err := p.db.NewInsert().Model(t).Exec(ctx); err != nil {
		return mapErr("create tebakan", err)
	}
	return nil
}

func (p *Postgres) ListFakeUsers(ctx context.Context) ([]models.FakeUser, error) {
	var fakes []models.FakeUser
	if err := p.db.NewSelect().Model(&fakes).Scan(ctx); err != nil {
		return nil, mapErr("list fake users", err)
	}
	return fakes, nil
}

func (p *Postgres) AddFakeUser(ctx context.Context, f *models.FakeUser) error {
	if _, err := p.db.NewInsert().Model(f).Exec(ctx); err != nil {
		return mapErr("add fake user", err)
	}
	return nil
}

func (p *Postgres) RemoveFakeUser(ctx context.Context, useridWebsite string, websiteID uuid.UUID) error {
	res, err := p.db.NewDelete().
		Model((*models.FakeUser)(nil)).
		Where("userid_website = ?", useridWebsite).
		Where("website_id = ?", websiteID).
		Exec(ctx)
	if err != nil {
		return mapErr("remove fake user", err)
	}
	return requireRows("remove fake user", res)
}

func (p *Postgres) GetUser(ctx context.Context, id uuid.UUID) (*models.User, error) {
	u := new(models.User)
	err := p.db.NewSelect().Model(u).Where("u.id = ?", id).Scan(ctx)
	if err != nil {
		return nil, mapErr("get user", err)
	}
	return u, nil
}

func (p *Postgres) GetUserByIdentifier(ctx context.Context, identifier string) (*models.User, error) {
	u := new(models.User)
	err := p.db.NewSelect().
		Model(u).
		Where("u.username = ?", identifier).
		WhereOr("u.email = ?", identifier).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, mapErr("get user by identifier", err)
	}
	return u, nil
}

func (p *Postgres) GetUserByField(ctx context.Context, field, value string) (*models.User, error) {
	var column string
	switch field {
	case "username":
		column = "username"
	case "email":
		column = "email"
	case "phone":
		column = "phone"
	default:
		return nil, fmt.Errorf("get user by field: unknown field %q", field)
	}
	u := new(models.User)
	err := p.db.NewSelect().Model(u).Where("? = ?", bun.Ident(column), value).Scan(ctx)
	if err != nil {
		return nil, mapErr("get user by "+column, err)
	}
	return u, nil
}

func (p *Postgres) CreateUser(ctx context.Context, u *models.User) error {
	if _, err := p.db.NewInsert().Model(u).Exec(ctx); err != nil {
		return mapErr("create user", err)
	}
	return nil
}

func (p *Postgres) UpdateUserStatus(ctx context.Context, id uuid.UUID, status string) (*models.User, error) {
	u := new(models.User)
	err := p.db.NewUpdate().
		Model(u).
		Set("status = ?", status).
		Set("updated_at = ?", time.Now()).
		Where("id = ?", id).
		Returning("*").
		Scan(ctx)
	if err != nil {
		return nil, mapErr("update user status", err)
	}
	return u, nil
}

func (p *Postgres) UpsertUserOnline(ctx context.Context, username string) error {
	online := &models.UserOnline{Username: username, UpdatedAt: time.Now()}
	_, err := p.db.NewInsert().
		Model(online).
		On("CONFLICT (username) DO UPDATE").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return mapErr("upsert user online", err)
	}
	return nil
}

func (p *Postgres) GetAdminByIdentifier(ctx context.Context, identifier string) (*models.Admin, error) {
	a := new(models.Admin)
	err := p.db.NewSelect().
		Model(a).
		Where("a.username = ?", identifier).
		WhereOr("a.email = ?", identifier).
		Limit(1).
		Scan(ctx)
	if err != nil {
		return nil, mapErr("get admin", err)
	}
	return a, nil
}

func (p *Postgres) GetPrivilege(ctx context.Context, level int) (*models.Privilege, error) {
	priv := new(models.Privilege)
	err := p.db.NewSelect().Model(priv).Where("p.level = ?", level).Scan(ctx)
	if err != nil {
		return nil, mapErr("get privilege", err)
	}
	return priv, nil
}

func (p *Postgres) ListSlides(ctx context.Context) ([]models.Slide, error) {
	var slides []models.Slide
	err := p.db.NewSelect().Model(&slides).Order("position ASC").Scan(ctx)
	if err != nil {
		return nil, mapErr("list slides", err)
	}
	return slides, nil
}

func (p *Postgres) CreateSlide(ctx context.Context, s *models.Slide) error {
	if _, err := p.db.NewInsert().Model(s).Exec(ctx); err != nil {
		return mapErr("create slide", err)
	}
	return nil
}

func (p *Postgres) UpdateSlide(ctx context.Context, s *models.Slide) error {
	s.UpdatedAt = time.Now()
	res, err := p.db.NewUpdate().Model(s).WherePK().Exec(ctx)
	if err != nil {
		return mapErr("update slide", err)
	}
	return requireRows("update slide", res)
}

func (p *Postgres) ReorderSlides(ctx context.Context, slides []models.Slide) error {
	if len(slides) == 0 {
		return nil
	}
	now := time.Now()
	for i := range slides {
		slides[i].UpdatedAt = now
	}
	_, err := p.db.NewInsert().
		Model(&slides).
		On("CONFLICT (id) DO UPDATE").
		Set("position = EXCLUDED.position").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return mapErr("reorder slides", err)
	}
	return nil
}

func (p *Postgres) DeleteSlide(ctx context.Context, id uuid.UUID) error {
	res, err := p.db.NewDelete().Model((*models.Slide)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return mapErr("delete slide", err)
	}
	return requireRows("delete slide", res)
}

func (p *Postgres) ListWebsites(ctx context.Context) ([]models.Website, error) {
	var websites []models.Website
	if err := p.db.NewSelect().Model(&websites).Order("nama ASC").Scan(ctx); err != nil {
		return nil, mapErr("list websites", err)
	}
	return websites, nil
}

func (p *Postgres) CreateWebsite(ctx context.Context, w *models.Website) error {
	if _, err := p.db.NewInsert().Model(w).Exec(ctx); err != nil {
		return mapErr("create website", err)
	}
	return nil
}

func (p *Postgres) DeleteWebsite(ctx context.Context, id uuid.UUID) error {
	res, err := p.db.NewDelete().Model((*models.Website)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return mapErr("delete website", err)
	}
	return requireRows("delete website", res)
}

func (p *Postgres) ListContacts(ctx context.Context) ([]models.Contact, error) {
	var contacts []models.Contact
	err := p.db.NewSelect().Model(&contacts).Order("created_at ASC").Scan(ctx)
	if err != nil {
		return nil, mapErr("list contacts", err)
	}
	return contacts, nil
}

func (p *Postgres) CreateContact(ctx context.Context, c *models.Contact) error {
	if _, err := p.db.NewInsert().Model(c).Exec(ctx); err != nil {
		return mapErr("create contact", err)
	}
	return nil
}

func (p *Postgres) DeleteContact(ctx context.Context, id uuid.UUID) error {
	res, err := p.db.NewDelete().Model((*models.Contact)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return mapErr("delete contact", err)
	}
	return requireRows("delete contact", res)
}

func (p *Postgres) ListSocialMedia(ctx context.Context) ([]models.SocialMedia, error) {
	var social []models.SocialMedia
	err := p.db.NewSelect().Model(&social).Order("created_at ASC").Scan(ctx)
	if err != nil {
		return nil, mapErr("list social media", err)
	}
	return social, nil
}

func (p *Postgres) CreateSocialMedia(ctx context.Context, s *models.SocialMedia) error {
	if _, err := p.db.NewInsert().Model(s).Exec(ctx); err != nil {
		return mapErr("create social media", err)
	}
	return nil
}

func (p *Postgres) DeleteSocialMedia(ctx context.Context, id uuid.UUID) error {
	res, err := p.db.NewDelete().Model((*models.SocialMedia)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return mapErr("delete social media", err)
	}
	return requireRows("delete social media", res)
}

func (p *Postgres) ListWhitelist(ctx context.Context) ([]models.WhitelistEntry, error) {
	var entries []models.WhitelistEntry
	err := p.db.NewSelect().Model(&entries).Order("created_at DESC").Scan(ctx)
	if err != nil {
		return nil, mapErr("list whitelist", err)
	}
	return entries, nil
}

func (p *Postgres) AddWhitelistEntry(ctx context.Context, e *models.WhitelistEntry) error {
	if _, err := p.db.NewInsert().Model(e).Exec(ctx); err != nil {
		return mapErr("add whitelist entry", err)
	}
	return nil
}

func (p *Postgres) RemoveWhitelistEntry(ctx context.Context, id uuid.UUID) error {
	res, err := p.db.NewDelete().Model((*models.WhitelistEntry)(nil)).Where("id = ?", id).Exec(ctx)
	if err != nil {
		return mapErr("remove whitelist entry", err)
	}
	return requireRows("remove whitelist entry", res)
}

func requireRows(op string, res sql.Result) error {
	rows, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("%s: rows affected: %w", op, err)
	}
	if rows == 0 {
		return fmt.Errorf("%s: %w", op, ErrNotFound)
	}
	return nil
}

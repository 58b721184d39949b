package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/google/logger"
	"github.com/google/uuid"

	"tebakangka/internal/models"
	"tebakangka/internal/services"
	"tebakangka/internal/store"
)

// HTTPHandler holds the service dependencies for the HTTP handlers.
type HTTPHandler struct {
	markets *services.MarketService
	lomba   *services.LombaService
	tebakan *services.TebakanService
	winners *services.WinnerService
	auth    *services.AuthService
	users   *services.UserService
	content *services.ContentService
}

// NewHTTPHandler creates a new HTTPHandler.
func NewHTTPHandler(
	markets *services.MarketService,
	lomba *services.LombaService,
	tebakan *services.TebakanService,
	winners *services.WinnerService,
	auth *services.AuthService,
	users *services.UserService,
	content *services.ContentService,
) *HTTPHandler {
	return &HTTPHandler{
		markets: markets,
		lomba:   lomba,
		tebakan: tebakan,
		winners: winners,
		auth:    auth,
		users:   users,
		content: content,
	}
}

// RegisterPublicRoutes registers the public site API.
func (h *HTTPHandler) RegisterPublicRoutes(r gin.IRouter) {
	r.GET("/api/markets", h.ListMarkets)
	r.GET("/api/market/:id", h.GetMarket)
	r.GET("/api/lomba/:marketId", h.ListLomba)

	r.POST("/api/tebakan", h.SubmitTebakan)
	r.GET("/api/tebakan", h.ListParticipants)
	r.GET("/api/tebakan/view", h.ViewTebakan)
	r.GET("/api/tebakan/winner", h.WinnerData)
	r.GET("/api/tebakan/winners", h.Winners)

	r.GET("/api/websites", h.ListWebsites)
	r.GET("/api/slides", h.ListSlides)
	r.GET("/api/contacts", h.ListContacts)
	r.GET("/api/social-media", h.ListSocialMedia)
	r.GET("/api/privilage", h.GetPrivilege)
	r.GET("/api/profile", h.Profile)

	r.POST("/api/auth/register", h.Register)
	r.POST("/api/auth/login", h.Login)
	r.POST("/api/admin/login", h.AdminLogin)

	r.POST("/api/users/check-status", h.CheckStatus)
	r.POST("/api/users/get-username", h.GetUsername)
	r.POST("/api/check-existing", h.CheckExisting)
}

// RegisterAdminRoutes registers the back-office API. The caller attaches
// AdminMiddleware to the group before passing it in.
func (h *HTTPHandler) RegisterAdminRoutes(r gin.IRouter) {
	r.POST("/markets", h.CreateMarket)
	r.PUT("/markets/:id", h.UpdateMarket)
	r.DELETE("/markets/:id", h.DeleteMarket)

	r.POST("/lomba", h.CreateLomba)
	r.POST("/lomba/:id/result", h.SettleLomba)
	r.PUT("/lomba/:id/prize", h.UpdateLombaPrize)

	r.POST("/slides", h.CreateSlide)
	r.PUT("/slides", h.UpdateSlides)
	r.DELETE("/slides/:id", h.DeleteSlide)

	r.POST("/websites", h.CreateWebsite)
	r.DELETE("/websites/:id", h.DeleteWebsite)

	r.POST("/contacts", h.CreateContact)
	r.DELETE("/contacts/:id", h.DeleteContact)
	r.POST("/social-media", h.CreateSocialMedia)
	r.DELETE("/social-media/:id", h.DeleteSocialMedia)

	r.GET("/fake-users", h.ListFakeUsers)
	r.POST("/fake-users", h.AddFakeUser)
	r.DELETE("/fake-users", h.RemoveFakeUser)

	r.GET("/whitelist", h.ListWhitelist)
	r.POST("/whitelist", h.AddWhitelistEntry)
	r.DELETE("/whitelist/:id", h.RemoveWhitelistEntry)

	r.POST("/users/toggle-status", h.ToggleStatus)
}

// AdminMiddleware rejects requests without a valid staff session token.
func (h *HTTPHandler) AdminMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		header := c.GetHeader("Authorization")
		token, ok := strings.CutPrefix(header, "Bearer ")
		if !ok || token == "" {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token diperlukan"})
			return
		}
		claims, err := h.auth.ParseToken(token)
		if err != nil || claims.Level <= 0 {
			c.AbortWithStatusJSON(http.StatusUnauthorized, gin.H{"error": "token tidak valid"})
			return
		}
		c.Set("admin_username", claims.Username)
		c.Set("admin_level", claims.Level)
		c.Next()
	}
}

// respondError maps service errors onto status codes: missing records to
// 404, invalid state and duplicates to 409, bad credentials to 401, and
// anything else, which can only be a failing store, to 502.
func respondError(c *gin.Context, err error) {
	switch {
	case errors.Is(err, store.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": "data tidak ditemukan"})
	case errors.Is(err, services.ErrInvalidState), errors.Is(err, store.ErrDuplicate):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrInvalidCredentials):
		c.JSON(http.StatusUnauthorized, gin.H{"error": err.Error()})
	case errors.Is(err, services.ErrAccountBanned):
		c.JSON(http.StatusForbidden, gin.H{"error": err.Error()})
	default:
		logger.Errorf("request failed: %v", err)
		c.JSON(http.StatusBadGateway, gin.H{"error": "terjadi kesalahan pada server"})
	}
}

// noStore disables response caching. Winner lists and tickers change as
// submissions arrive, so clients must never serve them stale.
func noStore(c *gin.Context) {
	c.Header("Cache-Control", "no-cache, no-store, must-revalidate")
	c.Header("Pragma", "no-cache")
	c.Header("Expires", "0")
}

func lombaIDParam(c *gin.Context) (uuid.UUID, bool) {
	raw := c.Query("lomba_id")
	if raw == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lomba ID is required"})
		return uuid.Nil, false
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Lomba ID is required"})
		return uuid.Nil, false
	}
	return id, true
}

// ListMarkets handles GET /api/markets.
func (h *HTTPHandler) ListMarkets(c *gin.Context) {
	markets, err := h.markets.List(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, markets)
}

// GetMarket handles GET /api/market/:id, where :id is a market id or name.
func (h *HTTPHandler) GetMarket(c *gin.Context) {
	market, err := h.markets.Get(c.Request.Context(), c.Param("id"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, market)
}

// ListLomba handles GET /api/lomba/:marketId?date=YYYY-MM-DD.
func (h *HTTPHandler) ListLomba(c *gin.Context) {
	marketID, err := uuid.Parse(c.Param("marketId"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "market id tidak valid"})
		return
	}
	lomba, err := h.lomba.ListByMarket(c.Request.Context(), marketID, c.Query("date"))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lomba)
}

type submitTebakanRequest struct {
	LombaID       uuid.UUID `json:"lomba_id" binding:"required"`
	WebsiteID     uuid.UUID `json:"website_id" binding:"required"`
	UseridWebsite string    `json:"userid_website" binding:"required"`
	Number        string    `json:"number" binding:"required"`
}

// SubmitTebakan handles POST /api/tebakan.
func (h *HTTPHandler) SubmitTebakan(c *gin.Context) {
	var req submitTebakanRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data tebakan tidak lengkap"})
		return
	}
	t := &models.Tebakan{
		LombaID:       req.LombaID,
		WebsiteID:     req.WebsiteID,
		UseridWebsite: req.UseridWebsite,
		Number:        req.Number,
	}
	if err := h.tebakan.Submit(c.Request.Context(), t); err != nil {
		respondError(c, err)
		return
	}
	noStore(c)
	c.JSON(http.StatusCreated, t)
}

// ListParticipants handles GET /api/tebakan?lomba_id=. It returns only
// participant ids, the shape the public ticker consumes.
func (h *HTTPHandler) ListParticipants(c *gin.Context) {
	lombaID, ok := lombaIDParam(c)
	if !ok {
		return
	}
	ids, err := h.tebakan.Participants(c.Request.Context(), lombaID)
	if err != nil {
		respondError(c, err)
		return
	}
	out := make([]gin.H, 0, len(ids))
	for _, id := range ids {
		out = append(out, gin.H{"userid_website": id})
	}
	noStore(c)
	c.JSON(http.StatusOK, out)
}

// ViewTebakan handles GET /api/tebakan/view?lomba_id=.
func (h *HTTPHandler) ViewTebakan(c *gin.Context) {
	lombaID, ok := lombaIDParam(c)
	if !ok {
		return
	}
	entries, err := h.tebakan.View(c.Request.Context(), lombaID)
	if err != nil {
		respondError(c, err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, entries)
}

// WinnerData handles GET /api/tebakan/winner?lomba_id=, the raw
// pre-resolution payload of submissions plus the fake-user set.
func (h *HTTPHandler) WinnerData(c *gin.Context) {
	lombaID, ok := lombaIDParam(c)
	if !ok {
		return
	}
	entries, fakes, err := h.tebakan.WinnerData(c.Request.Context(), lombaID)
	if err != nil {
		respondError(c, err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, gin.H{"tebakan": entries, "fakeUsers": fakes})
}

// Winners handles GET /api/tebakan/winners?lomba_id=, the resolved winner
// list of a settled lomba.
func (h *HTTPHandler) Winners(c *gin.Context) {
	lombaID, ok := lombaIDParam(c)
	if !ok {
		return
	}
	winners, err := h.winners.Resolve(c.Request.Context(), lombaID)
	if err != nil {
		respondError(c, err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, winners)
}

// ListWebsites handles GET /api/websites.
func (h *HTTPHandler) ListWebsites(c *gin.Context) {
	websites, err := h.content.ListWebsites(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, websites)
}

// ListSlides handles GET /api/slides.
func (h *HTTPHandler) ListSlides(c *gin.Context) {
	slides, err := h.content.ListSlides(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, slides)
}

// ListContacts handles GET /api/contacts.
func (h *HTTPHandler) ListContacts(c *gin.Context) {
	contacts, err := h.content.ListContacts(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, contacts)
}

// ListSocialMedia handles GET /api/social-media.
func (h *HTTPHandler) ListSocialMedia(c *gin.Context) {
	social, err := h.content.ListSocialMedia(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, social)
}

// Profile handles GET /api/profile?email=. It exposes the profile fields
// only, never the status or password hash.
func (h *HTTPHandler) Profile(c *gin.Context) {
	email := c.Query("email")
	if email == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Email is required"})
		return
	}
	user, err := h.users.Profile(c.Request.Context(), email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"id":         user.ID,
		"username":   user.Username,
		"email":      user.Email,
		"phone":      user.Phone,
		"birth_date": user.BirthDate,
	})
}

// GetPrivilege handles GET /api/privilage?level=.
func (h *HTTPHandler) GetPrivilege(c *gin.Context) {
	level, err := strconv.Atoi(c.Query("level"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Level is required"})
		return
	}
	priv, err := h.users.Privilege(c.Request.Context(), level)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"akses": priv.Akses})
}

// Register handles POST /api/auth/register.
func (h *HTTPHandler) Register(c *gin.Context) {
	var in services.RegisterInput
	if err := c.ShouldBindJSON(&in); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data registrasi tidak valid"})
		return
	}
	user, err := h.auth.Register(c.Request.Context(), in)
	if err != nil {
		switch {
		case errors.Is(err, services.ErrUsernameTaken),
			errors.Is(err, services.ErrEmailTaken),
			errors.Is(err, services.ErrPhoneTaken):
			c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		default:
			respondError(c, err)
		}
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Registrasi berhasil!", "user": user})
}

type loginRequest struct {
	Identifier string `json:"identifier" binding:"required"`
	Password   string `json:"password" binding:"required"`
}

// Login handles POST /api/auth/login.
func (h *HTTPHandler) Login(c *gin.Context) {
	var req loginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "username/email dan password harus diisi"})
		return
	}
	token, user, err := h.auth.Login(c.Request.Context(), req.Identifier, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"token": token, "user": user})
}

type adminLoginRequest struct {
	UsernameOrEmail string `json:"usernameOrEmail" binding:"required"`
	Password        string `json:"password" binding:"required"`
}

// AdminLogin handles POST /api/admin/login.
func (h *HTTPHandler) AdminLogin(c *gin.Context) {
	var req adminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Username/email dan password harus diisi"})
		return
	}
	token, admin, err := h.auth.AdminLogin(c.Request.Context(), req.UsernameOrEmail, req.Password)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"data": gin.H{
		"id":           admin.ID,
		"email":        admin.Email,
		"username":     admin.Username,
		"level":        admin.Level,
		"access_token": token,
	}})
}

type userIDRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	Email  string    `json:"email"`
}

// CheckStatus handles POST /api/users/check-status.
func (h *HTTPHandler) CheckStatus(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID diperlukan"})
		return
	}
	status, err := h.users.CheckStatus(c.Request.Context(), req.UserID, req.Email)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"status": status})
}

// GetUsername handles POST /api/users/get-username.
func (h *HTTPHandler) GetUsername(c *gin.Context) {
	var req userIDRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "User ID diperlukan"})
		return
	}
	username, err := h.users.Username(c.Request.Context(), req.UserID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"username": username})
}

type checkExistingRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value" binding:"required"`
}

// CheckExisting handles POST /api/check-existing.
func (h *HTTPHandler) CheckExisting(c *gin.Context) {
	var req checkExistingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Parameter tidak lengkap"})
		return
	}
	exists, err := h.users.Exists(c.Request.Context(), req.Field, req.Value)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"exists": exists})
}

// CreateMarket handles POST /api/admin/markets.
func (h *HTTPHandler) CreateMarket(c *gin.Context) {
	var market models.Market
	if err := c.ShouldBindJSON(&market); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data pasaran tidak valid"})
		return
	}
	if err := h.markets.Create(c.Request.Context(), &market); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, market)
}

// UpdateMarket handles PUT /api/admin/markets/:id.
func (h *HTTPHandler) UpdateMarket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "market id tidak valid"})
		return
	}
	var market models.Market
	if err := c.ShouldBindJSON(&market); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data pasaran tidak valid"})
		return
	}
	market.ID = id
	if err := h.markets.Update(c.Request.Context(), &market); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, market)
}

// DeleteMarket handles DELETE /api/admin/markets/:id.
func (h *HTTPHandler) DeleteMarket(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "market id tidak valid"})
		return
	}
	if err := h.markets.Delete(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateLomba handles POST /api/admin/lomba.
func (h *HTTPHandler) CreateLomba(c *gin.Context) {
	var lomba models.Lomba
	if err := c.ShouldBindJSON(&lomba); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data lomba tidak valid"})
		return
	}
	if err := h.lomba.Create(c.Request.Context(), &lomba); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, lomba)
}

type settleRequest struct {
	Result string `json:"result" binding:"required"`
}

// SettleLomba handles POST /api/admin/lomba/:id/result.
func (h *HTTPHandler) SettleLomba(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lomba id tidak valid"})
		return
	}
	var req settleRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "result harus diisi"})
		return
	}
	lomba, err := h.lomba.Settle(c.Request.Context(), id, req.Result)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lomba)
}

type prizeRequest struct {
	PrizePool int64 `json:"prize_pool"`
	MaxWinner int   `json:"max_winner"`
}

// UpdateLombaPrize handles PUT /api/admin/lomba/:id/prize.
func (h *HTTPHandler) UpdateLombaPrize(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "lomba id tidak valid"})
		return
	}
	var req prizeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data hadiah tidak valid"})
		return
	}
	lomba, err := h.lomba.UpdatePrize(c.Request.Context(), id, req.PrizePool, req.MaxWinner)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, lomba)
}

// CreateSlide handles POST /api/admin/slides.
func (h *HTTPHandler) CreateSlide(c *gin.Context) {
	var slide models.Slide
	if err := c.ShouldBindJSON(&slide); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data slide tidak valid"})
		return
	}
	if err := h.content.CreateSlide(c.Request.Context(), &slide); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": slide})
}

type updateSlidesRequest struct {
	models.Slide
	Slides []models.Slide `json:"slides"`
}

// UpdateSlides handles PUT /api/admin/slides: a bulk position reorder when
// a slides array is given, otherwise a single-slide update.
func (h *HTTPHandler) UpdateSlides(c *gin.Context) {
	var req updateSlidesRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data slide tidak valid"})
		return
	}
	if len(req.Slides) > 0 {
		if err := h.content.ReorderSlides(c.Request.Context(), req.Slides); err != nil {
			respondError(c, err)
			return
		}
		c.JSON(http.StatusOK, gin.H{"success": true})
		return
	}
	if err := h.content.UpdateSlide(c.Request.Context(), &req.Slide); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// DeleteSlide handles DELETE /api/admin/slides/:id.
func (h *HTTPHandler) DeleteSlide(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "slide id tidak valid"})
		return
	}
	if err := h.content.DeleteSlide(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateWebsite handles POST /api/admin/websites.
func (h *HTTPHandler) CreateWebsite(c *gin.Context) {
	var website models.Website
	if err := c.ShouldBindJSON(&website); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data website tidak valid"})
		return
	}
	if err := h.content.CreateWebsite(c.Request.Context(), &website); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, website)
}

// DeleteWebsite handles DELETE /api/admin/websites/:id.
func (h *HTTPHandler) DeleteWebsite(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "website id tidak valid"})
		return
	}
	if err := h.content.DeleteWebsite(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateContact handles POST /api/admin/contacts.
func (h *HTTPHandler) CreateContact(c *gin.Context) {
	var contact models.Contact
	if err := c.ShouldBindJSON(&contact); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data kontak tidak valid"})
		return
	}
	if err := h.content.CreateContact(c.Request.Context(), &contact); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, contact)
}

// DeleteContact handles DELETE /api/admin/contacts/:id.
func (h *HTTPHandler) DeleteContact(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "contact id tidak valid"})
		return
	}
	if err := h.content.DeleteContact(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// CreateSocialMedia handles POST /api/admin/social-media.
func (h *HTTPHandler) CreateSocialMedia(c *gin.Context) {
	var social models.SocialMedia
	if err := c.ShouldBindJSON(&social); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data social media tidak valid"})
		return
	}
	if err := h.content.CreateSocialMedia(c.Request.Context(), &social); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, social)
}

// DeleteSocialMedia handles DELETE /api/admin/social-media/:id.
func (h *HTTPHandler) DeleteSocialMedia(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "social media id tidak valid"})
		return
	}
	if err := h.content.DeleteSocialMedia(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListFakeUsers handles GET /api/admin/fake-users.
func (h *HTTPHandler) ListFakeUsers(c *gin.Context) {
	fakes, err := h.content.ListFakeUsers(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	noStore(c)
	c.JSON(http.StatusOK, fakes)
}

type fakeUserRequest struct {
	UseridWebsite string    `json:"userid_website" binding:"required"`
	WebsiteID     uuid.UUID `json:"website_id" binding:"required"`
}

// AddFakeUser handles POST /api/admin/fake-users.
func (h *HTTPHandler) AddFakeUser(c *gin.Context) {
	var req fakeUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data fake user tidak valid"})
		return
	}
	f := &models.FakeUser{UseridWebsite: req.UseridWebsite, WebsiteID: req.WebsiteID}
	if err := h.content.AddFakeUser(c.Request.Context(), f); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, f)
}

// RemoveFakeUser handles DELETE /api/admin/fake-users.
func (h *HTTPHandler) RemoveFakeUser(c *gin.Context) {
	var req fakeUserRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data fake user tidak valid"})
		return
	}
	if err := h.content.RemoveFakeUser(c.Request.Context(), req.UseridWebsite, req.WebsiteID); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

// ListWhitelist handles GET /api/admin/whitelist.
func (h *HTTPHandler) ListWhitelist(c *gin.Context) {
	entries, err := h.content.ListWhitelist(c.Request.Context())
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, entries)
}

// AddWhitelistEntry handles POST /api/admin/whitelist.
func (h *HTTPHandler) AddWhitelistEntry(c *gin.Context) {
	var entry models.WhitelistEntry
	if err := c.ShouldBindJSON(&entry); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "data whitelist tidak valid"})
		return
	}
	if err := h.content.AddWhitelistEntry(c.Request.Context(), &entry); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, entry)
}

// RemoveWhitelistEntry handles DELETE /api/admin/whitelist/:id.
func (h *HTTPHandler) RemoveWhitelistEntry(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "whitelist id tidak valid"})
		return
	}
	if err := h.content.RemoveWhitelistEntry(c.Request.Context(), id); err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true})
}

type toggleStatusRequest struct {
	UserID    uuid.UUID `json:"userId" binding:"required"`
	NewStatus string    `json:"newStatus" binding:"required"`
}

// ToggleStatus handles POST /api/admin/users/toggle-status.
func (h *HTTPHandler) ToggleStatus(c *gin.Context) {
	var req toggleStatusRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"message": "Missing required fields"})
		return
	}
	user, err := h.users.ToggleStatus(c.Request.Context(), req.UserID, req.NewStatus)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"success": true, "data": user})
}

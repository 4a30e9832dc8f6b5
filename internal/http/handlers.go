package http

import (
	"errors"
	"net/http"
	"sort"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/undergradassistant/backend/internal/logging"
	"github.com/undergradassistant/backend/internal/scraper"
	"github.com/undergradassistant/backend/internal/store"
	"go.uber.org/zap"
)

// Handlers contains all HTTP handlers.
type Handlers struct {
	store   *store.Store
	scraper *scraper.Scraper
	log     *logging.Logger
}

// NewHandlers creates a new handler set.
func NewHandlers(st *store.Store, sc *scraper.Scraper, log *logging.Logger) *Handlers {
	if log == nil {
		log = logging.NewNop()
	}
	return &Handlers{store: st, scraper: sc, log: log.Named("http")}
}

// UserInfo is the submitted student profile.
type UserInfo struct {
	Name              string   `json:"name" binding:"required"`
	Major             string   `json:"major" binding:"required"`
	ResearchInterests []string `json:"research_interests"`
	Skills            []string `json:"skills"`
}

// UserResponse echoes a stored user back to the client.
type UserResponse struct {
	UserID            int64    `json:"user_id"`
	Name              string   `json:"name"`
	Major             string   `json:"major"`
	ResearchInterests []string `json:"research_interests"`
	Skills            []string `json:"skills"`
}

// RecommendationRequest wraps the user profile submitted for matching.
type RecommendationRequest struct {
	UserInfo UserInfo `json:"user_info" binding:"required"`
}

// Root lists the available endpoints.
func (h *Handlers) Root(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"message": "Welcome to the Undergraduate Assistant API",
		"endpoints": gin.H{
			"GET /user_info/:id":     "Get user information",
			"POST /user_info":        "Create or update user information",
			"POST /prof_info":        "Get professor recommendations based on user interests",
			"GET /professors":        "Get all professors",
			"GET /professors/search": "Search professors by research area",
			"GET /research-areas":    "Get all available research areas",
			"GET /stats":             "Get database statistics",
		},
	})
}

// Health reports liveness plus store statistics.
func (h *Handlers) Health(c *gin.Context) {
	stats, err := h.store.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{
			"status": "degraded",
			"error":  err.Error(),
		})
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"status": "healthy",
		"store":  stats,
	})
}

// GetResearchAreas performs a live vocabulary load from the directory
// site and returns the labels sorted alphabetically. Not cached.
func (h *Handlers) GetResearchAreas(c *gin.Context) {
	vocab := h.scraper.LoadVocabulary(c.Request.Context(), scraper.ResearchAreas)

	areas := vocab.Labels()
	sort.Strings(areas)

	c.JSON(http.StatusOK, gin.H{
		"research_areas": areas,
		"count":          len(areas),
	})
}

// GetUserInfo returns a user by id.
func (h *Handlers) GetUserInfo(c *gin.Context) {
	id, err := strconv.ParseInt(c.Param("id"), 10, 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid user id"})
		return
	}

	user, err := h.store.GetUserByID(id)
	if errors.Is(err, store.ErrNotFound) {
		c.JSON(http.StatusNotFound, gin.H{"error": "User not found"})
		return
	}
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, userResponse(user.ID, UserInfo{
		Name:              user.Name,
		Major:             user.Major,
		ResearchInterests: user.ResearchInterests,
		Skills:            user.Skills,
	}))
}

// CreateOrUpdateUserInfo upserts a user profile. Identity is a substring
// match on name, so two users with the same display name collide; the
// first match wins.
func (h *Handlers) CreateOrUpdateUserInfo(c *gin.Context) {
	var info UserInfo
	if err := c.ShouldBindJSON(&info); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	id, err := h.upsertUser(info)
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, userResponse(id, info))
}

// GetProfessorRecommendations persists the submitted user, then returns
// all professors unranked. Relevance ranking is a future replacement for
// this handler; today every professor is a "recommendation".
func (h *Handlers) GetProfessorRecommendations(c *gin.Context) {
	var req RecommendationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	if _, err := h.upsertUser(req.UserInfo); err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting recommendations: " + err.Error()})
		return
	}

	profs, err := h.store.GetAllProfessors()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error getting recommendations: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"recommendations": profs,
		"match_count":     len(profs),
	})
}

// GetProfessors returns professors with offset/limit pagination, ordered
// by name.
func (h *Handlers) GetProfessors(c *gin.Context) {
	limit, err := intQuery(c, "limit", 50)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid limit"})
		return
	}
	offset, err := intQuery(c, "offset", 0)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid offset"})
		return
	}

	profs, err := h.store.SearchProfessors(store.SearchProfessorsParams{
		Limit:  limit,
		Offset: offset,
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, profs)
}

// SearchProfessors filters professors by any combination of name,
// location, research area, and title.
func (h *Handlers) SearchProfessors(c *gin.Context) {
	profs, err := h.store.SearchProfessors(store.SearchProfessorsParams{
		Name:         c.Query("name"),
		Location:     c.Query("location"),
		ResearchArea: c.Query("research_area"),
		Title:        c.Query("title"),
	})
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Error searching professors: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, profs)
}

// GetStats returns database statistics plus the research-area popularity
// tally.
func (h *Handlers) GetStats(c *gin.Context) {
	stats, err := h.store.Stats()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	areas, err := h.store.PopularResearchAreas()
	if err != nil {
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Database error: " + err.Error()})
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"stats":                  stats,
		"popular_research_areas": areas,
	})
}

// upsertUser finds an existing user by name and updates it, or inserts a
// new one, returning the user id either way.
func (h *Handlers) upsertUser(info UserInfo) (int64, error) {
	existing, err := h.store.SearchUsers(store.SearchUsersParams{Name: info.Name})
	if err != nil {
		return 0, err
	}

	user := store.User{
		Name:              info.Name,
		Major:             info.Major,
		ResearchInterests: info.ResearchInterests,
		Skills:            info.Skills,
	}

	if len(existing) > 0 {
		id := existing[0].ID
		if _, err := h.store.UpdateUser(id, user); err != nil {
			return 0, err
		}
		h.log.Debug("updated user", zap.Int64("id", id), zap.String("name", info.Name))
		return id, nil
	}

	id, err := h.store.InsertUser(user)
	if err != nil {
		return 0, err
	}
	h.log.Debug("created user", zap.Int64("id", id), zap.String("name", info.Name))
	return id, nil
}

func userResponse(id int64, info UserInfo) UserResponse {
	if info.ResearchInterests == nil {
		info.ResearchInterests = []string{}
	}
	if info.Skills == nil {
		info.Skills = []string{}
	}
	return UserResponse{
		UserID:            id,
		Name:              info.Name,
		Major:             info.Major,
		ResearchInterests: info.ResearchInterests,
		Skills:            info.Skills,
	}
}

func intQuery(c *gin.Context, key string, fallback int) (int, error) {
	raw := c.Query(key)
	if raw == "" {
		return fallback, nil
	}
	value, err := strconv.Atoi(raw)
	if err != nil || value < 0 {
		return 0, errors.New("invalid " + key)
	}
	return value, nil
}

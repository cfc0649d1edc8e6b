package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gostudiom/learn-api/internal/access"
	"github.com/gostudiom/learn-api/internal/middleware"
	"github.com/gostudiom/learn-api/internal/repository"
)

// AccountHandler serves the authenticated account surface: who am I, and
// explicit market selection for free accounts.
type AccountHandler struct {
	Users         *repository.UserRepo
	Jurisdictions *repository.JurisdictionRepo
	Access        *access.Resolver
}

func NewAccountHandler(u *repository.UserRepo, j *repository.JurisdictionRepo, a *access.Resolver) *AccountHandler {
	return &AccountHandler{Users: u, Jurisdictions: j, Access: a}
}

// Me returns the authenticated user's identity and resolved access.
func (h *AccountHandler) Me(c echo.Context) error {
	uid := middleware.CurrentUserID(c)

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	u, err := h.Users.GetByID(ctx, uid)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load user failed"})
	}

	return c.JSON(http.StatusOK, echo.Map{
		"user":   userPart{ID: u.ID, Email: u.Email},
		"access": h.Access.Resolve(ctx, uid),
	})
}

type selectMarketReq struct {
	MarketSlug string `json:"market_slug"`
}

// SelectMarket locks in a free user's one market explicitly (the same
// write the detail page performs implicitly on first view). Selection is
// write-once: once a market is set, choosing a different one answers 409
// and the client renders the upgrade path. Re-selecting the same market is
// a no-op success.
func (h *AccountHandler) SelectMarket(c echo.Context) error {
	var req selectMarketReq
	if err := c.Bind(&req); err != nil {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "invalid body"})
	}
	slug := strings.TrimSpace(req.MarketSlug)
	if slug == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "market_slug required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	uid := middleware.CurrentUserID(c)
	viewer := h.Access.Resolve(ctx, uid)

	if viewer.CanViewAllMarkets {
		// Pro accounts have no market to lock in.
		return c.JSON(http.StatusOK, echo.Map{"success": true, "access": viewer})
	}
	if viewer.SelectedMarket != "" && viewer.SelectedMarket != slug {
		return c.JSON(http.StatusConflict, echo.Map{
			"error":           "market already selected",
			"selected_market": viewer.SelectedMarket,
		})
	}

	if _, err := h.Jurisdictions.GetBySlug(ctx, slug); err != nil {
		if err == repository.ErrJurisdictionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "market not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load market failed"})
	}

	res := h.Access.SetFreeUserMarket(ctx, uid, slug)
	if !res.Success {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "select market failed"})
	}
	viewer.SelectedMarket = slug
	return c.JSON(http.StatusOK, echo.Map{"success": true, "access": viewer})
}

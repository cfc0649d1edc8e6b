package handler

import (
	"context"
	"net/http"
	"strings"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/gostudiom/learn-api/internal/access"
	"github.com/gostudiom/learn-api/internal/category"
	"github.com/gostudiom/learn-api/internal/middleware"
	"github.com/gostudiom/learn-api/internal/model"
	"github.com/gostudiom/learn-api/internal/regulation"
	"github.com/gostudiom/learn-api/internal/repository"
)

// popularLimit caps the "popular markets" strip at the top of the
// directory; the rest of the listings appear inside their state group.
const popularLimit = 8

// relatedLimit caps the "other markets in this state" list on a detail page.
const relatedLimit = 4

// summaryTeaserLen is the public-tier summary length on cards and on the
// ungated layer of a detail page.
const summaryTeaserLen = 150

// MarketHandler serves the market directory, search and detail endpoints.
// The directory and search are fully public; the detail endpoint serves
// all three access tiers from one route, resolving the viewer's tier per
// request.
type MarketHandler struct {
	Jurisdictions *repository.JurisdictionRepo
	Regulations   *repository.RegulationRepo
	Knowledge     *repository.KnowledgeRepo
	Sources       *repository.SourceRepo
	Access        *access.Resolver
}

func NewMarketHandler(
	j *repository.JurisdictionRepo,
	r *repository.RegulationRepo,
	k *repository.KnowledgeRepo,
	s *repository.SourceRepo,
	a *access.Resolver,
) *MarketHandler {
	return &MarketHandler{Jurisdictions: j, Regulations: r, Knowledge: k, Sources: s, Access: a}
}

// ----- directory DTOs -----

// marketCard is one market as shown in the directory, search results and
// related lists. Everything on a card is public-safe.
type marketCard struct {
	Slug             string           `json:"slug"`
	Name             string           `json:"name"`
	FullName         string           `json:"full_name,omitempty"`
	StateCode        string           `json:"state_code"`
	StateName        string           `json:"state_name"`
	JurisdictionType string           `json:"jurisdiction_type"`
	Population       *int64           `json:"population,omitempty"`
	Strictness       string           `json:"strictness"`
	StrictnessMeta   regulation.Meta  `json:"strictness_meta"`
	STRsAllowed      bool             `json:"strs_allowed"`
	Flags            regulation.Flags `json:"flags"`
	Summary          *string          `json:"summary,omitempty"`
	Confidence       string           `json:"confidence"`
}

type stateGroupResp struct {
	StateCode string       `json:"state_code"`
	StateName string       `json:"state_name"`
	Markets   []marketCard `json:"markets"`
}

type directoryResp struct {
	Total   int              `json:"total"`
	Popular []marketCard     `json:"popular"`
	States  []stateGroupResp `json:"states"`
}

func toCard(l model.MarketListing) marketCard {
	strict := regulation.DeriveStrictness(l.Regulation)
	gotchas := 0
	var summary *string
	var confidence *float64
	if l.Regulation != nil {
		gotchas = len(l.Regulation.KeyGotchas)
		summary = l.Regulation.Summary
		confidence = l.Regulation.ConfidenceScore
	}
	return marketCard{
		Slug:             l.Jurisdiction.Slug,
		Name:             l.Jurisdiction.Name,
		FullName:         l.Jurisdiction.FullName,
		StateCode:        l.Jurisdiction.StateCode,
		StateName:        regulation.StateName(l.Jurisdiction.StateCode),
		JurisdictionType: l.Jurisdiction.JurisdictionType,
		Population:       l.Jurisdiction.Population,
		Strictness:       string(strict),
		StrictnessMeta:   regulation.StrictnessMeta[strict],
		STRsAllowed:      regulation.STRsAllowed(l.Regulation),
		Flags:            regulation.ExtractPublicFlags(l.Regulation, gotchas),
		Summary:          regulation.TruncateSummary(summary, summaryTeaserLen),
		Confidence:       regulation.FormatConfidence(confidence),
	}
}

func toCards(listings []model.MarketListing) []marketCard {
	cards := make([]marketCard, 0, len(listings))
	for _, l := range listings {
		cards = append(cards, toCard(l))
	}
	return cards
}

// Directory returns every covered market: a popular strip (most populous
// first) plus all markets grouped by state.
func (h *MarketHandler) Directory(c echo.Context) error {
	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	listings, err := h.Jurisdictions.ListDirectory(ctx)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load markets failed"})
	}

	popular := listings
	if len(popular) > popularLimit {
		popular = popular[:popularLimit]
	}

	groups := regulation.GroupByState(listings)
	states := make([]stateGroupResp, 0, len(groups))
	for _, g := range groups {
		states = append(states, stateGroupResp{
			StateCode: g.StateCode,
			StateName: regulation.StateName(g.StateCode),
			Markets:   toCards(g.Markets),
		})
	}

	return c.JSON(http.StatusOK, directoryResp{
		Total:   len(listings),
		Popular: toCards(popular),
		States:  states,
	})
}

// searchLimit caps search results; the directory exists for browsing.
const searchLimit = 20

// Search finds markets by name, full name or state name.
func (h *MarketHandler) Search(c echo.Context) error {
	q := strings.TrimSpace(c.QueryParam("q"))
	if q == "" {
		return c.JSON(http.StatusBadRequest, echo.Map{"error": "q required"})
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	listings, err := h.Jurisdictions.SearchByName(ctx, q, searchLimit)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "search failed"})
	}
	return c.JSON(http.StatusOK, echo.Map{
		"query":   q,
		"total":   len(listings),
		"results": toCards(listings),
	})
}

// ----- detail DTOs -----

// Lock types tell the client which CTA to render over a gated section.
const (
	lockSignup      = "signup"       // public viewer: create an account
	lockMarketLimit = "market-limit" // free viewer locked to another market
	lockUpgrade     = "upgrade"      // full content visible, pro-only section gated
)

type lockResp struct {
	Locked bool   `json:"locked"`
	Type   string `json:"type,omitempty"`
}

type permitResp struct {
	Required          bool     `json:"required"`
	Name              string   `json:"name"`
	Fee               *string  `json:"fee,omitempty"`
	ProcessingTime    *string  `json:"processing_time,omitempty"`
	RequiredDocuments []string `json:"required_documents,omitempty"`
}

type knowledgeGroupResp struct {
	Type  string   `json:"type"`
	Label string   `json:"label"`
	Items []string `json:"items"`
}

type sourceResp struct {
	Title         string    `json:"title"`
	URL           string    `json:"url"`
	SourceType    string    `json:"source_type"`
	LastCheckedAt time.Time `json:"last_checked_at"`
}

// fullContentResp is the gated layer of a market page: only present when
// the viewer's tier grants full content for this market.
type fullContentResp struct {
	PlainEnglish     *string              `json:"plain_english,omitempty"`
	KeyGotchas       []string             `json:"key_gotchas,omitempty"`
	Permit           permitResp           `json:"permit"`
	MaxFine          *string              `json:"max_fine,omitempty"`
	TotalTaxRate     *string              `json:"total_tax_rate,omitempty"`
	Knowledge        []knowledgeGroupResp `json:"knowledge"`
	Sources          []sourceResp         `json:"sources"`
	ApplicationLock  *lockResp            `json:"application_steps_lock,omitempty"`
	ApplicationSteps []string             `json:"application_steps,omitempty"`
}

type detailResp struct {
	Market      marketCard       `json:"market"`
	UpdatedAt   *time.Time       `json:"updated_at,omitempty"`
	Access      access.Access    `json:"access"`
	Lock        *lockResp        `json:"lock,omitempty"`
	FullContent *fullContentResp `json:"full_content,omitempty"`
	Related     []marketCard     `json:"related"`
}

// Detail serves a market page to all three tiers. The card, flags and
// truncated summary are always present (the SEO layer); full content is
// attached only when the resolved access allows it, otherwise a lock
// describes what the viewer needs to do. A free viewer with no selected
// market gets this market locked in as theirs, best-effort.
func (h *MarketHandler) Detail(c echo.Context) error {
	slug := c.Param("slug")

	ctx, cancel := context.WithTimeout(c.Request().Context(), 5*time.Second)
	defer cancel()

	j, err := h.Jurisdictions.GetBySlug(ctx, slug)
	if err != nil {
		if err == repository.ErrJurisdictionNotFound {
			return c.JSON(http.StatusNotFound, echo.Map{"error": "market not found"})
		}
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load market failed"})
	}

	reg, err := h.Regulations.GetByJurisdiction(ctx, j.ID)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, echo.Map{"error": "load regulation failed"})
	}

	viewer := h.Access.Resolve(ctx, middleware.CurrentUserID(c))

	resp := detailResp{
		Market: toCard(model.MarketListing{Jurisdiction: j, Regulation: reg}),
		Access: viewer,
	}
	if reg != nil && !reg.UpdatedAt.IsZero() {
		resp.UpdatedAt = &reg.UpdatedAt
	}

	related, err := h.Jurisdictions.ListRelated(ctx, j.StateCode, j.ID, relatedLimit)
	if err == nil {
		resp.Related = toCards(related)
	}

	if !(viewer.CanViewFullContent && access.CanAccessMarket(viewer, slug)) {
		lockType := lockSignup
		if viewer.Tier == access.TierFree {
			lockType = lockMarketLimit
		}
		resp.Lock = &lockResp{Locked: true, Type: lockType}
		return c.JSON(http.StatusOK, resp)
	}

	// First full-content view by a free user locks this market in. The
	// write is best-effort; a failed lock-in must not take the page down.
	if viewer.Tier == access.TierFree && viewer.SelectedMarket == "" {
		if res := h.Access.SetFreeUserMarket(ctx, viewer.UserID, slug); res.Success {
			viewer.SelectedMarket = slug
			resp.Access = viewer
		}
	}

	full := &fullContentResp{}
	if reg != nil {
		full.PlainEnglish = reg.PlainEnglish
		full.KeyGotchas = reg.KeyGotchas
		full.Permit = permitResp{
			Required:          regulation.IsPermitRequired(reg.Registration),
			Name:              regulation.PermitName(reg.Registration),
			Fee:               regulation.FormatCurrency(regulation.ExtractFee(reg.Registration)),
			ProcessingTime:    regulation.ProcessingTime(reg.Registration),
			RequiredDocuments: regulation.RequiredDocuments(reg.Registration),
		}
		full.MaxFine = regulation.FormatCurrency(regulation.ExtractMaxFine(reg.Penalties))
		full.TotalTaxRate = regulation.FormatTaxRate(regulation.TotalTaxRate(reg.Taxes))

		if viewer.CanViewApplicationSteps {
			full.ApplicationSteps = reg.ApplicationSteps
		} else {
			full.ApplicationLock = &lockResp{Locked: true, Type: lockUpgrade}
		}
	} else {
		full.Permit = permitResp{Name: regulation.PermitName(nil)}
		if !viewer.CanViewApplicationSteps {
			full.ApplicationLock = &lockResp{Locked: true, Type: lockUpgrade}
		}
	}

	items, err := h.Knowledge.ListByJurisdiction(ctx, j.ID)
	if err == nil {
		for _, g := range regulation.GroupKnowledge(items) {
			gr := knowledgeGroupResp{Type: string(g.Type), Label: g.Label}
			for _, item := range g.Items {
				gr.Items = append(gr.Items, item.Content)
			}
			full.Knowledge = append(full.Knowledge, gr)
		}
	}

	sources, err := h.Sources.ListActiveByJurisdiction(ctx, j.ID)
	if err == nil {
		for _, s := range sources {
			full.Sources = append(full.Sources, sourceResp{
				Title:         s.Title,
				URL:           s.URL,
				SourceType:    s.SourceType,
				LastCheckedAt: s.LastCheckedAt,
			})
		}
	}

	resp.FullContent = full
	return c.JSON(http.StatusOK, resp)
}

// Categories lists the six content categories with their display metadata.
// The client builds category navigation from this instead of hardcoding
// slugs.
func (h *MarketHandler) Categories(c echo.Context) error {
	type categoryResp struct {
		Slug        string `json:"slug"`
		Name        string `json:"name"`
		Description string `json:"description"`
		Icon        string `json:"icon"`
	}
	out := make([]categoryResp, 0, len(category.AllSlugs))
	for _, slug := range category.AllSlugs {
		info := category.Meta[slug]
		out = append(out, categoryResp{
			Slug:        slug,
			Name:        info.Name,
			Description: info.Description,
			Icon:        info.Icon,
		})
	}
	return c.JSON(http.StatusOK, echo.Map{"categories": out})
}

package handler

import (
	"net/http"
	"strconv"

	"github.com/osse101/SaleBadge_Go/internal/badge"
	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/logger"
	"github.com/osse101/SaleBadge_Go/internal/metrics"
	"github.com/osse101/SaleBadge_Go/internal/salebadge"
)

// SettingsRequest is a full replacement of the badge configuration
type SettingsRequest struct {
	Label      string `json:"label" validate:"max=200"`
	StyleID    int    `json:"style_id" validate:"required,min=1,max=10"`
	FontSizePx int    `json:"font_size_px" validate:"required,min=8,max=24"`
	FontWeight string `json:"font_weight" validate:"required,fontweight"`
	Italic     bool   `json:"italic"`
}

func (req SettingsRequest) raw() domain.RawBadgeConfig {
	return domain.RawBadgeConfig{
		Label:         req.Label,
		StyleID:       strconv.Itoa(req.StyleID),
		FontSize:      strconv.Itoa(req.FontSizePx),
		FontWeight:    req.FontWeight,
		ItalicPresent: req.Italic,
	}
}

// SettingsResponse is the stored configuration and the badge it renders
type SettingsResponse struct {
	Settings domain.BadgeConfig `json:"settings"`
	HTML     string             `json:"html"`
}

// PreviewEntry is one style rendered with the requested label and typography
type PreviewEntry struct {
	StyleID int    `json:"style_id"`
	Name    string `json:"name"`
	HTML    string `json:"html"`
}

// PreviewResponse renders a configuration without storing it
type PreviewResponse struct {
	Settings domain.BadgeConfig `json:"settings"`
	HTML     string             `json:"html"`
	Styles   []PreviewEntry     `json:"styles"`
}

// SettingsAPIHandler serves the admin JSON API
type SettingsAPIHandler struct {
	svc salebadge.Service
}

// NewSettingsAPIHandler creates a new settings API handler
func NewSettingsAPIHandler(svc salebadge.Service) *SettingsAPIHandler {
	return &SettingsAPIHandler{svc: svc}
}

// HandleGetSettings returns the stored configuration
// @Summary Get badge settings
// @Tags admin
// @Produce json
// @Security ApiKeyAuth
// @Success 200 {object} SettingsResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/settings [get]
func (h *SettingsAPIHandler) HandleGetSettings(w http.ResponseWriter, r *http.Request) {
	cfg, err := h.svc.GetSettings(r.Context())
	if err != nil {
		respondServiceError(w, r, ErrMsgGetSettingsFailed, err)
		return
	}

	respondJSON(w, http.StatusOK, SettingsResponse{
		Settings: cfg,
		HTML:     previewOne(h.svc, cfg),
	})
}

// HandleUpdateSettings replaces all five values at once
// @Summary Replace badge settings
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SettingsRequest true "New settings"
// @Success 200 {object} SettingsResponse
// @Failure 400 {object} ValidationErrorResponse
// @Failure 503 {object} ErrorResponse
// @Router /api/v1/admin/settings [put]
func (h *SettingsAPIHandler) HandleUpdateSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Update settings"); err != nil {
		return
	}

	cfg, err := h.svc.SaveSettings(r.Context(), req.raw(), metrics.SourceAPI)
	if err != nil {
		respondServiceError(w, r, ErrMsgSaveSettingsFailed, err)
		return
	}

	logger.FromContext(r.Context()).Info(LogMsgSettingsAPISaved, "style_id", cfg.StyleID)
	respondJSON(w, http.StatusOK, SettingsResponse{
		Settings: cfg,
		HTML:     previewOne(h.svc, cfg),
	})
}

// HandlePreviewSettings renders a configuration in every style without storing it
// @Summary Preview badge settings
// @Tags admin
// @Accept json
// @Produce json
// @Security ApiKeyAuth
// @Param request body SettingsRequest true "Settings to preview"
// @Success 200 {object} PreviewResponse
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/admin/settings/preview [post]
func (h *SettingsAPIHandler) HandlePreviewSettings(w http.ResponseWriter, r *http.Request) {
	var req SettingsRequest
	if err := DecodeAndValidateRequest(r, w, &req, "Preview settings"); err != nil {
		return
	}

	cfg := badge.Normalize(req.raw())
	items := h.svc.Preview(cfg)

	resp := PreviewResponse{
		Settings: cfg,
		Styles:   make([]PreviewEntry, 0, len(items)),
	}
	for _, item := range items {
		entry := PreviewEntry{StyleID: item.StyleID, Name: item.Name, HTML: string(item.HTML)}
		if item.StyleID == cfg.StyleID {
			resp.HTML = entry.HTML
		}
		resp.Styles = append(resp.Styles, entry)
	}

	respondJSON(w, http.StatusOK, resp)
}

// previewOne renders cfg in its own style
func previewOne(svc salebadge.Service, cfg domain.BadgeConfig) string {
	for _, item := range svc.Preview(cfg) {
		if item.StyleID == cfg.StyleID {
			return string(item.HTML)
		}
	}
	return ""
}

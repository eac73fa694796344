package handler

import (
	"crypto/sha256"
	"encoding/hex"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/hooks"
)

// URLParamProductID is the chi route parameter naming the product
const URLParamProductID = "productID"

// SaleFlashRequest carries the product a sale badge is requested for
type SaleFlashRequest struct {
	ProductID string `json:"product_id" validate:"required,max=64,printascii"`
}

// HandleSaleFlash renders the sale_flash extension point for a product.
// With no producer registered the storefront default is returned.
// @Summary Sale badge fragment
// @Description Returns the HTML that replaces the storefront "Sale!" badge for a product card
// @Tags storefront
// @Produce html
// @Param productID path string true "Product ID"
// @Success 200 {string} string "HTML fragment"
// @Failure 400 {object} ValidationErrorResponse
// @Router /api/v1/products/{productID}/sale-flash [get]
func HandleSaleFlash(registry hooks.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		req := SaleFlashRequest{ProductID: chi.URLParam(r, URLParamProductID)}
		if err := GetValidator().ValidateStruct(req); err != nil {
			respondJSON(w, http.StatusBadRequest, ValidationErrorResponse{
				Error:  ErrMsgInvalidProductID,
				Fields: FormatValidationError(err),
			})
			return
		}

		product := domain.Product{
			ID:     req.ProductID,
			PostID: r.URL.Query().Get("post_id"),
		}
		html := registry.Apply(r.Context(), domain.HookSaleFlash, domain.DefaultSaleFlashHTML, product)

		w.Header().Set("Content-Type", ContentTypeHTML)
		w.Header().Set("Cache-Control", FragmentCacheControl)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(html))
	}
}

// HandleStylesheet serves the style rules for every badge. The body never
// changes while the process runs, so it is served with a strong ETag.
// @Summary Badge stylesheet
// @Tags storefront
// @Produce text/css
// @Success 200 {string} string "CSS"
// @Success 304
// @Router /assets/sale-badge.css [get]
func HandleStylesheet(stylesheet string) http.HandlerFunc {
	sum := sha256.Sum256([]byte(stylesheet))
	etag := `"` + hex.EncodeToString(sum[:8]) + `"`
	body := []byte(stylesheet)

	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("ETag", etag)
		w.Header().Set("Cache-Control", StylesheetCacheControl)

		if r.Header.Get("If-None-Match") == etag {
			w.WriteHeader(http.StatusNotModified)
			return
		}

		w.Header().Set("Content-Type", ContentTypeCSS)
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write(body)
	}
}

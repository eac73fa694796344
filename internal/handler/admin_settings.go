package handler

import (
	"embed"
	"html/template"
	"net/http"

	"golang.org/x/text/language"

	"github.com/osse101/SaleBadge_Go/internal/badge"
	"github.com/osse101/SaleBadge_Go/internal/domain"
	"github.com/osse101/SaleBadge_Go/internal/i18n"
	"github.com/osse101/SaleBadge_Go/internal/logger"
	"github.com/osse101/SaleBadge_Go/internal/metrics"
	"github.com/osse101/SaleBadge_Go/internal/salebadge"
)

//go:embed templates/*.html
var templatesFS embed.FS

var settingsTemplate = template.Must(template.ParseFS(templatesFS, "templates/settings.html"))

// Paths the settings page links to
const (
	SettingsPagePath = "/admin/settings"
	StylesheetPath   = "/assets/sale-badge.css"
)

// NonceManager creates and checks settings form tokens
type NonceManager interface {
	Create(action, subject string) string
	Verify(nonce, action, subject string) (int, error)
}

// SettingsPageHandler serves the HTML settings form
type SettingsPageHandler struct {
	svc        salebadge.Service
	nonces     NonceManager
	translator *i18n.Translator
}

// NewSettingsPageHandler creates a new settings page handler
func NewSettingsPageHandler(svc salebadge.Service, nonces NonceManager, translator *i18n.Translator) *SettingsPageHandler {
	return &SettingsPageHandler{
		svc:        svc,
		nonces:     nonces,
		translator: translator,
	}
}

type formFields struct {
	Label, Style, FontSize, FontWeight, Italic, Submit, Nonce string
}

var settingsFormFields = formFields{
	Label:      domain.FormFieldLabel,
	Style:      domain.FormFieldStyle,
	FontSize:   domain.FormFieldFontSize,
	FontWeight: domain.FormFieldFontWeight,
	Italic:     domain.FormFieldItalic,
	Submit:     domain.FormFieldSubmit,
	Nonce:      domain.FormFieldNonce,
}

type weightOption struct {
	Value string
	Label string
}

type settingsPageView struct {
	Lang          string
	T             func(key string, args ...interface{}) string
	Fields        formFields
	Config        domain.BadgeConfig
	Previews      []badge.PreviewItem
	FontSizes     []int
	FontWeights   []weightOption
	Nonce         string
	Notice        string
	Error         string
	FormAction    string
	StylesheetURL string
}

// HandleGet shows the form filled with the stored settings
func (h *SettingsPageHandler) HandleGet(w http.ResponseWriter, r *http.Request) {
	tag := h.translator.Match(r.Header.Get(HeaderAcceptLanguage))

	cfg, err := h.svc.GetSettings(r.Context())
	if err != nil {
		logger.FromContext(r.Context()).Error(ErrMsgGetSettingsFailed, "error", err)
		status, _ := mapServiceErrorToUserMessage(err)
		h.render(w, r, tag, status, domain.DefaultBadgeConfig(), "", h.translator.Text(tag, i18n.MsgErrorLoadFailed))
		return
	}

	h.render(w, r, tag, http.StatusOK, cfg, "", "")
}

// HandlePost saves a form submission. A post without the submit marker
// redisplays the page untouched; a bad nonce is refused with 403.
func (h *SettingsPageHandler) HandlePost(w http.ResponseWriter, r *http.Request) {
	log := logger.FromContext(r.Context())
	tag := h.translator.Match(r.Header.Get(HeaderAcceptLanguage))

	if err := r.ParseForm(); err != nil {
		log.Warn(ErrMsgInvalidForm, "error", err)
		http.Error(w, ErrMsgInvalidForm, http.StatusBadRequest)
		return
	}
	form := r.PostForm

	if !form.Has(domain.FormFieldSubmit) {
		log.Debug(LogMsgSubmitMarkerMissing)
		h.HandleGet(w, r)
		return
	}

	if _, err := h.nonces.Verify(form.Get(domain.FormFieldNonce), domain.NonceActionSave, adminSubject(r)); err != nil {
		log.Warn(LogMsgNonceRejected, "error", err)
		metrics.NonceRejected.Inc()
		w.Header().Set(HeaderContentLang, tag.String())
		http.Error(w, h.translator.Text(tag, i18n.MsgErrorInvalidNonce), http.StatusForbidden)
		return
	}

	raw := domain.RawBadgeConfig{
		Label:         form.Get(domain.FormFieldLabel),
		StyleID:       form.Get(domain.FormFieldStyle),
		FontSize:      form.Get(domain.FormFieldFontSize),
		FontWeight:    form.Get(domain.FormFieldFontWeight),
		ItalicPresent: form.Has(domain.FormFieldItalic),
	}

	cfg, err := h.svc.SaveSettings(r.Context(), raw, metrics.SourceForm)
	if err != nil {
		status, _ := mapServiceErrorToUserMessage(err)
		h.render(w, r, tag, status, badge.Normalize(raw), "", h.translator.Text(tag, i18n.MsgErrorSaveFailed))
		return
	}

	log.Info(LogMsgSettingsFormSaved, "style_id", cfg.StyleID)
	h.render(w, r, tag, http.StatusOK, cfg, h.translator.Text(tag, i18n.MsgNoticeSaved), "")
}

func (h *SettingsPageHandler) render(w http.ResponseWriter, r *http.Request, tag language.Tag, status int, cfg domain.BadgeConfig, notice, errMsg string) {
	printer := h.translator.Printer(tag)

	weights := make([]weightOption, 0, len(domain.FontWeights))
	for _, wgt := range domain.FontWeights {
		weights = append(weights, weightOption{Value: wgt, Label: printer.Sprintf(i18n.MsgWeightPrefix + wgt)})
	}

	sizes := make([]int, 0, domain.MaxFontSizePx-domain.MinFontSizePx+1)
	for px := domain.MinFontSizePx; px <= domain.MaxFontSizePx; px++ {
		sizes = append(sizes, px)
	}

	translate := func(key string, args ...interface{}) string {
		return printer.Sprintf(key, args...)
	}

	view := settingsPageView{
		Lang:          tag.String(),
		T:             translate,
		Fields:        settingsFormFields,
		Config:        cfg,
		Previews:      h.svc.Preview(cfg),
		FontSizes:     sizes,
		FontWeights:   weights,
		Nonce:         h.nonces.Create(domain.NonceActionSave, adminSubject(r)),
		Notice:        notice,
		Error:         errMsg,
		FormAction:    SettingsPagePath,
		StylesheetURL: StylesheetPath,
	}

	buf := getBuffer()
	defer putBuffer(buf)

	if err := settingsTemplate.Execute(buf, view); err != nil {
		logger.FromContext(r.Context()).Error(LogMsgTemplateFailed, "error", err)
		http.Error(w, ErrMsgRenderPageFailed, http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", ContentTypeHTML)
	w.Header().Set(HeaderContentLang, tag.String())
	w.Header().Set("Cache-Control", "no-store")
	w.WriteHeader(status)
	_, _ = buf.WriteTo(w)
	logger.FromContext(r.Context()).Debug(LogMsgSettingsPageRendered, "lang", tag.String(), "status", status)
}

// adminSubject binds nonces to the authenticated admin user
func adminSubject(r *http.Request) string {
	if user, _, ok := r.BasicAuth(); ok {
		return user
	}
	return ""
}

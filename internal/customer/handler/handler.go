package handler

import (
	"context"
	"encoding/json"
	"errors"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"github.com/go-chi/chi/v5"

	"onboarding/internal/customer/domain"
	"onboarding/internal/customer/link"
	"onboarding/internal/customer/models"
	"onboarding/internal/customer/risk"
	"onboarding/internal/customer/signup"
	"onboarding/internal/platform/metrics"
	"onboarding/internal/platform/middleware"
	"onboarding/pkg/platform/httputil"
	"onboarding/pkg/platform/middleware/admin"
	"onboarding/pkg/platform/middleware/metadata"
	"onboarding/pkg/platform/middleware/requesttime"
	"onboarding/pkg/requestcontext"
)

const maxBodyBytes = 1 << 20

// Service defines the signup operations exposed over HTTP.
type Service interface {
	Signup(ctx context.Context, req domain.CreateCustomerRequest) (*models.EventMetaInformation, error)
	ValidateFields(ctx context.Context, req domain.CreateCustomerRequest) signup.FieldErrors
	VerifyLink(ctx context.Context, token string) (*link.Claims, error)
}

// RiskModelStore replaces the current risk model.
type RiskModelStore interface {
	Store(ctx context.Context, model models.RiskModel) error
}

// Handler handles customer onboarding endpoints.
type Handler struct {
	logger     *slog.Logger
	service    Service
	metrics    *metrics.Metrics
	riskModels RiskModelStore
	adminHash  string
	timeout    time.Duration
}

// Option configures the Handler.
type Option func(*Handler)

// WithRiskModelAdmin enables PUT /admin/risk-model for callers presenting
// the token hashed in tokenHash.
func WithRiskModelAdmin(store RiskModelStore, tokenHash string) Option {
	return func(h *Handler) {
		h.riskModels = store
		h.adminHash = tokenHash
	}
}

// WithTimeout sets the per-request timeout.
func WithTimeout(d time.Duration) Option {
	return func(h *Handler) {
		h.timeout = d
	}
}

// New creates a new customer Handler.
func New(service Service, logger *slog.Logger, metrics *metrics.Metrics, opts ...Option) *Handler {
	h := &Handler{
		logger:  logger,
		service: service,
		metrics: metrics,
		timeout: 30 * time.Second,
	}
	for _, opt := range opts {
		opt(h)
	}
	return h
}

// Register registers the customer routes with the chi router.
func (h *Handler) Register(r chi.Router) {
	customerRouter := chi.NewRouter()
	customerRouter.Use(middleware.Recovery(h.logger))
	customerRouter.Use(middleware.RequestID)
	customerRouter.Use(metadata.ClientMetadata)
	customerRouter.Use(requesttime.Middleware)
	customerRouter.Use(middleware.Logger(h.logger))
	customerRouter.Use(middleware.Timeout(h.timeout))
	customerRouter.Use(middleware.ContentTypeJSON)
	customerRouter.Use(middleware.LatencyMiddleware(h.metrics))
	customerRouter.Post("/customers/signup", h.handleSignup)
	customerRouter.Post("/customers/validate", h.handleValidate)
	customerRouter.Get("/customers/verify", h.handleVerify)

	if h.riskModels != nil {
		customerRouter.With(admin.RequireAdminToken(h.adminHash, h.logger)).
			Put("/admin/risk-model", h.handlePutRiskModel)
	}

	r.Mount("/", customerRouter)
}

// handleSignup runs the signup pipeline.
func (h *Handler) handleSignup(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	req, ok := h.decodeSignupRequest(w, r)
	if !ok {
		return
	}

	event, err := h.service.Signup(ctx, req)
	if err != nil {
		h.writeServiceError(ctx, w, "signup", err)
		return
	}

	httputil.WriteJSON(w, http.StatusCreated, toSignupResponse(event))
}

// handleValidate reports field-level validation results without signing up.
func (h *Handler) handleValidate(w http.ResponseWriter, r *http.Request) {
	req, ok := h.decodeSignupRequest(w, r)
	if !ok {
		return
	}

	errs := h.service.ValidateFields(r.Context(), req)
	resp := ValidateResponse{Valid: len(errs) == 0}
	if !resp.Valid {
		resp.Errors = errs
	}
	httputil.WriteJSON(w, http.StatusOK, resp)
}

func (h *Handler) handleVerify(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	token := strings.TrimSpace(r.URL.Query().Get("token"))
	if token == "" {
		httputil.WriteError(w, badRequest("token is required"))
		return
	}

	claims, err := h.service.VerifyLink(ctx, token)
	if err != nil {
		h.writeServiceError(ctx, w, "verify link", err)
		return
	}
	httputil.WriteJSON(w, http.StatusOK, toVerifyResponse(claims))
}

func (h *Handler) handlePutRiskModel(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()
	var model models.RiskModel
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&model); err != nil {
		httputil.WriteError(w, badRequest("invalid request body"))
		return
	}
	if strings.TrimSpace(model.Version) == "" {
		httputil.WriteError(w, badRequest("version is required"))
		return
	}

	if err := h.riskModels.Store(ctx, model); err != nil {
		if errors.Is(err, risk.ErrBadModel) {
			httputil.WriteError(w, httputil.NewError(http.StatusBadRequest, "invalid_risk_model", err.Error()))
			return
		}
		h.writeServiceError(ctx, w, "store risk model", err)
		return
	}
	h.logger.InfoContext(ctx, "risk model replaced",
		"request_id", requestcontext.RequestID(ctx),
		"version", model.Version,
	)
	w.WriteHeader(http.StatusNoContent)
}

func (h *Handler) decodeSignupRequest(w http.ResponseWriter, r *http.Request) (domain.CreateCustomerRequest, bool) {
	ctx := r.Context()
	var body SignupRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&body); err != nil {
		h.logger.WarnContext(ctx, "invalid signup request",
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
		httputil.WriteError(w, badRequest("invalid request body"))
		return domain.CreateCustomerRequest{}, false
	}

	req, err := body.ToDomain()
	if err != nil {
		httputil.WriteError(w, badRequest(err.Error()))
		return domain.CreateCustomerRequest{}, false
	}
	return req, true
}

func (h *Handler) writeServiceError(ctx context.Context, w http.ResponseWriter, op string, err error) {
	httpErr := toHTTPError(err)
	if httpErr.Status >= http.StatusInternalServerError {
		h.logger.ErrorContext(ctx, "failed to "+op,
			"request_id", requestcontext.RequestID(ctx),
			"error", err.Error(),
		)
	}
	httputil.WriteError(w, httpErr)
}

package adapter

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"sync"

	"github.com/MKhiriev/go-school-link/internal/config"
	"github.com/MKhiriev/go-school-link/internal/logger"
	"github.com/MKhiriev/go-school-link/internal/utils"
	"github.com/MKhiriev/go-school-link/models"
	"github.com/go-resty/resty/v2"
)

// Remote Session API routes.
const (
	loginPath             = "/api/auth/login"
	associationsPath      = "/api/auth/associations"
	activeAssociationPath = "/api/auth/active-association"
	changePasswordPath    = "/api/auth/change-password"

	requestIDHeader = "X-Request-ID"
)

type httpServerAdapter struct {
	client *resty.Client

	mu    sync.RWMutex
	token string

	logger *logger.Logger
}

// NewHTTPServerAdapter constructs an HTTP/REST implementation of [ServerAdapter].
// It normalises and validates the base URL from adapterCfg.HTTPAddress and
// configures the underlying HTTP client with the resolved base URL and the
// request timeout as an upper bound for every call.
//
// Returns an error if adapterCfg.HTTPAddress is empty or cannot be parsed as a
// valid URL.
func NewHTTPServerAdapter(adapterCfg config.ClientAdapter, logger *logger.Logger) (ServerAdapter, error) {
	baseURL, err := normalizeBaseURL(adapterCfg.HTTPAddress)
	if err != nil {
		return nil, fmt.Errorf("invalid adapter http address: %w", err)
	}

	client := resty.New().
		SetBaseURL(baseURL).
		SetTimeout(adapterCfg.RequestTimeout).
		SetHeader("Accept", "application/json")

	return &httpServerAdapter{
		client: client,
		logger: logger,
	}, nil
}

func normalizeBaseURL(raw string) (string, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return "", fmt.Errorf("empty address")
	}

	if !strings.Contains(raw, "://") {
		raw = "http://" + raw
	}

	u, err := url.Parse(raw)
	if err != nil {
		return "", err
	}
	if u.Scheme == "" || u.Host == "" {
		return "", fmt.Errorf("address must include host and scheme")
	}

	return strings.TrimRight(u.String(), "/"), nil
}

// SetToken implements [ServerAdapter].
func (h *httpServerAdapter) SetToken(token string) {
	h.mu.Lock()
	defer h.mu.Unlock()
	h.token = strings.TrimSpace(token)
}

// Token implements [ServerAdapter].
func (h *httpServerAdapter) Token() string {
	h.mu.RLock()
	defer h.mu.RUnlock()
	return h.token
}

// Login implements [ServerAdapter]. It POSTs the credentials to
// POST /api/auth/login. The token is read from the body and, failing that,
// from the Authorization response header.
func (h *httpServerAdapter) Login(ctx context.Context, credentials models.Credentials) (models.LoginResult, error) {
	resp, err := h.request(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(wireLoginRequest{Email: credentials.Email, Password: credentials.Password}).
		Post(loginPath)
	if err != nil {
		return models.LoginResult{}, mapTransportError("login request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.LoginResult{}, err
	}

	var body wireLoginResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: decode login response: %v", ErrDecode, err)
	}

	headerToken, _ := utils.ParseBearerToken(resp.Header().Get("Authorization"))
	result, err := body.model(headerToken)
	if err != nil {
		return models.LoginResult{}, fmt.Errorf("%w: login response: %v", ErrDecode, err)
	}

	return result, nil
}

// GetAssociations implements [ServerAdapter]. It GETs /api/auth/associations.
func (h *httpServerAdapter) GetAssociations(ctx context.Context) ([]models.Association, error) {
	resp, err := h.authedRequest(ctx).Get(associationsPath)
	if err != nil {
		return nil, mapTransportError("get associations request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	var body []wireAssociation
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode associations: %v", ErrDecode, err)
	}

	list, err := associationsModel(body)
	if err != nil {
		return nil, fmt.Errorf("%w: associations: %v", ErrDecode, err)
	}
	return list, nil
}

// GetActiveAssociation implements [ServerAdapter]. It GETs
// /api/auth/active-association. 204 No Content, an empty body and a JSON
// null all mean "none designated".
func (h *httpServerAdapter) GetActiveAssociation(ctx context.Context) (*models.Association, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Cache-Control", "no-cache").
		Get(activeAssociationPath)
	if err != nil {
		return nil, mapTransportError("get active association request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return nil, err
	}

	raw := strings.TrimSpace(string(resp.Body()))
	if resp.StatusCode() == http.StatusNoContent || raw == "" || raw == "null" {
		return nil, nil
	}

	var body wireAssociation
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return nil, fmt.Errorf("%w: decode active association: %v", ErrDecode, err)
	}

	active, err := body.model()
	if err != nil {
		return nil, fmt.Errorf("%w: active association: %v", ErrDecode, err)
	}
	return &active, nil
}

// ChangePassword implements [ServerAdapter]. It POSTs to
// /api/auth/change-password.
func (h *httpServerAdapter) ChangePassword(ctx context.Context, change models.PasswordChange) (models.PasswordChangeResult, error) {
	resp, err := h.authedRequest(ctx).
		SetHeader("Content-Type", "application/json").
		SetBody(wireChangePasswordRequest{NewPassword: change.NewPassword, IsFirstLogin: change.IsFirstLogin}).
		Post(changePasswordPath)
	if err != nil {
		return models.PasswordChangeResult{}, mapTransportError("change password request", err)
	}
	if err = mapHTTPError(resp); err != nil {
		return models.PasswordChangeResult{}, err
	}

	var body wireChangePasswordResponse
	if err = json.Unmarshal(resp.Body(), &body); err != nil {
		return models.PasswordChangeResult{}, fmt.Errorf("%w: decode change password response: %v", ErrDecode, err)
	}

	return models.PasswordChangeResult{Success: body.Success.value, Message: body.Message}, nil
}

func (h *httpServerAdapter) request(ctx context.Context) *resty.Request {
	requestID := utils.RequestID(ctx)

	h.logger.Debug().
		Str("func", "httpServerAdapter.request").
		Str("request_id", requestID).
		Msg("outbound request")

	return h.client.R().
		SetContext(ctx).
		SetHeader(requestIDHeader, requestID)
}

func (h *httpServerAdapter) authedRequest(ctx context.Context) *resty.Request {
	req := h.request(ctx)
	if token := h.Token(); token != "" {
		req.SetHeader("Authorization", "Bearer "+token)
	}
	return req
}

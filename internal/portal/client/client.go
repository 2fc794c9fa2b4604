// Package client is the typed portal client. It owns transport concerns
// (encoding, bearer attachment, status translation, bounded waits) and
// nothing else; session state lives with the session manager and snapshots
// live with the coordinator.
package client

import (
	"context"
	"errors"
	"io"
	"net"
	"net/http"
	"net/url"
	"time"

	"github.com/go-resty/resty/v2"
	json "github.com/goccy/go-json"
	"github.com/google/uuid"

	"janseva/internal/portal/models"
	dErrors "janseva/pkg/domain-errors"
	"janseva/pkg/platform/httputil"
)

// TokenProvider supplies the bearer credential for authenticated calls. The
// session manager implements it; the client never stores a token itself, so
// two clients bound to two sessions cannot leak credentials across.
type TokenProvider interface {
	Token() (string, bool)
}

// UnauthorizedHandler is notified when the portal rejects an attached token,
// before the error is surfaced to the caller.
type UnauthorizedHandler interface {
	HandleUnauthorized()
}

// Config carries the client's construction parameters.
type Config struct {
	// BaseURL is the portal root without the /api prefix.
	BaseURL string
	// RequestTimeout bounds every call except RunEligibilityCheck.
	RequestTimeout time.Duration
	// EligibilityTimeout bounds RunEligibilityCheck, which waits on a
	// server-side reasoning step.
	EligibilityTimeout time.Duration
}

// Client performs the portal's remote operations. All methods are safe for
// concurrent use once BindSession has been called.
type Client struct {
	http               *resty.Client
	requestTimeout     time.Duration
	eligibilityTimeout time.Duration
	tokens             TokenProvider
	onUnauthorized     UnauthorizedHandler
}

// New builds a portal client. Call BindSession before issuing authenticated
// operations.
func New(cfg Config) *Client {
	if cfg.RequestTimeout <= 0 {
		cfg.RequestTimeout = 10 * time.Second
	}
	if cfg.EligibilityTimeout <= 0 {
		cfg.EligibilityTimeout = 45 * time.Second
	}

	r := resty.New().
		SetBaseURL(cfg.BaseURL + "/api").
		SetHeader("Accept", "application/json")
	r.JSONMarshal = json.Marshal
	r.JSONUnmarshal = json.Unmarshal
	r.OnBeforeRequest(func(_ *resty.Client, req *resty.Request) error {
		req.SetHeader("X-Request-ID", uuid.NewString())
		return nil
	})

	return &Client{
		http:               r,
		requestTimeout:     cfg.RequestTimeout,
		eligibilityTimeout: cfg.EligibilityTimeout,
	}
}

// BindSession attaches the credential source and the forced-logout hook.
// Both are usually the same object (the session manager).
func (c *Client) BindSession(tokens TokenProvider, onUnauthorized UnauthorizedHandler) {
	c.tokens = tokens
	c.onUnauthorized = onUnauthorized
}

// Login exchanges credentials for a bearer token. No token is attached to
// this call and a 401 here never triggers the forced-logout hook.
func (c *Client) Login(ctx context.Context, username, password string) (string, error) {
	var out models.LoginResponse
	err := c.do(ctx, c.requestTimeout, http.MethodPost, "/login", call{
		body:   models.LoginRequest{Username: username, Password: password},
		result: &out,
	})
	if err != nil {
		return "", err
	}
	if out.AccessToken == "" {
		return "", dErrors.New(dErrors.CodeInternal, "malformed token response")
	}
	return out.AccessToken, nil
}

// Register creates an account. Validation runs client-side first so obvious
// field problems never hit the wire.
func (c *Client) Register(ctx context.Context, req models.RegisterRequest) error {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return err
	}
	return c.do(ctx, c.requestTimeout, http.MethodPost, "/register", call{body: req})
}

// CurrentUser fetches the profile behind the attached token.
func (c *Client) CurrentUser(ctx context.Context) (models.UserProfile, error) {
	var out models.UserProfile
	err := c.do(ctx, c.requestTimeout, http.MethodGet, "/me", call{result: &out, authed: true})
	return out, err
}

// FamilyProfile fetches the household record. A CodeNotFound error means the
// user has not submitted one yet; callers treat that as a valid state.
func (c *Client) FamilyProfile(ctx context.Context) (models.FamilyProfile, error) {
	var out models.FamilyProfile
	err := c.do(ctx, c.requestTimeout, http.MethodGet, "/family", call{result: &out, authed: true})
	return out, err
}

// SubmitFamilyProfile creates the household record. The server rejects a
// second submission with a conflict.
func (c *Client) SubmitFamilyProfile(ctx context.Context, req models.FamilyProfileRequest) (models.FamilyProfile, error) {
	req.Normalize()
	if err := req.Validate(); err != nil {
		return models.FamilyProfile{}, err
	}
	var out models.FamilyProfile
	err := c.do(ctx, c.requestTimeout, http.MethodPost, "/family", call{body: req, result: &out, authed: true})
	return out, err
}

// RunEligibilityCheck triggers server-side recomputation of the scheme set.
// It returns only an acknowledgement; callers re-fetch EligibleSchemes
// afterward. The wait is bounded by the eligibility timeout and a timeout is
// distinguishable (CodeTimeout) from other transport failures.
func (c *Client) RunEligibilityCheck(ctx context.Context) error {
	return c.do(ctx, c.eligibilityTimeout, http.MethodPost, "/check-eligibility", call{authed: true})
}

// EligibleSchemes fetches the current eligibility projection in server order.
func (c *Client) EligibleSchemes(ctx context.Context) ([]models.SchemeEligibility, error) {
	var out models.SchemesResponse
	err := c.do(ctx, c.requestTimeout, http.MethodGet, "/eligible-schemes", call{result: &out, authed: true})
	return out.Schemes, err
}

// ApplyToScheme submits an application for one scheme by name.
func (c *Client) ApplyToScheme(ctx context.Context, schemeName string) error {
	path := "/apply-scheme/" + url.PathEscape(schemeName)
	return c.do(ctx, c.requestTimeout, http.MethodPost, path, call{authed: true})
}

// Notifications fetches the notification list in server order (newest first).
func (c *Client) Notifications(ctx context.Context) ([]models.Notification, error) {
	var out models.NotificationsResponse
	err := c.do(ctx, c.requestTimeout, http.MethodGet, "/notifications", call{result: &out, authed: true})
	return out.Notifications, err
}

// MarkNotificationRead marks a single notification as read.
func (c *Client) MarkNotificationRead(ctx context.Context, id string) error {
	path := "/notifications/" + url.PathEscape(id) + "/read"
	return c.do(ctx, c.requestTimeout, http.MethodPut, path, call{authed: true})
}

// UploadDocument stores a supporting document and returns the stored
// filename.
func (c *Client) UploadDocument(ctx context.Context, documentType, filename string, content io.Reader) (string, error) {
	fields := make(map[string]string)
	if documentType == "" {
		fields["document_type"] = "document type is required"
	}
	if filename == "" {
		fields["file"] = "file is required"
	}
	if len(fields) > 0 {
		return "", dErrors.WithFields(dErrors.CodeValidation, "invalid document upload", fields)
	}

	ctx, cancel := context.WithTimeout(ctx, c.requestTimeout)
	defer cancel()

	var out models.UploadResponse
	var apiErr httputil.ErrorResponse
	resp, err := c.newRequest(ctx, call{authed: true}).
		SetFileReader("file", filename, content).
		SetFormData(map[string]string{"document_type": documentType}).
		SetResult(&out).
		SetError(&apiErr).
		Post("/upload-document")
	if cerr := c.check(resp, err, &apiErr); cerr != nil {
		return "", cerr
	}
	return out.Filename, nil
}

// call bundles the per-operation request parameters.
type call struct {
	body   any
	result any
	authed bool
}

func (c *Client) newRequest(ctx context.Context, p call) *resty.Request {
	req := c.http.R().SetContext(ctx)
	if p.authed {
		if c.tokens != nil {
			if token, ok := c.tokens.Token(); ok {
				req.SetAuthToken(token)
			}
		}
	}
	return req
}

func (c *Client) do(ctx context.Context, timeout time.Duration, method, path string, p call) error {
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	req := c.newRequest(ctx, p)
	if p.body != nil {
		req.SetHeader("Content-Type", "application/json")
		req.SetBody(p.body)
	}
	if p.result != nil {
		req.SetResult(p.result)
	}
	var apiErr httputil.ErrorResponse
	req.SetError(&apiErr)

	resp, err := req.Execute(method, path)
	return c.check(resp, err, &apiErr)
}

// check translates a resty outcome into a typed domain error. A 401 on a
// request that carried a bearer token fires the forced-logout hook before
// the error is surfaced, so the client never retains a rejected token.
func (c *Client) check(resp *resty.Response, err error, apiErr *httputil.ErrorResponse) error {
	if err != nil {
		if isTimeout(err) {
			return dErrors.Wrap(err, dErrors.CodeTimeout, "portal call timed out")
		}
		return dErrors.Wrap(err, dErrors.CodeUnavailable, "portal unreachable")
	}
	if resp.IsSuccess() {
		return nil
	}

	switch resp.StatusCode() {
	case http.StatusUnauthorized:
		if resp.Request.Header.Get("Authorization") != "" && c.onUnauthorized != nil {
			c.onUnauthorized.HandleUnauthorized()
		}
		return dErrors.New(dErrors.CodeUnauthorized, messageOr(apiErr, "invalid credentials"))
	case http.StatusBadRequest:
		if apiErr.Error == string(dErrors.CodeValidation) {
			return dErrors.WithFields(dErrors.CodeValidation, messageOr(apiErr, "invalid request"), apiErr.Fields)
		}
		return dErrors.New(dErrors.CodeBadRequest, messageOr(apiErr, "bad request"))
	case http.StatusNotFound:
		return dErrors.New(dErrors.CodeNotFound, messageOr(apiErr, "not found"))
	case http.StatusConflict:
		return dErrors.New(dErrors.CodeConflict, messageOr(apiErr, "conflict"))
	case http.StatusBadGateway, http.StatusServiceUnavailable, http.StatusGatewayTimeout:
		return dErrors.Newf(dErrors.CodeUnavailable, "portal unavailable (status %d)", resp.StatusCode())
	default:
		return dErrors.Newf(dErrors.CodeInternal, "unexpected portal response (status %d)", resp.StatusCode())
	}
}

func messageOr(apiErr *httputil.ErrorResponse, fallback string) string {
	if apiErr != nil && apiErr.Description != "" {
		return apiErr.Description
	}
	return fallback
}

func isTimeout(err error) bool {
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr) && netErr.Timeout()
}

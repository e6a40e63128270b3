package meta

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"net/url"
	"strings"
	"time"

	"github.com/cenkalti/backoff/v5"
	"golang.org/x/time/rate"

	"ads-firewall/internal/config/configs"
	"ads-firewall/internal/metrics"
)

// maxErrorBody caps how much of a failed response is read for decoding.
const maxErrorBody = 64 << 10

// Client talks to the Graph API. It implements port.MetricsSource and
// port.CampaignActuator. A Client is safe for concurrent use.
type Client struct {
	http     *http.Client
	baseURL  string
	token    string
	proof    string
	timeout  time.Duration
	limiter  *rate.Limiter
	logger   *slog.Logger
	statuses []string

	minorUnits   bool
	maxPages     int
	pauseRetries uint
	pauseBackOff func() backoff.BackOff
}

// New builds a client from cfg. Credentials are taken from cfg only.
func New(cfg configs.Meta, logger *slog.Logger) *Client {
	c := &Client{
		http:         &http.Client{},
		baseURL:      strings.TrimRight(cfg.BaseURL, "/") + "/" + cfg.APIVersion,
		token:        cfg.AccessToken,
		timeout:      cfg.Timeout,
		logger:       logger,
		statuses:     cfg.EffectiveStatuses,
		minorUnits:   cfg.BudgetMinorUnits,
		maxPages:     maxPages,
		pauseRetries: cfg.PauseRetries,
		pauseBackOff: func() backoff.BackOff { return backoff.NewExponentialBackOff() },
	}
	if cfg.AppSecret != "" {
		c.proof = appSecretProof(cfg.AppSecret, cfg.AccessToken)
	}
	if cfg.RateLimit > 0 {
		c.limiter = rate.NewLimiter(rate.Limit(cfg.RateLimit), cfg.RateBurst)
	}
	return c
}

// appSecretProof is the hex HMAC-SHA256 of the access token keyed by the app
// secret.
func appSecretProof(secret, token string) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write([]byte(token))
	return hex.EncodeToString(mac.Sum(nil))
}

func (c *Client) wait(ctx context.Context) error {
	if c.limiter == nil {
		return nil
	}
	return c.limiter.Wait(ctx)
}

// endpoint resolves a Graph path (e.g. "act_1/campaigns") against the base
// URL.
func (c *Client) endpoint(path string, query url.Values) string {
	u := c.baseURL + "/" + strings.TrimLeft(path, "/")
	if len(query) > 0 {
		u += "?" + query.Encode()
	}
	return u
}

// get performs a GET on an absolute URL and decodes the JSON body into out.
func (c *Client) get(ctx context.Context, op, rawURL string, out any) error {
	return c.do(ctx, op, http.MethodGet, rawURL, nil, out)
}

// post submits form as application/x-www-form-urlencoded.
func (c *Client) post(ctx context.Context, op, rawURL string, form url.Values, out any) error {
	return c.do(ctx, op, http.MethodPost, rawURL, form, out)
}

func (c *Client) do(ctx context.Context, op, method, rawURL string, form url.Values, out any) (err error) {
	start := time.Now()
	defer func() {
		result := metrics.ResultOK
		if err != nil {
			result = metrics.ResultFailed
		}
		metrics.UpstreamRequests.WithLabelValues(op, result).Inc()
		metrics.UpstreamLatency.WithLabelValues(op).Observe(time.Since(start).Seconds())
	}()

	if c.timeout > 0 {
		var cancel context.CancelFunc
		ctx, cancel = context.WithTimeout(ctx, c.timeout)
		defer cancel()
	}
	if err = c.wait(ctx); err != nil {
		return fmt.Errorf("%w: rate limiter: %v", ErrUnavailable, err)
	}

	u, err := url.Parse(rawURL)
	if err != nil {
		return fmt.Errorf("parse url: %w", err)
	}

	var body io.Reader
	if method == http.MethodGet {
		q := u.Query()
		c.sign(q)
		u.RawQuery = q.Encode()
	} else {
		if form == nil {
			form = url.Values{}
		}
		c.sign(form)
		body = strings.NewReader(form.Encode())
	}

	req, err := http.NewRequestWithContext(ctx, method, u.String(), body)
	if err != nil {
		return fmt.Errorf("build %s request: %w", op, err)
	}
	if c.token != "" {
		req.Header.Set("Authorization", "Bearer "+c.token)
	}
	if body != nil {
		req.Header.Set("Content-Type", "application/x-www-form-urlencoded")
	}

	resp, err := c.http.Do(req)
	if err != nil {
		// *url.Error repeats the request URL; keep only the cause.
		var urlErr *url.Error
		if errors.As(err, &urlErr) {
			err = urlErr.Err
		}
		return fmt.Errorf("%w: %s %s: %v", ErrUnavailable, method, op, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= http.StatusBadRequest {
		return decodeError(resp)
	}
	if out == nil {
		_, _ = io.Copy(io.Discard, resp.Body)
		return nil
	}
	if err = json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("decode %s response: %w", op, err)
	}
	return nil
}

// sign prepares a query or form for the Authorization header. Paging URLs
// returned by the API embed access_token; it is stripped so the token never
// travels in a URL.
func (c *Client) sign(v url.Values) {
	v.Del("access_token")
	if c.proof != "" {
		v.Set("appsecret_proof", c.proof)
	}
}

func decodeError(resp *http.Response) error {
	raw, _ := io.ReadAll(io.LimitReader(resp.Body, maxErrorBody))
	var envelope struct {
		Error *APIError `json:"error"`
	}
	if err := json.Unmarshal(raw, &envelope); err != nil || envelope.Error == nil {
		return &APIError{
			HTTPStatus: resp.StatusCode,
			Message:    strings.TrimSpace(string(raw)),
		}
	}
	envelope.Error.HTTPStatus = resp.StatusCode
	return envelope.Error
}

// AccountInfo is what Ping reports about the configured ad account.
type AccountInfo struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Ping verifies the token by reading the ad account's id and name.
func (c *Client) Ping(ctx context.Context, accountID string) (AccountInfo, error) {
	var info AccountInfo
	q := url.Values{"fields": {"id,name"}}
	if err := c.get(ctx, "ping", c.endpoint(accountID, q), &info); err != nil {
		return AccountInfo{}, fmt.Errorf("ping account %s: %w", accountID, err)
	}
	return info, nil
}

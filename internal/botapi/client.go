// Package botapi is a client for the chat platform's bot HTTP API.
//
// Every method makes exactly one HTTP call. The client waits on a local rate
// limiter before each call and never retries; callers decide what a failure
// means. Failures are returned as *Error.
package botapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
	"golang.org/x/time/rate"
)

const tracerName = "warden/internal/botapi"

// Config holds the connection settings.
type Config struct {
	Token   string
	BaseURL string
	Timeout time.Duration
	// Rate is the sustained request rate per second.
	Rate float64
}

// Client talks to the bot API.
type Client struct {
	baseURL    string
	token      string
	httpClient *http.Client
	limiter    *rate.Limiter
	tracer     trace.Tracer
	logger     *slog.Logger
}

type Option func(*Client)

// WithHTTPClient replaces the default HTTP client.
func WithHTTPClient(c *http.Client) Option {
	return func(cl *Client) {
		cl.httpClient = c
	}
}

func WithLogger(logger *slog.Logger) Option {
	return func(cl *Client) {
		cl.logger = logger
	}
}

// New builds a Client.
func New(cfg Config, opts ...Option) (*Client, error) {
	if cfg.Token == "" {
		return nil, fmt.Errorf("bot token is required")
	}
	if cfg.BaseURL == "" {
		return nil, fmt.Errorf("base URL is required")
	}
	if cfg.Rate <= 0 {
		return nil, fmt.Errorf("rate must be positive")
	}
	burst := int(cfg.Rate)
	if burst < 1 {
		burst = 1
	}
	c := &Client{
		baseURL:    strings.TrimRight(cfg.BaseURL, "/"),
		token:      cfg.Token,
		httpClient: &http.Client{Timeout: cfg.Timeout},
		limiter:    rate.NewLimiter(rate.Limit(cfg.Rate), burst),
		tracer:     otel.Tracer(tracerName),
		logger:     slog.Default(),
	}
	for _, opt := range opts {
		opt(c)
	}
	return c, nil
}

// GetMe returns the bot's own user.
func (c *Client) GetMe(ctx context.Context) (User, error) {
	var u User
	err := c.call(ctx, "getMe", struct{}{}, &u)
	return u, err
}

// GetChatMember returns userID's standing in chatID.
func (c *Client) GetChatMember(ctx context.Context, chatID, userID int64) (ChatMember, error) {
	var m ChatMember
	err := c.call(ctx, "getChatMember", map[string]int64{"chat_id": chatID, "user_id": userID}, &m)
	return m, err
}

// GetChatJoinRequests lists up to limit pending join requests for chatID.
// offsetUserID continues a previous page; zero starts from the beginning.
func (c *Client) GetChatJoinRequests(ctx context.Context, chatID int64, limit int, offsetUserID int64) ([]ChatJoinRequest, error) {
	params := struct {
		ChatID       int64 `json:"chat_id"`
		Limit        int   `json:"limit"`
		OffsetUserID int64 `json:"offset_user_id,omitempty"`
	}{chatID, limit, offsetUserID}

	var reqs []ChatJoinRequest
	err := c.call(ctx, "getChatJoinRequests", params, &reqs)
	return reqs, err
}

// ApproveChatJoinRequest admits userID into chatID.
func (c *Client) ApproveChatJoinRequest(ctx context.Context, chatID, userID int64) error {
	var ok bool
	return c.call(ctx, "approveChatJoinRequest", map[string]int64{"chat_id": chatID, "user_id": userID}, &ok)
}

// DeclineChatJoinRequest rejects userID's request to join chatID.
func (c *Client) DeclineChatJoinRequest(ctx context.Context, chatID, userID int64) error {
	var ok bool
	return c.call(ctx, "declineChatJoinRequest", map[string]int64{"chat_id": chatID, "user_id": userID}, &ok)
}

// GetUpdates long-polls for new updates.
func (c *Client) GetUpdates(ctx context.Context, params GetUpdatesParams) ([]Update, error) {
	var updates []Update
	err := c.call(ctx, "getUpdates", params, &updates)
	return updates, err
}

// SendMessage posts text to chatID, optionally as a reply.
func (c *Client) SendMessage(ctx context.Context, chatID int64, text string, replyTo int64) (Message, error) {
	params := struct {
		ChatID           int64  `json:"chat_id"`
		Text             string `json:"text"`
		ReplyToMessageID int64  `json:"reply_to_message_id,omitempty"`
	}{chatID, text, replyTo}

	var msg Message
	err := c.call(ctx, "sendMessage", params, &msg)
	return msg, err
}

func (c *Client) call(ctx context.Context, method string, params, out any) (err error) {
	ctx, span := c.tracer.Start(ctx, "botapi."+method,
		trace.WithSpanKind(trace.SpanKindClient),
		trace.WithAttributes(attribute.String("botapi.method", method)),
	)
	defer func() {
		if err != nil {
			span.RecordError(err)
			span.SetStatus(codes.Error, string(CategoryOf(err)))
		}
		span.End()
	}()

	if err := c.limiter.Wait(ctx); err != nil {
		return transportError(method, err)
	}

	body, err := json.Marshal(params)
	if err != nil {
		return &Error{Category: CategoryBadRequest, Method: method, Err: fmt.Errorf("encode params: %w", err)}
	}

	// The token is part of the path and must never reach logs or spans.
	url := c.baseURL + "/bot" + c.token + "/" + method
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return &Error{Category: CategoryBadRequest, Method: method, Err: fmt.Errorf("build request: %w", err)}
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		if !isContextError(ctx.Err()) {
			c.logger.DebugContext(ctx, "bot api request failed", "method", method, "error", redact(err.Error(), c.token))
		}
		return transportError(method, redactError{err: err, token: c.token})
	}
	defer resp.Body.Close()
	span.SetAttributes(attribute.Int("http.response.status_code", resp.StatusCode))

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return transportError(method, fmt.Errorf("read response: %w", err))
	}

	var env envelope
	if err := json.Unmarshal(raw, &env); err != nil {
		if resp.StatusCode >= http.StatusInternalServerError {
			return &Error{Category: CategoryTransient, Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
		}
		return &Error{Category: CategoryBadRequest, Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode response: %w", err)}
	}

	if !env.OK {
		status := env.ErrorCode
		if status == 0 {
			status = resp.StatusCode
		}
		retryAfter := 0
		if env.Parameters != nil {
			retryAfter = env.Parameters.RetryAfter
		}
		return mapResponse(method, status, env.Description, retryAfter)
	}

	if out == nil || len(env.Result) == 0 {
		return nil
	}
	if err := json.Unmarshal(env.Result, out); err != nil {
		return &Error{Category: CategoryBadRequest, Method: method, StatusCode: resp.StatusCode, Err: fmt.Errorf("decode result: %w", err)}
	}
	return nil
}

// redactError hides the bot token that net/http embeds in *url.Error messages.
type redactError struct {
	err   error
	token string
}

func (e redactError) Error() string { return redact(e.err.Error(), e.token) }
func (e redactError) Unwrap() error { return e.err }

func redact(s, token string) string {
	if token == "" {
		return s
	}
	return strings.ReplaceAll(s, token, "<redacted>")
}

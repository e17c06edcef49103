package botapi

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/suite"
)

const testToken = "123456:secret-token"

type recordedCall struct {
	Path   string
	Params map[string]any
}

type ClientSuite struct {
	suite.Suite
	server  *httptest.Server
	client  *Client
	calls   []recordedCall
	respond func(w http.ResponseWriter, method string)
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientSuite))
}

func (s *ClientSuite) SetupTest() {
	s.calls = nil
	s.respond = func(w http.ResponseWriter, _ string) {
		writeJSON(w, http.StatusOK, `{"ok":true,"result":true}`)
	}
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		body, _ := io.ReadAll(r.Body)
		params := map[string]any{}
		_ = json.Unmarshal(body, &params)
		s.calls = append(s.calls, recordedCall{Path: r.URL.Path, Params: params})
		method := r.URL.Path[strings.LastIndex(r.URL.Path, "/")+1:]
		s.respond(w, method)
	}))

	client, err := New(Config{Token: testToken, BaseURL: s.server.URL, Timeout: 5 * time.Second, Rate: 1000})
	s.Require().NoError(err)
	s.client = client
}

func (s *ClientSuite) TearDownTest() {
	s.server.Close()
}

func writeJSON(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = io.WriteString(w, body)
}

// =============================================================================
// Construction
// =============================================================================

func (s *ClientSuite) TestNewValidation() {
	s.Run("token is required", func() {
		_, err := New(Config{BaseURL: "http://x", Rate: 1})
		s.Require().Error(err)
		s.Contains(err.Error(), "token is required")
	})

	s.Run("rate must be positive", func() {
		_, err := New(Config{Token: "t", BaseURL: "http://x"})
		s.Require().Error(err)
	})
}

// =============================================================================
// Requests
// =============================================================================

func (s *ClientSuite) TestGetChatMember() {
	s.respond = func(w http.ResponseWriter, method string) {
		s.Equal("getChatMember", method)
		writeJSON(w, http.StatusOK, `{"ok":true,"result":{"status":"member","user":{"id":42,"is_bot":false,"first_name":"A"},"joined_at":1700000000}}`)
	}

	member, err := s.client.GetChatMember(context.Background(), -100123, 42)
	s.Require().NoError(err)
	s.Equal(StatusMember, member.Status)
	s.Equal(int64(42), member.User.ID)
	s.Require().NotNil(member.JoinedTime())
	s.Equal(time.Unix(1700000000, 0).UTC(), *member.JoinedTime())

	s.Require().Len(s.calls, 1)
	s.Equal("/bot"+testToken+"/getChatMember", s.calls[0].Path)
	s.Equal(float64(-100123), s.calls[0].Params["chat_id"])
	s.Equal(float64(42), s.calls[0].Params["user_id"])
}

func (s *ClientSuite) TestGetChatMemberWithoutJoinDate() {
	s.respond = func(w http.ResponseWriter, _ string) {
		writeJSON(w, http.StatusOK, `{"ok":true,"result":{"status":"member","user":{"id":42,"is_bot":false,"first_name":"A"}}}`)
	}

	member, err := s.client.GetChatMember(context.Background(), -1, 42)
	s.Require().NoError(err)
	s.Nil(member.JoinedTime())
}

func (s *ClientSuite) TestGetChatJoinRequests() {
	s.respond = func(w http.ResponseWriter, _ string) {
		writeJSON(w, http.StatusOK, `{"ok":true,"result":[
			{"chat":{"id":-5,"type":"supergroup"},"from":{"id":1,"is_bot":false,"first_name":"a"},"date":1},
			{"chat":{"id":-5,"type":"supergroup"},"from":{"id":2,"is_bot":false,"first_name":"b"},"date":2}
		]}`)
	}

	reqs, err := s.client.GetChatJoinRequests(context.Background(), -5, 100, 0)
	s.Require().NoError(err)
	s.Require().Len(reqs, 2)
	s.Equal(int64(1), reqs[0].From.ID)
	s.Equal(int64(2), reqs[1].From.ID)

	s.Equal(float64(100), s.calls[0].Params["limit"])
	_, hasOffset := s.calls[0].Params["offset_user_id"]
	s.False(hasOffset, "zero offset is omitted")
}

func (s *ClientSuite) TestApproveAndDecline() {
	ctx := context.Background()
	s.Require().NoError(s.client.ApproveChatJoinRequest(ctx, -5, 7))
	s.Require().NoError(s.client.DeclineChatJoinRequest(ctx, -5, 8))

	s.Require().Len(s.calls, 2)
	s.True(strings.HasSuffix(s.calls[0].Path, "/approveChatJoinRequest"))
	s.True(strings.HasSuffix(s.calls[1].Path, "/declineChatJoinRequest"))
	s.Equal(float64(8), s.calls[1].Params["user_id"])
}

func (s *ClientSuite) TestGetUpdates() {
	s.respond = func(w http.ResponseWriter, _ string) {
		writeJSON(w, http.StatusOK, `{"ok":true,"result":[
			{"update_id":10,"chat_join_request":{"chat":{"id":-5,"type":"supergroup"},"from":{"id":1,"is_bot":false,"first_name":"a"},"date":1}},
			{"update_id":11,"chat_member":{"chat":{"id":-5,"type":"supergroup"},"from":{"id":9,"is_bot":false,"first_name":"adm"},"date":1,
				"old_chat_member":{"status":"left","user":{"id":1,"is_bot":false,"first_name":"a"}},
				"new_chat_member":{"status":"member","user":{"id":1,"is_bot":false,"first_name":"a"}}}},
			{"update_id":12,"message":{"message_id":3,"chat":{"id":77,"type":"private"},"date":1,"text":"/process_pending"}}
		]}`)
	}

	updates, err := s.client.GetUpdates(context.Background(), GetUpdatesParams{
		Offset:         10,
		Timeout:        30,
		AllowedUpdates: []string{UpdateMessage, UpdateChatJoinRequest, UpdateChatMember},
	})
	s.Require().NoError(err)
	s.Require().Len(updates, 3)
	s.Equal(UpdateChatJoinRequest, updates[0].Kind())
	s.Equal(UpdateChatMember, updates[1].Kind())
	s.Equal(UpdateMessage, updates[2].Kind())
	s.Equal(float64(30), s.calls[0].Params["timeout"])
	s.Len(s.calls[0].Params["allowed_updates"], 3)
}

func (s *ClientSuite) TestSendMessage() {
	s.respond = func(w http.ResponseWriter, _ string) {
		writeJSON(w, http.StatusOK, `{"ok":true,"result":{"message_id":5,"chat":{"id":77,"type":"private"},"date":1,"text":"done"}}`)
	}

	msg, err := s.client.SendMessage(context.Background(), 77, "done", 3)
	s.Require().NoError(err)
	s.Equal(int64(5), msg.MessageID)
	s.Equal("done", s.calls[0].Params["text"])
	s.Equal(float64(3), s.calls[0].Params["reply_to_message_id"])
}

// =============================================================================
// Error mapping
// =============================================================================

func (s *ClientSuite) TestErrorCategories() {
	tests := []struct {
		name     string
		status   int
		body     string
		category Category
	}{
		{"rate limited", 429, `{"ok":false,"error_code":429,"description":"Too Many Requests: retry after 3","parameters":{"retry_after":3}}`, CategoryRateLimited},
		{"unauthorized", 401, `{"ok":false,"error_code":401,"description":"Unauthorized"}`, CategoryUnauthorized},
		{"forbidden", 403, `{"ok":false,"error_code":403,"description":"Forbidden: bot was kicked from the supergroup chat"}`, CategoryPermissionDenied},
		{"user not found", 400, `{"ok":false,"error_code":400,"description":"Bad Request: user not found"}`, CategoryNotFound},
		{"participant invalid", 400, `{"ok":false,"error_code":400,"description":"Bad Request: PARTICIPANT_ID_INVALID"}`, CategoryNotFound},
		{"not admin", 400, `{"ok":false,"error_code":400,"description":"Bad Request: not enough rights to manage join requests"}`, CategoryPermissionDenied},
		{"other bad request", 400, `{"ok":false,"error_code":400,"description":"Bad Request: message text is empty"}`, CategoryBadRequest},
		{"server error", 502, `{"ok":false,"error_code":502,"description":"Bad Gateway"}`, CategoryTransient},
		{"garbage 5xx", 503, `<html>unavailable</html>`, CategoryTransient},
	}

	for _, tt := range tests {
		s.Run(tt.name, func() {
			s.respond = func(w http.ResponseWriter, _ string) {
				writeJSON(w, tt.status, tt.body)
			}
			_, err := s.client.GetChatMember(context.Background(), -1, 1)
			s.Require().Error(err)

			var be *Error
			s.Require().True(errors.As(err, &be))
			s.Equal(tt.category, be.Category)
			s.Equal("getChatMember", be.Method)
			s.Equal(tt.category, CategoryOf(err))
		})
	}
}

func (s *ClientSuite) TestRateLimitedCarriesRetryAfter() {
	s.respond = func(w http.ResponseWriter, _ string) {
		writeJSON(w, 429, `{"ok":false,"error_code":429,"description":"Too Many Requests","parameters":{"retry_after":7}}`)
	}
	err := s.client.ApproveChatJoinRequest(context.Background(), -1, 1)

	var be *Error
	s.Require().True(errors.As(err, &be))
	s.Equal(7*time.Second, be.RetryAfter)
	s.True(be.Retryable())
}

func (s *ClientSuite) TestTransportErrorHidesToken() {
	s.server.Close()

	_, err := s.client.GetMe(context.Background())
	s.Require().Error(err)
	s.Equal(CategoryTransient, CategoryOf(err))
	s.NotContains(err.Error(), testToken)
}

func (s *ClientSuite) TestCancelledContext() {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := s.client.GetMe(ctx)
	s.Require().Error(err)
	s.True(errors.Is(err, context.Canceled))
}

func (s *ClientSuite) TestIsNotFound() {
	s.True(IsNotFound(&Error{Category: CategoryNotFound}))
	s.False(IsNotFound(&Error{Category: CategoryTransient}))
	s.False(IsNotFound(errors.New("plain")))
	s.Equal(CategoryTransient, CategoryOf(errors.New("plain")))
}

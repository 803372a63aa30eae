package httpserver_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"
	"time"

	"addressbook/contact"
	"addressbook/errs"
	"addressbook/pkg/config"

	sentrygo "github.com/getsentry/sentry-go"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{AppEnv: "test"}
}

type apiResponse struct {
	Success bool              `json:"success"`
	Code    string            `json:"code"`
	Message string            `json:"message"`
	Result  json.RawMessage   `json:"result"`
	Errors  []errs.FieldError `json:"errors"`
	Info    string            `json:"info"`
}

func decodeAPIResponse(t *testing.T, rec *httptest.ResponseRecorder) apiResponse {
	t.Helper()
	var resp apiResponse
	require.NoError(t, json.Unmarshal(rec.Body.Bytes(), &resp), "Failed to decode response: %s", rec.Body.String())
	return resp
}

func decodeAPIResult(t *testing.T, raw json.RawMessage, out interface{}) {
	t.Helper()
	require.NoError(t, json.Unmarshal(raw, out), "Failed to decode result")
}

func jsonRequest(method, path, body string) *http.Request {
	var reader io.Reader
	if body != "" {
		reader = strings.NewReader(body)
	}
	request := httptest.NewRequest(method, path, reader)
	request.Header.Set("Content-Type", "application/json")
	return request
}

type MockContactService struct {
	mock.Mock
}

func (m *MockContactService) ListContacts(ctx context.Context) ([]contact.Contact, error) {
	args := m.Called(ctx)
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockContactService) SearchContacts(ctx context.Context, term string) ([]contact.Contact, error) {
	args := m.Called(ctx, term)
	return args.Get(0).([]contact.Contact), args.Error(1)
}

func (m *MockContactService) GetContact(ctx context.Context, id int64) (contact.Contact, error) {
	args := m.Called(ctx, id)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockContactService) AddContact(ctx context.Context, p contact.Payload) (contact.Contact, error) {
	args := m.Called(ctx, p)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockContactService) UpdateContact(ctx context.Context, id int64, p contact.Payload) (contact.Contact, error) {
	args := m.Called(ctx, id, p)
	return args.Get(0).(contact.Contact), args.Error(1)
}

func (m *MockContactService) DeleteContact(ctx context.Context, id int64) error {
	args := m.Called(ctx, id)
	return args.Error(0)
}

func strPtr(s string) *string {
	return &s
}

type sentryTransport struct {
	mu     sync.Mutex
	events []*sentrygo.Event
}

func (s *sentryTransport) Configure(sentrygo.ClientOptions) {}

func (s *sentryTransport) Flush(time.Duration) bool { return true }

func (s *sentryTransport) SendEvent(event *sentrygo.Event) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.events = append(s.events, event)
}

func (s *sentryTransport) Events() []*sentrygo.Event {
	s.mu.Lock()
	defer s.mu.Unlock()
	return append([]*sentrygo.Event(nil), s.events...)
}

// bindSentryRecorder enables reporting and captures events in memory for the test.
func bindSentryRecorder(t *testing.T) *sentryTransport {
	t.Helper()
	const dsn = "https://public@sentry.example.com/1"
	t.Setenv("APP_ENV", "test")
	t.Setenv("SENTRY_DSN", dsn)

	transport := &sentryTransport{}
	client, err := sentrygo.NewClient(sentrygo.ClientOptions{Dsn: dsn, Transport: transport})
	require.NoError(t, err)

	hub := sentrygo.CurrentHub()
	previous := hub.Client()
	hub.BindClient(client)
	t.Cleanup(func() { hub.BindClient(previous) })
	return transport
}

package e2e

import (
	"net/http/httptest"
	"testing"

	httpserver "github.com/WailSalutem-Health-Care/ward-service/internal/http"
	"github.com/WailSalutem-Health-Care/ward-service/internal/session"
	"github.com/WailSalutem-Health-Care/ward-service/internal/testutil"
)

// TestServer is one ward session behind a real HTTP server.
type TestServer struct {
	Server        *httptest.Server
	Store         *session.Store
	MockPublisher *testutil.MockPublisher
	Notifier      *testutil.RecordingNotifier
	Client        *testutil.HTTPTestClient
}

// SetupE2ETest starts a server with all routes, an in-memory publisher and a
// recording notifier.
func SetupE2ETest(t *testing.T) *TestServer {
	t.Helper()

	store := session.NewStore()
	mockPublisher := testutil.NewMockPublisher()
	notifier := &testutil.RecordingNotifier{}

	handler := httpserver.NewHandler(httpserver.Deps{
		Store:          store,
		Publisher:      mockPublisher,
		Notifier:       notifier,
		AllowedOrigins: []string{"http://localhost:3000"},
	})
	server := httptest.NewServer(handler)

	return &TestServer{
		Server:        server,
		Store:         store,
		MockPublisher: mockPublisher,
		Notifier:      notifier,
		Client:        testutil.NewHTTPTestClient(server.URL),
	}
}

// Cleanup stops the server.
func (ts *TestServer) Cleanup(t *testing.T) {
	t.Helper()
	ts.Server.Close()
}

// Envelope mirrors the JSON body of every flow response.
type Envelope[T any] struct {
	Screen  string `json:"screen"`
	Message string `json:"message"`
	Error   string `json:"error"`
	Data    T      `json:"data"`
}

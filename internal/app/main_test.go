package app_test

import (
	"log"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/bissquit/auctionhub/api/openapi"
	"github.com/bissquit/auctionhub/internal/app"
	"github.com/bissquit/auctionhub/internal/config"
	"github.com/bissquit/auctionhub/internal/testutil"
)

var (
	testServer    *httptest.Server
	testValidator *testutil.OpenAPIValidator
)

// newTestClient creates a test client with OpenAPI validation enabled.
func newTestClient(t *testing.T) *testutil.Client {
	t.Helper()
	return testutil.NewClientWithValidator(t, testServer.URL, testValidator)
}

// newTestClientWithoutValidation creates a test client for non-API paths.
func newTestClientWithoutValidation() *testutil.Client {
	return testutil.NewClient(testServer.URL)
}

func TestMain(m *testing.M) {
	for key, value := range map[string]string{
		"AUCTIONHUB_SESSION__SECRET_KEY":  "test-secret-key-with-32-characters!",
		"AUCTIONHUB_AUTH__BCRYPT_COST":    "4",
		"AUCTIONHUB_AUTH__ALLOW_FALLBACK": "false",
		"AUCTIONHUB_LOG__LEVEL":           "error",
	} {
		if err := os.Setenv(key, value); err != nil {
			log.Fatalf("set %s: %v", key, err)
		}
	}

	cfg, err := config.Load("")
	if err != nil {
		log.Fatalf("load config: %v", err)
	}

	application, err := app.New(cfg)
	if err != nil {
		log.Fatalf("create app: %v", err)
	}

	testValidator, err = testutil.LoadOpenAPIValidator(openapi.Spec)
	if err != nil {
		log.Fatalf("load OpenAPI validator: %v", err)
	}

	testServer = httptest.NewServer(application.Router())
	code := m.Run()
	testServer.Close()
	os.Exit(code)
}

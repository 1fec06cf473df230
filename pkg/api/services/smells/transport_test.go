package smells

import (
	"net/http"
	"net/http/httptest"
	"path/filepath"
	"strings"
	"testing"

	"github.com/codequal/codequal-api/internal/api/transportutil"
	"github.com/codequal/codequal-api/internal/shared/apperrors"
	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/codequal/codequal-api/pkg/analyzes/classifier"
	"github.com/codequal/codequal-api/pkg/analyzes/smells"
	"github.com/gavv/httpexpect"
	"github.com/gorilla/mux"
)

func buildTestServer(t *testing.T) *httptest.Server {
	log := logutil.NewStderrLog("test")
	cfg := config.NewEnvConfig(log)

	svc := BasicService{
		Cfg:        cfg,
		Detector:   smells.NewDetector(),
		Classifier: classifier.New(filepath.Join(t.TempDir(), "model.json")),
	}

	router := mux.NewRouter()
	RegisterHandlers(svc, &transportutil.HandlerRegContext{
		Router:     router,
		Log:        log,
		ErrTracker: apperrors.NewNopTracker(),
		Cfg:        cfg,
	})

	return httptest.NewServer(router)
}

func TestDetectSmells(t *testing.T) {
	server := buildTestServer(t)
	defer server.Close()

	code := strings.Repeat("if x > 0 {\n\ty++\n}\n", 10)

	e := httpexpect.New(t, server.URL)
	result := e.POST("/v1/smells/detect").
		WithJSON(map[string]string{"code": code, "language": "go"}).
		Expect().
		Status(http.StatusOK).
		JSON().Object()

	result.ContainsKey("ai_score")
	result.Value("code_smells").Array()
}

func TestDetectSmellsEmptyCode(t *testing.T) {
	server := buildTestServer(t)
	defer server.Close()

	e := httpexpect.New(t, server.URL)
	e.POST("/v1/smells/detect").
		WithJSON(map[string]string{"code": "   "}).
		Expect().
		Status(http.StatusBadRequest).
		JSON().Object().ContainsKey("error")
}

func TestPredictWithoutTrainedModel(t *testing.T) {
	server := buildTestServer(t)
	defer server.Close()

	e := httpexpect.New(t, server.URL)
	e.POST("/v1/smells/predict").
		WithJSON(map[string]string{"code": "func main() {}"}).
		Expect().
		Status(http.StatusBadRequest)
}

func TestGetModelInfoUntrained(t *testing.T) {
	server := buildTestServer(t)
	defer server.Close()

	e := httpexpect.New(t, server.URL)
	info := e.GET("/v1/smells/model").
		Expect().
		Status(http.StatusOK).
		JSON().Object()

	info.Value("trained").Boolean().False()
}

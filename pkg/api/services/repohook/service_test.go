package repohook

import (
	"crypto/hmac"
	"crypto/sha256"
	"encoding/hex"
	"os"
	"testing"

	"github.com/codequal/codequal-api/internal/shared/config"
	"github.com/codequal/codequal-api/internal/shared/logutil"
	"github.com/stretchr/testify/assert"
)

func buildTestService() BasicService {
	return BasicService{
		Cfg: config.NewEnvConfig(logutil.NewStderrLog("test")),
	}
}

func signBody(secret string, body []byte) string {
	mac := hmac.New(sha256.New, []byte(secret))
	mac.Write(body) //nolint:errcheck
	return "sha256=" + hex.EncodeToString(mac.Sum(nil))
}

func TestVerifySignatureNoSecretConfigured(t *testing.T) {
	os.Unsetenv("GITHUB_WEBHOOK_SECRET")

	s := buildTestService()
	err := s.verifySignature(&GithubWebhook{}, []byte(`{}`))
	assert.NoError(t, err)
}

func TestVerifySignatureValid(t *testing.T) {
	os.Setenv("GITHUB_WEBHOOK_SECRET", "topsecret")
	defer os.Unsetenv("GITHUB_WEBHOOK_SECRET")

	body := []byte(`{"ref":"refs/heads/master"}`)
	req := &GithubWebhook{Signature: signBody("topsecret", body)}

	s := buildTestService()
	assert.NoError(t, s.verifySignature(req, body))
}

func TestVerifySignatureMissingHeader(t *testing.T) {
	os.Setenv("GITHUB_WEBHOOK_SECRET", "topsecret")
	defer os.Unsetenv("GITHUB_WEBHOOK_SECRET")

	s := buildTestService()
	err := s.verifySignature(&GithubWebhook{}, []byte(`{}`))
	assert.Error(t, err)
}

func TestVerifySignatureMismatch(t *testing.T) {
	os.Setenv("GITHUB_WEBHOOK_SECRET", "topsecret")
	defer os.Unsetenv("GITHUB_WEBHOOK_SECRET")

	body := []byte(`{"ref":"refs/heads/master"}`)
	req := &GithubWebhook{Signature: signBody("another secret", body)}

	s := buildTestService()
	err := s.verifySignature(req, body)
	assert.Error(t, err)
}

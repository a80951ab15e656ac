package handlers

import (
	"archive/zip"
	"bytes"
	"context"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http"
	"net/http/httptest"
	"net/textproto"
	"strings"
	"sync"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/require"

	"alfredoptarigan/resume-screener/internal/models"
	"alfredoptarigan/resume-screener/internal/repositories"
	"alfredoptarigan/resume-screener/internal/services"
)

type memoryAccounts struct {
	mu       sync.Mutex
	accounts map[string]*models.Account
}

func (r *memoryAccounts) Create(_ context.Context, account *models.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	email := repositories.NormalizeEmail(account.Email)
	if _, ok := r.accounts[email]; ok {
		return repositories.ErrDuplicateEmail
	}
	account.Email = email
	r.accounts[email] = account
	return nil
}

func (r *memoryAccounts) FindByEmail(_ context.Context, email string) (*models.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	if a, ok := r.accounts[repositories.NormalizeEmail(email)]; ok {
		return a, nil
	}
	return nil, repositories.ErrAccountNotFound
}

type stubMatcher struct {
	mu        sync.Mutex
	result    *models.MatchResult
	err       error
	answer    string
	warning   string
	questions []string
	resumes   []string
}

func (m *stubMatcher) Match(_ context.Context, resumeText, _ string) (*models.MatchResult, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resumes = append(m.resumes, resumeText)
	return m.result, m.err
}

func (m *stubMatcher) Ask(_ context.Context, resumeText, question string) (string, string) {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.resumes = append(m.resumes, resumeText)
	m.questions = append(m.questions, question)
	return m.answer, m.warning
}

type testApp struct {
	app      *fiber.App
	matcher  *stubMatcher
	sessions services.SessionStore
}

func newTestApp(t *testing.T) *testApp {
	t.Helper()

	sessions := services.NewMemorySessionStore(time.Hour)
	identity := services.NewIdentityService(&memoryAccounts{accounts: map[string]*models.Account{}}, sessions)
	matcher := &stubMatcher{
		result: &models.MatchResult{
			Score:           82.5,
			ProfileStrength: services.ClassifyProfile(82.5),
			Suggestions:     "Add metrics.",
		},
		answer: "She knows Go.",
	}

	app := fiber.New(fiber.Config{ErrorHandler: ErrorHandler})
	SetupRoutes(app, Dependencies{
		Identity:  identity,
		Sessions:  sessions,
		Uploads:   services.NewUploadReader(1 << 20),
		Extractor: services.NewTextExtractor(),
		Matcher:   matcher,
	})

	return &testApp{app: app, matcher: matcher, sessions: sessions}
}

func (ta *testApp) do(t *testing.T, req *http.Request) (int, map[string]any) {
	t.Helper()

	resp, err := ta.app.Test(req, -1)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	body := map[string]any{}
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &body), string(raw))
	}
	return resp.StatusCode, body
}

func jsonRequest(method, path, token string, payload any) *http.Request {
	data, _ := json.Marshal(payload)
	req := httptest.NewRequest(method, path, bytes.NewReader(data))
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

type upload struct {
	filename    string
	contentType string
	data        []byte
}

func multipartRequest(t *testing.T, path, token string, file *upload, fields map[string]string) *http.Request {
	t.Helper()

	var body bytes.Buffer
	mw := multipart.NewWriter(&body)

	if file != nil {
		h := make(textproto.MIMEHeader)
		h.Set("Content-Disposition", `form-data; name="resume"; filename="`+file.filename+`"`)
		h.Set("Content-Type", file.contentType)
		part, err := mw.CreatePart(h)
		require.NoError(t, err)
		_, err = part.Write(file.data)
		require.NoError(t, err)
	}
	for k, v := range fields {
		require.NoError(t, mw.WriteField(k, v))
	}
	require.NoError(t, mw.Close())

	req := httptest.NewRequest(http.MethodPost, path, &body)
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
	return req
}

func docxUpload(t *testing.T, paragraphs ...string) *upload {
	t.Helper()

	var body strings.Builder
	for _, p := range paragraphs {
		body.WriteString(`<w:p><w:r><w:t>` + p + `</w:t></w:r></w:p>`)
	}

	var buf bytes.Buffer
	zw := zip.NewWriter(&buf)
	for _, f := range []struct{ name, content string }{
		{"[Content_Types].xml", `<?xml version="1.0" encoding="UTF-8"?><Types xmlns="http://schemas.openxmlformats.org/package/2006/content-types"><Override PartName="/word/document.xml" ContentType="application/vnd.openxmlformats-officedocument.wordprocessingml.document.main+xml"/></Types>`},
		{"word/_rels/document.xml.rels", `<?xml version="1.0" encoding="UTF-8"?><Relationships xmlns="http://schemas.openxmlformats.org/package/2006/relationships"></Relationships>`},
		{"word/document.xml", `<?xml version="1.0" encoding="UTF-8"?><w:document xmlns:w="http://schemas.openxmlformats.org/wordprocessingml/2006/main"><w:body>` + body.String() + `</w:body></w:document>`},
	} {
		w, err := zw.Create(f.name)
		require.NoError(t, err)
		_, err = w.Write([]byte(f.content))
		require.NoError(t, err)
	}
	require.NoError(t, zw.Close())

	return &upload{filename: "resume.docx", contentType: models.MimeDOCX, data: buf.Bytes()}
}

// login creates an account and returns a session token.
func (ta *testApp) login(t *testing.T) string {
	t.Helper()

	status, _ := ta.do(t, jsonRequest(http.MethodPost, "/api/v1/auth/signup", "", map[string]string{
		"email": "jane@example.com", "password": "secret123", "role": "Job Seeker",
	}))
	require.Equal(t, fiber.StatusCreated, status)

	status, body := ta.do(t, jsonRequest(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "jane@example.com", "password": "secret123",
	}))
	require.Equal(t, fiber.StatusOK, status)

	token, _ := body["token"].(string)
	require.NotEmpty(t, token)
	return token
}

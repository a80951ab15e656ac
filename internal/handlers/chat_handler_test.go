package handlers

import (
	"fmt"
	"net/http"
	"strings"
	"sync"
	"testing"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestChat_AskRequiresResume(t *testing.T) {
	ta := newTestApp(t)
	token := ta.login(t)

	status, body := ta.do(t, jsonRequest(http.MethodPost, "/api/v1/chat/ask", token,
		map[string]string{"question": "What are her skills?"}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Please upload a resume first.", body["error"])
	assert.Empty(t, ta.matcher.questions)
}

func TestChat_AskRejectsBlankQuestion(t *testing.T) {
	ta := newTestApp(t)
	token := ta.login(t)

	status, _ := ta.do(t, multipartRequest(t, "/api/v1/chat/resume", token, docxUpload(t, "Jane Doe"), nil))
	require.Equal(t, fiber.StatusOK, status)

	status, body := ta.do(t, jsonRequest(http.MethodPost, "/api/v1/chat/ask", token,
		map[string]string{"question": "   "}))
	assert.Equal(t, fiber.StatusBadRequest, status)
	assert.Equal(t, "Please enter a question.", body["error"])
}

func TestChat_Conversation(t *testing.T) {
	ta := newTestApp(t)
	token := ta.login(t)

	status, body := ta.do(t, multipartRequest(t, "/api/v1/chat/resume", token,
		docxUpload(t, "Jane Doe", "Go engineer"), nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, "Jane Doe Go engineer", body["preview"])
	assert.Equal(t, float64(len("Jane Doe Go engineer")), body["characters"])
	assert.Equal(t, "docx", body["media_type"])

	for _, q := range []string{"What languages?", "Where did she work?"} {
		status, body = ta.do(t, jsonRequest(http.MethodPost, "/api/v1/chat/ask", token,
			map[string]string{"question": q}))
		require.Equal(t, fiber.StatusOK, status)
		assert.Equal(t, q, body["question"])
		assert.Equal(t, "She knows Go.", body["answer"])
	}
	assert.Equal(t, []string{"What languages?", "Where did she work?"}, ta.matcher.questions)
	assert.Equal(t, "Jane Doe Go engineer", ta.matcher.resumes[0])

	status, body = ta.do(t, jsonRequest(http.MethodGet, "/api/v1/chat/history", token, nil))
	require.Equal(t, fiber.StatusOK, status)
	turns, _ := body["turns"].([]any)
	require.Len(t, turns, 2)
	first, _ := turns[0].(map[string]any)
	assert.Equal(t, "What languages?", first["question"])

	status, _ = ta.do(t, jsonRequest(http.MethodDelete, "/api/v1/chat/history", token, nil))
	require.Equal(t, fiber.StatusOK, status)

	status, body = ta.do(t, jsonRequest(http.MethodGet, "/api/v1/chat/history", token, nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["turns"])
}

func TestChat_FailedAnswerIsRecordedWithWarning(t *testing.T) {
	ta := newTestApp(t)
	token := ta.login(t)
	ta.matcher.answer = "Sorry, I couldn't generate a response. Please try again."
	ta.matcher.warning = "Error communicating with the AI model (chat): timeout"

	status, _ := ta.do(t, multipartRequest(t, "/api/v1/chat/resume", token, docxUpload(t, "Jane Doe"), nil))
	require.Equal(t, fiber.StatusOK, status)

	status, body := ta.do(t, jsonRequest(http.MethodPost, "/api/v1/chat/ask", token,
		map[string]string{"question": "Hobbies?"}))
	require.Equal(t, fiber.StatusOK, status)
	assert.Equal(t, ta.matcher.answer, body["answer"])
	assert.Equal(t, ta.matcher.warning, body["warning"])
}

func TestChat_ConcurrentAsksKeepEveryTurn(t *testing.T) {
	ta := newTestApp(t)
	token := ta.login(t)

	status, _ := ta.do(t, multipartRequest(t, "/api/v1/chat/resume", token, docxUpload(t, "Jane Doe"), nil))
	require.Equal(t, fiber.StatusOK, status)

	const asks = 10

	var wg sync.WaitGroup
	for i := 0; i < asks; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp, err := ta.app.Test(jsonRequest(http.MethodPost, "/api/v1/chat/ask", token,
				map[string]string{"question": fmt.Sprintf("Question %d?", i)}), -1)
			if assert.NoError(t, err) {
				assert.Equal(t, fiber.StatusOK, resp.StatusCode)
				_ = resp.Body.Close()
			}
		}(i)
	}
	wg.Wait()

	status, body := ta.do(t, jsonRequest(http.MethodGet, "/api/v1/chat/history", token, nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Len(t, body["turns"], asks)
}

func TestChat_NewLoginClearsHistory(t *testing.T) {
	ta := newTestApp(t)
	token := ta.login(t)

	status, _ := ta.do(t, multipartRequest(t, "/api/v1/chat/resume", token, docxUpload(t, "Jane Doe"), nil))
	require.Equal(t, fiber.StatusOK, status)
	status, _ = ta.do(t, jsonRequest(http.MethodPost, "/api/v1/chat/ask", token,
		map[string]string{"question": "Skills?"}))
	require.Equal(t, fiber.StatusOK, status)

	status, body := ta.do(t, jsonRequest(http.MethodPost, "/api/v1/auth/login", "", map[string]string{
		"email": "jane@example.com", "password": "secret123",
	}))
	require.Equal(t, fiber.StatusOK, status)
	newToken, _ := body["token"].(string)

	status, body = ta.do(t, jsonRequest(http.MethodGet, "/api/v1/chat/history", newToken, nil))
	require.Equal(t, fiber.StatusOK, status)
	assert.Empty(t, body["turns"])
}

func TestPreview(t *testing.T) {
	assert.Equal(t, "short", preview("short", 10))

	long := strings.Repeat("é", 12)
	assert.Equal(t, strings.Repeat("é", 10)+"...", preview(long, 10))
}

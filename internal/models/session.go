package models

import (
	"time"

	"github.com/google/uuid"
)

type ChatTurn struct {
	Question string    `json:"question"`
	Answer   string    `json:"answer"`
	AskedAt  time.Time `json:"asked_at"`
}

// Session is the per-user state carried between requests. It is created at
// login and discarded at logout; nothing in it outlives the session.
type Session struct {
	ID            string     `json:"id"`
	AccountID     uuid.UUID  `json:"account_id"`
	Email         string     `json:"email"`
	Role          string     `json:"role"`
	Authenticated bool       `json:"authenticated"`
	ResumeText    string     `json:"resume_text,omitempty"`
	ChatHistory   []ChatTurn `json:"chat_history"`
	CreatedAt     time.Time  `json:"created_at"`
}

func NewChatTurn(question, answer string) ChatTurn {
	return ChatTurn{
		Question: question,
		Answer:   answer,
		AskedAt:  time.Now(),
	}
}

func (s *Session) AppendTurn(turn ChatTurn) {
	s.ChatHistory = append(s.ChatHistory, turn)
}

func (s *Session) ClearChat() {
	s.ChatHistory = []ChatTurn{}
}

// Clone returns a deep copy so stores never share the chat slice with callers.
func (s *Session) Clone() *Session {
	c := *s
	c.ChatHistory = make([]ChatTurn, len(s.ChatHistory))
	copy(c.ChatHistory, s.ChatHistory)
	return &c
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"alfredoptarigan/resume-screener/internal/models"
)

const sessionKeyPrefix = "session:"

// A session spans three keys: the identity fields as JSON, the resume text,
// and the chat log as a list of JSON turns. Keeping the log in a list lets
// concurrent asks RPUSH without overwriting each other.
type redisSessionStore struct {
	client *redis.Client
	ttl    time.Duration
}

func NewRedisSessionStore(client *redis.Client, ttl time.Duration) SessionStore {
	return &redisSessionStore{
		client: client,
		ttl:    ttl,
	}
}

// NewRedisClient connects and pings so a bad address fails at startup.
func NewRedisClient(ctx context.Context, addr, password string, db int) (*redis.Client, error) {
	client := redis.NewClient(&redis.Options{
		Addr:     addr,
		Password: password,
		DB:       db,
	})

	if err := client.Ping(ctx).Err(); err != nil {
		_ = client.Close()
		return nil, fmt.Errorf("failed to connect to redis: %w", err)
	}

	return client, nil
}

func sessionKey(id string) string { return sessionKeyPrefix + id }
func resumeKey(id string) string  { return sessionKeyPrefix + id + ":resume" }
func chatKey(id string) string    { return sessionKeyPrefix + id + ":chat" }

// Get implements SessionStore.
func (s *redisSessionStore) Get(ctx context.Context, id string) (*models.Session, error) {
	pipe := s.client.Pipeline()
	sessionCmd := pipe.Get(ctx, sessionKey(id))
	resumeCmd := pipe.Get(ctx, resumeKey(id))
	chatCmd := pipe.LRange(ctx, chatKey(id), 0, -1)

	if _, err := pipe.Exec(ctx); err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	data, err := sessionCmd.Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to load session: %w", err)
	}

	var session models.Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, fmt.Errorf("failed to decode session: %w", err)
	}

	session.ResumeText, err = resumeCmd.Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to load resume: %w", err)
	}

	rawTurns, err := chatCmd.Result()
	if err != nil {
		return nil, fmt.Errorf("failed to load chat history: %w", err)
	}

	session.ChatHistory = make([]models.ChatTurn, 0, len(rawTurns))
	for _, raw := range rawTurns {
		var turn models.ChatTurn
		if err := json.Unmarshal([]byte(raw), &turn); err != nil {
			return nil, fmt.Errorf("failed to decode chat turn: %w", err)
		}
		session.ChatHistory = append(session.ChatHistory, turn)
	}

	return &session, nil
}

// Save implements SessionStore. It replaces all three keys and refreshes
// the TTL.
func (s *redisSessionStore) Save(ctx context.Context, session *models.Session) error {
	identity := *session
	identity.ResumeText = ""
	identity.ChatHistory = nil

	data, err := json.Marshal(identity)
	if err != nil {
		return fmt.Errorf("failed to encode session: %w", err)
	}

	turns := make([]interface{}, 0, len(session.ChatHistory))
	for _, turn := range session.ChatHistory {
		encoded, err := json.Marshal(turn)
		if err != nil {
			return fmt.Errorf("failed to encode chat turn: %w", err)
		}
		turns = append(turns, encoded)
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.Set(ctx, sessionKey(session.ID), data, s.ttl)
		if session.ResumeText != "" {
			pipe.Set(ctx, resumeKey(session.ID), session.ResumeText, s.ttl)
		} else {
			pipe.Del(ctx, resumeKey(session.ID))
		}
		pipe.Del(ctx, chatKey(session.ID))
		if len(turns) > 0 {
			pipe.RPush(ctx, chatKey(session.ID), turns...)
			pipe.Expire(ctx, chatKey(session.ID), s.ttl)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to save session: %w", err)
	}

	return nil
}

// SetResume implements SessionStore.
func (s *redisSessionStore) SetResume(ctx context.Context, id, resumeText string) error {
	return s.mutate(ctx, id, func(pipe redis.Pipeliner) {
		pipe.Set(ctx, resumeKey(id), resumeText, s.ttl)
	})
}

// AppendTurn implements SessionStore.
func (s *redisSessionStore) AppendTurn(ctx context.Context, id string, turn models.ChatTurn) error {
	encoded, err := json.Marshal(turn)
	if err != nil {
		return fmt.Errorf("failed to encode chat turn: %w", err)
	}

	return s.mutate(ctx, id, func(pipe redis.Pipeliner) {
		pipe.RPush(ctx, chatKey(id), encoded)
	})
}

// ClearChat implements SessionStore.
func (s *redisSessionStore) ClearChat(ctx context.Context, id string) error {
	return s.mutate(ctx, id, func(pipe redis.Pipeliner) {
		pipe.Del(ctx, chatKey(id))
	})
}

// Delete implements SessionStore.
func (s *redisSessionStore) Delete(ctx context.Context, id string) error {
	if err := s.client.Del(ctx, sessionKey(id), resumeKey(id), chatKey(id)).Err(); err != nil {
		return fmt.Errorf("failed to delete session: %w", err)
	}
	return nil
}

// mutate runs fn in a MULTI block for a live session and refreshes the TTL
// of every key. A key written just after the session expired keeps its own
// TTL and lapses with it.
func (s *redisSessionStore) mutate(ctx context.Context, id string, fn func(redis.Pipeliner)) error {
	exists, err := s.client.Exists(ctx, sessionKey(id)).Result()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	if exists == 0 {
		return ErrSessionNotFound
	}

	_, err = s.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		fn(pipe)
		pipe.Expire(ctx, sessionKey(id), s.ttl)
		pipe.Expire(ctx, resumeKey(id), s.ttl)
		pipe.Expire(ctx, chatKey(id), s.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to update session: %w", err)
	}

	return nil
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/Migueeel08/focoshop-sub000/comparison"
	"github.com/Migueeel08/focoshop-sub000/models"
)

const sessionTTL = 24 * time.Hour

var ErrSessionNotFound = errors.New("session not found")

// SessionService keeps anonymous storefront sessions and their comparison
// criteria in Redis. Expiry is idle-based: every touch renews the TTL.
type SessionService struct {
	rdb *redis.Client
}

func NewSessionService(rdb *redis.Client) *SessionService {
	return &SessionService{rdb: rdb}
}

var sessionService *SessionService

func InitSessionService(rdb *redis.Client) {
	sessionService = NewSessionService(rdb)
}

func Sessions() *SessionService {
	return sessionService
}

func sessionKey(id string) string {
	return "session:" + id
}

func criteriaKey(id string) string {
	return "session:" + id + ":criteria"
}

// Start creates a fresh anonymous session.
func (s *SessionService) Start(ctx context.Context) (*models.Session, error) {
	now := time.Now().UTC()
	sess := &models.Session{
		ID:        uuid.NewString(),
		CreatedAt: now,
		LastSeen:  now,
	}

	data, err := json.Marshal(sess)
	if err != nil {
		return nil, err
	}
	if err := s.rdb.Set(ctx, sessionKey(sess.ID), data, sessionTTL).Err(); err != nil {
		return nil, err
	}

	log.Printf("[session.start] new session %s", sess.ID)
	return sess, nil
}

func (s *SessionService) Get(ctx context.Context, id string) (*models.Session, error) {
	data, err := s.rdb.Get(ctx, sessionKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrSessionNotFound
	}
	if err != nil {
		return nil, err
	}

	var sess models.Session
	if err := json.Unmarshal(data, &sess); err != nil {
		return nil, err
	}
	return &sess, nil
}

// Touch renews the session and its criteria blob for another TTL window.
func (s *SessionService) Touch(ctx context.Context, id string) error {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return err
	}
	sess.LastSeen = time.Now().UTC()

	data, err := json.Marshal(sess)
	if err != nil {
		return err
	}
	if err := s.rdb.Set(ctx, sessionKey(id), data, sessionTTL).Err(); err != nil {
		return err
	}
	s.rdb.Expire(ctx, criteriaKey(id), sessionTTL)
	return nil
}

func (s *SessionService) End(ctx context.Context, id string) error {
	return s.rdb.Del(ctx, sessionKey(id), criteriaKey(id)).Err()
}

// Criteria loads the session's comparison criteria, falling back to the
// default set when the session has never adjusted anything.
func (s *SessionService) Criteria(ctx context.Context, id string) (comparison.Set, error) {
	data, err := s.rdb.Get(ctx, criteriaKey(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return comparison.DefaultSet(), nil
	}
	if err != nil {
		return comparison.Set{}, err
	}

	var set comparison.Set
	if err := json.Unmarshal(data, &set); err != nil {
		log.Printf("[session.criteria] corrupt blob for %s, resetting: %v", id, err)
		return comparison.DefaultSet(), nil
	}
	return set, nil
}

func (s *SessionService) SaveCriteria(ctx context.Context, id string, set comparison.Set) error {
	data, err := json.Marshal(set)
	if err != nil {
		return err
	}
	return s.rdb.Set(ctx, criteriaKey(id), data, sessionTTL).Err()
}

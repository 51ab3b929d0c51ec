package redis

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/redis/go-redis/v9"
	"github.com/sirupsen/logrus"
)

var ErrNotFound = errors.New("key not found")

// IRedis stores report drafts as single JSON values, replaced whole on
// every mutation, plus short-lived status notices.
type IRedis interface {
	SetDraft(ctx context.Context, clinicianID string, payload []byte) error
	GetDraft(ctx context.Context, clinicianID string) ([]byte, error)
	DeleteDraft(ctx context.Context, clinicianID string) error
	SetNotice(ctx context.Context, key string, text string, expiration time.Duration) error
	GetNotice(ctx context.Context, key string) (string, error)
}

type redisClient struct {
	client *redis.Client
}

func New() IRedis {
	db, _ := strconv.Atoi(os.Getenv("REDIS_DB"))
	redisAddr := os.Getenv("REDIS_ADDRESS")
	redisPassword := os.Getenv("REDIS_PASSWORD")

	logrus.Info(fmt.Sprintf("Connecting to Redis at %s...", redisAddr))

	client := redis.NewClient(&redis.Options{
		Addr:     redisAddr,
		Password: redisPassword,
		DB:       db,
	})

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if _, err := client.Ping(ctx).Result(); err != nil {
		logrus.Error(fmt.Sprintf("Failed to connect to Redis: %v", err))
	} else {
		logrus.Info("Successfully connected to Redis")
	}

	return &redisClient{client: client}
}

func draftKey(clinicianID string) string {
	return "report:draft:" + clinicianID
}

func (r *redisClient) SetDraft(ctx context.Context, clinicianID string, payload []byte) error {
	// Drafts persist until explicitly discarded, hence no expiration.
	if err := r.client.Set(ctx, draftKey(clinicianID), payload, 0).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error storing draft for clinician %s: %v", clinicianID, err))
		return err
	}
	return nil
}

func (r *redisClient) GetDraft(ctx context.Context, clinicianID string) ([]byte, error) {
	val, err := r.client.Get(ctx, draftKey(clinicianID)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, ErrNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error loading draft for clinician %s: %v", clinicianID, err))
		return nil, err
	}
	return val, nil
}

func (r *redisClient) DeleteDraft(ctx context.Context, clinicianID string) error {
	if err := r.client.Del(ctx, draftKey(clinicianID)).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error deleting draft for clinician %s: %v", clinicianID, err))
		return err
	}
	return nil
}

func (r *redisClient) SetNotice(ctx context.Context, key string, text string, expiration time.Duration) error {
	if err := r.client.Set(ctx, "notice:"+key, text, expiration).Err(); err != nil {
		logrus.Error(fmt.Sprintf("Error setting notice %s: %v", key, err))
		return err
	}
	return nil
}

func (r *redisClient) GetNotice(ctx context.Context, key string) (string, error) {
	val, err := r.client.Get(ctx, "notice:"+key).Result()
	if errors.Is(err, redis.Nil) {
		return "", ErrNotFound
	} else if err != nil {
		logrus.Error(fmt.Sprintf("Error getting notice %s: %v", key, err))
		return "", err
	}
	return val, nil
}

package characters

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/ntuteepl/finalterm-LuoJuneChi/internal/entities"
	rpgerr "github.com/ntuteepl/finalterm-LuoJuneChi/internal/errors"
	"github.com/redis/go-redis/v9"
	"golang.org/x/sync/errgroup"
)

const (
	characterKeyPrefix = "character:"
	rosterKey          = "roster:characters"
)

// CharacterData is the serialized form of a character in Redis
type CharacterData struct {
	ID               string         `json:"id"`
	Name             string         `json:"name"`
	Class            entities.Class `json:"class"`
	Level            int            `json:"level"`
	Power            int            `json:"power"`
	Knowledge        int            `json:"knowledge"`
	Luck             int            `json:"luck"`
	Experience       int            `json:"experience"`
	CurrentHitPoints int            `json:"current_hit_points"`
	CreatedAt        time.Time      `json:"created_at"`
	UpdatedAt        time.Time      `json:"updated_at"`
}

// RedisRepoConfig holds configuration for the Redis repository
type RedisRepoConfig struct {
	Client       redis.UniversalClient
	TimeProvider TimeProvider
}

// redisRepo implements Repository using Redis
type redisRepo struct {
	client       redis.UniversalClient
	timeProvider TimeProvider
}

// NewRedisRepository creates a new Redis-backed character repository
func NewRedisRepository(cfg *RedisRepoConfig) Repository {
	if cfg == nil {
		panic("RedisRepoConfig cannot be nil")
	}
	if cfg.Client == nil {
		panic("Redis client cannot be nil")
	}

	timeProvider := cfg.TimeProvider
	if timeProvider == nil {
		timeProvider = &RealTimeProvider{}
	}

	return &redisRepo{
		client:       cfg.Client,
		timeProvider: timeProvider,
	}
}

// NewRedis creates a Redis-backed repository with default settings
func NewRedis(client redis.UniversalClient) Repository {
	return NewRedisRepository(&RedisRepoConfig{Client: client})
}

func (r *redisRepo) key(id string) string {
	return characterKeyPrefix + id
}

// Create stores a new character
func (r *redisRepo) Create(ctx context.Context, character *entities.Character) error {
	if err := validateCharacter(character); err != nil {
		return err
	}

	exists, err := r.client.Exists(ctx, r.key(character.ID)).Result()
	if err != nil {
		return fmt.Errorf("failed to check character existence: %w", err)
	}
	if exists > 0 {
		return rpgerr.AlreadyExistsf("character with ID '%s' already exists", character.ID).
			WithMeta("character_id", character.ID)
	}

	now := r.timeProvider.Now()
	data := toCharacterData(character)
	data.CreatedAt = now
	data.UpdatedAt = now

	jsonData, err := json.Marshal(data)
	if err != nil {
		return rpgerr.Internalf("failed to marshal character: %v", err)
	}

	pipe := r.client.Pipeline()
	pipe.Set(ctx, r.key(character.ID), string(jsonData), 0)
	pipe.SAdd(ctx, rosterKey, character.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to create character: %w", err)
	}

	return nil
}

// Get retrieves a character by ID
func (r *redisRepo) Get(ctx context.Context, id string) (*entities.Character, error) {
	data, err := r.getData(ctx, id)
	if err != nil {
		return nil, err
	}

	return fromCharacterData(data), nil
}

func (r *redisRepo) getData(ctx context.Context, id string) (*CharacterData, error) {
	if id == "" {
		return nil, rpgerr.InvalidArgument("character ID is required")
	}

	jsonData, err := r.client.Get(ctx, r.key(id)).Bytes()
	if errors.Is(err, redis.Nil) {
		return nil, rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get character: %w", err)
	}

	var data CharacterData
	if err := json.Unmarshal(jsonData, &data); err != nil {
		return nil, rpgerr.Internalf("failed to unmarshal character %s: %v", id, err)
	}

	return &data, nil
}

// List returns every character on the roster. IDs left in the roster
// set without a record are skipped.
func (r *redisRepo) List(ctx context.Context) ([]*entities.Character, error) {
	ids, err := r.client.SMembers(ctx, rosterKey).Result()
	if err != nil {
		return nil, fmt.Errorf("failed to list character IDs: %w", err)
	}

	loaded := make([]*entities.Character, len(ids))

	g, gctx := errgroup.WithContext(ctx)
	for i, id := range ids {
		i, id := i, id
		g.Go(func() error {
			char, err := r.Get(gctx, id)
			if rpgerr.IsNotFound(err) {
				return nil
			}
			if err != nil {
				return fmt.Errorf("failed to get character %s: %w", id, err)
			}
			loaded[i] = char
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	roster := make([]*entities.Character, 0, len(loaded))
	for _, char := range loaded {
		if char != nil {
			roster = append(roster, char)
		}
	}
	sortRoster(roster)

	return roster, nil
}

// Update replaces an existing character, keeping its creation time
func (r *redisRepo) Update(ctx context.Context, character *entities.Character) error {
	if err := validateCharacter(character); err != nil {
		return err
	}

	existing, err := r.getData(ctx, character.ID)
	if err != nil {
		return err
	}

	data := toCharacterData(character)
	data.CreatedAt = existing.CreatedAt
	data.UpdatedAt = r.timeProvider.Now()

	jsonData, err := json.Marshal(data)
	if err != nil {
		return rpgerr.Internalf("failed to marshal character: %v", err)
	}

	if err := r.client.Set(ctx, r.key(character.ID), string(jsonData), 0).Err(); err != nil {
		return fmt.Errorf("failed to update character: %w", err)
	}

	return nil
}

// Delete removes a character and its roster entry
func (r *redisRepo) Delete(ctx context.Context, id string) error {
	if id == "" {
		return rpgerr.InvalidArgument("character ID is required")
	}

	pipe := r.client.Pipeline()
	del := pipe.Del(ctx, r.key(id))
	pipe.SRem(ctx, rosterKey, id)
	if _, err := pipe.Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete character: %w", err)
	}

	if del.Val() == 0 {
		return rpgerr.NotFoundf("character with ID '%s' not found", id).
			WithMeta("character_id", id)
	}

	return nil
}

func toCharacterData(c *entities.Character) *CharacterData {
	return &CharacterData{
		ID:               c.ID,
		Name:             c.Name,
		Class:            c.Class,
		Level:            c.Level,
		Power:            c.Power,
		Knowledge:        c.Knowledge,
		Luck:             c.Luck,
		Experience:       c.Experience,
		CurrentHitPoints: c.CurrentHitPoints,
	}
}

func fromCharacterData(data *CharacterData) *entities.Character {
	return &entities.Character{
		ID:               data.ID,
		Name:             data.Name,
		Class:            data.Class,
		Level:            data.Level,
		Power:            data.Power,
		Knowledge:        data.Knowledge,
		Luck:             data.Luck,
		Experience:       data.Experience,
		CurrentHitPoints: data.CurrentHitPoints,
	}
}

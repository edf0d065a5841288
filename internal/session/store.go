package session

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"
)

var (
	// ErrInvalida indica token ausente, desconhecido ou já terminado.
	ErrInvalida = errors.New("sessão inválida")
)

const keyPrefix = "sessao:"

// Identidade é o retrato do utilizador no momento do login. O papel fica
// congelado aqui: alterações posteriores ao tipo do utilizador não afetam
// sessões já abertas.
type Identidade struct {
	ID    int64  `json:"id"`
	Nome  string `json:"nome"`
	Papel string `json:"papel"`
}

type redisCommander interface {
	Set(ctx context.Context, key string, value any, expiration time.Duration) *redis.StatusCmd
	Get(ctx context.Context, key string) *redis.StringCmd
	Del(ctx context.Context, keys ...string) *redis.IntCmd
}

// Store guarda identidades de sessão no Redis sob tokens opacos.
type Store struct {
	redis redisCommander
	ttl   time.Duration
}

// NewStore cria o armazenamento de sessões. TTL zero significa sessões sem
// expiração, válidas até logout.
func NewStore(client redisCommander, ttl time.Duration) *Store {
	return &Store{redis: client, ttl: ttl}
}

// Create persiste a identidade e devolve o token opaco da sessão.
func (s *Store) Create(ctx context.Context, identidade Identidade) (string, error) {
	payload, err := json.Marshal(identidade)
	if err != nil {
		return "", err
	}

	token := uuid.NewString()
	if err := s.redis.Set(ctx, keyPrefix+token, payload, s.ttl).Err(); err != nil {
		return "", err
	}
	return token, nil
}

// Get resolve o token para a identidade estabelecida no login.
func (s *Store) Get(ctx context.Context, token string) (Identidade, error) {
	if token == "" {
		return Identidade{}, ErrInvalida
	}

	raw, err := s.redis.Get(ctx, keyPrefix+token).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return Identidade{}, ErrInvalida
		}
		return Identidade{}, err
	}

	var identidade Identidade
	if err := json.Unmarshal(raw, &identidade); err != nil {
		return Identidade{}, ErrInvalida
	}
	return identidade, nil
}

// Delete termina a sessão. Tokens desconhecidos não são erro.
func (s *Store) Delete(ctx context.Context, token string) error {
	if token == "" {
		return nil
	}
	return s.redis.Del(ctx, keyPrefix+token).Err()
}

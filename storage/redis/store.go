package redis

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"nft-ticketing-backend/redemption"

	goredis "github.com/go-redis/redis"
)

const keyPrefix = "ticket_validation:"

// createScript writes the hash only if the key is absent.
var createScript = goredis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 1 then
	return 0
end
redis.call("HSET", KEYS[1], "contract_address", ARGV[1], "token_id", ARGV[2], "event_id", ARGV[3], "tier_id", ARGV[4], "is_used", "0", "created_at", ARGV[5])
return 1
`)

// markUsedScript is the compare-and-set: -1 unknown, 0 already used, 1 done.
var markUsedScript = goredis.NewScript(`
if redis.call("EXISTS", KEYS[1]) == 0 then
	return -1
end
if redis.call("HGET", KEYS[1], "is_used") == "1" then
	return 0
end
redis.call("HSET", KEYS[1], "is_used", "1", "used_at", ARGV[1], "validated_by", ARGV[2])
return 1
`)

// Store keeps each validation record as a Redis hash. Writes go through Lua
// scripts, which Redis runs without interleaving other commands.
type Store struct {
	client *goredis.Client
}

func New(client *goredis.Client) *Store {
	return &Store{client: client}
}

func hashKey(key redemption.Key) string {
	return keyPrefix + key.ContractAddress + ":" + key.TokenID
}

func (s *Store) Create(_ context.Context, r redemption.Record) error {
	created, err := createScript.Run(s.client, []string{hashKey(r.Key)},
		r.ContractAddress, r.TokenID, r.EventID, r.TierID, r.CreatedAt.UnixMicro()).Int()
	if err != nil {
		return fmt.Errorf("create: error running script: %w", err)
	}
	if created == 0 {
		return redemption.ErrDuplicateTicket
	}
	return nil
}

func (s *Store) Get(_ context.Context, key redemption.Key) (redemption.Record, error) {
	fields, err := s.client.HGetAll(hashKey(key)).Result()
	if err != nil {
		return redemption.Record{}, fmt.Errorf("get: error reading hash: %w", err)
	}
	if len(fields) == 0 {
		return redemption.Record{}, redemption.ErrNotFound
	}
	return decode(fields)
}

func (s *Store) MarkUsed(ctx context.Context, key redemption.Key, usedAt time.Time, validatedBy string) (redemption.Record, error) {
	status, err := markUsedScript.Run(s.client, []string{hashKey(key)}, usedAt.UnixMicro(), validatedBy).Int()
	if err != nil {
		return redemption.Record{}, fmt.Errorf("markUsed: error running script: %w", err)
	}

	switch status {
	case -1:
		return redemption.Record{}, redemption.ErrNotFound
	case 0:
		r, err := s.Get(ctx, key)
		if err != nil {
			return redemption.Record{}, err
		}
		return redemption.Record{}, &redemption.AlreadyRedeemedError{Record: r}
	default:
		return s.Get(ctx, key)
	}
}

func decode(fields map[string]string) (redemption.Record, error) {
	r := redemption.Record{
		Key: redemption.Key{
			ContractAddress: fields["contract_address"],
			TokenID:         fields["token_id"],
		},
		EventID:     fields["event_id"],
		TierID:      fields["tier_id"],
		IsUsed:      fields["is_used"] == "1",
		ValidatedBy: fields["validated_by"],
	}

	createdAt, err := strconv.ParseInt(fields["created_at"], 10, 64)
	if err != nil {
		return redemption.Record{}, fmt.Errorf("decode: bad created_at: %w", err)
	}
	r.CreatedAt = time.UnixMicro(createdAt).UTC()

	if v, ok := fields["used_at"]; ok && v != "" {
		usedAt, err := strconv.ParseInt(v, 10, 64)
		if err != nil {
			return redemption.Record{}, fmt.Errorf("decode: bad used_at: %w", err)
		}
		t := time.UnixMicro(usedAt).UTC()
		r.UsedAt = &t
	}
	return r, nil
}

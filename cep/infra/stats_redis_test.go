package infra

import (
	"context"
	"testing"
	"time"

	"consulta-cep/cep/domain"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
)

func newRedis(t *testing.T) (*miniredis.Miniredis, *redis.Client) {
	t.Helper()
	mr := miniredis.RunT(t)
	rdb := redis.NewClient(&redis.Options{Addr: mr.Addr()})
	t.Cleanup(func() { _ = rdb.Close() })
	return mr, rdb
}

func TestRedisStatsStore_RecordAndTotals(t *testing.T) {
	mr, rdb := newRedis(t)
	s := NewRedisStatsStore(rdb, WithStatsPrefix("test:stats:"), WithStatsTrackCodes(true))
	ctx := context.Background()
	at := time.Date(2024, 5, 1, 13, 45, 10, 0, time.UTC)

	if err := s.Record(ctx, domain.StatsEvent{Code: "01001000", Kind: "ok", At: at}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Record(ctx, domain.StatsEvent{Code: "00000000", Kind: "not_found", At: at}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := s.Record(ctx, domain.StatsEvent{Kind: "invalid_format", At: at}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	totals, err := s.Totals(ctx)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if totals["ok"] != 1 || totals["not_found"] != 1 || totals["invalid_format"] != 1 {
		t.Fatalf("unexpected totals %v", totals)
	}

	if got := mr.HGet("test:stats:minute:202405011345", "ok"); got != "1" {
		t.Fatalf("expected minute bucket counter, got %q", got)
	}
	if ttl := mr.TTL("test:stats:minute:202405011345"); ttl != 24*time.Hour {
		t.Fatalf("expected bucket ttl 24h, got %s", ttl)
	}
	if got := mr.HGet("test:stats:code:00000000", "not_found"); got != "1" {
		t.Fatalf("expected per-code counter, got %q", got)
	}
	if mr.Exists("test:stats:code:") {
		t.Fatalf("did not expect a key for empty code")
	}
	if ttl := mr.TTL("test:stats:total"); ttl != 0 {
		t.Fatalf("expected total to never expire, got %s", ttl)
	}
}

func TestRedisStatsStore_NoBucket(t *testing.T) {
	mr, rdb := newRedis(t)
	s := NewRedisStatsStore(rdb, WithStatsBucket(" NONE "))

	at := time.Date(2024, 5, 1, 13, 45, 0, 0, time.UTC)
	if err := s.Record(context.Background(), domain.StatsEvent{Kind: "ok", At: at}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if mr.Exists("cep:stats:minute:202405011345") {
		t.Fatalf("did not expect minute bucket")
	}
	if got := mr.HGet("cep:stats:total", "ok"); got != "1" {
		t.Fatalf("expected total counter, got %q", got)
	}
}

func TestRedisStatsStore_NilIsNoop(t *testing.T) {
	var s *RedisStatsStore
	if err := s.Record(context.Background(), domain.StatsEvent{Kind: "ok"}); err != nil {
		t.Fatalf("expected nil store to be a no-op, got %v", err)
	}
}

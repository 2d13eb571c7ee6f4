package infra

import (
	"context"
	"sync"

	"consulta-cep/cep/domain"
)

// MemoryStatsStore é uma implementação simples em memória.
// Útil para testes e desenvolvimento.
//
// Não faz expiração e os contadores se perdem ao reiniciar o processo.
type MemoryStatsStore struct {
	mu     sync.Mutex
	total  map[string]int64
	byCode map[domain.PostalCode]map[string]int64

	trackCodes bool
}

type MemoryStatsOption func(*MemoryStatsStore)

func WithTrackCodes(track bool) MemoryStatsOption {
	return func(s *MemoryStatsStore) { s.trackCodes = track }
}

func NewMemoryStatsStore(opts ...MemoryStatsOption) *MemoryStatsStore {
	s := &MemoryStatsStore{
		total:  make(map[string]int64),
		byCode: make(map[domain.PostalCode]map[string]int64),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

func (s *MemoryStatsStore) Record(_ context.Context, ev domain.StatsEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total[ev.Kind]++
	if s.trackCodes && ev.Code != "" {
		c := s.byCode[ev.Code]
		if c == nil {
			c = make(map[string]int64)
			s.byCode[ev.Code] = c
		}
		c[ev.Kind]++
	}
	return nil
}

// Totals implementa domain.StatsReader.
func (s *MemoryStatsStore) Totals(_ context.Context) (map[string]int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.total))
	for k, v := range s.total {
		out[k] = v
	}
	return out, nil
}

func (s *MemoryStatsStore) ByCode(code domain.PostalCode) map[string]int64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make(map[string]int64, len(s.byCode[code]))
	for k, v := range s.byCode[code] {
		out[k] = v
	}
	return out
}

package application

import (
	"context"
	"time"

	"consulta-cep/cep/domain"

	log "github.com/sirupsen/logrus"
)

// Service concentra a regra de aplicação da consulta.
//
// Não guarda estado entre chamadas: sem cache, sem retry, sem limite.
// Stats é opcional e tratado como best-effort.
type Service struct {
	Lookup domain.AddressLookup
	Stats  domain.StatsStore
	Now    func() time.Time
}

// Consult valida raw e, se válido, consulta o endereço.
func (s Service) Consult(ctx context.Context, raw, client string) domain.Outcome {
	code, err := domain.ParsePostalCode(raw)
	if err != nil {
		out := domain.NewOutcome("", domain.AddressRecord{}, err)
		s.record(ctx, "", client, out)
		return out
	}
	return s.lookup(ctx, code, client)
}

// LookupCode consulta um CEP já validado.
func (s Service) LookupCode(ctx context.Context, code domain.PostalCode) domain.Outcome {
	return s.lookup(ctx, code, "")
}

func (s Service) lookup(ctx context.Context, code domain.PostalCode, client string) domain.Outcome {
	if s.Lookup == nil {
		out := domain.Failed(domain.NewServiceError(code, 0))
		s.record(ctx, code, client, out)
		return out
	}

	rec, err := s.Lookup.Lookup(ctx, code)
	out := domain.NewOutcome(code, rec, err)
	s.record(ctx, code, client, out)
	return out
}

func (s Service) record(ctx context.Context, code domain.PostalCode, client string, out domain.Outcome) {
	entry := log.WithFields(log.Fields{
		"cep":    string(code),
		"client": client,
		"kind":   out.Label(),
	})
	if out.Error != nil {
		entry.WithError(out.Error).Info("cep lookup failed")
	} else {
		entry.Debug("cep lookup ok")
	}

	if s.Stats == nil {
		return
	}
	now := time.Now
	if s.Now != nil {
		now = s.Now
	}
	err := s.Stats.Record(ctx, domain.StatsEvent{
		Code:   code,
		Kind:   out.Label(),
		Client: client,
		At:     now(),
	})
	if err != nil {
		entry.WithError(err).Warn("failed to record cep stats")
	}
}

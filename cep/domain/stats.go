package domain

import (
	"context"
	"time"
)

// StatsEvent representa o resultado de uma consulta para fins de estatística.
//
// Kind é o rótulo do Outcome ("ok", "not_found", ...). Code fica vazio
// quando a entrada não passou na validação.
//
// Observação: cuidado com cardinalidade ao guardar Code/Client (cada CEP
// distinto vira uma chave nova no Redis).
type StatsEvent struct {
	Code   PostalCode
	Kind   string
	Client string

	At time.Time
}

// StatsStore é a estratégia de persistência das estatísticas.
//
// O chamador trata erro como best-effort (não derruba a consulta).
type StatsStore interface {
	Record(ctx context.Context, ev StatsEvent) error
}

// StatsReader expõe os totais por Kind.
type StatsReader interface {
	Totals(ctx context.Context) (map[string]int64, error)
}

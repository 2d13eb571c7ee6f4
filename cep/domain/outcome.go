package domain

import "errors"

// KindOK é o rótulo de estatística de uma consulta com endereço.
const KindOK = "ok"

// Outcome é o resultado de uma consulta: ou Address, ou Error.
// Exatamente um dos dois está preenchido.
type Outcome struct {
	Address *AddressRecord
	Error   *LookupError
}

// NewOutcome dobra o par (endereço, erro) de um AddressLookup no Outcome.
// Erros que não são *LookupError viram TransportError.
func NewOutcome(code PostalCode, rec AddressRecord, err error) Outcome {
	if err == nil {
		return Outcome{Address: &rec}
	}
	var le *LookupError
	if errors.As(err, &le) {
		return Outcome{Error: le}
	}
	return Outcome{Error: NewTransportError(code, err)}
}

// Failed devolve o Outcome de erro para err.
func Failed(err *LookupError) Outcome { return Outcome{Error: err} }

func (o Outcome) OK() bool { return o.Error == nil && o.Address != nil }

// Label é o rótulo usado em estatísticas e logs.
func (o Outcome) Label() string {
	if o.Error != nil {
		return o.Error.Kind.String()
	}
	return KindOK
}

// Message devolve a mensagem de erro, ou "" em caso de sucesso.
func (o Outcome) Message() string {
	if o.Error == nil {
		return ""
	}
	return o.Error.Message
}

package domain

import "fmt"

// Kind classifica o motivo de uma consulta sem endereço.
type Kind int

const (
	KindInvalidFormat Kind = iota + 1
	KindNotFound
	KindServiceError
	KindTransportError
)

func (k Kind) String() string {
	switch k {
	case KindInvalidFormat:
		return "invalid_format"
	case KindNotFound:
		return "not_found"
	case KindServiceError:
		return "service_error"
	case KindTransportError:
		return "transport_error"
	}
	return "unknown"
}

// Mensagens exibidas ao usuário.
const (
	MsgInvalidFormat = "CEP inválido. Deve conter exatamente 8 números."
	MsgServiceError  = "Erro ao consultar o serviço ViaCEP."
	msgNotFoundFmt   = "CEP %s não encontrado."
	msgTransportPfx  = "Ocorreu um erro: "
)

// LookupError é o erro de domínio de uma consulta.
//
// Message já está pronta para a página; Err guarda a causa (se houver).
type LookupError struct {
	Kind    Kind
	Code    PostalCode
	Status  int
	Message string
	Err     error
}

func (e *LookupError) Error() string { return e.Message }

func (e *LookupError) Unwrap() error { return e.Err }

// Is compara apenas o Kind, então errors.Is(err, ErrNotFound) funciona
// para qualquer CEP.
func (e *LookupError) Is(target error) bool {
	t, ok := target.(*LookupError)
	if !ok {
		return false
	}
	return t.Kind == e.Kind
}

// Sentinelas para errors.Is.
var (
	ErrInvalidFormat  = &LookupError{Kind: KindInvalidFormat, Message: MsgInvalidFormat}
	ErrNotFound       = &LookupError{Kind: KindNotFound}
	ErrServiceError   = &LookupError{Kind: KindServiceError, Message: MsgServiceError}
	ErrTransportError = &LookupError{Kind: KindTransportError}
)

func NewInvalidFormatError(raw string) *LookupError {
	return &LookupError{
		Kind:    KindInvalidFormat,
		Message: MsgInvalidFormat,
		Err:     fmt.Errorf("invalid postal code %q", raw),
	}
}

func NewNotFoundError(code PostalCode) *LookupError {
	return &LookupError{
		Kind:    KindNotFound,
		Code:    code,
		Message: fmt.Sprintf(msgNotFoundFmt, code),
	}
}

func NewServiceError(code PostalCode, status int) *LookupError {
	return &LookupError{
		Kind:    KindServiceError,
		Code:    code,
		Status:  status,
		Message: MsgServiceError,
		Err:     fmt.Errorf("viacep status %d", status),
	}
}

func NewTransportError(code PostalCode, err error) *LookupError {
	return &LookupError{
		Kind:    KindTransportError,
		Code:    code,
		Message: msgTransportPfx + err.Error(),
		Err:     err,
	}
}

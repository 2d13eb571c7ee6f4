package domain

import (
	"errors"
	"strings"
	"testing"
)

func TestNewOutcome_Success(t *testing.T) {
	o := NewOutcome("01001000", AddressRecord{CEP: "01001-000"}, nil)
	if !o.OK() {
		t.Fatalf("expected ok outcome")
	}
	if o.Error != nil {
		t.Fatalf("expected no error, got %v", o.Error)
	}
	if o.Label() != KindOK {
		t.Fatalf("expected label ok, got %q", o.Label())
	}
}

func TestNewOutcome_KeepsLookupError(t *testing.T) {
	o := NewOutcome("00000000", AddressRecord{}, NewNotFoundError("00000000"))
	if o.OK() || o.Address != nil {
		t.Fatalf("expected error outcome")
	}
	if got := o.Message(); got != "CEP 00000000 não encontrado." {
		t.Fatalf("unexpected message %q", got)
	}
	if o.Label() != "not_found" {
		t.Fatalf("expected label not_found, got %q", o.Label())
	}
}

func TestNewOutcome_WrapsForeignErrorAsTransport(t *testing.T) {
	o := NewOutcome("01001000", AddressRecord{}, errors.New("boom"))
	if o.Error == nil || o.Error.Kind != KindTransportError {
		t.Fatalf("expected transport error, got %+v", o.Error)
	}
	if !strings.HasPrefix(o.Message(), "Ocorreu um erro: ") || !strings.Contains(o.Message(), "boom") {
		t.Fatalf("unexpected message %q", o.Message())
	}
}

func TestLookupError_IsComparesKind(t *testing.T) {
	var err error = NewServiceError("01001000", 500)
	if !errors.Is(err, ErrServiceError) {
		t.Fatalf("expected ErrServiceError")
	}
	if errors.Is(err, ErrNotFound) {
		t.Fatalf("did not expect ErrNotFound")
	}
	if err.Error() != "Erro ao consultar o serviço ViaCEP." {
		t.Fatalf("unexpected message %q", err.Error())
	}
}

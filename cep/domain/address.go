package domain

import "context"

// AddressRecord é o endereço devolvido pelo serviço de consulta.
//
// Campos opcionais (ex.: Complemento) podem vir vazios.
type AddressRecord struct {
	CEP         string `json:"cep"`
	Logradouro  string `json:"logradouro"`
	Complemento string `json:"complemento"`
	Unidade     string `json:"unidade,omitempty"`
	Bairro      string `json:"bairro"`
	Localidade  string `json:"localidade"`
	UF          string `json:"uf"`
	Estado      string `json:"estado,omitempty"`
	Regiao      string `json:"regiao,omitempty"`
	IBGE        string `json:"ibge,omitempty"`
	GIA         string `json:"gia,omitempty"`
	DDD         string `json:"ddd,omitempty"`
	SIAFI       string `json:"siafi,omitempty"`
}

// AddressLookup resolve um CEP válido em um endereço.
//
// Implementações fazem exatamente uma chamada externa por invocação e
// devolvem *LookupError quando não há endereço.
type AddressLookup interface {
	Lookup(ctx context.Context, code PostalCode) (AddressRecord, error)
}

package infra

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"strings"
	"time"

	"consulta-cep/cep/domain"
)

const DefaultViaCEPBaseURL = "https://viacep.com.br/ws"

// ViaCEPClient consulta o endpoint JSON do ViaCEP.
//
// Uma chamada de Lookup faz exatamente um GET: sem retry e sem cache.
type ViaCEPClient struct {
	baseURL string
	http    *http.Client
}

type ViaCEPOption func(*ViaCEPClient)

// WithHTTPClient troca o *http.Client usado nas chamadas.
func WithHTTPClient(c *http.Client) ViaCEPOption {
	return func(v *ViaCEPClient) {
		if c != nil {
			v.http = c
		}
	}
}

// WithTimeout define http.Client.Timeout. Zero mantém o padrão do transporte.
func WithTimeout(d time.Duration) ViaCEPOption {
	return func(v *ViaCEPClient) {
		if d > 0 {
			c := *v.http
			c.Timeout = d
			v.http = &c
		}
	}
}

func NewViaCEPClient(baseURL string, opts ...ViaCEPOption) *ViaCEPClient {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		baseURL = DefaultViaCEPBaseURL
	}
	c := &ViaCEPClient{
		baseURL: baseURL,
		http:    &http.Client{},
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func (c *ViaCEPClient) BaseURL() string { return c.baseURL }

// URL monta o endereço da consulta para code.
func (c *ViaCEPClient) URL(code domain.PostalCode) string {
	return fmt.Sprintf("%s/%s/json/", c.baseURL, code)
}

// Lookup implementa domain.AddressLookup.
//
// Ordem de classificação: falha de transporte, status != 200, corpo que não
// é objeto JSON, campo "erro" presente, sucesso.
func (c *ViaCEPClient) Lookup(ctx context.Context, code domain.PostalCode) (domain.AddressRecord, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.URL(code), nil)
	if err != nil {
		return domain.AddressRecord{}, domain.NewTransportError(code, err)
	}
	req.Header.Set("Accept", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return domain.AddressRecord{}, domain.NewTransportError(code, err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		// drena para reaproveitar a conexão
		_, _ = io.Copy(io.Discard, resp.Body)
		return domain.AddressRecord{}, domain.NewServiceError(code, resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return domain.AddressRecord{}, domain.NewTransportError(code, err)
	}

	var fields map[string]any
	if err := json.Unmarshal(body, &fields); err != nil {
		return domain.AddressRecord{}, domain.NewTransportError(code, err)
	}
	if fields == nil {
		return domain.AddressRecord{}, domain.NewTransportError(code, fmt.Errorf("unexpected response body %q", body))
	}
	if _, ok := fields["erro"]; ok {
		return domain.AddressRecord{}, domain.NewNotFoundError(code)
	}
	return recordFromFields(fields), nil
}

func recordFromFields(m map[string]any) domain.AddressRecord {
	return domain.AddressRecord{
		CEP:         field(m, "cep"),
		Logradouro:  field(m, "logradouro"),
		Complemento: field(m, "complemento"),
		Unidade:     field(m, "unidade"),
		Bairro:      field(m, "bairro"),
		Localidade:  field(m, "localidade"),
		UF:          field(m, "uf"),
		Estado:      field(m, "estado"),
		Regiao:      field(m, "regiao"),
		IBGE:        field(m, "ibge"),
		GIA:         field(m, "gia"),
		DDD:         field(m, "ddd"),
		SIAFI:       field(m, "siafi"),
	}
}

// field tolera campo ausente/null (vira "") e escalar não-string.
func field(m map[string]any, key string) string {
	switch v := m[key].(type) {
	case nil:
		return ""
	case string:
		return v
	case float64:
		return formatFloat(v)
	case bool:
		return strconv.FormatBool(v)
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return ""
		}
		return string(b)
	}
}

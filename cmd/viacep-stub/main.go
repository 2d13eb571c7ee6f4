// Command viacep-stub serve um ViaCEP falso para testes locais.
//
//	VIACEP_BASE_URL=http://localhost:8081/ws consulta-cep serve
package main

import (
	"encoding/json"
	"net/http"
	"os"
	"strings"

	log "github.com/sirupsen/logrus"

	"consulta-cep/cep/domain"
)

var fixtures = map[domain.PostalCode]domain.AddressRecord{
	"01001000": {
		CEP:         "01001-000",
		Logradouro:  "Praça da Sé",
		Complemento: "lado ímpar",
		Bairro:      "Sé",
		Localidade:  "São Paulo",
		UF:          "SP",
		Estado:      "São Paulo",
		Regiao:      "Sudeste",
		IBGE:        "3550308",
		GIA:         "1004",
		DDD:         "11",
		SIAFI:       "7107",
	},
	"20040020": {
		CEP:        "20040-020",
		Logradouro: "Praça Pio X",
		Bairro:     "Centro",
		Localidade: "Rio de Janeiro",
		UF:         "RJ",
		Estado:     "Rio de Janeiro",
		Regiao:     "Sudeste",
		IBGE:       "3304557",
		DDD:        "21",
		SIAFI:      "6001",
	},
}

func handler(w http.ResponseWriter, r *http.Request) {
	// /ws/{cep}/json/
	rest := strings.TrimPrefix(r.URL.Path, "/ws/")
	raw, format, _ := strings.Cut(rest, "/")
	if format != "json/" && format != "json" {
		http.NotFound(w, r)
		return
	}

	code, err := domain.ParsePostalCode(raw)
	if err != nil || strings.Contains(raw, "-") {
		// o serviço real responde 400 para formato inválido
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	rec, ok := fixtures[code]
	if !ok {
		log.WithField("cep", code).Info("stub: cep not found")
		_ = enc.Encode(map[string]string{"erro": "true"})
		return
	}
	log.WithField("cep", code).Info("stub: cep found")
	_ = enc.Encode(rec)
}

func main() {
	addr := ":8081"
	if v := os.Getenv("STUB_ADDR"); v != "" {
		addr = v
	}

	http.HandleFunc("/ws/", handler)
	log.Infof("viacep stub listening on http://localhost%s/ws", addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		log.WithError(err).Fatal("stub server failed")
	}
}

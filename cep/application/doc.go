// Package application contém o caso de uso da consulta de CEP.
//
// Ele depende apenas do pacote domain e não conhece net/http.
// Ex.: Service.Consult(ctx, "01001-000", client) valida a entrada, chama o
// AddressLookup e devolve um domain.Outcome (endereço ou mensagem de erro).
package application

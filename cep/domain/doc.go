// Package domain define os tipos e contratos da consulta de CEP.
//
// Este pacote não depende de net/http nem de implementações concretas.
// Aqui ficam o PostalCode (com a regra de validação), o AddressRecord,
// o Outcome (endereço ou erro) e os erros tipados por Kind.
package domain

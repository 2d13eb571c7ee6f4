// Package cep fornece o adapter HTTP (gin) da consulta de CEP.
//
// Visão geral (camadas):
//
//   - domain: tipos, regra de validação do CEP e erros tipados (sem net/http)
//   - application: caso de uso Consult (valida, consulta, registra estatística)
//   - infra: cliente ViaCEP e stores de estatística (memória, Redis)
//   - cep (este pacote): rotas, extração da chave do cliente e renderização da página
//
// Fluxo do POST /:
//
//  1. Lê o campo de formulário "cep"
//  2. Chama application.Service.Consult
//  3. Renderiza a mesma página com o endereço ou com a mensagem de erro
//
// A página sempre responde 200; o erro aparece no corpo, nunca como falha HTTP.
package cep

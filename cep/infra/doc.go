// Package infra contém implementações concretas (infraestrutura) para os contratos
// definidos no pacote domain.
//
// Exemplos:
//   - ViaCEPClient: domain.AddressLookup sobre https://viacep.com.br
//   - MemoryStatsStore / RedisStatsStore: estatísticas de resultado das consultas
package infra

// utilitário pequeno para formatar números vindos do JSON do ViaCEP.
//    encoding/json decodifica números como float64; fmt imprimiria códigos
//    longos (ex.: ibge 3550308) em notação científica.

package infra

import "strconv"

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'f', -1, 64)
}

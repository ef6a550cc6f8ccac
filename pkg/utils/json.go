package utils

import (
	"io"

	jsoniter "github.com/json-iterator/go"
)

// prettyJSON preserva acentos e caracteres como <, > e & sem escape
var prettyJSON = jsoniter.Config{
	EscapeHTML:             false,
	SortMapKeys:            true,
	ValidateJsonRawMessage: true,
}.Froze()

// WriteIndentedJSON escreve in em w com indentação de dois espaços e quebra de linha final
func WriteIndentedJSON(w io.Writer, in any) error {
	encoder := prettyJSON.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(in)
}

// WriteJSON escreve in em w numa única linha, com o mesmo tratamento de caracteres
func WriteJSON(w io.Writer, in any) error {
	return prettyJSON.NewEncoder(w).Encode(in)
}

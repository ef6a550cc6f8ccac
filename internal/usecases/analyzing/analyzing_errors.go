package analyzing

import (
	"errors"
	"fmt"
)

// Erros específicos para o contexto de análise
var (
	// ErrNotConfigured indica que não há credencial para o serviço de narrativa
	ErrNotConfigured = errors.New("OLLAMA_API_KEY not set")

	ErrEmptyInput     = errors.New("empty input")
	ErrExtraData      = errors.New("extra data after JSON value")
	ErrNotAnObject    = errors.New("document must be a JSON object")
	ErrMetricsObject  = errors.New("metrics must be a JSON object")
	ErrMissingMeasure = errors.New("missing measure")
	ErrNotANumber     = errors.New("value is not a number")
)

type InputErrorKind string

const (
	// KindJSON é usado quando o documento não é JSON válido
	KindJSON InputErrorKind = "json"
	// KindValidation é usado quando o JSON é válido mas não tem o formato esperado
	KindValidation InputErrorKind = "validation"
)

// InputError é um erro fatal de leitura da entrada
type InputError struct {
	Kind InputErrorKind
	Err  error
}

// Error implementa a interface error
func (e *InputError) Error() string {
	if e.Kind == KindJSON {
		return fmt.Sprintf("Invalid JSON: %s", e.Err.Error())
	}
	return fmt.Sprintf("Invalid input: %s", e.Err.Error())
}

// Unwrap retorna o erro subjacente
func (e *InputError) Unwrap() error {
	return e.Err
}

func NewInputError(kind InputErrorKind, err error) *InputError {
	return &InputError{Kind: kind, Err: err}
}

// IsInputError informa se err (ou algum erro encadeado) é um InputError
func IsInputError(err error) bool {
	var inputErr *InputError
	return errors.As(err, &inputErr)
}

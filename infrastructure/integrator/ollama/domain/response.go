package ollamadomain

import jsoniter "github.com/json-iterator/go"

var json = jsoniter.ConfigCompatibleWithStandardLibrary

// Os campos de texto são ponteiros: null ou ausente é tratado como falha da variante.

// ErrorDetail aceita "error": "texto" (Ollama) e "error": {"message": "texto"} (OpenAI)
type ErrorDetail struct {
	Message string `json:"message"`
}

func (e *ErrorDetail) UnmarshalJSON(data []byte) error {
	var text string
	if err := json.Unmarshal(data, &text); err == nil {
		e.Message = text
		return nil
	}

	type detail ErrorDetail
	var obj detail
	if err := json.Unmarshal(data, &obj); err != nil {
		return err
	}
	*e = ErrorDetail(obj)

	return nil
}

// Reported informa se o servidor devolveu uma mensagem de erro
func (e *ErrorDetail) Reported() bool {
	return e != nil && e.Message != ""
}

type GenerateResponse struct {
	Response *string      `json:"response"`
	Error    *ErrorDetail `json:"error"`
}

type ResponseMessage struct {
	Content *string `json:"content"`
}

type ChatResponse struct {
	Message *ResponseMessage `json:"message"`
	Error   *ErrorDetail     `json:"error"`
}

type OpenAIChoice struct {
	Message *ResponseMessage `json:"message"`
}

type OpenAIChatResponse struct {
	Choices []OpenAIChoice `json:"choices"`
	Error   *ErrorDetail   `json:"error"`
}

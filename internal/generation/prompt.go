package generation

import (
	"fmt"
)

// missingFieldPlaceholder substitutes product fields the client left empty.
const missingFieldPlaceholder = "não informado"

const promptTemplate = `Crie um título e uma descrição CURTOS para um produto com base nas informações:
Categoria: %s
Benefícios: %s
Material: %s

Regras: retorne APENAS texto puro, sem Markdown (sem **, sem #). Título: no máximo 60 caracteres, uma linha só, direto ao ponto.
Descrição: no máximo 2 ou 3 frases (cerca de 150 a 200 caracteres), objetiva.
Formato exato:
Título: (título curto)
Descrição: (descrição curta)`

// BuildPrompt renders the instruction text for a generation request.
// Pure function: same request, same prompt.
func BuildPrompt(req GenerateRequest) string {
	return fmt.Sprintf(promptTemplate,
		valueOrPlaceholder(req.Categoria),
		valueOrPlaceholder(req.Beneficios),
		valueOrPlaceholder(req.Material),
	)
}

// BuildMessages assembles the outbound message payload. When imagem is
// present the user message becomes multimodal: the instruction text plus an
// image_url part carrying the data URI exactly as supplied.
func BuildMessages(systemPrompt, prompt, imagem string) []Message {
	if imagem == "" {
		return []Message{
			{Role: "system", Content: systemPrompt},
			{Role: "user", Content: prompt},
		}
	}

	return []Message{
		{Role: "system", Content: systemPrompt},
		{Role: "user", Content: []ContentPart{
			{Type: "text", Text: prompt},
			{Type: "image_url", ImageURL: &ImageURL{URL: imagem}},
		}},
	}
}

func valueOrPlaceholder(value string) string {
	if value == "" {
		return missingFieldPlaceholder
	}
	return value
}

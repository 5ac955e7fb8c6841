package generation

// GenerateRequest is the body of POST /gerar. All fields are optional free
// text; imagem, when present, must be a decodable data URI.
type GenerateRequest struct {
	Categoria  string `json:"categoria"`
	Beneficios string `json:"beneficios"`
	Material   string `json:"material"`
	Imagem     string `json:"imagem"`
}

// GenerateResponse is the body of the /gerar response. Failures are
// reported in-band through Resultado, never as HTTP errors.
type GenerateResponse struct {
	Resultado string `json:"resultado"`
}

// Message is one chat message sent upstream. Content is either a plain
// string or a []ContentPart for multimodal messages.
type Message struct {
	Role    string `json:"role"`
	Content any    `json:"content"`
}

// ContentPart is one element of a multimodal user message.
type ContentPart struct {
	Type     string    `json:"type"`
	Text     string    `json:"text,omitempty"`
	ImageURL *ImageURL `json:"image_url,omitempty"`
}

// ImageURL carries the image reference of an image_url content part.
// The data URI supplied by the client is passed through unmodified.
type ImageURL struct {
	URL string `json:"url"`
}

// ProviderInfo is the body of GET /provider.
type ProviderInfo struct {
	Provider    string `json:"provider"`
	TextModel   string `json:"text_model"`
	VisionModel string `json:"vision_model"`
	BaseURL     string `json:"base_url"`
}

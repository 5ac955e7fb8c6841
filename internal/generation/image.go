package generation

import (
	"encoding/base64"
	"errors"
	"strings"
)

// validateImageDataURI checks that imagem is a decodable data URI
// (data:<mediatype>[;base64],<payload>). The URI itself is forwarded
// upstream unmodified; this only rejects input the provider could never
// decode. Messages are user-facing, so they are in Portuguese.
func validateImageDataURI(imagem string) error {
	rest, found := strings.CutPrefix(imagem, "data:")
	if !found {
		return errors.New("a imagem enviada não é uma data URI válida")
	}

	meta, payload, found := strings.Cut(rest, ",")
	if !found {
		return errors.New("a data URI da imagem não contém dados")
	}

	if strings.HasSuffix(meta, ";base64") {
		if _, err := base64.StdEncoding.DecodeString(payload); err != nil {
			return errors.New("os dados base64 da imagem são inválidos")
		}
	}

	return nil
}

// Package images resuelve la entrada de imagen de un producto a una referencia
// opaca almacenable. El ledger nunca ve bytes crudos: lo que guarda es una URL
// o un data-URL ya codificado.
package images

import (
	"encoding/base64"
	"fmt"
	"strings"

	"github.com/jhoicas/polipostres-api/internal/domain"
)

// PlaceholderURL imagen de relleno cuando el producto no trae ninguna.
const PlaceholderURL = "https://placehold.co/600x400.png"

// Input variante etiquetada de la imagen suministrada por el usuario:
// o una URL, o un archivo crudo con su tipo MIME. Si ambos están vacíos se
// resuelve al placeholder.
type Input struct {
	URL      string
	Raw      []byte
	MimeType string
}

// Resolve convierte la entrada en la referencia final.
// Los archivos crudos se vuelven data-URL (data:<mime>;base64,<contenido>),
// equivalente a leer el archivo con un FileReader en el navegador.
func Resolve(in Input) (string, error) {
	switch {
	case len(in.Raw) > 0:
		if !strings.HasPrefix(in.MimeType, "image/") {
			return "", &domain.ValidationError{Field: "image_mime", Reason: "debe ser un tipo MIME de imagen"}
		}
		encoded := base64.StdEncoding.EncodeToString(in.Raw)
		return fmt.Sprintf("data:%s;base64,%s", in.MimeType, encoded), nil
	case in.URL != "":
		return in.URL, nil
	default:
		return PlaceholderURL, nil
	}
}

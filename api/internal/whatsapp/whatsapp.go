// Package whatsapp composes wa.me deep links. Pure functions, no I/O:
// same inputs always produce the same URL string.
package whatsapp

import (
	"net/url"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"golang.org/x/text/number"

	"muebleria/api/internal/core/domain"
)

const defaultProductMessage = "Me gustaría recibir más información."

var esAR = message.NewPrinter(language.MustParse("es-AR"))

// BuildLink returns a wa.me URL for the given phone and message. The
// phone is stripped to digits; the message is query-escaped. When a
// product is supplied the message is rebuilt: a header naming the
// product, a locale-formatted price line if a price is present, then
// the caller's message below.
func BuildLink(phone, msg string, product *domain.Product) string {
	var b strings.Builder
	if product != nil {
		b.WriteString("Hola! Me interesa el producto: *")
		b.WriteString(product.Name)
		b.WriteString("*\n\n")
		if product.Price != nil {
			b.WriteString(esAR.Sprintf("Precio: $%v\n", number.Decimal(*product.Price)))
		}
		b.WriteString("\n")
		if msg != "" {
			b.WriteString(msg)
		} else {
			b.WriteString(defaultProductMessage)
		}
	} else {
		b.WriteString(msg)
	}

	return "https://wa.me/" + digitsOnly(phone) + "?text=" + url.QueryEscape(b.String())
}

func digitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

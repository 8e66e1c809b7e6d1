package whatsapp

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"muebleria/api/internal/core/domain"
)

// decodeText extracts and unescapes the text query parameter.
func decodeText(t *testing.T, link string) string {
	t.Helper()
	u, err := url.Parse(link)
	require.NoError(t, err)
	return u.Query().Get("text")
}

func TestBuildLink_StripsPhoneFormatting(t *testing.T) {
	link := BuildLink("+54 11 1234-5678", "hola", nil)

	assert.True(t, strings.HasPrefix(link, "https://wa.me/541112345678?text="), "got %q", link)
	assert.Equal(t, "hola", decodeText(t, link))
}

func TestBuildLink_Deterministic(t *testing.T) {
	p := &domain.Product{Name: "Mesa ratona"}
	first := BuildLink("5491122223333", "consulta", p)
	second := BuildLink("5491122223333", "consulta", p)
	assert.Equal(t, first, second)
}

func TestBuildLink_ProductHeaderAndPrice(t *testing.T) {
	price := 10000.0
	p := &domain.Product{Name: "Sofá 3 cuerpos", Price: &price}

	link := BuildLink("5491122223333", "¿Hay stock?", p)
	text := decodeText(t, link)

	assert.Contains(t, text, "Hola! Me interesa el producto: *Sofá 3 cuerpos*")
	assert.Contains(t, text, "Precio: $10.000", "price must be formatted for es-AR")
	// The price line comes before the caller's message.
	assert.Less(t, strings.Index(text, "10.000"), strings.Index(text, "¿Hay stock?"))
}

func TestBuildLink_ProductWithoutPrice(t *testing.T) {
	p := &domain.Product{Name: "Silla nórdica"}

	text := decodeText(t, BuildLink("5491122223333", "me interesa", p))
	assert.Contains(t, text, "*Silla nórdica*")
	assert.NotContains(t, text, "Precio:")
	assert.Contains(t, text, "me interesa")
}

func TestBuildLink_ProductWithEmptyMessage(t *testing.T) {
	p := &domain.Product{Name: "Placard"}

	text := decodeText(t, BuildLink("5491122223333", "", p))
	assert.Contains(t, text, defaultProductMessage)
}

func TestBuildLink_NoProductUsesMessageVerbatim(t *testing.T) {
	text := decodeText(t, BuildLink("5491122223333", "Quiero un presupuesto", nil))
	assert.Equal(t, "Quiero un presupuesto", text)
}

func TestDigitsOnly(t *testing.T) {
	assert.Equal(t, "541112345678", digitsOnly("+54 (11) 1234-5678"))
	assert.Equal(t, "", digitsOnly("++--  "))
}

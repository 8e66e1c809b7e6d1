package mailer

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wneessen/go-mail"

	"muebleria/api/internal/core/domain"
)

func testInquiry() *domain.Inquiry {
	return &domain.Inquiry{
		ID:      "a1b2c3",
		Name:    "Ana Ruiz",
		Email:   "ana@example.com",
		Phone:   "+5491122223333",
		Message: "Busco un sofá de 3 cuerpos",
	}
}

func TestBuildMessage(t *testing.T) {
	msg, err := BuildMessage("ventas@example.com", "ana@example.com", "Nueva consulta: Ana Ruiz", "<p>hola</p>")
	require.NoError(t, err)

	recipients, err := msg.GetRecipients()
	require.NoError(t, err)
	assert.Equal(t, []string{"ana@example.com"}, recipients)

	subject := msg.GetGenHeader(mail.HeaderSubject)
	require.Len(t, subject, 1)
	assert.Equal(t, "Nueva consulta: Ana Ruiz", subject[0])
}

func TestBuildMessage_InvalidRecipient(t *testing.T) {
	_, err := BuildMessage("ventas@example.com", "not an address", "s", "b")
	assert.Error(t, err)
}

func TestRenderAlert(t *testing.T) {
	body, err := render(alertTmpl, testInquiry())
	require.NoError(t, err)

	assert.Contains(t, body, "Nueva consulta desde la web")
	assert.Contains(t, body, "Ana Ruiz")
	assert.Contains(t, body, "ana@example.com")
	assert.Contains(t, body, "+5491122223333")
	assert.NotContains(t, body, "Producto consultado", "no product line without a product_id")
}

func TestRenderAlert_WithProduct(t *testing.T) {
	inq := testInquiry()
	productID := "7e57d004-2b97-44e7-8f04-79ef6f0b87c5"
	inq.ProductID = &productID

	body, err := render(alertTmpl, inq)
	require.NoError(t, err)
	assert.Contains(t, body, "Producto consultado")
	assert.Contains(t, body, productID)
}

func TestRenderConfirmation(t *testing.T) {
	body, err := render(confirmationTmpl, testInquiry())
	require.NoError(t, err)

	assert.Contains(t, body, "Gracias por tu consulta")
	assert.Contains(t, body, "Hola Ana Ruiz")
	assert.Contains(t, body, "Busco un sofá de 3 cuerpos")
}

func TestRender_EscapesHTML(t *testing.T) {
	inq := testInquiry()
	inq.Message = `<script>alert("xss")</script> necesito una mesa`

	body, err := render(alertTmpl, inq)
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

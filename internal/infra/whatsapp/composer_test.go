package whatsapp

import (
	"net/url"
	"strings"
	"testing"
	"time"

	"shopfront/config"
	"shopfront/internal/domain/entity"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testComposerConfig() *config.Config {
	return &config.Config{
		Shop: &config.ShopConfig{WhatsAppNumber: "919794725337"},
	}
}

func productOrder() *entity.Order {
	return entity.NewProductOrder(
		"ORD-000123",
		"9876543210",
		[]entity.OrderLine{
			{ProductID: "1", Name: "Blue Gel Pen", Price: 10, Quantity: 2},
			{ProductID: "2", Name: "A4 Register (120 pgs)", Price: 60, Quantity: 1},
		},
		entity.Bill{Subtotal: 80, Discount: 4, DeliveryFee: 29, GrandTotal: 105},
		entity.Address{Label: "Home", FullAddress: "12 Station Road, Gonda"},
		entity.PaymentCOD,
		time.Now(),
	)
}

func TestComposer_Compose_ProductOrder(t *testing.T) {
	composer := NewComposer(testComposerConfig())

	message := composer.Compose(productOrder())

	expected := "*NEW ORDER: ORD-000123*\n" +
		"Phone: 9876543210\n" +
		"Total: 105\n" +
		"Payment: COD\n" +
		"Address: 12 Station Road, Gonda\n" +
		"Items:\n" +
		"- Blue Gel Pen x2\n" +
		"- A4 Register (120 pgs) x1\n"
	assert.Equal(t, expected, message)
}

func TestComposer_Compose_ServiceOrder(t *testing.T) {
	composer := NewComposer(testComposerConfig())

	order := entity.NewServiceOrder(
		"SRV-000042",
		"9876543210",
		entity.ServiceDetails{Type: entity.ServicePhotocopy, Ink: entity.InkBlackWhite, PaperSize: "A4", Pages: 5},
		entity.Bill{Subtotal: 10, GrandTotal: 10},
		entity.Address{FullAddress: "12 Station Road, Gonda"},
		entity.PaymentOnline,
		time.Now(),
	)

	message := composer.Compose(order)

	assert.Contains(t, message, "*NEW ORDER: SRV-000042*\n")
	assert.Contains(t, message, "Payment: ONLINE\n")
	assert.Contains(t, message, "Service: photocopy\n")
	assert.Contains(t, message, "Ink: bw\n")
	assert.Contains(t, message, "Pages: 5\n")
	assert.NotContains(t, message, "Items:")
}

func TestComposer_Compose_IsDeterministic(t *testing.T) {
	composer := NewComposer(testComposerConfig())
	order := productOrder()

	assert.Equal(t, composer.Compose(order), composer.Compose(order))
}

func TestComposer_DeepLink_EncodesTheMessage(t *testing.T) {
	composer := NewComposer(testComposerConfig())
	order := productOrder()

	link := composer.DeepLink(order)

	require.True(t, strings.HasPrefix(link, "https://wa.me/919794725337?text="), link)

	parsed, err := url.Parse(link)
	require.NoError(t, err)
	assert.Equal(t, composer.Compose(order), parsed.Query().Get("text"))
}

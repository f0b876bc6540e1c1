// Package whatsapp builds the pre-filled order messages and wa.me deep
// links attached to every product card.
package whatsapp

import (
	"fmt"
	"net/url"
	"strings"

	"shopde/internal/format"
	"shopde/internal/model"
)

// Builder produces order messages and deep links for a fixed destination
// number, currency symbol and site origin. All methods are pure; building a
// link never contacts the messaging service.
type Builder struct {
	number   string
	currency string
	origin   string
}

// NewBuilder creates a builder. number is the destination in international
// format without "+" or spaces; origin is the public site origin used for
// canonical product URLs (no trailing slash).
func NewBuilder(number, currency, origin string) *Builder {
	return &Builder{
		number:   number,
		currency: currency,
		origin:   strings.TrimRight(origin, "/"),
	}
}

// ProductURL returns the canonical detail-page URL for a product.
func (b *Builder) ProductURL(p model.Product) string {
	return fmt.Sprintf("%s/producto.html?id=%s", b.origin, url.QueryEscape(p.ID))
}

// Message returns the order message for a product. The template is fixed;
// the result is deterministic for a given product and builder.
func (b *Builder) Message(p model.Product) string {
	return fmt.Sprintf(`Hola, estoy interesado en este producto:

🛍️ Producto: %s
💰 Precio: %s%s
📦 Categoría: %s
🔗 Link del producto:
%s

¿Me brindas más información?`,
		p.Name,
		b.currency, format.Price(p.Price),
		p.Category,
		b.ProductURL(p),
	)
}

// Link returns the wa.me deep link carrying the encoded order message. The
// message contains newlines, emoji and a full URL, so it is passed through
// query encoding in full.
func (b *Builder) Link(p model.Product) string {
	query := url.Values{"text": {b.Message(p)}}
	return fmt.Sprintf("https://wa.me/%s?%s", b.number, query.Encode())
}

// Package render turns catalogue view models into HTML fragments consumed
// by the static storefront and admin pages. All user-supplied text passes
// through html/template contextual escaping; nothing in this package writes
// raw strings into markup.
package render

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"shopde/internal/format"
	"shopde/internal/model"
	"shopde/internal/whatsapp"
)

// DefaultSkeletonCount is the number of placeholder cards rendered while
// the catalogue is loading.
const DefaultSkeletonCount = 8

// Renderer renders catalogue fragments with a fixed currency symbol and
// link builder.
type Renderer struct {
	currency      string
	skeletonCount int
	links         *whatsapp.Builder
	tmpl          *template.Template
}

// New creates a renderer. skeletonCount <= 0 falls back to
// DefaultSkeletonCount.
func New(currency string, skeletonCount int, links *whatsapp.Builder) (*Renderer, error) {
	if skeletonCount <= 0 {
		skeletonCount = DefaultSkeletonCount
	}

	tmpl, err := template.New("catalog").Parse(templates)
	if err != nil {
		return nil, fmt.Errorf("failed to parse catalog templates: %w", err)
	}

	return &Renderer{
		currency:      currency,
		skeletonCount: skeletonCount,
		links:         links,
		tmpl:          tmpl,
	}, nil
}

type cardView struct {
	ID           string
	Name         string
	Category     string
	ImageURL     string
	Currency     string
	PriceDisplay string
	DetailURL    string
	WhatsAppURL  string
}

type rowView struct {
	ID           string
	Name         string
	Category     string
	ImageURL     string
	PriceDisplay string
	CreatedAt    string
}

type chipView struct {
	Value  string
	Label  string
	Active bool
}

func (r *Renderer) cardView(p model.Product) cardView {
	return cardView{
		ID:           p.ID,
		Name:         p.Name,
		Category:     p.Category,
		ImageURL:     p.ImageURL,
		Currency:     r.currency,
		PriceDisplay: format.Price(p.Price),
		DetailURL:    fmt.Sprintf("producto.html?id=%s", p.ID),
		WhatsAppURL:  r.links.Link(p),
	}
}

func (r *Renderer) execute(name string, data interface{}) (template.HTML, error) {
	var buf bytes.Buffer
	if err := r.tmpl.ExecuteTemplate(&buf, name, data); err != nil {
		return "", fmt.Errorf("failed to render %s: %w", name, err)
	}
	return template.HTML(buf.String()), nil
}

// Skeletons renders the loading placeholders.
func (r *Renderer) Skeletons() (template.HTML, error) {
	return r.execute("skeletons", make([]struct{}, r.skeletonCount))
}

// Empty renders the empty-state block shown when no products match.
func (r *Renderer) Empty(message string) (template.HTML, error) {
	if message == "" {
		message = "No se encontraron productos"
	}
	return r.execute("empty", message)
}

// ProductCards renders one card per product, each carrying the detail link
// and the pre-filled WhatsApp link.
func (r *Renderer) ProductCards(products []model.Product) (template.HTML, error) {
	views := make([]cardView, len(products))
	for i, p := range products {
		views[i] = r.cardView(p)
	}
	return r.execute("cards", views)
}

// ProductRows renders the admin table rows. Edit and delete hooks are
// exposed as data attributes picked up by the admin page script.
func (r *Renderer) ProductRows(products []model.Product) (template.HTML, error) {
	views := make([]rowView, len(products))
	for i, p := range products {
		views[i] = rowView{
			ID:           p.ID,
			Name:         p.Name,
			Category:     p.Category,
			ImageURL:     p.ImageURL,
			PriceDisplay: r.currency + format.Price(p.Price),
			CreatedAt:    p.CreatedAt.In(time.Local).Format("02/01/2006"),
		}
	}
	return r.execute("rows", views)
}

// CategoryChips renders the filter chip strip. The leading "Todos" chip
// carries the sentinel value and is active when no category filter is set.
func (r *Renderer) CategoryChips(categories []model.Category, active string) (template.HTML, error) {
	chips := make([]chipView, 0, len(categories)+1)
	chips = append(chips, chipView{
		Value:  model.CategoryAll,
		Label:  "Todos",
		Active: active == "" || active == model.CategoryAll,
	})
	for _, c := range categories {
		chips = append(chips, chipView{Value: c.Name, Label: c.Name, Active: active == c.Name})
	}
	return r.execute("chips", chips)
}

const templates = `
{{define "skeletons"}}{{range .}}<div class="skeleton-card">
  <div class="skeleton skeleton-img"></div>
  <div class="skeleton-body">
    <div class="skeleton skeleton-line w-80"></div>
    <div class="skeleton skeleton-line w-50"></div>
    <div class="skeleton skeleton-line w-30"></div>
  </div>
</div>
{{end}}{{end}}

{{define "empty"}}<div class="empty-state">
  <span class="empty-icon">📦</span>
  <h3>{{.}}</h3>
  <p class="text-gray">Intenta ajustando los filtros de búsqueda.</p>
</div>
{{end}}

{{define "cards"}}{{range .}}<article class="product-card" data-id="{{.ID}}">
  <a href="{{.DetailURL}}" class="card-image-wrap">
    <img src="{{.ImageURL}}" alt="{{.Name}}" loading="lazy" />
    <span class="card-category-badge">{{.Category}}</span>
  </a>
  <div class="card-body">
    <h3 class="card-name">{{.Name}}</h3>
    <div class="card-price"><span>{{.Currency}}</span>{{.PriceDisplay}}</div>
    <div class="card-actions">
      <a href="{{.DetailURL}}" class="btn btn-outline">Ver producto</a>
      <a href="{{.WhatsAppURL}}" target="_blank" rel="noopener" class="btn btn-whatsapp">Pedir</a>
    </div>
  </div>
</article>
{{end}}{{end}}

{{define "rows"}}{{range .}}<tr data-id="{{.ID}}">
  <td>
    <div class="flex items-center gap-2">
      <img class="table-product-img" src="{{.ImageURL}}" alt="{{.Name}}" />
      <span class="table-product-name">{{.Name}}</span>
    </div>
  </td>
  <td>{{.PriceDisplay}}</td>
  <td><span class="badge badge-blue">{{.Category}}</span></td>
  <td class="text-sm text-gray">{{.CreatedAt}}</td>
  <td>
    <div class="action-btns">
      <button class="btn btn-outline" data-action="edit" data-id="{{.ID}}">Editar</button>
      <button class="btn btn-danger" data-action="delete" data-id="{{.ID}}">Eliminar</button>
    </div>
  </td>
</tr>
{{end}}{{end}}

{{define "chips"}}{{range .}}<button class="filter-chip{{if .Active}} active{{end}}" data-cat="{{.Value}}">{{.Label}}</button>
{{end}}{{end}}
`

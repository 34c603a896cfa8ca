// Package view holds the UI-ready projections of the wire response records.
// View models are validated and compact; the wire shape never reaches a
// consuming surface directly.
package view

import (
	"github.com/shopspring/decimal"

	"marketplace-catalog/internal/catalog/api"
	"marketplace-catalog/internal/common/money"
	"marketplace-catalog/internal/common/strutil"
)

// Attribute is a flattened attribute pair. Group and source metadata from
// the wire shape are discarded.
type Attribute struct {
	ID    string  `json:"id"`
	Name  *string `json:"name,omitempty"`
	Value *string `json:"value,omitempty"`
}

// ListItem is one entry of a search result list.
type ListItem struct {
	ID             string           `json:"id"`
	Title          string           `json:"title"`
	Price          decimal.Decimal  `json:"price"`
	IsFreeShipping bool             `json:"isFreeShipping"`
	OriginalPrice  *decimal.Decimal `json:"originalPrice,omitempty"`
	CurrencyID     *string          `json:"currencyId,omitempty"`
	ProductImage   *string          `json:"productImage,omitempty"`
	Attributes     []Attribute      `json:"attributes,omitempty"`
}

// PriceDisplay renders the localized currency string for the item price.
func (m ListItem) PriceDisplay() string {
	return money.CurrencyString(m.Price, deref(m.CurrencyID))
}

// DetailModel is the full product-detail projection merged from the details
// and description responses.
type DetailModel struct {
	ID            string           `json:"id"`
	Title         string           `json:"title"`
	Price         decimal.Decimal  `json:"price"`
	Images        []string         `json:"images"`
	FreeShipping  bool             `json:"freeShipping"`
	Attributes    []Attribute      `json:"attributes,omitempty"`
	OriginalPrice *decimal.Decimal `json:"originalPrice,omitempty"`
	Description   *string          `json:"description,omitempty"`
	CurrencyID    *string          `json:"currencyId,omitempty"`
}

// PriceDisplay renders the localized currency string for the item price.
func (m DetailModel) PriceDisplay() string {
	return money.CurrencyString(m.Price, deref(m.CurrencyID))
}

// ListItemFromSearchResult projects one raw search entry. The caller is
// responsible for filtering out entries without id, title or price first;
// missing fields here fall back to zero values so a stray invalid entry can
// never panic.
func ListItemFromSearchResult(r *api.SearchResult) ListItem {
	if r == nil {
		r = &api.SearchResult{}
	}

	var price float64
	if r.Price != nil {
		price = *r.Price
	}

	return ListItem{
		ID:             deref(r.ID),
		Title:          deref(r.Title),
		Price:          money.Monetary(price),
		OriginalPrice:  money.MonetaryPtr(r.OriginalPrice),
		CurrencyID:     r.CurrencyID,
		ProductImage:   strutil.ForceHTTPSPtr(r.Thumbnail),
		IsFreeShipping: r.Shipping != nil && r.Shipping.FreeShipping != nil && *r.Shipping.FreeShipping,
		Attributes:     flattenAttributes(r.Attributes),
	}
}

// DetailFromResponses merges the details and description payloads into a
// DetailModel. Callers validate id, title and price presence beforehand.
func DetailFromResponses(details api.ItemDetailsResponse, description api.ItemDescriptionResponse) DetailModel {
	var price float64
	if details.Price != nil {
		price = *details.Price
	}

	images := make([]string, 0, len(details.Pictures))
	for _, p := range details.Pictures {
		if p != nil && p.SecureURL != nil {
			images = append(images, *p.SecureURL)
		}
	}

	return DetailModel{
		ID:            deref(details.ID),
		Title:         deref(details.Title),
		Price:         money.Monetary(price),
		OriginalPrice: money.MonetaryPtr(details.OriginalPrice),
		Images:        images,
		FreeShipping:  details.Shipping != nil && details.Shipping.FreeShipping != nil && *details.Shipping.FreeShipping,
		Attributes:    flattenAttributes(details.Attributes),
		CurrencyID:    details.CurrencyID,
		Description:   description.PlainText,
	}
}

// flattenAttributes keeps id, name and value name, dropping the wire
// attribute's group and source metadata. A missing id becomes an empty
// string; nil entries are kept as empty pairs to preserve positions the way
// the original list rendering expects.
func flattenAttributes(attrs []*api.Attribute) []Attribute {
	if len(attrs) == 0 {
		return nil
	}
	out := make([]Attribute, 0, len(attrs))
	for _, a := range attrs {
		if a == nil {
			out = append(out, Attribute{})
			continue
		}
		out = append(out, Attribute{
			ID:    deref(a.ID),
			Name:  a.Name,
			Value: a.ValueName,
		})
	}
	return out
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

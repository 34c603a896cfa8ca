// Package api contains the typed gateway over the fetch transport and the
// wire-shaped response records it decodes into. Every field is optional
// because the upstream catalog contract guarantees nothing; unknown keys
// are ignored on decode.
package api

// SearchResponse is the wire shape of a catalog search.
type SearchResponse struct {
	SiteID  string          `json:"site_id,omitempty"`
	Query   *string         `json:"query,omitempty"`
	Paging  *Paging         `json:"paging,omitempty"`
	Results []*SearchResult `json:"results,omitempty"`
}

type Paging struct {
	Total          *int `json:"total,omitempty"`
	PrimaryResults *int `json:"primary_results,omitempty"`
	Offset         *int `json:"offset,omitempty"`
	Limit          *int `json:"limit,omitempty"`
}

// SearchResult is one entry of a search response. Entries missing id, title
// or price are dropped by the repository before they reach any view model.
type SearchResult struct {
	ID                *string       `json:"id,omitempty"`
	Title             *string       `json:"title,omitempty"`
	Price             *float64      `json:"price,omitempty"`
	OriginalPrice     *float64      `json:"original_price,omitempty"`
	SalePrice         *SalePrice    `json:"sale_price,omitempty"`
	CurrencyID        *string       `json:"currency_id,omitempty"`
	Thumbnail         *string       `json:"thumbnail,omitempty"`
	ThumbnailID       *string       `json:"thumbnail_id,omitempty"`
	Condition         *string       `json:"condition,omitempty"`
	Permalink         *string       `json:"permalink,omitempty"`
	BuyingMode        *string       `json:"buying_mode,omitempty"`
	CategoryID        *string       `json:"category_id,omitempty"`
	DomainID          *string       `json:"domain_id,omitempty"`
	AvailableQuantity *int          `json:"available_quantity,omitempty"`
	ListingTypeID     *string       `json:"listing_type_id,omitempty"`
	Seller            *Seller       `json:"seller,omitempty"`
	Installments      *Installments `json:"installments,omitempty"`
	Shipping          *Shipping     `json:"shipping,omitempty"`
	Address           *Address      `json:"address,omitempty"`
	Attributes        []*Attribute  `json:"attributes,omitempty"`
}

type SalePrice struct {
	Amount        *float64 `json:"amount,omitempty"`
	RegularAmount *float64 `json:"regular_amount,omitempty"`
	CurrencyID    *string  `json:"currency_id,omitempty"`
}

type Seller struct {
	ID       *int64  `json:"id,omitempty"`
	Nickname *string `json:"nickname,omitempty"`
}

type Installments struct {
	Quantity   *int     `json:"quantity,omitempty"`
	Amount     *float64 `json:"amount,omitempty"`
	Rate       *float64 `json:"rate,omitempty"`
	CurrencyID *string  `json:"currency_id,omitempty"`
}

type Shipping struct {
	FreeShipping *bool   `json:"free_shipping,omitempty"`
	Mode         *string `json:"mode,omitempty"`
	LogisticType *string `json:"logistic_type,omitempty"`
	StorePickUp  *bool   `json:"store_pick_up,omitempty"`
}

type Address struct {
	StateID   *string `json:"state_id,omitempty"`
	StateName *string `json:"state_name,omitempty"`
	CityName  *string `json:"city_name,omitempty"`
}

// Attribute is the rich wire attribute; view mapping flattens it, keeping
// only id and value name.
type Attribute struct {
	ID                 *string           `json:"id,omitempty"`
	Name               *string           `json:"name,omitempty"`
	ValueID            *string           `json:"value_id,omitempty"`
	ValueName          *string           `json:"value_name,omitempty"`
	AttributeGroupID   *string           `json:"attribute_group_id,omitempty"`
	AttributeGroupName *string           `json:"attribute_group_name,omitempty"`
	Source             *int64            `json:"source,omitempty"`
	Values             []*AttributeValue `json:"values,omitempty"`
}

type AttributeValue struct {
	ID     *string `json:"id,omitempty"`
	Name   *string `json:"name,omitempty"`
	Source *int64  `json:"source,omitempty"`
}

// ItemDetailsResponse is the wire shape of one catalog item.
type ItemDetailsResponse struct {
	ID                *string      `json:"id,omitempty"`
	SiteID            *string      `json:"site_id,omitempty"`
	Title             *string      `json:"title,omitempty"`
	Price             *float64     `json:"price,omitempty"`
	BasePrice         *float64     `json:"base_price,omitempty"`
	OriginalPrice     *float64     `json:"original_price,omitempty"`
	CurrencyID        *string      `json:"currency_id,omitempty"`
	InitialQuantity   *int         `json:"initial_quantity,omitempty"`
	Condition         *string      `json:"condition,omitempty"`
	Permalink         *string      `json:"permalink,omitempty"`
	Thumbnail         *string      `json:"thumbnail,omitempty"`
	ThumbnailID       *string      `json:"thumbnail_id,omitempty"`
	Pictures          []*Picture   `json:"pictures,omitempty"`
	Shipping          *Shipping    `json:"shipping,omitempty"`
	SellerID          *int64       `json:"seller_id,omitempty"`
	CategoryID        *string      `json:"category_id,omitempty"`
	DomainID          *string      `json:"domain_id,omitempty"`
	Attributes        []*Attribute `json:"attributes,omitempty"`
	Variations        []*Variation `json:"variations,omitempty"`
	SaleTerms         []*Attribute `json:"sale_terms,omitempty"`
	Warranty          *string      `json:"warranty,omitempty"`
	Status            *string      `json:"status,omitempty"`
	Tags              []*string    `json:"tags,omitempty"`
	ListingTypeID     *string      `json:"listing_type_id,omitempty"`
	DateCreated       *string      `json:"date_created,omitempty"`
	LastUpdated       *string      `json:"last_updated,omitempty"`
}

type Picture struct {
	ID        *string `json:"id,omitempty"`
	URL       *string `json:"url,omitempty"`
	SecureURL *string `json:"secure_url,omitempty"`
	Size      *string `json:"size,omitempty"`
	MaxSize   *string `json:"max_size,omitempty"`
	Quality   *string `json:"quality,omitempty"`
}

type Variation struct {
	ID                    *int64       `json:"id,omitempty"`
	Price                 *float64     `json:"price,omitempty"`
	AttributeCombinations []*Attribute `json:"attribute_combinations,omitempty"`
	AvailableQuantity     *int         `json:"available_quantity,omitempty"`
	PictureIDs            []*string    `json:"picture_ids,omitempty"`
}

// ItemDescriptionResponse is the wire shape of an item description.
type ItemDescriptionResponse struct {
	Text        *string   `json:"text,omitempty"`
	PlainText   *string   `json:"plain_text,omitempty"`
	DateCreated *string   `json:"date_created,omitempty"`
	LastUpdated *string   `json:"last_updated,omitempty"`
	Snapshot    *Snapshot `json:"snapshot,omitempty"`
}

type Snapshot struct {
	URL    *string `json:"url,omitempty"`
	Width  *int    `json:"width,omitempty"`
	Height *int    `json:"height,omitempty"`
	Status *string `json:"status,omitempty"`
}

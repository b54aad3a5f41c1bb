package product

import (
	"time"

	"github.com/techcomputer/portal/core"
)

// Product is a digital good. FileURL stays empty on public reads until the
// buyer's payment is verified; the backend controls its visibility.
type Product struct {
	ID             string    `json:"_id"`
	Title          string    `json:"title"`
	TitleBn        string    `json:"titleBn,omitempty"`
	Type           string    `json:"type,omitempty"`
	Description    string    `json:"description,omitempty"`
	Price          int       `json:"price"`
	TransactionFee *int      `json:"transactionFee,omitempty"`
	ThumbnailURL   string    `json:"thumbnailUrl,omitempty"`
	LogoKey        string    `json:"logoKey,omitempty"`
	FileURL        string    `json:"fileUrl,omitempty"`
	IsActive       bool      `json:"isActive"`
	CreatedAt      time.Time `json:"createdAt"`
}

// NewProduct is the admin create/update payload. Updates always send the
// complete payload; partial updates are not part of the backend contract.
type NewProduct struct {
	Title          string `json:"title" validate:"required"`
	TitleBn        string `json:"titleBn"`
	Type           string `json:"type"`
	Description    string `json:"description"`
	Price          int    `json:"price" validate:"required,gt=0"`
	TransactionFee *int   `json:"transactionFee,omitempty"`
	ThumbnailURL   string `json:"thumbnailUrl"`
	LogoKey        string `json:"logoKey"`
	FileURL        string `json:"fileUrl" validate:"required,url"`
	IsActive       bool   `json:"isActive"`
}

func (np *NewProduct) Validate() error {
	np.Title = core.CleanString(np.Title)
	np.FileURL = core.CleanString(np.FileURL)
	return core.Validate.Struct(np)
}

// Payload reconstructs the full update payload for a product, which is how
// single-field changes (pausing/activating) are expressed on the wire.
func (p Product) Payload() NewProduct {
	return NewProduct{
		Title:          p.Title,
		TitleBn:        p.TitleBn,
		Type:           p.Type,
		Description:    p.Description,
		Price:          p.Price,
		TransactionFee: p.TransactionFee,
		ThumbnailURL:   p.ThumbnailURL,
		LogoKey:        p.LogoKey,
		FileURL:        p.FileURL,
		IsActive:       p.IsActive,
	}
}

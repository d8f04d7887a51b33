package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Product struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Description  string             `bson:"description" json:"description"`
	Category     string             `bson:"category" json:"category"`
	Price        float64            `bson:"price" json:"price"`
	Images       []string           `bson:"images" json:"images"`
	Video        string             `bson:"video,omitempty" json:"video,omitempty"`
	Discount     float64            `bson:"discount" json:"discount"`
	DiscountTill *time.Time         `bson:"discountTill,omitempty" json:"discountTill,omitempty"`
	Quantity     int                `bson:"quantity" json:"quantity"`
	Size         string             `bson:"size" json:"size"`
	Seller       string             `bson:"seller" json:"seller"` // seller's email
	CreatedAt    time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// SellerInfo is the slice of the user record exposed on joined product dumps.
type SellerInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// ProductWithSeller is a Product with its seller record resolved inline.
type ProductWithSeller struct {
	Product    `bson:",inline"`
	SellerUser *SellerInfo `bson:"sellerInfo,omitempty" json:"sellerInfo,omitempty"`
}

package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderStatus string

// Orders start out pending; an admin moves them to exactly one of the
// transition targets below.
const (
	OrderStatusPending  OrderStatus = "pending"
	OrderStatusAccepted OrderStatus = "accepted"
	OrderStatusShipped  OrderStatus = "shipped"
	OrderStatusRejected OrderStatus = "rejected"
)

// ValidStatusUpdate reports whether s is a status an admin may set.
// "pending" is the initial state only, never an update target.
func ValidStatusUpdate(s OrderStatus) bool {
	return s == OrderStatusAccepted || s == OrderStatusShipped || s == OrderStatusRejected
}

type PaymentMethod string

const (
	PaymentCard PaymentMethod = "card"
	PaymentCOD  PaymentMethod = "cod"
)

// UserInfo is the buyer snapshot embedded on an order at creation time.
type UserInfo struct {
	Name  string `bson:"name" json:"name"`
	Email string `bson:"email" json:"email"`
}

// ShippingAddress is the destination embedded on an order.
type ShippingAddress struct {
	Country string `bson:"country" json:"country"`
	City    string `bson:"city" json:"city"`
	Address string `bson:"address" json:"address"`
}

type Order struct {
	ID            primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	User          string             `bson:"user" json:"user"` // buyer's email
	Product       primitive.ObjectID `bson:"product" json:"product"`
	PaymentMethod PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	Discount      float64            `bson:"discount" json:"discount"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Price         float64            `bson:"price" json:"price"`
	Shipping      float64            `bson:"shipping" json:"shipping"`
	UserInfo      UserInfo           `bson:"userInfo" json:"userInfo"`
	Address       ShippingAddress    `bson:"order" json:"order"`
	Status        OrderStatus        `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

// PopulatedOrder is an Order with its referenced product resolved inline,
// as returned by the order listings.
type PopulatedOrder struct {
	ID            primitive.ObjectID `bson:"_id" json:"_id"`
	User          string             `bson:"user" json:"user"`
	Product       Product            `bson:"product" json:"product"`
	PaymentMethod PaymentMethod      `bson:"paymentMethod" json:"paymentMethod"`
	Discount      float64            `bson:"discount" json:"discount"`
	Quantity      int                `bson:"quantity" json:"quantity"`
	Price         float64            `bson:"price" json:"price"`
	Shipping      float64            `bson:"shipping" json:"shipping"`
	UserInfo      UserInfo           `bson:"userInfo" json:"userInfo"`
	Address       ShippingAddress    `bson:"order" json:"order"`
	Status        OrderStatus        `bson:"status" json:"status"`
	CreatedAt     time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt     time.Time          `bson:"updatedAt" json:"updatedAt"`
}

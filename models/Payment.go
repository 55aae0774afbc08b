package models

import (
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

// PaymentImage stores the uploaded proof image inline on the document
type PaymentImage struct {
	Data        []byte `bson:"data" json:"-"`
	ContentType string `bson:"contentType" json:"contentType"`
	Filename    string `bson:"filename" json:"filename"`
}

// Payment is an ad-hoc payment-proof record from the public payment form. It
// is not linked to a Registration by reference and has its own lifecycle.
type Payment struct {
	ID        primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name      string             `bson:"name" json:"name"`
	Email     string             `bson:"email" json:"email"`
	Message   string             `bson:"message" json:"message"`
	Image     *PaymentImage      `bson:"image,omitempty" json:"image,omitempty"`
	CreatedAt time.Time          `bson:"createdAt" json:"createdAt"`
	UpdatedAt time.Time          `bson:"updatedAt" json:"updatedAt"`
}

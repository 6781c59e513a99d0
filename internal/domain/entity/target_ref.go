package entity

import (
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

// TargetKind enumerates the entity kinds comments and interactions can attach to.
type TargetKind string

const (
	TargetKindArticle       TargetKind = "article"
	TargetKindMerchantOffer TargetKind = "merchant_offer"
	TargetKindComment       TargetKind = "comment"
)

// String returns the string representation of the TargetKind.
func (k TargetKind) String() string {
	return string(k)
}

// IsValid checks if the TargetKind is a valid value.
func (k TargetKind) IsValid() bool {
	switch k {
	case TargetKindArticle, TargetKindMerchantOffer, TargetKindComment:
		return true
	default:
		return false
	}
}

// TargetRef points at an article, a merchant offer or a comment.
type TargetRef struct {
	Kind TargetKind `json:"kind"`
	ID   uuid.UUID  `json:"id"`
}

// ArticleRef builds a TargetRef to an article.
func ArticleRef(id uuid.UUID) TargetRef {
	return TargetRef{Kind: TargetKindArticle, ID: id}
}

// MerchantOfferRef builds a TargetRef to a merchant offer.
func MerchantOfferRef(id uuid.UUID) TargetRef {
	return TargetRef{Kind: TargetKindMerchantOffer, ID: id}
}

// CommentRef builds a TargetRef to a comment.
func CommentRef(id uuid.UUID) TargetRef {
	return TargetRef{Kind: TargetKindComment, ID: id}
}

// Validate rejects unknown kinds and nil ids.
func (t TargetRef) Validate() error {
	if !t.Kind.IsValid() {
		return errors.Errorf("unknown target kind %q", t.Kind)
	}
	if t.ID == uuid.Nil {
		return errors.New("target id is required")
	}

	return nil
}

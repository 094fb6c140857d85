package payments

import (
	"errors"
	"fmt"

	"github.com/google/uuid"
)

const (
	MetadataPhotoID  = "photoId"
	MetadataBuyerID  = "buyerId"
	MetadataSellerID = "sellerId"
	MetadataUserID   = "userId"
)

var ErrMissingMetadata = errors.New("missing purchase metadata")

// PurchaseMetadata links a processor payment back to the photo, buyer and seller.
type PurchaseMetadata struct {
	PhotoID  uuid.UUID
	BuyerID  uuid.UUID
	SellerID uuid.UUID
}

func (m PurchaseMetadata) Map() map[string]string {
	return map[string]string{
		MetadataPhotoID:  m.PhotoID.String(),
		MetadataBuyerID:  m.BuyerID.String(),
		MetadataSellerID: m.SellerID.String(),
	}
}

func ParseMetadata(md map[string]string) (PurchaseMetadata, error) {
	var out PurchaseMetadata
	fields := []struct {
		key string
		dst *uuid.UUID
	}{
		{MetadataPhotoID, &out.PhotoID},
		{MetadataBuyerID, &out.BuyerID},
		{MetadataSellerID, &out.SellerID},
	}
	for _, f := range fields {
		raw := md[f.key]
		if raw == "" {
			return PurchaseMetadata{}, fmt.Errorf("%w: %s", ErrMissingMetadata, f.key)
		}
		id, err := uuid.Parse(raw)
		if err != nil {
			return PurchaseMetadata{}, fmt.Errorf("%w: %s is not a valid id", ErrMissingMetadata, f.key)
		}
		*f.dst = id
	}
	return out, nil
}

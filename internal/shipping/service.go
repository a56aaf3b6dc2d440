package shipping

import (
	"context"
	"strings"

	"github.com/silvergold-id/backend-silvergold/internal/common"
	"github.com/silvergold-id/backend-silvergold/internal/obs"
)

// Service validates inbound requests and delegates to the carrier. Carrier
// failures surface as dependency errors; nothing here retries, a duplicate
// submission would hit the carrier's form twice.
type Service struct {
	Carrier Carrier
}

// CheckRates validates all four route fields, queries the carrier and
// returns the extracted offers in document order.
func (s *Service) CheckRates(ctx context.Context, req RateRequest) ([]Offer, error) {
	var missing []string
	if strings.TrimSpace(req.Weight.String()) == "" {
		missing = append(missing, "weight")
	}
	if strings.TrimSpace(req.PickupZip) == "" {
		missing = append(missing, "zipcode_pickup")
	}
	if strings.TrimSpace(req.Destination) == "" {
		missing = append(missing, "destination")
	}
	if strings.TrimSpace(req.DestinationZip) == "" {
		missing = append(missing, "zipcode_destination")
	}
	if len(missing) > 0 {
		return nil, common.NewValidationError("missing required parameters", map[string]any{"fields": missing})
	}

	offers, err := s.Carrier.CheckRates(ctx, req)
	if err != nil {
		return nil, common.NewDependencyError("failed to check shipping rates", err)
	}
	if obs.ShippingOffersExtracted != nil {
		obs.ShippingOffersExtracted.Observe(float64(len(offers)))
	}
	return offers, nil
}

// AutocompleteLocation validates the search term and passes the carrier's
// JSON response through verbatim.
func (s *Service) AutocompleteLocation(ctx context.Context, searchstr string) (Passthrough, error) {
	if strings.TrimSpace(searchstr) == "" {
		return Passthrough{}, common.NewValidationError("missing searchstr parameter", map[string]any{"fields": []string{"searchstr"}})
	}
	result, err := s.Carrier.AutocompleteLocation(ctx, searchstr)
	if err != nil {
		return Passthrough{}, common.NewDependencyError("failed to fetch location data", err)
	}
	return result, nil
}

// TrackShipment validates the shipment code and passes the carrier's
// response through verbatim.
func (s *Service) TrackShipment(ctx context.Context, shipmentCode string) (Passthrough, error) {
	if strings.TrimSpace(shipmentCode) == "" {
		return Passthrough{}, common.NewValidationError("missing shipment_code parameter", map[string]any{"fields": []string{"shipment_code"}})
	}
	result, err := s.Carrier.TrackShipment(ctx, shipmentCode)
	if err != nil {
		return Passthrough{}, common.NewDependencyError("failed to track shipment", err)
	}
	return result, nil
}

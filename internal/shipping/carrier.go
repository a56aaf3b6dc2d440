package shipping

import (
	"context"
	"encoding/json"
)

// RateRequest carries the four route parameters the carrier's rate form needs.
// Weight stays a json.Number so numeric and quoted payloads both decode.
type RateRequest struct {
	Weight         json.Number `json:"weight"`
	PickupZip      string      `json:"zipcode_pickup"`
	Destination    string      `json:"destination"`
	DestinationZip string      `json:"zipcode_destination"`
}

// Passthrough is an opaque carrier response forwarded to the client verbatim.
// The carrier owns the schema; we only preserve bytes and content type.
type Passthrough struct {
	Body        []byte
	ContentType string
}

// Carrier models the third-party shipping site the service calls out to.
type Carrier interface {
	CheckRates(ctx context.Context, req RateRequest) ([]Offer, error)
	AutocompleteLocation(ctx context.Context, searchstr string) (Passthrough, error)
	TrackShipment(ctx context.Context, shipmentCode string) (Passthrough, error)
}

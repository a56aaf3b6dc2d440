package shipping

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/go-resty/resty/v2"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"

	"github.com/silvergold-id/backend-silvergold/internal/obs"
)

// Paths on the carrier site. The rate check only responds with the result
// fragment on the localised page; autocomplete is a JSON API.
const (
	paxelCheckRatesPath   = "/id/check-rates"
	paxelAutocompletePath = "/api/v1/internal-autocomplete"
	paxelTrackPath        = "/en/track-shipments"
)

// PaxelConfig wires the carrier client from application configuration.
type PaxelConfig struct {
	BaseURL       string
	Timeout       time.Duration
	MaxConns      int
	RatesToken    string
	LocationToken string
	TrackToken    string
	PickupName    string
}

// Paxel talks to the paxel.co website. One instance shares a pooled HTTP
// client across all requests; callers must not retry on failure since a rate
// check submits the carrier's form.
type Paxel struct {
	http          *resty.Client
	ratesToken    string
	locationToken string
	trackToken    string
	pickupName    string
}

// NewPaxel constructs the shared carrier client.
func NewPaxel(cfg PaxelConfig) *Paxel {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	maxConns := cfg.MaxConns
	if maxConns <= 0 {
		maxConns = 50
	}

	transport := &http.Transport{
		MaxConnsPerHost:     maxConns,
		MaxIdleConnsPerHost: maxConns,
		IdleConnTimeout:     90 * time.Second,
	}

	client := resty.New()
	client.SetBaseURL(cfg.BaseURL)
	client.SetTransport(otelhttp.NewTransport(transport))
	client.SetTimeout(timeout)
	client.SetHeader("Accept", "*/*")

	return &Paxel{
		http:          client,
		ratesToken:    cfg.RatesToken,
		locationToken: cfg.LocationToken,
		trackToken:    cfg.TrackToken,
		pickupName:    cfg.PickupName,
	}
}

// CheckRates submits the carrier's rate form and extracts offers from the
// returned HTML fragment.
func (p *Paxel) CheckRates(ctx context.Context, req RateRequest) ([]Offer, error) {
	start := time.Now()
	resp, err := p.http.R().
		SetContext(ctx).
		SetFormData(map[string]string{
			"_token":              p.ratesToken,
			"weight":              req.Weight.String(),
			"validation_value":    "pass",
			"pickup":              p.pickupName,
			"zipcode_pickup":      req.PickupZip,
			"destination":         req.Destination,
			"zipcode_destination": req.DestinationZip,
			"destination_counter": "0",
			"button":              "",
		}).
		Post(paxelCheckRatesPath)
	if err := p.observe("check_rates", start, resp, err); err != nil {
		return nil, err
	}
	return ExtractOffers(bytes.NewReader(resp.Body()))
}

// AutocompleteLocation forwards a location search to the carrier's
// autocomplete API and hands the JSON back untouched.
func (p *Paxel) AutocompleteLocation(ctx context.Context, searchstr string) (Passthrough, error) {
	start := time.Now()
	resp, err := p.http.R().
		SetContext(ctx).
		SetBody(map[string]string{
			"searchstr":     searchstr,
			"session_token": p.locationToken,
			"use_db_only":   "0",
		}).
		Post(paxelAutocompletePath)
	if err := p.observe("autocomplete", start, resp, err); err != nil {
		return Passthrough{}, err
	}
	return passthroughFrom(resp), nil
}

// TrackShipment queries the carrier's tracking page; the response shape is
// carrier-defined and forwarded verbatim.
func (p *Paxel) TrackShipment(ctx context.Context, shipmentCode string) (Passthrough, error) {
	start := time.Now()
	resp, err := p.http.R().
		SetContext(ctx).
		SetQueryParams(map[string]string{
			"_token":        p.trackToken,
			"shipment_code": shipmentCode,
			"button":        "",
		}).
		Post(paxelTrackPath)
	if err := p.observe("track", start, resp, err); err != nil {
		return Passthrough{}, err
	}
	return passthroughFrom(resp), nil
}

func (p *Paxel) observe(endpoint string, start time.Time, resp *resty.Response, err error) error {
	if obs.CarrierRequestLatency != nil {
		obs.CarrierRequestLatency.WithLabelValues(endpoint).Observe(obs.DurationMillis(time.Since(start)))
	}
	result := "ok"
	switch {
	case err != nil:
		result = "transport_error"
	case resp.IsError():
		result = "http_error"
	}
	if obs.CarrierRequestTotal != nil {
		obs.CarrierRequestTotal.WithLabelValues(endpoint, result).Inc()
	}
	if err != nil {
		return fmt.Errorf("carrier %s: %w", endpoint, err)
	}
	if resp.IsError() {
		return fmt.Errorf("carrier %s: unexpected status %d", endpoint, resp.StatusCode())
	}
	return nil
}

func passthroughFrom(resp *resty.Response) Passthrough {
	contentType := resp.Header().Get("Content-Type")
	if contentType == "" {
		contentType = "application/json"
	}
	return Passthrough{Body: resp.Body(), ContentType: contentType}
}

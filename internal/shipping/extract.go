package shipping

import (
	"io"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// Availability mirrors the two states a carrier service row can be in.
type Availability string

const (
	// Available means the carrier quoted a price for the route.
	Available Availability = "Available"
	// Unavailable means the row carries the carrier's not-available marker.
	Unavailable Availability = "Unavailable"
)

// Offer is one shipping service row extracted from the carrier's rate page.
// Price and Link are nil when the service is unavailable for the route.
type Offer struct {
	ServiceName  string       `json:"serviceName"`
	Price        *string      `json:"price"`
	Link         *string      `json:"link"`
	Availability Availability `json:"availability"`
}

// Selector contract fixed by the carrier's check-rates result page.
const (
	resultContainerSelector = "#check-rates-result"
	serviceRowSelector      = "ul li.service"
	serviceNameSelector     = ".service-name"
	sendNowLinkSelector     = ".send-now a"
	unavailableSelector     = ".service-not-available"
	priceSelector           = ".price"
)

// ExtractOffers parses a carrier check-rates document into offers, one per
// service row, in document order. A document with no results container or no
// rows yields an empty slice, not an error. The function has no side effects
// and never fails on missing row content; only an unreadable input errors.
func ExtractOffers(r io.Reader) ([]Offer, error) {
	doc, err := goquery.NewDocumentFromReader(r)
	if err != nil {
		return nil, err
	}

	offers := []Offer{}
	doc.Find(resultContainerSelector).Find(serviceRowSelector).Each(func(_ int, row *goquery.Selection) {
		name := strings.TrimSpace(row.Find(serviceNameSelector).Text())

		if row.Find(unavailableSelector).Length() > 0 {
			offers = append(offers, Offer{ServiceName: name, Availability: Unavailable})
			return
		}

		price := strings.TrimSpace(row.Find(priceSelector).Text())
		offer := Offer{ServiceName: name, Price: &price, Availability: Available}
		if href, ok := row.Find(sendNowLinkSelector).Attr("href"); ok {
			offer.Link = &href
		}
		offers = append(offers, offer)
	})
	return offers, nil
}

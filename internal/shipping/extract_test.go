package shipping_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/silvergold-id/backend-silvergold/internal/shipping"
)

const ratesResultPage = `<!DOCTYPE html>
<html>
<body>
<div class="container">
  <div id="check-rates-result">
    <ul>
      <li class="service">
        <div class="service-name"> Paxel Small </div>
        <div class="price"> Rp15.000 </div>
        <div class="send-now"><a href="https://paxel.co/send?service=small">Kirim Sekarang</a></div>
      </li>
      <li class="service">
        <div class="service-name">Paxel Medium</div>
        <div class="service-not-available">Tidak tersedia</div>
        <div class="send-now"><a href="https://paxel.co/send?service=medium">Kirim Sekarang</a></div>
      </li>
      <li class="service">
        <div class="service-name">Paxel Big</div>
        <div class="price">Rp40.000</div>
      </li>
    </ul>
  </div>
</div>
</body>
</html>`

func TestExtractOffersDocumentOrder(t *testing.T) {
	t.Parallel()

	offers, err := shipping.ExtractOffers(strings.NewReader(ratesResultPage))
	require.NoError(t, err)
	require.Len(t, offers, 3)

	require.Equal(t, "Paxel Small", offers[0].ServiceName)
	require.Equal(t, shipping.Available, offers[0].Availability)
	require.NotNil(t, offers[0].Price)
	require.Equal(t, "Rp15.000", *offers[0].Price)
	require.NotNil(t, offers[0].Link)
	require.Equal(t, "https://paxel.co/send?service=small", *offers[0].Link)

	require.Equal(t, "Paxel Medium", offers[1].ServiceName)
	require.Equal(t, shipping.Unavailable, offers[1].Availability)
	require.Nil(t, offers[1].Price)
	require.Nil(t, offers[1].Link)

	require.Equal(t, "Paxel Big", offers[2].ServiceName)
	require.Equal(t, shipping.Available, offers[2].Availability)
	require.NotNil(t, offers[2].Price)
	require.Equal(t, "Rp40.000", *offers[2].Price)
	require.Nil(t, offers[2].Link)
}

func TestExtractOffersMissingContainer(t *testing.T) {
	t.Parallel()

	offers, err := shipping.ExtractOffers(strings.NewReader(`<html><body><p>maintenance</p></body></html>`))
	require.NoError(t, err)
	require.Empty(t, offers)
	require.NotNil(t, offers, "empty document must yield an empty list, not nil")
}

func TestExtractOffersEmptyContainer(t *testing.T) {
	t.Parallel()

	offers, err := shipping.ExtractOffers(strings.NewReader(`<div id="check-rates-result"><ul></ul></div>`))
	require.NoError(t, err)
	require.Empty(t, offers)
}

func TestExtractOffersIgnoresRowsOutsideContainer(t *testing.T) {
	t.Parallel()

	page := `<ul><li class="service"><div class="service-name">Stray</div></li></ul>
		<div id="check-rates-result"><ul>
		<li class="service"><div class="service-name">Inside</div><div class="price">Rp10.000</div></li>
		</ul></div>`
	offers, err := shipping.ExtractOffers(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.Equal(t, "Inside", offers[0].ServiceName)
}

func TestExtractOffersMissingPriceElement(t *testing.T) {
	t.Parallel()

	page := `<div id="check-rates-result"><ul>
		<li class="service"><div class="service-name">Paxel Instant</div></li>
		</ul></div>`
	offers, err := shipping.ExtractOffers(strings.NewReader(page))
	require.NoError(t, err)
	require.Len(t, offers, 1)
	require.Equal(t, shipping.Available, offers[0].Availability)
	require.NotNil(t, offers[0].Price)
	require.Equal(t, "", *offers[0].Price, "missing price element while available degrades to empty string")
}

func TestExtractOffersManyRows(t *testing.T) {
	t.Parallel()

	var b strings.Builder
	b.WriteString(`<div id="check-rates-result"><ul>`)
	for i := 0; i < 7; i++ {
		b.WriteString(`<li class="service"><div class="service-name">Svc</div><div class="price">Rp1.000</div></li>`)
	}
	b.WriteString(`</ul></div>`)

	offers, err := shipping.ExtractOffers(strings.NewReader(b.String()))
	require.NoError(t, err)
	require.Len(t, offers, 7, "one offer per row, no more, no fewer")
}

package resale_test

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/padraigob/resold/internal/importer/resale"
	"github.com/padraigob/resold/internal/item"
	"github.com/padraigob/resold/internal/money"
)

func date(y, m, d int) time.Time {
	return time.Date(y, time.Month(m), d, 0, 0, 0, 0, time.UTC)
}

func TestParser_BasicRows(t *testing.T) {
	csv := `name,sku,description,purchase_price,purchase_date,purchase_source,notes
Vintage Lamp,LMP-1,Brass base,12.50,10/01/2024,Car Boot - Naas,needs rewiring
Retro Radio,,,,15/01/2024,SVP - Bray,
Record Player,RP-2,,30.00,20/01/2024,Auction - Lockes,
`

	p := resale.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)

	// The middle row has no price and is skipped.
	require.Len(t, drafts, 2)

	assert.Equal(t, "Vintage Lamp", drafts[0].Name)
	assert.Equal(t, "LMP-1", drafts[0].SKU)
	assert.Equal(t, money.Amount(1250), drafts[0].PurchasePrice)
	assert.Equal(t, date(2024, 1, 10), drafts[0].PurchaseDate)
	assert.Equal(t, "Car Boot - Naas", drafts[0].PurchaseSource)
	assert.Equal(t, item.StatusUnlisted, drafts[0].Status)
	assert.Equal(t, "needs rewiring", drafts[0].Notes)

	assert.Equal(t, "Record Player", drafts[1].Name)
	assert.Equal(t, money.Amount(3000), drafts[1].PurchasePrice)
}

func TestParser_ListingColumns(t *testing.T) {
	csv := `name,purchase_price,purchase_date,purchase_source,listed_date,ebay_url,vinted_url
Lamp,10.00,10/01/2024,Home,12/01/2024,https://ebay.com/itm/1,https://vinted.ie/2
`

	p := resale.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	d := drafts[0]
	assert.Equal(t, item.StatusListed, d.Status)
	require.NotNil(t, d.ListedDate)
	assert.Equal(t, date(2024, 1, 12), *d.ListedDate)

	require.Len(t, d.Listings, 2)
	assert.Equal(t, item.MarketplaceEbay, d.Listings[0].Marketplace)
	assert.Equal(t, "https://ebay.com/itm/1", d.Listings[0].URL)
	assert.Equal(t, item.MarketplaceVinted, d.Listings[1].Marketplace)
}

func TestParser_ListedDateDefaultsToPurchaseDate(t *testing.T) {
	csv := `name,purchase_price,purchase_date,purchase_source,ebay_url
Lamp,10.00,10/01/2024,Home,https://ebay.com/itm/1
`

	p := resale.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	require.NotNil(t, drafts[0].ListedDate)
	assert.Equal(t, date(2024, 1, 10), *drafts[0].ListedDate)
}

func TestParser_SoldRow(t *testing.T) {
	csv := `name,purchase_price,purchase_date,purchase_source,ebay_url,sale_price,sale_date,sold_marketplace
Lamp,10.00,10/01/2024,Home,https://ebay.com/itm/1,25.00,01/03/2024,eBay
`

	p := resale.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 1)

	d := drafts[0]
	assert.Equal(t, item.StatusSold, d.Status)
	require.NotNil(t, d.SalePrice)
	assert.Equal(t, money.Amount(2500), *d.SalePrice)
	require.NotNil(t, d.SaleDate)
	assert.Equal(t, date(2024, 3, 1), *d.SaleDate)
	require.NotNil(t, d.SoldMarketplace)
	assert.Equal(t, item.MarketplaceEbay, *d.SoldMarketplace)
}

func TestParser_ISODateFallback(t *testing.T) {
	csv := `name,purchase_price,purchase_date,purchase_source
Lamp,10.00,2024-01-10,Home
`

	p := resale.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, date(2024, 1, 10), drafts[0].PurchaseDate)
}

func TestParser_Errors(t *testing.T) {
	p := resale.NewParser()

	t.Run("MissingRequiredColumn", func(t *testing.T) {
		_, err := p.Parse(strings.NewReader("name,purchase_price\nLamp,10.00\n"))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "purchase_date")
	})

	t.Run("IncompleteSaleFields", func(t *testing.T) {
		csv := `name,purchase_price,purchase_date,purchase_source,ebay_url,sale_price
Lamp,10.00,10/01/2024,Home,https://ebay.com/itm/1,25.00
`
		_, err := p.Parse(strings.NewReader(csv))
		require.Error(t, err)
		assert.Contains(t, err.Error(), "row 2")
	})

	t.Run("ListedWithoutURL", func(t *testing.T) {
		csv := `name,purchase_price,purchase_date,purchase_source,status
Lamp,10.00,10/01/2024,Home,Listed
`
		_, err := p.Parse(strings.NewReader(csv))
		require.Error(t, err)
	})

	t.Run("Empty", func(t *testing.T) {
		_, err := p.Parse(strings.NewReader(""))
		require.Error(t, err)
	})
}

func TestParser_UTF8BOM(t *testing.T) {
	csv := "\xEF\xBB\xBFname,purchase_price,purchase_date,purchase_source\nLamp,10.00,10/01/2024,Home\n"

	p := resale.NewParser()
	drafts, err := p.Parse(strings.NewReader(csv))
	require.NoError(t, err)
	require.Len(t, drafts, 1)
	assert.Equal(t, "Lamp", drafts[0].Name)
}

package request

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseOfferListParams_Defaults(t *testing.T) {
	params, errs := ParseOfferListParams(url.Values{})
	require.Nil(t, errs)

	assert.Nil(t, params.CreatorID)
	assert.Nil(t, params.MinPrice)
	assert.Nil(t, params.MaxDeliveryTime)
	assert.Nil(t, params.Search)
	assert.Empty(t, params.Ordering)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)
}

func TestParseOfferListParams_AllParameters(t *testing.T) {
	query := url.Values{}
	query.Set("creator_id", "a2b4ddee-3f1a-4aeb-b2dd-8d4f2f3a9f01")
	query.Set("min_price", "99.5")
	query.Set("max_delivery_time", "7")
	query.Set("ordering", "min_price")
	query.Set("search", "logo")
	query.Set("page", "2")
	query.Set("page_size", "8")

	params, errs := ParseOfferListParams(query)
	require.Nil(t, errs)

	require.NotNil(t, params.CreatorID)
	assert.Equal(t, "a2b4ddee-3f1a-4aeb-b2dd-8d4f2f3a9f01", params.CreatorID.String())
	require.NotNil(t, params.MinPrice)
	assert.Equal(t, 99.5, *params.MinPrice)
	require.NotNil(t, params.MaxDeliveryTime)
	assert.Equal(t, 7, *params.MaxDeliveryTime)
	assert.Equal(t, "min_price", params.Ordering)
	require.NotNil(t, params.Search)
	assert.Equal(t, "logo", *params.Search)
	assert.Equal(t, 2, params.Page)
	assert.Equal(t, 8, params.PageSize)
}

func TestParseOfferListParams_ZeroIsNotAbsent(t *testing.T) {
	query := url.Values{}
	query.Set("min_price", "0")

	params, errs := ParseOfferListParams(query)
	require.Nil(t, errs)
	require.NotNil(t, params.MinPrice)
	assert.Equal(t, 0.0, *params.MinPrice)
}

func TestParseOfferListParams_ReportsEveryBadCast(t *testing.T) {
	query := url.Values{}
	query.Set("creator_id", "twelve")
	query.Set("min_price", "cheap")
	query.Set("max_delivery_time", "soon")

	params, errs := ParseOfferListParams(query)
	assert.Nil(t, params)
	require.NotNil(t, errs)

	// All three failures come back together
	assert.Contains(t, errs, "creator_id")
	assert.Contains(t, errs, "min_price")
	assert.Contains(t, errs, "max_delivery_time")
	assert.Contains(t, errs["min_price"], "cheap")
}

func TestParseOfferListParams_UnknownOrderingIsNotAnError(t *testing.T) {
	query := url.Values{}
	query.Set("ordering", "alphabetical-by-vibes")

	params, errs := ParseOfferListParams(query)
	require.Nil(t, errs)
	assert.Equal(t, "alphabetical-by-vibes", params.Ordering)
}

func TestParseOfferListParams_PageSizeCapped(t *testing.T) {
	query := url.Values{}
	query.Set("page_size", "500")

	params, errs := ParseOfferListParams(query)
	require.Nil(t, errs)
	assert.Equal(t, MaxPageSize, params.PageSize)
}

func TestParseOfferListParams_NonPositivePageKeepsDefault(t *testing.T) {
	query := url.Values{}
	query.Set("page", "0")
	query.Set("page_size", "-3")

	params, errs := ParseOfferListParams(query)
	require.Nil(t, errs)
	assert.Equal(t, 1, params.Page)
	assert.Equal(t, DefaultPageSize, params.PageSize)
}

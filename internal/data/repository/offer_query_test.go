package repository

import (
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBuildPackageListQuery_NoFilters(t *testing.T) {
	sql, args, err := buildPackageListQuery(PackageFilter{})
	require.NoError(t, err)

	assert.Contains(t, sql, `"offer_packages"`)
	assert.Contains(t, sql, "MIN")
	assert.Contains(t, sql, "GROUP BY")
	assert.NotContains(t, sql, "HAVING")
	assert.NotContains(t, sql, "ILIKE")
	// Default order is newest first
	assert.Contains(t, sql, `"created_at" DESC`)
	assert.Empty(t, args)
}

func TestBuildPackageListQuery_CreatorFilter(t *testing.T) {
	id := uuid.New()
	sql, args, err := buildPackageListQuery(PackageFilter{CreatorID: &id})
	require.NoError(t, err)

	assert.Contains(t, sql, `"user_id"`)
	require.Len(t, args, 1)
	assert.Equal(t, id, args[0])
}

func TestBuildPackageListQuery_MinPriceUsesHavingMax(t *testing.T) {
	price := 100.0
	sql, args, err := buildPackageListQuery(PackageFilter{MinPrice: &price})
	require.NoError(t, err)

	// A package qualifies when any of its offers meets the floor
	assert.Contains(t, sql, "HAVING")
	assert.Contains(t, sql, "MAX")
	assert.Contains(t, args, price)
}

func TestBuildPackageListQuery_MaxDeliveryUsesHavingMin(t *testing.T) {
	days := 5
	sql, args, err := buildPackageListQuery(PackageFilter{MaxDeliveryTime: &days})
	require.NoError(t, err)

	assert.Contains(t, sql, "HAVING")
	assert.Contains(t, sql, `MIN("o"."delivery_time_in_days")`)
	require.Len(t, args, 1)
}

func TestBuildPackageListQuery_SearchMatchesTitleOrDescription(t *testing.T) {
	term := "logo"
	sql, args, err := buildPackageListQuery(PackageFilter{Search: &term})
	require.NoError(t, err)

	assert.Contains(t, sql, "ILIKE")
	assert.Contains(t, sql, " OR ")
	assert.Contains(t, args, "%logo%")
}

func TestBuildPackageListQuery_SearchEscapesLikeMetacharacters(t *testing.T) {
	term := "100%_off"
	_, args, err := buildPackageListQuery(PackageFilter{Search: &term})
	require.NoError(t, err)

	// % and _ inside the term match literally, only the outer wildcards
	// stay live
	assert.Contains(t, args, `%100\%\_off%`)

	term = `C:\temp`
	_, args, err = buildPackageListQuery(PackageFilter{Search: &term})
	require.NoError(t, err)
	assert.Contains(t, args, `%C:\\temp%`)
}

func TestBuildPackageListQuery_Ordering(t *testing.T) {
	sql, _, err := buildPackageListQuery(PackageFilter{Ordering: "min_price"})
	require.NoError(t, err)
	assert.Contains(t, sql, `"min_price" ASC`)

	sql, _, err = buildPackageListQuery(PackageFilter{Ordering: "updated_at"})
	require.NoError(t, err)
	assert.Contains(t, sql, `"updated_at" DESC`)

	// Unknown keys keep the default
	sql, _, err = buildPackageListQuery(PackageFilter{Ordering: "vibes"})
	require.NoError(t, err)
	assert.Contains(t, sql, `"created_at" DESC`)
}

func TestBuildPackageListQuery_Pagination(t *testing.T) {
	sql, args, err := buildPackageListQuery(PackageFilter{Limit: 6, Offset: 12})
	require.NoError(t, err)

	assert.Contains(t, sql, "LIMIT")
	assert.Contains(t, sql, "OFFSET")
	require.Len(t, args, 2)
}

func TestBuildPackageCountQuery_WrapsFilteredSetAsSubquery(t *testing.T) {
	price := 50.0
	sql, args, err := buildPackageCountQuery(PackageFilter{MinPrice: &price})
	require.NoError(t, err)

	// COUNT runs over the grouped, HAVING-filtered set, so the count and
	// the page always agree
	assert.Contains(t, sql, "COUNT(*)")
	assert.Contains(t, sql, "HAVING")
	assert.Contains(t, sql, `AS "sub"`)
	assert.NotContains(t, sql, "LIMIT")
	assert.Contains(t, args, price)
}

func TestBuildPackageDetailQuery_FiltersByID(t *testing.T) {
	id := uuid.New()
	sql, args, err := buildPackageDetailQuery(id)
	require.NoError(t, err)

	assert.Contains(t, sql, `"p"."id"`)
	assert.Contains(t, sql, "GROUP BY")
	require.Len(t, args, 1)
	assert.Equal(t, id, args[0])
}

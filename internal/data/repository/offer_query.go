package repository

import (
	"strings"

	"github.com/doug-martin/goqu/v9"
	_ "github.com/doug-martin/goqu/v9/dialect/postgres"
	"github.com/google/uuid"
)

var pgDialect = goqu.Dialect("postgres")

// PackageFilter carries the typed listing parameters. A nil pointer means
// "not provided", so every stage can tell no-filter apart from a filter at
// zero or empty.
type PackageFilter struct {
	CreatorID       *uuid.UUID
	MinPrice        *float64
	MaxDeliveryTime *int
	Search          *string
	Ordering        string
	Limit           int
	Offset          int
}

// basePackageDataset is the grouped package row every listing and detail
// query starts from: one row per package joined with its owner, annotated
// with min_price and min_delivery_time (NULL when the package has no
// offers). GROUP BY p.id makes every downstream filter distinct-by-package.
func basePackageDataset() *goqu.SelectDataset {
	return pgDialect.From(goqu.T("offer_packages").As("p")).
		Select(
			goqu.I("p.id"),
			goqu.I("p.user_id"),
			goqu.I("p.title"),
			goqu.I("p.image"),
			goqu.I("p.description"),
			goqu.I("p.created_at"),
			goqu.I("p.updated_at"),
			goqu.MIN(goqu.I("o.price")).As("min_price"),
			goqu.MIN(goqu.I("o.delivery_time_in_days")).As("min_delivery_time"),
			goqu.I("u.username"),
			goqu.I("u.first_name"),
			goqu.I("u.last_name"),
		).
		LeftJoin(goqu.T("offers").As("o"), goqu.On(goqu.I("o.package_id").Eq(goqu.I("p.id")))).
		Join(goqu.T("users").As("u"), goqu.On(goqu.I("u.id").Eq(goqu.I("p.user_id")))).
		GroupBy(goqu.I("p.id"), goqu.I("u.id"))
}

// filterCreator keeps packages owned by the given user.
func filterCreator(ds *goqu.SelectDataset, id *uuid.UUID) *goqu.SelectDataset {
	if id == nil {
		return ds
	}
	return ds.Where(goqu.I("p.user_id").Eq(*id))
}

// filterMinPrice keeps packages with at least one offer priced at or above
// the threshold. MAX over the grouped offers is equivalent to "some offer
// qualifies" and cannot duplicate a package.
func filterMinPrice(ds *goqu.SelectDataset, minPrice *float64) *goqu.SelectDataset {
	if minPrice == nil {
		return ds
	}
	return ds.Having(goqu.MAX(goqu.I("o.price")).Gte(*minPrice))
}

// filterMaxDeliveryTime keeps packages whose fastest offer delivers within
// the given number of days.
func filterMaxDeliveryTime(ds *goqu.SelectDataset, maxTime *int) *goqu.SelectDataset {
	if maxTime == nil {
		return ds
	}
	return ds.Having(goqu.MIN(goqu.I("o.delivery_time_in_days")).Lte(*maxTime))
}

// likeEscaper quotes LIKE metacharacters so a term containing % or _
// matches the literal substring, not a wildcard.
var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

// filterSearch keeps packages whose title or description contains the term,
// case-insensitive.
func filterSearch(ds *goqu.SelectDataset, term *string) *goqu.SelectDataset {
	if term == nil {
		return ds
	}
	pattern := "%" + likeEscaper.Replace(*term) + "%"
	return ds.Where(goqu.Or(
		goqu.I("p.title").ILike(pattern),
		goqu.I("p.description").ILike(pattern),
	))
}

// applyPackageFilters runs all stages. Stages narrow independently, so the
// order here is irrelevant.
func applyPackageFilters(ds *goqu.SelectDataset, f PackageFilter) *goqu.SelectDataset {
	ds = filterCreator(ds, f.CreatorID)
	ds = filterMinPrice(ds, f.MinPrice)
	ds = filterMaxDeliveryTime(ds, f.MaxDeliveryTime)
	ds = filterSearch(ds, f.Search)
	return ds
}

// orderPackages maps the ordering key onto a sort. Only min_price and
// updated_at are recognized; anything else keeps the default newest-first
// order. A single key at a time, no multi-key sort.
func orderPackages(ds *goqu.SelectDataset, term string) *goqu.SelectDataset {
	switch term {
	case "min_price":
		return ds.Order(goqu.I("min_price").Asc())
	case "updated_at":
		return ds.Order(goqu.I("p.updated_at").Desc())
	default:
		return ds.Order(goqu.I("p.created_at").Desc())
	}
}

func buildPackageListQuery(f PackageFilter) (string, []interface{}, error) {
	ds := applyPackageFilters(basePackageDataset(), f)
	ds = orderPackages(ds, f.Ordering)
	if f.Limit > 0 {
		ds = ds.Limit(uint(f.Limit)).Offset(uint(f.Offset))
	}
	return ds.Prepared(true).ToSQL()
}

func buildPackageCountQuery(f PackageFilter) (string, []interface{}, error) {
	sub := applyPackageFilters(basePackageDataset(), f)
	return pgDialect.From(sub.As("sub")).
		Select(goqu.COUNT(goqu.Star())).
		Prepared(true).
		ToSQL()
}

func buildPackageDetailQuery(id uuid.UUID) (string, []interface{}, error) {
	return basePackageDataset().
		Where(goqu.I("p.id").Eq(id)).
		Prepared(true).
		ToSQL()
}

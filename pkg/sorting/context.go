package sorting

// Context is the section the listing grid is rendered in. It is passed
// explicitly by the caller (derived from the routing params upstream)
// and selects the sort key vocabulary offered to the user.
type Context string

const (
	ContextCommercial         Context = "commercial"
	ContextCommercialForSale  Context = "commercial-for-sale"
	ContextResidential        Context = "residential"
	ContextResidentialForSale Context = "residential-for-sale"
	ContextAuction            Context = "auction"
)

var commonKeys = []SortKey{
	Newest, Oldest, RecentlyUpdated,
	PriceHighToLow, PriceLowToHigh,
	SqftHighToLow, SqftLowToHigh,
}

// Options returns the sort keys available in a section, common keys first.
func Options(ctx Context) []SortKey {
	keys := make([]SortKey, 0, len(commonKeys)+10)
	keys = append(keys, commonKeys...)
	switch ctx {
	case ContextCommercial, ContextCommercialForSale:
		keys = append(keys,
			PpsfHighToLow, PpsfLowToHigh,
			BldgSqftHighLow, BldgSqftLowHigh,
			UnitsHighToLow, UnitsLowToHigh,
			CapRateHighToLow, CapRateLowToHigh,
			NoiHighToLow, NoiLowToHigh,
			AcresHighToLow, AcresLowToHigh,
		)
	case ContextResidential, ContextResidentialForSale:
		keys = append(keys,
			BedsHighToLow, BedsLowToHigh,
			AcresHighToLow, AcresLowToHigh,
		)
	case ContextAuction:
		keys = append(keys,
			EndingSoonest,
			CapRateHighToLow, CapRateLowToHigh,
		)
	}
	return keys
}

// ContextFrom maps the routing category/type pass-through params onto a
// Context, defaulting to commercial.
func ContextFrom(category, listingType string) Context {
	switch category {
	case "residential":
		if listingType == "for-sale" {
			return ContextResidentialForSale
		}
		return ContextResidential
	case "auction":
		return ContextAuction
	default:
		if listingType == "for-sale" {
			return ContextCommercialForSale
		}
		return ContextCommercial
	}
}

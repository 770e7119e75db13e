package models

import "sort"

// ProviderOffer is a single streaming provider entry inside a region's offer list
type ProviderOffer struct {
	ProviderID      int    `json:"provider_id"`
	ProviderName    string `json:"provider_name"`
	LogoPath        string `json:"logo_path"`
	DisplayPriority int    `json:"display_priority"`
}

// RegionOffers groups the offers available in one country by offer type
type RegionOffers struct {
	Link     string          `json:"link"`
	Flatrate []ProviderOffer `json:"flatrate"` // Subscription streaming
	Rent     []ProviderOffer `json:"rent"`
	Buy      []ProviderOffer `json:"buy"`
	Free     []ProviderOffer `json:"free"`
	Ads      []ProviderOffer `json:"ads"`
}

// HasSubscription reports whether providerID is in the region's flatrate offers
func (r RegionOffers) HasSubscription(providerID int) bool {
	for _, p := range r.Flatrate {
		if p.ProviderID == providerID {
			return true
		}
	}
	return false
}

// WatchProvidersResponse is the raw body of the provider's watch/providers endpoint
type WatchProvidersResponse struct {
	ID      int                     `json:"id"`
	Results map[string]RegionOffers `json:"results"`
}

// WatchProviders maps ISO 3166-1 country codes to the offers in that country
type WatchProviders map[string]RegionOffers

// SubscriptionCountries returns the sorted country codes where providerID is
// available as a subscription (flatrate) offer. Rent and buy offers are ignored.
func (w WatchProviders) SubscriptionCountries(providerID int) []string {
	codes := make([]string, 0, len(w))
	for code, offers := range w {
		if offers.HasSubscription(providerID) {
			codes = append(codes, code)
		}
	}
	sort.Strings(codes)
	return codes
}

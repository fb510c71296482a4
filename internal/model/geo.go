package model

// Organization values used by the fallback locations
const (
	OrganizationUnknown = "Unknown"
	OrganizationLocal   = "Local Network"
)

// GeoLookupResult is the location attributed to a client address. Every
// field is optional; providers fill in what they know.
type GeoLookupResult struct {
	CountryCode  *string  `json:"country_code,omitempty"`
	CountryName  *string  `json:"country_name,omitempty"`
	Region       *string  `json:"region,omitempty"`
	City         *string  `json:"city,omitempty"`
	Timezone     *string  `json:"timezone,omitempty"`
	Latitude     *float64 `json:"latitude,omitempty"`
	Longitude    *float64 `json:"longitude,omitempty"`
	Organization *string  `json:"organization,omitempty"`
}

// UnknownLocation is returned when no provider could place an address
func UnknownLocation() *GeoLookupResult {
	return &GeoLookupResult{Organization: optional(OrganizationUnknown)}
}

// IsUnknown reports whether r carries no location at all
func (r *GeoLookupResult) IsUnknown() bool {
	return r == nil || (r.CountryCode == nil && r.City == nil && r.Latitude == nil)
}

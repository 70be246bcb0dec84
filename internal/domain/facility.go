package domain

import "sort"

// Facility is a known sports facility hosted on the booking platform.
type Facility struct {
	Key            string // short key used in URLs and CLI args
	Name           string
	FacilityID     int64
	OrganizationID int64
	BookingURL     string
}

// Socceroof facilities on BondSports
var facilities = map[string]Facility{
	"wall-street": {
		Key:            "wall-street",
		Name:           "Socceroof Wall Street",
		FacilityID:     502,
		OrganizationID: 450,
		BookingURL:     "https://bondsports.co/facility/Socceroof%20Wall%20Street-New%20York/502?organizationId=450",
	},
	"crown-heights": {
		Key:            "crown-heights",
		Name:           "Socceroof - Crown Heights",
		FacilityID:     484,
		OrganizationID: 436,
		BookingURL:     "https://bondsports.co/facility/Socceroof%20-%20Crown%20Heights-New%20York/484?organizationId=436",
	},
}

// FacilityByKey returns a known facility by its short key.
func FacilityByKey(key string) (Facility, bool) {
	f, ok := facilities[key]
	return f, ok
}

// FacilityKeys returns the sorted list of known facility keys.
func FacilityKeys() []string {
	keys := make([]string, 0, len(facilities))
	for k := range facilities {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

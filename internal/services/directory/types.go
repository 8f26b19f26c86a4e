// File: internal/services/directory/types.go
package directory

// AddressPurposeLocation tags a practice-location address entry.
const AddressPurposeLocation = "LOCATION"

// Query selects directory records by free-text specialty description plus
// either a postal code or a state code.
type Query struct {
	SpecialtyDescription string
	PostalCode           string
	StateCode            string
	Limit                int
}

// Basic carries the person or organization name fields of a record.
type Basic struct {
	FirstName        string `json:"first_name"`
	LastName         string `json:"last_name"`
	Credential       string `json:"credential"`
	OrganizationName string `json:"organization_name"`
}

// Address is one nested address entry of a record.
type Address struct {
	AddressPurpose string `json:"address_purpose"`
	AddressLine1   string `json:"address_1"`
	AddressLine2   string `json:"address_2"`
	City           string `json:"city"`
	State          string `json:"state"`
	PostalCode     string `json:"postal_code"`
}

// Taxonomy is one nested specialty description of a record.
type Taxonomy struct {
	Code        string `json:"code"`
	Description string `json:"desc"`
	Primary     bool   `json:"primary"`
}

// Result is one raw practitioner/organization record.
type Result struct {
	Number     string     `json:"number"`
	Basic      Basic      `json:"basic"`
	Addresses  []Address  `json:"addresses"`
	Taxonomies []Taxonomy `json:"taxonomies"`
}

type searchResponse struct {
	ResultCount int      `json:"result_count"`
	Results     []Result `json:"results"`
}

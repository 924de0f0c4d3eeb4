package contributors

import "strings"

// User is a record from the user registry, as the registry returns it.
// Fields the registry omits decode to zero values; Normalize applies the
// defaults in one place.
type User struct {
	ID          string        `json:"id" yaml:"id"`
	DisplayName string        `json:"displayName" yaml:"displayName"`
	FirstName   string        `json:"firstName" yaml:"firstName"`
	LastName    string        `json:"lastName" yaml:"lastName"`
	Roles       []string      `json:"roles" yaml:"roles"`
	Description LocalizedText `json:"description" yaml:"description"`
	Interests   LocalizedList `json:"interests" yaml:"interests"`
	Institution string        `json:"institution" yaml:"institution"`
	ORCID       string        `json:"orcid" yaml:"orcid"`
	PublicEmail string        `json:"publicEmail" yaml:"publicEmail"`
	Social      Social        `json:"social" yaml:"social"`
	ImageURL    string        `json:"imageUrl" yaml:"imageUrl"`
}

// Normalize returns u with defaults applied: trimmed scalar fields, no nil
// role list, and a description and interest list for every locale.
func (u User) Normalize() User {
	out := u
	out.ID = strings.TrimSpace(u.ID)
	out.DisplayName = CollapseSpaces(u.DisplayName)
	out.FirstName = strings.TrimSpace(u.FirstName)
	out.LastName = strings.TrimSpace(u.LastName)
	out.Institution = strings.TrimSpace(u.Institution)
	out.ORCID = strings.TrimSpace(u.ORCID)
	out.PublicEmail = strings.TrimSpace(u.PublicEmail)
	out.ImageURL = strings.TrimSpace(u.ImageURL)

	out.Roles = make([]string, 0, len(u.Roles))
	for _, r := range u.Roles {
		if r = strings.TrimSpace(r); r != "" {
			out.Roles = append(out.Roles, r)
		}
	}
	out.Description = u.Description.withDefaults()
	out.Interests = u.Interests.withDefaults()
	return out
}

// Contributor converts a registered user into a profile record with no slug.
func (u User) Contributor() Contributor {
	n := u.Normalize()
	return Contributor{
		ID:          n.ID,
		DisplayName: n.DisplayName,
		FirstName:   n.FirstName,
		LastName:    n.LastName,
		Roles:       n.Roles,
		Description: n.Description,
		Interests:   n.Interests,
		Institution: n.Institution,
		ORCID:       n.ORCID,
		PublicEmail: n.PublicEmail,
		Social:      n.Social,
		ImageURL:    n.ImageURL,
	}
}

// FromUsers converts users in order, skipping records without an id.
func FromUsers(users []User) []Contributor {
	out := make([]Contributor, 0, len(users))
	for _, u := range users {
		c := u.Contributor()
		if c.ID == "" {
			continue
		}
		out = append(out, c)
	}
	return out
}

// Package contributors defines the records that flow through a directory
// build: the contributor profile, and the typed schemas of the user and
// publication registries it is assembled from.
package contributors

import (
	"strings"
)

// RoleAuthor is the role given to every synthesized placeholder.
const RoleAuthor = "Author"

// Social holds a contributor's public profile links.
type Social struct {
	LinkedIn  string `json:"linkedin,omitempty" yaml:"linkedin,omitempty"`
	X         string `json:"x,omitempty" yaml:"x,omitempty"`
	Twitter   string `json:"twitter,omitempty" yaml:"twitter,omitempty"`
	Instagram string `json:"instagram,omitempty" yaml:"instagram,omitempty"`
	Website   string `json:"website,omitempty" yaml:"website,omitempty"`
}

// XURL returns the X (formerly Twitter) link, whichever field carries it.
func (s Social) XURL() string {
	if s.Twitter != "" {
		return s.Twitter
	}
	return s.X
}

// IsZero reports whether no link is set.
func (s Social) IsZero() bool {
	return s == Social{}
}

// Contributor is one public profile in the directory.
//
// ID is the merge key across rebuilds and never changes. Slug is assigned by
// the reconciler; PreviousSlugs lists slugs the same ID held before a forced
// change so those URLs stay reserved for their redirect. Publications is
// derived every run and never persisted.
type Contributor struct {
	ID          string        `json:"uid" yaml:"uid"`
	DisplayName string        `json:"displayName" yaml:"displayName"`
	FirstName   string        `json:"firstName" yaml:"firstName"`
	LastName    string        `json:"lastName" yaml:"lastName"`
	Roles       []string      `json:"roles" yaml:"roles"`
	Description LocalizedText `json:"description" yaml:"description"`
	Interests   LocalizedList `json:"interests" yaml:"interests"`
	Institution string        `json:"institution" yaml:"institution"`
	ORCID       string        `json:"orcid" yaml:"orcid"`
	PublicEmail string        `json:"publicEmail,omitempty" yaml:"publicEmail,omitempty"`
	Social      Social        `json:"social" yaml:"social"`
	ImageURL    string        `json:"imageUrl" yaml:"imageUrl"`
	Slug        string        `json:"slug" yaml:"slug"`

	PreviousSlugs []string `json:"previousSlugs,omitempty" yaml:"previousSlugs,omitempty"`
	IsAnonymous   bool     `json:"isAnonymous,omitempty" yaml:"isAnonymous,omitempty"`
	ClaimToken    string   `json:"claimToken,omitempty" yaml:"claimToken,omitempty"`

	Publications []Publication `json:"-" yaml:"-"`
}

// SlugSource returns the text a slug is derived from: the display name, or
// "First Last" when no display name is set.
func (c Contributor) SlugSource() string {
	if name := strings.TrimSpace(c.DisplayName); name != "" {
		return name
	}
	return JoinName(c.FirstName, c.LastName)
}

// HasRole reports whether the contributor holds role, compared case-insensitively.
func (c Contributor) HasRole(role string) bool {
	for _, r := range c.Roles {
		if strings.EqualFold(strings.TrimSpace(r), role) {
			return true
		}
	}
	return false
}

// Clone returns a deep copy so stages can hand records on without sharing
// backing arrays or maps.
func (c Contributor) Clone() Contributor {
	out := c
	out.Roles = cloneStrings(c.Roles)
	out.Description = c.Description.clone()
	out.Interests = c.Interests.clone()
	out.PreviousSlugs = cloneStrings(c.PreviousSlugs)
	if c.Publications != nil {
		out.Publications = make([]Publication, len(c.Publications))
		for i, p := range c.Publications {
			out.Publications[i] = p.Clone()
		}
	}
	return out
}

// Persistable returns the copy of c that is written to a snapshot: derived
// publications dropped, and no public contact data on placeholders.
func (c Contributor) Persistable() Contributor {
	out := c.Clone()
	out.Publications = nil
	if out.IsAnonymous {
		out.PublicEmail = ""
		out.Social = Social{}
	} else {
		out.ClaimToken = ""
	}
	if len(out.PreviousSlugs) == 0 {
		out.PreviousSlugs = nil
	}
	return out
}

// IDs returns the ids of records in order.
func IDs(records []Contributor) []string {
	ids := make([]string, len(records))
	for i, r := range records {
		ids[i] = r.ID
	}
	return ids
}

func cloneStrings(s []string) []string {
	if s == nil {
		return nil
	}
	return append(make([]string, 0, len(s)), s...)
}

package contributors

import "strings"

// Status is a publication's editorial state.
type Status string

// Statuses a publication moves through. Only published and accepted work
// appears on profiles.
const (
	StatusSubmitted Status = "submitted"
	StatusInReview  Status = "in-review"
	StatusAccepted  Status = "accepted"
	StatusPublished Status = "published"
	StatusRejected  Status = "rejected"
)

// ListedStatuses returns the statuses whose publications are shown publicly.
func ListedStatuses() []Status {
	return []Status{StatusPublished, StatusAccepted}
}

// Listed reports whether publications in this status are shown publicly.
func (s Status) Listed() bool {
	return s == StatusPublished || s == StatusAccepted
}

// AuthorRef is one author entry on a publication: either a registered
// account, or the name and private contact data of an unregistered author.
type AuthorRef struct {
	AccountID   string `json:"accountId,omitempty" yaml:"accountId,omitempty"`
	Name        string `json:"name,omitempty" yaml:"name,omitempty"`
	FirstName   string `json:"firstName,omitempty" yaml:"firstName,omitempty"`
	LastName    string `json:"lastName,omitempty" yaml:"lastName,omitempty"`
	Institution string `json:"institution,omitempty" yaml:"institution,omitempty"`
	ORCID       string `json:"orcid,omitempty" yaml:"orcid,omitempty"`
	Email       string `json:"email,omitempty" yaml:"email,omitempty"`
}

// Registered reports whether the entry links to an account.
func (a AuthorRef) Registered() bool {
	return strings.TrimSpace(a.AccountID) != ""
}

// FullName returns "First Last" when either part is set, otherwise Name,
// with whitespace collapsed.
func (a AuthorRef) FullName() string {
	if full := JoinName(a.FirstName, a.LastName); full != "" {
		return CollapseSpaces(full)
	}
	return CollapseSpaces(a.Name)
}

// Publication is a record from the publication registry.
type Publication struct {
	SubmissionID string        `json:"submissionId" yaml:"submissionId"`
	Title        LocalizedText `json:"title" yaml:"title"`
	Date         string        `json:"date" yaml:"date"`
	Volume       string        `json:"volume" yaml:"volume"`
	Issue        string        `json:"issue" yaml:"issue"`
	Area         string        `json:"area" yaml:"area"`
	DocumentURL  string        `json:"documentUrl" yaml:"documentUrl"`
	Status       Status        `json:"status" yaml:"status"`
	Authors      []AuthorRef   `json:"authors" yaml:"authors"`
}

// Normalize returns p with defaults applied: trimmed ids, lower-case status,
// and a title for every locale.
func (p Publication) Normalize() Publication {
	out := p.Clone()
	out.SubmissionID = strings.TrimSpace(p.SubmissionID)
	out.Date = strings.TrimSpace(p.Date)
	out.Status = Status(strings.ToLower(strings.TrimSpace(string(p.Status))))
	out.Title = p.Title.withDefaults()
	for i := range out.Authors {
		out.Authors[i].AccountID = strings.TrimSpace(out.Authors[i].AccountID)
	}
	return out
}

// TitleFor returns the title in locale l, falling back to any other locale.
func (p Publication) TitleFor(l Locale) string {
	if t := p.Title.Get(l); t != "" {
		return t
	}
	for _, other := range Locales() {
		if t := p.Title.Get(other); t != "" {
			return t
		}
	}
	return p.SubmissionID
}

// Clone returns a deep copy of p.
func (p Publication) Clone() Publication {
	out := p
	out.Title = p.Title.clone()
	if p.Authors != nil {
		out.Authors = append(make([]AuthorRef, 0, len(p.Authors)), p.Authors...)
	}
	return out
}

// Listed filters pubs to those shown publicly, normalizing each.
func Listed(pubs []Publication) []Publication {
	out := make([]Publication, 0, len(pubs))
	for _, p := range pubs {
		n := p.Normalize()
		if n.Status.Listed() {
			out = append(out, n)
		}
	}
	return out
}

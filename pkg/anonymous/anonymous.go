// Package anonymous synthesizes placeholder contributors for co-authors of
// published work who have no account, and verifies the claim tokens those
// placeholders carry.
package anonymous

import (
	"crypto/sha256"
	"encoding/hex"
	"strings"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/agentstation/teammap/pkg/constants"
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/logging"
)

// namespace scopes placeholder ids so they cannot collide with UUIDs
// generated for anything else.
var namespace = uuid.NewSHA1(uuid.NameSpaceURL, []byte("https://revistacienciasestudiantes.com/team/anonymous"))

// Synthesizer builds placeholder contributors from publication author lists.
type Synthesizer struct {
	salt   string
	logger *zerolog.Logger
}

// Option configures a Synthesizer.
type Option func(*Synthesizer)

// WithSalt sets the salt mixed into claim tokens.
func WithSalt(salt string) Option {
	return func(s *Synthesizer) {
		s.salt = salt
	}
}

// WithLogger sets the logger for per-entry decisions.
func WithLogger(logger *zerolog.Logger) Option {
	return func(s *Synthesizer) {
		if logger != nil {
			s.logger = logger
		}
	}
}

// New returns a Synthesizer using the default salt unless overridden.
func New(opts ...Option) *Synthesizer {
	s := &Synthesizer{
		salt:   constants.DefaultClaimSalt,
		logger: logging.Default(),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Synthesize returns one placeholder per distinct unregistered author name
// across the published and accepted publications in pubs. Placeholders
// appear in the order their name is first seen. Entries with no usable name
// are skipped.
func (s *Synthesizer) Synthesize(pubs []contributors.Publication) []contributors.Contributor {
	var order []string
	byKey := map[string]*contributors.Contributor{}
	seen := map[string]map[string]bool{}
	dropped := 0

	for _, pub := range contributors.Listed(pubs) {
		for _, author := range pub.Authors {
			if author.Registered() {
				continue
			}
			name := author.FullName()
			key := contributors.NameKey(name)
			if key == "" {
				dropped++
				s.logger.Debug().Str("submission_id", pub.SubmissionID).Msg("Skipping author entry with no name")
				continue
			}

			c, ok := byKey[key]
			if !ok {
				c = s.placeholder(key, name, author)
				byKey[key] = c
				seen[key] = map[string]bool{}
				order = append(order, key)
			}
			if c.ClaimToken == "" {
				c.ClaimToken = Token(s.salt, author.Email)
			}
			if pub.SubmissionID == "" || !seen[key][pub.SubmissionID] {
				if pub.SubmissionID != "" {
					seen[key][pub.SubmissionID] = true
				}
				c.Publications = append(c.Publications, pub.Clone())
			}
		}
	}

	out := make([]contributors.Contributor, 0, len(order))
	for _, key := range order {
		c := byKey[key]
		if c.ClaimToken == "" {
			s.logger.Info().Str("contributor_id", c.ID).Str("name", c.DisplayName).
				Msg("Placeholder has no contact email and cannot be claimed")
		}
		out = append(out, *c)
	}

	s.logger.Debug().Int("placeholders", len(out)).Int("dropped_entries", dropped).Msg("Synthesized anonymous contributors")
	return out
}

func (s *Synthesizer) placeholder(key, name string, author contributors.AuthorRef) *contributors.Contributor {
	c := contributors.User{
		ID:          ID(key),
		DisplayName: name,
		FirstName:   author.FirstName,
		LastName:    author.LastName,
		Roles:       []string{contributors.RoleAuthor},
		Institution: author.Institution,
		ORCID:       author.ORCID,
	}.Contributor()
	c.IsAnonymous = true
	return &c
}

// ID returns the placeholder id for a normalized name key. The same key
// always yields the same id.
func ID(nameKey string) string {
	return constants.AnonymousIDPrefix + uuid.NewSHA1(namespace, []byte(nameKey)).String()
}

// Token derives the claim token for email under salt: the hex SHA-256 of
// salt, a zero byte and the trimmed lower-cased email, truncated. An empty
// email yields an empty token.
func Token(salt, email string) string {
	email = strings.ToLower(strings.TrimSpace(email))
	if email == "" {
		return ""
	}
	h := sha256.New()
	h.Write([]byte(salt))
	h.Write([]byte{0x00})
	h.Write([]byte(email))
	return hex.EncodeToString(h.Sum(nil))[:constants.ClaimTokenLength]
}

package anonymous

import (
	"crypto/subtle"
	"strings"

	"github.com/agentstation/teammap/pkg/contributors"
)

// Outcome is the result of checking a claim token.
type Outcome string

// Claim outcomes.
const (
	OutcomeValid        Outcome = "valid"
	OutcomeMismatch     Outcome = "token_mismatch"
	OutcomeNotAnonymous Outcome = "not_anonymous"
	OutcomeUnclaimable  Outcome = "unclaimable"
)

// Valid reports whether the outcome accepts the claim.
func (o Outcome) Valid() bool {
	return o == OutcomeValid
}

// Verify checks token against the claim token stored on c. The comparison
// runs in constant time. Only anonymous records with a stored token can be
// claimed; c is never modified.
func Verify(c contributors.Contributor, token string) Outcome {
	if !c.IsAnonymous {
		return OutcomeNotAnonymous
	}
	if c.ClaimToken == "" {
		return OutcomeUnclaimable
	}
	got := strings.ToLower(strings.TrimSpace(token))
	if subtle.ConstantTimeCompare([]byte(got), []byte(c.ClaimToken)) != 1 {
		return OutcomeMismatch
	}
	return OutcomeValid
}

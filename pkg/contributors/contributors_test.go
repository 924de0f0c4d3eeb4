package contributors

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNameKey(t *testing.T) {
	tests := []struct {
		name string
		a, b string
		same bool
	}{
		{"case differs", "María López", "MARÍA LÓPEZ", true},
		{"spacing differs", "  María   López ", "María López", true},
		{"decomposed accent", "María", "María", true},
		{"different people", "María López", "Mario López", false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.same, NameKey(tt.a) == NameKey(tt.b))
		})
	}
	assert.Empty(t, NameKey("   "))
}

func TestSlugSource(t *testing.T) {
	assert.Equal(t, "Ana Gil", Contributor{DisplayName: " Ana Gil ", FirstName: "X"}.SlugSource())
	assert.Equal(t, "Ana Gil", Contributor{FirstName: "Ana", LastName: "Gil"}.SlugSource())
	assert.Equal(t, "Gil", Contributor{LastName: "Gil"}.SlugSource())
	assert.Empty(t, Contributor{}.SlugSource())
}

func TestHasRole(t *testing.T) {
	c := Contributor{Roles: []string{"Editor en Jefe", " author "}}
	assert.True(t, c.HasRole("author"))
	assert.True(t, c.HasRole("editor en jefe"))
	assert.False(t, c.HasRole("Revisor"))
}

func TestCloneIsDeep(t *testing.T) {
	orig := Contributor{
		ID:            "u1",
		Roles:         []string{"Author"},
		Description:   LocalizedText{LocaleES: "hola"},
		Interests:     LocalizedList{LocaleEN: {"math"}},
		PreviousSlugs: []string{"old"},
		Publications: []Publication{{
			SubmissionID: "s1",
			Title:        LocalizedText{LocaleES: "Título"},
			Authors:      []AuthorRef{{AccountID: "u1"}},
		}},
	}
	cp := orig.Clone()
	cp.Roles[0] = "changed"
	cp.Description[LocaleES] = "changed"
	cp.Interests[LocaleEN][0] = "changed"
	cp.PreviousSlugs[0] = "changed"
	cp.Publications[0].Title[LocaleES] = "changed"
	cp.Publications[0].Authors[0].AccountID = "changed"

	assert.Equal(t, "Author", orig.Roles[0])
	assert.Equal(t, "hola", orig.Description[LocaleES])
	assert.Equal(t, "math", orig.Interests[LocaleEN][0])
	assert.Equal(t, "old", orig.PreviousSlugs[0])
	assert.Equal(t, "Título", orig.Publications[0].Title[LocaleES])
	assert.Equal(t, "u1", orig.Publications[0].Authors[0].AccountID)
}

func TestPersistable(t *testing.T) {
	t.Run("placeholder keeps token and drops contact data", func(t *testing.T) {
		c := Contributor{
			ID:           "anon-1",
			IsAnonymous:  true,
			ClaimToken:   "abc",
			PublicEmail:  "a@example.org",
			Social:       Social{Website: "https://example.org"},
			Publications: []Publication{{SubmissionID: "s1"}},
		}
		p := c.Persistable()
		assert.Equal(t, "abc", p.ClaimToken)
		assert.Empty(t, p.PublicEmail)
		assert.True(t, p.Social.IsZero())
		assert.Nil(t, p.Publications)
		assert.Len(t, c.Publications, 1)
	})

	t.Run("registered user never carries a token", func(t *testing.T) {
		p := Contributor{ID: "u1", ClaimToken: "stray", PublicEmail: "a@example.org"}.Persistable()
		assert.Empty(t, p.ClaimToken)
		assert.Equal(t, "a@example.org", p.PublicEmail)
	})
}

func TestContributorJSONShape(t *testing.T) {
	c := Contributor{
		ID:           "u1",
		DisplayName:  "Ana",
		Roles:        []string{},
		Slug:         "ana",
		Publications: []Publication{{SubmissionID: "s1"}},
	}
	data, err := json.Marshal(c)
	require.NoError(t, err)

	var m map[string]any
	require.NoError(t, json.Unmarshal(data, &m))
	assert.Equal(t, "u1", m["uid"])
	assert.Equal(t, "ana", m["slug"])
	assert.Equal(t, []any{}, m["roles"])
	assert.NotContains(t, m, "Publications")
	assert.NotContains(t, m, "publications")
	assert.NotContains(t, m, "claimToken")
	assert.NotContains(t, m, "previousSlugs")
}

func TestUserNormalize(t *testing.T) {
	u := User{
		ID:          " u1 ",
		DisplayName: "  Ana   Gil ",
		Roles:       []string{" Editor ", ""},
		Description: LocalizedText{LocaleES: "Bio"},
	}.Normalize()

	assert.Equal(t, "u1", u.ID)
	assert.Equal(t, "Ana Gil", u.DisplayName)
	assert.Equal(t, []string{"Editor"}, u.Roles)
	assert.Equal(t, "Bio", u.Description[LocaleES])
	assert.Contains(t, u.Description, LocaleEN)
	assert.Equal(t, []string{}, u.Interests[LocaleES])
	assert.Equal(t, []string{}, u.Interests[LocaleEN])
}

func TestFromUsers(t *testing.T) {
	got := FromUsers([]User{{ID: "u1", DisplayName: "Ana"}, {ID: "  "}, {ID: "u2"}})
	require.Len(t, got, 2)
	assert.Equal(t, []string{"u1", "u2"}, IDs(got))
	assert.NotNil(t, got[0].Roles)
	assert.Empty(t, got[0].Slug)
}

func TestStatusListed(t *testing.T) {
	assert.True(t, StatusPublished.Listed())
	assert.True(t, StatusAccepted.Listed())
	assert.False(t, StatusSubmitted.Listed())
	assert.False(t, StatusRejected.Listed())

	pubs := Listed([]Publication{
		{SubmissionID: "a", Status: " Published "},
		{SubmissionID: "b", Status: StatusRejected},
		{SubmissionID: "c", Status: StatusAccepted},
	})
	require.Len(t, pubs, 2)
	assert.Equal(t, StatusPublished, pubs[0].Status)
	assert.Equal(t, "c", pubs[1].SubmissionID)
}

func TestAuthorRef(t *testing.T) {
	assert.True(t, AuthorRef{AccountID: "u1"}.Registered())
	assert.False(t, AuthorRef{AccountID: "  ", Name: "Ana"}.Registered())
	assert.Equal(t, "Ana Gil", AuthorRef{FirstName: "Ana", LastName: "Gil", Name: "ignored"}.FullName())
	assert.Equal(t, "Ana Gil", AuthorRef{Name: " Ana  Gil "}.FullName())
}

func TestTitleFor(t *testing.T) {
	p := Publication{SubmissionID: "s1", Title: LocalizedText{LocaleES: "Título"}}
	assert.Equal(t, "Título", p.TitleFor(LocaleES))
	assert.Equal(t, "Título", p.TitleFor(LocaleEN))
	assert.Equal(t, "s1", Publication{SubmissionID: "s1"}.TitleFor(LocaleEN))
}

func TestLocalePageSuffix(t *testing.T) {
	assert.Equal(t, "", LocaleES.PageSuffix())
	assert.Equal(t, ".EN", LocaleEN.PageSuffix())
}

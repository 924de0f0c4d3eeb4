// Package site materializes the directory: one profile page per contributor
// and locale, and one redirect stub per retired slug and locale.
//
// Pages are rendered into memory by a Renderer and only then handed to a
// Writer, so a rendering failure never leaves a half-written site.
package site

import (
	"bytes"
	"embed"
	"html"
	"html/template"
	"strings"
	"unicode/utf8"

	"github.com/microcosm-cc/bluemonday"
	"golang.org/x/text/cases"

	"github.com/agentstation/teammap/pkg/constants"
	"github.com/agentstation/teammap/pkg/contributors"
	"github.com/agentstation/teammap/pkg/differ"
	"github.com/agentstation/teammap/pkg/errors"
)

//go:embed templates/*.tmpl
var templateFS embed.FS

// metaDescriptionLength caps the description meta tag, in runes.
const metaDescriptionLength = 160

// Config holds site-wide rendering settings.
type Config struct {
	// SiteName is the journal name per locale
	SiteName contributors.LocalizedText
	// BaseURL, when set, is used for canonical links
	BaseURL string
	// MailDomain hosts editors-in-chief institutional addresses
	MailDomain string
	// Address is printed under an editor-in-chief's address
	Address string
}

// DefaultConfig returns the journal's settings.
func DefaultConfig() Config {
	return Config{
		SiteName: contributors.LocalizedText{
			contributors.LocaleES: "Revista Nacional de las Ciencias para Estudiantes",
			contributors.LocaleEN: "The National Review of Sciences for Students",
		},
		MailDomain: constants.DefaultMailDomain,
		Address:    "San Felipe, Valparaíso, Chile",
	}
}

// Page is one rendered file, relative to the output directory.
type Page struct {
	Path string
	Body []byte
}

// Renderer renders pages.
type Renderer struct {
	cfg      Config
	profile  *template.Template
	redirect *template.Template
	bio      *bluemonday.Policy
	text     *bluemonday.Policy
}

// NewRenderer parses the embedded templates.
func NewRenderer(cfg Config) (*Renderer, error) {
	defaults := DefaultConfig()
	if cfg.MailDomain == "" {
		cfg.MailDomain = defaults.MailDomain
	}
	if cfg.Address == "" {
		cfg.Address = defaults.Address
	}
	for _, l := range contributors.Locales() {
		if cfg.SiteName.Get(l) == "" {
			if cfg.SiteName == nil {
				cfg.SiteName = contributors.LocalizedText{}
			}
			cfg.SiteName[l] = defaults.SiteName.Get(l)
		}
	}
	cfg.BaseURL = strings.TrimRight(cfg.BaseURL, "/")

	profile, err := template.ParseFS(templateFS, "templates/profile.html.tmpl")
	if err != nil {
		return nil, errors.WrapParse("template", "profile.html.tmpl", err)
	}
	redirect, err := template.ParseFS(templateFS, "templates/redirect.html.tmpl")
	if err != nil {
		return nil, errors.WrapParse("template", "redirect.html.tmpl", err)
	}

	return &Renderer{
		cfg:      cfg,
		profile:  profile,
		redirect: redirect,
		bio:      bluemonday.UGCPolicy(),
		text:     bluemonday.StrictPolicy(),
	}, nil
}

// PageName returns the file name of slug's page in locale l.
func PageName(slug string, l contributors.Locale) string {
	return slug + l.PageSuffix() + constants.PageExtension
}

// PagePath returns the site path of slug's page in locale l.
func PagePath(slug string, l contributors.Locale) string {
	return constants.TeamPathPrefix + PageName(slug, l)
}

// Render renders every profile in every locale followed by every redirect.
func (r *Renderer) Render(records []contributors.Contributor, redirects []differ.Redirect) ([]Page, error) {
	pages := make([]Page, 0, len(records)*len(contributors.Locales())+len(redirects))
	for _, c := range records {
		for _, l := range contributors.Locales() {
			p, err := r.Profile(c, l)
			if err != nil {
				return nil, err
			}
			pages = append(pages, p)
		}
	}
	for _, rd := range redirects {
		p, err := r.Redirect(rd)
		if err != nil {
			return nil, err
		}
		pages = append(pages, p)
	}
	return pages, nil
}

// Profile renders c's page in locale l.
func (r *Renderer) Profile(c contributors.Contributor, l contributors.Locale) (Page, error) {
	if c.Slug == "" {
		return Page{}, errors.NewValidationError("slug", c.ID, "contributor has no slug")
	}

	var buf bytes.Buffer
	if err := r.profile.Execute(&buf, r.profileView(c, l)); err != nil {
		return Page{}, errors.WrapResource("render", "page", c.Slug, err)
	}
	return Page{Path: PageName(c.Slug, l), Body: buf.Bytes()}, nil
}

// Redirect renders the stub that forwards rd.FromSlug to rd.ToSlug.
func (r *Renderer) Redirect(rd differ.Redirect) (Page, error) {
	if rd.FromSlug == "" || rd.ToSlug == "" {
		return Page{}, errors.NewValidationError("redirect", rd, "empty slug")
	}

	view := struct {
		Lang   string
		Target string
		L      labels
	}{
		Lang:   rd.Locale.String(),
		Target: PagePath(rd.ToSlug, rd.Locale),
		L:      labelsFor(rd.Locale),
	}

	var buf bytes.Buffer
	if err := r.redirect.Execute(&buf, view); err != nil {
		return Page{}, errors.WrapResource("render", "redirect", rd.FromSlug, err)
	}
	return Page{Path: PageName(rd.FromSlug, rd.Locale), Body: buf.Bytes()}, nil
}

type socialLink struct {
	URL   string
	Title string
}

type publicationView struct {
	Title string
	URL   string
	Meta  string
}

type profileView struct {
	Lang               string
	L                  labels
	SiteName           string
	Canonical          string
	Name               string
	Roles              string
	Institution        string
	ORCID              string
	InstitutionalEmail string
	Address            string
	ImageURL           string
	Social             []socialLink
	Bio                template.HTML
	MetaDescription    string
	Keywords           string
	Interests          []string
	Publications       []publicationView
	Anonymous          bool
}

func (r *Renderer) profileView(c contributors.Contributor, l contributors.Locale) profileView {
	lb := labelsFor(l)
	desc := c.Description.Get(l)
	interests := c.Interests.Get(l)

	v := profileView{
		Lang:            l.String(),
		L:               lb,
		SiteName:        r.cfg.SiteName.Get(l),
		Name:            c.DisplayName,
		Roles:           cases.Upper(languageOf(l)).String(strings.Join(VisibleRoles(c.Roles), ", ")),
		Institution:     c.Institution,
		ORCID:           strings.TrimSpace(c.ORCID),
		ImageURL:        c.ImageURL,
		Bio:             template.HTML(r.bio.Sanitize(desc)), //nolint:gosec // sanitized by bluemonday
		MetaDescription: truncateRunes(html.UnescapeString(r.text.Sanitize(desc)), metaDescriptionLength),
		Keywords:        strings.Join(interests, ", "),
		Interests:       interests,
		Anonymous:       c.IsAnonymous,
	}
	if v.Name == "" {
		v.Name = c.SlugSource()
	}
	if r.cfg.BaseURL != "" {
		v.Canonical = r.cfg.BaseURL + PagePath(c.Slug, l)
	}
	if !c.IsAnonymous {
		v.Social = socialLinks(c.Social)
		if IsEditorInChief(c.Roles) {
			v.InstitutionalEmail = InstitutionalEmail(c.FirstName, c.LastName, r.cfg.MailDomain)
			v.Address = r.cfg.Address
		}
	}
	for _, p := range c.Publications {
		v.Publications = append(v.Publications, publicationView{
			Title: p.TitleFor(l),
			URL:   p.DocumentURL,
			Meta:  publicationMeta(p, lb),
		})
	}
	return v
}

// VisibleRoles drops the bare author role when the contributor holds any
// other role.
func VisibleRoles(roles []string) []string {
	if len(roles) <= 1 {
		return roles
	}
	out := make([]string, 0, len(roles))
	for _, r := range roles {
		if !isAuthorRole(r) {
			out = append(out, r)
		}
	}
	return out
}

func isAuthorRole(role string) bool {
	r := strings.ToLower(strings.TrimSpace(role))
	return r == "autor" || r == "author"
}

// IsEditorInChief reports whether roles include the editor-in-chief role,
// in either language.
func IsEditorInChief(roles []string) bool {
	for _, r := range roles {
		r = strings.ToLower(strings.TrimSpace(r))
		if strings.Contains(r, "editor en jefe") || r == "editor-in-chief" {
			return true
		}
	}
	return false
}

// InstitutionalEmail builds first.last@domain, lower-cased, without spaces.
func InstitutionalEmail(first, last, domain string) string {
	local := strings.ToLower(first) + "." + strings.ToLower(last)
	return strings.Join(strings.Fields(local), "") + "@" + domain
}

func socialLinks(s contributors.Social) []socialLink {
	var out []socialLink
	if s.LinkedIn != "" {
		out = append(out, socialLink{URL: s.LinkedIn, Title: "LinkedIn"})
	}
	if x := s.XURL(); x != "" {
		out = append(out, socialLink{URL: x, Title: "X (Twitter)"})
	}
	if s.Instagram != "" {
		out = append(out, socialLink{URL: s.Instagram, Title: "Instagram"})
	}
	if s.Website != "" {
		out = append(out, socialLink{URL: s.Website, Title: "Web"})
	}
	return out
}

func publicationMeta(p contributors.Publication, lb labels) string {
	var parts []string
	if p.Volume != "" {
		parts = append(parts, lb.Volume+" "+p.Volume)
	}
	if p.Issue != "" {
		parts = append(parts, lb.Issue+" "+p.Issue)
	}
	if p.Date != "" {
		parts = append(parts, p.Date)
	}
	if p.Area != "" {
		parts = append(parts, p.Area)
	}
	return strings.Join(parts, " · ")
}

func truncateRunes(s string, n int) string {
	s = strings.Join(strings.Fields(s), " ")
	if utf8.RuneCountInString(s) <= n {
		return s
	}
	return string([]rune(s)[:n])
}

package contributors

// Locale identifies one language edition of the public site.
type Locale string

// Supported locales. Spanish is the site's primary edition.
const (
	LocaleES Locale = "es"
	LocaleEN Locale = "en"
)

// Locales returns every supported locale in rendering order.
func Locales() []Locale {
	return []Locale{LocaleES, LocaleEN}
}

// PageSuffix returns the file-name suffix for pages in this locale.
// Spanish pages have none; English pages end in ".EN".
func (l Locale) PageSuffix() string {
	if l == LocaleEN {
		return ".EN"
	}
	return ""
}

// String returns the locale code.
func (l Locale) String() string {
	return string(l)
}

// LocalizedText holds one string per locale.
type LocalizedText map[Locale]string

// Get returns the text for locale, or the empty string.
func (t LocalizedText) Get(l Locale) string {
	if t == nil {
		return ""
	}
	return t[l]
}

// LocalizedList holds a list of strings per locale.
type LocalizedList map[Locale][]string

// Get returns the list for locale, or nil.
func (t LocalizedList) Get(l Locale) []string {
	if t == nil {
		return nil
	}
	return t[l]
}

func (t LocalizedText) clone() LocalizedText {
	if t == nil {
		return nil
	}
	out := make(LocalizedText, len(t))
	for k, v := range t {
		out[k] = v
	}
	return out
}

func (t LocalizedList) clone() LocalizedList {
	if t == nil {
		return nil
	}
	out := make(LocalizedList, len(t))
	for k, v := range t {
		out[k] = cloneStrings(v)
	}
	return out
}

// withDefaults fills every supported locale so renderers never branch on nil.
func (t LocalizedText) withDefaults() LocalizedText {
	out := t.clone()
	if out == nil {
		out = make(LocalizedText, 2)
	}
	for _, l := range Locales() {
		if _, ok := out[l]; !ok {
			out[l] = ""
		}
	}
	return out
}

func (t LocalizedList) withDefaults() LocalizedList {
	out := t.clone()
	if out == nil {
		out = make(LocalizedList, 2)
	}
	for _, l := range Locales() {
		if out[l] == nil {
			out[l] = []string{}
		}
	}
	return out
}

package gocrc

import "sort"

// nameEntry pairs one catalogue alias (or canonical name) with the
// canonical template name it resolves to.
type nameEntry struct {
	alias     string
	canonical string
}

// Lookup resolves a catalogue or alias name to its Params. Names are
// matched exactly, byte for byte, against the lowercase catalogueNames.
// It returns a *ConfigError with Kind KindKey when the name is unknown.
func Lookup(name string) (Params, error) {
	i := sort.Search(len(catalogueNames), func(i int) bool {
		return catalogueNames[i].alias >= name
	})
	if i >= len(catalogueNames) || catalogueNames[i].alias != name {
		return Params{}, &ConfigError{Kind: KindKey, Field: "name", Message: "unknown catalogue name: " + name}
	}
	canonical := catalogueNames[i].canonical
	params, ok := canonicalParams[canonical]
	if !ok {
		return Params{}, &ConfigError{Kind: KindRuntime, Field: "name", Message: "catalogue entry missing params: " + canonical}
	}
	return params, nil
}

// canonicalName returns the canonical template name an alias resolves to,
// or "" if the alias is unknown.
func canonicalName(name string) string {
	i := sort.Search(len(catalogueNames), func(i int) bool {
		return catalogueNames[i].alias >= name
	})
	if i >= len(catalogueNames) || catalogueNames[i].alias != name {
		return ""
	}
	return catalogueNames[i].canonical
}

// TemplatesAvailable returns every catalogue name, aliases included, mapped
// to its template's Params, in a fresh map safe for the caller to mutate.
func TemplatesAvailable() map[string]Params {
	out := make(map[string]Params, len(catalogueNames))
	for _, entry := range catalogueNames {
		out[entry.alias] = canonicalParams[entry.canonical]
	}
	return out
}

// catalogueCheckValue returns the reference check value (the CRC of ASCII
// "123456789") recorded for a canonical template name, and whether the
// name has one; it is exposed for tests, not for general use.
func catalogueCheckValue(name string) (uint64, bool) {
	v, ok := catalogueCheck[name]
	return v, ok
}

package i18n

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoad_DefaultLanguage(t *testing.T) {
	catalog, err := Load("en")
	require.NoError(t, err)

	tr := catalog.Translator()
	assert.Equal(t, "en", tr.Locale())
	assert.Equal(t, "Name is required", tr.T("error.name.required"))
}

func TestLoad_UnknownDefaultLanguage(t *testing.T) {
	_, err := Load("xx")
	assert.Error(t, err)
}

func TestTranslator_RegionSubtag(t *testing.T) {
	catalog, err := Load("en")
	require.NoError(t, err)

	tr := catalog.Translator("pl-PL")
	assert.Equal(t, "pl", tr.Locale())
	assert.Equal(t, "Wybierz co najmniej jeden powiat", tr.T("error.county.minOne"))
}

func TestTranslator_UnknownID(t *testing.T) {
	catalog, err := Load("en")
	require.NoError(t, err)

	assert.Equal(t, "no.such.message", catalog.Translator().T("no.such.message"))
}

func TestCatalogs_SameKeys(t *testing.T) {
	catalog, err := Load("en")
	require.NoError(t, err)

	english := catalog.Translator("en")
	polish := catalog.Translator("pl")
	for _, id := range []string{
		"error.name.required",
		"error.must.be.number",
		"error.type.required",
		"error.must.be.string",
		"error.must.be.list",
		"error.date.invalid",
		"error.county.minOne",
		"error.county.invalid",
		"signup.volunteering.name",
		"signup.other.county_coverage",
		"add",
	} {
		assert.NotEqual(t, id, english.T(id), "en missing %s", id)
		assert.NotEqual(t, id, polish.T(id), "pl missing %s", id)
	}
}

func TestFromRequest(t *testing.T) {
	catalog, err := Load("en")
	require.NoError(t, err)

	r := httptest.NewRequest("GET", "/", nil)
	r.Header.Set("Accept-Language", "de-DE;q=0.9, pl;q=0.8")
	assert.Equal(t, "pl", catalog.FromRequest(r).Locale())

	r = httptest.NewRequest("GET", "/?lang=en", nil)
	r.Header.Set("Accept-Language", "pl")
	assert.Equal(t, "en", catalog.FromRequest(r).Locale())

	r = httptest.NewRequest("GET", "/", nil)
	assert.Equal(t, "en", catalog.FromRequest(r).Locale())
}

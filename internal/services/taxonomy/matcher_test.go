package taxonomy

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/visionary-ai/medassist/internal/domain"
)

func newTestMatcher(t *testing.T) *Matcher {
	t.Helper()
	m, err := NewMatcher(Build(DefaultRecords()), map[string]string{
		domain.ChatCategorySkin: "Dermatology",
		domain.ChatCategoryOral: "General Practice",
	})
	require.NoError(t, err)
	return m
}

func TestResolveExactSpecialization(t *testing.T) {
	m := newTestMatcher(t)

	match, err := m.Resolve("periodontics", domain.ChatCategoryOral)
	require.NoError(t, err)
	assert.Equal(t, "Dentist", match.Classification)
	assert.Equal(t, "Periodontics", match.Specialization)
	assert.Equal(t, "1223P0300X", match.Code)
}

func TestResolveClassificationWhenNoSpecialization(t *testing.T) {
	m := newTestMatcher(t)

	match, err := m.Resolve("Family Medicine", domain.ChatCategorySkin)
	require.NoError(t, err)
	assert.Equal(t, "Family Medicine", match.Classification)
	assert.Equal(t, "", match.Specialization)
}

func TestResolveEmptyFallsBackToCategoryDefault(t *testing.T) {
	m := newTestMatcher(t)

	match, err := m.Resolve("", domain.ChatCategorySkin)
	require.NoError(t, err)
	assert.Equal(t, "Dermatology", match.Classification)
}

func TestResolveUnmatchedFallsBackToCategoryDefault(t *testing.T) {
	m := newTestMatcher(t)

	match, err := m.Resolve("Underwater Basket Weaving", domain.ChatCategoryOral)
	require.NoError(t, err)
	assert.Equal(t, "General Practice", match.Specialization)
}

func TestNewMatcherRejectsUnresolvableDefault(t *testing.T) {
	_, err := NewMatcher(Build(DefaultRecords()), map[string]string{
		"skin": "Not A Real Specialty",
	})
	assert.Error(t, err)
}

func TestResolveUnknownCategory(t *testing.T) {
	m := newTestMatcher(t)

	_, err := m.Resolve("", "podiatry")
	assert.Error(t, err)
}

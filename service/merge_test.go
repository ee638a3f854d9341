package service

import (
	"testing"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string { return &s }

func scannedResult() dto.ExtractionResult {
	age := 28
	g := dto.GenderMale
	return dto.ExtractionResult{
		Name:           strPtr("Ravi Kumar"),
		Age:            &age,
		Gender:         &g,
		IdentityNumber: strPtr("123456789012"),
	}
}

func TestMergeExtractionPreferExtracted(t *testing.T) {
	draft := dto.ProfileDraft{Name: "Ravi K", Mobile: "9876543210"}

	got, err := MergeExtraction(draft, scannedResult(), MergeFields, PreferExtracted)
	require.NoError(t, err)

	assert.Equal(t, "Ravi Kumar", got.Name)
	assert.Equal(t, "28", got.Age)
	assert.Equal(t, "Male", got.Gender)
	assert.Equal(t, "123456789012", got.IdentityNumber)
	assert.Equal(t, "9876543210", got.Mobile)
	// nothing extracted for address
	assert.Equal(t, "", got.Address)
}

func TestMergeExtractionPreferExisting(t *testing.T) {
	draft := dto.ProfileDraft{Name: "Ravi K", Age: "  "}

	got, err := MergeExtraction(draft, scannedResult(), MergeFields, PreferExistingIfNonEmpty)
	require.NoError(t, err)

	assert.Equal(t, "Ravi K", got.Name)
	assert.Equal(t, "28", got.Age)
	assert.Equal(t, "Male", got.Gender)
}

func TestMergeExtractionOnlyConfirmedFields(t *testing.T) {
	got, err := MergeExtraction(dto.ProfileDraft{}, scannedResult(), []string{FieldGender}, PreferExtracted)
	require.NoError(t, err)

	assert.Equal(t, dto.ProfileDraft{Gender: "Male"}, got)
}

func TestMergeExtractionUnknownField(t *testing.T) {
	draft := dto.ProfileDraft{Name: "Asha"}

	got, err := MergeExtraction(draft, scannedResult(), []string{"mobile"}, PreferExtracted)
	assert.Error(t, err)
	assert.Equal(t, draft, got)
}

func TestMergeExtractionUnknownFieldAfterValidOne(t *testing.T) {
	draft := dto.ProfileDraft{Name: "Asha"}

	got, err := MergeExtraction(draft, scannedResult(), []string{FieldName, "mobile"}, PreferExtracted)
	assert.Error(t, err)
	assert.Equal(t, "Asha", got.Name)
	assert.Equal(t, draft, got)
}

func TestParseMergePolicy(t *testing.T) {
	p, err := ParseMergePolicy("prefer_extracted")
	require.NoError(t, err)
	assert.Equal(t, PreferExtracted, p)

	p, err = ParseMergePolicy(" Prefer_Existing ")
	require.NoError(t, err)
	assert.Equal(t, PreferExistingIfNonEmpty, p)

	_, err = ParseMergePolicy("newest")
	assert.Error(t, err)
}

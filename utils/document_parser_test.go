package utils

import (
	"testing"
	"time"

	"github.com/Aashish23092/schemelink/dto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var refDay = time.Date(2024, time.March, 10, 0, 0, 0, 0, time.UTC)

func TestParseDocumentTextLabeledCard(t *testing.T) {
	text := `
		GOVERNMENT OF INDIA
		Name: Ravi Kumar
		DOB: 12/05/1995
		Sex: M
		1234 5678 9012
	`

	r := ParseDocumentText(text, refDay)

	require.NotNil(t, r.Name)
	assert.Equal(t, "Ravi Kumar", *r.Name)
	require.NotNil(t, r.DOBRaw)
	assert.Equal(t, "12/05/1995", *r.DOBRaw)
	require.NotNil(t, r.DOBDate)
	assert.Equal(t, time.Date(1995, time.May, 12, 0, 0, 0, 0, time.UTC), *r.DOBDate)
	require.NotNil(t, r.Age)
	assert.Equal(t, 28, *r.Age)
	require.NotNil(t, r.Gender)
	assert.Equal(t, dto.GenderMale, *r.Gender)
	require.NotNil(t, r.IdentityNumber)
	assert.Equal(t, "123456789012", *r.IdentityNumber)
	assert.Equal(t, text, r.Raw)
	assert.False(t, r.NeedsClearerImage())
}

func TestParseDocumentTextNothingRecognizable(t *testing.T) {
	r := ParseDocumentText("welcome to the portal\nplease upload again\n@@ ## !!", refDay)

	assert.Nil(t, r.Name)
	assert.Nil(t, r.DOBRaw)
	assert.Nil(t, r.DOBDate)
	assert.Nil(t, r.Age)
	assert.Nil(t, r.Gender)
	assert.Nil(t, r.IdentityNumber)
	assert.True(t, r.NeedsClearerImage())
	assert.Equal(t, dto.ClearerImageHint, r.Summary().Hint)
}

func TestParseDocumentTextEmpty(t *testing.T) {
	r := ParseDocumentText("", refDay)
	assert.Nil(t, r.Name)
	assert.Nil(t, r.DOBDate)
	assert.Nil(t, r.Gender)
	assert.Equal(t, "", r.Raw)
}

func TestParseDocumentTextIsIdempotent(t *testing.T) {
	text := "भारत सरकार\nनाम / Name: Sita Devi\nजन्म तिथि/DOB: 01/01/1980\nमहिला / FEMALE\n9876 5432 1098"

	first := ParseDocumentText(text, refDay)
	second := ParseDocumentText(text, refDay)
	assert.Equal(t, first, second)

	require.NotNil(t, first.Name)
	assert.Equal(t, "Sita Devi", *first.Name)
	require.NotNil(t, first.DOBRaw)
	assert.Equal(t, "01/01/1980", *first.DOBRaw)
	require.NotNil(t, first.Gender)
	assert.Equal(t, dto.GenderFemale, *first.Gender)
}

func TestParseDocumentTextUnlabeledFront(t *testing.T) {
	r := ParseDocumentText("RAVI KUMAR\nMALE", refDay)

	require.NotNil(t, r.Name)
	assert.Equal(t, "RAVI KUMAR", *r.Name)
	require.NotNil(t, r.Gender)
	assert.Equal(t, dto.GenderMale, *r.Gender)
}

func TestAgeImpliesDOB(t *testing.T) {
	for _, text := range []string{
		"DOB: 12/05/1995",
		"DOB: unknown",
		"Name: Asha\nissued 2019-07-01",
		"",
	} {
		r := ParseDocumentText(text, refDay)
		if r.Age != nil {
			assert.NotNil(t, r.DOBDate, text)
		}
		if r.DOBRaw != nil {
			assert.NotNil(t, r.DOBDate, text)
		}
	}
}

func TestExtractNameTiers(t *testing.T) {
	e := NewFieldExtractor(DefaultLabels())

	t.Run("label cut at digits and commas", func(t *testing.T) {
		name := e.ExtractName([]string{"Applicant: Meena Rao, D/O Ramesh", "Name: ignored"})
		require.NotNil(t, name)
		assert.Equal(t, "Meena Rao", *name)
	})

	t.Run("label with nothing usable falls through", func(t *testing.T) {
		name := e.ExtractName([]string{"Name: 1", "RAVI KUMAR"})
		require.NotNil(t, name)
		assert.Equal(t, "RAVI KUMAR", *name)
	})

	t.Run("nested labels", func(t *testing.T) {
		name := e.ExtractName([]string{"Card Holder Name: Arjun Das"})
		require.NotNil(t, name)
		assert.Equal(t, "Arjun Das", *name)
	})

	t.Run("shortest structural candidate", func(t *testing.T) {
		name := e.ExtractName([]string{
			"GOVERNMENT OF INDIA",
			"RAVI KUMAR SHARMA",
			"Ravi Kumar",
			"Father : Suresh Kumar",
		})
		require.NotNil(t, name)
		assert.Equal(t, "Ravi Kumar", *name)
	})

	t.Run("bare gender line is not a name", func(t *testing.T) {
		name := e.ExtractName([]string{"GOVERNMENT OF INDIA", "RAVI KUMAR", "MALE"})
		require.NotNil(t, name)
		assert.Equal(t, "RAVI KUMAR", *name)

		assert.Nil(t, e.ExtractName([]string{"FEMALE", "Transgender"}))
	})

	t.Run("disqualified lines only", func(t *testing.T) {
		name := e.ExtractName([]string{"GOVERNMENT OF INDIA", "Unique Identification Authority", "Date Of Issue"})
		assert.Nil(t, name)
	})

	t.Run("line length bounds", func(t *testing.T) {
		assert.Nil(t, e.ExtractName([]string{"AB"}))
	})
}

func TestExtractDOBPhases(t *testing.T) {
	e := NewFieldExtractor(DefaultLabels())

	t.Run("labeled year first", func(t *testing.T) {
		raw, d := e.ExtractDOB(NormalizeText("Date of Birth: 1995-05-12"), refDay)
		require.NotNil(t, raw)
		assert.Equal(t, "1995-05-12", *raw)
		assert.Equal(t, time.Date(1995, time.May, 12, 0, 0, 0, 0, time.UTC), *d)
	})

	t.Run("labeled month name", func(t *testing.T) {
		raw, d := e.ExtractDOB(NormalizeText("DOB : 3 August 1988"), refDay)
		require.NotNil(t, raw)
		assert.Equal(t, "3 August 1988", *raw)
		assert.Equal(t, time.August, d.Month())
	})

	t.Run("label wins over earlier unlabeled date", func(t *testing.T) {
		raw, _ := e.ExtractDOB(NormalizeText("Issue Date: 01/02/2015\nDOB: 12/05/1995"), refDay)
		require.NotNil(t, raw)
		assert.Equal(t, "12/05/1995", *raw)
	})

	t.Run("unlabeled prefers plausible birth year", func(t *testing.T) {
		raw, d := e.ExtractDOB(NormalizeText("valid till 05/06/2030\nborn 12/05/1995"), refDay)
		require.NotNil(t, raw)
		assert.Equal(t, "12/05/1995", *raw)
		assert.Equal(t, 1995, d.Year())
	})

	t.Run("unlabeled weak fallback", func(t *testing.T) {
		raw, d := e.ExtractDOB(NormalizeText("valid till 05/06/2030"), refDay)
		require.NotNil(t, raw)
		assert.Equal(t, 2030, d.Year())
	})

	t.Run("years before 1900 are ignored", func(t *testing.T) {
		raw, d := e.ExtractDOB(NormalizeText("established 1850-01-01"), refDay)
		assert.Nil(t, raw)
		assert.Nil(t, d)
	})

	t.Run("digits inside longer numbers are not dates", func(t *testing.T) {
		raw, _ := e.ExtractDOB(NormalizeText("ref 1234/56/78901"), refDay)
		assert.Nil(t, raw)
	})
}

func TestExtractGenderTiers(t *testing.T) {
	e := NewFieldExtractor(DefaultLabels())

	cases := []struct {
		text string
		want dto.Gender
	}{
		{"Sex: M", dto.GenderMale},
		{"SEX : F", dto.GenderFemale},
		{"Gender - Female", dto.GenderFemale},
		{"Gender: Transgender", dto.GenderOther},
		{"gender other", dto.GenderOther},
		{"लिंग: महिला", dto.GenderFemale},
		{"लिंग: पुरुष", dto.GenderMale},
		{"RAVI KUMAR\nMALE", dto.GenderMale},
		{"some text FEMALE more", dto.GenderFemale},
		{"category: transgender", dto.GenderOther},
	}
	for _, tc := range cases {
		g := e.ExtractGender(NormalizeText(tc.text).Whole)
		require.NotNil(t, g, tc.text)
		assert.Equal(t, tc.want, *g, tc.text)
	}

	assert.Nil(t, e.ExtractGender("no gender words here"))
	assert.Nil(t, e.ExtractGender("Sexton Road"))
}

func TestExtractIdentityNumber(t *testing.T) {
	n := ExtractIdentityNumber("Aadhaar No.\n6260 7951 8316\nVID")
	require.NotNil(t, n)
	assert.Equal(t, "626079518316", *n)

	n = ExtractIdentityNumber("UID 626079518316")
	require.NotNil(t, n)
	assert.Equal(t, "626079518316", *n)

	assert.Nil(t, ExtractIdentityNumber("PIN 560001"))

	assert.Nil(t, ExtractIdentityNumber("VID: 1234 5678 9012 3456"))
	assert.Nil(t, ExtractIdentityNumber("VID 1234567890123456"))

	n = ExtractIdentityNumber("VID: 9999 1234 5678 9012 3456\nAadhaar 6260 7951 8316")
	require.NotNil(t, n)
	assert.Equal(t, "626079518316", *n)
}

func TestCustomLabelTable(t *testing.T) {
	labels := LabelTable{
		Name:         []string{"nom"},
		DOB:          []string{"né le"},
		Gender:       []string{"sexe"},
		GenderValues: []string{"m", "f"},
	}
	e := NewFieldExtractor(labels)

	r := e.Extract("Nom: Jean Dupont\nNé le 14/07/1989\nSexe: F", refDay)

	require.NotNil(t, r.Name)
	assert.Equal(t, "Jean Dupont", *r.Name)
	require.NotNil(t, r.DOBRaw)
	assert.Equal(t, "14/07/1989", *r.DOBRaw)
	require.NotNil(t, r.Gender)
	assert.Equal(t, dto.GenderFemale, *r.Gender)
}

func TestEmptyLabelTableNeverMatchesLabels(t *testing.T) {
	e := NewFieldExtractor(LabelTable{})

	name := e.ExtractName([]string{"Name: Ravi Kumar"})
	assert.Nil(t, name)
}

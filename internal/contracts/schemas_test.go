package contracts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateKeyFromPath(t *testing.T) {
	assert.Equal(t, "FilterCriteria/1.0.0", generateKeyFromPath("storage/filter-criteria/v1.json"))
	assert.Equal(t, "FormDraft/2.0.0", generateKeyFromPath("storage/form-draft/v2.json"))
	assert.Empty(t, generateKeyFromPath("storage/v1.json"))
}

func TestValidateStored_FilterCriteria(t *testing.T) {
	require.Contains(t, compiledSchemas, FilterCriteriaV1)

	valid := []string{
		`{}`,
		`{"selectedRegions":[1,2],"minPrice":100000,"maxPrice":null,"bedroomCount":2}`,
		`{"selectedRegions":null,"minArea":12.5,"unknownKey":"ignored"}`,
	}
	for _, body := range valid {
		assert.NoError(t, ValidateStored(FilterCriteriaV1, []byte(body)), body)
	}

	invalid := []string{
		`[]`,
		`{"selectedRegions":"1,2"}`,
		`{"minPrice":"cheap"}`,
		`{"bedroomCount":2.5}`,
		`{"maxArea":-1}`,
		`not json`,
	}
	for _, body := range invalid {
		assert.Error(t, ValidateStored(FilterCriteriaV1, []byte(body)), body)
	}
}

func TestValidateStored_FormDraft(t *testing.T) {
	assert.NoError(t, ValidateStored(FormDraftV1, []byte(`{"name":"Nino","phone":"555123456"}`)))
	assert.Error(t, ValidateStored(FormDraftV1, []byte(`{"bedrooms":2}`)))
}

func TestValidateStored_UnknownSchema(t *testing.T) {
	err := ValidateStored("Missing/1.0.0", []byte(`{}`))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not found")
}

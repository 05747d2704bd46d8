package growth

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSex(t *testing.T) {
	sex, err := ParseSex("male")
	require.NoError(t, err)
	assert.Equal(t, SexMale, sex)

	sex, err = ParseSex("female")
	require.NoError(t, err)
	assert.Equal(t, SexFemale, sex)

	// case sensitive
	for _, input := range []string{"Male", "FEMALE", "m", ""} {
		_, err := ParseSex(input)
		var validationErr *ValidationError
		assert.ErrorAs(t, err, &validationErr)
	}
}

func TestParseMeasurementMethod(t *testing.T) {
	for input, expected := range map[string]MeasurementMethod{
		"height": MethodHeight,
		"weight": MethodWeight,
		"bmi":    MethodBMI,
		"ofc":    MethodOFC,
	} {
		method, err := ParseMeasurementMethod(input)
		require.NoError(t, err)
		assert.Equal(t, expected, method)
	}

	_, err := ParseMeasurementMethod("head")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestMeasurementMethod_Unit(t *testing.T) {
	assert.Equal(t, "cm", MethodHeight.Unit())
	assert.Equal(t, "kg", MethodWeight.Unit())
	assert.Equal(t, "kg/m2", MethodBMI.Unit())
	assert.Equal(t, "cm", MethodOFC.Unit())
}

func TestParseReference(t *testing.T) {
	for input, expected := range map[string]Reference{
		"uk-who":           ReferenceUKWHO,
		"trisomy-21":       ReferenceTrisomy21,
		"turners-syndrome": ReferenceTurners,
	} {
		ref, err := ParseReference(input)
		require.NoError(t, err)
		assert.Equal(t, expected, ref)
	}

	_, err := ParseReference("who")
	var validationErr *ValidationError
	assert.ErrorAs(t, err, &validationErr)
}

func TestReference_Display(t *testing.T) {
	assert.Equal(t, "UK-WHO", ReferenceUKWHO.Display())
	assert.Equal(t, "Trisomy 21/Down's Syndrome", ReferenceTrisomy21.Display())
	assert.Equal(t, "Turner's Syndrome", ReferenceTurners.Display())
}

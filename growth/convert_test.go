package growth

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeEngine is a deterministic linear model: the median is 100 and one
// standard deviation is 10, independent of reference, method, sex and age.
type fakeEngine struct{}

func (fakeEngine) LookupSDS(_ Reference, _ MeasurementMethod, _ Sex, _, observationValue float64) (float64, error) {
	return (observationValue - 100) / 10, nil
}

func (fakeEngine) InvertToMeasurement(_ Reference, _ MeasurementMethod, _ Sex, _, targetSDS float64) (float64, error) {
	return 100 + 10*targetSDS, nil
}

// failingEngine simulates a combination outside the published data.
type failingEngine struct{}

func (failingEngine) LookupSDS(reference Reference, method MeasurementMethod, sex Sex, age, _ float64) (float64, error) {
	return 0, &NoReferenceDataError{Reference: reference, Method: method, Sex: sex, Age: age}
}

func (failingEngine) InvertToMeasurement(reference Reference, method MeasurementMethod, sex Sex, age, _ float64) (float64, error) {
	return 0, &NoReferenceDataError{Reference: reference, Method: method, Sex: sex, Age: age}
}

func TestCentileForSDS(t *testing.T) {
	assert.Equal(t, 50.0, CentileForSDS(0))
	assert.InDelta(t, 97.7, CentileForSDS(2), 0.1)
	assert.InDelta(t, 2.3, CentileForSDS(-2), 0.1)
}

func TestSDSForCentile(t *testing.T) {
	sds, err := SDSForCentile(50)
	require.NoError(t, err)
	assert.InDelta(t, 0.0, sds, 1e-12)
}

func TestSDSForCentile_OutsideOpenInterval(t *testing.T) {
	for _, centile := range []float64{0, 100, -5, 101.3} {
		_, err := SDSForCentile(centile)
		var rangeErr *CentileRangeError
		require.ErrorAs(t, err, &rangeErr)
		assert.Equal(t, centile, rangeErr.Centile)
	}
}

func TestSDSCentileBijection(t *testing.T) {
	for sds := -4.0; sds <= 4.0; sds += 0.25 {
		recovered, err := SDSForCentile(CentileForSDS(sds))
		require.NoError(t, err)
		assert.InDelta(t, sds, recovered, 1e-6)
	}
}

func TestService_RoundTrip(t *testing.T) {
	service := NewService(fakeEngine{})

	for sds := -3.0; sds <= 3.0; sds += 0.5 {
		value, err := service.MeasurementFromSDS(ReferenceUKWHO, 1.0, SexMale, MethodHeight, sds)
		require.NoError(t, err)
		recovered, err := service.SDSForMeasurement(ReferenceUKWHO, 1.0, SexMale, MethodHeight, value)
		require.NoError(t, err)
		assert.InDelta(t, sds, recovered, 1e-6)
	}
}

func TestService_CentileAndSDSEntryPointsAgree(t *testing.T) {
	service := NewService(fakeEngine{})

	for _, centile := range []float64{0.4, 2, 9, 25, 50, 75, 91, 98, 99.6} {
		fromCentile, err := service.MeasurementFromCentile(ReferenceUKWHO, 1.0, SexFemale, MethodWeight, centile)
		require.NoError(t, err)

		sds, err := SDSForCentile(centile)
		require.NoError(t, err)
		fromSDS, err := service.MeasurementFromSDS(ReferenceUKWHO, 1.0, SexFemale, MethodWeight, sds)
		require.NoError(t, err)

		assert.InDelta(t, fromSDS, fromCentile, 1e-9)
	}
}

func TestService_MeasurementFromCentile_RejectsBoundary(t *testing.T) {
	service := NewService(fakeEngine{})
	_, err := service.MeasurementFromCentile(ReferenceUKWHO, 1.0, SexMale, MethodHeight, 100)
	var rangeErr *CentileRangeError
	assert.ErrorAs(t, err, &rangeErr)
}

func TestService_PropagatesNoReferenceData(t *testing.T) {
	service := NewService(failingEngine{})

	_, err := service.SDSForMeasurement(ReferenceTurners, 4.0, SexMale, MethodHeight, 100)
	var noData *NoReferenceDataError
	require.ErrorAs(t, err, &noData)
	assert.Equal(t, ReferenceTurners, noData.Reference)
	assert.Equal(t, SexMale, noData.Sex)

	_, err = service.MeasurementFromCentile(ReferenceTurners, 4.0, SexMale, MethodHeight, 50)
	assert.ErrorAs(t, err, &noData)
}

func TestCentileForSDS_Extremes(t *testing.T) {
	assert.Greater(t, CentileForSDS(8), 99.99)
	assert.Less(t, CentileForSDS(-8), 0.01)
	assert.False(t, math.IsNaN(CentileForSDS(0)))
}

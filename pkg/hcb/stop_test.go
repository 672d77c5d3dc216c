package hcb

import (
	"encoding/json"
	"errors"
	"testing"
	"time"

	"github.com/hcbtrack/hcb/pkg/coerce"
	"github.com/hcbtrack/hcb/pkg/fixtures"
	"github.com/hcbtrack/hcb/pkg/xmlquery"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStop_Fixture(t *testing.T) {
	t.Parallel()

	resp, err := ParseStop(fixtures.Response(fixtures.OpStops))
	require.NoError(t, err)

	require.NotNil(t, resp.VehicleLocation)
	assert.Equal(t, VehicleLocation{
		Name:           "Bus 42",
		Latitude:       39.7817,
		Longitude:      -89.6501,
		LogTime:        time.Date(2024, time.January, 15, 7, 41, 12, 0, time.UTC),
		Ignition:       true,
		Latent:         false,
		TimeZoneOffset: -6,
		Heading:        "NE",
		Speed:          23,
		Address:        "742 Evergreen Terrace",
		MessageCode:    4,
		DisplayOnMap:   true,
	}, *resp.VehicleLocation)

	require.Len(t, resp.StudentStops, 2)
	first := resp.StudentStops[0]
	assert.Equal(t, StudentStop{
		StopID:                   "STOP-17",
		TimeOfDayID:              "55632A13-35C5-4169-B872-F5ABDC25DF6A",
		VehicleID:                "V-42",
		ESN:                      "4421987",
		Name:                     "Evergreen Ter & Maple St",
		StopType:                 "Pickup",
		VehicleName:              "Bus 42",
		SubstituteVehicleName:    "",
		Latitude:                 39.7802,
		Longitude:                -89.6488,
		StartTime:                coerce.Clock{Hour: 7, Minute: 15},
		ArrivalTime:              coerce.Clock{Hour: 7, Minute: 48},
		TierStartTime:            coerce.Clock{Hour: 7},
		BusVisibilityStartOffset: 900,
	}, first)
	assert.Equal(t, "STOP-1", resp.StudentStops[1].StopID)
}

func TestParseStop_NoVehicleLocation(t *testing.T) {
	t.Parallel()

	resp, err := ParseStop(`<s:Envelope xmlns:s="http://schemas.xmlsoap.org/soap/envelope/"><s:Body>
<GetStudentStops><StudentStops>
  <StudentStop StopId="a" ArrivalTime="07:10"/>
  <StudentStop StopId="b" ArrivalTime="07:20"/>
</StudentStops></GetStudentStops></s:Body></s:Envelope>`)
	require.NoError(t, err)

	assert.Nil(t, resp.VehicleLocation)
	require.Len(t, resp.StudentStops, 2)
	assert.Equal(t, "a", resp.StudentStops[0].StopID)
	assert.Equal(t, coerce.Clock{Hour: 7, Minute: 20}, resp.StudentStops[1].ArrivalTime)
}

func TestParseStop_Empty(t *testing.T) {
	t.Parallel()

	resp, err := ParseStop(`<Envelope><Body/></Envelope>`)
	require.NoError(t, err)
	assert.Nil(t, resp.VehicleLocation)
	assert.NotNil(t, resp.StudentStops)
	assert.Empty(t, resp.StudentStops)

	data, err := json.Marshal(resp)
	require.NoError(t, err)
	assert.JSONEq(t, `{"vehicleLocation":null,"studentStops":[]}`, string(data))
}

func TestParseStop_Unreadable(t *testing.T) {
	t.Parallel()

	_, err := ParseStop("<<")
	assert.ErrorIs(t, err, ErrSchema)
}

func TestStudentStopFromElement_Defaults(t *testing.T) {
	t.Parallel()

	doc, err := xmlquery.Parse(`<StudentStop/>`)
	require.NoError(t, err)

	s, err := StudentStopFromElement(doc.Root())
	require.NoError(t, err)
	assert.Equal(t, StudentStop{}, s)
}

func TestStudentStopFromElement_EmptyCoordinates(t *testing.T) {
	t.Parallel()

	doc, err := xmlquery.Parse(`<StudentStop Latitude="" Longitude="" BusVisibilityStartOffset=""/>`)
	require.NoError(t, err)

	s, err := StudentStopFromElement(doc.Root())
	require.NoError(t, err)
	assert.Zero(t, s.Latitude)
	assert.Zero(t, s.Longitude)
	assert.Zero(t, s.BusVisibilityStartOffset)
}

func TestStudentStopFromElement_Errors(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name  string
		doc   string
		field string
		value string
	}{
		{"malformed start time", `<StudentStop StartTime="08:xx:00"/>`, "StartTime", "08:xx:00"},
		{"malformed arrival", `<StudentStop ArrivalTime="8"/>`, "ArrivalTime", "8"},
		{"non numeric latitude", `<StudentStop Latitude="north"/>`, "Latitude", "north"},
		{"non numeric offset", `<StudentStop BusVisibilityStartOffset="soon"/>`, "BusVisibilityStartOffset", "soon"},
		{"first failure wins", `<StudentStop Latitude="x" StartTime="y"/>`, "Latitude", "x"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()
			doc, err := xmlquery.Parse(tt.doc)
			require.NoError(t, err)

			s, err := StudentStopFromElement(doc.Root())
			require.Error(t, err)
			assert.Equal(t, StudentStop{}, s, "no partially populated record")

			var pe *ParseError
			require.True(t, errors.As(err, &pe))
			assert.Equal(t, "StudentStop", pe.Record)
			assert.Equal(t, tt.field, pe.Field)
			assert.Equal(t, tt.value, pe.Value)
			assert.Contains(t, err.Error(), tt.field)
		})
	}
}

func TestParseStop_FailFast(t *testing.T) {
	t.Parallel()

	_, err := ParseStop(`<r><StudentStop StopId="ok"/><StudentStop StopId="bad" StartTime="08:xx:00"/></r>`)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrParse)
	assert.Contains(t, err.Error(), "StartTime")
}

func TestVehicleLocationFromElement(t *testing.T) {
	t.Parallel()

	t.Run("defaults", func(t *testing.T) {
		doc, err := xmlquery.Parse(`<VehicleLocation/>`)
		require.NoError(t, err)
		v, err := VehicleLocationFromElement(doc.Root())
		require.NoError(t, err)
		assert.Equal(t, VehicleLocation{}, v)
	})

	t.Run("flags", func(t *testing.T) {
		doc, err := xmlquery.Parse(`<VehicleLocation Ignition="yes" Latent="YES" DisplayOnMap="n"/>`)
		require.NoError(t, err)
		v, err := VehicleLocationFromElement(doc.Root())
		require.NoError(t, err)
		assert.True(t, v.Ignition)
		assert.True(t, v.Latent)
		assert.False(t, v.DisplayOnMap)
	})

	t.Run("log time with offset", func(t *testing.T) {
		doc, err := xmlquery.Parse(`<VehicleLocation LogTime="2024-01-15T08:30:00-05:00"/>`)
		require.NoError(t, err)
		v, err := VehicleLocationFromElement(doc.Root())
		require.NoError(t, err)
		assert.True(t, v.LogTime.Equal(time.Date(2024, 1, 15, 13, 30, 0, 0, time.UTC)))
	})

	t.Run("bad log time", func(t *testing.T) {
		doc, err := xmlquery.Parse(`<VehicleLocation LogTime="zzzz"/>`)
		require.NoError(t, err)
		_, err = VehicleLocationFromElement(doc.Root())
		var pe *ParseError
		require.True(t, errors.As(err, &pe))
		assert.Equal(t, "LogTime", pe.Field)
	})

	t.Run("bad speed", func(t *testing.T) {
		doc, err := xmlquery.Parse(`<VehicleLocation Speed="fast"/>`)
		require.NoError(t, err)
		_, err = VehicleLocationFromElement(doc.Root())
		assert.ErrorIs(t, err, ErrParse)
	})
}

func TestStudentStop_Helpers(t *testing.T) {
	t.Parallel()

	s := StudentStop{VehicleName: "Bus 42", ArrivalTime: coerce.Clock{Hour: 7, Minute: 48}, BusVisibilityStartOffset: 900}
	assert.Equal(t, "Bus 42", s.Vehicle())
	s.SubstituteVehicleName = "Bus 7"
	assert.Equal(t, "Bus 7", s.Vehicle())

	day := time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC)
	assert.Equal(t, time.Date(2024, 1, 15, 7, 33, 0, 0, time.UTC), s.VisibleFrom(day))
}

func TestParseStop_Concurrent(t *testing.T) {
	t.Parallel()

	body := fixtures.Response(fixtures.OpStops)
	done := make(chan *StopResponse, 8)
	for range 8 {
		go func() {
			resp, err := ParseStop(body)
			if err != nil {
				done <- nil
				return
			}
			done <- resp
		}()
	}
	for range 8 {
		resp := <-done
		require.NotNil(t, resp)
		assert.Len(t, resp.StudentStops, 2)
	}
}

package hcb

import (
	"time"

	"github.com/beevik/etree"
	"github.com/hcbtrack/hcb/pkg/coerce"
	"github.com/hcbtrack/hcb/pkg/xmlquery"
)

// StudentStop is one scheduled stop for a student on a time of day.
type StudentStop struct {
	StopID      string `json:"stopId"`
	TimeOfDayID string `json:"timeOfDayId"`
	VehicleID   string `json:"vehicleId"`
	ESN         string `json:"esn"`

	Name                  string `json:"name"`
	StopType              string `json:"stopType"`
	VehicleName           string `json:"vehicleName"`
	SubstituteVehicleName string `json:"substituteVehicleName"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`

	StartTime     coerce.Clock `json:"startTime"`
	ArrivalTime   coerce.Clock `json:"arrivalTime"`
	TierStartTime coerce.Clock `json:"tierStartTime"`

	// BusVisibilityStartOffset is how many seconds before ArrivalTime the
	// bus starts being shown on the map.
	BusVisibilityStartOffset int `json:"busVisibilityStartOffset"`
}

// StudentStopFromElement builds a StudentStop from a <StudentStop> element.
func StudentStopFromElement(e *etree.Element) (StudentStop, error) {
	r := newAttrReader("StudentStop", e)
	s := StudentStop{
		StopID:                   r.str("StopId", ""),
		TimeOfDayID:              r.str("TimeOfDayId", ""),
		VehicleID:                r.str("VehicleId", ""),
		ESN:                      r.str("Esn", ""),
		Name:                     r.str("Name", ""),
		StopType:                 r.str("StopType", ""),
		VehicleName:              r.str("VehicleName", ""),
		SubstituteVehicleName:    r.str("SubstituteVehicleName", ""),
		Latitude:                 r.float("Latitude", "0"),
		Longitude:                r.float("Longitude", "0"),
		StartTime:                r.clock("StartTime", "00:00:00"),
		ArrivalTime:              r.clock("ArrivalTime", "00:00:00"),
		TierStartTime:            r.clock("TierStartTime", "00:00:00"),
		BusVisibilityStartOffset: r.int("BusVisibilityStartOffset", "0"),
	}
	if r.err != nil {
		return StudentStop{}, r.err
	}
	return s, nil
}

// Vehicle returns the name of the bus serving the stop, preferring the
// substitute when one is assigned.
func (s StudentStop) Vehicle() string {
	if s.SubstituteVehicleName != "" {
		return s.SubstituteVehicleName
	}
	return s.VehicleName
}

// VisibleFrom returns when the bus becomes visible on the map for the stop's
// arrival on the calendar day of date.
func (s StudentStop) VisibleFrom(date time.Time) time.Time {
	return s.ArrivalTime.On(date).Add(-time.Duration(s.BusVisibilityStartOffset) * time.Second)
}

// VehicleLocation is the most recent GPS fix reported for a bus.
type VehicleLocation struct {
	Name           string    `json:"name"`
	Latitude       float64   `json:"latitude"`
	Longitude      float64   `json:"longitude"`
	LogTime        time.Time `json:"logTime"`
	Ignition       bool      `json:"ignition"`
	Latent         bool      `json:"latent"`
	TimeZoneOffset int       `json:"timeZoneOffset"`
	Heading        string    `json:"heading"`
	Speed          int       `json:"speed"`
	Address        string    `json:"address"`
	MessageCode    int       `json:"messageCode"`
	DisplayOnMap   bool      `json:"displayOnMap"`
}

// VehicleLocationFromElement builds a VehicleLocation from a
// <VehicleLocation> element.
func VehicleLocationFromElement(e *etree.Element) (VehicleLocation, error) {
	r := newAttrReader("VehicleLocation", e)
	v := VehicleLocation{
		Name:           r.str("Name", ""),
		Latitude:       r.float("Latitude", "0"),
		Longitude:      r.float("Longitude", "0"),
		LogTime:        r.dateTime("LogTime", ""),
		Ignition:       r.yesNo("Ignition", "N"),
		Latent:         r.yesNo("Latent", "N"),
		TimeZoneOffset: r.int("TimeZoneOffset", "0"),
		Heading:        r.str("Heading", ""),
		Speed:          r.int("Speed", "0"),
		Address:        r.str("Address", ""),
		MessageCode:    r.int("MessageCode", "0"),
		DisplayOnMap:   r.yesNo("DisplayOnMap", "N"),
	}
	if r.err != nil {
		return VehicleLocation{}, r.err
	}
	return v, nil
}

// StopResponse is the result of a stop and vehicle status lookup.
type StopResponse struct {
	// VehicleLocation is nil when the bus has no recent fix.
	VehicleLocation *VehicleLocation `json:"vehicleLocation"`
	StudentStops    []StudentStop    `json:"studentStops"`
}

// ParseStop parses the body of a stop info response.
func ParseStop(text string) (*StopResponse, error) {
	doc, err := xmlquery.Parse(text)
	if err != nil {
		return nil, &SchemaError{Op: "parse stop", Reason: "unreadable document", Err: err}
	}
	return StopFromDocument(doc)
}

// StopFromDocument assembles a StopResponse from a parsed stop info
// response. Both the VehicleLocation element and StudentStop elements are
// optional.
func StopFromDocument(doc *etree.Document) (*StopResponse, error) {
	resp := &StopResponse{StudentStops: []StudentStop{}}

	if e := xmlquery.Element(doc, "VehicleLocation"); e != nil {
		v, err := VehicleLocationFromElement(e)
		if err != nil {
			return nil, err
		}
		resp.VehicleLocation = &v
	}

	for _, e := range xmlquery.Elements(doc, "StudentStop") {
		s, err := StudentStopFromElement(e)
		if err != nil {
			return nil, err
		}
		resp.StudentStops = append(resp.StudentStops, s)
	}

	return resp, nil
}

package models

// Zone is a reference geographic region identified by (City, Province).
// LocalNameOfCity is display-only.
type Zone struct {
	ID              int64
	City            string
	LocalNameOfCity string
	Province        string
}

// ZoneKey is the parsed form of a zone key string.
type ZoneKey struct {
	City            string
	LocalNameOfCity string
	Province        string
}

// Key returns the identity part of the zone as a ZoneKey.
func (z Zone) Key() ZoneKey {
	return ZoneKey{City: z.City, LocalNameOfCity: z.LocalNameOfCity, Province: z.Province}
}

// Operation selects whether a membership is added or removed.
type Operation string

const (
	OperationAdd    Operation = "add"
	OperationRemove Operation = "remove"
)

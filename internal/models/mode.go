package models

// Mode identifies how a route segment is travelled. The vocabulary below is
// closed; any other non-empty value is a custom label entered by the user and
// is estimated like a vehicle mode.
type Mode string

const (
	ModeBus      Mode = "Bus"
	ModeQCBus    Mode = "QCBus"
	ModeTrain    Mode = "Train"
	ModeJeep     Mode = "Jeep"
	ModeEjeep    Mode = "Ejeep"
	ModeWalking  Mode = "Walking"
	ModeBicycle  Mode = "Bicycle"
	ModeTricycle Mode = "Tricycle"
)

// DefaultMode is used when a route lookup fails during prediction, so a
// single bad leg degrades to generic vehicle estimates instead of aborting
// the whole chain.
const DefaultMode = ModeQCBus

var knownModes = map[Mode]struct{}{
	ModeBus:      {},
	ModeQCBus:    {},
	ModeTrain:    {},
	ModeJeep:     {},
	ModeEjeep:    {},
	ModeWalking:  {},
	ModeBicycle:  {},
	ModeTricycle: {},
}

// IsCustom reports whether m is a user-entered label outside the closed
// vocabulary.
func (m Mode) IsCustom() bool {
	_, ok := knownModes[m]
	return !ok
}

// DurationOnly reports whether the mode has no waiting phase: the traveller
// simply starts moving, so wait is zero in every scenario and travel time is
// the pickup-to-dropoff delta.
func (m Mode) DurationOnly() bool {
	return m == ModeWalking || m == ModeBicycle
}

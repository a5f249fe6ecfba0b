package models

// StepDocument is implemented by the three role profiles so one step
// engine can drive all of them.
type StepDocument interface {
	CompletionStep() int
	SetCompletionStep(step int)
	Complete() bool
	MarkComplete()
}

// PinnedLocation is an optional map pin inside an address.
type PinnedLocation struct {
	Lat float64 `json:"lat"`
	Lon float64 `json:"lon"`
}

// Address is the step-2 address block. It is stored as a single JSON
// column and replaced wholesale whenever a patch carries an address.
type Address struct {
	VillageOrCity      string         `json:"villageOrCity"`
	District           string         `json:"district"`
	State              string         `json:"state"`
	Pincode            string         `json:"pincode"`
	FullAddress        string         `json:"fullAddress"`
	NearbyLandmark     string         `json:"nearbyLandmark,omitempty"`
	PinnedLocation     PinnedLocation `json:"pinnedLocation,omitempty"`
	IsPermanentAddress bool           `json:"isPermanentAddress,omitempty"`
}

package telegram

import "encoding/json"

// Callback payload discriminators
const (
	CallbackSpeciality      = "speciality"
	CallbackClinicOrPrivate = "clinic_or_private"
	CallbackDistrict        = "district"
)

// Branch selectors carried through the funnel
const (
	BranchClinic  = "clinic"
	BranchPrivate = "private"
)

// CallbackPayload is the structure JSON-encoded into callback_data. Data
// accumulates the funnel state as comma-joined values
// ("<branch>,<specialityID>,<districtID>" at the terminal step) and must
// stay small: callback_data is limited to 64 bytes on the wire.
type CallbackPayload struct {
	Type string `json:"type"`
	Data string `json:"data"`
}

func (p CallbackPayload) Encode() string {
	b, _ := json.Marshal(p)
	return string(b)
}

func ParseCallbackPayload(raw string) (CallbackPayload, error) {
	var p CallbackPayload
	err := json.Unmarshal([]byte(raw), &p)
	return p, err
}

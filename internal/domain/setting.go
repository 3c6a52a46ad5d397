package domain

import "time"

// SettingKeyAccessCode is the shared registration access code applicants
// must present before the biodata form unlocks.
const SettingKeyAccessCode = "access_code"

type Setting struct {
	Key       string    `json:"key"`
	Value     string    `json:"value"`
	UpdatedBy string    `json:"updated_by"`
	UpdatedAt time.Time `json:"updated_at"`
}

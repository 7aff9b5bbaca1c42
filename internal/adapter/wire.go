package adapter

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/MKhiriev/go-pass-vault/models"
)

// entryRequest is the create/update body. The envelope halves always travel
// together.
type entryRequest struct {
	Title             string `json:"title"`
	Username          string `json:"username"`
	EncryptedPassword string `json:"encrypted_password"`
	IV                string `json:"iv"`
	URL               string `json:"url"`
	Notes             string `json:"notes"`
}

func newEntryRequest(e models.VaultEntry) entryRequest {
	return entryRequest{
		Title:             e.Title,
		Username:          e.Username,
		EncryptedPassword: e.EncryptedPassword,
		IV:                e.IV,
		URL:               e.URL,
		Notes:             e.Notes,
	}
}

// entryResponse is one entry as the server returns it.
type entryResponse struct {
	ID                int64      `json:"id"`
	Title             string     `json:"title"`
	Username          string     `json:"username"`
	EncryptedPassword string     `json:"encrypted_password"`
	IV                string     `json:"iv"`
	URL               string     `json:"url"`
	Notes             string     `json:"notes"`
	CreatedAt         serverTime `json:"created_at"`
	UpdatedAt         serverTime `json:"updated_at"`
}

func (r entryResponse) toModel() models.VaultEntry {
	return models.VaultEntry{
		ID:                r.ID,
		Title:             r.Title,
		Username:          r.Username,
		URL:               r.URL,
		Notes:             r.Notes,
		EncryptedPassword: r.EncryptedPassword,
		IV:                r.IV,
		CreatedAt:         time.Time(r.CreatedAt),
		UpdatedAt:         time.Time(r.UpdatedAt),
	}
}

// serverTime accepts RFC 3339 timestamps as well as the zone-less ISO form
// the server emits for naive datetimes, which is read as UTC.
type serverTime time.Time

var serverTimeLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02 15:04:05.999999999",
}

func (t *serverTime) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err != nil {
		return err
	}
	if s == "" {
		*t = serverTime{}
		return nil
	}

	for _, layout := range serverTimeLayouts {
		if parsed, err := time.ParseInLocation(layout, s, time.UTC); err == nil {
			*t = serverTime(parsed)
			return nil
		}
	}
	return fmt.Errorf("unsupported time format %q", s)
}

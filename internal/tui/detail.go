package tui

import (
	"fmt"
	"strings"

	"github.com/MKhiriev/go-pass-vault/internal/service"
	"github.com/MKhiriev/go-pass-vault/models"
)

const maskedValue = "••••••••"

// renderDetail renders the selected entry. Without plain every sealed value
// and the password are masked. Labels of sensitive fields are starred.
func renderDetail(entry models.VaultEntry, plain *models.PlainEntry, policy service.FieldPolicy) string {
	type row struct {
		label string
		value string
	}

	var rows []row
	if plain != nil {
		rows = []row{
			{"Title", plain.Title},
			{"Username", plain.Username},
			{"URL", plain.URL},
			{"Password", plain.Secret.Reveal()},
			{"Notes", plain.Notes},
		}
	} else {
		rows = []row{
			{"Title", entry.Title},
			{"Username", maskSealed(entry.Username)},
			{"URL", maskSealed(entry.URL)},
			{"Password", maskedValue},
			{"Notes", maskSealed(entry.Notes)},
		}
	}

	if !entry.UpdatedAt.IsZero() {
		rows = append(rows, row{"Updated", entry.UpdatedAt.Local().Format("2006-01-02 15:04")})
	}

	fields := map[string]models.EntryField{
		"Username": models.FieldUsername,
		"URL":      models.FieldURL,
		"Password": models.FieldSecret,
		"Notes":    models.FieldNotes,
	}

	var b strings.Builder
	for _, r := range rows {
		label := r.label
		if f, ok := fields[label]; ok && policy.IsSensitive(f) {
			label += "*"
		}
		b.WriteString(fmt.Sprintf("%-9s │ %s\n", label, fitText(valueOrDash(r.value), 60)))
	}
	return strings.TrimRight(b.String(), "\n")
}

func maskSealed(v string) string {
	if models.IsSealed(v) {
		return maskedValue
	}
	return v
}

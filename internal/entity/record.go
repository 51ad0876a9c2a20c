package entity

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/gofrs/uuid/v5"
)

type Role string

const (
	RoleAdmin     Role = "administrador"
	RoleDriver    Role = "conductor"
	RoleCollector Role = "recolector"
)

var roleLabels = map[Role]string{
	RoleAdmin:     "Administrador",
	RoleDriver:    "Conductor",
	RoleCollector: "Recolector",
}

func (r Role) Valid() bool {
	_, ok := roleLabels[r]
	return ok
}

func (r Role) Label() string {
	return roleLabels[r]
}

// Roles in the order the selectors list them.
func Roles() []Role {
	return []Role{RoleAdmin, RoleDriver, RoleCollector}
}

func StateLabel(active bool) string {
	if active {
		return "Activo"
	}

	return "Inactivo"
}

// Record is one document of the USER collection.
type Record struct {
	ID             uuid.UUID `json:"id"`
	Names          string    `json:"names"`
	Lastnames      string    `json:"lastnames"`
	Identification int64     `json:"identification"`
	Role           Role      `json:"rol"`
	State          bool      `json:"state"`
	Phone          int64     `json:"phone"`
	Email          string    `json:"email"`
}

func (r Record) FullName() string {
	return strings.TrimSpace(r.Names + " " + r.Lastnames)
}

// DefaultRecord is what a first login provisions for an unknown email.
func DefaultRecord(email string) Record {
	return Record{
		Names:          "N/A",
		Lastnames:      "N/A",
		Identification: 0,
		Role:           RoleDriver,
		State:          false,
		Phone:          1234567,
		Email:          email,
	}
}

// NumericText keeps the raw text of a field the table editor may send
// either as a JSON string or as a JSON number.
type NumericText string

func (n *NumericText) UnmarshalJSON(b []byte) error {
	b = bytes.TrimSpace(b)
	if bytes.Equal(b, []byte("null")) {
		*n = ""
		return nil
	}

	if len(b) > 0 && b[0] == '"' {
		var s string
		if err := json.Unmarshal(b, &s); err != nil {
			return err
		}

		*n = NumericText(s)

		return nil
	}

	var num json.Number
	if err := json.Unmarshal(b, &num); err != nil {
		return err
	}

	*n = NumericText(num.String())

	return nil
}

// RecordInput is an edited row as it comes from the table editor.
type RecordInput struct {
	Names          string      `json:"names"`
	Lastnames      string      `json:"lastnames"`
	Identification NumericText `json:"identification"`
	Role           Role        `json:"rol"`
	State          bool        `json:"state"`
	Phone          NumericText `json:"phone"`
	Email          string      `json:"email"`
}

// NewRecord is the creation dialog payload.
type NewRecord struct {
	Names          string      `json:"names"`
	Lastnames      string      `json:"lastnames"`
	Identification NumericText `json:"identification"`
	Role           Role        `json:"rol"`
	State          NumericText `json:"state"`
	Password       string      `json:"password"`
	Phone          NumericText `json:"phone"`
	Email          string      `json:"email"`
}

// RecordRow is a record as the table renders it.
type RecordRow struct {
	Record
	RoleLabel  string   `json:"rolLabel"`
	StateLabel string   `json:"stateLabel"`
	RowState   RowState `json:"rowState"`
}

type RecordsView struct {
	Rows     []RecordRow `json:"rows"`
	Filtered bool        `json:"filtered"`
	CanEdit  bool        `json:"canEdit"`
}

package service

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

const ExportFilename = "tabla_de_usuarios.csv"

var exportHeader = []string{
	"Nombres",
	"Apellidos",
	"Identificación (C.C)",
	"Rol asociado",
	"Estado",
	"Teléfono",
	"Correo",
}

// ExportRecords writes the displayed rows as CSV, with labels in place of raw
// role and state values.
func (s *Service) ExportRecords(sess entity.Session, w io.Writer) error {
	ws := s.workspaces.Get(sess.ID)
	if !ws.canEdit() {
		return entity.ErrForbidden
	}

	records, _ := ws.displayed()

	cw := csv.NewWriter(w)

	err := cw.Write(exportHeader)
	if err != nil {
		return fmt.Errorf("write header: %w", err)
	}

	for _, r := range records {
		err = cw.Write([]string{
			r.Names,
			r.Lastnames,
			strconv.FormatInt(r.Identification, 10),
			r.Role.Label(),
			entity.StateLabel(r.State),
			strconv.FormatInt(r.Phone, 10),
			r.Email,
		})
		if err != nil {
			return fmt.Errorf("write row: %w", err)
		}
	}

	cw.Flush()

	return cw.Error()
}

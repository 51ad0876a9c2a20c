package entity

// RowState tracks an in-place edit or delete of one table row.
type RowState string

const (
	RowClean    RowState = "clean"
	RowPending  RowState = "pending"
	RowReverted RowState = "reverted"
)

type RowEvent uint8

const (
	RowCommit RowEvent = iota
	RowResolve
	RowReject
)

// Next returns the state after event. Committing a pending row fails with
// ErrRowPending; other illegal moves fail with ErrInvalidTransition.
func (s RowState) Next(event RowEvent) (RowState, error) {
	switch event {
	case RowCommit:
		if s == RowPending {
			return s, ErrRowPending
		}

		return RowPending, nil
	case RowResolve:
		if s != RowPending {
			return s, ErrInvalidTransition
		}

		return RowClean, nil
	case RowReject:
		if s != RowPending {
			return s, ErrInvalidTransition
		}

		return RowReverted, nil
	default:
		return s, ErrInvalidTransition
	}
}

// LinkState is the link between a session and its record.
type LinkState string

const (
	LinkUnlinked     LinkState = "unlinked"
	LinkProvisioning LinkState = "provisioning"
	LinkLinked       LinkState = "linked"
)

type Section int

const (
	SectionSchedule Section = iota
	SectionOperations
	SectionProfiles
	SectionRoles
	SectionUsers
	SectionReports
)

const DefaultSection = SectionUsers

var sectionTitles = []string{
	SectionSchedule:   "Programación",
	SectionOperations: "Gestión de operaciones",
	SectionProfiles:   "Perfiles",
	SectionRoles:      "Roles",
	SectionUsers:      "Usuarios",
	SectionReports:    "Reportes",
}

func (s Section) Valid() bool {
	return s >= SectionSchedule && s <= SectionReports
}

func (s Section) Title() string {
	if !s.Valid() {
		return ""
	}

	return sectionTitles[s]
}

// Implemented reports whether the section has content beyond its title.
func (s Section) Implemented() bool {
	return s == SectionUsers
}

type SectionView struct {
	ID          Section `json:"id"`
	Title       string  `json:"title"`
	Implemented bool    `json:"implemented"`
}

type Dashboard struct {
	FullName string        `json:"fullName"`
	Current  SectionView   `json:"current"`
	Sections []SectionView `json:"sections"`
	CanEdit  bool          `json:"canEdit"`
}

package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/gofrs/uuid/v5"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

// LoadRecords reads the whole collection into the session's workspace,
// provisioning the session's own record on first sight.
func (s *Service) LoadRecords(ctx context.Context, sess entity.Session) (entity.RecordsView, error) {
	ws := s.workspaces.Get(sess.ID)

	records, err := s.records.List(ctx)
	if err != nil {
		return entity.RecordsView{}, fmt.Errorf("list records: %w", err)
	}

	records, err = s.linkSession(ctx, ws, sess, records)
	if err != nil {
		return entity.RecordsView{}, err
	}

	ws.replace(records)

	return ws.view(), nil
}

// linkSession walks the link state machine: Unlinked -> Provisioning -> Linked.
func (s *Service) linkSession(
	ctx context.Context, ws *Workspace, sess entity.Session, records []entity.Record,
) ([]entity.Record, error) {
	if self, ok := findByEmail(records, sess.Email); ok {
		ws.linkTo(self)
		return records, nil
	}

	if !ws.beginProvisioning() {
		return records, nil
	}

	record := entity.DefaultRecord(sess.Email)

	id, err := s.records.Add(ctx, record)
	if err != nil {
		ws.unlink()

		if errors.Is(err, entity.ErrEmailTaken) {
			return s.relist(ctx, ws, sess)
		}

		return nil, fmt.Errorf("%w: %w", entity.ErrProvisionFailed, err)
	}

	record.ID = id
	ws.linkTo(record)

	s.publish(ctx, entity.RecordProvisioned, record, sess.Email)

	return append(records, record), nil
}

// relist recovers from a concurrent provisioning of the same email.
func (s *Service) relist(ctx context.Context, ws *Workspace, sess entity.Session) ([]entity.Record, error) {
	self, err := s.records.FindByEmail(ctx, sess.Email)
	if err != nil {
		return nil, fmt.Errorf("%w: find record: %w", entity.ErrProvisionFailed, err)
	}

	ws.linkTo(self)

	records, err := s.records.List(ctx)
	if err != nil {
		return nil, fmt.Errorf("list records: %w", err)
	}

	return records, nil
}

// View returns the table as last loaded, without reading the store.
func (s *Service) View(sess entity.Session) entity.RecordsView {
	return s.workspaces.Get(sess.ID).view()
}

func (s *Service) FilterRecords(sess entity.Session, f entity.Filter) entity.RecordsView {
	ws := s.workspaces.Get(sess.ID)
	ws.setFilter(f)

	return ws.view()
}

func (s *Service) ClearFilter(sess entity.Session) entity.RecordsView {
	ws := s.workspaces.Get(sess.ID)
	ws.clearFilter()

	return ws.view()
}

// CreateRecord creates the identity account through the privileged function
// and then stores the record.
func (s *Service) CreateRecord(ctx context.Context, sess entity.Session, in entity.NewRecord) (entity.Record, error) {
	ws := s.workspaces.Get(sess.ID)
	if !ws.canEdit() {
		return entity.Record{}, entity.ErrForbidden
	}

	hash := s.hasher.Hash(strings.TrimSpace(in.Password))
	email := strings.TrimSpace(in.Email)

	err := ValidateEmail(email)
	if err != nil {
		return entity.Record{}, err
	}

	record, err := recordFromInput(entity.RecordInput{
		Names:          in.Names,
		Lastnames:      in.Lastnames,
		Identification: in.Identification,
		Role:           in.Role,
		Phone:          in.Phone,
		Email:          email,
	})
	if err != nil {
		return entity.Record{}, err
	}

	record.State = strings.TrimSpace(string(in.State)) == "1"

	sess, err = s.sessions.Fresh(ctx, sess)
	if err != nil {
		return entity.Record{}, fmt.Errorf("%w: %w", entity.ErrCreateFailed, err)
	}

	resp, err := s.functions.CreateUserAccount(ctx, sess.IDToken, email, hash)
	if err != nil {
		return entity.Record{}, fmt.Errorf("%w: create account: %w", entity.ErrCreateFailed, err)
	}

	slog.DebugContext(ctx, "account created", "response", string(resp))

	id, err := s.records.Add(ctx, record)
	if err != nil {
		return entity.Record{}, fmt.Errorf("%w: add record: %w", entity.ErrCreateFailed, err)
	}

	record.ID = id
	ws.add(record)

	s.publish(ctx, entity.RecordCreated, record, sess.Email)

	return record, nil
}

// EditRecord applies an in-place table edit. A changed email renames the identity
// account first; the store write only happens after the rename succeeded.
func (s *Service) EditRecord(
	ctx context.Context, sess entity.Session, id uuid.UUID, in entity.RecordInput,
) (entity.Record, error) {
	ws := s.workspaces.Get(sess.ID)
	if !ws.canEdit() {
		return entity.Record{}, entity.ErrForbidden
	}

	current, ok := ws.find(id)
	if !ok {
		return entity.Record{}, entity.ErrNotFound
	}

	err := ws.begin(id)
	if err != nil {
		return entity.Record{}, err
	}

	edited, err := s.commitEdit(ctx, sess, current, in)
	if err != nil {
		ws.reject(id)
		return entity.Record{}, err
	}

	ws.resolveUpdate(edited)

	s.publish(ctx, entity.RecordUpdated, edited, sess.Email)

	return edited, nil
}

func (s *Service) commitEdit(
	ctx context.Context, sess entity.Session, current entity.Record, in entity.RecordInput,
) (entity.Record, error) {
	in.Email = strings.TrimSpace(in.Email)

	edited, err := recordFromInput(in)
	if err != nil {
		return entity.Record{}, err
	}

	edited.ID = current.ID
	edited.State = in.State

	if edited.Email != current.Email {
		err = ValidateEmail(edited.Email)
		if err != nil {
			return entity.Record{}, err
		}

		sess, err = s.sessions.Fresh(ctx, sess)
		if err != nil {
			return entity.Record{}, fmt.Errorf("%w: %w", entity.ErrEditFailed, err)
		}

		resp, err := s.functions.RenameUserAccount(ctx, sess.IDToken, current.Email, edited.Email)
		if err != nil {
			return entity.Record{}, fmt.Errorf("%w: rename account: %w", entity.ErrEditFailed, err)
		}

		slog.DebugContext(ctx, "account renamed", "response", string(resp))
	}

	err = s.records.Set(ctx, current.ID, edited)
	if err != nil {
		return entity.Record{}, fmt.Errorf("%w: set record: %w", entity.ErrEditFailed, err)
	}

	return edited, nil
}

// DeleteRecord removes the identity account and then the record. The session's
// own record cannot be deleted.
func (s *Service) DeleteRecord(ctx context.Context, sess entity.Session, id uuid.UUID) error {
	ws := s.workspaces.Get(sess.ID)
	if !ws.canEdit() {
		return entity.ErrForbidden
	}

	target, ok := ws.find(id)
	if !ok {
		return entity.ErrNotFound
	}

	if strings.EqualFold(target.Email, sess.Email) {
		return entity.ErrSelfDelete
	}

	err := ws.begin(id)
	if err != nil {
		return err
	}

	err = s.commitDelete(ctx, sess, target)
	if err != nil {
		ws.reject(id)
		return err
	}

	ws.resolveDelete(id)

	s.publish(ctx, entity.RecordDeleted, target, sess.Email)

	return nil
}

func (s *Service) commitDelete(ctx context.Context, sess entity.Session, target entity.Record) error {
	self := strings.EqualFold(target.Email, sess.Email)

	sess, err := s.sessions.Fresh(ctx, sess)
	if err != nil {
		return fmt.Errorf("%w: %w", entity.ErrDeleteFailed, err)
	}

	resp, err := s.functions.DeleteUserAccount(ctx, sess.IDToken, target.Email)
	if err != nil {
		return fmt.Errorf("%w: delete account: %w", entity.ErrDeleteFailed, err)
	}

	slog.DebugContext(ctx, "account deleted", "response", string(resp))

	// Unreachable: self-deletion is refused by DeleteRecord.
	if self {
		err = s.sessions.SignOut(ctx, sess.ID)
		if err != nil {
			return fmt.Errorf("%w: sign out: %w", entity.ErrDeleteFailed, err)
		}
	}

	err = s.records.Delete(ctx, target.ID)
	if err != nil {
		return fmt.Errorf("%w: delete record: %w", entity.ErrDeleteFailed, err)
	}

	return nil
}

func (s *Service) publish(ctx context.Context, typ entity.RecordEventType, record entity.Record, actor string) {
	s.events.PublishRecordEvent(ctx, entity.RecordEvent{
		Type:   typ,
		Record: record,
		Actor:  actor,
		At:     time.Now(),
	})
}

// recordFromInput validates the free-text fields shared by creation and edition.
// Phone is checked before identification.
func recordFromInput(in entity.RecordInput) (entity.Record, error) {
	phone, ok := ParseNumeric(in.Phone)
	if !ok {
		return entity.Record{}, entity.ErrPhoneInvalid
	}

	identification, ok := ParseNumeric(in.Identification)
	if !ok {
		return entity.Record{}, entity.ErrIdentificationInvalid
	}

	if !in.Role.Valid() {
		return entity.Record{}, entity.ErrRoleInvalid
	}

	return entity.Record{
		Names:          strings.TrimSpace(in.Names),
		Lastnames:      strings.TrimSpace(in.Lastnames),
		Identification: identification,
		Role:           in.Role,
		State:          in.State,
		Phone:          phone,
		Email:          in.Email,
	}, nil
}

func findByEmail(records []entity.Record, email string) (entity.Record, bool) {
	for _, r := range records {
		if strings.EqualFold(r.Email, email) {
			return r, true
		}
	}

	return entity.Record{}, false
}

// CanEdit reports whether the session's linked record is an administrator.
func (s *Service) CanEdit(sess entity.Session) bool {
	return s.workspaces.Get(sess.ID).canEdit()
}

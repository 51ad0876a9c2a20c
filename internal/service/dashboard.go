package service

import (
	"context"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
)

// Dashboard describes the shell around the sections: whose name to greet,
// which section is open and which ones exist.
func (s *Service) Dashboard(_ context.Context, sess entity.Session) entity.Dashboard {
	ws := s.workspaces.Get(sess.ID)

	fullName := ""
	if self, ok := ws.linked(); ok {
		fullName = self.FullName()
	}

	return entity.Dashboard{
		FullName: fullName,
		Current:  sectionView(ws.currentSection()),
		Sections: sectionViews(),
		CanEdit:  ws.canEdit(),
	}
}

func (s *Service) SelectSection(ctx context.Context, sess entity.Session, id entity.Section) (entity.Dashboard, error) {
	if !id.Valid() {
		return entity.Dashboard{}, entity.ErrSectionInvalid
	}

	s.workspaces.Get(sess.ID).selectSection(id)

	return s.Dashboard(ctx, sess), nil
}

func sectionView(id entity.Section) entity.SectionView {
	return entity.SectionView{
		ID:          id,
		Title:       id.Title(),
		Implemented: id.Implemented(),
	}
}

func sectionViews() []entity.SectionView {
	views := make([]entity.SectionView, 0, entity.SectionReports+1)

	for id := entity.SectionSchedule; id <= entity.SectionReports; id++ {
		views = append(views, sectionView(id))
	}

	return views
}

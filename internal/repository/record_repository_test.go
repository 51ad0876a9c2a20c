package repository_test

import (
	"context"
	"testing"

	"github.com/gofrs/uuid/v5"
	"github.com/stretchr/testify/suite"

	"github.com/smoralesusma/olsoftware-dashboard/internal/entity"
	"github.com/smoralesusma/olsoftware-dashboard/internal/repository"
)

type RecordRepositoryTestSuite struct {
	suite.Suite
	repo *repository.RecordRepository
}

func (ts *RecordRepositoryTestSuite) SetupTest() {
	ts.repo = repository.NewRecordRepository(repository.SetupTestDatabase(ts.T()))
}

func TestRecordRepositoryTestSuite(t *testing.T) { //nolint:paralleltest
	suite.Run(t, new(RecordRepositoryTestSuite))
}

func newRecord(email string) entity.Record {
	return entity.Record{
		Names:          "Ana",
		Lastnames:      "Gómez",
		Identification: 1020304050,
		Role:           entity.RoleCollector,
		State:          true,
		Phone:          3001234567,
		Email:          email,
	}
}

func (ts *RecordRepositoryTestSuite) TestAddAndList() {
	ctx := context.Background()

	id1, err := ts.repo.Add(ctx, newRecord("ana@example.com"))
	ts.Require().NoError(err)
	ts.Require().NotEqual(uuid.Nil, id1)

	id2, err := ts.repo.Add(ctx, entity.DefaultRecord("new@example.com"))
	ts.Require().NoError(err)

	records, err := ts.repo.List(ctx)
	ts.Require().NoError(err)
	ts.Require().Len(records, 2)
	ts.Require().Equal(id1, records[0].ID)
	ts.Require().Equal(id2, records[1].ID)
	ts.Require().Equal(entity.RoleDriver, records[1].Role)
	ts.Require().Equal(int64(1234567), records[1].Phone)
}

func (ts *RecordRepositoryTestSuite) TestAddDuplicateEmail() {
	ctx := context.Background()

	_, err := ts.repo.Add(ctx, newRecord("dup@example.com"))
	ts.Require().NoError(err)

	_, err = ts.repo.Add(ctx, newRecord("DUP@example.com"))
	ts.Require().ErrorIs(err, entity.ErrEmailTaken)
}

func (ts *RecordRepositoryTestSuite) TestFindByEmail() {
	ctx := context.Background()

	id, err := ts.repo.Add(ctx, newRecord("find@example.com"))
	ts.Require().NoError(err)

	ts.Run("case_insensitive", func() {
		record, err := ts.repo.FindByEmail(ctx, "Find@Example.com")
		ts.Require().NoError(err)
		ts.Require().Equal(id, record.ID)
	})

	ts.Run("missing", func() {
		_, err := ts.repo.FindByEmail(ctx, "none@example.com")
		ts.Require().ErrorIs(err, entity.ErrNotFound)
	})
}

func (ts *RecordRepositoryTestSuite) TestSet() {
	ctx := context.Background()

	id, err := ts.repo.Add(ctx, newRecord("set@example.com"))
	ts.Require().NoError(err)

	updated := newRecord("renamed@example.com")
	updated.Names = "Ana María"
	updated.State = false

	ts.Require().NoError(ts.repo.Set(ctx, id, updated))

	record, err := ts.repo.FindByEmail(ctx, "renamed@example.com")
	ts.Require().NoError(err)
	ts.Require().Equal("Ana María", record.Names)
	ts.Require().False(record.State)

	err = ts.repo.Set(ctx, uuid.Must(uuid.NewV4()), updated)
	ts.Require().ErrorIs(err, entity.ErrNotFound)
}

func (ts *RecordRepositoryTestSuite) TestDelete() {
	ctx := context.Background()

	id, err := ts.repo.Add(ctx, newRecord("delete@example.com"))
	ts.Require().NoError(err)

	ts.Require().NoError(ts.repo.Delete(ctx, id))
	ts.Require().ErrorIs(ts.repo.Delete(ctx, id), entity.ErrNotFound)

	records, err := ts.repo.List(ctx)
	ts.Require().NoError(err)
	ts.Require().Empty(records)
}

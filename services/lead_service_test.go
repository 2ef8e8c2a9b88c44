package services

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lp-maker/lpmaker/testutils"
)

func TestSubmitLead_Success(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	pageID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WithArgs("aki", "aki", 1).
		WillReturnRows(pageRows(pageID, ownerID, "aki", "", "[]"))

	mock.ExpectBegin()
	mock.ExpectExec(`INSERT INTO "leads"`).
		WithArgs(sqlmock.AnyArg(), pageID.String(), "fan@example.com", sqlmock.AnyArg()).
		WillReturnResult(sqlmock.NewResult(1, 1))
	mock.ExpectCommit()

	service := &LeadService{}
	lead, err := service.SubmitLead(db, "aki", " fan@example.com ")

	require.NoError(t, err)
	assert.Equal(t, "fan@example.com", lead.Email, "email is trimmed before storing")
	assert.Equal(t, pageID, lead.PageID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestSubmitLead_InvalidEmail(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	service := &LeadService{}

	_, err := service.SubmitLead(db, "aki", "")
	assert.ErrorIs(t, err, ErrInvalidInput)

	_, err = service.SubmitLead(db, "aki", "not-an-email")
	assert.ErrorIs(t, err, ErrInvalidInput)
}

func TestSubmitLead_PageNotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WithArgs("missing", "missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	service := &LeadService{}
	_, err := service.SubmitLead(db, "missing", "fan@example.com")

	assert.ErrorIs(t, err, ErrPageNotFound)
}

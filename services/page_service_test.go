package services

import (
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"lp-maker/lpmaker/models"
	"lp-maker/lpmaker/testutils"
)

func pageRows(id, ownerID uuid.UUID, slug, nickname, content string) *sqlmock.Rows {
	return sqlmock.NewRows([]string{"id", "slug", "kind", "owner_id", "nickname", "content", "featured_on_top"}).
		AddRow(id.String(), slug, "profile", ownerID.String(), nickname, []byte(content), false)
}

func TestGetPageBySlug_MigratesLegacyContent(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	pageID := uuid.New()
	ownerID := uuid.New()
	legacy := `[{"name":"Aki","title":"Illustrator"},{"links":[{"label":"Blog","url":"https://blog.example.com"}]}]`

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WithArgs("aki", "aki", 1).
		WillReturnRows(pageRows(pageID, ownerID, "aki", "", legacy))

	service := &PageService{}
	page, err := service.GetPageBySlug(db, "aki")

	require.NoError(t, err)
	require.Len(t, page.Blocks, 2)
	assert.Equal(t, models.HeaderBlock, page.Blocks[0].Type)
	assert.Equal(t, "Aki", page.Blocks[0].Data.GetString("name"))
	assert.Equal(t, models.LinksBlock, page.Blocks[1].Type)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestGetPageBySlug_NotFound(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WithArgs("missing", "missing", 1).
		WillReturnRows(sqlmock.NewRows([]string{"id"}))

	service := &PageService{}
	_, err := service.GetPageBySlug(db, "missing")

	assert.ErrorIs(t, err, ErrPageNotFound)
}

func TestUpdatePage_NicknameLockedForOwner(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	pageID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WithArgs("aki", 1).
		WillReturnRows(pageRows(pageID, ownerID, "aki", "aki", "[]"))

	service := &PageService{}
	_, err := service.UpdatePage(db, "aki", map[string]interface{}{
		"nickname": "new-nickname",
	}, Actor{UserID: ownerID})

	assert.ErrorIs(t, err, ErrNicknameLocked)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePage_NicknameUnchangedIsAllowed(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	pageID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WithArgs("aki", 1).
		WillReturnRows(pageRows(pageID, ownerID, "aki", "aki", "[]"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "pages"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := &PageService{}
	page, err := service.UpdatePage(db, "aki", map[string]interface{}{
		"nickname": "aki",
	}, Actor{UserID: ownerID})

	require.NoError(t, err)
	assert.Equal(t, "aki", page.Nickname)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestUpdatePage_NotOwner(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	pageID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WithArgs("aki", 1).
		WillReturnRows(pageRows(pageID, ownerID, "aki", "", "[]"))

	service := &PageService{}
	_, err := service.UpdatePage(db, "aki", map[string]interface{}{
		"blocks": []interface{}{},
	}, Actor{UserID: uuid.New()})

	assert.ErrorIs(t, err, ErrUnauthorized)
}

func TestUpdatePage_FeaturedFlagIgnoredForNonAdmin(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	pageID := uuid.New()
	ownerID := uuid.New()

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WithArgs("aki", 1).
		WillReturnRows(pageRows(pageID, ownerID, "aki", "", "[]"))

	mock.ExpectBegin()
	mock.ExpectExec(`UPDATE "pages"`).
		WillReturnResult(sqlmock.NewResult(0, 1))
	mock.ExpectCommit()

	service := &PageService{}
	page, err := service.UpdatePage(db, "aki", map[string]interface{}{
		"featured_on_top": true,
	}, Actor{UserID: ownerID})

	require.NoError(t, err)
	assert.False(t, page.FeaturedOnTop)
}

func TestListAllPages_MigratesEveryPage(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	ownerID := uuid.New()
	legacy := `[{"name":"Aki"}]`
	rows := pageRows(uuid.New(), ownerID, "aki", "", legacy)
	rows.AddRow(uuid.New().String(), "biz", "business", ownerID.String(), "", []byte("[]"), true)

	mock.ExpectQuery(`SELECT \* FROM "pages"`).
		WillReturnRows(rows)

	service := &PageService{}
	pages, err := service.ListAllPages(db)

	require.NoError(t, err)
	require.Len(t, pages, 2)
	require.Len(t, pages[0].Blocks, 1)
	assert.Equal(t, models.HeaderBlock, pages[0].Blocks[0].Type)
	// Empty stored content still yields the default seed.
	assert.Len(t, pages[1].Blocks, 3)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestCreatePage_FromTemplate(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`INSERT INTO "pages"`).
		WillReturnRows(sqlmock.NewRows([]string{"featured_on_top"}).AddRow(false))
	mock.ExpectCommit()

	service := &PageService{}
	page, err := service.CreatePage(db, map[string]interface{}{
		"template": "simple-profile",
	}, Actor{UserID: uuid.New()})

	require.NoError(t, err)
	assert.NotEmpty(t, page.Slug)
	assert.NotEmpty(t, page.Blocks)
	assert.NotEmpty(t, page.Content)
	for _, b := range page.Blocks {
		assert.NotEmpty(t, b.ID)
	}
}

func TestCreatePage_UnknownTemplate(t *testing.T) {
	db, _, close := testutils.SetupMockDB()
	defer close()

	service := &PageService{}
	_, err := service.CreatePage(db, map[string]interface{}{
		"template": "does-not-exist",
	}, Actor{UserID: uuid.New()})

	assert.ErrorIs(t, err, ErrNotFound)
}

func TestCreatePage_NicknameTaken(t *testing.T) {
	db, mock, close := testutils.SetupMockDB()
	defer close()

	mock.ExpectBegin()
	mock.ExpectQuery(`SELECT count\(\*\) FROM "pages"`).
		WithArgs("aki").
		WillReturnRows(sqlmock.NewRows([]string{"count"}).AddRow(1))
	mock.ExpectRollback()

	service := &PageService{}
	_, err := service.CreatePage(db, map[string]interface{}{
		"nickname": "aki",
	}, Actor{UserID: uuid.New()})

	assert.ErrorIs(t, err, ErrNicknameTaken)
	assert.NoError(t, mock.ExpectationsWereMet())
}

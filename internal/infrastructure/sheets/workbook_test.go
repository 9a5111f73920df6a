package sheets

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T) string {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()

	_, err := f.NewSheet(TableProfiles)
	require.NoError(t, err)

	require.NoError(t, f.SetSheetRow(TableProfiles, "A1", &[]any{"id", "name", "order", ""}))
	require.NoError(t, f.SetSheetRow(TableProfiles, "A2", &[]any{"p1", "Budi Santoso", 3}))
	require.NoError(t, f.SetSheetRow(TableProfiles, "A3", &[]any{"", "", ""}))
	require.NoError(t, f.SetSheetRow(TableProfiles, "A4", &[]any{"p2", "Siti Rahma"}))

	path := filepath.Join(t.TempDir(), "content.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestWorkbookSourceQuery(t *testing.T) {
	src := NewWorkbookSource(writeWorkbook(t))

	rows, err := src.Query(context.Background(), TableProfiles, Filters{Category: "ignored"})
	require.NoError(t, err)
	require.Len(t, rows, 2)

	assert.Equal(t, Row{"id": "p1", "name": "Budi Santoso", "order": "3"}, rows[0])
	assert.Equal(t, Row{"id": "p2", "name": "Siti Rahma", "order": ""}, rows[1])
}

func TestWorkbookSourceMissingSheet(t *testing.T) {
	src := NewWorkbookSource(writeWorkbook(t))

	_, err := src.Query(context.Background(), TableArticles, Filters{})
	assert.ErrorIs(t, err, ErrSheetNotFound)
}

func TestWorkbookSourceMissingFile(t *testing.T) {
	src := NewWorkbookSource(filepath.Join(t.TempDir(), "nope.xlsx"))

	_, err := src.Query(context.Background(), TableArticles, Filters{})
	assert.Error(t, err)
}

func TestWorkbookSourceBooleanCells(t *testing.T) {
	f := excelize.NewFile()
	_, err := f.NewSheet(TableHeroSlides)
	require.NoError(t, err)
	require.NoError(t, f.SetSheetRow(TableHeroSlides, "A1", &[]any{"id", "active"}))
	require.NoError(t, f.SetSheetRow(TableHeroSlides, "A2", &[]any{"h1", false}))
	require.NoError(t, f.SetSheetRow(TableHeroSlides, "A3", &[]any{"h2", true}))
	require.NoError(t, f.SetSheetRow(TableHeroSlides, "A4", &[]any{"h3", "FALSE"}))
	path := filepath.Join(t.TempDir(), "slides.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	rows, err := NewWorkbookSource(path).Query(context.Background(), TableHeroSlides, Filters{})
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, "false", rows[0]["active"])
	assert.Equal(t, "true", rows[1]["active"])
	assert.Equal(t, "FALSE", rows[2]["active"])
}

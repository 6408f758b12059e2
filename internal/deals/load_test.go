package deals

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeCatalogFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.json")
	require.NoError(t, os.WriteFile(path, []byte(content), 0644))
	return path
}

func TestLoad_EmptyPathReturnsDefault(t *testing.T) {
	catalogs, err := Load("")
	require.NoError(t, err)
	assert.Equal(t, Default(), catalogs)
}

func TestLoad_File(t *testing.T) {
	path := writeCatalogFile(t, `[
		{"title": "Best Buy", "deals": [
			{"name": "Deal of the Day", "url": "https://www.bestbuy.com/site/misc/deal-of-the-day"},
			{"name": "Outlet", "url": "https://www.bestbuy.com/site/outlet"}
		]}
	]`)

	catalogs, err := Load(path)
	require.NoError(t, err)
	require.Len(t, catalogs, 1)
	assert.Equal(t, "Best Buy", catalogs[0].Title)
	assert.Equal(t, []Deal{
		{Name: "Deal of the Day", URL: "https://www.bestbuy.com/site/misc/deal-of-the-day"},
		{Name: "Outlet", URL: "https://www.bestbuy.com/site/outlet"},
	}, catalogs[0].Deals)
}

func TestLoad_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantMsg string
	}{
		{
			name:    "malformed json",
			content: `[{"title": `,
			wantMsg: "parsing catalog file",
		},
		{
			name:    "empty list",
			content: `[]`,
			wantMsg: "invalid catalog file",
		},
		{
			name:    "bad url",
			content: `[{"title": "Amazon", "deals": [{"name": "A1", "url": "nope nope"}]}]`,
			wantMsg: "invalid catalog file",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := Load(writeCatalogFile(t, tt.content))
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantMsg)
		})
	}
}

func TestLoad_MissingFile(t *testing.T) {
	_, err := Load(filepath.Join(t.TempDir(), "missing.json"))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "reading catalog file")
}

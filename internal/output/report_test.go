package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGenerateReportToPath(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.csv")
	got, err := GenerateReport(sampleResults(), "csv", path)
	require.NoError(t, err)
	assert.Equal(t, path, got)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "Scenario,Year")
}

func TestGenerateReportResolvesAlias(t *testing.T) {
	path := filepath.Join(t.TempDir(), "report.html")
	_, err := GenerateReport(sampleResults(), "html-report", path)
	require.NoError(t, err)
}

func TestGenerateReportUnknownFormat(t *testing.T) {
	_, err := GenerateReport(sampleResults(), "parquet", "")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown format")
}

func TestExtensionFor(t *testing.T) {
	assert.Equal(t, "txt", extensionFor("console"))
	assert.Equal(t, "csv", extensionFor("csv"))
	assert.Equal(t, "pdf", extensionFor("pdf"))
}

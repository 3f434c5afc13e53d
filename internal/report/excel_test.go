package report

import (
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"
)

func TestWriteXLSX(t *testing.T) {
	exp, obs, sum := fixture(0.1215, 0.1072, 0.1358, true)
	path := filepath.Join(t.TempDir(), "ab_test_results.xlsx")

	if err := WriteXLSX(path, exp, obs, sum); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	f, err := excelize.OpenFile(path)
	if err != nil {
		t.Fatalf("open written file: %v", err)
	}
	defer f.Close()

	got, err := f.GetCellValue("Results", "A1")
	if err != nil {
		t.Fatalf("read header: %v", err)
	}
	if got != "date" {
		t.Errorf("expected header 'date', got %q", got)
	}

	got, err = f.GetCellValue("Results", "A2")
	if err != nil {
		t.Fatalf("read first row: %v", err)
	}
	if got != "2023-01-01" {
		t.Errorf("expected first date '2023-01-01', got %q", got)
	}
}

package synonym

import (
	"os"
	"path/filepath"
	"reflect"
	"testing"

	"github.com/calcportal/searchd/internal/domain"
)

func testTable() *Table {
	return New(map[domain.Locale]map[string][]string{
		"en": {
			"loan":     {"mortgage", "credit"},
			"concrete": {"cement"},
		},
		"ru": {
			"кредит": {"ипотека"},
		},
	})
}

func TestExpand_Forward(t *testing.T) {
	got := testTable().Expand("en", []string{"loan"})
	want := []string{"loan", "mortgage", "credit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpand_Backward(t *testing.T) {
	// "mortgage" appears only on the right-hand side of "loan"; the reverse
	// lookup must still pull "loan" in.
	got := testTable().Expand("en", []string{"mortgage"})
	want := []string{"mortgage", "loan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpand_Deduplicates(t *testing.T) {
	got := testTable().Expand("en", []string{"loan", "mortgage", "loan"})
	want := []string{"loan", "mortgage", "credit"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpand_UnknownLocale(t *testing.T) {
	got := testTable().Expand("de", []string{"loan"})
	want := []string{"loan"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestExpand_NoMapping(t *testing.T) {
	got := New(nil).Expand("en", []string{"beam", "span"})
	want := []string{"beam", "span"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestDefault(t *testing.T) {
	tbl, err := Default()
	if err != nil {
		t.Fatalf("Default: %v", err)
	}
	got := tbl.Expand("en", []string{"loan"})
	if len(got) < 2 {
		t.Errorf("embedded table should expand \"loan\", got %v", got)
	}
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "synonyms.yaml")
	data := "en:\n  pipe: [tube]\n"
	if err := os.WriteFile(path, []byte(data), 0o644); err != nil {
		t.Fatalf("write fixture: %v", err)
	}

	tbl, err := LoadFile(path)
	if err != nil {
		t.Fatalf("LoadFile: %v", err)
	}
	got := tbl.Expand("en", []string{"tube"})
	want := []string{"tube", "pipe"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Expand = %v, want %v", got, want)
	}
}

func TestLoadFile_Missing(t *testing.T) {
	if _, err := LoadFile(filepath.Join(t.TempDir(), "absent.yaml")); err == nil {
		t.Fatal("expected error for missing file")
	}
}

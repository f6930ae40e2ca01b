package renderer

import (
	"bytes"
	"embed"
	"encoding/json"
	"flag"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"text/template"
)

//go:embed testdata/*.json
var testcasesFS embed.FS

//go:embed testdata/*.md
var testcasesGoldenFS embed.FS

var fixPartials = flag.Bool("fix-partials", false, "if true, update failing test case .md files with the received output")

func TestFixPartialsIsOff(t *testing.T) {
	if *fixPartials {
		t.Fatal("-fix-partials is enabled. This flag should only be used for updating test fixtures and must be disabled for regular tests.")
	}
}

func TestTemplatePartials(t *testing.T) {
	testCases := []struct {
		name       string
		structFile string
		goldenFile string
		dataType   any
	}{
		{
			name:       "holdings_table_title",
			structFile: "testdata/holdings_table.json",
			goldenFile: "testdata/holdings_table_title.md",
			dataType:   &HoldingsTable{},
		},
		{
			name:       "holdings_table_rows",
			structFile: "testdata/holdings_table.json",
			goldenFile: "testdata/holdings_table_rows.md",
			dataType:   &HoldingsTable{},
		},
		{
			name:       "holdings_table_errors",
			structFile: "testdata/holdings_table.json",
			goldenFile: "testdata/holdings_table_errors.md",
			dataType:   &HoldingsTable{},
		},
		{
			name:       "holdings_totals_line",
			structFile: "testdata/holdings_totals_line.json",
			goldenFile: "testdata/holdings_totals_line.md",
			dataType:   &HoldingsTotal{},
		},
		{
			name:       "holdings_totals_rejected",
			structFile: "testdata/holdings_totals.json",
			goldenFile: "testdata/holdings_totals_rejected.md",
			dataType:   &HoldingsTotals{},
		},
	}

	// --- Coverage Check ---
	set := parseTemplates(t)
	tested := make(map[string]struct{})
	for _, tc := range testCases {
		tested[tc.name+".md"] = struct{}{}
	}
	for _, partialFile := range set.partials {
		if _, ok := tested[partialFile]; !ok {
			t.Errorf("untested template partial found: %s. Please add a test case to TestTemplatePartials.", partialFile)
		}
	}

	// --- Orphan Check ---
	var structs, goldens []string
	for _, tc := range testCases {
		structs = append(structs, tc.structFile)
		goldens = append(goldens, tc.goldenFile)
	}
	checkUnused(t, "partial struct", set.partialStructs, structs)
	checkUnused(t, "partial golden", set.partialGoldens, goldens)
	checkOrphans(t, set)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			readStruct(t, tc.structFile, tc.dataType)

			templateFile := tc.name + ".md"
			templateContent, err := fs.ReadFile(templates, templateFile)
			if err != nil {
				t.Fatalf("failed to read template file %q: %v", templateFile, err)
			}
			tmpl, err := template.New(tc.name).Parse(string(templateContent))
			if err != nil {
				t.Fatalf("failed to parse template %q: %v", templateFile, err)
			}
			var rendered bytes.Buffer
			if err := tmpl.Execute(&rendered, tc.dataType); err != nil {
				t.Fatalf("failed to execute template %q: %v", templateFile, err)
			}

			checkGolden(t, tc.name, tc.goldenFile, rendered.String())
		})
	}
}

func TestReportRendering(t *testing.T) {
	testCases := []struct {
		name       string
		structFile string
		goldenFile string
		dataType   any
		renderFunc func(data any) string
	}{
		{
			name:       "holdings_table",
			structFile: "testdata/holdings_table.json",
			goldenFile: "testdata/holdings_table_assembly.md",
			dataType:   &HoldingsTable{},
			renderFunc: func(data any) string { return RenderHoldingsTable(data.(*HoldingsTable)) },
		},
		{
			name:       "holdings_totals",
			structFile: "testdata/holdings_totals.json",
			goldenFile: "testdata/holdings_totals_assembly.md",
			dataType:   &HoldingsTotals{},
			renderFunc: func(data any) string { return RenderHoldingsTotals(data.(*HoldingsTotals)) },
		},
	}

	// --- Coverage Check ---
	set := parseTemplates(t)
	tested := make(map[string]struct{})
	for _, tc := range testCases {
		// The test case name is the assembly file name without the extension.
		tested[tc.name+".md"] = struct{}{}
	}
	for _, assemblyFile := range set.assemblies {
		if _, ok := tested[assemblyFile]; !ok {
			t.Errorf("untested assembly template found: %s. Please add a test case to TestReportRendering.", assemblyFile)
		}
	}

	// --- Orphan Check ---
	var structs, goldens []string
	for _, tc := range testCases {
		structs = append(structs, tc.structFile)
		goldens = append(goldens, tc.goldenFile)
	}
	checkUnused(t, "assembly struct", set.assemblyStructs, structs)
	checkUnused(t, "assembly golden", set.assemblyGoldens, goldens)
	checkOrphans(t, set)

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			readStruct(t, tc.structFile, tc.dataType)
			checkGolden(t, tc.name, tc.goldenFile, tc.renderFunc(tc.dataType))
		})
	}
}

// readStruct unmarshals a test case struct file into data.
func readStruct(t *testing.T, structFile string, data any) {
	t.Helper()
	jsonData, err := testcasesFS.ReadFile(structFile)
	if err != nil {
		t.Fatalf("failed to read struct file %q: %v", structFile, err)
	}
	if err := json.Unmarshal(jsonData, data); err != nil {
		t.Fatalf("failed to unmarshal struct data from %q: %v", structFile, err)
	}
}

// checkGolden compares got with the golden file, or rewrites it in fix mode.
func checkGolden(t *testing.T, name, goldenFile, got string) {
	t.Helper()
	goldenData, err := fs.ReadFile(testcasesGoldenFS, goldenFile)
	if err != nil {
		// In fix mode a missing golden starts empty, so that it gets written below.
		if os.IsNotExist(err) && *fixPartials {
			goldenData = []byte{}
		} else {
			t.Fatalf("failed to read golden file %q: %v", goldenFile, err)
		}
	}
	want := string(goldenData)
	if got == want {
		return
	}
	if !*fixPartials {
		t.Errorf("output mismatch for %s:\n--- want\n+++ got\n%s", name, createDiff(want, got))
		return
	}
	if err := os.MkdirAll(filepath.Dir(goldenFile), 0755); err != nil {
		t.Fatalf("failed to create testdata directory: %v", err)
	}
	if err := os.WriteFile(goldenFile, []byte(got), 0644); err != nil {
		t.Fatalf("failed to write updated golden file %q: %v", goldenFile, err)
	}
	t.Logf("updated golden file %s", goldenFile)
}

// checkUnused reports, or removes in fix mode, the testdata files not used by any test case.
func checkUnused(t *testing.T, kind string, files, used []string) {
	t.Helper()
	usedMap := make(map[string]struct{})
	for _, u := range used {
		usedMap[u] = struct{}{}
	}
	for _, f := range files {
		if _, ok := usedMap["testdata/"+f]; ok {
			continue
		}
		path := filepath.Join("testdata", f)
		if *fixPartials {
			os.Remove(path)
			t.Logf("removed unused %s file: %s", kind, path)
		} else {
			t.Errorf("unused %s file found: %s. Please remove it or add a test case.", kind, f)
		}
	}
}

// checkOrphans reports, or removes in fix mode, the testdata files matching no template.
func checkOrphans(t *testing.T, set templateSet) {
	t.Helper()
	for _, f := range append(set.orphanStructs, set.orphanGoldens...) {
		path := filepath.Join("testdata", f)
		if *fixPartials {
			os.Remove(path)
			t.Logf("removed orphan file: %s", path)
		} else {
			t.Errorf("orphan file found: %s. It does not match any known template.", f)
		}
	}
}

func createDiff(want, got string) string {
	// A simple diff-like representation for clearer test failures.
	return fmt.Sprintf("-%s\n+%s", strings.ReplaceAll(want, "\n", "\n-"), strings.ReplaceAll(got, "\n", "\n+"))
}

// --- Coverage Helper Functions ---

// templateSet describes the discovered templates from the filesystem.
type templateSet struct {
	// assemblies are templates rendered on their own (e.g., "holdings_table.md").
	assemblies []string
	// partials are templates included by an assembly (e.g., "holdings_table_rows.md").
	partials []string

	partialGoldens  []string
	partialStructs  []string
	assemblyGoldens []string
	assemblyStructs []string

	// Files that don't match any known template
	orphanGoldens []string
	orphanStructs []string
}

// parseTemplates scans the embedded filesystem for .md files and categorizes them
// as either assembly templates or partial templates: a partial is named after its
// assembly, followed by an underscore.
func parseTemplates(t *testing.T) templateSet {
	t.Helper()

	templateFiles, err := templates.ReadDir(".")
	if err != nil {
		t.Fatalf("failed to read embedded templates: %v", err)
	}

	var names []string
	for _, file := range templateFiles {
		if file.IsDir() || !strings.HasSuffix(file.Name(), ".md") {
			continue
		}
		names = append(names, strings.TrimSuffix(file.Name(), ".md"))
	}

	var set templateSet
	partialBases := make(map[string]struct{})
	assemblyBases := make(map[string]struct{})
	for _, base1 := range names {
		isPartial := false
		for _, base2 := range names {
			if base1 != base2 && strings.HasPrefix(base1, base2+"_") {
				isPartial = true
				break
			}
		}
		if isPartial {
			set.partials = append(set.partials, base1+".md")
			partialBases[base1] = struct{}{}
		} else {
			set.assemblies = append(set.assemblies, base1+".md")
			assemblyBases[base1] = struct{}{}
		}
	}

	structFiles, _ := testcasesFS.ReadDir("testdata")
	for _, f := range structFiles {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".json") {
			continue
		}
		base := strings.TrimSuffix(f.Name(), ".json")
		if _, ok := partialBases[base]; ok {
			set.partialStructs = append(set.partialStructs, f.Name())
		} else if _, ok := assemblyBases[base]; ok {
			set.assemblyStructs = append(set.assemblyStructs, f.Name())
		} else {
			set.orphanStructs = append(set.orphanStructs, f.Name())
		}
	}

	goldenFiles, _ := testcasesGoldenFS.ReadDir("testdata")
	for _, f := range goldenFiles {
		if f.IsDir() || !strings.HasSuffix(f.Name(), ".md") {
			continue
		}
		base := strings.TrimSuffix(f.Name(), ".md")
		// Assembly golden files have a `_assembly` suffix.
		if _, ok := partialBases[base]; ok {
			set.partialGoldens = append(set.partialGoldens, f.Name())
		} else if _, ok := assemblyBases[strings.TrimSuffix(base, "_assembly")]; ok {
			set.assemblyGoldens = append(set.assemblyGoldens, f.Name())
		} else {
			set.orphanGoldens = append(set.orphanGoldens, f.Name())
		}
	}

	return set
}

package diagfmt

import (
	"bytes"
	"encoding/json"
	"testing"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

func TestSarifDocument(t *testing.T) {
	fs := source.NewFileSet()
	fileID := fs.AddVirtual("a.sg", []byte("// recieve\nlet x = 1;\n"))
	primary := source.Span{File: fileID, Start: 3, End: 10}

	bag := diag.NewBag(0)
	bag.Add(newDiag(fs, fileID, diag.SevWarning, diag.SpellMisspelling, primary, `"recieve" is misspelled; did you mean "receive"?`).
		WithFix(`replace with "receive"`, diag.FixEdit{Span: primary, NewText: "receive"}))
	bag.Add(newDiag(fs, fileID, diag.SevError, diag.LexUnknownChar, source.Span{File: fileID, Start: 11, End: 12}, "unknown"))
	bag.Add(newDiag(fs, fileID, diag.SevWarning, diag.SpellMisspelling, primary, "again"))

	var buf bytes.Buffer
	meta := SarifRunMeta{ToolVersion: "1.2.3", InvocationArgs: []string{"check", "a.sg"}, PathMode: PathModeBasename}
	if err := Sarif(&buf, bag, fs, meta); err != nil {
		t.Fatalf("Sarif() error: %v", err)
	}

	var doc struct {
		Version string `json:"version"`
		Runs    []struct {
			Tool struct {
				Driver struct {
					Name    string `json:"name"`
					Version string `json:"version"`
					Rules   []struct {
						ID string `json:"id"`
					} `json:"rules"`
				} `json:"driver"`
			} `json:"tool"`
			Invocations []struct {
				Arguments []string `json:"arguments"`
			} `json:"invocations"`
			Results []struct {
				RuleID    string `json:"ruleId"`
				Level     string `json:"level"`
				Locations []struct {
					PhysicalLocation struct {
						ArtifactLocation struct {
							URI string `json:"uri"`
						} `json:"artifactLocation"`
						Region struct {
							StartLine   uint32 `json:"startLine"`
							StartColumn uint32 `json:"startColumn"`
							ByteOffset  uint32 `json:"byteOffset"`
							ByteLength  uint32 `json:"byteLength"`
						} `json:"region"`
					} `json:"physicalLocation"`
				} `json:"locations"`
				Fixes []struct {
					Description struct {
						Text string `json:"text"`
					} `json:"description"`
				} `json:"fixes"`
			} `json:"results"`
		} `json:"runs"`
	}
	if err := json.Unmarshal(buf.Bytes(), &doc); err != nil {
		t.Fatalf("invalid SARIF: %v\n%s", err, buf.String())
	}

	if doc.Version != "2.1.0" || len(doc.Runs) != 1 {
		t.Fatalf("unexpected envelope: version=%q runs=%d", doc.Version, len(doc.Runs))
	}
	run := doc.Runs[0]
	if run.Tool.Driver.Name != "sgspell" || run.Tool.Driver.Version != "1.2.3" {
		t.Errorf("unexpected driver %+v", run.Tool.Driver)
	}
	if len(run.Tool.Driver.Rules) != 2 || run.Tool.Driver.Rules[0].ID != "LEX1001" || run.Tool.Driver.Rules[1].ID != "SPL9001" {
		t.Errorf("rules must be unique and ordered by code: %+v", run.Tool.Driver.Rules)
	}
	if len(run.Invocations) != 1 || len(run.Invocations[0].Arguments) != 2 {
		t.Errorf("unexpected invocations %+v", run.Invocations)
	}
	if len(run.Results) != 3 {
		t.Fatalf("expected 3 results, got %d", len(run.Results))
	}

	first := run.Results[0]
	if first.RuleID != "SPL9001" || first.Level != "warning" {
		t.Errorf("unexpected first result %+v", first)
	}
	loc := first.Locations[0].PhysicalLocation
	if loc.ArtifactLocation.URI != "a.sg" {
		t.Errorf("unexpected uri %q", loc.ArtifactLocation.URI)
	}
	if loc.Region.StartLine != 1 || loc.Region.StartColumn != 4 || loc.Region.ByteOffset != 3 || loc.Region.ByteLength != 7 {
		t.Errorf("unexpected region %+v", loc.Region)
	}
	if len(first.Fixes) != 1 || first.Fixes[0].Description.Text != `replace with "receive"` {
		t.Errorf("unexpected fixes %+v", first.Fixes)
	}
	if run.Results[1].Level != "error" {
		t.Errorf("expected error level, got %q", run.Results[1].Level)
	}
}

package diagfmt

import (
	"encoding/json"
	"io"
	"sort"

	"sgspell/internal/diag"
	"sgspell/internal/source"
)

const (
	sarifSchema  = "https://json.schemastore.org/sarif-2.1.0.json"
	sarifVersion = "2.1.0"
)

type sarifLog struct {
	Schema  string     `json:"$schema"`
	Version string     `json:"version"`
	Runs    []sarifRun `json:"runs"`
}

type sarifRun struct {
	Tool        sarifTool         `json:"tool"`
	Invocations []sarifInvocation `json:"invocations,omitempty"`
	Results     []sarifResult     `json:"results"`
}

type sarifTool struct {
	Driver sarifDriver `json:"driver"`
}

type sarifDriver struct {
	Name           string      `json:"name"`
	Version        string      `json:"version,omitempty"`
	InformationURI string      `json:"informationUri,omitempty"`
	Rules          []sarifRule `json:"rules"`
}

type sarifRule struct {
	ID               string          `json:"id"`
	Name             string          `json:"name"`
	ShortDescription sarifText       `json:"shortDescription"`
	Properties       sarifProperties `json:"properties"`
}

type sarifProperties struct {
	Category string `json:"category"`
}

type sarifText struct {
	Text string `json:"text"`
}

type sarifInvocation struct {
	Arguments           []string `json:"arguments,omitempty"`
	ExecutionSuccessful bool     `json:"executionSuccessful"`
}

type sarifResult struct {
	RuleID    string          `json:"ruleId"`
	Level     string          `json:"level"`
	Message   sarifText       `json:"message"`
	Locations []sarifLocation `json:"locations"`
	Fixes     []sarifFix      `json:"fixes,omitempty"`
}

type sarifLocation struct {
	PhysicalLocation sarifPhysicalLocation `json:"physicalLocation"`
}

type sarifPhysicalLocation struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Region           *sarifRegion          `json:"region,omitempty"`
}

type sarifArtifactLocation struct {
	URI string `json:"uri"`
}

type sarifRegion struct {
	StartLine   uint32 `json:"startLine,omitempty"`
	StartColumn uint32 `json:"startColumn,omitempty"`
	EndLine     uint32 `json:"endLine,omitempty"`
	EndColumn   uint32 `json:"endColumn,omitempty"`
	ByteOffset  uint32 `json:"byteOffset"`
	ByteLength  uint32 `json:"byteLength"`
}

type sarifFix struct {
	Description     sarifText             `json:"description"`
	ArtifactChanges []sarifArtifactChange `json:"artifactChanges"`
}

type sarifArtifactChange struct {
	ArtifactLocation sarifArtifactLocation `json:"artifactLocation"`
	Replacements     []sarifReplacement    `json:"replacements"`
}

type sarifReplacement struct {
	DeletedRegion   sarifRegion `json:"deletedRegion"`
	InsertedContent sarifText   `json:"insertedContent"`
}

func sarifLevel(s diag.Severity) string {
	switch s {
	case diag.SevError:
		return "error"
	case diag.SevWarning:
		return "warning"
	default:
		return "note"
	}
}

func sarifRegionFor(f *source.File, d diag.Diagnostic, sp source.Span) *sarifRegion {
	r := &sarifRegion{ByteOffset: sp.Start, ByteLength: sp.Len()}
	if f != nil {
		start, end := spanPos(f, sp)
		r.StartLine, r.StartColumn = start.Line, start.Col
		r.EndLine, r.EndColumn = end.Line, end.Col
	} else if !d.Pos.IsZero() {
		r.StartLine, r.StartColumn = d.Pos.Line, d.Pos.Col
	}
	return r
}

// Sarif writes diagnostics as a SARIF 2.1.0 log with one run.
func Sarif(w io.Writer, bag *diag.Bag, fs *source.FileSet, meta SarifRunMeta) error {
	items := bag.Items()
	seen := make(map[diag.Code]struct{})
	results := make([]sarifResult, 0, len(items))

	for _, d := range items {
		seen[d.Code] = struct{}{}
		f := fileOf(d, fs)
		uri := displayPath(d.Path, fs, meta.PathMode)

		res := sarifResult{
			RuleID:  d.Code.ID(),
			Level:   sarifLevel(d.Severity),
			Message: sarifText{Text: d.Message},
			Locations: []sarifLocation{{
				PhysicalLocation: sarifPhysicalLocation{
					ArtifactLocation: sarifArtifactLocation{URI: uri},
					Region:           sarifRegionFor(f, d, d.Primary),
				},
			}},
		}
		for _, fx := range d.Fixes {
			change := sarifArtifactChange{ArtifactLocation: sarifArtifactLocation{URI: uri}}
			for _, e := range fx.Edits {
				change.Replacements = append(change.Replacements, sarifReplacement{
					DeletedRegion:   *sarifRegionFor(f, d, e.Span),
					InsertedContent: sarifText{Text: e.NewText},
				})
			}
			res.Fixes = append(res.Fixes, sarifFix{
				Description:     sarifText{Text: fx.Title},
				ArtifactChanges: []sarifArtifactChange{change},
			})
		}
		results = append(results, res)
	}

	codes := make([]diag.Code, 0, len(seen))
	for c := range seen {
		codes = append(codes, c)
	}
	sort.Slice(codes, func(i, j int) bool { return codes[i] < codes[j] })
	rules := make([]sarifRule, 0, len(codes))
	for _, c := range codes {
		rules = append(rules, sarifRule{
			ID:               c.ID(),
			Name:             c.Title(),
			ShortDescription: sarifText{Text: c.Title()},
			Properties:       sarifProperties{Category: c.Category()},
		})
	}

	name := meta.ToolName
	if name == "" {
		name = "sgspell"
	}
	doc := sarifLog{
		Schema:  sarifSchema,
		Version: sarifVersion,
		Runs: []sarifRun{{
			Tool: sarifTool{Driver: sarifDriver{
				Name:           name,
				Version:        meta.ToolVersion,
				InformationURI: meta.InformationURI,
				Rules:          rules,
			}},
			Invocations: []sarifInvocation{{Arguments: meta.InvocationArgs, ExecutionSuccessful: true}},
			Results:     results,
		}},
	}

	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(doc)
}

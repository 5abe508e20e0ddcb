package demo_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	skema "github.com/reoring/skema"
	"github.com/reoring/skema/htmldoc"
	"github.com/reoring/skema/internal/demo"
	"github.com/reoring/skema/jsonschema"
	"github.com/reoring/skema/validate"
)

func column() map[string]any {
	return map[string]any{
		"dsID":        `{"host":"https://example.org","name":"tcga/expr"}`,
		"width":       120,
		"dataType":    "geneMatrix",
		"fields":      []any{"TP53", "EGFR"},
		"fieldLabel":  map[string]any{"user": "TP53", "default": "TP53"},
		"columnLabel": map[string]any{"user": "expr", "default": "expression"},
	}
}

func TestNew_Builds(t *testing.T) {
	s, err := demo.New()
	require.NoError(t, err)
	require.Len(t, s.Top, 20)
	for _, n := range s.Top {
		require.NotEmpty(t, n.Meta().Title)
		got, ok := s.Lookup(n.Meta().Title)
		require.True(t, ok)
		require.Same(t, n, got)
	}
	// Columns is registered but documented inline.
	_, ok := s.Lookup("Columns")
	require.True(t, ok)
}

func TestColumn_Validate(t *testing.T) {
	s := demo.MustNew()
	require.True(t, validate.Valid(s.Column, column()))

	bad := column()
	bad["width"] = -1
	bad["dataType"] = "spreadsheet"
	iss, ok := skema.AsIssues(validate.Check(s.Column, bad))
	require.True(t, ok)
	require.Len(t, iss, 2)
	require.Equal(t, "/width", iss[0].Path)
	require.Equal(t, "/dataType", iss[1].Path)
}

func TestColumns_Dict(t *testing.T) {
	s := demo.MustNew()
	id := "0a1b2c3d-0000-1111-0123456789ab"
	require.True(t, validate.Valid(s.ColumnID, id))
	require.True(t, validate.Valid(s.Columns, map[string]any{id: column()}))
	require.False(t, validate.Valid(s.Columns, map[string]any{"not-a-uuid": column()}))
	// the column id has three short groups, not the four of an RFC 4122 UUID
	require.False(t, validate.Valid(s.ColumnID, "0a1b2c3d-0000-1111-aaaa-0123456789ab"))

	bad := column()
	bad["width"] = -1
	iss, ok := skema.AsIssues(validate.Check(s.Columns, map[string]any{id: bad}))
	require.True(t, ok)
	require.Len(t, iss, 1)
	require.Equal(t, "/"+id+"/width", iss[0].Path)
	require.Equal(t, skema.CodeTooSmall, iss[0].Code)
}

func dataset() map[string]any {
	return map[string]any{
		"articletitle": "t",
		"author":       "a",
		"citation":     "c",
		"cohort":       "TCGA Breast Cancer",
		"dataSubType":  "copy number (gene-level)",
		"dataproducer": "p",
		"datasubtype":  "not sure why this is here",
		"description":  "d",
		"dsID":         `{"host":"h","name":"n"}`,
		"label":        "l",
		"name":         "n",
		"probemap":     nil,
		"status":       "loaded",
		"type":         "genomicMatrix",
		"url":          "u",
	}
}

func TestDataset(t *testing.T) {
	s := demo.MustNew()
	require.True(t, validate.Valid(s.Dataset, dataset()))

	d := dataset()
	d["datasubtype"] = "copy number"
	iss, ok := skema.AsIssues(validate.Check(s.Dataset, d))
	require.True(t, ok)
	require.Len(t, iss, 1)
	require.Equal(t, "/datasubtype", iss[0].Path)
	require.Equal(t, skema.CodeInvalidValue, iss[0].Code)
}

func TestColorSpec(t *testing.T) {
	s := demo.MustNew()
	require.True(t, validate.Valid(s.ColorSpec, []any{"float-pos", 0, 1, 0, 1}))
	require.True(t, validate.Valid(s.ColorSpec, []any{"ordinal", 3}))
	require.False(t, validate.Valid(s.ColorSpec, []any{"ordinal", -3}))
	require.False(t, validate.Valid(s.ColorSpec, []any{"float", 1, 2}))
}

func TestColumn_Wire(t *testing.T) {
	s := demo.MustNew()
	w, err := jsonschema.Project(s.Column)
	require.NoError(t, err)
	require.Equal(t, "Column", w.Title)
	require.Equal(t, "object", w.Type)
	require.Equal(t, 6, w.Properties.Len())
	width, ok := w.Properties.Get("width")
	require.True(t, ok)
	require.NotNil(t, width.Minimum)
	require.Nil(t, width.Maximum)
}

func TestDocument(t *testing.T) {
	s := demo.MustNew()
	page := htmldoc.New().Document(s.Top)
	for _, n := range s.Top {
		id := `id="` + htmldoc.Anchor(n.Meta().Title) + `"`
		require.Equal(t, 1, strings.Count(page, id), id)
	}
	// nested, titled and not top-level: expanded once with an anchor
	require.Equal(t, 1, strings.Count(page, `id="columns"`))
	// FeatureID is top-level and used three times in Application
	require.GreaterOrEqual(t, strings.Count(page, `href="#feature-id"`), 3)
}

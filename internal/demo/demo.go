// Package demo defines the schema set of a genomics visualization
// application. It is used by the CLI and as an end-to-end fixture.
package demo

import (
	skema "github.com/reoring/skema"
	"github.com/reoring/skema/dsl"
)

// Set is the built demo schema set.
type Set struct {
	Registry *skema.Registry
	// Top lists the schemas a page documents, in page order.
	Top []skema.Node

	DsID, ColumnID, Column, Columns  skema.Node
	Dataset, FeatureName, Feature    skema.Node
	FeatureID, SampleID, ColorSpec   skema.Node
	HeatmapData, Gene, Probe         skema.Node
	GeneOrProbe, ProbeData           skema.Node
	MutationData, VizSettings, Chrom skema.Node
	Application, Foo, Bar            skema.Node
}

func orNull(n skema.Node) skema.Node { return dsl.Or(n, dsl.Null()) }

func label() skema.Node {
	return dsl.Object(dsl.Field("user", dsl.String()), dsl.Field("default", dsl.String()))
}

// New builds the demo set against a fresh registry.
func New() (*Set, error) {
	b := dsl.NewBuilder()
	s := &Set{}

	s.DsID = b.Named("dsID", "JSON encoded host and dataset id",
		dsl.Pattern(`{"host":".*","name":".*"}`))

	s.ColumnID = b.Named("ColumnID", "UUID for identifying columns",
		dsl.Pattern(`[0-9a-z]{8}-[0-9a-z]{4}-[0-9a-z]{4}-[0-9a-z]{12}`))

	s.Column = b.Named("Column", "A column for display", dsl.Object(
		dsl.Field("dsID", s.DsID),
		dsl.Field("width", dsl.AtLeast(0)),
		dsl.Field("dataType", dsl.Enum(
			"mutationVector",
			"geneMatrix",
			"probeMatrix",
			"geneProbeMatrix",
			"clinicalMatrix",
		)),
		dsl.Field("fields", dsl.List(dsl.String())),
		dsl.Field("fieldLabel", label()),
		dsl.Field("columnLabel", label()),
	))

	s.Columns = b.Named("Columns", "A set of columns", map[string]any{
		b.Key(s.ColumnID): s.Column,
	})

	dataSubType := dsl.Enum(
		"copy number (gene-level)",
		"somatic non-silent mutation (gene-level)",
		"gene expression",
		"phenotype",
		"somatic mutation (SNPs and small INDELs)",
		"miRNA expression RNAseq",
		"DNA methylation",
		"somatic mutation",
		"miRNA expression",
		"exon expression RNAseq",
		"copy number",
		"gene expression RNAseq",
		"PARADIGM pathway activity",
		"protein expression RPPA",
		"gene expression array",
		"somatic mutation (SNP and small INDELs)",
		"gene expression Array",
	)

	s.Dataset = b.Named("Dataset", "Dataset metadata", map[string]any{
		"articletitle": dsl.String(),
		"author":       dsl.String(),
		"citation":     dsl.String(),
		"cohort":       dsl.String(),
		"dataSubType":  dataSubType,
		"dataproducer": dsl.String(),
		"datasubtype":  dsl.Literal("not sure why this is here"),
		"description":  dsl.String(),
		"dsID":         s.DsID,
		"label":        dsl.String(),
		"name":         dsl.String(),
		"probemap":     orNull(dsl.String()),
		"status":       dsl.Enum("loading", "loaded", "error"),
		"type": dsl.Enum(
			"genomicMatrix",
			"genomicSegment",
			"probeMap",
			"clinicalMatrix",
			"genePredExt",
			"mutationVector",
		),
		"url": dsl.String(),
	})

	s.FeatureName = b.Named("FeatureName", "Name of a feature. Should be unique in the dataset.", dsl.String())

	s.Feature = b.Named("Feature", "Phenotype metadata", map[string]any{
		b.Key(s.FeatureName): map[string]any{
			"field_id":   dsl.Number(),
			"id":         dsl.Number(),
			"longtitle":  dsl.String(),
			"name":       dsl.String(),
			"priority":   dsl.AtLeast(0),
			"shorttitle": dsl.String(),
			"valuetype":  dsl.Enum("category", "float"),
			"visibility": b.Or("off", "on", dsl.Null()),
		},
	})

	s.FeatureID = b.Named("FeatureID", "Primary key for a feature", map[string]any{
		"dsID": s.DsID,
		"name": s.FeatureName,
	})

	s.SampleID = b.Named("SampleID", "A sample id. Must be unique within a cohort", dsl.String())

	bounds := func(kind string) skema.Node {
		return b.Tuple(kind,
			b.Role("low", dsl.Number()), b.Role("high", dsl.Number()),
			b.Role("min", dsl.Number()), b.Role("max", dsl.Number()))
	}
	numbers := func(kind string, n int) skema.Node {
		items := []any{kind}
		for range n {
			items = append(items, dsl.Number())
		}
		return b.Lift(items)
	}
	s.ColorSpec = b.Named("ColorSpec", "A color scale variant.", b.Or(
		bounds("float-pos"),
		bounds("float-neg"),
		numbers("float", 5),
		numbers("float-thresh-pos", 5),
		numbers("float-thresh-neg", 5),
		numbers("float-thresh", 7),
		b.Tuple("ordinal", dsl.AtLeast(0)),
	))

	s.HeatmapData = b.Named("HeatmapData", "Matrix of values for heatmap display, ordered by field and sample.",
		b.List(b.Role("field", b.List(b.Role("sample", dsl.Number())))))

	s.Gene = b.Named("Gene", "A gene name", dsl.String())
	s.Probe = b.Named("Probe", "A probe name", dsl.String())
	s.GeneOrProbe = b.Named("GeneOrProbe", "A gene or probe name", dsl.Or(s.Gene, s.Probe))

	s.ProbeData = b.Named("ProbeData", "Data for a probe column", b.Object(map[string]any{
		"metadata": s.Dataset,
		"req": map[string]any{
			"mean":   map[string]any{b.Key(s.GeneOrProbe): dsl.Number()},
			"probes": []any{dsl.String()},
			"values": map[string]any{
				b.Key(s.GeneOrProbe): map[string]any{b.Key(s.SampleID): dsl.Number()},
			},
			"display": s.HeatmapData,
		},
	}))

	s.MutationData = b.Named("MutationData", "Data for a mutation column", dsl.Object())

	s.VizSettings = b.Named("VizSettings", "User settings for visualization", b.Object(map[string]any{
		"max":              dsl.Number(),
		"maxStart":         orNull(dsl.Number()),
		"minStart":         orNull(dsl.Number()),
		"min":              dsl.Number(),
		"colNormalization": orNull(dsl.Boolean()),
	}))

	s.Application = b.Named("Application", "The application state", map[string]any{
		"cohort":      dsl.String(),
		"cohorts":     dsl.List(dsl.String()),
		"columnOrder": dsl.List(s.ColumnID),
		"columns":     s.Columns,
		"data":        b.Dict(b.Key(s.ColumnID), dsl.Or(s.ProbeData, s.MutationData)),
		"datasets": map[string]any{
			"datasets": b.Dict(b.Key(s.DsID), s.Dataset),
			"servers": dsl.List(b.Object(map[string]any{
				"server":   dsl.String(),
				"datasets": dsl.List(s.Dataset),
			})),
		},
		"features": map[string]any{b.Key(s.DsID): s.Feature},
		"km": b.Object(map[string]any{
			"vars": map[string]any{
				"event":   s.FeatureID,
				"patient": s.FeatureID,
				"tte":     s.FeatureID,
			},
		}),
		"samples":     dsl.List(dsl.String()),
		"samplesFrom": orNull(dsl.String()),
		"servers": map[string]any{
			"default": dsl.List(dsl.String()),
			"user":    dsl.List(dsl.String()),
		},
		"zoom": map[string]any{
			"count":  dsl.AtLeast(0),
			"height": dsl.AtLeast(0),
			"index":  dsl.AtLeast(0),
		},
		"vizSettings": s.VizSettings,
	})

	s.Chrom = b.Named("Chrom", "chrom", dsl.Pattern(`chr[0-9]+`))

	s.Foo = b.Named("foo", "foo", b.Object(map[string]any{
		"/foo/": dsl.List(dsl.Number()),
	}))
	s.Bar = b.Named("bar", "bar", []any{dsl.AtLeast(5)})

	reg, err := b.Build()
	if err != nil {
		return nil, err
	}
	s.Registry = reg
	s.Top = []skema.Node{
		s.DsID, s.Column, s.Gene, s.Probe, s.GeneOrProbe, s.Chrom,
		s.Dataset, s.Feature, s.FeatureID, s.FeatureName, s.SampleID,
		s.ColumnID, s.HeatmapData, s.ColorSpec, s.ProbeData,
		s.MutationData, s.VizSettings, s.Application, s.Foo, s.Bar,
	}
	return s, nil
}

// MustNew is New that panics on error.
func MustNew() *Set {
	s, err := New()
	if err != nil {
		panic(err)
	}
	return s
}

// Lookup returns the demo schema registered under title.
func (s *Set) Lookup(title string) (skema.Node, bool) { return s.Registry.Lookup(title) }

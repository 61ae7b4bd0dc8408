package config

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/vsinha/linebalance/pkg/domain/entities"
)

func TestParseYAML(t *testing.T) {
	data := `
basis: ct
operators:
  Front: 2
  Assembly: 3
selected_sections:
  - Front
  - Assembly
suggestions:
  bottleneck_keyword: pack
  spread_threshold: 15
`
	plan, err := Parse([]byte(data))
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, entities.BasisCT, plan.TimeBasis())
	assert.Equal(t, map[entities.SectionName]int{"Front": 2, "Assembly": 3}, plan.OperatorCounts())
	assert.Equal(t, []entities.SectionName{"Front", "Assembly"}, plan.SelectedSections())
	assert.Equal(t, "pack", plan.Suggestions.BottleneckKeyword)
	assert.Equal(t, 15.0, plan.Suggestions.SpreadThreshold)
}

func TestParseJSON(t *testing.T) {
	data := `{"basis": "smv", "operators": {"Front": 4}}`

	plan, err := Parse([]byte(data))
	if !assert.NoError(t, err) {
		return
	}

	assert.Equal(t, entities.BasisSMV, plan.TimeBasis())
	assert.Equal(t, 4, plan.Operators["Front"])
	assert.Nil(t, plan.SelectedSections())
}

func TestParseDefaultsBasis(t *testing.T) {
	plan, err := Parse([]byte(`operators: {Front: 2}`))
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, entities.BasisSMV, plan.TimeBasis())
}

func TestParseRejectsUnknownBasis(t *testing.T) {
	_, err := Parse([]byte(`basis: minutes`))
	if assert.Error(t, err) {
		assert.Contains(t, err.Error(), "invalid time basis")
	}
}

func TestParseRejectsNegativeSpreadThreshold(t *testing.T) {
	_, err := Parse([]byte("suggestions:\n  spread_threshold: -5\n"))
	assert.Error(t, err)
}

func TestParseRejectsMalformedDocument(t *testing.T) {
	_, err := Parse([]byte("operators: [not a map"))
	assert.Error(t, err)
}

func TestLoad(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()

	URL := "mem://localhost/plans/line.yaml"
	content := "basis: smv\noperators:\n  Front: 2\n"
	err := fs.Upload(ctx, URL, 0644, strings.NewReader(content))
	if !assert.NoError(t, err) {
		return
	}

	plan, err := Load(ctx, URL)
	if !assert.NoError(t, err) {
		return
	}
	assert.Equal(t, 2, plan.Operators["Front"])
}

func TestLoadMissingFile(t *testing.T) {
	_, err := Load(context.Background(), "mem://localhost/plans/absent.yaml")
	assert.Error(t, err)
}

func TestDefault(t *testing.T) {
	plan := Default()
	assert.NoError(t, plan.Validate())
	assert.Equal(t, entities.BasisSMV, plan.TimeBasis())
	assert.Empty(t, plan.OperatorCounts())
}

package csv

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/viant/afs"

	"github.com/vsinha/linebalance/pkg/domain/entities"
)

const sampleSheet = `no,section,flow,machine,process,smv,ct,part
1,Front,F1,SNLS,Join shoulder seam,40,38,Front
2,Front,F2,OL,Attach collar,30,31,Collar
3,Assembly,A1,SNLS,Side seam,20,22,Body
`

func TestLoadSectionsFromURL(t *testing.T) {
	ctx := context.Background()
	fs := afs.New()
	URL := "mem://localhost/sheets/line.csv"
	err := fs.Upload(ctx, URL, 0644, strings.NewReader(sampleSheet))
	assert.NoError(t, err)

	loader := NewLoader()
	sections, err := loader.LoadSections(ctx, URL)
	assert.NoError(t, err)

	assert.Len(t, sections, 2)
	assert.Equal(t, entities.SectionName("Front"), sections[0].Name)
	assert.Equal(t, entities.SectionName("Assembly"), sections[1].Name)
	assert.Len(t, sections[0].Processes, 2)
	assert.Len(t, sections[1].Processes, 1)

	first := sections[0].Processes[0]
	assert.Equal(t, 1, first.No)
	assert.Equal(t, "Join shoulder seam", first.Description)
	assert.Equal(t, 40.0, first.SMV)
	assert.Equal(t, 38.0, first.CT)
	assert.Equal(t, "F1", first.Flow)
	assert.Equal(t, "SNLS", first.Machine)
	assert.Equal(t, "Front", first.Part)
}

func TestLoadSectionsMissingFile(t *testing.T) {
	loader := NewLoader()
	_, err := loader.LoadSections(context.Background(), "mem://localhost/sheets/absent.csv")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "failed to open process sheet")
}

func TestParseSectionsSkipsUnusableRows(t *testing.T) {
	sheet := `no,section,flow,machine,process,smv,ct,part
1,Front,F1,SNLS,Join shoulder seam,40,38,Front
2,Front,F2,OL,Missing time,,31,Collar
3,Front,F3,OL,Non-numeric time,fast,31,Collar
4,Front,F4,OL,Zero time,0,31,Collar
5,,F5,OL,No section,25,31,Collar
6,Front,F6,OL,Short row,25
7,Front,F7,OL,,25,31,Collar
8,Front,F8,OL,Kept,25,31,Collar
`
	sections, err := NewLoader().ParseSections([]byte(sheet))
	assert.NoError(t, err)

	assert.Len(t, sections, 1)
	assert.Len(t, sections[0].Processes, 2)
	assert.Equal(t, "Join shoulder seam", sections[0].Processes[0].Description)
	assert.Equal(t, "Kept", sections[0].Processes[1].Description)
}

func TestParseSectionsCTFallbackZero(t *testing.T) {
	sheet := `no,section,flow,machine,process,smv,ct,part
1,Front,F1,SNLS,No secondary,40,,Front
2,Front,F2,OL,Negative secondary,30,-5,Collar
`
	sections, err := NewLoader().ParseSections([]byte(sheet))
	assert.NoError(t, err)

	assert.Len(t, sections, 1)
	assert.Equal(t, 0.0, sections[0].Processes[0].CT)
	assert.Equal(t, 0.0, sections[0].Processes[1].CT)
}

func TestParseSectionsCTFallbackSMV(t *testing.T) {
	sheet := `no,section,flow,machine,process,smv,ct,part
1,Front,F1,SNLS,No secondary,40,,Front
2,Front,F2,OL,Measured secondary,30,31,Collar
`
	sections, err := NewLoaderWithFallback(CTFallbackSMV).ParseSections([]byte(sheet))
	assert.NoError(t, err)

	assert.Len(t, sections, 1)
	assert.Equal(t, 40.0, sections[0].Processes[0].CT)
	assert.Equal(t, 31.0, sections[0].Processes[1].CT)
}

func TestParseSectionsMissingNoUsesRowIndex(t *testing.T) {
	sheet := `no,section,flow,machine,process,smv,ct,part
,Front,F1,SNLS,First,40,38,Front
9,Front,F2,OL,Explicit,30,31,Collar
,Front,F3,OL,Third,20,22,Body
`
	sections, err := NewLoader().ParseSections([]byte(sheet))
	assert.NoError(t, err)

	processes := sections[0].Processes
	assert.Equal(t, 1, processes[0].No)
	assert.Equal(t, 9, processes[1].No)
	assert.Equal(t, 3, processes[2].No)
}

func TestParseSectionsMergesInterleavedSections(t *testing.T) {
	sheet := `no,section,flow,machine,process,smv,ct,part
1,Front,F1,SNLS,First front,40,38,Front
2,Back,B1,SNLS,First back,30,31,Back
3,Front,F2,OL,Second front,20,22,Front
`
	sections, err := NewLoader().ParseSections([]byte(sheet))
	assert.NoError(t, err)

	assert.Len(t, sections, 2)
	assert.Equal(t, entities.SectionName("Front"), sections[0].Name)
	assert.Equal(t, entities.SectionName("Back"), sections[1].Name)
	assert.Len(t, sections[0].Processes, 2)
	assert.Equal(t, "Second front", sections[0].Processes[1].Description)
}

func TestParseSectionsHeaderMismatch(t *testing.T) {
	sheet := `id,section,flow,machine,process,smv,ct,part
1,Front,F1,SNLS,Join shoulder seam,40,38,Front
`
	_, err := NewLoader().ParseSections([]byte(sheet))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "header mismatch")
}

func TestParseSectionsHeaderCaseInsensitive(t *testing.T) {
	sheet := `No, Section ,Flow,Machine,Process,SMV,CT,Part
1,Front,F1,SNLS,Join shoulder seam,40,38,Front
`
	sections, err := NewLoader().ParseSections([]byte(sheet))
	assert.NoError(t, err)
	assert.Len(t, sections, 1)
}

func TestParseSectionsEmptySheet(t *testing.T) {
	_, err := NewLoader().ParseSections([]byte(""))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "header row")
}

func TestParseCTFallback(t *testing.T) {
	fallback, err := ParseCTFallback("smv")
	assert.NoError(t, err)
	assert.Equal(t, CTFallbackSMV, fallback)

	fallback, err = ParseCTFallback(" ZERO ")
	assert.NoError(t, err)
	assert.Equal(t, CTFallbackZero, fallback)

	_, err = ParseCTFallback("copy")
	assert.Error(t, err)
}

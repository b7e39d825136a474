package mapper

import (
	"Packlist/internal/erp"
	"Packlist/internal/models"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestToDraftGetDTO_StripsStagedFileData(t *testing.T) {
	draft := &models.Draft{
		Token: "tok-1",
		StagedContainers: []models.StagedContainer{{
			ID:    "c1",
			Files: []models.Attachment{{Name: "bl.pdf", Type: "application/pdf", Data: "JVBERi0=", Checksum: "abc"}},
		}},
		NextID: 3,
	}

	result := ToDraftGetDTO(draft, models.Totals{Items: 1})

	assert.Equal(t, "tok-1", result.Token)
	assert.NotNil(t, result.Rows)
	assert.NotNil(t, result.Products)
	assert.Equal(t, 1, result.Totals.Items)
	require.Len(t, result.StagedContainers, 1)
	require.Len(t, result.StagedContainers[0].Files, 1)
	assert.Equal(t, "bl.pdf", result.StagedContainers[0].Files[0].Name)
	assert.Equal(t, "abc", result.StagedContainers[0].Files[0].Checksum)
}

func TestToSubmitResultDTO(t *testing.T) {
	params := &erp.SubmitParams{
		Rows:   make([]models.Row, 3),
		Files:  make([]models.Attachment, 1),
		Header: models.Header{ContainerNo: "A, B"},
	}

	result := ToSubmitResultDTO(params)

	assert.True(t, result.Success)
	assert.Equal(t, 3, result.Rows)
	assert.Equal(t, 1, result.Files)
	assert.Equal(t, "A, B", result.Containers)
}

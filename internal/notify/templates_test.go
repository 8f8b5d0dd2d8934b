package notify

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRenderReceived(t *testing.T) {
	body, err := renderReceived(ReceivedEmail{
		To:          "applicant@example.com",
		FirstName:   "Abebe",
		JobTitle:    "Backend Engineer",
		ReferenceID: "APP-A1B2C3D4",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Dear <strong>Abebe</strong>")
	assert.Contains(t, body, "Backend Engineer")
	assert.Contains(t, body, "Reference ID: APP-A1B2C3D4")
	assert.Contains(t, body, "Debo Engineering")
}

func TestRenderStatusWithNotes(t *testing.T) {
	body, err := renderStatus(StatusEmail{
		To:         "applicant@example.com",
		FirstName:  "Chaltu",
		JobTitle:   "Platform Engineer",
		Status:     "Shortlisted",
		AdminNotes: "Interview next week",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Status: Shortlisted")
	assert.Contains(t, body, "Interview next week")
	assert.Contains(t, body, "Notes from our team:")
}

func TestRenderStatusWithoutNotes(t *testing.T) {
	body, err := renderStatus(StatusEmail{
		FirstName: "Chaltu",
		JobTitle:  "Platform Engineer",
		Status:    "Rejected",
	})
	require.NoError(t, err)

	assert.Contains(t, body, "Status: Rejected")
	assert.NotContains(t, body, "Notes from our team:")
}

func TestRenderEscapesMarkup(t *testing.T) {
	body, err := renderStatus(StatusEmail{
		FirstName: "<script>alert(1)</script>",
		JobTitle:  "Engineer",
		Status:    "Under Review",
	})
	require.NoError(t, err)
	assert.NotContains(t, body, "<script>")
}

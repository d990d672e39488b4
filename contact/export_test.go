package contact_test

import (
	"bytes"
	"testing"
	"time"

	"contacthub/contact"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func exportContacts() []contact.Contact {
	return []contact.Contact{
		{
			ID: "1", Name: "Alice Smith", Email: "alice@acme.com", Phone: "555-0100",
			Company: "Acme", Category: contact.CategoryWork,
			CreatedAt: time.Date(2024, 3, 14, 9, 0, 0, 0, time.UTC),
		},
		{
			ID: "2", Name: `Bob "Bobby" Jones`, Email: "bob@example.com",
			Category: contact.CategoryPersonal,
			CreatedAt: time.Date(2024, 1, 2, 9, 0, 0, 0, time.UTC),
		},
	}
}

func TestWriteCSV(t *testing.T) {
	t.Run("writes a quoted header and one row per contact", func(t *testing.T) {
		var buf bytes.Buffer
		err := contact.WriteCSV(&buf, exportContacts())

		require.NoError(t, err)
		want := `"Name","Email","Phone","Company","Category"` + "\n" +
			`"Alice Smith","alice@acme.com","555-0100","Acme","work"` + "\n" +
			`"Bob ""Bobby"" Jones","bob@example.com","","","personal"`
		assert.Equal(t, want, buf.String())
	})

	t.Run("empty set still writes the header", func(t *testing.T) {
		var buf bytes.Buffer
		err := contact.WriteCSV(&buf, nil)

		require.NoError(t, err)
		assert.Equal(t, `"Name","Email","Phone","Company","Category"`, buf.String())
	})
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	err := contact.WriteXLSX(&buf, exportContacts())
	require.NoError(t, err)

	f, err := excelize.OpenReader(bytes.NewReader(buf.Bytes()))
	require.NoError(t, err)
	defer f.Close()

	rows, err := f.GetRows("Contacts")
	require.NoError(t, err)
	require.Len(t, rows, 3)

	assert.Equal(t, []string{"Name", "Email", "Phone", "Company", "Category", "Created At"}, rows[0])
	assert.Equal(t, []string{"Alice Smith", "alice@acme.com", "555-0100", "Acme", "work", "3/14/2024"}, rows[1])
	assert.Equal(t, "1/2/2024", rows[2][5], "creation date uses a human-readable format")
}

package notion

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFilter(t *testing.T) {
	t.Run("default rich_text contains", func(t *testing.T) {
		f := ParseFilter("Status=Done")
		require.NotNil(t, f)
		assert.Equal(t, "Status", f.Property)
		require.NotNil(t, f.RichText)
		assert.Equal(t, "Done", f.RichText.Contains)
		assert.Nil(t, f.Title)
		assert.Nil(t, f.Select)
		assert.Nil(t, f.Checkbox)
		assert.Nil(t, f.Number)
	})

	t.Run("title contains", func(t *testing.T) {
		f := ParseFilter("Name:title=Weekly")
		require.NotNil(t, f)
		assert.Equal(t, "Name", f.Property)
		require.NotNil(t, f.Title)
		assert.Equal(t, "Weekly", f.Title.Contains)
	})

	t.Run("select equals", func(t *testing.T) {
		f := ParseFilter("Stage:select=In Progress")
		require.NotNil(t, f)
		require.NotNil(t, f.Select)
		assert.Equal(t, "In Progress", f.Select.Equals)
	})

	t.Run("checkbox true", func(t *testing.T) {
		f := ParseFilter("Done:checkbox=true")
		require.NotNil(t, f)
		require.NotNil(t, f.Checkbox)
		assert.True(t, f.Checkbox.Equals)
	})

	t.Run("checkbox case-insensitive", func(t *testing.T) {
		f := ParseFilter("Done:checkbox=TRUE")
		require.NotNil(t, f)
		require.NotNil(t, f.Checkbox)
		assert.True(t, f.Checkbox.Equals)
	})

	t.Run("checkbox anything else is false", func(t *testing.T) {
		f := ParseFilter("Done:checkbox=yes")
		require.NotNil(t, f)
		require.NotNil(t, f.Checkbox)
		assert.False(t, f.Checkbox.Equals)
	})

	t.Run("number equals", func(t *testing.T) {
		f := ParseFilter("Price:number=42")
		require.NotNil(t, f)
		require.NotNil(t, f.Number)
		assert.Equal(t, 42.0, f.Number.Equals)
	})

	t.Run("unparseable number falls back to zero", func(t *testing.T) {
		f := ParseFilter("Price:number=abc")
		require.NotNil(t, f)
		require.NotNil(t, f.Number)
		assert.Equal(t, 0.0, f.Number.Equals)
	})

	t.Run("unknown type falls back to rich_text", func(t *testing.T) {
		f := ParseFilter("Owner:person=Ada")
		require.NotNil(t, f)
		require.NotNil(t, f.RichText)
		assert.Equal(t, "Ada", f.RichText.Contains)
		assert.Equal(t, "Owner", f.Property)
	})

	t.Run("whitespace trimmed", func(t *testing.T) {
		f := ParseFilter(" Status : select = Done ")
		require.NotNil(t, f)
		assert.Equal(t, "Status", f.Property)
		require.NotNil(t, f.Select)
		assert.Equal(t, "Done", f.Select.Equals)
	})

	t.Run("value keeps later equals signs", func(t *testing.T) {
		f := ParseFilter("Formula=a=b")
		require.NotNil(t, f)
		assert.Equal(t, "Formula", f.Property)
		require.NotNil(t, f.RichText)
		assert.Equal(t, "a=b", f.RichText.Contains)
	})

	t.Run("no equals sign yields no filter", func(t *testing.T) {
		assert.Nil(t, ParseFilter("Status"))
		assert.Nil(t, ParseFilter(""))
	})
}

package template

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validItems() []TemplateItem {
	return []TemplateItem{
		{Category: "Kitchen", Text: "Floors mopped and degreased", Weight: 2},
		{Category: "Restroom", Text: "Fixtures sanitized", Weight: 1},
	}
}

func TestNewTemplate(t *testing.T) {
	tests := []struct {
		name     string
		tplName  string
		items    []TemplateItem
		wantErr  string
	}{
		{
			name:    "valid",
			tplName: "Office Standard",
			items:   validItems(),
		},
		{
			name:    "blank name",
			tplName: "  ",
			items:   validItems(),
			wantErr: "template name is required",
		},
		{
			name:    "name too long",
			tplName: strings.Repeat("x", 201),
			items:   validItems(),
			wantErr: "exceeds maximum length",
		},
		{
			name:    "no items",
			tplName: "Office Standard",
			items:   nil,
			wantErr: "at least one item",
		},
		{
			name:    "item missing category",
			tplName: "Office Standard",
			items:   []TemplateItem{{Category: " ", Text: "Floors", Weight: 1}},
			wantErr: "item 1: template item category is required",
		},
		{
			name:    "item weight below one",
			tplName: "Office Standard",
			items:   []TemplateItem{{Category: "Kitchen", Text: "Floors", Weight: 0}},
			wantErr: "weight must be at least 1",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tpl, err := NewTemplate(tt.tplName, "", nil, tt.items)
			if tt.wantErr != "" {
				require.Error(t, err)
				assert.Contains(t, err.Error(), tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.False(t, tpl.IsArchived())
			assert.Len(t, tpl.Items(), len(tt.items))
		})
	}
}

func TestNewTemplate_NormalizesItemWhitespace(t *testing.T) {
	tpl, err := NewTemplate("Office Standard", "", nil, []TemplateItem{
		{Category: "  Kitchen ", Text: " Floors mopped ", Weight: 2},
	})
	require.NoError(t, err)

	items := tpl.Items()
	assert.Equal(t, "Kitchen", items[0].Category)
	assert.Equal(t, "Floors mopped", items[0].Text)
}

func TestTemplate_Update(t *testing.T) {
	tpl, err := NewTemplate("Office Standard", "baseline", nil, validItems())
	require.NoError(t, err)

	t.Run("replaces provided fields only", func(t *testing.T) {
		name := "Office Standard v2"
		newItems := []TemplateItem{{Category: "Lobby", Text: "Glass doors streak-free", Weight: 3}}
		require.NoError(t, tpl.Update(&name, nil, newItems))

		assert.Equal(t, name, tpl.Name())
		assert.Equal(t, "baseline", tpl.Description())
		require.Len(t, tpl.Items(), 1)
		assert.Equal(t, "Lobby", tpl.Items()[0].Category)
	})

	t.Run("nil items leaves checklist unchanged", func(t *testing.T) {
		desc := "revised"
		require.NoError(t, tpl.Update(nil, &desc, nil))
		assert.Equal(t, "revised", tpl.Description())
		assert.Len(t, tpl.Items(), 1)
	})

	t.Run("rejects empty replacement checklist", func(t *testing.T) {
		assert.Error(t, tpl.Update(nil, nil, []TemplateItem{}))
	})

	t.Run("rejects blank name", func(t *testing.T) {
		blank := "  "
		assert.Error(t, tpl.Update(&blank, nil, nil))
	})
}

func TestTemplate_ArchiveRestore(t *testing.T) {
	tpl, err := NewTemplate("Office Standard", "", nil, validItems())
	require.NoError(t, err)

	tpl.Archive()
	assert.True(t, tpl.IsArchived())

	// idempotent
	tpl.Archive()
	assert.True(t, tpl.IsArchived())

	tpl.Restore()
	assert.False(t, tpl.IsArchived())
	tpl.Restore()
	assert.False(t, tpl.IsArchived())
}

func TestTemplate_SetSID(t *testing.T) {
	tpl, err := NewTemplate("Office Standard", "", nil, validItems())
	require.NoError(t, err)

	require.NoError(t, tpl.SetSID("tpl_xK9mP2vL3nQs"))
	assert.Equal(t, "tpl_xK9mP2vL3nQs", tpl.SID())
	assert.Error(t, tpl.SetSID("tpl_other"), "SID can only be assigned once")
}

func TestTemplate_ItemsReturnsCopy(t *testing.T) {
	tpl, err := NewTemplate("Office Standard", "", nil, validItems())
	require.NoError(t, err)

	items := tpl.Items()
	items[0].Category = "Tampered"
	assert.Equal(t, "Kitchen", tpl.Items()[0].Category)
}

package template

import (
	"fmt"
	"strings"
	"time"
)

// TemplateItem is one reusable checklist line. Items are copied into
// inspections at instantiation time, never referenced, so editing or archiving
// a template leaves existing inspections untouched.
type TemplateItem struct {
	Category string
	Text     string
	Weight   int
}

func (ti TemplateItem) validate() error {
	if strings.TrimSpace(ti.Category) == "" {
		return fmt.Errorf("template item category is required")
	}
	if strings.TrimSpace(ti.Text) == "" {
		return fmt.Errorf("template item text is required")
	}
	if ti.Weight < 1 {
		return fmt.Errorf("template item weight must be at least 1, got %d", ti.Weight)
	}
	return nil
}

// Template is a reusable checklist. Archiving is a soft-delete.
type Template struct {
	id          uint
	sid         string
	name        string
	description string
	contractID  *uint
	items       []TemplateItem
	archived    bool
	createdAt   time.Time
	updatedAt   time.Time
}

func NewTemplate(name, description string, contractID *uint, items []TemplateItem) (*Template, error) {
	name = strings.TrimSpace(name)

	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if len(name) > 200 {
		return nil, fmt.Errorf("template name exceeds maximum length of 200 characters")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("template must have at least one item")
	}
	for idx, item := range items {
		if err := item.validate(); err != nil {
			return nil, fmt.Errorf("item %d: %w", idx+1, err)
		}
	}

	now := time.Now()
	return &Template{
		name:        name,
		description: description,
		contractID:  contractID,
		items:       normalizeItems(items),
		createdAt:   now,
		updatedAt:   now,
	}, nil
}

func ReconstructTemplate(
	id uint,
	sid string,
	name string,
	description string,
	contractID *uint,
	items []TemplateItem,
	archived bool,
	createdAt, updatedAt time.Time,
) (*Template, error) {
	if id == 0 {
		return nil, fmt.Errorf("template ID cannot be zero")
	}
	if name == "" {
		return nil, fmt.Errorf("template name is required")
	}
	if len(items) == 0 {
		return nil, fmt.Errorf("template must have at least one item")
	}

	return &Template{
		id:          id,
		sid:         sid,
		name:        name,
		description: description,
		contractID:  contractID,
		items:       items,
		archived:    archived,
		createdAt:   createdAt,
		updatedAt:   updatedAt,
	}, nil
}

func (t *Template) ID() uint {
	return t.id
}

// SID is the externally visible prefixed short ID, e.g. "tpl_xK9mP2vL3nQs".
func (t *Template) SID() string {
	return t.sid
}

func (t *Template) Name() string {
	return t.name
}

func (t *Template) Description() string {
	return t.description
}

func (t *Template) ContractID() *uint {
	return t.contractID
}

func (t *Template) Items() []TemplateItem {
	itemsCopy := make([]TemplateItem, len(t.items))
	copy(itemsCopy, t.items)
	return itemsCopy
}

func (t *Template) IsArchived() bool {
	return t.archived
}

func (t *Template) CreatedAt() time.Time {
	return t.createdAt
}

func (t *Template) UpdatedAt() time.Time {
	return t.updatedAt
}

func (t *Template) SetID(id uint) error {
	if t.id != 0 {
		return fmt.Errorf("template ID is already set")
	}
	if id == 0 {
		return fmt.Errorf("template ID cannot be zero")
	}
	t.id = id
	return nil
}

func (t *Template) SetSID(sid string) error {
	if t.sid != "" {
		return fmt.Errorf("template SID is already set")
	}
	if sid == "" {
		return fmt.Errorf("template SID cannot be empty")
	}
	t.sid = sid
	return nil
}

// Update replaces name/description/items. Previously instantiated inspections
// are unaffected: they own copies of the items.
func (t *Template) Update(name, description *string, items []TemplateItem) error {
	if name != nil {
		trimmed := strings.TrimSpace(*name)
		if trimmed == "" {
			return fmt.Errorf("template name cannot be empty")
		}
		if len(trimmed) > 200 {
			return fmt.Errorf("template name exceeds maximum length of 200 characters")
		}
		t.name = trimmed
	}

	if description != nil {
		t.description = *description
	}

	if items != nil {
		if len(items) == 0 {
			return fmt.Errorf("template must have at least one item")
		}
		for idx, item := range items {
			if err := item.validate(); err != nil {
				return fmt.Errorf("item %d: %w", idx+1, err)
			}
		}
		t.items = normalizeItems(items)
	}

	t.updatedAt = time.Now()
	return nil
}

// Archive soft-deletes the template. Archiving an already archived template is
// a no-op rather than an error.
func (t *Template) Archive() {
	if t.archived {
		return
	}
	t.archived = true
	t.updatedAt = time.Now()
}

// Restore reverses archiving. Idempotent like Archive.
func (t *Template) Restore() {
	if !t.archived {
		return
	}
	t.archived = false
	t.updatedAt = time.Now()
}

func normalizeItems(items []TemplateItem) []TemplateItem {
	normalized := make([]TemplateItem, len(items))
	for idx, item := range items {
		normalized[idx] = TemplateItem{
			Category: strings.TrimSpace(item.Category),
			Text:     strings.TrimSpace(item.Text),
			Weight:   item.Weight,
		}
	}
	return normalized
}

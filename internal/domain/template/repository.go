package template

import "context"

type Repository interface {
	Save(ctx context.Context, tpl *Template) error
	Update(ctx context.Context, tpl *Template) error
	GetByID(ctx context.Context, templateID uint) (*Template, error)
	GetBySID(ctx context.Context, sid string) (*Template, error)
	GetByContractID(ctx context.Context, contractID uint) ([]*Template, error)
	List(ctx context.Context, filter Filter) ([]*Template, int64, error)
}

// Filter narrows template listings. Archived templates are excluded unless
// IncludeArchived is set.
type Filter struct {
	Name            string
	ContractID      *uint
	IncludeArchived bool
	Page            int
	PageSize        int
}

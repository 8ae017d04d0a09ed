package usecases

import "context"

// FacilityInfo is the subset of facility data the inspection views need.
type FacilityInfo struct {
	ID      uint
	Name    string
	Address string
}

// FacilityDirectory resolves facility references. Implemented outside this
// module; inspections only store the ID.
type FacilityDirectory interface {
	GetFacility(ctx context.Context, facilityID uint) (*FacilityInfo, error)
}

// UserInfo is the subset of user data the inspection views need.
type UserInfo struct {
	ID   uint
	Name string
}

type UserDirectory interface {
	GetUser(ctx context.Context, userID uint) (*UserInfo, error)
}

// GuidanceProvider returns area-type checklist hints keyed by category.
// It is strictly best-effort: callers treat an error or a missing category
// as "no guidance" and never fail the surrounding operation on it.
type GuidanceProvider interface {
	ForCategories(ctx context.Context, categories []string) (map[string][]string, error)
}

package usecases

import (
	"context"

	"luster/internal/domain/inspection"
	"luster/internal/domain/template"
	"luster/internal/shared/logger"
)

type mockInspectionRepository struct {
	SaveFunc        func(ctx context.Context, insp *inspection.Inspection) error
	UpdateFunc      func(ctx context.Context, insp *inspection.Inspection) error
	DeleteFunc      func(ctx context.Context, inspectionID uint) error
	GetByIDFunc     func(ctx context.Context, inspectionID uint) (*inspection.Inspection, error)
	GetByNumberFunc func(ctx context.Context, number string) (*inspection.Inspection, error)
	ListFunc        func(ctx context.Context, filter inspection.Filter) ([]*inspection.Inspection, int64, error)
}

func (m *mockInspectionRepository) Save(ctx context.Context, insp *inspection.Inspection) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, insp)
	}
	return nil
}

func (m *mockInspectionRepository) Update(ctx context.Context, insp *inspection.Inspection) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, insp)
	}
	return nil
}

func (m *mockInspectionRepository) Delete(ctx context.Context, inspectionID uint) error {
	if m.DeleteFunc != nil {
		return m.DeleteFunc(ctx, inspectionID)
	}
	return nil
}

func (m *mockInspectionRepository) GetByID(ctx context.Context, inspectionID uint) (*inspection.Inspection, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, inspectionID)
	}
	return nil, nil
}

func (m *mockInspectionRepository) GetByNumber(ctx context.Context, number string) (*inspection.Inspection, error) {
	if m.GetByNumberFunc != nil {
		return m.GetByNumberFunc(ctx, number)
	}
	return nil, nil
}

func (m *mockInspectionRepository) List(ctx context.Context, filter inspection.Filter) ([]*inspection.Inspection, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockCorrectiveActionRepository struct {
	SaveFunc                 func(ctx context.Context, action *inspection.CorrectiveAction) error
	UpdateFunc               func(ctx context.Context, action *inspection.CorrectiveAction) error
	GetByIDFunc              func(ctx context.Context, actionID uint) (*inspection.CorrectiveAction, error)
	GetByInspectionIDFunc    func(ctx context.Context, inspectionID uint) ([]*inspection.CorrectiveAction, error)
	DeleteByInspectionIDFunc func(ctx context.Context, inspectionID uint) error
}

func (m *mockCorrectiveActionRepository) Save(ctx context.Context, action *inspection.CorrectiveAction) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, action)
	}
	return nil
}

func (m *mockCorrectiveActionRepository) Update(ctx context.Context, action *inspection.CorrectiveAction) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, action)
	}
	return nil
}

func (m *mockCorrectiveActionRepository) GetByID(ctx context.Context, actionID uint) (*inspection.CorrectiveAction, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, actionID)
	}
	return nil, nil
}

func (m *mockCorrectiveActionRepository) GetByInspectionID(ctx context.Context, inspectionID uint) ([]*inspection.CorrectiveAction, error) {
	if m.GetByInspectionIDFunc != nil {
		return m.GetByInspectionIDFunc(ctx, inspectionID)
	}
	return nil, nil
}

func (m *mockCorrectiveActionRepository) DeleteByInspectionID(ctx context.Context, inspectionID uint) error {
	if m.DeleteByInspectionIDFunc != nil {
		return m.DeleteByInspectionIDFunc(ctx, inspectionID)
	}
	return nil
}

type mockSignoffRepository struct {
	SaveFunc                 func(ctx context.Context, signoff *inspection.Signoff) error
	GetByInspectionIDFunc    func(ctx context.Context, inspectionID uint) ([]*inspection.Signoff, error)
	DeleteByInspectionIDFunc func(ctx context.Context, inspectionID uint) error
}

func (m *mockSignoffRepository) Save(ctx context.Context, signoff *inspection.Signoff) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, signoff)
	}
	return nil
}

func (m *mockSignoffRepository) GetByInspectionID(ctx context.Context, inspectionID uint) ([]*inspection.Signoff, error) {
	if m.GetByInspectionIDFunc != nil {
		return m.GetByInspectionIDFunc(ctx, inspectionID)
	}
	return nil, nil
}

func (m *mockSignoffRepository) DeleteByInspectionID(ctx context.Context, inspectionID uint) error {
	if m.DeleteByInspectionIDFunc != nil {
		return m.DeleteByInspectionIDFunc(ctx, inspectionID)
	}
	return nil
}

type mockActivityRepository struct {
	AppendFunc               func(ctx context.Context, activity *inspection.Activity) error
	GetByInspectionIDFunc    func(ctx context.Context, inspectionID uint) ([]*inspection.Activity, error)
	DeleteByInspectionIDFunc func(ctx context.Context, inspectionID uint) error

	appended []*inspection.Activity
}

func (m *mockActivityRepository) Append(ctx context.Context, activity *inspection.Activity) error {
	m.appended = append(m.appended, activity)
	if m.AppendFunc != nil {
		return m.AppendFunc(ctx, activity)
	}
	return nil
}

func (m *mockActivityRepository) GetByInspectionID(ctx context.Context, inspectionID uint) ([]*inspection.Activity, error) {
	if m.GetByInspectionIDFunc != nil {
		return m.GetByInspectionIDFunc(ctx, inspectionID)
	}
	return nil, nil
}

func (m *mockActivityRepository) DeleteByInspectionID(ctx context.Context, inspectionID uint) error {
	if m.DeleteByInspectionIDFunc != nil {
		return m.DeleteByInspectionIDFunc(ctx, inspectionID)
	}
	return nil
}

type mockTemplateRepository struct {
	SaveFunc            func(ctx context.Context, tpl *template.Template) error
	UpdateFunc          func(ctx context.Context, tpl *template.Template) error
	GetByIDFunc         func(ctx context.Context, templateID uint) (*template.Template, error)
	GetBySIDFunc        func(ctx context.Context, sid string) (*template.Template, error)
	GetByContractIDFunc func(ctx context.Context, contractID uint) ([]*template.Template, error)
	ListFunc            func(ctx context.Context, filter template.Filter) ([]*template.Template, int64, error)
}

func (m *mockTemplateRepository) Save(ctx context.Context, tpl *template.Template) error {
	if m.SaveFunc != nil {
		return m.SaveFunc(ctx, tpl)
	}
	return nil
}

func (m *mockTemplateRepository) Update(ctx context.Context, tpl *template.Template) error {
	if m.UpdateFunc != nil {
		return m.UpdateFunc(ctx, tpl)
	}
	return nil
}

func (m *mockTemplateRepository) GetByID(ctx context.Context, templateID uint) (*template.Template, error) {
	if m.GetByIDFunc != nil {
		return m.GetByIDFunc(ctx, templateID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) GetBySID(ctx context.Context, sid string) (*template.Template, error) {
	if m.GetBySIDFunc != nil {
		return m.GetBySIDFunc(ctx, sid)
	}
	return nil, nil
}

func (m *mockTemplateRepository) GetByContractID(ctx context.Context, contractID uint) ([]*template.Template, error) {
	if m.GetByContractIDFunc != nil {
		return m.GetByContractIDFunc(ctx, contractID)
	}
	return nil, nil
}

func (m *mockTemplateRepository) List(ctx context.Context, filter template.Filter) ([]*template.Template, int64, error) {
	if m.ListFunc != nil {
		return m.ListFunc(ctx, filter)
	}
	return nil, 0, nil
}

type mockNumberGenerator struct {
	GenerateFunc func(ctx context.Context) (string, error)
}

func (m *mockNumberGenerator) Generate(ctx context.Context) (string, error) {
	if m.GenerateFunc != nil {
		return m.GenerateFunc(ctx)
	}
	return "INS-20260831-0001", nil
}

// mockTxManager runs the function directly; there is no real transaction in
// unit tests.
type mockTxManager struct {
	RunFunc func(ctx context.Context, fn func(ctx context.Context) error) error
}

func (m *mockTxManager) RunInTransaction(ctx context.Context, fn func(ctx context.Context) error) error {
	if m.RunFunc != nil {
		return m.RunFunc(ctx, fn)
	}
	return fn(ctx)
}

type mockGuidanceProvider struct {
	ForCategoriesFunc func(ctx context.Context, categories []string) (map[string][]string, error)
}

func (m *mockGuidanceProvider) ForCategories(ctx context.Context, categories []string) (map[string][]string, error) {
	if m.ForCategoriesFunc != nil {
		return m.ForCategoriesFunc(ctx, categories)
	}
	return nil, nil
}

type mockFacilityDirectory struct {
	GetFacilityFunc func(ctx context.Context, facilityID uint) (*FacilityInfo, error)
}

func (m *mockFacilityDirectory) GetFacility(ctx context.Context, facilityID uint) (*FacilityInfo, error) {
	if m.GetFacilityFunc != nil {
		return m.GetFacilityFunc(ctx, facilityID)
	}
	return nil, nil
}

type mockUserDirectory struct {
	GetUserFunc func(ctx context.Context, userID uint) (*UserInfo, error)
}

func (m *mockUserDirectory) GetUser(ctx context.Context, userID uint) (*UserInfo, error) {
	if m.GetUserFunc != nil {
		return m.GetUserFunc(ctx, userID)
	}
	return nil, nil
}

type mockLogger struct{}

func (m *mockLogger) Debug(msg string, args ...any)                   {}
func (m *mockLogger) Info(msg string, args ...any)                    {}
func (m *mockLogger) Warn(msg string, args ...any)                    {}
func (m *mockLogger) Error(msg string, args ...any)                   {}
func (m *mockLogger) Fatal(msg string, args ...any)                   {}
func (m *mockLogger) With(args ...any) logger.Interface               { return m }
func (m *mockLogger) Named(name string) logger.Interface              { return m }
func (m *mockLogger) Debugw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Infow(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Warnw(msg string, keysAndValues ...interface{})  {}
func (m *mockLogger) Errorw(msg string, keysAndValues ...interface{}) {}
func (m *mockLogger) Fatalw(msg string, keysAndValues ...interface{}) {}

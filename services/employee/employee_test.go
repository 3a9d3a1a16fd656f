package employee

import (
	"context"
	"errors"
	"testing"

	"github.com/mohamedfathy32/elnaseem-crm/database/repository/mocks"
	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.uber.org/mock/gomock"
)

var (
	manager = &models.User{ID: "mgr-1", Name: "Manager", Role: models.RoleManager}
	sales   = &models.User{ID: "sales-1", Name: "Sales", Role: models.RoleSales}
)

// fakeIdentity stubs the identity provider with function fields.
type fakeIdentity struct {
	createFn      func(ctx context.Context, email, password, displayName string) (string, error)
	setDisabledFn func(ctx context.Context, uid string, disabled bool) error
	deleteFn      func(ctx context.Context, uid string) error
	deleted       []string
}

func (f *fakeIdentity) CreateUser(ctx context.Context, email, password, displayName string) (string, error) {
	if f.createFn != nil {
		return f.createFn(ctx, email, password, displayName)
	}
	return "uid-new", nil
}

func (f *fakeIdentity) SetDisabled(ctx context.Context, uid string, disabled bool) error {
	if f.setDisabledFn != nil {
		return f.setDisabledFn(ctx, uid, disabled)
	}
	return nil
}

func (f *fakeIdentity) DeleteUser(ctx context.Context, uid string) error {
	f.deleted = append(f.deleted, uid)
	if f.deleteFn != nil {
		return f.deleteFn(ctx, uid)
	}
	return nil
}

func wantKind(t *testing.T, err error, kind utils.Kind) {
	t.Helper()
	if err == nil {
		t.Fatalf("expected %s error, got nil", kind)
	}
	if got := utils.KindOf(err); got != kind {
		t.Fatalf("expected %s error, got %s (%v)", kind, got, err)
	}
}

func TestCreate(t *testing.T) {
	ctx := context.Background()
	valid := CreateEmployeeInput{Email: "new@agency.test", Password: "secret1", Name: "New Hire", Role: "sales", Salary: 3000}

	t.Run("non-manager denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultEmployeeService(mocks.NewMockUserRepository(ctrl), &fakeIdentity{})

		_, err := svc.Create(ctx, valid, sales)
		wantKind(t, err, utils.KindPermissionDenied)
	})

	t.Run("manager role rejected for new accounts", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultEmployeeService(mocks.NewMockUserRepository(ctrl), &fakeIdentity{})

		input := valid
		input.Role = "manager"
		_, err := svc.Create(ctx, input, manager)
		wantKind(t, err, utils.KindInvalidArgument)
	})

	t.Run("short password rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultEmployeeService(mocks.NewMockUserRepository(ctrl), &fakeIdentity{})

		input := valid
		input.Password = "abc"
		_, err := svc.Create(ctx, input, manager)
		wantKind(t, err, utils.KindInvalidArgument)
	})

	t.Run("duplicate email", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewDefaultEmployeeService(users, &fakeIdentity{})

		users.EXPECT().GetByEmail("new@agency.test").Return(&models.User{ID: "existing"}, nil)

		_, err := svc.Create(ctx, valid, manager)
		wantKind(t, err, utils.KindAlreadyExists)
	})

	t.Run("success creates identity then document", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockUserRepository(ctrl)
		identity := &fakeIdentity{
			createFn: func(ctx context.Context, email, password, displayName string) (string, error) {
				if email != "new@agency.test" || displayName != "New Hire" {
					t.Errorf("identity got email=%q name=%q", email, displayName)
				}
				return "uid-42", nil
			},
		}
		svc := NewDefaultEmployeeService(users, identity)

		users.EXPECT().GetByEmail("new@agency.test").Return(nil, nil)
		users.EXPECT().Create(gomock.Any()).DoAndReturn(func(u *models.User) error {
			if u.ID != "uid-42" || u.Role != models.RoleSales || u.Salary != 3000 {
				t.Errorf("stored user = %+v", u)
			}
			if u.CreatedBy != manager.ID {
				t.Errorf("createdBy = %s", u.CreatedBy)
			}
			return nil
		})

		got, err := svc.Create(ctx, valid, manager)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.ID != "uid-42" {
			t.Errorf("id = %s", got.ID)
		}
	})

	t.Run("document failure rolls identity back", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockUserRepository(ctrl)
		identity := &fakeIdentity{}
		svc := NewDefaultEmployeeService(users, identity)

		users.EXPECT().GetByEmail("new@agency.test").Return(nil, nil)
		users.EXPECT().Create(gomock.Any()).Return(errors.New("write failed"))

		_, err := svc.Create(ctx, valid, manager)
		if err == nil {
			t.Fatal("expected error")
		}
		if len(identity.deleted) != 1 || identity.deleted[0] != "uid-new" {
			t.Errorf("expected identity rollback, deleted=%v", identity.deleted)
		}
	})
}

func TestToggleDisabled(t *testing.T) {
	ctx := context.Background()

	t.Run("non-manager denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultEmployeeService(mocks.NewMockUserRepository(ctrl), &fakeIdentity{})

		_, err := svc.ToggleDisabled(ctx, "sales-2", sales)
		wantKind(t, err, utils.KindPermissionDenied)
	})

	t.Run("cannot disable self", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultEmployeeService(mocks.NewMockUserRepository(ctrl), &fakeIdentity{})

		_, err := svc.ToggleDisabled(ctx, manager.ID, manager)
		wantKind(t, err, utils.KindInvalidArgument)
	})

	t.Run("flips flag and mirrors to provider", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockUserRepository(ctrl)
		var mirrored bool
		identity := &fakeIdentity{
			setDisabledFn: func(ctx context.Context, uid string, disabled bool) error {
				if uid != "sales-2" || !disabled {
					t.Errorf("provider got uid=%s disabled=%v", uid, disabled)
				}
				mirrored = true
				return nil
			},
		}
		svc := NewDefaultEmployeeService(users, identity)

		users.EXPECT().GetByID("sales-2").Return(&models.User{ID: "sales-2", Role: models.RoleSales, Disabled: false}, nil)
		users.EXPECT().ApplyPatch("sales-2", gomock.Any()).DoAndReturn(func(id string, p models.UserPatch) error {
			if p.Disabled == nil || !*p.Disabled {
				t.Errorf("patch = %+v, want disabled true", p)
			}
			return nil
		})
		users.EXPECT().GetByID("sales-2").Return(&models.User{ID: "sales-2", Disabled: true}, nil)

		got, err := svc.ToggleDisabled(ctx, "sales-2", manager)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if !mirrored {
			t.Error("provider was not updated")
		}
		if !got.Disabled {
			t.Error("expected disabled account")
		}
	})
}

func TestSetSalary(t *testing.T) {
	ctx := context.Background()

	t.Run("negative salary rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultEmployeeService(mocks.NewMockUserRepository(ctrl), &fakeIdentity{})

		_, err := svc.SetSalary(ctx, "sales-2", -1, manager)
		wantKind(t, err, utils.KindInvalidArgument)
	})

	t.Run("missing account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewDefaultEmployeeService(users, &fakeIdentity{})

		users.EXPECT().GetByID("ghost").Return(nil, nil)

		_, err := svc.SetSalary(ctx, "ghost", 4000, manager)
		wantKind(t, err, utils.KindNotFound)
	})

	t.Run("applies salary patch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewDefaultEmployeeService(users, &fakeIdentity{})

		users.EXPECT().GetByID("sales-2").Return(&models.User{ID: "sales-2"}, nil)
		users.EXPECT().ApplyPatch("sales-2", gomock.Any()).DoAndReturn(func(id string, p models.UserPatch) error {
			if p.Salary == nil || *p.Salary != 4500 {
				t.Errorf("patch = %+v, want salary 4500", p)
			}
			return nil
		})
		users.EXPECT().GetByID("sales-2").Return(&models.User{ID: "sales-2", Salary: 4500}, nil)

		got, err := svc.SetSalary(ctx, "sales-2", 4500, manager)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.Salary != 4500 {
			t.Errorf("salary = %v", got.Salary)
		}
	})
}

func TestGetAndList(t *testing.T) {
	ctx := context.Background()

	t.Run("employee reads own account", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		users := mocks.NewMockUserRepository(ctrl)
		svc := NewDefaultEmployeeService(users, &fakeIdentity{})

		users.EXPECT().GetByID(sales.ID).Return(&models.User{ID: sales.ID}, nil)

		if _, err := svc.Get(ctx, sales.ID, sales); err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
	})

	t.Run("employee cannot read others", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultEmployeeService(mocks.NewMockUserRepository(ctrl), &fakeIdentity{})

		_, err := svc.Get(ctx, "someone-else", sales)
		wantKind(t, err, utils.KindPermissionDenied)
	})

	t.Run("list is manager only", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultEmployeeService(mocks.NewMockUserRepository(ctrl), &fakeIdentity{})

		_, err := svc.ListEmployees(ctx, sales)
		wantKind(t, err, utils.KindPermissionDenied)
	})
}

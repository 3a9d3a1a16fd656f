package settings

import (
	"context"
	"testing"

	"github.com/mohamedfathy32/elnaseem-crm/database/repository/mocks"
	"github.com/mohamedfathy32/elnaseem-crm/models"
	"github.com/mohamedfathy32/elnaseem-crm/utils"

	"go.uber.org/mock/gomock"
)

var (
	manager = &models.User{ID: "mgr-1", Role: models.RoleManager}
	sales   = &models.User{ID: "sales-1", Role: models.RoleSales}
)

func TestUpdateExchangeRates(t *testing.T) {
	ctx := context.Background()

	t.Run("non-manager denied", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultSettingsService(mocks.NewMockSettingsRepository(ctrl))

		_, err := svc.UpdateExchangeRates(ctx, RatesUpdate{BuyRate: 8, SellRate: 8.5}, sales)
		if utils.KindOf(err) != utils.KindPermissionDenied {
			t.Fatalf("expected permission_denied, got %v", err)
		}
	})

	t.Run("negative rate rejected", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		svc := NewDefaultSettingsService(mocks.NewMockSettingsRepository(ctrl))

		_, err := svc.UpdateExchangeRates(ctx, RatesUpdate{BuyRate: -1, SellRate: 8.5}, manager)
		if utils.KindOf(err) != utils.KindInvalidArgument {
			t.Fatalf("expected invalid_argument, got %v", err)
		}
	})

	t.Run("upserts with audit stamp", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mocks.NewMockSettingsRepository(ctrl)
		svc := NewDefaultSettingsService(repo)

		repo.EXPECT().UpdateExchangeRates(gomock.Any()).DoAndReturn(func(r *models.ExchangeRateSettings) error {
			if r.BuyRate != 8 || r.SellRate != 8.5 {
				t.Errorf("rates = %+v", r)
			}
			if r.UpdatedBy != manager.ID || r.UpdatedAt.IsZero() {
				t.Errorf("missing audit stamp: %+v", r)
			}
			return nil
		})

		got, err := svc.UpdateExchangeRates(ctx, RatesUpdate{BuyRate: 8, SellRate: 8.5}, manager)
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if got.BuyRate != 8 {
			t.Errorf("buyRate = %v", got.BuyRate)
		}
	})
}

func TestGetExchangeRates(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()
	repo := mocks.NewMockSettingsRepository(ctrl)
	svc := NewDefaultSettingsService(repo)

	repo.EXPECT().GetExchangeRates().Return(&models.ExchangeRateSettings{BuyRate: 8, SellRate: 8.5}, nil)

	got, err := svc.GetExchangeRates(context.Background())
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got.SellRate != 8.5 {
		t.Errorf("sellRate = %v", got.SellRate)
	}
}

package usecase

import (
	"context"
	"errors"
	"testing"
	"time"

	"controlimport/internal/domain/entities"
	mock_interfaces "controlimport/internal/usecase/interfaces/mocks"

	"go.uber.org/mock/gomock"
)

func TestIngestUseCase_IngestRows(t *testing.T) {
	t.Run("empty batch", func(t *testing.T) {
		uc := NewIngestUseCase(nil)
		_, err := uc.IngestRows(context.Background(), nil)
		if !errors.Is(err, ErrIngestNoRows) {
			t.Fatalf("expected ErrIngestNoRows, got %v", err)
		}
	})

	t.Run("one bad row rejects the whole batch", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		// No Create expectations: nothing may be persisted.

		uc := NewIngestUseCase(repo)
		result, err := uc.IngestRows(context.Background(), []IngestRow{
			{ImportCode: "IMP-10-2024-001", Type: "IMP", Regime: "10"},
			{ImportCode: "", Type: "IMP"},
		})
		if !errors.Is(err, ErrIngestValidation) {
			t.Fatalf("expected ErrIngestValidation, got %v", err)
		}
		if len(result.Errors) != 1 {
			t.Fatalf("expected one row error, got %+v", result.Errors)
		}
	})

	t.Run("missing type on a new code rejects", func(t *testing.T) {
		uc := NewIngestUseCase(nil)
		_, err := uc.IngestRows(context.Background(), []IngestRow{
			{ImportCode: "IMP-10-2024-001"},
		})
		if !errors.Is(err, ErrIngestValidation) {
			t.Fatalf("expected ErrIngestValidation, got %v", err)
		}
	})

	t.Run("rows sharing a code fold into one process", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)

		var saved entities.Process
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).DoAndReturn(
			func(_ context.Context, p entities.Process) (entities.Process, error) {
				saved = p
				return p, nil
			})

		uc := NewIngestUseCase(repo)
		result, err := uc.IngestRows(context.Background(), []IngestRow{
			{
				ImportCode:            "IMP-10-2024-001",
				Type:                  "IMP",
				Regime:                "10",
				TransportMode:         "MARITIMO",
				ActualShipDate:        "2024-03-01",
				ActualPortArrivalDate: 45362, // Excel serial for 2024-03-11
				ItemCode:              "ITM-1",
			},
			{ImportCode: "IMP-10-2024-001", ItemCode: "ITM-2"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Created != 1 || len(result.IDs) != 1 {
			t.Fatalf("expected one process, got %+v", result)
		}
		if len(saved.Preshipment.Items) != 2 {
			t.Fatalf("expected two items, got %+v", saved.Preshipment.Items)
		}
		want := time.Date(2024, time.March, 1, 12, 0, 0, 0, time.UTC)
		if saved.Postshipment.ActualShipDate == nil || !saved.Postshipment.ActualShipDate.Equal(want) {
			t.Fatalf("ship date not parsed: %v", saved.Postshipment.ActualShipDate)
		}
		wantArrival := time.Date(2024, time.March, 11, 12, 0, 0, 0, time.UTC)
		if saved.Postshipment.ActualPortArrivalDate == nil || !saved.Postshipment.ActualPortArrivalDate.Equal(wantArrival) {
			t.Fatalf("arrival serial not parsed: %v", saved.Postshipment.ActualPortArrivalDate)
		}
		if saved.Status != entities.StatusInTransit {
			t.Fatalf("status not derived on save: %s", saved.Status)
		}
	})

	t.Run("distinct codes create distinct processes in file order", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)

		var codes []string
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Times(2).DoAndReturn(
			func(_ context.Context, p entities.Process) (entities.Process, error) {
				codes = append(codes, p.ImportCode)
				return p, nil
			})

		uc := NewIngestUseCase(repo)
		result, err := uc.IngestRows(context.Background(), []IngestRow{
			{ImportCode: "IMP-10-2024-001", Type: "IMP"},
			{ImportCode: "IMP-10-2024-002", Type: "IMP"},
		})
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if result.Created != 2 {
			t.Fatalf("expected two processes, got %+v", result)
		}
		if len(codes) != 2 || codes[0] != "IMP-10-2024-001" || codes[1] != "IMP-10-2024-002" {
			t.Fatalf("unexpected order %v", codes)
		}
	})

	t.Run("repository failure stops the load", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()
		repo := mock_interfaces.NewMockIProcessRepository(ctrl)
		repo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(entities.Process{}, errors.New("dynamo down"))

		uc := NewIngestUseCase(repo)
		_, err := uc.IngestRows(context.Background(), []IngestRow{
			{ImportCode: "IMP-10-2024-001", Type: "IMP"},
		})
		if err == nil {
			t.Fatal("expected an error")
		}
	})
}

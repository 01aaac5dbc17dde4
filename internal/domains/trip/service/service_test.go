package service_test

import (
	"context"
	"net/http"
	"testing"
	"time"
	"tourdesk/config"
	"tourdesk/infras/otel/mocks"
	postgresMocks "tourdesk/infras/postgres/mocks"
	bookingModel "tourdesk/internal/domains/booking/model"
	bookingMocks "tourdesk/internal/domains/booking/repository/mocks"
	tourModel "tourdesk/internal/domains/tour/model"
	tourMocks "tourdesk/internal/domains/tour/repository/mocks"
	"tourdesk/internal/domains/trip/model"
	"tourdesk/internal/domains/trip/model/dto"
	tripMocks "tourdesk/internal/domains/trip/repository/mocks"
	"tourdesk/internal/domains/trip/service"
	userModel "tourdesk/internal/domains/user/model"
	cacheMocks "tourdesk/shared/cache/mocks"
	"tourdesk/shared/constant"
	crudMocks "tourdesk/shared/crud/mocks"
	"tourdesk/shared/failure"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

func userContext() context.Context {
	return context.WithValue(context.Background(), constant.ContextKeyUserID, "admin-id")
}

func date(value string) time.Time {
	parsed, _ := time.Parse(constant.DateOnlyFormat, value)

	return parsed
}

func datePtr(value string) *time.Time {
	parsed := date(value)

	return &parsed
}

type fixture struct {
	assignments *tripMocks.MockTripAssignment
	checkIns    *tripMocks.MockTripCheckIn
	details     *tripMocks.MockCheckInDetail
	users       *crudMocks.MockRepository[userModel.User]
	instances   *tourMocks.MockTourInstance
	passengers  *bookingMocks.MockPassenger

	assignment service.TripAssignment
	checkIn    service.TripCheckIn
}

func newFixture(t *testing.T) fixture {
	t.Helper()

	ctrl := gomock.NewController(t)
	mockCache := cacheMocks.NewMockRedisCache(ctrl)
	cacheMocks.Miss(mockCache)

	tx := postgresMocks.NewMockTransactor(ctrl)
	postgresMocks.RunInline(tx)

	f := fixture{
		assignments: tripMocks.NewMockTripAssignment(ctrl),
		checkIns:    tripMocks.NewMockTripCheckIn(ctrl),
		details:     tripMocks.NewMockCheckInDetail(ctrl),
		users:       crudMocks.NewMockRepository[userModel.User](ctrl),
		instances:   tourMocks.NewMockTourInstance(ctrl),
		passengers:  bookingMocks.NewMockPassenger(ctrl),
	}

	cfg := &config.Config{}
	otel := mocks.NewOtel()

	f.assignment = service.NewTripAssignment(f.assignments, f.users, f.instances, cfg, mockCache, otel)
	f.checkIn = service.NewTripCheckIn(f.checkIns, f.details, f.assignments, f.passengers, tx, cfg, mockCache, otel)

	return f
}

func guide() userModel.User {
	return userModel.User{ID: "guide-1", Role: userModel.RoleGuide, IsActive: true}
}

func instance() tourModel.TourInstance {
	return tourModel.TourInstance{
		ID:            "inst-1",
		Code:          "HLB-260601",
		DepartureDate: date("2026-06-01"),
		ReturnDate:    date("2026-06-03"),
		Status:        tourModel.TourInstanceOpen,
	}
}

func TestTripAssignmentService_Create(t *testing.T) {
	req := dto.CreateTripAssignmentRequest{UserID: "guide-1", TourInstanceID: "inst-1"}

	tests := []struct {
		name    string
		setup   func(f fixture)
		wantErr error
	}{
		{
			name: "assigned",
			setup: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guide(), nil)
				f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(instance(), nil)
				f.assignments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TripAssignment{
					{ID: "asg-0", TourInstanceID: "inst-0", DepartureDate: datePtr("2026-05-20"), ReturnDate: datePtr("2026-05-31")},
				}, nil)
				f.assignments.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, a model.TripAssignment) error {
						assert.Equal(t, model.AssignmentAssigned, a.Status)
						assert.Equal(t, "guide-1", a.UserID)

						return nil
					})
			},
		},
		{
			name: "user is not a guide",
			setup: func(f fixture) {
				sale := guide()
				sale.Role = userModel.RoleSale

				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(sale, nil)
			},
			wantErr: service.ErrUserNotGuide,
		},
		{
			name: "inactive guide",
			setup: func(f fixture) {
				inactive := guide()
				inactive.IsActive = false

				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(inactive, nil)
			},
			wantErr: service.ErrUserInactive,
		},
		{
			name: "cancelled instance",
			setup: func(f fixture) {
				cancelled := instance()
				cancelled.Status = tourModel.TourInstanceCancelled

				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guide(), nil)
				f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)
			},
			wantErr: service.ErrInstanceCancelled,
		},
		{
			name: "already assigned",
			setup: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guide(), nil)
				f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(instance(), nil)
				f.assignments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TripAssignment{
					{ID: "asg-1", TourInstanceID: "inst-1"},
				}, nil)
			},
			wantErr: service.ErrAlreadyAssigned,
		},
		{
			name: "overlapping trip",
			setup: func(f fixture) {
				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guide(), nil)
				f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(instance(), nil)
				f.assignments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TripAssignment{
					{ID: "asg-2", TourInstanceID: "inst-2", DepartureDate: datePtr("2026-06-03"), ReturnDate: datePtr("2026-06-05")},
				}, nil)
			},
			wantErr: service.ErrGuideBusy,
		},
		{
			name: "cancelled or deleted trips do not block",
			setup: func(f fixture) {
				cancelled := tourModel.TourInstanceCancelled
				deletedAt := date("2026-05-01")

				f.users.EXPECT().Get(gomock.Any(), gomock.Any()).Return(guide(), nil)
				f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(instance(), nil)
				f.assignments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TripAssignment{
					{ID: "asg-4", TourInstanceID: "inst-4", DepartureDate: datePtr("2026-06-02"), ReturnDate: datePtr("2026-06-04"), InstanceStatus: &cancelled},
					{ID: "asg-5", TourInstanceID: "inst-5", DepartureDate: datePtr("2026-06-01"), ReturnDate: datePtr("2026-06-02"), InstanceGone: &deletedAt},
				}, nil)
				f.assignments.EXPECT().Insert(gomock.Any(), gomock.Any()).Return(nil)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := newFixture(t)
			tt.setup(f)

			err := f.assignment.Create(userContext(), req)

			time.Sleep(10 * time.Millisecond)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}

func TestTripAssignmentService_Update(t *testing.T) {
	t.Run("invalid transition", func(t *testing.T) {
		f := newFixture(t)

		f.assignments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripAssignment{ID: "asg-1", Status: model.AssignmentCompleted}, nil)

		status := model.AssignmentAssigned
		err := f.assignment.Update(userContext(), dto.UpdateTripAssignmentRequest{Status: &status}, "asg-1")
		assert.ErrorIs(t, err, service.ErrInvalidTransition)
	})

	t.Run("accepts", func(t *testing.T) {
		f := newFixture(t)

		status := model.AssignmentAccepted

		f.assignments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripAssignment{ID: "asg-1", Status: model.AssignmentAssigned}, nil)
		f.assignments.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.assignments.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, &status, fields[model.FieldStatus])

				return nil
			})

		err := f.assignment.Update(userContext(), dto.UpdateTripAssignmentRequest{Status: &status}, "asg-1")

		time.Sleep(10 * time.Millisecond)
		assert.NoError(t, err)
	})

	t.Run("moving to another instance rechecks the schedule", func(t *testing.T) {
		f := newFixture(t)

		f.assignments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripAssignment{ID: "asg-1", UserID: "guide-1", TourInstanceID: "inst-0"}, nil)
		f.instances.EXPECT().Get(gomock.Any(), gomock.Any()).Return(instance(), nil)
		f.assignments.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.TripAssignment{
			{ID: "asg-3", TourInstanceID: "inst-3", DepartureDate: datePtr("2026-05-30"), ReturnDate: datePtr("2026-06-01")},
		}, nil)

		err := f.assignment.Update(userContext(), dto.UpdateTripAssignmentRequest{TourInstanceID: "inst-1"}, "asg-1")
		assert.ErrorIs(t, err, service.ErrGuideBusy)
	})
}

func passengersOnInstance() []bookingModel.Passenger {
	return []bookingModel.Passenger{
		{ID: "pax-1", BookingID: "bk-1", Fullname: "Lê Văn A"},
		{ID: "pax-2", BookingID: "bk-1", Fullname: "Lê Thị B"},
	}
}

func TestTripCheckInService_Create(t *testing.T) {
	assignment := model.TripAssignment{ID: "asg-1", TourInstanceID: "inst-1", Status: model.AssignmentAccepted}

	t.Run("defaults to every passenger absent", func(t *testing.T) {
		f := newFixture(t)

		f.assignments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignment, nil)
		f.passengers.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(passengersOnInstance(), nil)
		f.checkIns.EXPECT().
			InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, c model.TripCheckIn) error {
				assert.Equal(t, "asg-1", c.TripAssignmentID)
				assert.False(t, c.CheckinTime.IsZero())

				return nil
			})
		f.details.EXPECT().
			InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, _ *sqlx.Tx, rows []model.CheckInDetail) error {
				require.Len(t, rows, 2)
				assert.Equal(t, "pax-1", rows[0].PassengerID)
				assert.False(t, rows[0].IsPresent)

				return nil
			})

		res, err := f.checkIn.Create(userContext(), dto.CreateTripCheckInRequest{TripAssignmentID: "asg-1", Location: "Hà Nội"})

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 0, *res.Present)
		assert.Equal(t, 2, *res.Total)
	})

	t.Run("explicit details", func(t *testing.T) {
		f := newFixture(t)

		f.assignments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignment, nil)
		f.passengers.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(passengersOnInstance(), nil)
		f.checkIns.EXPECT().InsertTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
		f.details.EXPECT().InsertBulkTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

		res, err := f.checkIn.Create(userContext(), dto.CreateTripCheckInRequest{
			TripAssignmentID: "asg-1",
			CheckinTime:      "2026-06-01T07:30:00+07:00",
			Details:          []dto.CheckInDetailRequest{{PassengerID: "pax-2", IsPresent: true}},
		})

		time.Sleep(10 * time.Millisecond)
		require.NoError(t, err)
		assert.Equal(t, 1, *res.Present)
		assert.Equal(t, 1, *res.Total)
		assert.Equal(t, 7, res.CheckinTime.Hour())
	})

	t.Run("passenger from another instance", func(t *testing.T) {
		f := newFixture(t)

		f.assignments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(assignment, nil)
		f.passengers.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return(passengersOnInstance(), nil)

		_, err := f.checkIn.Create(userContext(), dto.CreateTripCheckInRequest{
			TripAssignmentID: "asg-1",
			Details:          []dto.CheckInDetailRequest{{PassengerID: "pax-9"}},
		})
		assert.ErrorIs(t, err, service.ErrUnknownPassenger)
	})

	t.Run("cancelled assignment", func(t *testing.T) {
		f := newFixture(t)

		cancelled := assignment
		cancelled.Status = model.AssignmentCancelled

		f.assignments.EXPECT().Get(gomock.Any(), gomock.Any()).Return(cancelled, nil)

		_, err := f.checkIn.Create(userContext(), dto.CreateTripCheckInRequest{TripAssignmentID: "asg-1"})
		assert.ErrorIs(t, err, service.ErrAssignmentCancelled)
	})
}

func TestTripCheckInService_Get(t *testing.T) {
	f := newFixture(t)

	f.checkIns.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripCheckIn{ID: "ci-1", TripAssignmentID: "asg-1"}, nil)
	f.details.EXPECT().GetAll(gomock.Any(), gomock.Any(), gomock.Any()).Return([]model.CheckInDetail{
		{ID: "d-1", PassengerID: "pax-1", IsPresent: true},
		{ID: "d-2", PassengerID: "pax-2"},
		{ID: "d-3", PassengerID: "pax-3", IsPresent: true},
	}, nil)

	res, err := f.checkIn.Get(userContext(), "ci-1")
	require.NoError(t, err)
	assert.Equal(t, 2, *res.Present)
	assert.Equal(t, 3, *res.Total)
	assert.Len(t, res.Details, 3)
}

func TestTripCheckInService_UpdateDetail(t *testing.T) {
	t.Run("toggles presence", func(t *testing.T) {
		f := newFixture(t)

		present := true

		f.details.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(true, nil)
		f.details.EXPECT().
			Update(gomock.Any(), gomock.Any(), gomock.Any()).
			DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
				assert.Equal(t, &present, fields[model.FieldIsPresent])

				return nil
			})

		err := f.checkIn.UpdateDetail(userContext(), dto.UpdateCheckInDetailRequest{IsPresent: &present}, "ci-1", "d-1")
		assert.NoError(t, err)
	})

	t.Run("detail of another check-in", func(t *testing.T) {
		f := newFixture(t)

		present := false

		f.details.EXPECT().Exist(gomock.Any(), gomock.Any()).Return(false, nil)

		err := f.checkIn.UpdateDetail(userContext(), dto.UpdateCheckInDetailRequest{IsPresent: &present}, "ci-1", "d-9")
		assert.Equal(t, http.StatusNotFound, failure.GetCode(err))
	})

	t.Run("nothing to update", func(t *testing.T) {
		f := newFixture(t)

		err := f.checkIn.UpdateDetail(userContext(), dto.UpdateCheckInDetailRequest{}, "ci-1", "d-1")
		assert.Equal(t, http.StatusBadRequest, failure.GetCode(err))
	})
}

func TestTripCheckInService_Delete(t *testing.T) {
	f := newFixture(t)

	f.checkIns.EXPECT().Get(gomock.Any(), gomock.Any()).Return(model.TripCheckIn{ID: "ci-1"}, nil)
	f.details.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)
	f.checkIns.EXPECT().DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).Return(nil)

	err := f.checkIn.Delete(userContext(), "ci-1")

	time.Sleep(10 * time.Millisecond)
	assert.NoError(t, err)
}

package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/kbn_backend/internal/apperrors"
	"github.com/SscSPs/kbn_backend/internal/core/domain"
	portssvc "github.com/SscSPs/kbn_backend/internal/core/ports/services"
	"github.com/SscSPs/kbn_backend/internal/core/services"
	"github.com/SscSPs/kbn_backend/internal/dto"
	"github.com/google/uuid"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"
)

type ScheduleServiceTestSuite struct {
	suite.Suite
	mockRepo  *MockScheduleRepository
	mockStaff *MockStaffResolver
	service   portssvc.ScheduleSvcFacade
	userID    string
	staff     domain.Staff
}

func (suite *ScheduleServiceTestSuite) SetupTest() {
	suite.mockRepo = new(MockScheduleRepository)
	suite.mockStaff = new(MockStaffResolver)
	suite.service = services.NewScheduleService(suite.mockRepo, suite.mockStaff,
		services.WithScheduleClock(func() time.Time { return time.Date(2024, 6, 1, 8, 0, 0, 0, time.UTC) }))
	suite.userID = uuid.NewString()
	suite.staff = domain.Staff{StaffID: uuid.NewString(), FirstName: "Ana", LastName: "Lopez", Role: domain.RoleInstructor}
}

func TestScheduleService(t *testing.T) {
	suite.Run(t, new(ScheduleServiceTestSuite))
}

func (suite *ScheduleServiceTestSuite) validRequest() dto.CreateScheduleEntryRequest {
	return dto.CreateScheduleEntryRequest{
		StudentName: "Student One",
		LessonDate:  "2024-06-10",
		LessonTime:  "09:30",
		StaffID:     suite.staff.StaffID,
		Location:    "North beach",
		Rate:        domain.ParseLenientDecimal("60"),
		Hours:       domain.ParseLenientDecimal("2"),
		Status:      "COMPLETED",
	}
}

func (suite *ScheduleServiceTestSuite) TestCreateScheduleEntry_Success() {
	ctx := context.Background()
	suite.mockStaff.On("FindStaffByID", ctx, suite.staff.StaffID).Return(&suite.staff, nil).Once()
	suite.mockRepo.On("SaveScheduleEntry", ctx, mock.AnythingOfType("domain.ScheduleEntry")).Return(nil).Once()

	entry, err := suite.service.CreateScheduleEntry(ctx, suite.validRequest(), suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, entry.Status)
	suite.Equal("Ana Lopez", entry.StaffDisplayName)
	suite.Equal("2024-06-10", entry.LessonDate.Format(domain.DateLayout))
	suite.Equal("09:30", entry.LessonTime)
	suite.NotEmpty(entry.ScheduleID)
	suite.mockStaff.AssertExpectations(suite.T())
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestCreateScheduleEntry_UnknownStaff() {
	ctx := context.Background()
	suite.mockStaff.On("FindStaffByID", ctx, suite.staff.StaffID).Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.CreateScheduleEntry(ctx, suite.validRequest(), suite.userID)

	suite.Require().Error(err)
	suite.ErrorIs(err, apperrors.ErrNotFound)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveScheduleEntry", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestCreateScheduleEntry_Validation() {
	ctx := context.Background()

	missingStudent := suite.validRequest()
	missingStudent.StudentName = ""
	badTime := suite.validRequest()
	badTime.LessonTime = "9.30am"
	badRate := suite.validRequest()
	badRate.Rate = domain.ParseLenientDecimal("sixty")
	hugeHours := suite.validRequest()
	hugeHours.Hours = domain.ParseLenientDecimal("1e200000000")
	finePaid := suite.validRequest()
	finePaid.HoursPaid = domain.ParseLenientDecimal("0.00001")

	for name, req := range map[string]dto.CreateScheduleEntryRequest{
		"missing student":     missingStudent,
		"bad time":            badTime,
		"bad rate":            badRate,
		"hours out of range":  hugeHours,
		"hours paid too fine": finePaid,
	} {
		_, err := suite.service.CreateScheduleEntry(ctx, req, suite.userID)
		suite.ErrorIs(err, apperrors.ErrValidation, name)
	}
	suite.mockStaff.AssertNotCalled(suite.T(), "FindStaffByID", mock.Anything, mock.Anything)
	suite.mockRepo.AssertNotCalled(suite.T(), "SaveScheduleEntry", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) storedEntry(status domain.ScheduleStatus) *domain.ScheduleEntry {
	return &domain.ScheduleEntry{
		ScheduleID: uuid.NewString(),
		StaffID:    suite.staff.StaffID,
		Status:     status,
	}
}

func (suite *ScheduleServiceTestSuite) TestSetScheduleStatus_LegacyAlias() {
	ctx := context.Background()
	stored := suite.storedEntry(domain.StatusPending)
	suite.mockRepo.On("ModifyScheduleEntry", ctx, stored.ScheduleID).Return(stored, nil).Once()
	suite.mockRepo.On("persistScheduleEntry", mock.AnythingOfType("domain.ScheduleEntry")).Return().Once()

	updated, err := suite.service.SetScheduleStatus(ctx, stored.ScheduleID, `{estado:"CONFIRMADA"}`, suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusConfirmed, updated.Status)
	suite.Equal(suite.userID, updated.LastUpdatedBy)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestSetScheduleStatus_Garbage() {
	ctx := context.Background()

	_, err := suite.service.SetScheduleStatus(ctx, "any", "garbage", suite.userID)

	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertNotCalled(suite.T(), "ModifyScheduleEntry", mock.Anything, mock.Anything)
}

func (suite *ScheduleServiceTestSuite) TestSetScheduleStatus_SameStateIsNoop() {
	ctx := context.Background()
	stored := suite.storedEntry(domain.StatusCompleted)
	suite.mockRepo.On("ModifyScheduleEntry", ctx, stored.ScheduleID).Return(stored, nil).Once()

	updated, err := suite.service.SetScheduleStatus(ctx, stored.ScheduleID, "COMPLETED", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusCompleted, updated.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestSetScheduleStatus_StrictRejectsIllegalMove() {
	ctx := context.Background()
	stored := suite.storedEntry(domain.StatusRejected)
	suite.mockRepo.On("ModifyScheduleEntry", ctx, stored.ScheduleID).Return(stored, nil).Once()

	_, err := suite.service.SetScheduleStatus(ctx, stored.ScheduleID, "CONFIRMED", suite.userID)

	suite.ErrorIs(err, apperrors.ErrInvalidOperation)
	suite.Equal(domain.StatusRejected, stored.Status)
}

func (suite *ScheduleServiceTestSuite) TestSetScheduleStatus_PermissiveAllowsAnyMove() {
	ctx := context.Background()
	svc := services.NewScheduleService(suite.mockRepo, suite.mockStaff, services.WithStrictTransitions(false))
	stored := suite.storedEntry(domain.StatusRejected)
	suite.mockRepo.On("ModifyScheduleEntry", ctx, stored.ScheduleID).Return(stored, nil).Once()
	suite.mockRepo.On("persistScheduleEntry", mock.AnythingOfType("domain.ScheduleEntry")).Return().Once()

	updated, err := svc.SetScheduleStatus(ctx, stored.ScheduleID, "PENDING", suite.userID)

	suite.Require().NoError(err)
	suite.Equal(domain.StatusPending, updated.Status)
}

func (suite *ScheduleServiceTestSuite) TestSetScheduleStatus_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("ModifyScheduleEntry", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.SetScheduleStatus(ctx, "missing", "CONFIRMED", suite.userID)

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ScheduleServiceTestSuite) TestGetScheduleEntry() {
	ctx := context.Background()
	stored := suite.storedEntry(domain.StatusConfirmed)
	suite.mockRepo.On("FindScheduleEntryByID", ctx, stored.ScheduleID).Return(stored, nil).Once()

	got, err := suite.service.GetScheduleEntry(ctx, stored.ScheduleID)

	suite.Require().NoError(err)
	suite.Equal(stored.ScheduleID, got.ScheduleID)
	suite.Equal(domain.StatusConfirmed, got.Status)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestGetScheduleEntry_NotFound() {
	ctx := context.Background()
	suite.mockRepo.On("FindScheduleEntryByID", ctx, "missing").Return(nil, apperrors.ErrNotFound).Once()

	_, err := suite.service.GetScheduleEntry(ctx, "missing")

	suite.ErrorIs(err, apperrors.ErrNotFound)
}

func (suite *ScheduleServiceTestSuite) TestListScheduleByStaff() {
	ctx := context.Background()
	entries := []domain.ScheduleEntry{*suite.storedEntry(domain.StatusPending)}
	suite.mockRepo.On("ListScheduleEntriesByStaff", ctx, suite.staff.StaffID).Return(entries, nil).Once()

	got, err := suite.service.ListScheduleByStaff(ctx, suite.staff.StaffID)

	suite.Require().NoError(err)
	suite.Len(got, 1)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestListScheduleByStatus() {
	ctx := context.Background()
	suite.mockRepo.On("ListScheduleEntriesByStatus", ctx, domain.StatusRejected).Return([]domain.ScheduleEntry{}, nil).Once()

	got, err := suite.service.ListScheduleByStatus(ctx, "rechazada")
	suite.Require().NoError(err)
	suite.Empty(got)

	_, err = suite.service.ListScheduleByStatus(ctx, "bogus")
	suite.ErrorIs(err, apperrors.ErrValidation)
	suite.mockRepo.AssertExpectations(suite.T())
}

func (suite *ScheduleServiceTestSuite) TestListSchedule() {
	ctx := context.Background()
	suite.mockRepo.On("ListScheduleEntries", ctx).Return([]domain.ScheduleEntry{*suite.storedEntry(domain.StatusPending)}, nil).Once()

	got, err := suite.service.ListSchedule(ctx)

	suite.Require().NoError(err)
	suite.Len(got, 1)
}

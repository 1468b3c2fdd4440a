package handlers

import (
	"encoding/json"
	"net/http"
	"testing"
	"time"

	"budgetbuddy-api/internal/database"
	"budgetbuddy-api/internal/dto"
	"budgetbuddy-api/internal/models"
	"budgetbuddy-api/internal/repositories"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/suite"
)

type ReminderHandlerTestSuite struct {
	suite.Suite
	db      *database.DB
	echo    *echo.Echo
	handler *ReminderHandler
	user    *models.User
}

func TestReminderHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReminderHandlerTestSuite))
}

func (s *ReminderHandlerTestSuite) SetupTest() {
	s.db = database.SetupTestDB(s.T())
	s.echo = newTestEcho()
	s.user = database.CreateTestUser(s.T(), s.db, "student@example.com")
	s.handler = NewReminderHandler(repositories.NewReminderRepository(s.db.DB))
}

func (s *ReminderHandlerTestSuite) TearDownTest() {
	database.CleanupTestDB(s.T(), s.db)
}

func (s *ReminderHandlerTestSuite) createReminder(userID uuid.UUID, title string, dueDate time.Time, completed bool) *models.Reminder {
	reminder := &models.Reminder{
		UserID:      userID,
		Title:       title,
		DueDate:     dueDate,
		IsCompleted: completed,
	}
	s.Require().NoError(s.db.Create(reminder).Error)
	return reminder
}

func (s *ReminderHandlerTestSuite) TestCreateReminder() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/reminders",
		`{"title":"Pay rent","description":"Transfer before the 1st","dueDate":"2024-07-01","category":"housing"}`)
	authenticate(c, s.user.ID)

	s.NoError(s.handler.CreateReminder(c))
	s.Equal(http.StatusCreated, rec.Code)

	var response dto.ReminderResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal("Pay rent", response.Reminder.Title)
	s.False(response.Reminder.IsCompleted)
	s.Require().NotNil(response.Reminder.Category)
	s.Equal(models.CategoryHousing, *response.Reminder.Category)
}

func (s *ReminderHandlerTestSuite) TestCreateReminder_InvalidCategory() {
	c, _ := newJSONContext(s.echo, http.MethodPost, "/api/v1/reminders",
		`{"title":"Pay rent","dueDate":"2024-07-01","category":"lottery"}`)
	authenticate(c, s.user.ID)

	// Validation errors bubble up to the error handler middleware
	s.Error(s.handler.CreateReminder(c))
}

func (s *ReminderHandlerTestSuite) TestCreateReminder_InvalidDate() {
	c, rec := newJSONContext(s.echo, http.MethodPost, "/api/v1/reminders",
		`{"title":"Pay rent","dueDate":"July 1st"}`)
	authenticate(c, s.user.ID)

	s.NoError(s.handler.CreateReminder(c))
	s.Equal(http.StatusBadRequest, rec.Code)
	s.Contains(rec.Body.String(), "VALIDATION_006")
}

func (s *ReminderHandlerTestSuite) TestListReminders_ExcludesCompletedByDefault() {
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	s.createReminder(s.user.ID, "Pay rent", due, false)
	s.createReminder(s.user.ID, "Cancel trial", due.AddDate(0, 0, 3), false)
	s.createReminder(s.user.ID, "Paid already", due.AddDate(0, 0, -3), true)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/reminders", "")
	authenticate(c, s.user.ID)

	s.NoError(s.handler.ListReminders(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ReminderListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Total)
	for _, reminder := range response.Reminders {
		s.False(reminder.IsCompleted)
	}
}

func (s *ReminderHandlerTestSuite) TestListReminders_IncludeCompleted() {
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	s.createReminder(s.user.ID, "Pay rent", due, false)
	s.createReminder(s.user.ID, "Paid already", due.AddDate(0, 0, -3), true)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/reminders?includeCompleted=true", "")
	authenticate(c, s.user.ID)

	s.NoError(s.handler.ListReminders(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ReminderListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Equal(2, response.Total)
}

func (s *ReminderHandlerTestSuite) TestListReminders_SoonestDueFirst() {
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	s.createReminder(s.user.ID, "Later", due.AddDate(0, 0, 10), false)
	s.createReminder(s.user.ID, "Sooner", due, false)

	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/reminders", "")
	authenticate(c, s.user.ID)

	s.NoError(s.handler.ListReminders(c))

	var response dto.ReminderListResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.Require().Len(response.Reminders, 2)
	s.Equal("Sooner", response.Reminders[0].Title)
}

func (s *ReminderHandlerTestSuite) TestGetReminder_NotFound() {
	id := uuid.New().String()
	c, rec := newJSONContext(s.echo, http.MethodGet, "/api/v1/reminders/"+id, "")
	authenticate(c, s.user.ID)
	c.SetParamNames("id")
	c.SetParamValues(id)

	s.NoError(s.handler.GetReminder(c))
	s.Equal(http.StatusNotFound, rec.Code)
	s.Contains(rec.Body.String(), "REMINDER_001")
}

func (s *ReminderHandlerTestSuite) TestUpdateReminder_MarkCompleted() {
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	reminder := s.createReminder(s.user.ID, "Pay rent", due, false)

	c, rec := newJSONContext(s.echo, http.MethodPut, "/api/v1/reminders/"+reminder.ID.String(),
		`{"isCompleted":true}`)
	authenticate(c, s.user.ID)
	c.SetParamNames("id")
	c.SetParamValues(reminder.ID.String())

	s.NoError(s.handler.UpdateReminder(c))
	s.Equal(http.StatusOK, rec.Code)

	var response dto.ReminderResponse
	s.Require().NoError(json.Unmarshal(rec.Body.Bytes(), &response))
	s.True(response.Reminder.IsCompleted)
	s.Equal("Pay rent", response.Reminder.Title)
}

func (s *ReminderHandlerTestSuite) TestDeleteReminder() {
	due := time.Date(2024, 7, 1, 0, 0, 0, 0, time.UTC)
	reminder := s.createReminder(s.user.ID, "Pay rent", due, false)

	c, rec := newJSONContext(s.echo, http.MethodDelete, "/api/v1/reminders/"+reminder.ID.String(), "")
	authenticate(c, s.user.ID)
	c.SetParamNames("id")
	c.SetParamValues(reminder.ID.String())

	s.NoError(s.handler.DeleteReminder(c))
	s.Equal(http.StatusOK, rec.Code)

	c, rec = newJSONContext(s.echo, http.MethodDelete, "/api/v1/reminders/"+reminder.ID.String(), "")
	authenticate(c, s.user.ID)
	c.SetParamNames("id")
	c.SetParamValues(reminder.ID.String())

	s.NoError(s.handler.DeleteReminder(c))
	s.Equal(http.StatusNotFound, rec.Code)
}

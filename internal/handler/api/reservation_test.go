//go:build unit

package api_test

import (
	"errors"
	"net/http"
	"testing"
	"time"

	"hotelier/internal/domain/user"
	"hotelier/internal/handler/api"
	reqdto "hotelier/internal/handler/dto/request"
	resdto "hotelier/internal/handler/dto/response"
	"hotelier/internal/usecase/commands"
	"hotelier/internal/usecase/queries"
	"hotelier/tests/common/httptest"
	"hotelier/tests/common/testutil"
	commandsmock "hotelier/tests/mock/commands"
	queriesmock "hotelier/tests/mock/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"go.uber.org/mock/gomock"
)

type ReservationHandlerTestSuite struct {
	suite.Suite
	router       *gin.Engine
	mockCtrl     *gomock.Controller
	mockCommands *commandsmock.MockReservationCommands
	mockQueries  *queriesmock.MockReservationQueries
	handler      *api.ReservationHandler

	actor queries.Actor
}

func (s *ReservationHandlerTestSuite) SetupTest() {
	gin.SetMode(gin.TestMode)
	s.router = gin.New()

	s.mockCtrl = gomock.NewController(s.T())
	s.mockCommands = commandsmock.NewMockReservationCommands(s.mockCtrl)
	s.mockQueries = queriesmock.NewMockReservationQueries(s.mockCtrl)
	s.handler = api.NewReservationHandler(s.mockCommands, s.mockQueries)

	s.actor = queries.Actor{UserID: uuid.New(), Role: user.RoleReceptionist}

	// Mock middleware behavior: attach the suite's actor when authorized
	withActor := func(next gin.HandlerFunc) gin.HandlerFunc {
		return func(c *gin.Context) {
			if c.GetHeader("Authorization") != "" {
				c.Set("actor", s.actor)
			}
			next(c)
		}
	}

	s.router.POST("/reservations", withActor(s.handler.Create))
	s.router.GET("/reservations", withActor(s.handler.List))
	s.router.GET("/reservations/:id", withActor(s.handler.Get))
	s.router.PATCH("/reservations/:id/status", withActor(s.handler.Transition))
}

func (s *ReservationHandlerTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func TestReservationHandlerSuite(t *testing.T) {
	suite.Run(t, new(ReservationHandlerTestSuite))
}

func buildCreateRequest() reqdto.CreateReservationRequest {
	return reqdto.CreateReservationRequest{
		RoomID:    uuid.New(),
		CheckIn:   time.Date(2026, 8, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 8, 13, 0, 0, 0, 0, time.UTC),
		Headcount: 2,
		Guest: reqdto.GuestPayload{
			FirstName:      "Ana",
			LastName:       "Silva",
			DocumentKind:   "passport",
			DocumentNumber: "X1234567",
			Email:          "ana@example.com",
		},
	}
}

func buildReservationView(req reqdto.CreateReservationRequest) *queries.ReservationView {
	return &queries.ReservationView{
		ID:             uuid.New(),
		Code:           "RES26080001",
		GuestID:        uuid.New(),
		GuestName:      "Ana Silva",
		RoomID:         req.RoomID,
		RoomNumber:     "101",
		RoomTypeName:   "Standard Double",
		CheckIn:        req.CheckIn,
		CheckOut:       req.CheckOut,
		Nights:         3,
		Headcount:      req.Headcount,
		Status:         "confirmed",
		StayPriceCents: 36000,
		TotalCents:     36000,
		CreatedAt:      time.Now(),
		UpdatedAt:      time.Now(),
	}
}

func (s *ReservationHandlerTestSuite) TestCreate() {
	url := "/reservations"
	reqBody := buildCreateRequest()
	view := buildReservationView(reqBody)

	s.Run("success: returns 201 Created with the reservation", func() {
		s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody.ToInput()).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusCreated, &response)
		s.Equal(view.Code, response.Code)
		s.Equal(view.TotalCents, response.TotalCents)
	})

	s.Run("error: 400 Bad Request on validation errors", func() {
		testCases := []struct {
			name   string
			mutate func(m map[string]any)
		}{
			{name: "missing room_id", mutate: testutil.Field("room_id", nil)},
			{name: "missing check_in", mutate: testutil.Field("check_in", nil)},
			{name: "missing check_out", mutate: testutil.Field("check_out", nil)},
			{name: "zero headcount", mutate: testutil.Field("headcount", 0)},
			{name: "missing guest", mutate: testutil.Field("guest", nil)},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				requestMap := testutil.DtoMap(s.T(), reqBody, tc.mutate)
				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, requestMap, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "")
			})
		}
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "room not found",
				commandsError:  commands.ErrRoomNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Room not found",
			},
			{
				name:           "service not found",
				commandsError:  commands.ErrServiceNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Service not found",
			},
			{
				name:           "room unavailable",
				commandsError:  commands.ErrRoomUnavailable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Room unavailable",
			},
			{
				name:           "room not bookable",
				commandsError:  commands.ErrRoomNotBookable,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "not bookable",
			},
			{
				name:           "service inactive",
				commandsError:  commands.ErrServiceInactive,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "Service is inactive",
			},
			{
				name:           "domain validation",
				commandsError:  commands.ErrDomainValidation,
				expectedStatus: http.StatusUnprocessableEntity,
				expectedMsg:    "validation failed",
			},
			{
				name:           "internal server error",
				commandsError:  errors.New("database error"),
				expectedStatus: http.StatusInternalServerError,
				expectedMsg:    "Internal server error",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Create(gomock.Any(), s.actor, reqBody.ToInput()).
					Return(nil, tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPost, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestTransition() {
	id := uuid.New()
	url := "/reservations/" + id.String() + "/status"
	reqBody := reqdto.TransitionRequest{Status: "checked_in"}

	s.Run("success: returns 204 No Content", func() {
		s.mockCommands.EXPECT().Transition(gomock.Any(), s.actor, id, gomock.Any()).
			Return(nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
		s.Equal(http.StatusNoContent, rec.Code)
	})

	s.Run("error: 400 Bad Request for an unknown status", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url,
			reqdto.TransitionRequest{Status: "teleported"}, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation status")
	})

	s.Run("error: 400 Bad Request for a malformed id", func() {
		rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch,
			"/reservations/not-a-uuid/status", reqBody, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "Invalid reservation ID")
	})

	s.Run("error: maps usecase errors to proper statuses", func() {
		testCases := []struct {
			name           string
			commandsError  error
			expectedStatus int
			expectedMsg    string
		}{
			{
				name:           "not found",
				commandsError:  commands.ErrReservationNotFound,
				expectedStatus: http.StatusNotFound,
				expectedMsg:    "Reservation not found",
			},
			{
				name:           "not allowed for caller",
				commandsError:  commands.ErrTransitionNotAllowed,
				expectedStatus: http.StatusForbidden,
				expectedMsg:    "Transition not allowed",
			},
			{
				name:           "illegal transition",
				commandsError:  commands.ErrIllegalTransition,
				expectedStatus: http.StatusConflict,
				expectedMsg:    "Illegal status transition",
			},
		}

		for _, tc := range testCases {
			s.Run(tc.name, func() {
				s.mockCommands.EXPECT().Transition(gomock.Any(), s.actor, id, gomock.Any()).
					Return(tc.commandsError).Times(1)

				rec := httptest.PerformRequest(s.T(), s.router, http.MethodPatch, url, reqBody, "bearer-token")
				httptest.AssertErrorResponse(s.T(), rec, tc.expectedStatus, tc.expectedMsg)
			})
		}
	})
}

func (s *ReservationHandlerTestSuite) TestGet() {
	view := buildReservationView(buildCreateRequest())
	url := "/reservations/" + view.ID.String()

	s.Run("success: returns the reservation", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).
			Return(view, nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Equal(view.ID, response.ID)
	})

	s.Run("error: 404 when not found", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).
			Return(nil, queries.ErrReservationNotFound).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusNotFound, "Reservation not found")
	})

	s.Run("error: 403 when the reservation belongs to someone else", func() {
		s.mockQueries.EXPECT().GetByID(gomock.Any(), s.actor, view.ID).
			Return(nil, queries.ErrReservationAccess).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusForbidden, "Access denied")
	})
}

func (s *ReservationHandlerTestSuite) TestList() {
	url := "/reservations"
	items := []*queries.ReservationListItem{
		{ID: uuid.New(), Code: "RES26080001", GuestName: "Ana Silva", RoomNumber: "101", Status: "confirmed"},
		{ID: uuid.New(), Code: "RES26080002", GuestName: "Joao Costa", RoomNumber: "204", Status: "pending"},
	}

	s.Run("success: staff get the filtered page with a cursor", func() {
		s.mockQueries.EXPECT().List(gomock.Any(), gomock.Any(), gomock.Any(), "").
			Return(items, "next-cursor", nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 2)
		s.Equal("next-cursor", response.NextCursor)
	})

	s.Run("success: guests only see their own bookings", func() {
		guestID := uuid.New()
		s.actor = queries.Actor{UserID: uuid.New(), Role: user.RoleGuest, GuestID: &guestID}

		s.mockQueries.EXPECT().ListOwn(gomock.Any(), s.actor, gomock.Any()).
			Return(items[:1], nil).Times(1)

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url, nil, "bearer-token")

		var response resdto.ReservationPageResponse
		httptest.AssertSuccessResponse(s.T(), rec, http.StatusOK, &response)
		s.Len(response.Items, 1)
		s.Empty(response.NextCursor)
	})

	s.Run("error: 400 Bad Request for a malformed filter", func() {
		s.actor = queries.Actor{UserID: uuid.New(), Role: user.RoleManager}

		rec := httptest.PerformRequest(s.T(), s.router, http.MethodGet, url+"?room_id=nope", nil, "bearer-token")
		httptest.AssertErrorResponse(s.T(), rec, http.StatusBadRequest, "invalid room_id")
	})
}

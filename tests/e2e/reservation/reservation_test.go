//go:build e2e

package reservation_test

import (
	"fmt"
	"net/http"
	"testing"
	"time"

	"hotelier/internal/domain/user"
	"hotelier/internal/handler/dto/request"
	"hotelier/internal/handler/dto/response"
	"hotelier/tests/common/authtest"
	"hotelier/tests/common/dbtest"
	"hotelier/tests/common/httptest"
	"hotelier/tests/e2e"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/google/uuid"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"
)

const (
	reservationsURL = "/api/reservations"
	invoicesURL     = "/api/invoices"
)

type ReservationSuite struct {
	e2e.SharedSuite
}

func TestReservationSuite(t *testing.T) {
	t.Parallel()
	suite.Run(t, new(ReservationSuite))
}

func (s *ReservationSuite) seedRoom(name, number string) uuid.UUID {
	typeID := dbtest.CreateTestRoomType(s.T(), s.DB, name, 12000, 2)
	return dbtest.CreateTestRoom(s.T(), s.DB, number, typeID)
}

func buildReservationRequest(roomID uuid.UUID) request.CreateReservationRequest {
	return request.CreateReservationRequest{
		RoomID:    roomID,
		CheckIn:   time.Date(2026, 9, 10, 0, 0, 0, 0, time.UTC),
		CheckOut:  time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC),
		Headcount: 2,
		Guest: request.GuestPayload{
			FirstName:      "Ana",
			LastName:       "Silva",
			DocumentKind:   "passport",
			DocumentNumber: "X1234567",
			Email:          "ana@example.com",
		},
	}
}

func (s *ReservationSuite) TestCreateReservation() {
	s.Run("staff can book a room and read it back", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		serviceID := dbtest.CreateTestService(t, s.DB, "Breakfast", 2000)
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		reqBody := buildReservationRequest(roomID)
		reqBody.Services = []request.ServiceLinePayload{{ServiceID: serviceID, Quantity: 2}}

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, reqBody, token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		require.NotEmpty(t, created.Code)

		dw := httptest.PerformRequest(t, s.Router, http.MethodGet,
			reservationsURL+"/"+created.ID.String(), nil, token)
		require.Equal(t, http.StatusOK, dw.Code)

		var actual response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, dw.Body, &actual))

		expected := &response.ReservationResponse{
			GuestName:      "Ana Silva",
			GuestEmail:     "ana@example.com",
			RoomNumber:     "101",
			RoomTypeName:   "Standard Double",
			Nights:         3,
			Headcount:      2,
			Status:         "confirmed",
			StayPriceCents: 36000,
			ServicesCents:  4000,
			TotalCents:     40000,
		}

		opts := []cmp.Option{
			cmpopts.IgnoreFields(response.ReservationResponse{},
				"ID", "Code", "GuestID", "RoomID", "CheckIn", "CheckOut", "Services", "CreatedAt", "UpdatedAt"),
		}
		if diff := cmp.Diff(expected, &actual, opts...); diff != "" {
			t.Errorf("Reservation response mismatch (-want +got):\n%s", diff)
		}
		require.Len(t, actual.Services, 1)
		require.Equal(t, int64(4000), actual.Services[0].TotalCents)

		// The booking marks the room reserved
		var roomStatus string
		err := s.DB.QueryRow(t.Context(), "SELECT status FROM rooms WHERE id = $1", roomID).Scan(&roomStatus)
		require.NoError(t, err)
		require.Equal(t, "reserved", roomStatus)

		// A confirmation mail job is queued for the guest
		var jobCount int
		err = s.DB.QueryRow(t.Context(),
			"SELECT count(*) FROM notification_jobs WHERE status = 'queued'").Scan(&jobCount)
		require.NoError(t, err)
		require.Equal(t, 1, jobCount)
	})

	s.Run("codes are allocated sequentially within the month", func() {
		t := s.T()

		roomA := s.seedRoom("Standard Double", "101")
		roomB := s.seedRoom("Deluxe Twin", "102")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		var codes []string
		for _, req := range []request.CreateReservationRequest{
			buildReservationRequest(roomA),
			buildReservationRequest(roomB),
		} {
			w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, req, token)
			require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

			var created response.ReservationResponse
			require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
			codes = append(codes, created.Code)
		}

		prefix := "RES" + time.Now().Format("0601")
		require.Equal(t, prefix+"0001", codes[0])
		require.Equal(t, prefix+"0002", codes[1])
	})

	s.Run("overlapping stay on the same room conflicts", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), token)
		require.Equal(t, http.StatusCreated, w1.Code, w1.Body.String())

		overlapping := buildReservationRequest(roomID)
		overlapping.CheckIn = time.Date(2026, 9, 12, 0, 0, 0, 0, time.UTC)
		overlapping.CheckOut = time.Date(2026, 9, 14, 0, 0, 0, 0, time.UTC)
		overlapping.Guest.DocumentNumber = "Y7654321"

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, overlapping, token)
		require.Equal(t, http.StatusConflict, w2.Code, w2.Body.String())
	})

	s.Run("back to back stays share a changeover day", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		w1 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), token)
		require.Equal(t, http.StatusCreated, w1.Code)

		adjacent := buildReservationRequest(roomID)
		adjacent.CheckIn = time.Date(2026, 9, 13, 0, 0, 0, 0, time.UTC)
		adjacent.CheckOut = time.Date(2026, 9, 15, 0, 0, 0, 0, time.UTC)
		adjacent.Guest.DocumentNumber = "Y7654321"

		w2 := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, adjacent, token)
		require.Equal(t, http.StatusCreated, w2.Code, w2.Body.String())
	})

	s.Run("unauthenticated booking is rejected", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), "")
		require.Equal(t, http.StatusUnauthorized, w.Code)
	})
}

func (s *ReservationSuite) TestStayLifecycle() {
	s.Run("check in, check out, invoice and settle", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), token)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))
		statusURL := fmt.Sprintf("%s/%s/status", reservationsURL, created.ID)

		for _, target := range []string{"checked_in", "checked_out"} {
			tw := httptest.PerformRequest(t, s.Router, http.MethodPatch, statusURL,
				request.TransitionRequest{Status: target}, token)
			require.Equal(t, http.StatusNoContent, tw.Code, "transition to %s: %s", target, tw.Body.String())
		}

		// Checked-out reservations can be invoiced; 10% tax on 36000
		iw := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			request.IssueInvoiceRequest{ReservationID: created.ID}, token)
		require.Equal(t, http.StatusCreated, iw.Code, iw.Body.String())

		var invoice map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &invoice))
		require.Equal(t, float64(36000), invoice["subtotal_cents"])
		require.Equal(t, float64(3600), invoice["tax_cents"])
		require.Equal(t, float64(39600), invoice["total_cents"])

		invoiceID := invoice["id"].(string)
		pw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			invoicesURL+"/"+invoiceID+"/payments",
			request.RecordPaymentRequest{AmountCents: 39600, Method: "cash"}, token)
		require.Equal(t, http.StatusCreated, pw.Code, pw.Body.String())

		var settled map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, pw.Body, &settled))
		require.Equal(t, "paid", settled["status"])
		require.Equal(t, float64(0), settled["balance_cents"])

		dup := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			request.IssueInvoiceRequest{ReservationID: created.ID}, token)
		require.Equal(t, http.StatusConflict, dup.Code, dup.Body.String())

		extra := httptest.PerformRequest(t, s.Router, http.MethodPost,
			invoicesURL+"/"+invoiceID+"/payments",
			request.RecordPaymentRequest{AmountCents: 100, Method: "cash"}, token)
		require.Equal(t, http.StatusConflict, extra.Code, extra.Body.String())
	})

	s.Run("voiding is restricted to accounting roles", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		receptionToken := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), receptionToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		for _, target := range []string{"checked_in", "checked_out"} {
			tw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
				fmt.Sprintf("%s/%s/status", reservationsURL, created.ID),
				request.TransitionRequest{Status: target}, receptionToken)
			require.Equal(t, http.StatusNoContent, tw.Code)
		}

		iw := httptest.PerformRequest(t, s.Router, http.MethodPost, invoicesURL,
			request.IssueInvoiceRequest{ReservationID: created.ID}, receptionToken)
		require.Equal(t, http.StatusCreated, iw.Code, iw.Body.String())

		var invoice map[string]any
		require.NoError(t, httptest.DecodeResponseBody(t, iw.Body, &invoice))
		voidURL := invoicesURL + "/" + invoice["id"].(string) + "/void"

		vw := httptest.PerformRequest(t, s.Router, http.MethodPost, voidURL, nil, receptionToken)
		require.Equal(t, http.StatusForbidden, vw.Code, vw.Body.String())

		accountantToken := authtest.CreateAndLogin(t, s.DB, s.Router, "books@example.com", string(user.RoleAccountant))
		aw := httptest.PerformRequest(t, s.Router, http.MethodPost, voidURL, nil, accountantToken)
		require.Equal(t, http.StatusNoContent, aw.Code, aw.Body.String())

		pw := httptest.PerformRequest(t, s.Router, http.MethodPost,
			invoicesURL+"/"+invoice["id"].(string)+"/payments",
			request.RecordPaymentRequest{AmountCents: 100, Method: "cash"}, receptionToken)
		require.Equal(t, http.StatusConflict, pw.Code, pw.Body.String())
	})

	s.Run("skipping checked_in is an illegal transition", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		token := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), token)
		require.Equal(t, http.StatusCreated, w.Code)

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		tw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", reservationsURL, created.ID),
			request.TransitionRequest{Status: "checked_out"}, token)
		require.Equal(t, http.StatusConflict, tw.Code, tw.Body.String())
	})
}

func (s *ReservationSuite) TestGuestCancellation() {
	register := func(t *testing.T, email string) string {
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{Email: email, Password: "password123"}, "")
		require.Equal(t, http.StatusCreated, rw.Code)
		return authtest.LoginUser(t, s.Router, email, "password123")
	}

	s.Run("guest cancels their own booking and the room is released", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		guestToken := register(t, "guest@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var created response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &created))

		cw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", reservationsURL, created.ID),
			request.TransitionRequest{Status: "cancelled"}, guestToken)
		require.Equal(t, http.StatusNoContent, cw.Code, cw.Body.String())

		var roomStatus string
		require.NoError(t, s.DB.QueryRow(t.Context(),
			"SELECT status FROM rooms WHERE id = $1", roomID).Scan(&roomStatus))
		require.Equal(t, "available", roomStatus)
	})

	s.Run("a token issued before the first booking can still message the desk", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		guestToken := register(t, "guest@example.com")

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		// Same token: the guest link did not exist when it was issued
		mw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/messages",
			request.CreateMessageRequest{Subject: "Parking", Body: "Is there a space for tonight?"}, guestToken)
		require.Equal(t, http.StatusCreated, mw.Code, mw.Body.String())
	})

	s.Run("guest cannot check themselves in or touch another booking", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		otherRoomID := s.seedRoom("Standard Double", "102")
		guestToken := register(t, "guest@example.com")
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		w := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), guestToken)
		require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

		var own response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, w.Body, &own))

		walkIn := buildReservationRequest(otherRoomID)
		walkIn.Guest.DocumentNumber = "Y7654321"
		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, walkIn, staffToken)
		require.Equal(t, http.StatusCreated, sw.Code, sw.Body.String())

		var walkInRes response.ReservationResponse
		require.NoError(t, httptest.DecodeResponseBody(t, sw.Body, &walkInRes))

		ciw := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", reservationsURL, own.ID),
			request.TransitionRequest{Status: "checked_in"}, guestToken)
		require.Equal(t, http.StatusForbidden, ciw.Code, ciw.Body.String())

		ow := httptest.PerformRequest(t, s.Router, http.MethodPatch,
			fmt.Sprintf("%s/%s/status", reservationsURL, walkInRes.ID),
			request.TransitionRequest{Status: "cancelled"}, guestToken)
		require.Equal(t, http.StatusForbidden, ow.Code, ow.Body.String())
	})
}

func (s *ReservationSuite) TestListVisibility() {
	s.Run("staff see the ledger, guests only their own", func() {
		t := s.T()

		roomID := s.seedRoom("Standard Double", "101")
		otherRoomID := s.seedRoom("Standard Double", "102")
		staffToken := authtest.CreateAndLogin(t, s.DB, s.Router, "reception@example.com", string(user.RoleReceptionist))

		// Guest account books its own stay
		rw := httptest.PerformRequest(t, s.Router, http.MethodPost, "/api/auth/register",
			request.RegisterRequest{Email: "guest@example.com", Password: "password123"}, "")
		require.Equal(t, http.StatusCreated, rw.Code)
		guestToken := authtest.LoginUser(t, s.Router, "guest@example.com", "password123")

		gw := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL,
			buildReservationRequest(roomID), guestToken)
		require.Equal(t, http.StatusCreated, gw.Code, gw.Body.String())

		// Staff books a second reservation for a walk-in
		walkIn := buildReservationRequest(otherRoomID)
		walkIn.Guest.DocumentNumber = "Y7654321"
		sw := httptest.PerformRequest(t, s.Router, http.MethodPost, reservationsURL, walkIn, staffToken)
		require.Equal(t, http.StatusCreated, sw.Code, sw.Body.String())

		// Guest token must be refreshed so the actor carries the new guest link
		guestToken = authtest.LoginUser(t, s.Router, "guest@example.com", "password123")

		var staffPage response.ReservationPageResponse
		lw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, staffToken)
		require.Equal(t, http.StatusOK, lw.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, lw.Body, &staffPage))
		require.Len(t, staffPage.Items, 2)

		var guestPage response.ReservationPageResponse
		glw := httptest.PerformRequest(t, s.Router, http.MethodGet, reservationsURL, nil, guestToken)
		require.Equal(t, http.StatusOK, glw.Code)
		require.NoError(t, httptest.DecodeResponseBody(t, glw.Body, &guestPage))
		require.Len(t, guestPage.Items, 1)
	})
}

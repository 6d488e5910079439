package customerclient

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/stretchr/testify/suite"
)

type ClientTestSuite struct {
	suite.Suite
	server *httptest.Server
}

func TestClientSuite(t *testing.T) {
	suite.Run(t, new(ClientTestSuite))
}

func (s *ClientTestSuite) TearDownTest() {
	if s.server != nil {
		s.server.Close()
	}
}

func (s *ClientTestSuite) TestFindCustomer() {
	registered := time.Date(2024, 3, 1, 10, 0, 0, 0, time.UTC)
	found := customerResponse{
		ID:           7,
		FullName:     "Ivan Petrov",
		NationalID:   "12345678901",
		Phone:        "+70000000000",
		Email:        "ivan@example.com",
		RegisteredAt: registered,
	}

	// путь запроса определяет ответ тестового сервера.
	s.server = httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id, ok := strings.CutPrefix(r.URL.Path, "/api/customers/")
		s.True(ok)
		switch id {
		case "7":
			w.Header().Set("Content-Type", "application/json")
			body, err := json.Marshal(found)
			s.NoError(err)
			_, wErr := w.Write(body)
			s.NoError(wErr)
		case "8":
			w.WriteHeader(http.StatusNotFound)
		case "9":
			w.Header().Set("Retry-After", "5")
			w.WriteHeader(http.StatusTooManyRequests)
		default:
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))

	client := New(s.server.URL, time.Second)

	s.Run("found", func() {
		customer, err := client.FindCustomer(s.T().Context(), 7)
		s.Require().NoError(err)
		s.Equal(&domain.Customer{
			ID:           7,
			RegisteredAt: registered,
			FullName:     "Ivan Petrov",
			NationalID:   "12345678901",
			Phone:        "+70000000000",
			Email:        "ivan@example.com",
		}, customer)
	})

	s.Run("not found", func() {
		_, err := client.FindCustomer(s.T().Context(), 8)
		s.Require().ErrorIs(err, domain.ErrCustomerNotFound)
	})

	s.Run("too many requests", func() {
		_, err := client.FindCustomer(s.T().Context(), 9)
		var tmrErr *TooManyRequestError
		s.Require().ErrorAs(err, &tmrErr)
		s.Equal(5*time.Second, tmrErr.RetryAfter)
	})

	s.Run("internal error", func() {
		_, err := client.FindCustomer(s.T().Context(), 10)
		var scErr *StatusCodeError
		s.Require().ErrorAs(err, &scErr)
		s.Equal(http.StatusInternalServerError, scErr.Code)
	})
}

func (s *ClientTestSuite) TestFindCustomer_Unreachable() {
	server := httptest.NewServer(http.NotFoundHandler())
	url := server.URL
	server.Close()

	_, err := New(url, time.Second).FindCustomer(s.T().Context(), 1)
	s.Require().Error(err)
	s.NotErrorIs(err, domain.ErrCustomerNotFound)
}

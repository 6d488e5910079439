package service

import (
	"io"
	"testing"
	"time"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/internal/service/mocks"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-bank/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type CustomerServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockCustomerRepo *mocks.MockCustomerRepository
	mockAccountCache *mocks.MockAccountCache
	mockListCache    *mocks.MockAccountListCache
	customerService  *CustomerService
}

func TestCustomerServiceSuite(t *testing.T) {
	suite.Run(t, new(CustomerServiceTestSuite))
}

func (s *CustomerServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockCustomerRepo = mocks.NewMockCustomerRepository(s.mockCtrl)
	s.mockAccountCache = mocks.NewMockAccountCache(s.mockCtrl)
	s.mockListCache = mocks.NewMockAccountListCache(s.mockCtrl)

	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).AnyTimes()

	l := logrus.New()
	l.SetOutput(io.Discard)

	customerService, err := NewCustomerService(s.mockUOW, s.mockAccountCache, s.mockListCache, l)
	s.Require().NoError(err)
	s.customerService = customerService
}

func fakeCustomerArgs() CustomerArgs {
	return CustomerArgs{
		FullName:   gofakeit.Name(),
		NationalID: gofakeit.Numerify("###########"),
		Phone:      gofakeit.Phone(),
		Email:      gofakeit.Email(),
	}
}

func (s *CustomerServiceTestSuite) TestCreate() {
	args := fakeCustomerArgs()
	s.mockCustomerRepo.EXPECT().Create(gomock.Any(), repoargs.CreateCustomer(args)).
		Return(&domain.Customer{ID: 1, FullName: args.FullName, RegisteredAt: time.Now()}, nil)

	customer, err := s.customerService.Create(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(int64(1), customer.ID)
}

func (s *CustomerServiceTestSuite) TestCreateDuplicate() {
	args := fakeCustomerArgs()
	s.mockCustomerRepo.EXPECT().Create(gomock.Any(), gomock.Any()).Return(nil, domain.ErrDuplicateKey)

	_, err := s.customerService.Create(s.T().Context(), args)
	s.ErrorIs(err, domain.ErrDuplicateKey)
}

func (s *CustomerServiceTestSuite) TestNotFound() {
	ctx := s.T().Context()
	s.mockCustomerRepo.EXPECT().FindByID(gomock.Any(), int64(999)).Return(nil, domain.ErrRecordNotFound)
	s.mockCustomerRepo.EXPECT().Update(gomock.Any(), int64(999), gomock.Any()).Return(nil, domain.ErrRecordNotFound)
	s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), int64(999)).Return(domain.ErrRecordNotFound)

	_, err := s.customerService.Get(ctx, 999)
	s.ErrorIs(err, domain.ErrCustomerNotFound)
	_, err = s.customerService.Update(ctx, 999, fakeCustomerArgs())
	s.ErrorIs(err, domain.ErrCustomerNotFound)
	s.ErrorIs(s.customerService.Delete(ctx, 999), domain.ErrCustomerNotFound)
}

func (s *CustomerServiceTestSuite) TestDeletePurgesAccountCaches() {
	s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), int64(5)).Return(nil)
	s.mockAccountCache.EXPECT().Purge(gomock.Any())
	s.mockListCache.EXPECT().Purge(gomock.Any())

	s.NoError(s.customerService.Delete(s.T().Context(), 5))
}

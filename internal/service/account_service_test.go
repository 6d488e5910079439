package service

import (
	"context"
	"io"
	"testing"
	"time"

	"github.com/fsdevblog/groph-bank/internal/cache"
	"github.com/fsdevblog/groph-bank/internal/domain"
	"github.com/fsdevblog/groph-bank/internal/repository/repoargs"
	"github.com/fsdevblog/groph-bank/internal/service/mocks"
	"github.com/fsdevblog/groph-bank/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-bank/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type AccountServiceTestSuite struct {
	suite.Suite
	mockCtrl         *gomock.Controller
	mockUOW          *uowmocks.MockUOW
	mockTX           *uowmocks.MockTX
	mockAccountRepo  *mocks.MockAccountRepository
	mockTxRepo       *mocks.MockTransactionRepository
	mockCustomerRepo *mocks.MockCustomerRepository
	mockLookup       *mocks.MockCustomerLookup
	mockPublisher    *mocks.MockEventPublisher
	mockAccountCache *mocks.MockAccountCache
	mockListCache    *mocks.MockAccountListCache
	accountService   *AccountService

	// состояние "базы" для цепочек операций.
	stored    map[string]domain.Account
	records   []domain.Transaction
	published []domain.TransactionEvent
	hooks     []func(ctx context.Context)

	accountPurges int
	listPurges    int
}

func TestAccountServiceSuite(t *testing.T) {
	suite.Run(t, new(AccountServiceTestSuite))
}

func (s *AccountServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockUOW = uowmocks.NewMockUOW(s.mockCtrl)
	s.mockTX = uowmocks.NewMockTX(s.mockCtrl)
	s.mockAccountRepo = mocks.NewMockAccountRepository(s.mockCtrl)
	s.mockTxRepo = mocks.NewMockTransactionRepository(s.mockCtrl)
	s.mockCustomerRepo = mocks.NewMockCustomerRepository(s.mockCtrl)
	s.mockLookup = mocks.NewMockCustomerLookup(s.mockCtrl)
	s.mockPublisher = mocks.NewMockEventPublisher(s.mockCtrl)
	s.mockAccountCache = mocks.NewMockAccountCache(s.mockCtrl)
	s.mockListCache = mocks.NewMockAccountListCache(s.mockCtrl)

	s.stored = make(map[string]domain.Account)
	s.records = nil
	s.published = nil
	s.hooks = nil
	s.accountPurges = 0
	s.listPurges = 0

	// Мок получения репозиториев из uow. Выполняется в инициализации сервисов.
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()
	s.mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.CustomerRepoName)).
		Return(s.mockCustomerRepo, nil).AnyTimes()

	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.AccountRepoName)).
		Return(s.mockAccountRepo, nil).AnyTimes()
	s.mockTX.EXPECT().Get(uow.RepositoryName(repoargs.TransactionRepoName)).
		Return(s.mockTxRepo, nil).AnyTimes()
	s.mockTX.EXPECT().AfterCommit(gomock.Any()).Do(func(fn func(context.Context)) {
		s.hooks = append(s.hooks, fn)
	}).AnyTimes()

	// Транзакция: хуки выполняются только при успешном завершении fn.
	s.mockUOW.EXPECT().Do(gomock.Any(), gomock.Any()).
		DoAndReturn(func(ctx context.Context, fn func(context.Context, uow.TX) error) error {
			s.hooks = nil
			if err := fn(ctx, s.mockTX); err != nil {
				s.hooks = nil
				return err
			}
			for _, hook := range s.hooks {
				hook(ctx)
			}
			s.hooks = nil
			return nil
		}).AnyTimes()

	s.mockPublisher.EXPECT().Enqueue(gomock.Any()).Do(func(e domain.TransactionEvent) {
		s.published = append(s.published, e)
	}).AnyTimes()
	s.mockAccountCache.EXPECT().Purge(gomock.Any()).Do(func(context.Context) {
		s.accountPurges++
	}).AnyTimes()
	s.mockListCache.EXPECT().Purge(gomock.Any()).Do(func(context.Context) {
		s.listPurges++
	}).AnyTimes()

	s.expectStorage()

	l := logrus.New()
	l.SetOutput(io.Discard)

	s.mockAccountRepo.EXPECT().MaxAccountNo(gomock.Any()).Return(int64(0), nil)
	allocator, allocErr := NewAccountNumberAllocator(s.T().Context(), s.mockAccountRepo)
	s.Require().NoError(allocErr)

	ledger, ledgerErr := NewLedgerService(s.mockUOW, s.mockPublisher, l)
	s.Require().NoError(ledgerErr)

	accountService, servErr := NewAccountService(AccountServiceArgs{
		UOW:          s.mockUOW,
		Allocator:    allocator,
		Customers:    s.mockLookup,
		Ledger:       ledger,
		AccountCache: s.mockAccountCache,
		ListCache:    s.mockListCache,
		Logger:       l,
	})
	s.Require().NoError(servErr)
	s.accountService = accountService
}

func (s *AccountServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

// expectStorage эмулирует хранилище счетов и журнала поверх map.
func (s *AccountServiceTestSuite) expectStorage() {
	s.mockAccountRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateAccount) (*domain.Account, error) {
			if _, ok := s.stored[args.No]; ok {
				return nil, domain.ErrDuplicateKey
			}
			account := domain.Account{
				No:         args.No,
				CustomerID: args.CustomerID,
				Kind:       args.Kind,
				Balance:    args.Balance,
				OpenedAt:   args.OpenedAt,
				Active:     true,
				Term:       args.Term,
			}
			s.stored[args.No] = account
			return &account, nil
		}).AnyTimes()

	lookup := func(_ context.Context, no string) (*domain.Account, error) {
		account, ok := s.stored[no]
		if !ok {
			return nil, domain.ErrRecordNotFound
		}
		return &account, nil
	}
	s.mockAccountRepo.EXPECT().FindByNo(gomock.Any(), gomock.Any()).DoAndReturn(lookup).AnyTimes()
	s.mockAccountRepo.EXPECT().FindByNoForUpdate(gomock.Any(), gomock.Any()).DoAndReturn(lookup).AnyTimes()

	s.mockAccountRepo.EXPECT().UpdateState(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.UpdateAccountState) (*domain.Account, error) {
			account := s.stored[args.No]
			account.Balance = args.Balance
			account.Active = args.Active
			s.stored[args.No] = account
			return &account, nil
		}).AnyTimes()

	s.mockTxRepo.EXPECT().NextCodeSeq(gomock.Any()).
		DoAndReturn(func(_ context.Context) (int64, error) {
			return int64(len(s.records) + 1), nil
		}).AnyTimes()

	s.mockTxRepo.EXPECT().Create(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, args repoargs.CreateTransaction) (*domain.Transaction, error) {
			record := domain.Transaction{
				ID:              int64(len(s.records) + 1),
				CreatedAt:       time.Now(),
				Code:            args.Code,
				AccountNo:       args.AccountNo,
				CustomerID:      args.CustomerID,
				Type:            args.Type,
				Amount:          args.Amount,
				PreviousBalance: args.PreviousBalance,
				NewBalance:      args.NewBalance,
				Explanation:     args.Explanation,
				Successful:      true,
			}
			s.records = append(s.records, record)
			return &record, nil
		}).AnyTimes()
}

func (s *AccountServiceTestSuite) expectCustomer(id int64) {
	s.mockLookup.EXPECT().FindCustomer(gomock.Any(), id).
		Return(&domain.Customer{ID: id, FullName: "Ayse Yilmaz"}, nil).AnyTimes()
}

func (s *AccountServiceTestSuite) open(kind domain.AccountKind, amount string) *domain.Account {
	s.expectCustomer(1)
	account, err := s.accountService.Open(s.T().Context(), OpenAccountArgs{
		CustomerID:  1,
		Kind:        kind,
		FirstAmount: decimal.RequireFromString(amount),
	})
	s.Require().NoError(err)
	return account
}

func (s *AccountServiceTestSuite) TestOpenStandard() {
	account := s.open(domain.AccountKindStandard, "100.00")

	s.Equal("1001", account.No)
	s.True(account.Active)
	s.Nil(account.Term)
	s.True(decimal.RequireFromString("100").Equal(account.Balance))
	s.Empty(s.records, "opening an account does not write a ledger record")
}

func (s *AccountServiceTestSuite) TestOpenTermDefaults() {
	account := s.open(domain.AccountKindTerm, "500")

	s.Require().NotNil(account.Term)
	s.True(domain.DefaultTermInterestRate.Equal(account.Term.InterestRate))
	s.Equal(domain.DefaultTermMaturityMonths, account.Term.MaturityMonths)
	s.Equal(account.OpenedAt.AddDate(0, domain.DefaultTermMaturityMonths, 0), account.Term.MaturityDate)
}

func (s *AccountServiceTestSuite) TestOpenUnknownCustomer() {
	s.mockLookup.EXPECT().FindCustomer(gomock.Any(), int64(999)).Return(nil, domain.ErrCustomerNotFound)

	_, err := s.accountService.Open(s.T().Context(), OpenAccountArgs{
		CustomerID:  999,
		Kind:        domain.AccountKindStandard,
		FirstAmount: decimal.NewFromInt(10),
	})
	s.ErrorIs(err, domain.ErrCustomerNotFound)
	s.Empty(s.stored)
	s.Empty(s.records)
}

func (s *AccountServiceTestSuite) TestOpenCustomerServiceUnavailable() {
	s.mockLookup.EXPECT().FindCustomer(gomock.Any(), int64(7)).Return(nil, domain.ErrServiceUnavailable)

	_, err := s.accountService.Open(s.T().Context(), OpenAccountArgs{
		CustomerID:  7,
		Kind:        domain.AccountKindStandard,
		FirstAmount: decimal.NewFromInt(10),
	})
	s.ErrorIs(err, domain.ErrServiceUnavailable)
	s.Empty(s.stored)
}

func (s *AccountServiceTestSuite) TestOpenNumberConflictReseeds() {
	s.stored["1001"] = domain.Account{No: "1001", CustomerID: 2, Kind: domain.AccountKindStandard, Active: true}
	s.mockAccountRepo.EXPECT().MaxAccountNo(gomock.Any()).Return(int64(1001), nil)
	s.expectCustomer(1)

	_, err := s.accountService.Open(s.T().Context(), OpenAccountArgs{
		CustomerID:  1,
		Kind:        domain.AccountKindStandard,
		FirstAmount: decimal.NewFromInt(10),
	})
	s.ErrorIs(err, domain.ErrAccountNumberConflict)

	// следующий номер уже свободен.
	account := s.open(domain.AccountKindStandard, "10")
	s.Equal("1002", account.No)
}

func (s *AccountServiceTestSuite) TestOpenInvalidAmount() {
	_, err := s.accountService.Open(s.T().Context(), OpenAccountArgs{
		CustomerID:  1,
		Kind:        domain.AccountKindStandard,
		FirstAmount: decimal.Zero,
	})
	s.ErrorIs(err, domain.ErrInvalidAmount)
}

func (s *AccountServiceTestSuite) TestDepositWithdrawChain() {
	account := s.open(domain.AccountKindStandard, "100.00")
	ctx := s.T().Context()

	_, err := s.accountService.Deposit(ctx, account.No, decimal.RequireFromString("50.25"), "salary")
	s.Require().NoError(err)
	_, err = s.accountService.Deposit(ctx, account.No, decimal.RequireFromString("20"), "")
	s.Require().NoError(err)
	op, err := s.accountService.Withdraw(ctx, account.No, decimal.RequireFromString("30.25"), "rent")
	s.Require().NoError(err)

	s.True(decimal.RequireFromString("140.00").Equal(op.Account.Balance))
	s.Require().Len(s.records, 3)
	s.Equal([]string{"TXN-001", "TXN-002", "TXN-003"},
		[]string{s.records[0].Code, s.records[1].Code, s.records[2].Code})
	for i := 1; i < len(s.records); i++ {
		s.True(s.records[i-1].NewBalance.Equal(s.records[i].PreviousBalance))
	}
	s.Equal(domain.TransactionTypeWithdraw, s.records[2].Type)

	// события публикуются после коммита, идентификатор - код транзакции.
	s.Require().Len(s.published, 3)
	s.Equal("TXN-003", s.published[2].TransactionID)
	s.Equal(account.No, s.published[2].AccountNo)
}

func (s *AccountServiceTestSuite) TestWithdrawInsufficientBalance() {
	account := s.open(domain.AccountKindStandard, "100")

	_, err := s.accountService.Withdraw(s.T().Context(), account.No, decimal.NewFromInt(101), "")
	s.ErrorIs(err, domain.ErrInsufficientBalance)

	var balanceErr *domain.InsufficientBalanceError
	s.Require().ErrorAs(err, &balanceErr)
	s.True(decimal.NewFromInt(100).Equal(balanceErr.Balance))

	s.True(decimal.NewFromInt(100).Equal(s.stored[account.No].Balance))
	s.Empty(s.records)
	s.Empty(s.published)
}

func (s *AccountServiceTestSuite) TestNonPositiveAmountRejectedBeforeStorage() {
	ctx := s.T().Context()
	for _, amount := range []decimal.Decimal{decimal.Zero, decimal.NewFromInt(-5)} {
		_, err := s.accountService.Deposit(ctx, "404", amount, "")
		s.ErrorIs(err, domain.ErrInvalidAmount)
		_, err = s.accountService.Withdraw(ctx, "404", amount, "")
		s.ErrorIs(err, domain.ErrInvalidAmount)
	}
}

func (s *AccountServiceTestSuite) TestUnknownAccount() {
	ctx := s.T().Context()
	s.mockAccountCache.EXPECT().Get(gomock.Any(), "404").Return(domain.Account{}, false)

	_, err := s.accountService.Get(ctx, "404")
	s.ErrorIs(err, domain.ErrAccountNotFound)
	_, err = s.accountService.Deposit(ctx, "404", decimal.NewFromInt(1), "")
	s.ErrorIs(err, domain.ErrAccountNotFound)
	s.ErrorIs(s.accountService.Close(ctx, "404"), domain.ErrAccountNotFound)
}

func (s *AccountServiceTestSuite) TestClosedAccount() {
	account := s.open(domain.AccountKindTerm, "100")
	ctx := s.T().Context()

	s.Require().NoError(s.accountService.Close(ctx, account.No))
	s.ErrorIs(s.accountService.Close(ctx, account.No), domain.ErrAccountAlreadyClosed)

	_, err := s.accountService.Deposit(ctx, account.No, decimal.NewFromInt(1), "")
	s.ErrorIs(err, domain.ErrAccountClosed)
	_, err = s.accountService.Withdraw(ctx, account.No, decimal.NewFromInt(1), "")
	s.ErrorIs(err, domain.ErrAccountClosed)
	_, err = s.accountService.AccrueInterest(ctx, account.No)
	s.ErrorIs(err, domain.ErrAccountClosed)

	s.mockAccountCache.EXPECT().Get(gomock.Any(), account.No).Return(domain.Account{}, false)
	s.mockAccountCache.EXPECT().Put(gomock.Any(), account.No, gomock.Any())
	got, err := s.accountService.Get(ctx, account.No)
	s.Require().NoError(err)
	s.False(got.Active)
	s.Empty(s.records)
}

func (s *AccountServiceTestSuite) TestAccrueInterest() {
	ctx := s.T().Context()
	rate := decimal.RequireFromString("0.06")
	s.expectCustomer(1)
	term, err := s.accountService.Open(ctx, OpenAccountArgs{
		CustomerID:   1,
		Kind:         domain.AccountKindTerm,
		FirstAmount:  decimal.RequireFromString("1000.00"),
		InterestRate: &rate,
	})
	s.Require().NoError(err)

	op, err := s.accountService.AccrueInterest(ctx, term.No)
	s.Require().NoError(err)
	s.True(decimal.RequireFromString("1060.00").Equal(op.Account.Balance))
	s.Equal(domain.TransactionTypeInterestAccrual, op.Transaction.Type)
	s.True(decimal.RequireFromString("60").Equal(op.Transaction.Amount))
	s.Len(s.published, 1)

	standard := s.open(domain.AccountKindStandard, "1000")
	_, err = s.accountService.AccrueInterest(ctx, standard.No)
	s.ErrorIs(err, domain.ErrInvalidAccountType)
}

func (s *AccountServiceTestSuite) TestGetUsesCache() {
	cached := domain.Account{No: "1500", Kind: domain.AccountKindStandard, Active: true}
	s.mockAccountCache.EXPECT().Get(gomock.Any(), "1500").Return(cached, true)

	account, err := s.accountService.Get(s.T().Context(), "1500")
	s.Require().NoError(err)
	s.Equal(cached, *account)
}

func (s *AccountServiceTestSuite) TestListByCustomer() {
	account := s.open(domain.AccountKindStandard, "10")
	s.mockListCache.EXPECT().Get(gomock.Any(), "1").Return(nil, false)
	s.mockAccountRepo.EXPECT().ListByCustomer(gomock.Any(), int64(1)).Return([]domain.Account{*account}, nil)
	s.mockListCache.EXPECT().Put(gomock.Any(), "1", []domain.Account{*account})

	accounts, err := s.accountService.ListByCustomer(s.T().Context(), 1)
	s.Require().NoError(err)
	s.Len(accounts, 1)

	s.mockLookup.EXPECT().FindCustomer(gomock.Any(), int64(999)).Return(nil, domain.ErrCustomerNotFound)
	_, err = s.accountService.ListByCustomer(s.T().Context(), 999)
	s.ErrorIs(err, domain.ErrCustomerNotFound)
}

func (s *AccountServiceTestSuite) requirePurges(expected int) {
	s.T().Helper()
	s.Equal(expected, s.accountPurges, "account cache purges")
	s.Equal(expected, s.listPurges, "account list cache purges")
}

func (s *AccountServiceTestSuite) TestEverySuccessfulWritePurgesCaches() {
	ctx := s.T().Context()

	standard := s.open(domain.AccountKindStandard, "100")
	s.requirePurges(1)

	_, err := s.accountService.Deposit(ctx, standard.No, decimal.NewFromInt(50), "")
	s.Require().NoError(err)
	s.requirePurges(2)

	_, err = s.accountService.Withdraw(ctx, standard.No, decimal.NewFromInt(10), "")
	s.Require().NoError(err)
	s.requirePurges(3)

	term := s.open(domain.AccountKindTerm, "100")
	s.requirePurges(4)

	_, err = s.accountService.AccrueInterest(ctx, term.No)
	s.Require().NoError(err)
	s.requirePurges(5)

	s.Require().NoError(s.accountService.Close(ctx, standard.No))
	s.requirePurges(6)
}

func (s *AccountServiceTestSuite) TestFailedWriteKeepsCaches() {
	ctx := s.T().Context()
	standard := s.open(domain.AccountKindStandard, "100")
	s.requirePurges(1)

	_, err := s.accountService.Withdraw(ctx, standard.No, decimal.NewFromInt(1000), "")
	s.Require().ErrorIs(err, domain.ErrInsufficientBalance)
	_, err = s.accountService.Deposit(ctx, standard.No, decimal.Zero, "")
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)
	_, err = s.accountService.AccrueInterest(ctx, standard.No)
	s.Require().ErrorIs(err, domain.ErrInvalidAccountType)
	_, err = s.accountService.Open(ctx, OpenAccountArgs{
		CustomerID:  1,
		Kind:        domain.AccountKindStandard,
		FirstAmount: decimal.NewFromInt(-1),
	})
	s.Require().ErrorIs(err, domain.ErrInvalidAmount)

	s.Require().NoError(s.accountService.Close(ctx, standard.No))
	s.requirePurges(2)
	s.Require().ErrorIs(s.accountService.Close(ctx, standard.No), domain.ErrAccountAlreadyClosed)
	s.requirePurges(2)
}

// newCachedServices сервисы счетов и клиентов поверх общих кешей в памяти.
func (s *AccountServiceTestSuite) newCachedServices() (*AccountService, *CustomerService) {
	l := logrus.New()
	l.SetOutput(io.Discard)

	accountCache := cache.NewLRU[domain.Account](cache.DefaultSize, time.Minute)
	listCache := cache.NewLRU[[]domain.Account](cache.DefaultSize, time.Minute)

	s.mockAccountRepo.EXPECT().MaxAccountNo(gomock.Any()).Return(int64(0), nil)
	allocator, err := NewAccountNumberAllocator(s.T().Context(), s.mockAccountRepo)
	s.Require().NoError(err)
	ledger, err := NewLedgerService(s.mockUOW, s.mockPublisher, l)
	s.Require().NoError(err)

	accounts, err := NewAccountService(AccountServiceArgs{
		UOW:          s.mockUOW,
		Allocator:    allocator,
		Customers:    s.mockLookup,
		Ledger:       ledger,
		AccountCache: accountCache,
		ListCache:    listCache,
		Logger:       l,
	})
	s.Require().NoError(err)
	customers, err := NewCustomerService(s.mockUOW, accountCache, listCache, l)
	s.Require().NoError(err)
	return accounts, customers
}

func (s *AccountServiceTestSuite) TestCachedGetSeesFreshBalance() {
	ctx := s.T().Context()
	accounts, _ := s.newCachedServices()
	s.expectCustomer(1)

	account, err := accounts.Open(ctx, OpenAccountArgs{
		CustomerID:  1,
		Kind:        domain.AccountKindStandard,
		FirstAmount: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)

	got, err := accounts.Get(ctx, account.No)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(100).Equal(got.Balance))

	_, err = accounts.Deposit(ctx, account.No, decimal.NewFromInt(25), "")
	s.Require().NoError(err)

	got, err = accounts.Get(ctx, account.No)
	s.Require().NoError(err)
	s.True(decimal.NewFromInt(125).Equal(got.Balance))
}

func (s *AccountServiceTestSuite) TestCustomerDeleteDropsCachedAccounts() {
	ctx := s.T().Context()
	accounts, customers := s.newCachedServices()
	s.expectCustomer(5)

	account, err := accounts.Open(ctx, OpenAccountArgs{
		CustomerID:  5,
		Kind:        domain.AccountKindStandard,
		FirstAmount: decimal.NewFromInt(100),
	})
	s.Require().NoError(err)
	_, err = accounts.Get(ctx, account.No)
	s.Require().NoError(err)

	// счета удаляются каскадом вместе с клиентом.
	s.mockCustomerRepo.EXPECT().Delete(gomock.Any(), int64(5)).
		DoAndReturn(func(_ context.Context, id int64) error {
			for no, stored := range s.stored {
				if stored.CustomerID == id {
					delete(s.stored, no)
				}
			}
			return nil
		})
	s.Require().NoError(customers.Delete(ctx, 5))

	_, err = accounts.Get(ctx, account.No)
	s.ErrorIs(err, domain.ErrAccountNotFound)
}

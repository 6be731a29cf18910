package services_test

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"testing"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/SscSPs/wallet_ledger_backend/internal/repositories/memory"
	"github.com/SscSPs/wallet_ledger_backend/internal/utils"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

const (
	testSecret       = "s3cret"
	testOperator     = "OP01"
	testRequestTime  = "1700000000000"
	testProductCode  = int64(1001)
	testMember       = "player1"
	testGameCode     = "lucky-7"
	testGameType     = "SLOT"
	testProviderName = "Acme Gaming"
)

type SeamlessWalletServiceTestSuite struct {
	suite.Suite
	ctx      context.Context
	store    *memory.Store
	ledger   portssvc.LedgerSvcFacade
	idem     portssvc.IdempotencySvc
	seamless portssvc.SeamlessWalletSvc
	player   *domain.Account
	agent    *domain.Account
}

func (s *SeamlessWalletServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.store = memory.NewStore()
	clock := newStepClock()
	s.ledger = services.NewLedgerService(s.store, s.store, services.WithLedgerClock(clock.Now))
	s.idem = services.NewIdempotencyService(s.store, s.store)
	s.seamless = services.NewSeamlessWalletService(memory.NewRepositoryProvider(s.store), s.ledger, s.idem, testSecret, services.WithSeamlessClock(clock.Now))

	s.store.SeedGame(domain.Game{
		GameCode:     testGameCode,
		GameName:     "Lucky Seven",
		GameType:     testGameType,
		ProductCode:  testProductCode,
		ProviderName: testProviderName,
	})

	wallet, err := s.store.FindSystemWallet(s.ctx)
	s.Require().NoError(err)
	_, err = s.ledger.Deposit(s.ctx, wallet.ID, 100_000_000_000, domain.CapitalInjection, nil)
	s.Require().NoError(err)
	owner, err := openAccount(s.ctx, s.ledger, "owner1", domain.Owner, wallet.ID, 10_000_000_000)
	s.Require().NoError(err)
	s.agent, err = openAccount(s.ctx, s.ledger, "agent1", domain.Agent, owner.ID, 5_000_000_000)
	s.Require().NoError(err)
	s.player, err = openAccount(s.ctx, s.ledger, testMember, domain.Player, s.agent.ID, 0)
	s.Require().NoError(err)
}

// units converts a provider amount into ledger units of currency.
func (s *SeamlessWalletServiceTestSuite) units(currency, amount string) int64 {
	spec, err := domain.LookupCurrency(currency)
	s.Require().NoError(err)
	n, err := spec.ToLedger(decimal.RequireFromString(amount))
	s.Require().NoError(err)
	return n
}

func (s *SeamlessWalletServiceTestSuite) fund(amount int64) {
	_, err := s.ledger.Transfer(s.ctx, s.agent.ID, s.player.ID, amount, domain.CreditTransfer, nil)
	s.Require().NoError(err)
}

func (s *SeamlessWalletServiceTestSuite) playerBalance() int64 {
	acc, err := s.store.FindAccountByID(s.ctx, s.player.ID)
	s.Require().NoError(err)
	return acc.Balance
}

func envelope(op domain.SeamlessOperation, currency string, groups ...dto.SeamlessBatchRequest) dto.SeamlessTransactionRequest {
	return dto.SeamlessTransactionRequest{
		OperatorCode:  testOperator,
		Currency:      currency,
		Sign:          utils.SeamlessSignature(testOperator, testRequestTime, string(op), testSecret),
		RequestTime:   json.Number(testRequestTime),
		BatchRequests: groups,
	}
}

func group(member string, gameType string, txs ...dto.SeamlessTransaction) dto.SeamlessBatchRequest {
	return dto.SeamlessBatchRequest{
		MemberAccount: member,
		ProductCode:   testProductCode,
		GameType:      gameType,
		Transactions:  txs,
	}
}

func txn(id, action, amount, wager string) dto.SeamlessTransaction {
	return dto.SeamlessTransaction{
		ID:        dto.FlexString(id),
		Action:    action,
		Amount:    decimal.RequireFromString(amount),
		WagerCode: dto.FlexString(wager),
		GameCode:  testGameCode,
	}
}

func (s *SeamlessWalletServiceTestSuite) results(resp *dto.SeamlessResponse) []dto.SeamlessResult {
	s.Require().NotNil(resp)
	s.Require().Equal(domain.CodeSuccess, resp.Code)
	results, ok := resp.Data.([]dto.SeamlessResult)
	s.Require().True(ok)
	return results
}

func (s *SeamlessWalletServiceTestSuite) TestDeposit_ScalesByCurrencyMultiplier() {
	resp := s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK2",
		group(testMember, testGameType, txn("t-1", "WIN", "5.0000", "w-1"))), nil)

	results := s.results(resp)
	s.Require().Len(results, 1)
	s.Equal(domain.CodeSuccess, results[0].Code)
	s.Equal(json.Number("0.0000"), results[0].BeforeBalance)
	s.Equal(json.Number("5.0000"), results[0].Balance)
	s.Equal(int64(50_000_000), s.playerBalance())

	history, err := s.idem.History(s.ctx, "t-1")
	s.Require().NoError(err)
	s.Require().Len(history, 1)
	rec := history[0]
	s.Equal(domain.ExternalCompleted, rec.Status)
	s.Equal(int64(50_000_000), rec.LedgerAmount)
	s.True(rec.AfterBalance.Equal(decimal.NewFromInt(5)))
	s.Equal(testProviderName, rec.ProviderName)
	s.Equal("Lucky Seven", rec.GameName)
	s.Equal(s.agent.ID, *rec.AgentID)

	entries := s.store.Entries()
	last := entries[len(entries)-1]
	s.Equal(domain.GameWin, last.Kind)
	s.Equal("t-1", *last.ExternalTransactionID)
	s.Equal(testGameType, last.Metadata[domain.MetaGameType])
}

func (s *SeamlessWalletServiceTestSuite) TestWithdraw_RunningBalanceAcrossGroup() {
	s.fund(s.units("MMK2", "10"))

	resp := s.seamless.Withdraw(s.ctx, envelope(domain.OpWithdraw, "MMK2",
		group(testMember, testGameType,
			txn("b-1", "BET", "2.5", "w-1"),
			txn("b-2", "BET", "100", "w-2"),
			txn("b-3", "FEE", "0.5", "w-3"),
		)), nil)

	results := s.results(resp)
	s.Require().Len(results, 3)
	s.Equal(domain.CodeSuccess, results[0].Code)
	s.Equal(json.Number("10.0000"), results[0].BeforeBalance)
	s.Equal(json.Number("7.5000"), results[0].Balance)

	s.Equal(domain.CodeInsufficientBalance, results[1].Code)
	s.Equal(json.Number("7.5000"), results[1].Balance)

	s.Equal(domain.CodeSuccess, results[2].Code)
	s.Equal(json.Number("7.5000"), results[2].BeforeBalance)
	s.Equal(json.Number("7.0000"), results[2].Balance)
	s.Equal(s.units("MMK2", "7"), s.playerBalance())

	history, err := s.idem.History(s.ctx, "b-2")
	s.Require().NoError(err)
	s.Equal(domain.ExternalFailed, history[0].Status)
}

func (s *SeamlessWalletServiceTestSuite) TestDuplicateTransactionIsAppliedOnce() {
	req := envelope(domain.OpDeposit, "MMK", group(testMember, testGameType, txn("d-1", "WIN", "10", "w-1")))

	first := s.results(s.seamless.Deposit(s.ctx, req, nil))
	second := s.results(s.seamless.Deposit(s.ctx, req, nil))

	s.Equal(domain.CodeSuccess, first[0].Code)
	s.Equal(domain.CodeDuplicateTransaction, second[0].Code)
	s.Equal(json.Number("10.00"), second[0].Balance)
	s.Equal(s.units("MMK", "10"), s.playerBalance())

	history, err := s.idem.History(s.ctx, "d-1")
	s.Require().NoError(err)
	s.Require().Len(history, 2)
	s.Equal(domain.ExternalCompleted, history[0].Status)
	s.Equal(domain.ExternalDuplicate, history[1].Status)
}

func (s *SeamlessWalletServiceTestSuite) TestConcurrentDuplicateDelivery() {
	req := envelope(domain.OpDeposit, "MMK", group(testMember, testGameType, txn("c-1", "WIN", "25", "w-1")))

	const callers = 8
	codes := make([]domain.SeamlessCode, callers)
	var wg sync.WaitGroup
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			resp := s.seamless.Deposit(s.ctx, req, nil)
			codes[i] = resp.Data.([]dto.SeamlessResult)[0].Code
		}(i)
	}
	wg.Wait()

	success := 0
	for _, code := range codes {
		if code == domain.CodeSuccess {
			success++
			continue
		}
		s.Equal(domain.CodeDuplicateTransaction, code)
	}
	s.Equal(1, success)
	s.Equal(s.units("MMK", "25"), s.playerBalance())

	completed, err := s.store.ExistsCompleted(s.ctx, "c-1")
	s.Require().NoError(err)
	s.True(completed)
}

func (s *SeamlessWalletServiceTestSuite) TestInvalidSignatureRejectsWholeBatch() {
	req := envelope(domain.OpDeposit, "MMK2", group(testMember, testGameType,
		txn("s-1", "WIN", "1", "w-1"),
		txn("s-2", "WIN", "1", "w-2"),
		txn("s-3", "WIN", "1", "w-3"),
	))
	req.Sign = "not-a-signature"
	entriesBefore := len(s.store.Entries())

	results := s.results(s.seamless.Deposit(s.ctx, req, nil))
	s.Require().Len(results, 3)
	for _, r := range results {
		s.Equal(domain.CodeInvalidSignature, r.Code)
		s.Equal(json.Number("0.0000"), r.Balance)
	}
	s.Len(s.store.Entries(), entriesBefore)
	s.Equal(int64(0), s.playerBalance())

	_, err := s.idem.History(s.ctx, "s-1")
	s.ErrorIs(err, apperrors.ErrNotFound)
}

func (s *SeamlessWalletServiceTestSuite) TestSignatureIsCaseInsensitive() {
	req := envelope(domain.OpDeposit, "MMK", group(testMember, testGameType, txn("u-1", "WIN", "3", "w-1")))
	req.Sign = strings.ToUpper(req.Sign)

	results := s.results(s.seamless.Deposit(s.ctx, req, nil))
	s.Equal(domain.CodeSuccess, results[0].Code)
}

func (s *SeamlessWalletServiceTestSuite) TestInvalidCurrency() {
	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "XYZ",
		group(testMember, testGameType, txn("x-1", "WIN", "1", "w-1"))), nil))

	s.Require().Len(results, 1)
	s.Equal(domain.CodeInternalServerError, results[0].Code)
	s.Equal("Invalid Currency", results[0].Message)
	s.Equal(json.Number("0.0000"), results[0].Balance)
	s.Equal(int64(0), s.playerBalance())

	history, err := s.idem.History(s.ctx, "x-1")
	s.Require().NoError(err)
	s.Equal(domain.ExternalFailed, history[0].Status)
}

func (s *SeamlessWalletServiceTestSuite) TestMemberFailureDoesNotAffectOtherGroups() {
	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group("ghost", testGameType, txn("g-1", "WIN", "1", "w-1"), txn("g-2", "WIN", "1", "w-2")),
		group(testMember, testGameType, txn("g-3", "WIN", "4", "w-3")),
	), nil))

	s.Require().Len(results, 3)
	s.Equal(domain.CodeMemberNotExist, results[0].Code)
	s.Equal("ghost", results[0].MemberAccount)
	s.Equal(domain.CodeMemberNotExist, results[1].Code)
	s.Equal(domain.CodeSuccess, results[2].Code)
	s.Equal(testMember, results[2].MemberAccount)
	s.Equal(s.units("MMK", "4"), s.playerBalance())

	history, err := s.idem.History(s.ctx, "g-1")
	s.Require().NoError(err)
	s.Equal(domain.ExternalFailed, history[0].Status)
}

func (s *SeamlessWalletServiceTestSuite) TestEmptyGroupStillReportsFailure() {
	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK", group("ghost", testGameType)), nil))
	s.Require().Len(results, 1)
	s.Equal(domain.CodeMemberNotExist, results[0].Code)

	results = s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK", group(testMember, testGameType)), nil))
	s.Empty(results)
}

func (s *SeamlessWalletServiceTestSuite) TestCancelNeedsOriginalBet() {
	s.fund(s.units("MMK", "100"))

	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group(testMember, testGameType, txn("r-1", "CANCEL", "10", "w-missing"))), nil))
	s.Equal(domain.CodeBetNotExist, results[0].Code)
	s.Equal(s.units("MMK", "100"), s.playerBalance())

	results = s.results(s.seamless.Withdraw(s.ctx, envelope(domain.OpWithdraw, "MMK",
		group(testMember, testGameType, txn("bet-1", "BET", "10", "w-9"))), nil))
	s.Require().Equal(domain.CodeSuccess, results[0].Code)
	s.Equal(s.units("MMK", "90"), s.playerBalance())

	results = s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group(testMember, testGameType, txn("r-2", "cancel", "10", "w-9"))), nil))
	s.Equal(domain.CodeSuccess, results[0].Code)
	s.Equal(s.units("MMK", "100"), s.playerBalance())

	entries := s.store.Entries()
	s.Equal(domain.GameRefund, entries[len(entries)-1].Kind)
}

func (s *SeamlessWalletServiceTestSuite) TestActionValidation() {
	s.fund(s.units("MMK", "100"))

	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group(testMember, testGameType, txn("a-1", "BET", "1", "w-1"))), nil))
	s.Equal(domain.CodeBetNotExist, results[0].Code)

	bad := txn("a-2", "WIN", "1", "w-2")
	bad.WagerStatus = "EXPLODED"
	results = s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group(testMember, testGameType, bad)), nil))
	s.Equal(domain.CodeBetNotExist, results[0].Code)

	results = s.results(s.seamless.Withdraw(s.ctx, envelope(domain.OpWithdraw, "MMK",
		group(testMember, testGameType, txn("a-3", "WIN", "1", "w-3"))), nil))
	s.Equal(domain.CodeInternalServerError, results[0].Code)
	s.Equal("Unsupported action", results[0].Message)

	results = s.results(s.seamless.Withdraw(s.ctx, envelope(domain.OpWithdraw, "MMK",
		group(testMember, testGameType, txn("", "BET", "1", "w-4"))), nil))
	s.Equal(domain.CodeInternalServerError, results[0].Code)

	s.Equal(s.units("MMK", "100"), s.playerBalance())
}

func (s *SeamlessWalletServiceTestSuite) TestGameTypeFallsBackToCatalog() {
	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group(testMember, "", txn("f-1", "WIN", "2", "w-1"))), nil))
	s.Equal(domain.CodeSuccess, results[0].Code)

	history, err := s.idem.History(s.ctx, "f-1")
	s.Require().NoError(err)
	s.Equal(testGameType, history[0].GameType)

	unknown := txn("f-2", "WIN", "2", "w-2")
	unknown.GameCode = "not-in-catalog"
	results = s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group(testMember, "", unknown)), nil))
	s.Equal(domain.CodeInternalServerError, results[0].Code)
	s.Equal("Missing game_type", results[0].Message)
	s.Equal(s.units("MMK", "2"), s.playerBalance())
}

func (s *SeamlessWalletServiceTestSuite) TestZeroAmountIsRecordedWithoutEntry() {
	entriesBefore := len(s.store.Entries())
	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK2",
		group(testMember, testGameType, txn("z-1", "WIN", "0", "w-1"))), nil))

	s.Equal(domain.CodeSuccess, results[0].Code)
	s.Equal(json.Number("0.0000"), results[0].Balance)
	s.Len(s.store.Entries(), entriesBefore)

	history, err := s.idem.History(s.ctx, "z-1")
	s.Require().NoError(err)
	s.Equal(domain.ExternalInfo, history[0].Status)
}

func (s *SeamlessWalletServiceTestSuite) TestSubUnitAmountsAreCreditedExactly() {
	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group(testMember, testGameType, txn("m-1", "WIN", "1.50", "w-1"))), nil))
	s.Equal(domain.CodeSuccess, results[0].Code)
	s.Equal(json.Number("1.50"), results[0].Balance)
	s.Equal(int64(15_000), s.playerBalance())

	results = s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK2",
		group(testMember, testGameType, txn("m-2", "WIN", "0.0005", "w-2"))), nil))
	s.Equal(domain.CodeSuccess, results[0].Code)
	s.Equal(int64(20_000), s.playerBalance())

	history, err := s.idem.History(s.ctx, "m-2")
	s.Require().NoError(err)
	s.Equal(int64(5_000), history[0].LedgerAmount)
	s.True(history[0].AfterBalance.Equal(decimal.RequireFromString("0.002")))
}

func (s *SeamlessWalletServiceTestSuite) TestAmountsFinerThanLedgerPrecisionAreRejected() {
	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK2",
		group(testMember, testGameType, txn("m-3", "WIN", "1.00004", "w-1"))), nil))
	s.Equal(domain.CodeInternalServerError, results[0].Code)
	s.Equal("Invalid amount", results[0].Message)
	s.Equal(int64(0), s.playerBalance())

	history, err := s.idem.History(s.ctx, "m-3")
	s.Require().NoError(err)
	s.Equal(domain.ExternalFailed, history[0].Status)
}

// faultyAccountRepo makes member lookups panic or fail for selected user names.
type faultyAccountRepo struct {
	portsrepo.AccountRepositoryFacade
	panics map[string]bool
	fails  map[string]bool
}

func (r *faultyAccountRepo) FindAccountByUserName(ctx context.Context, userName string) (*domain.Account, error) {
	if r.panics[userName] {
		panic("lookup exploded for " + userName)
	}
	if r.fails[userName] {
		return nil, errors.New("connection reset")
	}
	return r.AccountRepositoryFacade.FindAccountByUserName(ctx, userName)
}

func (s *SeamlessWalletServiceTestSuite) TestGroupFaultsAreIsolated() {
	repos := memory.NewRepositoryProvider(s.store)
	repos.AccountRepo = &faultyAccountRepo{
		AccountRepositoryFacade: repos.AccountRepo,
		panics:                  map[string]bool{"boom": true},
		fails:                   map[string]bool{"dberr": true},
	}
	seamless := services.NewSeamlessWalletService(repos, s.ledger, s.idem, testSecret)

	results := s.results(seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group("boom", testGameType, txn("i-1", "WIN", "1", "w-1"), txn("i-2", "WIN", "1", "w-2")),
		group("dberr", testGameType, txn("i-3", "WIN", "1", "w-3")),
		group(testMember, testGameType, txn("i-4", "WIN", "4", "w-4")),
	), nil))

	s.Require().Len(results, 4)
	for i, member := range []string{"boom", "boom", "dberr"} {
		s.Equal(member, results[i].MemberAccount)
		s.Equal(domain.CodeInternalServerError, results[i].Code)
		s.Equal("An unexpected error occurred during batch processing.", results[i].Message)
		s.Equal(json.Number("0.00"), results[i].Balance)
	}
	s.Equal(testMember, results[3].MemberAccount)
	s.Equal(domain.CodeSuccess, results[3].Code)
	s.Equal(json.Number("4.00"), results[3].Balance)
	s.Equal(s.units("MMK", "4"), s.playerBalance())

	audits := s.store.BatchAudits()
	s.Require().Len(audits, 1)
	s.Equal(domain.BatchPartialFailure, audits[0].Status)
}

func (s *SeamlessWalletServiceTestSuite) TestSuspendedMember() {
	s.Require().NoError(s.store.UpdateAccountStatus(s.ctx, s.player.ID, domain.AccountSuspended, newStepClock().Now()))
	results := s.results(s.seamless.Deposit(s.ctx, envelope(domain.OpDeposit, "MMK",
		group(testMember, testGameType, txn("p-1", "WIN", "1", "w-1"))), nil))
	s.Equal(domain.CodeInternalServerError, results[0].Code)
	s.Equal("Member suspended", results[0].Message)
}

func (s *SeamlessWalletServiceTestSuite) TestValidationFailure() {
	resp := s.seamless.Deposit(s.ctx, dto.SeamlessTransactionRequest{}, nil)
	s.Equal(domain.CodeInternalServerError, resp.Code)
	s.Equal("Validation failed", resp.Message)
	messages, ok := resp.Data.([]string)
	s.Require().True(ok)
	s.NotEmpty(messages)

	audits := s.store.BatchAudits()
	s.Require().Len(audits, 1)
	s.Equal(domain.BatchPartialFailure, audits[0].Status)
}

func (s *SeamlessWalletServiceTestSuite) TestBatchAuditKeepsRawRequest() {
	req := envelope(domain.OpDeposit, "MMK", group(testMember, testGameType, txn("au-1", "WIN", "1", "w-1")))
	raw, err := json.Marshal(map[string]any{"operator_code": testOperator, "extra": "kept"})
	s.Require().NoError(err)

	s.seamless.Deposit(s.ctx, req, raw)

	audits := s.store.BatchAudits()
	s.Require().Len(audits, 1)
	s.Equal("deposit", audits[0].Endpoint)
	s.Equal(testOperator, audits[0].OperatorCode)
	s.Equal(domain.BatchSuccess, audits[0].Status)
	s.JSONEq(string(raw), string(audits[0].Request))
	s.Contains(string(audits[0].Response), `"code":0`)
}

func (s *SeamlessWalletServiceTestSuite) TestGetBalance() {
	s.fund(s.units("IDR2", "123.45"))
	req := dto.GetBalanceRequest{
		OperatorCode: testOperator,
		Currency:     "IDR2",
		Sign:         utils.SeamlessSignature(testOperator, testRequestTime, string(domain.OpGetBalance), testSecret),
		RequestTime:  json.Number(testRequestTime),
		BatchRequests: []dto.GetBalanceItem{
			{MemberAccount: testMember, ProductCode: testProductCode},
			{MemberAccount: "ghost", ProductCode: testProductCode},
		},
	}

	results := s.results(s.seamless.GetBalance(s.ctx, req, nil))
	s.Require().Len(results, 2)
	s.Equal(domain.CodeSuccess, results[0].Code)
	s.Equal("Success", results[0].Message)
	s.Equal(json.Number("123.4500"), results[0].Balance)
	s.Empty(results[0].BeforeBalance)
	s.Equal(domain.CodeMemberNotExist, results[1].Code)
	s.Equal(json.Number("0.0000"), results[1].Balance)

	req.Sign = "bad"
	results = s.results(s.seamless.GetBalance(s.ctx, req, nil))
	s.Equal(domain.CodeInvalidSignature, results[0].Code)
	s.Equal(json.Number("0.0000"), results[0].Balance)

	s.Len(s.store.BatchAudits(), 2)
}

func TestSeamlessWalletServiceTestSuite(t *testing.T) {
	suite.Run(t, new(SeamlessWalletServiceTestSuite))
}

package services

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/SscSPs/wallet_ledger_backend/internal/apperrors"
	"github.com/SscSPs/wallet_ledger_backend/internal/core/domain"
	portsrepo "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/repositories"
	portssvc "github.com/SscSPs/wallet_ledger_backend/internal/core/ports/services"
	"github.com/SscSPs/wallet_ledger_backend/internal/dto"
	"github.com/SscSPs/wallet_ledger_backend/internal/middleware"
	"github.com/SscSPs/wallet_ledger_backend/internal/platform/metrics"
	"github.com/SscSPs/wallet_ledger_backend/internal/utils"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

const (
	sourceSeamless = "seamless"

	msgValidationFailed  = "Validation failed"
	msgInvalidCurrency   = "Invalid Currency"
	msgMemberNotFound    = "Member not found"
	msgMissingGameType   = "Missing game_type"
	msgMissingIDOrAction = "Missing transaction id or action"
	msgInvalidDeposit    = "Invalid action type or wager status for deposit"
	msgUnsupportedAction = "Unsupported action"
	msgBetNotFound       = "Original bet not found for cancellation"
	msgInvalidAmount     = "Invalid amount"
	msgMemberSuspended   = "Member suspended"
	msgZeroAmount        = "Zero amount, no balance change"
	msgGroupFailed       = "An unexpected error occurred during batch processing."

	// fallbackScale is used to render balances when the currency is unknown.
	fallbackScale = 4
)

// seamlessWalletService adapts provider webhooks onto the ledger engine.
type seamlessWalletService struct {
	BaseService
	accountRepo  portsrepo.AccountReader
	externalRepo portsrepo.ExternalTransactionReader
	gameRepo     portsrepo.GameReader
	auditRepo    portsrepo.BatchAuditWriter
	ledger       portssvc.LedgerMutatorSvc
	idempotency  portssvc.IdempotencySvc
	validate     *validator.Validate
	secretKey    string
	now          func() time.Time
}

// SeamlessServiceOption is a functional option for configuring the seamless wallet service
type SeamlessServiceOption func(*seamlessWalletService)

// WithSeamlessClock overrides the time source used for audit rows.
func WithSeamlessClock(now func() time.Time) SeamlessServiceOption {
	return func(s *seamlessWalletService) {
		s.now = now
	}
}

// NewSeamlessWalletService creates the provider reconciliation adapter.
func NewSeamlessWalletService(
	repos portsrepo.RepositoryProvider,
	ledger portssvc.LedgerMutatorSvc,
	idempotency portssvc.IdempotencySvc,
	secretKey string,
	options ...SeamlessServiceOption,
) portssvc.SeamlessWalletSvc {
	svc := &seamlessWalletService{
		accountRepo:  repos.AccountRepo,
		externalRepo: repos.ExternalTransactionRepo,
		gameRepo:     repos.GameRepo,
		auditRepo:    repos.BatchAuditRepo,
		ledger:       ledger,
		idempotency:  idempotency,
		validate:     newEnvelopeValidator(),
		secretKey:    secretKey,
		now:          func() time.Time { return time.Now().UTC() },
	}
	for _, option := range options {
		option(svc)
	}
	return svc
}

var _ portssvc.SeamlessWalletSvc = (*seamlessWalletService)(nil)

// batchEnv is the batch-level state every transaction of one call shares.
type batchEnv struct {
	op           domain.SeamlessOperation
	operatorCode string
	currencyCode string
	requestTime  *time.Time
	currency     domain.CurrencySpec
	currencyOK   bool
	signOK       bool
}

func (e batchEnv) format(balance int64) json.Number {
	if !e.currencyOK {
		return dto.FormatBalance(decimal.Zero, fallbackScale)
	}
	return dto.FormatBalance(e.currency.Report(balance), e.currency.Scale)
}

func (e batchEnv) zero() json.Number {
	return e.format(0)
}

// Deposit credits wins, refunds and bonuses.
func (s *seamlessWalletService) Deposit(ctx context.Context, req dto.SeamlessTransactionRequest, raw json.RawMessage) *dto.SeamlessResponse {
	return s.processBatch(ctx, domain.OpDeposit, req, raw)
}

// Withdraw debits bets and fees.
func (s *seamlessWalletService) Withdraw(ctx context.Context, req dto.SeamlessTransactionRequest, raw json.RawMessage) *dto.SeamlessResponse {
	return s.processBatch(ctx, domain.OpWithdraw, req, raw)
}

func (s *seamlessWalletService) newEnv(op domain.SeamlessOperation, operatorCode, currency string, requestTime json.Number, sign string) batchEnv {
	env := batchEnv{
		op:           op,
		operatorCode: operatorCode,
		currencyCode: currency,
		requestTime:  dto.EpochTime(requestTime),
		signOK:       utils.VerifySeamlessSignature(sign, operatorCode, requestTime.String(), string(op), s.secretKey),
	}
	if spec, err := domain.LookupCurrency(currency); err == nil {
		env.currency = spec
		env.currencyOK = true
	}
	return env
}

func (s *seamlessWalletService) processBatch(ctx context.Context, op domain.SeamlessOperation, req dto.SeamlessTransactionRequest, raw json.RawMessage) *dto.SeamlessResponse {
	start := time.Now()
	logger := s.GetLogger(ctx).With(slog.String("operation", string(op)), slog.String("operator_code", req.OperatorCode))
	ctx = middleware.WithLogger(ctx, logger)

	if err := s.validate.Struct(req); err != nil {
		resp := validationFailed(err)
		s.finish(ctx, op, req.OperatorCode, req, raw, resp, start)
		return resp
	}

	env := s.newEnv(op, req.OperatorCode, req.Currency, req.RequestTime, req.Sign)
	if !env.signOK {
		s.LogWarn(ctx, "Invalid seamless signature", slog.String("request_time", req.RequestTime.String()))
	}

	results := make([]dto.SeamlessResult, 0, len(req.BatchRequests))
	for _, group := range req.BatchRequests {
		results = append(results, s.processGroup(ctx, env, group)...)
	}

	resp := &dto.SeamlessResponse{Code: domain.CodeSuccess, Message: "", Data: results}
	s.finish(ctx, op, req.OperatorCode, req, raw, resp, start)
	return resp
}

// processGroup handles one member's transactions. Errors or panics inside the group fill
// its remaining results with InternalServerError and never reach sibling groups.
func (s *seamlessWalletService) processGroup(ctx context.Context, env batchEnv, group dto.SeamlessBatchRequest) (results []dto.SeamlessResult) {
	expected := len(group.Transactions)
	if expected == 0 {
		expected = 1
	}
	results = make([]dto.SeamlessResult, 0, expected)
	ctx = middleware.WithLogger(ctx, s.GetLogger(ctx).With(slog.String("member_account", group.MemberAccount)))

	defer func() {
		if r := recover(); r != nil {
			s.LogError(ctx, fmt.Errorf("panic: %v", r), "Seamless group processing panicked")
			results = fillRemaining(results, expected, env, group)
		}
	}()

	if err := s.runGroup(ctx, env, group, &results); err != nil {
		s.LogError(ctx, err, "Seamless group processing failed")
		results = fillRemaining(results, expected, env, group)
	}
	return results
}

func fillRemaining(results []dto.SeamlessResult, expected int, env batchEnv, group dto.SeamlessBatchRequest) []dto.SeamlessResult {
	for len(results) < expected {
		results = append(results, failureResult(group, env.zero(), domain.CodeInternalServerError, msgGroupFailed))
	}
	return results
}

func (s *seamlessWalletService) runGroup(ctx context.Context, env batchEnv, group dto.SeamlessBatchRequest, results *[]dto.SeamlessResult) error {
	// Batch-level failures short-circuit every transaction of the group.
	groupFailure := func(code domain.SeamlessCode, msg string, record bool) {
		if len(group.Transactions) == 0 {
			*results = append(*results, failureResult(group, env.zero(), code, msg))
			return
		}
		for _, tx := range group.Transactions {
			*results = append(*results, failureResult(group, env.zero(), code, msg))
			if record && tx.ID != "" {
				rec := s.baseRecord(env, group, tx, normalizeAction(tx.Action), nil, group.GameType, "")
				s.recordFailure(ctx, rec, domain.ExternalFailed, msg, 0, env)
			}
		}
	}

	if !env.signOK {
		groupFailure(domain.CodeInvalidSignature, domain.CodeInvalidSignature.Message(), false)
		return nil
	}
	if !env.currencyOK {
		s.LogWarn(ctx, "Invalid currency for batch", slog.String("currency", env.currencyCode))
		groupFailure(domain.CodeInternalServerError, msgInvalidCurrency, true)
		return nil
	}

	member, err := s.accountRepo.FindAccountByUserName(ctx, group.MemberAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			s.LogWarn(ctx, "Member not found")
			groupFailure(domain.CodeMemberNotExist, msgMemberNotFound, true)
			return nil
		}
		return fmt.Errorf("failed to resolve member %s: %w", group.MemberAccount, err)
	}

	providerName, err := s.gameRepo.FindProviderNameByProductCode(ctx, group.ProductCode)
	if err != nil && !errors.Is(err, apperrors.ErrNotFound) {
		s.LogWarn(ctx, "Failed to resolve provider name", slog.Int64("product_code", group.ProductCode), slog.String("error", err.Error()))
	}

	balance := member.Balance
	for _, tx := range group.Transactions {
		res, after := s.processTransaction(ctx, env, group, member, providerName, tx, balance)
		balance = after
		*results = append(*results, res)
	}
	return nil
}

// processTransaction applies one transaction and returns its result together with the
// member balance the next transaction of the group starts from.
func (s *seamlessWalletService) processTransaction(ctx context.Context, env batchEnv, group dto.SeamlessBatchRequest, member *domain.Account, providerName string, tx dto.SeamlessTransaction, balance int64) (dto.SeamlessResult, int64) {
	txID := tx.ID.String()
	action := normalizeAction(tx.Action)
	ctx = middleware.WithLogger(ctx, s.GetLogger(ctx).With(slog.String("transaction_id", txID), slog.String("action", action)))

	current := env.format(balance)
	fail := func(code domain.SeamlessCode, status domain.ExternalTransactionStatus, msg string, rec *domain.ExternalTransactionRecord) (dto.SeamlessResult, int64) {
		if rec != nil {
			s.recordFailure(ctx, *rec, status, msg, balance, env)
		}
		return failureResult(group, current, code, msg), balance
	}

	if txID == "" || action == "" {
		s.LogWarn(ctx, "Transaction without id or action")
		return fail(domain.CodeInternalServerError, domain.ExternalFailed, msgMissingIDOrAction, nil)
	}

	gameType, gameName, err := s.resolveGame(ctx, group, tx)
	rec := s.baseRecord(env, group, tx, action, member, gameType, gameName)
	rec.ProviderName = providerName
	if err != nil {
		s.LogError(ctx, err, "Failed to resolve game type")
		return fail(domain.CodeInternalServerError, domain.ExternalFailed, domain.CodeInternalServerError.Message(), &rec)
	}
	if gameType == "" {
		s.LogWarn(ctx, "Missing game_type from batch and catalog", slog.String("game_code", tx.GameCode))
		return fail(domain.CodeInternalServerError, domain.ExternalFailed, msgMissingGameType, &rec)
	}

	release, claimed, err := s.idempotency.Claim(ctx, txID)
	if err != nil {
		s.LogError(ctx, err, "Failed to claim transaction")
		return fail(domain.CodeInternalServerError, domain.ExternalFailed, domain.CodeInternalServerError.Message(), &rec)
	}
	defer release()
	if !claimed {
		s.LogWarn(ctx, "Transaction is being processed by another request")
		return fail(domain.CodeDuplicateTransaction, domain.ExternalDuplicate, domain.CodeDuplicateTransaction.Message(), &rec)
	}

	duplicate, err := s.idempotency.IsDuplicate(ctx, txID)
	if err != nil {
		s.LogError(ctx, err, "Failed to check for duplicate transaction")
		return fail(domain.CodeInternalServerError, domain.ExternalFailed, domain.CodeInternalServerError.Message(), &rec)
	}
	if duplicate {
		s.LogWarn(ctx, "Duplicate transaction")
		return fail(domain.CodeDuplicateTransaction, domain.ExternalDuplicate, domain.CodeDuplicateTransaction.Message(), &rec)
	}

	kind := domain.GameLoss
	switch env.op {
	case domain.OpDeposit:
		if !domain.IsDepositAction(action) || !domain.IsValidWagerStatus(tx.WagerStatus) {
			s.LogWarn(ctx, "Invalid action or wager status for deposit", slog.String("wager_status", tx.WagerStatus))
			return fail(domain.CodeBetNotExist, domain.ExternalFailed, msgInvalidDeposit, &rec)
		}
		kind = domain.GameWin
		if action == domain.ActionCancel {
			kind = domain.GameRefund
			if found, err := s.hasOriginalBet(ctx, member.UserName, tx.WagerKey()); err != nil {
				s.LogError(ctx, err, "Failed to look up original bet")
				return fail(domain.CodeInternalServerError, domain.ExternalFailed, domain.CodeInternalServerError.Message(), &rec)
			} else if !found {
				s.LogWarn(ctx, "Original bet not found for cancel", slog.String("wager_code", tx.WagerKey()))
				return fail(domain.CodeBetNotExist, domain.ExternalFailed, msgBetNotFound, &rec)
			}
		}
	case domain.OpWithdraw:
		if !domain.IsWithdrawAction(action) {
			s.LogWarn(ctx, "Unsupported withdraw action")
			return fail(domain.CodeInternalServerError, domain.ExternalFailed, msgUnsupportedAction, &rec)
		}
	}

	amount, err := env.currency.ToLedger(tx.Amount)
	if err != nil {
		s.LogWarn(ctx, "Invalid transaction amount", slog.String("amount", tx.Amount.String()), slog.String("error", err.Error()))
		return fail(domain.CodeInternalServerError, domain.ExternalFailed, msgInvalidAmount, &rec)
	}
	rec.LedgerAmount = amount
	if amount == 0 {
		s.recordFailure(ctx, rec, domain.ExternalInfo, msgZeroAmount, balance, env)
		return dto.SeamlessResult{
			MemberAccount: group.MemberAccount,
			ProductCode:   group.ProductCode,
			BeforeBalance: current,
			Balance:       current,
			Code:          domain.CodeSuccess,
			Message:       "",
		}, balance
	}

	meta := domain.Metadata{
		domain.MetaSource:      sourceSeamless,
		domain.MetaAction:      action,
		domain.MetaWagerCode:   tx.WagerKey(),
		domain.MetaProductCode: group.ProductCode,
		domain.MetaCurrency:    env.currencyCode,
		domain.MetaGameType:    gameType,
	}
	mutation := s.ledger.Deposit
	if env.op == domain.OpWithdraw {
		mutation = s.ledger.Withdraw
	}
	change, err := mutation(ctx, member.ID, amount, kind, meta, portssvc.WithExternalRecord(rec, env.currency.ToProvider))
	if err != nil {
		return s.ledgerFailure(ctx, err, fail, &rec)
	}

	s.LogInfo(ctx, "Seamless transaction applied",
		slog.Int64("amount", amount),
		slog.Int64("balance_before", change.BalanceBefore),
		slog.Int64("balance_after", change.BalanceAfter))
	return dto.SeamlessResult{
		MemberAccount: group.MemberAccount,
		ProductCode:   group.ProductCode,
		BeforeBalance: env.format(change.BalanceBefore),
		Balance:       env.format(change.BalanceAfter),
		Code:          domain.CodeSuccess,
		Message:       "",
	}, change.BalanceAfter
}

type failFunc func(domain.SeamlessCode, domain.ExternalTransactionStatus, string, *domain.ExternalTransactionRecord) (dto.SeamlessResult, int64)

func (s *seamlessWalletService) ledgerFailure(ctx context.Context, err error, fail failFunc, rec *domain.ExternalTransactionRecord) (dto.SeamlessResult, int64) {
	switch {
	case errors.Is(err, apperrors.ErrInsufficientBalance):
		return fail(domain.CodeInsufficientBalance, domain.ExternalFailed, domain.CodeInsufficientBalance.Message(), rec)
	case errors.Is(err, apperrors.ErrDuplicate):
		return fail(domain.CodeDuplicateTransaction, domain.ExternalDuplicate, domain.CodeDuplicateTransaction.Message(), rec)
	case errors.Is(err, apperrors.ErrAccountSuspended):
		return fail(domain.CodeInternalServerError, domain.ExternalFailed, msgMemberSuspended, rec)
	}
	s.LogError(ctx, err, "Ledger mutation failed for seamless transaction")
	return fail(domain.CodeInternalServerError, domain.ExternalFailed, domain.CodeInternalServerError.Message(), rec)
}

// resolveGame returns the game type from the batch, falling back to the catalog.
func (s *seamlessWalletService) resolveGame(ctx context.Context, group dto.SeamlessBatchRequest, tx dto.SeamlessTransaction) (string, string, error) {
	gameType := group.GameType
	if tx.GameCode == "" {
		return gameType, "", nil
	}
	game, err := s.gameRepo.FindGameByCode(ctx, tx.GameCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return gameType, "", nil
		}
		if gameType != "" {
			return gameType, "", nil
		}
		return "", "", err
	}
	if gameType == "" {
		gameType = game.GameType
	}
	return gameType, game.GameName, nil
}

func (s *seamlessWalletService) hasOriginalBet(ctx context.Context, memberAccount, wagerCode string) (bool, error) {
	if wagerCode == "" {
		return false, nil
	}
	_, err := s.externalRepo.FindCompletedByWager(ctx, memberAccount, wagerCode)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			return false, nil
		}
		return false, err
	}
	return true, nil
}

func (s *seamlessWalletService) baseRecord(env batchEnv, group dto.SeamlessBatchRequest, tx dto.SeamlessTransaction, action string, member *domain.Account, gameType, gameName string) domain.ExternalTransactionRecord {
	rec := domain.ExternalTransactionRecord{
		TransactionID:     tx.ID.String(),
		MemberAccount:     group.MemberAccount,
		ProductCode:       group.ProductCode,
		GameType:          gameType,
		GameCode:          tx.GameCode,
		GameName:          gameName,
		ChannelCode:       tx.ChannelCode,
		OperatorCode:      env.operatorCode,
		RequestTime:       env.requestTime,
		Currency:          env.currencyCode,
		Action:            action,
		Amount:            tx.Amount,
		ValidBetAmount:    tx.ValidBetAmount,
		BetAmount:         tx.BetAmount,
		PrizeAmount:       tx.PrizeAmount,
		TipAmount:         tx.TipAmount,
		WagerCode:         tx.WagerKey(),
		WagerStatus:       tx.WagerStatus,
		RoundID:           tx.RoundID.String(),
		SettleAt:          tx.SettleTime(),
		CreatedAtProvider: dto.EpochTime(tx.CreatedAt),
	}
	if member != nil {
		id := member.ID
		rec.AccountID = &id
		rec.AgentID = member.ParentID
	}
	if payload, err := json.Marshal(tx); err == nil {
		rec.Payload = payload
	}
	return rec
}

// recordFailure appends a non-completed attempt row. Recording problems are logged and
// never change the result sent to the provider.
func (s *seamlessWalletService) recordFailure(ctx context.Context, rec domain.ExternalTransactionRecord, status domain.ExternalTransactionStatus, msg string, balance int64, env batchEnv) {
	rec.Status = status
	rec.ErrorMessage = msg
	if env.currencyOK {
		rec.BeforeBalance = env.currency.ToProvider(balance)
		rec.AfterBalance = rec.BeforeBalance
	}
	rec.CreatedAt = s.now()
	if _, err := s.idempotency.RecordAttempt(ctx, rec); err != nil {
		s.LogError(ctx, err, "Failed to record seamless attempt", slog.String("status", string(status)))
	}
}

func normalizeAction(action string) string {
	return strings.ToUpper(strings.TrimSpace(action))
}

func failureResult(group dto.SeamlessBatchRequest, balance json.Number, code domain.SeamlessCode, msg string) dto.SeamlessResult {
	return dto.SeamlessResult{
		MemberAccount: group.MemberAccount,
		ProductCode:   group.ProductCode,
		BeforeBalance: balance,
		Balance:       balance,
		Code:          code,
		Message:       msg,
	}
}

func validationFailed(err error) *dto.SeamlessResponse {
	return &dto.SeamlessResponse{
		Code:    domain.CodeInternalServerError,
		Message: msgValidationFailed,
		Data:    validationMessages(err),
	}
}

// ValidationFailedResponse builds the response sent when a webhook body cannot be decoded.
func ValidationFailedResponse(err error) *dto.SeamlessResponse {
	return validationFailed(err)
}

// GetBalance reports the current balance of each requested member.
func (s *seamlessWalletService) GetBalance(ctx context.Context, req dto.GetBalanceRequest, raw json.RawMessage) *dto.SeamlessResponse {
	start := time.Now()
	op := domain.OpGetBalance
	ctx = middleware.WithLogger(ctx, s.GetLogger(ctx).With(slog.String("operation", string(op)), slog.String("operator_code", req.OperatorCode)))

	if err := s.validate.Struct(req); err != nil {
		resp := validationFailed(err)
		s.finish(ctx, op, req.OperatorCode, req, raw, resp, start)
		return resp
	}

	env := s.newEnv(op, req.OperatorCode, req.Currency, req.RequestTime, req.Sign)
	results := make([]dto.SeamlessResult, 0, len(req.BatchRequests))
	for _, item := range req.BatchRequests {
		results = append(results, s.balanceOf(ctx, env, item))
	}

	resp := &dto.SeamlessResponse{Code: domain.CodeSuccess, Message: "", Data: results}
	s.finish(ctx, op, req.OperatorCode, req, raw, resp, start)
	return resp
}

func (s *seamlessWalletService) balanceOf(ctx context.Context, env batchEnv, item dto.GetBalanceItem) dto.SeamlessResult {
	res := dto.SeamlessResult{
		MemberAccount: item.MemberAccount,
		ProductCode:   item.ProductCode,
		Balance:       env.zero(),
	}
	switch {
	case !env.signOK:
		res.Code, res.Message = domain.CodeInvalidSignature, domain.CodeInvalidSignature.Message()
		return res
	case !env.currencyOK:
		res.Code, res.Message = domain.CodeInternalServerError, msgInvalidCurrency
		return res
	}

	member, err := s.accountRepo.FindAccountByUserName(ctx, item.MemberAccount)
	if err != nil {
		if errors.Is(err, apperrors.ErrNotFound) {
			res.Code, res.Message = domain.CodeMemberNotExist, msgMemberNotFound
			return res
		}
		s.LogError(ctx, err, "Failed to load member balance", slog.String("member_account", item.MemberAccount))
		res.Code, res.Message = domain.CodeInternalServerError, domain.CodeInternalServerError.Message()
		return res
	}

	res.Balance = env.format(member.Balance)
	res.Code, res.Message = domain.CodeSuccess, domain.CodeSuccess.Message()
	return res
}

// finish writes the batch audit row and the batch metrics. Audit failures are logged only.
func (s *seamlessWalletService) finish(ctx context.Context, op domain.SeamlessOperation, operatorCode string, req any, raw json.RawMessage, resp *dto.SeamlessResponse, start time.Time) {
	if results, ok := resp.Data.([]dto.SeamlessResult); ok {
		for _, r := range results {
			metrics.ObserveSeamlessResult(string(op), int(r.Code))
		}
	} else {
		metrics.ObserveSeamlessResult(string(op), int(resp.Code))
	}
	metrics.ObserveSeamlessBatch(string(op), time.Since(start))

	status := domain.BatchSuccess
	if resp.HasFailures() {
		status = domain.BatchPartialFailure
	}

	request := raw
	if len(request) == 0 || !json.Valid(request) {
		encoded, err := json.Marshal(req)
		if err != nil {
			s.LogError(ctx, err, "Failed to encode request for audit")
		}
		request = encoded
	}
	response, err := json.Marshal(resp)
	if err != nil {
		s.LogError(ctx, err, "Failed to encode response for audit")
	}

	record := domain.BatchAuditRecord{
		Endpoint:     string(op),
		OperatorCode: operatorCode,
		Request:      request,
		Response:     response,
		Status:       status,
		CreatedAt:    s.now(),
	}
	if err := s.auditRepo.SaveBatchAudit(ctx, record); err != nil {
		s.LogError(ctx, err, "Failed to write batch audit")
	}
}

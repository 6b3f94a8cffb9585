package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/go-account-keeper/internal/logger"
	"github.com/MKhiriev/go-account-keeper/models"
	"github.com/jackc/pgerrcode"
)

// accountRepository is the Postgres implementation of [AccountRepository].
type accountRepository struct {
	db     *DB
	logger *logger.Logger
}

func NewAccountRepository(db *DB, logger *logger.Logger) AccountRepository {
	logger.Debug().Msg("creating account repository")
	return &accountRepository{
		db:     db,
		logger: logger,
	}
}

func (r *accountRepository) List(ctx context.Context) ([]models.Account, error) {
	log := logger.FromContext(ctx)

	query, args, err := listAccountsQuery()
	if err != nil {
		return nil, buildErr(err)
	}

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.List").Msg("error executing query")
		return nil, r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}
	defer rows.Close()

	accounts := make([]models.Account, 0)
	for rows.Next() {
		account, scanErr := scanAccount(rows)
		if scanErr != nil {
			log.Err(scanErr).Str("func", "*accountRepository.List").Msg("error scanning row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRows, scanErr)
		}
		accounts = append(accounts, account)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return accounts, nil
}

func (r *accountRepository) FindByID(ctx context.Context, id int64) (models.Account, error) {
	query, args, err := findAccountByIDQuery(id)
	if err != nil {
		return models.Account{}, buildErr(err)
	}

	account, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Account{}, r.rowError(ctx, "*accountRepository.FindByID", err)
	}

	return account, nil
}

func (r *accountRepository) FindByEmail(ctx context.Context, email string) (models.Account, error) {
	query, args, err := findAccountByEmailQuery(email)
	if err != nil {
		return models.Account{}, buildErr(err)
	}

	var (
		account   models.Account
		updatedAt sql.NullTime
	)
	err = r.db.QueryRowContext(ctx, query, args...).
		Scan(&account.ID, &account.Email, &account.Name, &account.CreatedAt, &updatedAt, &account.Password)
	if err != nil {
		return models.Account{}, r.rowError(ctx, "*accountRepository.FindByEmail", err)
	}
	account.UpdatedAt = updatedAt.Time

	return account, nil
}

func (r *accountRepository) Create(ctx context.Context, account models.Account) (models.Account, error) {
	query, args, err := createAccountQuery(account)
	if err != nil {
		return models.Account{}, buildErr(err)
	}

	created, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Account{}, r.rowError(ctx, "*accountRepository.Create", err)
	}

	return created, nil
}

func (r *accountRepository) Update(ctx context.Context, account models.Account) (models.Account, error) {
	query, args, err := updateAccountQuery(account)
	if err != nil {
		return models.Account{}, buildErr(err)
	}

	updated, err := scanAccount(r.db.QueryRowContext(ctx, query, args...))
	if err != nil {
		return models.Account{}, r.rowError(ctx, "*accountRepository.Update", err)
	}

	return updated, nil
}

func (r *accountRepository) Delete(ctx context.Context, id int64) error {
	log := logger.FromContext(ctx)

	query, args, err := deleteAccountQuery(id)
	if err != nil {
		return buildErr(err)
	}

	result, err := r.db.ExecContext(ctx, query, args...)
	if err != nil {
		log.Err(err).Str("func", "*accountRepository.Delete").Msg("error executing statement")
		return r.classify(fmt.Errorf("%w: %w", ErrExecutingQuery, err))
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	if affected == 0 {
		return ErrAccountNotFound
	}

	return nil
}

// rowError maps a QueryRow/Scan failure onto the package sentinels.
func (r *accountRepository) rowError(ctx context.Context, fn string, err error) error {
	if errors.Is(err, sql.ErrNoRows) {
		return ErrAccountNotFound
	}

	logger.FromContext(ctx).Err(err).Str("func", fn).Msg("database error")

	switch postgresError(err) {
	case pgerrcode.UniqueViolation:
		return ErrEmailAlreadyExists
	case pgerrcode.NoDataFound:
		return ErrAccountNotFound
	default:
		return r.classify(fmt.Errorf("unexpected DB error: %w", err))
	}
}

// classify tags retryable failures with ErrTransient.
func (r *accountRepository) classify(err error) error {
	if r.db.errorClassificator != nil && r.db.errorClassificator.Classify(err) == Retryable {
		return fmt.Errorf("%w: %w", ErrTransient, err)
	}
	return err
}

type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (models.Account, error) {
	var (
		account   models.Account
		updatedAt sql.NullTime
	)

	if err := row.Scan(&account.ID, &account.Email, &account.Name, &account.CreatedAt, &updatedAt); err != nil {
		return models.Account{}, err
	}
	account.UpdatedAt = updatedAt.Time

	return account, nil
}

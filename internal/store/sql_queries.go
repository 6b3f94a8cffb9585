package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"

	"github.com/MKhiriev/go-account-keeper/models"
)

var psql = sq.StatementBuilder.PlaceholderFormat(sq.Dollar)

var accountColumns = []string{"id", "email", "name", "created_at", "updated_at"}

const accountReturning = "RETURNING id, email, name, created_at, updated_at"

func listAccountsQuery() (string, []any, error) {
	return psql.Select(accountColumns...).
		From(models.Account{}.TableName()).
		OrderBy("id").
		ToSql()
}

func findAccountByIDQuery(id int64) (string, []any, error) {
	return psql.Select(accountColumns...).
		From(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func findAccountByEmailQuery(email string) (string, []any, error) {
	return psql.Select("id", "email", "name", "created_at", "updated_at", "password_hash").
		From(models.Account{}.TableName()).
		Where(sq.Eq{"email": email}).
		ToSql()
}

func createAccountQuery(account models.Account) (string, []any, error) {
	return psql.Insert(models.Account{}.TableName()).
		Columns("email", "name", "password_hash").
		Values(account.Email, account.Name, account.Password).
		Suffix(accountReturning).
		ToSql()
}

func updateAccountQuery(account models.Account) (string, []any, error) {
	builder := psql.Update(models.Account{}.TableName()).
		Set("email", account.Email).
		Set("name", account.Name).
		Set("updated_at", sq.Expr("NOW()"))

	if account.Password != "" {
		builder = builder.Set("password_hash", account.Password)
	}

	return builder.
		Where(sq.Eq{"id": account.ID}).
		Suffix(accountReturning).
		ToSql()
}

func deleteAccountQuery(id int64) (string, []any, error) {
	return psql.Delete(models.Account{}.TableName()).
		Where(sq.Eq{"id": id}).
		ToSql()
}

func buildErr(err error) error {
	return fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
}

const (
	saveSessionToken = `INSERT INTO session (id, token, updated_at)
		VALUES (1, ?, CURRENT_TIMESTAMP)
		ON CONFLICT(id) DO UPDATE SET token = excluded.token, updated_at = excluded.updated_at;`

	loadSessionToken = `SELECT token FROM session WHERE id = 1;`

	clearSession = `DELETE FROM session;`
)

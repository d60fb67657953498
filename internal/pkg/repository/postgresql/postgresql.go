// Package postgresql owns the bun database handle plus the request-scoped
// helpers (claims lookup, struct validation, soft delete) every repository
// embeds.
package postgresql

import (
	"context"
	"database/sql"
	"fmt"
	"net/http"
	"reflect"
	"strings"
	"time"

	"hrmis/backend/foundation/web"
	"hrmis/backend/internal/auth"

	"github.com/pkg/errors"
	"github.com/uptrace/bun"
	"github.com/uptrace/bun/dialect/pgdialect"
	"github.com/uptrace/bun/driver/pgdriver"
	"github.com/uptrace/bun/extra/bundebug"
)

type Database struct {
	*bun.DB
}

// NewDatabase opens the postgres connection and attaches the bun query hook.
func NewDatabase(username, password, host, port, name string, disableTLS bool) *Database {
	sslMode := "require"
	if disableTLS {
		sslMode = "disable"
	}

	dsn := fmt.Sprintf("postgres://%s:%s@%s:%s/%s?sslmode=%s",
		username, password, host, port, name, sslMode)

	sqlDB := sql.OpenDB(pgdriver.NewConnector(pgdriver.WithDSN(dsn)))

	db := bun.NewDB(sqlDB, pgdialect.New())
	db.AddQueryHook(bundebug.NewQueryHook(bundebug.WithEnabled(false), bundebug.FromEnv("BUNDEBUG")))

	return &Database{DB: db}
}

// CheckClaims pulls the authenticated claims out of the context. Roles listed
// in deniedRoles are rejected even when the route middleware let them through
// (kiosk accounts reaching admin data, for example).
func (d Database) CheckClaims(ctx context.Context, deniedRoles ...string) (auth.Claims, error) {
	claims, ok := ctx.Value(auth.Key).(auth.Claims)
	if !ok {
		return auth.Claims{}, web.NewRequestError(errors.New("claims missing from context"), http.StatusUnauthorized)
	}

	if claims.Authorized(deniedRoles...) {
		return auth.Claims{}, web.NewRequestError(errors.New("attempted action is not allowed"), http.StatusUnauthorized)
	}

	return claims, nil
}

// ValidateStruct checks that the named fields of request are present
// (non-nil pointers, non-zero values).
func (d Database) ValidateStruct(request interface{}, requiredFields ...string) error {
	v := reflect.ValueOf(request)
	for v.Kind() == reflect.Ptr {
		if v.IsNil() {
			return web.NewRequestError(errors.New("validating nil request"), http.StatusBadRequest)
		}
		v = v.Elem()
	}

	var missing []string
	for _, name := range requiredFields {
		f := v.FieldByName(name)
		if !f.IsValid() {
			continue
		}
		if f.Kind() == reflect.Ptr && f.IsNil() {
			missing = append(missing, name)
			continue
		}
		if f.Kind() != reflect.Ptr && f.IsZero() {
			missing = append(missing, name)
		}
	}

	if len(missing) > 0 {
		return web.NewRequestError(
			errors.Errorf("required fields are missing: %s", strings.Join(missing, ", ")),
			http.StatusBadRequest)
	}

	return nil
}

// DeleteRow soft-deletes by id, stamping the deleting user from the claims.
func (d Database) DeleteRow(ctx context.Context, table string, id int) error {
	claims, err := d.CheckClaims(ctx)
	if err != nil {
		return err
	}

	q := d.NewUpdate().Table(table).Where("deleted_at IS NULL AND id = ?", id)
	q.Set("deleted_at = ?", time.Now())
	q.Set("deleted_by = ?", claims.UserId)

	result, err := q.Exec(ctx)
	if err != nil {
		return web.NewRequestError(errors.Wrapf(err, "deleting from %s", table), http.StatusBadRequest)
	}

	affected, err := result.RowsAffected()
	if err == nil && affected == 0 {
		return web.NewRequestError(errors.Errorf("row not found in %s", table), http.StatusNotFound)
	}

	return nil
}

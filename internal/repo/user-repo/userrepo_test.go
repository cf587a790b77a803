package userrepo

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/pashagolub/pgxmock/v3"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/vkarpale/wagerhall/internal/domain"
)

func NewMock(t *testing.T) (*Repository, pgxmock.PgxPoolIface) {
	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	t.Cleanup(mockDB.Close)
	return New(mockDB), mockDB
}

func userRows(id string, balance decimal.Decimal) *pgxmock.Rows {
	now := time.Now()
	return pgxmock.NewRows([]string{
		"id", "username", "email", "password_hash", "balance", "role", "is_verified", "last_login_at", "created_at",
	}).AddRow(id, "alice", "alice@example.com", "hashed", balance, domain.RoleUser, false, (*time.Time)(nil), now)
}

func TestRepository_Create(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		user      *domain.User
		mockSetup func()
		expectErr bool
	}{
		{
			name: "Defaults the role to user",
			user: &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hashed"},
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "alice@example.com", "hashed", domain.RoleUser).
					WillReturnRows(userRows("u1", decimal.Zero))
			},
		},
		{
			name: "Keeps an explicit role",
			user: &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hashed", Role: domain.RoleAdmin},
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "alice@example.com", "hashed", domain.RoleAdmin).
					WillReturnRows(userRows("u1", decimal.Zero))
			},
		},
		{
			name: "Database error",
			user: &domain.User{Username: "alice", Email: "alice@example.com", PasswordHash: "hashed"},
			mockSetup: func() {
				mock.ExpectQuery(`INSERT INTO users`).
					WithArgs("alice", "alice@example.com", "hashed", domain.RoleUser).
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.Create(context.Background(), tt.user)
			if tt.expectErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "u1", user.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_FindByID(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		expectNil bool
		expectErr bool
	}{
		{
			name: "Existing account",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
					WithArgs("u1").
					WillReturnRows(userRows("u1", decimal.NewFromInt(100)))
			},
		},
		{
			name: "Missing account returns nil",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
					WithArgs("u1").
					WillReturnError(pgx.ErrNoRows)
			},
			expectNil: true,
		},
		{
			name: "Database error",
			mockSetup: func() {
				mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1`).
					WithArgs("u1").
					WillReturnError(errors.New("database error"))
			},
			expectErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.FindByID(context.Background(), "u1")
			if tt.expectErr {
				assert.Error(t, err)
			} else if tt.expectNil {
				assert.NoError(t, err)
				assert.Nil(t, user)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "u1", user.ID)
				assert.True(t, user.Balance.Equal(decimal.NewFromInt(100)))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_GetForUpdate(t *testing.T) {
	repo, mock := NewMock(t)

	mock.ExpectQuery(`SELECT (.+) FROM users WHERE id = \$1 FOR UPDATE`).
		WithArgs("u1").
		WillReturnRows(userRows("u1", decimal.NewFromInt(100)))

	user, err := repo.GetForUpdate(context.Background(), "u1")
	assert.NoError(t, err)
	assert.Equal(t, "u1", user.ID)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_AdjustBalance(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		delta     decimal.Decimal
		mockSetup func()
		expected  decimal.Decimal
		wantErr   error
	}{
		{
			name:  "Credit returns the new balance",
			delta: decimal.NewFromInt(50),
			mockSetup: func() {
				mock.ExpectQuery(`UPDATE users\s+SET balance = balance \+ \$1\s+WHERE id = \$2\s+RETURNING balance`).
					WithArgs(decimal.NewFromInt(50), "u1").
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(decimal.NewFromInt(150)))
			},
			expected: decimal.NewFromInt(150),
		},
		{
			name:  "Debit is a negative delta",
			delta: decimal.NewFromInt(-30),
			mockSetup: func() {
				mock.ExpectQuery(`UPDATE users\s+SET balance = balance \+ \$1\s+WHERE id = \$2\s+RETURNING balance`).
					WithArgs(decimal.NewFromInt(-30), "u1").
					WillReturnRows(pgxmock.NewRows([]string{"balance"}).AddRow(decimal.NewFromInt(70)))
			},
			expected: decimal.NewFromInt(70),
		},
		{
			name:  "Missing account",
			delta: decimal.NewFromInt(50),
			mockSetup: func() {
				mock.ExpectQuery(`UPDATE users\s+SET balance = balance \+ \$1\s+WHERE id = \$2\s+RETURNING balance`).
					WithArgs(decimal.NewFromInt(50), "u1").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			balance, err := repo.AdjustBalance(context.Background(), "u1", tt.delta)
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.True(t, balance.Equal(tt.expected))
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

func TestRepository_UpdateLastLogin(t *testing.T) {
	repo, mock := NewMock(t)
	at := time.Now()

	mock.ExpectExec(`UPDATE users SET last_login_at = \$1 WHERE id = \$2`).
		WithArgs(at, "u1").
		WillReturnResult(pgxmock.NewResult("UPDATE", 1))

	assert.NoError(t, repo.UpdateLastLogin(context.Background(), "u1", at))
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRepository_UpdateProfile(t *testing.T) {
	repo, mock := NewMock(t)

	tests := []struct {
		name      string
		mockSetup func()
		wantErr   error
	}{
		{
			name: "Updates and returns the account",
			mockSetup: func() {
				mock.ExpectQuery(`UPDATE users\s+SET username = \$1, email = \$2\s+WHERE id = \$3`).
					WithArgs("alice2", "alice2@example.com", "u1").
					WillReturnRows(userRows("u1", decimal.NewFromInt(100)))
			},
		},
		{
			name: "Missing account",
			mockSetup: func() {
				mock.ExpectQuery(`UPDATE users\s+SET username = \$1, email = \$2\s+WHERE id = \$3`).
					WithArgs("alice2", "alice2@example.com", "u1").
					WillReturnError(pgx.ErrNoRows)
			},
			wantErr: ErrNotFound,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.mockSetup()
			user, err := repo.UpdateProfile(context.Background(), "u1", "alice2", "alice2@example.com")
			if tt.wantErr != nil {
				assert.ErrorIs(t, err, tt.wantErr)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, "u1", user.ID)
			}
			assert.NoError(t, mock.ExpectationsWereMet())
		})
	}
}

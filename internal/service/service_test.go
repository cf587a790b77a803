package service

import (
	"testing"

	"github.com/pashagolub/pgxmock/v3"
	"github.com/stretchr/testify/assert"
	gomock "go.uber.org/mock/gomock"

	"github.com/vkarpale/wagerhall/internal/bonusqueue"
	"github.com/vkarpale/wagerhall/internal/cache"
	"github.com/vkarpale/wagerhall/internal/gateway"
	"github.com/vkarpale/wagerhall/internal/pg"
	"github.com/vkarpale/wagerhall/internal/repo"
	"github.com/vkarpale/wagerhall/pkg/clients"
)

func TestNew(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockDB, err := pgxmock.NewPool()
	assert.NoError(t, err)
	defer mockDB.Close()

	repos := repo.New(mockDB)
	txManager := pg.NewMockTXManager(ctrl)
	gw := gateway.New("https://api.razorpay.test", "key", "secret", clients.NewHTTPClient())
	redis := cache.NewWithClient(nil)
	queue := bonusqueue.NewQueue(16)

	services := New(repos, txManager, gw, redis, queue)

	assert.NotNil(t, services.AuthService)
	assert.NotNil(t, services.BetService)
	assert.NotNil(t, services.PaymentService)
	assert.NotNil(t, services.BonusService)
}

package mirror_sync

import (
	"context"
	"time"

	"github.com/Skllit/GreenSource-v2/pkg/logger"
)

type Service interface {
	SyncPending(ctx context.Context) (int64, error)
}

type MirrorSync struct {
	log      logger.Logger
	service  Service
	interval time.Duration
}

func NewMirrorSync(log logger.Logger, service Service, interval time.Duration) *MirrorSync {
	return &MirrorSync{
		log:      log,
		service:  service,
		interval: interval,
	}
}

func (m *MirrorSync) TTL() time.Duration {
	return m.interval
}

func (m *MirrorSync) Do(ctx context.Context) error {
	ctxWithTimeout, cancel := context.WithTimeout(ctx, m.interval)
	defer cancel()

	synced, err := m.service.SyncPending(ctxWithTimeout)

	if synced > 0 {
		m.log.With(
			logger.NewField("synced_orders", synced),
		).Info("order mirror sync")
	}

	return err
}

func (m *MirrorSync) Info() string {
	return "order mirror sync"
}

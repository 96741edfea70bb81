package ws_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bvanacker/bestelportaal-api/internal/domain/entity"
	"github.com/bvanacker/bestelportaal-api/internal/interfaces/ws"
	"github.com/bvanacker/bestelportaal-api/pkg/logger"
)

type stubUserRepo struct{}

func (stubUserRepo) GetByID(int64) (*entity.User, error)           { return nil, nil }
func (stubUserRepo) GetByEmail(string) (*entity.User, error)       { return nil, nil }
func (stubUserRepo) GetByUsername(string) (*entity.User, error)    { return nil, nil }
func (stubUserRepo) Update(*entity.User) error                     { return nil }
func (stubUserRepo) CompanyIDForUser(int64, string) (int64, error) { return 0, nil }
func (stubUserRepo) FirstBuyerByCompany(int64) (int64, error)      { return 0, nil }
func (stubUserRepo) SuppliersByCompany(int64) ([]*entity.User, error) {
	return nil, nil
}

func TestRelay_NotifyUserDeliversPopup(t *testing.T) {
	registry := ws.NewRegistry()
	relay := ws.NewRelay(registry, stubUserRepo{}, logger.New(logger.Config{Env: "test", Level: "error"}))

	conn := &stubConn{}
	registry.Add(7, conn)

	relay.NotifyUser(7, "TechHub Belgium heeft een betaling verzocht voor bestelling 1")

	require.Len(t, conn.frames, 1)
	msg, ok := conn.frames[0].(ws.Message)
	require.True(t, ok)
	assert.Equal(t, ws.EventPopup, msg.Event)
	assert.Equal(t, ws.StatusReceived, msg.Status)
	assert.NotEmpty(t, msg.Text)
}

func TestRelay_NotifyUserOfflineIsNoop(t *testing.T) {
	registry := ws.NewRegistry()
	relay := ws.NewRelay(registry, stubUserRepo{}, logger.New(logger.Config{Env: "test", Level: "error"}))

	// No connection registered for user 7; must not panic or block.
	relay.NotifyUser(7, "tekst")
	assert.Zero(t, registry.Len())
}

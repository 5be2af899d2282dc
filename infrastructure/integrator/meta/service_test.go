package meta_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta"
	metadomain "github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/domain"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/integrator/meta/mocks"
	"github.com/vfg2006/campaign-launcher-api/internal/config"
	"go.uber.org/mock/gomock"
)

func TestCheckAccess(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/me", r.URL.Path)
		assert.Equal(t, "id,name", r.URL.Query().Get("fields"))
		assert.Equal(t, "test-token", r.URL.Query().Get("access_token"))
		fmt.Fprint(w, `{"id": "10203040", "name": "Vitor Garcia"}`)
	}))
	defer server.Close()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().EnsureValidToken().Return(nil)

	cfg := &config.Config{Meta: config.Meta{URL: server.URL, AccessToken: "test-token"}}
	integrator := meta.New(cfg, client)

	identity, err := integrator.CheckAccess()

	require.NoError(t, err)
	assert.Equal(t, "10203040", identity.ID)
	assert.Equal(t, "Vitor Garcia", identity.Name)
}

func TestCheckAccess_RefreshesTokenOnRequestError(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	calls := 0
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls++
		if calls == 1 {
			w.WriteHeader(http.StatusUnauthorized)
			return
		}
		fmt.Fprint(w, `{"id": "10203040", "name": "Vitor Garcia"}`)
	}))
	defer server.Close()

	client := mocks.NewMockClient(ctrl)
	client.EXPECT().EnsureValidToken().Return(nil)
	client.EXPECT().RefreshToken().Return(nil)

	cfg := &config.Config{Meta: config.Meta{URL: server.URL, AccessToken: "test-token"}}
	integrator := meta.New(cfg, client)

	identity, err := integrator.CheckAccess()

	require.NoError(t, err)
	assert.Equal(t, "Vitor Garcia", identity.Name)
	assert.Equal(t, 2, calls)
}

func TestDefaultAdAccountID(t *testing.T) {
	t.Run("usa a conta configurada sem consultar a plataforma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockClient(ctrl)
		cfg := &config.Config{Meta: config.Meta{AdAccountID: "act_123"}}
		integrator := meta.New(cfg, client)

		accountID, err := integrator.DefaultAdAccountID()

		require.NoError(t, err)
		assert.Equal(t, "act_123", accountID)
	})

	t.Run("sem conta configurada usa a primeira acessível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GetAdAccounts().Return([]metadomain.AdAccount{
			{ID: "act_777", Name: "Conta Principal"},
			{ID: "act_888", Name: "Conta Secundária"},
		}, nil)

		integrator := meta.New(&config.Config{}, client)

		accountID, err := integrator.DefaultAdAccountID()

		require.NoError(t, err)
		assert.Equal(t, "act_777", accountID)
	})

	t.Run("sem nenhuma conta acessível", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GetAdAccounts().Return([]metadomain.AdAccount{}, nil)

		integrator := meta.New(&config.Config{}, client)

		_, err := integrator.DefaultAdAccountID()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nenhuma conta de anúncios")
	})
}

func TestDefaultPageID(t *testing.T) {
	t.Run("usa a página configurada sem consultar a plataforma", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockClient(ctrl)
		cfg := &config.Config{Meta: config.Meta{PageID: "456"}}
		integrator := meta.New(cfg, client)

		pageID, err := integrator.DefaultPageID()

		require.NoError(t, err)
		assert.Equal(t, "456", pageID)
	})

	t.Run("sem página configurada usa a primeira administrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GetPages().Return([]metadomain.Page{
			{ID: "111", Name: "Ótica Central", Category: "Shopping/Retail"},
		}, nil)

		integrator := meta.New(&config.Config{}, client)

		pageID, err := integrator.DefaultPageID()

		require.NoError(t, err)
		assert.Equal(t, "111", pageID)
	})

	t.Run("sem nenhuma página administrada", func(t *testing.T) {
		ctrl := gomock.NewController(t)
		defer ctrl.Finish()

		client := mocks.NewMockClient(ctrl)
		client.EXPECT().GetPages().Return(nil, nil)

		integrator := meta.New(&config.Config{}, client)

		_, err := integrator.DefaultPageID()

		require.Error(t, err)
		assert.Contains(t, err.Error(), "nenhuma página")
	})
}

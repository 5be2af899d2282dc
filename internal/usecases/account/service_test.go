package account_test

import (
	"errors"
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
	"github.com/vfg2006/campaign-launcher-api/internal/usecases/account"
	"github.com/vfg2006/campaign-launcher-api/pkg/apiErrors"
	"go.uber.org/mock/gomock"
)

func newAccountService(t *testing.T, cfg *config.Config) (account.AccountService, *mocks.MockClient) {
	t.Helper()

	ctrl := gomock.NewController(t)
	t.Cleanup(ctrl.Finish)

	client := mocks.NewMockClient(ctrl)
	integrator := meta.New(cfg, client)

	return account.NewService(integrator, cfg), client
}

func TestCheckAccess(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `{"id": "10203040", "name": "Vitor Garcia"}`)
	}))
	defer server.Close()

	cfg := &config.Config{Meta: config.Meta{URL: server.URL, AccessToken: "test-token"}}
	service, client := newAccountService(t, cfg)

	client.EXPECT().EnsureValidToken().Return(nil)

	status, err := service.CheckAccess()

	require.NoError(t, err)
	assert.True(t, status.Connected)
	assert.Equal(t, "10203040", status.UserID)
	assert.Equal(t, "Vitor Garcia", status.UserName)
	assert.Equal(t, "connected as Vitor Garcia", status.Message)
}

func TestCheckAccess_Error(t *testing.T) {
	service, client := newAccountService(t, &config.Config{})

	client.EXPECT().EnsureValidToken().Return(assert.AnError)

	_, err := service.CheckAccess()

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrAccessCheck)

	var accErr *account.AccountError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, apiErrors.ErrExternalService, accErr.Code)
}

func TestListAdAccounts(t *testing.T) {
	cfg := &config.Config{Meta: config.Meta{AdAccountID: "act_123"}}
	service, client := newAccountService(t, cfg)

	client.EXPECT().GetAdAccounts().Return([]metadomain.AdAccount{
		{ID: "act_123", Name: "Ótica Central", AccountStatus: 1},
		{ID: "act_999", Name: "Conta Secundária", AccountStatus: 2},
	}, nil)

	accounts, err := service.ListAdAccounts()

	require.NoError(t, err)
	require.Len(t, accounts, 2)

	// A conta configurada como padrão vem marcada na resposta
	assert.Equal(t, "act_123", accounts[0].ID)
	assert.Equal(t, "Ótica Central", accounts[0].Name)
	assert.Equal(t, 1, accounts[0].AccountStatus)
	assert.True(t, accounts[0].IsDefault)
	assert.False(t, accounts[1].IsDefault)
}

func TestListAdAccounts_Error(t *testing.T) {
	service, client := newAccountService(t, &config.Config{})

	client.EXPECT().GetAdAccounts().Return(nil, assert.AnError)

	_, err := service.ListAdAccounts()

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrMetaIntegration)

	var accErr *account.AccountError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, apiErrors.ErrExternalService, accErr.Code)
}

func TestListPages(t *testing.T) {
	cfg := &config.Config{Meta: config.Meta{PageID: "456"}}
	service, client := newAccountService(t, cfg)

	client.EXPECT().GetPages().Return([]metadomain.Page{
		{ID: "456", Name: "Ótica Central", Category: "Shopping/Retail"},
		{ID: "789", Name: "Outra Página", Category: "Brand"},
	}, nil)

	pages, err := service.ListPages()

	require.NoError(t, err)
	require.Len(t, pages, 2)
	assert.Equal(t, "456", pages[0].ID)
	assert.Equal(t, "Shopping/Retail", pages[0].Category)
	assert.True(t, pages[0].IsDefault)
	assert.False(t, pages[1].IsDefault)
}

func TestGetCampaign(t *testing.T) {
	service, client := newAccountService(t, &config.Config{})

	client.EXPECT().GetCampaignByID("120210000001").Return(&metadomain.CampaignDetails{
		ID:              "120210000001",
		Name:            "Ótica Central - Inverno",
		Objective:       "OUTCOME_TRAFFIC",
		Status:          "PAUSED",
		EffectiveStatus: "CAMPAIGN_PAUSED",
		CreatedTime:     "2026-03-10T09:00:00-0300",
		UpdatedTime:     "2026-03-11T10:30:00-0300",
	}, nil)

	campaign, err := service.GetCampaign("120210000001")

	require.NoError(t, err)
	assert.Equal(t, "120210000001", campaign.ID)
	assert.Equal(t, "Ótica Central - Inverno", campaign.Name)
	assert.Equal(t, "OUTCOME_TRAFFIC", campaign.Objective)
	assert.Equal(t, "PAUSED", campaign.Status)
	assert.Equal(t, "CAMPAIGN_PAUSED", campaign.EffectiveStatus)
	assert.Equal(t, "2026-03-10T09:00:00-0300", campaign.CreatedTime)
	assert.Equal(t, "2026-03-11T10:30:00-0300", campaign.UpdatedTime)
}

func TestGetCampaign_MissingID(t *testing.T) {
	service, _ := newAccountService(t, &config.Config{})

	_, err := service.GetCampaign("")

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrCampaignIDRequired)
}

func TestGetCampaign_NotFound(t *testing.T) {
	service, client := newAccountService(t, &config.Config{})

	client.EXPECT().GetCampaignByID("120210099999").
		Return(nil, errors.New("campanha 120210099999 não encontrada"))

	_, err := service.GetCampaign("120210099999")

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrCampaignNotFound)

	var accErr *account.AccountError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, apiErrors.ErrLaunchNotFound, accErr.Code)
	assert.Equal(t, "120210099999", accErr.CampaignID)
}

func TestGetCampaign_PlatformError(t *testing.T) {
	service, client := newAccountService(t, &config.Config{})

	client.EXPECT().GetCampaignByID("120210000001").Return(nil, assert.AnError)

	_, err := service.GetCampaign("120210000001")

	require.Error(t, err)
	assert.ErrorIs(t, err, account.ErrMetaIntegration)

	var accErr *account.AccountError
	require.ErrorAs(t, err, &accErr)
	assert.Equal(t, apiErrors.ErrExternalService, accErr.Code)
}

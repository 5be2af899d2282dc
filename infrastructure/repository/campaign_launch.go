package repository

import (
	"database/sql"
	"encoding/json"
	"fmt"

	"github.com/Masterminds/squirrel"
	"github.com/vfg2006/campaign-launcher-api/infrastructure/database/postgres"
	"github.com/vfg2006/campaign-launcher-api/internal/domain"
)

const (
	campaignLaunchesTable = "campaign_launches cl"
)

type CampaignLaunchRepository interface {
	SaveLaunch(launch *domain.CampaignLaunch) (*domain.CampaignLaunch, error)
	GetLaunchByID(launchID string) (*domain.CampaignLaunch, error)
	ListLaunches(filter domain.ListLaunchesFilter) ([]*domain.CampaignLaunch, error)
	UpdatePlatformStatus(launchID string, platformStatus string) error
	ListSyncCandidates(lookbackDays int) ([]*domain.CampaignLaunch, error)
}

type campaignLaunchRepository struct {
	conn *postgres.Connection
}

func NewCampaignLaunchRepository(conn *postgres.Connection) CampaignLaunchRepository {
	return &campaignLaunchRepository{
		conn: conn,
	}
}

var launchColumns = []string{
	"cl.id",
	"cl.user_id",
	"cl.business_name",
	"cl.campaign_name",
	"cl.objective",
	"cl.status",
	"cl.stage",
	"cl.campaign_id",
	"cl.ad_set_id",
	"cl.creative_id",
	"cl.ad_id",
	"cl.error_kind",
	"cl.error_message",
	"cl.platform_status",
	"cl.daily_budget_cents",
	"cl.currency",
	"cl.brief",
	"cl.content",
	"cl.created_at",
	"cl.updated_at",
}

func (r *campaignLaunchRepository) SaveLaunch(launch *domain.CampaignLaunch) (*domain.CampaignLaunch, error) {
	briefJSON, err := json.Marshal(launch.Brief)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o brief do lançamento: %w", err)
	}

	contentJSON, err := json.Marshal(launch.Content)
	if err != nil {
		return nil, fmt.Errorf("erro ao serializar o conteúdo do lançamento: %w", err)
	}

	queryBuilder := squirrel.
		Insert("campaign_launches").
		Columns(
			"id",
			"user_id",
			"business_name",
			"campaign_name",
			"objective",
			"status",
			"stage",
			"campaign_id",
			"ad_set_id",
			"creative_id",
			"ad_id",
			"error_kind",
			"error_message",
			"daily_budget_cents",
			"currency",
			"brief",
			"content",
		).
		Values(
			launch.ID,
			launch.UserID,
			launch.BusinessName,
			launch.CampaignName,
			launch.Objective,
			launch.Status,
			launch.Stage,
			launch.CampaignID,
			launch.AdSetID,
			launch.CreativeID,
			launch.AdID,
			launch.ErrorKind,
			launch.ErrorMessage,
			launch.DailyBudgetCents,
			launch.Currency,
			briefJSON,
			contentJSON,
		).
		Suffix("RETURNING created_at, updated_at").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir query de inserção: %w", err)
	}

	err = r.conn.QueryRow(sqlQuery, args...).Scan(&launch.CreatedAt, &launch.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar query de inserção: %w", err)
	}

	return launch, nil
}

func (r *campaignLaunchRepository) GetLaunchByID(launchID string) (*domain.CampaignLaunch, error) {
	query, args, err := squirrel.
		Select(launchColumns...).
		From(campaignLaunchesTable).
		Where(squirrel.Eq{"cl.id": launchID}).
		PlaceholderFormat(squirrel.Dollar).
		ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	row := r.conn.QueryRow(query, args...)
	launch, err := r.scanLaunchRow(row)
	if err != nil {
		if err == sql.ErrNoRows {
			return nil, nil
		}
		return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
	}

	return launch, nil
}

func (r *campaignLaunchRepository) ListLaunches(filter domain.ListLaunchesFilter) ([]*domain.CampaignLaunch, error) {
	queryBuilder := squirrel.
		Select(launchColumns...).
		From(campaignLaunchesTable).
		OrderBy("cl.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	if filter.UserID != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cl.user_id": *filter.UserID})
	}

	if filter.Status != nil {
		queryBuilder = queryBuilder.Where(squirrel.Eq{"cl.status": *filter.Status})
	}

	limit := filter.Limit
	if limit <= 0 {
		limit = 50
	}
	queryBuilder = queryBuilder.Limit(uint64(limit))

	if filter.Offset > 0 {
		queryBuilder = queryBuilder.Offset(uint64(filter.Offset))
	}

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	launches := make([]*domain.CampaignLaunch, 0)
	for rows.Next() {
		launch, err := r.scanLaunch(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}

		launches = append(launches, launch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return launches, nil
}

func (r *campaignLaunchRepository) UpdatePlatformStatus(launchID string, platformStatus string) error {
	queryBuilder := squirrel.
		Update("campaign_launches").
		Set("platform_status", platformStatus).
		Set("updated_at", squirrel.Expr("CURRENT_TIMESTAMP")).
		Where(squirrel.Eq{"id": launchID}).
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return fmt.Errorf("erro ao construir query de atualização: %w", err)
	}

	_, err = r.conn.Exec(sqlQuery, args...)
	if err != nil {
		return fmt.Errorf("erro ao executar query de atualização: %w", err)
	}

	return nil
}

// ListSyncCandidates retorna os lançamentos bem sucedidos e recentes
// cujo status na plataforma deve ser sincronizado pelo agendador
func (r *campaignLaunchRepository) ListSyncCandidates(lookbackDays int) ([]*domain.CampaignLaunch, error) {
	queryBuilder := squirrel.
		Select(launchColumns...).
		From(campaignLaunchesTable).
		Where(squirrel.Eq{"cl.status": domain.LaunchStatusSucceeded}).
		Where(squirrel.NotEq{"cl.campaign_id": nil}).
		Where(squirrel.Expr("cl.created_at >= CURRENT_TIMESTAMP - MAKE_INTERVAL(days => ?)", lookbackDays)).
		OrderBy("cl.created_at DESC").
		PlaceholderFormat(squirrel.Dollar)

	sqlQuery, args, err := queryBuilder.ToSql()
	if err != nil {
		return nil, fmt.Errorf("erro ao construir a query: %w", err)
	}

	rows, err := r.conn.Query(sqlQuery, args...)
	if err != nil {
		return nil, fmt.Errorf("erro ao executar a query: %w", err)
	}
	defer rows.Close()

	launches := make([]*domain.CampaignLaunch, 0)
	for rows.Next() {
		launch, err := r.scanLaunch(rows)
		if err != nil {
			return nil, fmt.Errorf("erro ao escanear lançamento: %w", err)
		}

		launches = append(launches, launch)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("erro durante a iteração de linhas: %w", err)
	}

	return launches, nil
}

func (r *campaignLaunchRepository) scanLaunch(rows *sql.Rows) (*domain.CampaignLaunch, error) {
	launch := &domain.CampaignLaunch{}

	var briefJSON, contentJSON []byte

	err := rows.Scan(
		&launch.ID,
		&launch.UserID,
		&launch.BusinessName,
		&launch.CampaignName,
		&launch.Objective,
		&launch.Status,
		&launch.Stage,
		&launch.CampaignID,
		&launch.AdSetID,
		&launch.CreativeID,
		&launch.AdID,
		&launch.ErrorKind,
		&launch.ErrorMessage,
		&launch.PlatformStatus,
		&launch.DailyBudgetCents,
		&launch.Currency,
		&briefJSON,
		&contentJSON,
		&launch.CreatedAt,
		&launch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.decodeLaunchPayloads(launch, briefJSON, contentJSON); err != nil {
		return nil, err
	}

	return launch, nil
}

func (r *campaignLaunchRepository) scanLaunchRow(row *sql.Row) (*domain.CampaignLaunch, error) {
	launch := &domain.CampaignLaunch{}

	var briefJSON, contentJSON []byte

	err := row.Scan(
		&launch.ID,
		&launch.UserID,
		&launch.BusinessName,
		&launch.CampaignName,
		&launch.Objective,
		&launch.Status,
		&launch.Stage,
		&launch.CampaignID,
		&launch.AdSetID,
		&launch.CreativeID,
		&launch.AdID,
		&launch.ErrorKind,
		&launch.ErrorMessage,
		&launch.PlatformStatus,
		&launch.DailyBudgetCents,
		&launch.Currency,
		&briefJSON,
		&contentJSON,
		&launch.CreatedAt,
		&launch.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	if err := r.decodeLaunchPayloads(launch, briefJSON, contentJSON); err != nil {
		return nil, err
	}

	return launch, nil
}

func (r *campaignLaunchRepository) decodeLaunchPayloads(launch *domain.CampaignLaunch, briefJSON, contentJSON []byte) error {
	if len(briefJSON) > 0 {
		if err := json.Unmarshal(briefJSON, &launch.Brief); err != nil {
			return fmt.Errorf("erro ao decodificar o brief do lançamento: %w", err)
		}
	}

	if len(contentJSON) > 0 {
		if err := json.Unmarshal(contentJSON, &launch.Content); err != nil {
			return fmt.Errorf("erro ao decodificar o conteúdo do lançamento: %w", err)
		}
	}

	return nil
}

package service

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"club-stats-backend/internal/database/models"
	apperrors "club-stats-backend/internal/errors"
	"club-stats-backend/internal/logger"
	"club-stats-backend/internal/repository"
	"club-stats-backend/internal/storage"

	"github.com/google/uuid"
)

// exportPageSize bounds each repository read while assembling a snapshot
const exportPageSize = 500

// ExportService writes a club's full data set to a JSON file and optionally
// mirrors it to an object store
type ExportService struct {
	clubRepo       repository.ClubRepositoryInterface
	memberRepo     repository.MemberRepositoryInterface
	teamRepo       repository.TeamRepositoryInterface
	gameRepo       repository.GameRepositoryInterface
	resultRepo     repository.GameResultRepositoryInterface
	teamResultRepo repository.TeamGameResultRepositoryInterface
	coopRepo       repository.CooperativeResultRepositoryInterface
	uploader       storage.Uploader
	exportDir      string
	log            *logger.Logger
}

// NewExportService creates a new export service. The uploader may be nil, in
// which case snapshots stay local only.
func NewExportService(
	clubRepo repository.ClubRepositoryInterface,
	memberRepo repository.MemberRepositoryInterface,
	teamRepo repository.TeamRepositoryInterface,
	gameRepo repository.GameRepositoryInterface,
	resultRepo repository.GameResultRepositoryInterface,
	teamResultRepo repository.TeamGameResultRepositoryInterface,
	coopRepo repository.CooperativeResultRepositoryInterface,
	uploader storage.Uploader,
	exportDir string,
	log *logger.Logger,
) *ExportService {
	return &ExportService{
		clubRepo:       clubRepo,
		memberRepo:     memberRepo,
		teamRepo:       teamRepo,
		gameRepo:       gameRepo,
		resultRepo:     resultRepo,
		teamResultRepo: teamResultRepo,
		coopRepo:       coopRepo,
		uploader:       uploader,
		exportDir:      exportDir,
		log:            log,
	}
}

// ClubSnapshot is the exported shape of one club's data
type ClubSnapshot struct {
	ExportedAt         time.Time                      `json:"exported_at"`
	Club               *models.Club                   `json:"club"`
	Members            []models.Member                `json:"members"`
	Teams              []models.Team                  `json:"teams"`
	Games              []models.Game                  `json:"games"`
	GameResults        []models.GameResult            `json:"game_results"`
	TeamGameResults    []models.TeamGameResult        `json:"team_game_results"`
	CooperativeResults []models.CooperativeGameResult `json:"cooperative_results"`
}

// ExportResponse describes a finished export
type ExportResponse struct {
	ClubID    uuid.UUID `json:"club_id"`
	FileName  string    `json:"file_name"`
	FilePath  string    `json:"file_path"`
	RemoteURL string    `json:"remote_url,omitempty"`
	Records   int       `json:"records"`
}

// ExportClub assembles a club snapshot, writes it under the export directory
// and mirrors it to the object store when one is configured
func (s *ExportService) ExportClub(ctx context.Context, clubID uuid.UUID) (*ExportResponse, error) {
	club, err := s.clubRepo.GetByID(clubID)
	if err != nil {
		return nil, apperrors.ErrClubNotFound
	}

	snapshot := &ClubSnapshot{
		ExportedAt: time.Now().UTC(),
		Club:       club,
	}

	snapshot.Members, err = collectPages(func(limit, offset int) ([]models.Member, int64, error) {
		return s.memberRepo.GetByClubID(clubID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect members: %w", err)
	}

	snapshot.Teams, err = collectPages(func(limit, offset int) ([]models.Team, int64, error) {
		return s.teamRepo.GetByClubID(clubID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect teams: %w", err)
	}

	snapshot.Games, err = collectPages(func(limit, offset int) ([]models.Game, int64, error) {
		return s.gameRepo.GetByClubID(clubID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect games: %w", err)
	}

	snapshot.GameResults, err = collectPages(func(limit, offset int) ([]models.GameResult, int64, error) {
		return s.resultRepo.GetByClubID(clubID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect game results: %w", err)
	}

	snapshot.TeamGameResults, err = collectPages(func(limit, offset int) ([]models.TeamGameResult, int64, error) {
		return s.teamResultRepo.GetByClubID(clubID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect team results: %w", err)
	}

	snapshot.CooperativeResults, err = collectPages(func(limit, offset int) ([]models.CooperativeGameResult, int64, error) {
		return s.coopRepo.GetByClubID(clubID, limit, offset)
	})
	if err != nil {
		return nil, fmt.Errorf("failed to collect cooperative results: %w", err)
	}

	data, err := json.MarshalIndent(snapshot, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to encode snapshot: %w", err)
	}

	fileName := fmt.Sprintf("%s-%s.json", club.Slug, snapshot.ExportedAt.Format("20060102-150405"))
	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	filePath := filepath.Join(s.exportDir, fileName)
	if err := os.WriteFile(filePath, data, 0o644); err != nil {
		return nil, fmt.Errorf("failed to write export file: %w", err)
	}

	response := &ExportResponse{
		ClubID:   club.ID,
		FileName: fileName,
		FilePath: filePath,
		Records: len(snapshot.GameResults) +
			len(snapshot.TeamGameResults) +
			len(snapshot.CooperativeResults),
	}

	if s.uploader != nil {
		key := fmt.Sprintf("exports/%s", fileName)
		result, err := s.uploader.Upload(ctx, key, "application/json", bytes.NewReader(data))
		if err != nil {
			// The local file is intact, so an upload failure is not fatal
			s.log.WithError(err).WithField("club_id", clubID).Warn("failed to upload export")
		} else {
			response.RemoteURL = result.Location
		}
	}

	return response, nil
}

// collectPages drains a paginated repository read into a single slice
func collectPages[T any](fetch func(limit, offset int) ([]T, int64, error)) ([]T, error) {
	var all []T
	offset := 0
	for {
		page, total, err := fetch(exportPageSize, offset)
		if err != nil {
			return nil, err
		}
		all = append(all, page...)
		offset += len(page)
		if len(page) == 0 || int64(offset) >= total {
			break
		}
	}
	if all == nil {
		all = []T{}
	}
	return all, nil
}

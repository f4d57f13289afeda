package main

import (
	"club-stats-backend/internal/config"
	"club-stats-backend/internal/database"
	"club-stats-backend/internal/database/models"
	"fmt"
	"io/fs"
	"log"
	"path/filepath"
	"strings"
	"time"

	"os"

	"github.com/google/uuid"
	"github.com/gosimple/slug"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type ClubData struct {
	Name            string `yaml:"name"`
	Slug            string `yaml:"slug,omitempty"`
	Status          string `yaml:"status,omitempty"`
	MeetingDay      string `yaml:"meeting_day,omitempty"`
	MeetingLocation string `yaml:"meeting_location,omitempty"`
	Description     string `yaml:"description,omitempty"`
}

type MemberData struct {
	ClubName string `yaml:"club_name"`
	FullName string `yaml:"full_name"`
	Nickname string `yaml:"nickname,omitempty"`
	Email    string `yaml:"email"`
	Status   string `yaml:"status,omitempty"`
}

type GameData struct {
	ClubName   string `yaml:"club_name"`
	Name       string `yaml:"name"`
	MinPlayers int    `yaml:"min_players"`
	MaxPlayers int    `yaml:"max_players"`
	ImageURL   string `yaml:"image_url,omitempty"`
}

type TeamData struct {
	ClubName     string   `yaml:"club_name"`
	Name         string   `yaml:"name"`
	MemberEmails []string `yaml:"member_emails"`
}

// File structures
type ClubsFile struct {
	Clubs []ClubData `yaml:"clubs"`
}

type MembersFile struct {
	Members []MemberData `yaml:"members"`
}

type GamesFile struct {
	Games []GameData `yaml:"games"`
}

type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Suppress verbose GORM logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	clubs, err := loadClubs(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load clubs: %w", err)
	}

	members, err := loadMembers(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load members: %w", err)
	}

	games, err := loadGames(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load games: %w", err)
	}

	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	// Create clubs first
	clubMap := make(map[string]*models.Club)
	clubCreated := 0
	for _, clubData := range clubs {
		club, created, err := createClub(db, clubData)
		if err != nil {
			return fmt.Errorf("failed to create club %s: %w", clubData.Name, err)
		}
		clubMap[clubData.Name] = club
		if created {
			clubCreated++
		}
	}
	log.Printf("📋 Clubs: %d created, %d total", clubCreated, len(clubs))

	// Create members
	memberMap := make(map[string]*models.Member)
	memberCreated := 0
	for _, memberData := range members {
		member, created, err := createMember(db, memberData, clubMap)
		if err != nil {
			return fmt.Errorf("failed to create member %s: %w", memberData.Email, err)
		}
		memberMap[memberData.ClubName+"/"+memberData.Email] = member
		if created {
			memberCreated++
		}
	}
	log.Printf("📋 Members: %d created, %d total", memberCreated, len(members))

	// Create games
	gameCreated := 0
	for _, gameData := range games {
		_, created, err := createGame(db, gameData, clubMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create game %s: %v", gameData.Name, err)
			continue // Continue with other games
		}
		if created {
			gameCreated++
		}
	}
	log.Printf("📋 Games: %d created, %d total", gameCreated, len(games))

	// Create teams last so rosters can resolve member emails
	teamCreated := 0
	for _, teamData := range teams {
		_, created, err := createTeam(db, teamData, clubMap, memberMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create team %s: %v", teamData.Name, err)
			continue // Continue with other teams
		}
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	return nil
}

func loadClubs(dataDir string) ([]ClubData, error) {
	var allClubs []ClubData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "clubs") {
			var file ClubsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allClubs = append(allClubs, file.Clubs...)
		}
		return nil
	})

	return allClubs, err
}

func loadMembers(dataDir string) ([]MemberData, error) {
	var allMembers []MemberData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "members") {
			var file MembersFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allMembers = append(allMembers, file.Members...)
		}
		return nil
	})

	return allMembers, err
}

func loadGames(dataDir string) ([]GameData, error) {
	var allGames []GameData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "games") {
			var file GamesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allGames = append(allGames, file.Games...)
		}
		return nil
	})

	return allGames, err
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func createClub(db *gorm.DB, clubData ClubData) (*models.Club, bool, error) {
	clubSlug := clubData.Slug
	if clubSlug == "" {
		clubSlug = slug.Make(clubData.Name)
	}

	var club models.Club
	if err := db.Where("slug = ?", clubSlug).First(&club).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.ClubStatusActive
			if clubData.Status != "" {
				status = models.ClubStatus(clubData.Status)
			}

			club = models.Club{
				Name:            clubData.Name,
				Slug:            clubSlug,
				Status:          status,
				MeetingDay:      clubData.MeetingDay,
				MeetingLocation: clubData.MeetingLocation,
				Description:     clubData.Description,
			}

			if err := db.Create(&club).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create club: %w", err)
			}
			return &club, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query club: %w", err)
		}
	}

	return &club, false, nil // created = false (existing)
}

func createMember(db *gorm.DB, memberData MemberData, clubMap map[string]*models.Club) (*models.Member, bool, error) {
	club := clubMap[memberData.ClubName]
	if club == nil {
		return nil, false, fmt.Errorf("club %s not found for member %s", memberData.ClubName, memberData.Email)
	}

	var member models.Member
	if err := db.Where("club_id = ? AND email = ?", club.ID, memberData.Email).First(&member).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			status := models.MemberStatusActive
			if memberData.Status != "" {
				status = models.MemberStatus(memberData.Status)
			}

			member = models.Member{
				ClubID:   club.ID,
				FullName: memberData.FullName,
				Nickname: memberData.Nickname,
				Email:    memberData.Email,
				Status:   status,
			}

			if err := db.Create(&member).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create member: %w", err)
			}
			return &member, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query member: %w", err)
		}
	}

	return &member, false, nil // created = false (existing)
}

func createGame(db *gorm.DB, gameData GameData, clubMap map[string]*models.Club) (*models.Game, bool, error) {
	club := clubMap[gameData.ClubName]
	if club == nil {
		return nil, false, fmt.Errorf("club %s not found for game %s", gameData.ClubName, gameData.Name)
	}

	var game models.Game
	if err := db.Where("club_id = ? AND name = ?", club.ID, gameData.Name).First(&game).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			minPlayers := gameData.MinPlayers
			if minPlayers == 0 {
				minPlayers = 1
			}
			maxPlayers := gameData.MaxPlayers
			if maxPlayers == 0 {
				maxPlayers = minPlayers
			}

			game = models.Game{
				ClubID:     club.ID,
				Name:       gameData.Name,
				MinPlayers: minPlayers,
				MaxPlayers: maxPlayers,
				ImageURL:   gameData.ImageURL,
			}

			if err := db.Create(&game).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create game: %w", err)
			}
			return &game, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query game: %w", err)
		}
	}

	return &game, false, nil // created = false (existing)
}

func createTeam(db *gorm.DB, teamData TeamData, clubMap map[string]*models.Club, memberMap map[string]*models.Member) (*models.Team, bool, error) {
	club := clubMap[teamData.ClubName]
	if club == nil {
		return nil, false, fmt.Errorf("club %s not found for team %s", teamData.ClubName, teamData.Name)
	}

	if len(teamData.MemberEmails) == 0 || len(teamData.MemberEmails) > 4 {
		return nil, false, fmt.Errorf("team %s needs 1 to 4 member emails", teamData.Name)
	}

	roster := make([]uuid.UUID, 0, len(teamData.MemberEmails))
	for _, email := range teamData.MemberEmails {
		member := memberMap[teamData.ClubName+"/"+email]
		if member == nil {
			return nil, false, fmt.Errorf("member %s not found for team %s", email, teamData.Name)
		}
		roster = append(roster, member.ID)
	}

	var team models.Team
	if err := db.Where("club_id = ? AND name = ?", club.ID, teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				ClubID:    club.ID,
				Name:      teamData.Name,
				Member1ID: roster[0],
			}
			slots := []**uuid.UUID{&team.Member2ID, &team.Member3ID, &team.Member4ID}
			for i := 1; i < len(roster); i++ {
				id := roster[i]
				*slots[i-1] = &id
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

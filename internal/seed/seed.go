package seed

import (
	"bytes"
	"context"
	_ "embed"
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/shenikar/blood_connect/internal/models"
	"github.com/shenikar/blood_connect/internal/service"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"
	"gopkg.in/yaml.v3"
)

//go:embed fixtures.yaml
var defaultFixtures []byte

// UserFixture - пользователь с паролем в открытом виде
type UserFixture struct {
	Name      string   `yaml:"name"`
	Email     string   `yaml:"email"`
	Password  string   `yaml:"password"`
	Role      string   `yaml:"role"`
	BloodType string   `yaml:"blood_type,omitempty"`
	Latitude  *float64 `yaml:"latitude,omitempty"`
	Longitude *float64 `yaml:"longitude,omitempty"`
}

// RequestFixture - заявка, владелец указывается по email
type RequestFixture struct {
	RequesterEmail string  `yaml:"requester_email"`
	BloodType      string  `yaml:"blood_type"`
	Quantity       int     `yaml:"quantity"`
	Urgency        string  `yaml:"urgency"`
	Latitude       float64 `yaml:"latitude"`
	Longitude      float64 `yaml:"longitude"`
	Address        string  `yaml:"address,omitempty"`
	Description    string  `yaml:"description,omitempty"`
	ContactPhone   string  `yaml:"contact_phone,omitempty"`
	Status         string  `yaml:"status,omitempty"`
}

// InventoryFixture - складская запись
type InventoryFixture struct {
	Date              string `yaml:"date"`
	HospitalName      string `yaml:"hospital_name"`
	City              string `yaml:"city"`
	BloodType         string `yaml:"blood_type"`
	UnitsAvailable    *int   `yaml:"units_available"`
	UnitsUsed         *int   `yaml:"units_used"`
	ExpiredUnits      int    `yaml:"expired_units"`
	AccidentsReported int    `yaml:"accidents_reported"`
	DonationsReceived int    `yaml:"donations_received"`
	LocalEvent        string `yaml:"local_event,omitempty"`
}

type Fixtures struct {
	Users     []UserFixture      `yaml:"users"`
	Requests  []RequestFixture   `yaml:"requests"`
	Inventory []InventoryFixture `yaml:"inventory"`
}

// Result - сколько записей создано
type Result struct {
	Users     int
	Requests  int
	Inventory int
}

// Default возвращает встроенный набор данных
func Default() (*Fixtures, error) {
	return Load(bytes.NewReader(defaultFixtures))
}

// Load читает набор данных из YAML и проверяет ссылки на пользователей
func Load(r io.Reader) (*Fixtures, error) {
	var f Fixtures
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("seed: decode fixtures: %w", err)
	}

	emails := make(map[string]struct{}, len(f.Users))
	for i, u := range f.Users {
		if u.Email == "" || u.Password == "" {
			return nil, fmt.Errorf("seed: user #%d: email and password are required", i+1)
		}
		emails[strings.ToLower(u.Email)] = struct{}{}
	}
	for i, r := range f.Requests {
		if _, ok := emails[strings.ToLower(r.RequesterEmail)]; !ok {
			return nil, fmt.Errorf("seed: request #%d: unknown requester %q", i+1, r.RequesterEmail)
		}
		if r.Quantity <= 0 {
			return nil, fmt.Errorf("seed: request #%d: quantity must be positive", i+1)
		}
	}
	return &f, nil
}

// Seeder записывает набор данных через репозитории приложения
type Seeder struct {
	users      service.UserRepository
	requests   service.BloodRequestRepository
	inventory  service.InventoryRepository
	logger     *logrus.Logger
	bcryptCost int
}

func NewSeeder(users service.UserRepository, requests service.BloodRequestRepository, inventory service.InventoryRepository, logger *logrus.Logger) *Seeder {
	return &Seeder{
		users:      users,
		requests:   requests,
		inventory:  inventory,
		logger:     logger,
		bcryptCost: bcrypt.DefaultCost,
	}
}

// Apply создает пользователей, заявки и складские записи.
// Уже существующие пользователи переиспользуются, поэтому повторный запуск не падает на email.
func (s *Seeder) Apply(ctx context.Context, f *Fixtures) (Result, error) {
	var res Result
	log := s.logger.WithField("component", "seed")

	byEmail := make(map[string]*models.User, len(f.Users))
	for _, uf := range f.Users {
		user, created, err := s.ensureUser(ctx, uf)
		if err != nil {
			return res, err
		}
		if created {
			res.Users++
		}
		byEmail[strings.ToLower(uf.Email)] = user
	}
	log.WithField("created", res.Users).Info("Users seeded")

	for _, rf := range f.Requests {
		owner := byEmail[strings.ToLower(rf.RequesterEmail)]
		status := models.StatusPending
		if rf.Status != "" {
			status = models.RequestStatus(rf.Status)
		}
		request := &models.BloodRequest{
			RequesterID:   owner.ID,
			RequesterName: owner.Name,
			RequesterRole: owner.Role,
			BloodType:     models.BloodType(rf.BloodType),
			Quantity:      rf.Quantity,
			Urgency:       models.Urgency(rf.Urgency),
			Latitude:      rf.Latitude,
			Longitude:     rf.Longitude,
			Address:       rf.Address,
			Status:        status,
			Description:   rf.Description,
			ContactPhone:  rf.ContactPhone,
		}
		if err := s.requests.Create(ctx, request); err != nil {
			return res, fmt.Errorf("seed: create request: %w", err)
		}
		res.Requests++
	}
	log.WithField("created", res.Requests).Info("Blood requests seeded")

	if len(f.Inventory) > 0 {
		records := make([]models.InventoryRecord, len(f.Inventory))
		for i, inv := range f.Inventory {
			records[i] = models.InventoryRecord{
				Date:              inv.Date,
				HospitalName:      inv.HospitalName,
				City:              inv.City,
				BloodType:         inv.BloodType,
				UnitsAvailable:    inv.UnitsAvailable,
				UnitsUsed:         inv.UnitsUsed,
				ExpiredUnits:      inv.ExpiredUnits,
				AccidentsReported: inv.AccidentsReported,
				DonationsReceived: inv.DonationsReceived,
				LocalEvent:        inv.LocalEvent,
			}
		}
		n, err := s.inventory.InsertBatch(ctx, records)
		if err != nil {
			return res, fmt.Errorf("seed: insert inventory: %w", err)
		}
		res.Inventory = n
		if err := s.inventory.InvalidateForecastCache(ctx); err != nil {
			log.WithError(err).Warn("Failed to invalidate forecast cache")
		}
	}
	log.WithField("created", res.Inventory).Info("Inventory seeded")

	return res, nil
}

func (s *Seeder) ensureUser(ctx context.Context, uf UserFixture) (*models.User, bool, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(uf.Password), s.bcryptCost)
	if err != nil {
		return nil, false, fmt.Errorf("seed: hash password: %w", err)
	}

	user := &models.User{
		Name:         uf.Name,
		Email:        strings.ToLower(strings.TrimSpace(uf.Email)),
		PasswordHash: string(hash),
		Role:         models.Role(uf.Role),
		BloodType:    models.BloodType(uf.BloodType),
		Latitude:     uf.Latitude,
		Longitude:    uf.Longitude,
	}
	err = s.users.Create(ctx, user)
	if err == nil {
		return user, true, nil
	}
	if !errors.Is(err, models.ErrAlreadyExists) {
		return nil, false, fmt.Errorf("seed: create user: %w", err)
	}

	existing, err := s.users.GetByEmail(ctx, user.Email)
	if err != nil {
		return nil, false, fmt.Errorf("seed: get user: %w", err)
	}
	return existing, false, nil
}

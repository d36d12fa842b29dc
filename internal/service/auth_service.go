package service

import (
	"errors"

	"github.com/deep314313/unnativ-backend/config"
	"github.com/deep314313/unnativ-backend/internal/auth"
	"github.com/deep314313/unnativ-backend/internal/domain"
	"github.com/deep314313/unnativ-backend/internal/models"
	"github.com/deep314313/unnativ-backend/internal/repository"

	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"
)

var (
	ErrEmailExists  = errors.New("email already registered")
	ErrInvalidCreds = errors.New("invalid email or password")
)

// AuthService registers and authenticates the three principal kinds. Each
// kind lives in its own table but all of them get the same token shape.
type AuthService struct {
	cfg      *config.Config
	athletes *repository.AthleteRepository
	orgs     *repository.OrganizationRepository
	donors   *repository.DonorRepository
}

func NewAuthService(cfg *config.Config, athletes *repository.AthleteRepository, orgs *repository.OrganizationRepository, donors *repository.DonorRepository) *AuthService {
	return &AuthService{cfg: cfg, athletes: athletes, orgs: orgs, donors: donors}
}

func (s *AuthService) hashPassword(password string) (string, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return "", err
	}
	return string(hash), nil
}

func (s *AuthService) RegisterAthlete(name, email, password, sport, location string) (*models.Athlete, string, error) {
	if _, err := s.athletes.GetByEmail(email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, "", err
	}
	a := &models.Athlete{Name: name, Email: email, PasswordHash: hash, Sport: sport, Location: location}
	if err := s.athletes.Create(a); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailExists
		}
		return nil, "", err
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, a.ID, domain.KindAthlete)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

func (s *AuthService) RegisterOrganization(name, email, password, description, website string) (*models.Organization, string, error) {
	if _, err := s.orgs.GetByEmail(email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, "", err
	}
	o := &models.Organization{Name: name, Email: email, PasswordHash: hash, Description: description, Website: website}
	if err := s.orgs.Create(o); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailExists
		}
		return nil, "", err
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, o.ID, domain.KindOrganization)
	if err != nil {
		return nil, "", err
	}
	return o, token, nil
}

func (s *AuthService) RegisterDonor(name, email, password string) (*models.Donor, string, error) {
	if _, err := s.donors.GetByEmail(email); err == nil {
		return nil, "", ErrEmailExists
	} else if !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	hash, err := s.hashPassword(password)
	if err != nil {
		return nil, "", err
	}
	d := &models.Donor{Name: name, Email: email, PasswordHash: hash}
	if err := s.donors.Create(d); err != nil {
		if errors.Is(err, gorm.ErrDuplicatedKey) {
			return nil, "", ErrEmailExists
		}
		return nil, "", err
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, d.ID, domain.KindDonor)
	if err != nil {
		return nil, "", err
	}
	return d, token, nil
}

func (s *AuthService) LoginAthlete(email, password string) (*models.Athlete, string, error) {
	a, err := s.athletes.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(a.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, a.ID, domain.KindAthlete)
	if err != nil {
		return nil, "", err
	}
	return a, token, nil
}

func (s *AuthService) LoginOrganization(email, password string) (*models.Organization, string, error) {
	o, err := s.orgs.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(o.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, o.ID, domain.KindOrganization)
	if err != nil {
		return nil, "", err
	}
	return o, token, nil
}

func (s *AuthService) LoginDonor(email, password string) (*models.Donor, string, error) {
	d, err := s.donors.GetByEmail(email)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", ErrInvalidCreds
		}
		return nil, "", err
	}
	if bcrypt.CompareHashAndPassword([]byte(d.PasswordHash), []byte(password)) != nil {
		return nil, "", ErrInvalidCreds
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, d.ID, domain.KindDonor)
	if err != nil {
		return nil, "", err
	}
	return d, token, nil
}

// LoginDonorWithGoogle finds or creates a donor from a verified Google
// identity: match by Google subject first, then link by email, then create.
func (s *AuthService) LoginDonorWithGoogle(googleID, email, name, avatarURL string) (*models.Donor, string, error) {
	d, err := s.donors.GetByGoogleID(googleID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, "", err
	}
	if d == nil {
		existing, err := s.donors.GetByEmail(email)
		if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, "", err
		}
		if existing != nil {
			gid := googleID
			existing.GoogleID = &gid
			if avatarURL != "" {
				existing.AvatarURL = avatarURL
			}
			if err := s.donors.Update(existing); err != nil {
				return nil, "", err
			}
			d = existing
		} else {
			gid := googleID
			d = &models.Donor{Name: name, Email: email, GoogleID: &gid, AvatarURL: avatarURL}
			if err := s.donors.Create(d); err != nil {
				return nil, "", err
			}
		}
	}
	token, err := auth.GenerateToken(&s.cfg.JWT, d.ID, domain.KindDonor)
	if err != nil {
		return nil, "", err
	}
	return d, token, nil
}

package user

import (
	"context"
	"encoding/json"
	"fmt"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/bunec-crvs/learning-api/internal/config"
)

const userinfoEndpoint = "https://www.googleapis.com/oauth2/v2/userinfo"

type Service interface {
	GoogleLogin(ctx context.Context, code string) (*User, error)
	GetByID(ctx context.Context, id string) (*User, error)
}

type service struct {
	repo        Repository
	oauthConfig *oauth2.Config
}

func NewService(repo Repository) Service {
	return &service{
		repo: repo,
		oauthConfig: &oauth2.Config{
			ClientID:     os.Getenv("GOOGLE_CLIENT_ID"),
			ClientSecret: os.Getenv("GOOGLE_CLIENT_SECRET"),
			RedirectURL:  os.Getenv("GOOGLE_REDIRECT_URL"),
			Scopes:       []string{"openid", "email", "profile"},
			Endpoint:     google.Endpoint,
		},
	}
}

type googleUserInfo struct {
	Email string `json:"email"`
	Name  string `json:"name"`
}

// GoogleLogin exchanges the authorization code, fetches the Google profile
// and upserts the matching user. The refresh token, when Google returns
// one, is stored encrypted.
func (s *service) GoogleLogin(ctx context.Context, code string) (*User, error) {
	log := config.WithContext(ctx)

	token, err := s.oauthConfig.Exchange(ctx, code)
	if err != nil {
		log.WithError(err).Error("Failed to exchange Google authorization code")
		return nil, fmt.Errorf("exchange code: %w", err)
	}

	client := s.oauthConfig.Client(ctx, token)
	resp, err := client.Get(userinfoEndpoint)
	if err != nil {
		log.WithError(err).Error("Failed to fetch Google userinfo")
		return nil, fmt.Errorf("fetch userinfo: %w", err)
	}
	defer resp.Body.Close()

	var info googleUserInfo
	if err := json.NewDecoder(resp.Body).Decode(&info); err != nil {
		return nil, fmt.Errorf("decode userinfo: %w", err)
	}
	if info.Email == "" {
		return nil, fmt.Errorf("google userinfo returned no email")
	}

	u, err := s.repo.FindByEmail(info.Email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		u = &User{
			Email: info.Email,
			Name:  info.Name,
			Role:  "learner",
		}
		if err := s.repo.Create(u); err != nil {
			log.WithError(err).Error("Failed to create user")
			return nil, err
		}
		log.WithField("user_id", u.ID.String()).Info("New user registered via Google")
	} else if u.Name != info.Name {
		u.Name = info.Name
		if err := s.repo.Update(u); err != nil {
			return nil, err
		}
	}

	if token.RefreshToken != "" {
		encrypted, err := config.Encrypt(token.RefreshToken)
		if err != nil {
			log.WithError(err).Warn("Failed to encrypt Google refresh token")
		} else {
			u.GoogleRefreshToken = &encrypted
			if err := s.repo.Update(u); err != nil {
				return nil, err
			}
		}
	}

	return u, nil
}

func (s *service) GetByID(ctx context.Context, id string) (*User, error) {
	uid, err := parseID(id)
	if err != nil {
		return nil, err
	}
	return s.repo.FindByID(uid)
}

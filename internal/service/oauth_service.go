package service

import (
	"context"
	"crypto/rand"
	"encoding/base64"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"petgroom-be/internal/apperror"
	"petgroom-be/internal/dto"
	"petgroom-be/internal/entity"
	"petgroom-be/internal/repository/memory"
	"petgroom-be/internal/repository/specification"
	"petgroom-be/internal/repository/unitofwork"

	"github.com/google/uuid"
	"golang.org/x/oauth2"
)

type IOAuthService interface {
	GetLoginURL() (string, error)
	HandleCallback(ctx context.Context, code, state string) (*dto.AuthResponse, error)
}

type oauthService struct {
	uowFactory unitofwork.RepositoryFactory
	googleConf *oauth2.Config
	states     *memory.OAuthStateRepository
}

func NewOAuthService(uowFactory unitofwork.RepositoryFactory, googleConf *oauth2.Config, states *memory.OAuthStateRepository) IOAuthService {
	return &oauthService{
		uowFactory: uowFactory,
		googleConf: googleConf,
		states:     states,
	}
}

func (s *oauthService) GetLoginURL() (string, error) {
	b := make([]byte, 16)
	if _, err := rand.Read(b); err != nil {
		return "", apperror.NewInternal(err)
	}
	state := base64.URLEncoding.EncodeToString(b)
	s.states.Save(state)

	return s.googleConf.AuthCodeURL(state), nil
}

func (s *oauthService) HandleCallback(ctx context.Context, code, state string) (*dto.AuthResponse, error) {
	if !s.states.Consume(state) {
		return nil, apperror.NewForbidden("invalid oauth state")
	}

	token, err := s.googleConf.Exchange(ctx, code)
	if err != nil {
		return nil, apperror.NewInternal(fmt.Errorf("code exchange failed: %w", err))
	}

	googleUser, err := fetchGoogleUser(token.AccessToken)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}
	if !googleUser.VerifiedEmail {
		return nil, apperror.NewForbidden("google account email not verified")
	}

	uow := s.uowFactory.NewUnitOfWork(ctx)

	user, err := uow.UserRepository().FindOne(ctx, specification.ByGoogleId{GoogleId: googleUser.ID})
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	if user == nil {
		// Link by email when the account was registered with a password first.
		user, err = uow.UserRepository().FindOne(ctx, specification.ByEmail{Email: googleUser.Email})
		if err != nil {
			return nil, apperror.NewInternal(err)
		}
	}

	if user == nil {
		user = &entity.User{
			Id:        uuid.New(),
			Email:     googleUser.Email,
			FullName:  googleUser.Name,
			GoogleId:  &googleUser.ID,
			CreatedAt: time.Now(),
			UpdatedAt: time.Now(),
		}
		if googleUser.Picture != "" {
			user.AvatarURL = &googleUser.Picture
		}
		if err := uow.UserRepository().Create(ctx, user); err != nil {
			return nil, apperror.NewInternal(err)
		}
	} else if user.GoogleId == nil {
		user.GoogleId = &googleUser.ID
		if user.AvatarURL == nil && googleUser.Picture != "" {
			user.AvatarURL = &googleUser.Picture
		}
		user.UpdatedAt = time.Now()
		if err := uow.UserRepository().Update(ctx, user); err != nil {
			return nil, apperror.NewInternal(err)
		}
	}

	signed, err := signToken(user)
	if err != nil {
		return nil, apperror.NewInternal(err)
	}

	return &dto.AuthResponse{Token: signed, User: profileOf(user)}, nil
}

type googleUserInfo struct {
	ID            string `json:"id"`
	Email         string `json:"email"`
	VerifiedEmail bool   `json:"verified_email"`
	Name          string `json:"name"`
	Picture       string `json:"picture"`
}

func fetchGoogleUser(accessToken string) (*googleUserInfo, error) {
	resp, err := http.Get("https://www.googleapis.com/oauth2/v2/userinfo?access_token=" + accessToken)
	if err != nil {
		return nil, fmt.Errorf("failed getting user info: %w", err)
	}
	defer resp.Body.Close()

	content, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed reading user info: %w", err)
	}

	var info googleUserInfo
	if err := json.Unmarshal(content, &info); err != nil {
		return nil, err
	}
	return &info, nil
}

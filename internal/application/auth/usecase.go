// Package auth contient le cas d'usage d'authentification. Les identifiants
// proviennent de la table utilisateurs ; il n'y a aucun compte en dur.
package auth

import (
	"context"
	"fmt"

	"github.com/lbertrand/garage-api/internal/application/dto"
	"github.com/lbertrand/garage-api/internal/domain"
	"github.com/lbertrand/garage-api/internal/domain/repository"
	pkgjwt "github.com/lbertrand/garage-api/pkg/jwt"
	"golang.org/x/crypto/bcrypt"
)

// JWTConfig paramètres d'émission des jetons.
type JWTConfig struct {
	Secret     string
	ExpMinutes int
	Issuer     string
}

// AuthUseCase authentification des comptes applicatifs.
type AuthUseCase struct {
	repo repository.UtilisateurRepository
	jwt  JWTConfig
}

// NewAuthUseCase construit le cas d'usage.
func NewAuthUseCase(repo repository.UtilisateurRepository, jwt JWTConfig) *AuthUseCase {
	return &AuthUseCase{repo: repo, jwt: jwt}
}

// Login vérifie l'email et le mot de passe puis émet un JWT. L'échec est
// toujours ErrUnauthorized, sans distinguer compte inconnu et mauvais mot de
// passe.
func (uc *AuthUseCase) Login(ctx context.Context, in dto.LoginRequest) (*dto.LoginResponse, error) {
	utilisateur, err := uc.repo.GetByEmail(ctx, in.Email)
	if err != nil {
		return nil, err
	}
	if utilisateur == nil {
		return nil, fmt.Errorf("identifiants invalides: %w", domain.ErrUnauthorized)
	}
	if err := bcrypt.CompareHashAndPassword([]byte(utilisateur.MotDePasseHash), []byte(in.MotDePasse)); err != nil {
		return nil, fmt.Errorf("identifiants invalides: %w", domain.ErrUnauthorized)
	}

	token, err := pkgjwt.Generate(uc.jwt.Secret, utilisateur.ID, utilisateur.Email, utilisateur.Role, uc.jwt.Issuer, uc.jwt.ExpMinutes)
	if err != nil {
		return nil, err
	}
	return &dto.LoginResponse{
		Token:       token,
		Utilisateur: dto.UtilisateurFromEntity(utilisateur),
	}, nil
}

// Register n'est pas exposé : les comptes se créent via l'outil
// d'administration (cmd/createuser).
func (uc *AuthUseCase) Register(ctx context.Context) error {
	return fmt.Errorf("inscription: %w", domain.ErrUnimplemented)
}

// Refresh n'est pas exposé : le client se reconnecte à expiration du jeton.
func (uc *AuthUseCase) Refresh(ctx context.Context) error {
	return fmt.Errorf("rafraîchissement de jeton: %w", domain.ErrUnimplemented)
}

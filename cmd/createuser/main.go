// Commande d'administration : crée un compte utilisateur. L'API n'expose pas
// d'inscription publique, les comptes passent par cet outil.
//
//	createuser -email admin@garage.fr -password secret123 -nom "Admin" -role ADMIN
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/google/uuid"
	"github.com/lbertrand/garage-api/internal/domain/entity"
	"github.com/lbertrand/garage-api/internal/infrastructure/postgres"
	"github.com/lbertrand/garage-api/pkg/config"
	"golang.org/x/crypto/bcrypt"
)

func main() {
	email := flag.String("email", "", "email du compte (requis)")
	password := flag.String("password", "", "mot de passe en clair (requis, min 6 caractères)")
	nom := flag.String("nom", "", "nom affiché (requis)")
	role := flag.String("role", entity.RoleEmploye, "rôle: ADMIN ou EMPLOYE")
	flag.Parse()

	if *email == "" || *nom == "" || len(*password) < 6 {
		flag.Usage()
		os.Exit(2)
	}
	if *role != entity.RoleAdmin && *role != entity.RoleEmploye {
		fmt.Fprintf(os.Stderr, "rôle invalide: %s\n", *role)
		os.Exit(2)
	}

	cfg, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "charger la configuration: %v\n", err)
		os.Exit(1)
	}

	ctx := context.Background()
	pool, err := postgres.NewPool(ctx, cfg.DB)
	if err != nil {
		fmt.Fprintf(os.Stderr, "connexion à PostgreSQL: %v\n", err)
		os.Exit(1)
	}
	defer pool.Close()

	if err := postgres.Migrate(cfg.DB.ConnectionString()); err != nil {
		fmt.Fprintf(os.Stderr, "migrations: %v\n", err)
		os.Exit(1)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(*password), bcrypt.DefaultCost)
	if err != nil {
		fmt.Fprintf(os.Stderr, "hacher le mot de passe: %v\n", err)
		os.Exit(1)
	}

	now := time.Now()
	utilisateur := &entity.Utilisateur{
		ID:             uuid.New().String(),
		Email:          *email,
		MotDePasseHash: string(hash),
		Nom:            *nom,
		Role:           *role,
		CreatedAt:      now,
		UpdatedAt:      now,
	}

	repo := postgres.NewUtilisateurRepository(pool)
	if err := repo.Create(ctx, utilisateur); err != nil {
		fmt.Fprintf(os.Stderr, "créer le compte: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("compte %s (%s) créé: %s\n", *email, *role, utilisateur.ID)
}
